package calculation

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rgehrsitz/mediquote/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrInvalidYears is returned when a claimable amount is requested for fewer than one year
var ErrInvalidYears = errors.New("invalid number of years")

// Claimable amount factors
var (
	ClaimableFactor    = decimal.NewFromFloat(1.5)
	LoyaltyBonusFactor = decimal.NewFromFloat(0.6)
)

// LoyaltyBonusAfterYears is the number of paid years before the loyalty bonus accrues
const LoyaltyBonusAfterYears = 5

// TermStep is the spacing of generated term options
const TermStep = 5

// scheduleYears are the fixed rows of a claimable schedule
var scheduleYears = []int{1, 3, 5, 10}

var twelve = decimal.NewFromInt(12)

// PlanPrice is the plan-adjusted premium
type PlanPrice struct {
	AdjustedPremium decimal.Decimal `json:"adjustedPremium"`
	MonthlyPremium  decimal.Decimal `json:"monthlyPremium"`
}

// PricePlan scales the base premium by the plan multiplier. Both values are
// rounded to whole currency units.
func PricePlan(base decimal.Decimal, plan domain.InsurancePlan) PlanPrice {
	adjusted := base.Mul(plan.PremiumMultiplier).Round(0)
	return PlanPrice{
		AdjustedPremium: adjusted,
		MonthlyPremium:  adjusted.Div(twelve).Round(0),
	}
}

// TotalPaid is the premium paid over the given number of years
func TotalPaid(adjusted decimal.Decimal, years int) decimal.Decimal {
	return adjusted.Mul(decimal.NewFromInt(int64(years)))
}

// LoyaltyBonus accrues for every year paid beyond the fifth
func LoyaltyBonus(adjusted decimal.Decimal, years int) decimal.Decimal {
	if years <= LoyaltyBonusAfterYears {
		return decimal.Zero
	}
	extra := decimal.NewFromInt(int64(years - LoyaltyBonusAfterYears))
	return extra.Mul(adjusted).Mul(LoyaltyBonusFactor)
}

// ClaimableAmount is the most the plan pays out after years of premiums,
// capped at the plan coverage limit.
func ClaimableAmount(adjusted decimal.Decimal, plan domain.InsurancePlan, years int) (decimal.Decimal, error) {
	if years < 1 {
		return decimal.Zero, fmt.Errorf("%w: %d", ErrInvalidYears, years)
	}
	raw := TotalPaid(adjusted, years).Mul(ClaimableFactor).Add(LoyaltyBonus(adjusted, years))
	return decimal.Min(plan.CoverageLimit, raw), nil
}

// ReturnRatio is claimable / totalPaid rounded to two decimals, or zero when
// nothing was paid.
func ReturnRatio(claimable, totalPaid decimal.Decimal) decimal.Decimal {
	if !totalPaid.IsPositive() {
		return decimal.Zero
	}
	return claimable.Div(totalPaid).Round(2)
}

// TermOptions lists the selectable terms: MinTerm stepping by five, then MaxTerm
// if the steps did not land on it.
func TermOptions(plan domain.InsurancePlan) []int {
	var options []int
	for term := plan.MinTerm; term <= plan.MaxTerm; term += TermStep {
		options = append(options, term)
	}
	if len(options) == 0 || options[len(options)-1] != plan.MaxTerm {
		options = append(options, plan.MaxTerm)
	}
	return options
}

// ClaimableSchedule builds the claimable table for a plan: the fixed reference
// years plus the selected term, without duplicates and within the plan maximum.
func ClaimableSchedule(adjusted decimal.Decimal, plan domain.InsurancePlan, selectedTerm int) []domain.ClaimableRow {
	seen := make(map[int]bool, len(scheduleYears)+1)
	var years []int
	for _, y := range append(append([]int{}, scheduleYears...), selectedTerm) {
		if y < 1 || y > plan.MaxTerm || seen[y] {
			continue
		}
		seen[y] = true
		years = append(years, y)
	}
	sort.Ints(years)

	rows := make([]domain.ClaimableRow, 0, len(years))
	for _, y := range years {
		claimable, err := ClaimableAmount(adjusted, plan, y)
		if err != nil {
			continue
		}
		paid := TotalPaid(adjusted, y)
		rows = append(rows, domain.ClaimableRow{
			Years:     y,
			TotalPaid: paid,
			Claimable: claimable,
			Ratio:     ReturnRatio(claimable, paid),
			Selected:  y == selectedTerm,
		})
	}
	return rows
}
