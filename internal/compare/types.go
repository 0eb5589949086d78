package compare

import (
	"fmt"

	"github.com/rgehrsitz/mediquote/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult represents one plan priced for comparison
type ComparisonResult struct {
	PlanID      string `json:"planId"`
	PlanName    string `json:"planName"`
	Description string `json:"description"`

	// Key Metrics
	CoveragePercentage int             `json:"coveragePercentage"`
	CoverageLimit      decimal.Decimal `json:"coverageLimit"`
	Term               int             `json:"term"`
	AnnualPremium      decimal.Decimal `json:"annualPremium"`
	MonthlyPremium     decimal.Decimal `json:"monthlyPremium"`
	TotalPaid          decimal.Decimal `json:"totalPaid"`
	Claimable          decimal.Decimal `json:"claimable"`
	ReturnRatio        decimal.Decimal `json:"returnRatio"`
	FeatureCount       int             `json:"featureCount"`

	// Comparison to Base
	PremiumDiffFromBase   decimal.Decimal `json:"premiumDiffFromBase"`
	PremiumPctFromBase    decimal.Decimal `json:"premiumPctFromBase"`
	ClaimableDiffFromBase decimal.Decimal `json:"claimableDiffFromBase"`
	RatioDiffFromBase     decimal.Decimal `json:"ratioDiffFromBase"`
}

// ComparisonSet represents every catalog plan compared against a base plan
type ComparisonSet struct {
	BasePremium        decimal.Decimal    `json:"basePremium"`
	RequestedTerm      int                `json:"requestedTerm"`
	BasePlanID         string             `json:"basePlanId"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
}

// All returns the base result followed by the alternatives
func (cs *ComparisonSet) All() []ComparisonResult {
	results := make([]ComparisonResult, 0, len(cs.AlternativeResults)+1)
	if cs.BaseResult != nil {
		results = append(results, *cs.BaseResult)
	}
	return append(results, cs.AlternativeResults...)
}

// MetricsCalculator extracts key metrics from plan quotes
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes the comparison metrics for a plan quote
func (mc *MetricsCalculator) CalculateMetrics(q domain.PlanQuote) ComparisonResult {
	return ComparisonResult{
		PlanID:             q.Plan.ID,
		PlanName:           q.Plan.Name,
		Description:        q.Plan.Description,
		CoveragePercentage: q.Plan.CoveragePercentage,
		CoverageLimit:      q.Plan.CoverageLimit,
		Term:               q.Term,
		AnnualPremium:      q.AdjustedPremium,
		MonthlyPremium:     q.MonthlyPremium,
		TotalPaid:          q.TotalPaid,
		Claimable:          q.Claimable,
		ReturnRatio:        q.Ratio,
		FeatureCount:       len(q.Plan.Features),
	}
}

// CalculateComparison computes deltas between a plan and the base plan
func (mc *MetricsCalculator) CalculateComparison(plan, base ComparisonResult) ComparisonResult {
	plan.PremiumDiffFromBase = plan.AnnualPremium.Sub(base.AnnualPremium)

	if !base.AnnualPremium.IsZero() {
		plan.PremiumPctFromBase = plan.PremiumDiffFromBase.
			Div(base.AnnualPremium).
			Mul(decimal.NewFromInt(100))
	}

	plan.ClaimableDiffFromBase = plan.Claimable.Sub(base.Claimable)
	plan.RatioDiffFromBase = plan.ReturnRatio.Sub(base.ReturnRatio)

	return plan
}

// GenerateRecommendations highlights the cheapest plan, the plan with the
// largest claimable amount and the plan with the best return ratio.
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	all := compSet.All()
	if len(all) == 0 {
		return recommendations
	}

	cheapest, richest, bestRatio := 0, 0, 0
	for i := range all {
		if all[i].AnnualPremium.LessThan(all[cheapest].AnnualPremium) {
			cheapest = i
		}
		if all[i].Claimable.GreaterThan(all[richest].Claimable) {
			richest = i
		}
		if all[i].ReturnRatio.GreaterThan(all[bestRatio].ReturnRatio) {
			bestRatio = i
		}
	}

	recommendations = append(recommendations,
		fmt.Sprintf("Lowest Premium: %s at ₹%s per year (₹%s per month)",
			all[cheapest].PlanName, all[cheapest].AnnualPremium.StringFixed(0), all[cheapest].MonthlyPremium.StringFixed(0)))

	recommendations = append(recommendations,
		fmt.Sprintf("Highest Claimable: %s can pay out up to ₹%s over %d years",
			all[richest].PlanName, all[richest].Claimable.StringFixed(0), all[richest].Term))

	recommendations = append(recommendations,
		fmt.Sprintf("Best Return: %s returns %sx the premiums paid over %d years",
			all[bestRatio].PlanName, all[bestRatio].ReturnRatio.StringFixed(2), all[bestRatio].Term))

	// Claimable amounts stop growing once the coverage limit is reached
	for _, r := range all {
		if r.Claimable.Equal(r.CoverageLimit) {
			recommendations = append(recommendations,
				fmt.Sprintf("Coverage Cap: %s reaches its ₹%s limit within %d years",
					r.PlanName, r.CoverageLimit.StringFixed(0), r.Term))
		}
	}

	return recommendations
}
