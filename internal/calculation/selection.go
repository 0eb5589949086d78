package calculation

import (
	"github.com/rgehrsitz/mediquote/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrInvalidPlanTerm is returned when a term lies outside the selected plan's bounds
var ErrInvalidPlanTerm = domain.ErrInvalidPlanTerm

// ValidateSelection checks that the plan exists and the term is within its bounds
func ValidateSelection(sel domain.PlanSelection) (domain.InsurancePlan, error) {
	return sel.Validate()
}

// SelectPlan switches to planID. A term the new plan cannot offer is reset
// to the plan's minimum term; an in-range term is kept.
func SelectPlan(sel domain.PlanSelection, planID string) (domain.PlanSelection, error) {
	plan, err := domain.LookupPlan(planID)
	if err != nil {
		return sel, err
	}
	next := domain.PlanSelection{PlanID: plan.ID, Term: sel.Term}
	if !plan.TermInRange(next.Term) {
		next.Term = plan.MinTerm
	}
	return next, nil
}

// SelectTerm changes the term of the current plan
func SelectTerm(sel domain.PlanSelection, term int) (domain.PlanSelection, error) {
	next := domain.PlanSelection{PlanID: sel.PlanID, Term: term}
	if _, err := ValidateSelection(next); err != nil {
		return sel, err
	}
	return next, nil
}

// PlanQuote prices a valid selection against a base premium
func PlanQuote(base decimal.Decimal, sel domain.PlanSelection) (domain.PlanQuote, error) {
	plan, err := ValidateSelection(sel)
	if err != nil {
		return domain.PlanQuote{}, err
	}
	return quotePlan(base, plan, sel.Term), nil
}

func quotePlan(base decimal.Decimal, plan domain.InsurancePlan, term int) domain.PlanQuote {
	price := PricePlan(base, plan)
	paid := TotalPaid(price.AdjustedPremium, term)
	// term is within bounds here, so MinTerm >= 1 keeps this error-free
	claimable, _ := ClaimableAmount(price.AdjustedPremium, plan, term)

	return domain.PlanQuote{
		Plan:            plan,
		Term:            term,
		TermOptions:     TermOptions(plan),
		AdjustedPremium: price.AdjustedPremium,
		MonthlyPremium:  price.MonthlyPremium,
		TotalPaid:       paid,
		Claimable:       claimable,
		Ratio:           ReturnRatio(claimable, paid),
		Schedule:        ClaimableSchedule(price.AdjustedPremium, plan, term),
	}
}

// QuoteAllPlans prices every catalog plan, moving the given selection onto each
// plan with SelectPlan so that out-of-range terms are reset.
func QuoteAllPlans(base decimal.Decimal, sel domain.PlanSelection) []domain.PlanQuote {
	catalog := domain.PlanCatalog()
	quotes := make([]domain.PlanQuote, 0, len(catalog))
	for _, plan := range catalog {
		moved, err := SelectPlan(sel, plan.ID)
		if err != nil {
			continue
		}
		quotes = append(quotes, quotePlan(base, plan, moved.Term))
	}
	return quotes
}
