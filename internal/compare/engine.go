package compare

import (
	"fmt"

	"github.com/rgehrsitz/mediquote/internal/calculation"
	"github.com/rgehrsitz/mediquote/internal/domain"
	"github.com/shopspring/decimal"
)

// CompareEngine orchestrates plan comparison
type CompareEngine struct {
	MetricsCalculator *MetricsCalculator
	Logger            calculation.Logger
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine() *CompareEngine {
	return &CompareEngine{
		MetricsCalculator: NewMetricsCalculator(),
		Logger:            calculation.NopLogger{},
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	BasePlanID string // plan the others are compared against; standard when empty
	Term       int    // requested term, reset per plan when out of range
	PlanIDs    []string
}

// Compare prices each requested plan (the whole catalog by default) for the
// base premium and compares it with the base plan.
func (ce *CompareEngine) Compare(basePremium decimal.Decimal, options CompareOptions) (*ComparisonSet, error) {
	if basePremium.IsNegative() {
		return nil, fmt.Errorf("base premium must not be negative, got %s", basePremium)
	}
	if options.BasePlanID == "" {
		options.BasePlanID = domain.PlanStandard
	}
	if options.Term == 0 {
		options.Term = domain.DefaultTerm
	}
	planIDs := options.PlanIDs
	if len(planIDs) == 0 {
		planIDs = domain.PlanIDs()
	}

	requested := domain.PlanSelection{PlanID: options.BasePlanID, Term: options.Term}

	baseResult, err := ce.price(basePremium, requested, options.BasePlanID)
	if err != nil {
		return nil, fmt.Errorf("failed to price base plan: %w", err)
	}

	alternatives := []ComparisonResult{}
	for _, id := range planIDs {
		if id == options.BasePlanID {
			continue
		}
		result, err := ce.price(basePremium, requested, id)
		if err != nil {
			return nil, fmt.Errorf("failed to price plan %s: %w", id, err)
		}
		alternatives = append(alternatives, ce.MetricsCalculator.CalculateComparison(result, baseResult))
	}

	compSet := &ComparisonSet{
		BasePremium:        basePremium,
		RequestedTerm:      options.Term,
		BasePlanID:         options.BasePlanID,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

func (ce *CompareEngine) price(basePremium decimal.Decimal, requested domain.PlanSelection, planID string) (ComparisonResult, error) {
	sel, err := calculation.SelectPlan(requested, planID)
	if err != nil {
		return ComparisonResult{}, err
	}
	if sel.Term != requested.Term && ce.Logger != nil {
		ce.Logger.Debugf("term %d not offered by %s, using %d", requested.Term, planID, sel.Term)
	}
	quote, err := calculation.PlanQuote(basePremium, sel)
	if err != nil {
		return ComparisonResult{}, err
	}
	return ce.MetricsCalculator.CalculateMetrics(quote), nil
}
