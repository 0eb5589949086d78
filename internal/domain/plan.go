package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrUnknownPlan is returned when a plan identifier is not in the catalog
var ErrUnknownPlan = errors.New("unknown plan")

// ErrInvalidPlanTerm is returned when a term lies outside the selected plan's bounds
var ErrInvalidPlanTerm = errors.New("term outside plan bounds")

// Plan identifiers
const (
	PlanBasic    = "basic"
	PlanStandard = "standard"
	PlanPremium  = "premium"
)

// DefaultPlanID and DefaultTerm are the initial plan selection
const (
	DefaultPlanID = PlanStandard
	DefaultTerm   = 5
)

// InsurancePlan is one insurance product in the static catalog
type InsurancePlan struct {
	ID                 string          `yaml:"id" json:"id"`
	Name               string          `yaml:"name" json:"name"`
	Description        string          `yaml:"description" json:"description"`
	CoveragePercentage int             `yaml:"coverage_percentage" json:"coveragePercentage"`
	CoverageLimit      decimal.Decimal `yaml:"coverage_limit" json:"coverageLimit"`
	MinTerm            int             `yaml:"min_term" json:"minTerm"`
	MaxTerm            int             `yaml:"max_term" json:"maxTerm"`
	Features           []string        `yaml:"features" json:"features"`
	PremiumMultiplier  decimal.Decimal `yaml:"premium_multiplier" json:"premiumMultiplier"`
}

// TermInRange reports whether term lies within [MinTerm, MaxTerm]
func (p InsurancePlan) TermInRange(term int) bool {
	return term >= p.MinTerm && term <= p.MaxTerm
}

// HeadlineFeatures returns at most n features and how many were left out
func (p InsurancePlan) HeadlineFeatures(n int) ([]string, int) {
	if len(p.Features) <= n {
		return p.Features, 0
	}
	return p.Features[:n], len(p.Features) - n
}

// PlanCatalog returns the three insurance products in display order.
// Each call returns a fresh copy so callers cannot alter the catalog.
func PlanCatalog() []InsurancePlan {
	return []InsurancePlan{
		{
			ID:                 PlanBasic,
			Name:               "Basic Plan",
			Description:        "Essential coverage for individuals on a budget",
			CoveragePercentage: 70,
			CoverageLimit:      decimal.NewFromInt(1000000),
			MinTerm:            3,
			MaxTerm:            10,
			Features: []string{
				"Hospitalization coverage",
				"Basic medication coverage",
				"Emergency services",
				"Annual health check-up",
			},
			PremiumMultiplier: decimal.NewFromFloat(0.8),
		},
		{
			ID:                 PlanStandard,
			Name:               "Standard Plan",
			Description:        "Comprehensive coverage for individuals and families",
			CoveragePercentage: 85,
			CoverageLimit:      decimal.NewFromInt(3000000),
			MinTerm:            5,
			MaxTerm:            15,
			Features: []string{
				"Hospitalization coverage",
				"Medication coverage",
				"Emergency services",
				"Specialist consultations",
				"Annual health check-up",
				"Dental coverage (basic)",
			},
			PremiumMultiplier: decimal.NewFromFloat(1.0),
		},
		{
			ID:                 PlanPremium,
			Name:               "Premium Plan",
			Description:        "Complete coverage with additional benefits",
			CoveragePercentage: 95,
			CoverageLimit:      decimal.NewFromInt(10000000),
			MinTerm:            5,
			MaxTerm:            20,
			Features: []string{
				"Hospitalization coverage",
				"Full medication coverage",
				"Emergency services",
				"Specialist consultations",
				"Annual health check-up",
				"Dental coverage (comprehensive)",
				"Vision coverage",
				"International coverage",
				"Alternative medicine",
			},
			PremiumMultiplier: decimal.NewFromFloat(1.4),
		},
	}
}

// LookupPlan finds a catalog plan by identifier
func LookupPlan(id string) (InsurancePlan, error) {
	for _, plan := range PlanCatalog() {
		if plan.ID == id {
			return plan, nil
		}
	}
	return InsurancePlan{}, fmt.Errorf("%w: %q", ErrUnknownPlan, id)
}

// PlanIDs returns the catalog identifiers in display order
func PlanIDs() []string {
	catalog := PlanCatalog()
	ids := make([]string, 0, len(catalog))
	for _, plan := range catalog {
		ids = append(ids, plan.ID)
	}
	return ids
}

// PlanSelection is the chosen plan and term in years
type PlanSelection struct {
	PlanID string `yaml:"plan_id" json:"planId"`
	Term   int    `yaml:"term" json:"term"`
}

// DefaultPlanSelection returns the standard plan over five years
func DefaultPlanSelection() PlanSelection {
	return PlanSelection{PlanID: DefaultPlanID, Term: DefaultTerm}
}

// Validate checks that the plan exists and offers the term, returning the plan
func (s PlanSelection) Validate() (InsurancePlan, error) {
	plan, err := LookupPlan(s.PlanID)
	if err != nil {
		return InsurancePlan{}, err
	}
	if !plan.TermInRange(s.Term) {
		return plan, fmt.Errorf("%w: %d years not in %d-%d for %s",
			ErrInvalidPlanTerm, s.Term, plan.MinTerm, plan.MaxTerm, plan.ID)
	}
	return plan, nil
}
