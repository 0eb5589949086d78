package domain

import (
	"github.com/shopspring/decimal"
)

// EstimateStatus is the terminal state of one submission
type EstimateStatus string

const (
	StatusQuoted   EstimateStatus = "quoted"
	StatusRejected EstimateStatus = "rejected"
	StatusFallback EstimateStatus = "fallback"
)

// Warning texts attached to a fallback estimate
const (
	WarningConnection = "Error connecting to server! Could not connect to the prediction server."
	WarningDemoMode   = "Using demo mode: the premium shown is demo data, not a prediction."
)

// ClaimableRow is one line of a claimable schedule
type ClaimableRow struct {
	Years     int             `json:"years"`
	TotalPaid decimal.Decimal `json:"totalPaid"`
	Claimable decimal.Decimal `json:"claimable"`
	Ratio     decimal.Decimal `json:"ratio"`
	Selected  bool            `json:"selected"`
}

// PlanQuote is the priced view of one plan at one term
type PlanQuote struct {
	Plan            InsurancePlan   `json:"plan"`
	Term            int             `json:"term"`
	TermOptions     []int           `json:"termOptions"`
	AdjustedPremium decimal.Decimal `json:"adjustedPremium"`
	MonthlyPremium  decimal.Decimal `json:"monthlyPremium"`
	TotalPaid       decimal.Decimal `json:"totalPaid"`
	Claimable       decimal.Decimal `json:"claimable"`
	Ratio           decimal.Decimal `json:"ratio"`
	Schedule        []ClaimableRow  `json:"schedule"`
}

// Estimate is the full outcome of one submission
type Estimate struct {
	SubmissionID string           `json:"submissionId,omitempty"`
	Profile      ApplicantProfile `json:"profile"`
	BMI          *BMIResult       `json:"bmi,omitempty"`
	Status       EstimateStatus   `json:"status"`
	Quote        *PremiumQuote    `json:"quote,omitempty"`
	Error        string           `json:"error,omitempty"`
	Warnings     []string         `json:"warnings,omitempty"`
	Insights     *Insights        `json:"insights,omitempty"`
	Plans        []PlanQuote      `json:"plans,omitempty"`
}

// HasQuote reports whether the estimate carries a usable premium
func (e *Estimate) HasQuote() bool {
	return e != nil && e.Quote != nil
}

// PlanByID returns the priced plan with the given identifier
func (e *Estimate) PlanByID(id string) (PlanQuote, bool) {
	if e == nil {
		return PlanQuote{}, false
	}
	for _, p := range e.Plans {
		if p.Plan.ID == id {
			return p, true
		}
	}
	return PlanQuote{}, false
}
