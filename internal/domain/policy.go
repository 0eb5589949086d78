package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PolicyNumberPrefix starts every simulated policy number
const PolicyNumberPrefix = "MHI-"

// PolicyConfirmation is the simulated result of buying a plan. It only lives
// as long as the session that displays it.
type PolicyConfirmation struct {
	PolicyNumber  string          `json:"policyNumber"`
	Plan          InsurancePlan   `json:"plan"`
	Term          int             `json:"term"`
	AnnualPremium decimal.Decimal `json:"annualPremium"`
	StartDate     time.Time       `json:"startDate"`
	EndDate       time.Time       `json:"endDate"`
}

// PolicyDateLayout matches the long US date used on confirmations
const PolicyDateLayout = "January 2, 2006"
