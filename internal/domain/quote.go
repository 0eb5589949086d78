package domain

import (
	"github.com/shopspring/decimal"
)

// QuoteSource records where a premium came from
type QuoteSource string

const (
	QuoteSourceService  QuoteSource = "service-provided"
	QuoteSourceFallback QuoteSource = "fallback-demo"
)

// FallbackPremium is the fixed demo premium used when the prediction service
// cannot be reached. It never depends on the applicant.
var FallbackPremium = decimal.NewFromInt(12500)

// PremiumQuote is the base annual premium for one submission
type PremiumQuote struct {
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
	Source QuoteSource     `yaml:"source" json:"source"`
}

// IsFallback reports whether the quote is demo data
func (q PremiumQuote) IsFallback() bool {
	return q.Source == QuoteSourceFallback
}

// NewServiceQuote wraps a premium returned by the prediction service
func NewServiceQuote(amount decimal.Decimal) PremiumQuote {
	return PremiumQuote{Amount: amount, Source: QuoteSourceService}
}

// NewFallbackQuote returns the demo quote
func NewFallbackQuote() PremiumQuote {
	return PremiumQuote{Amount: FallbackPremium, Source: QuoteSourceFallback}
}
