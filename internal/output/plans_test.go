package output

import (
	"testing"
	"time"

	"github.com/rgehrsitz/mediquote/internal/calculation"
	"github.com/rgehrsitz/mediquote/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPlanQuote(t *testing.T) {
	q, err := calculation.PlanQuote(decimal.NewFromInt(10000), domain.PlanSelection{PlanID: domain.PlanStandard, Term: 10})
	require.NoError(t, err)

	out := FormatPlanQuote(q)
	assert.Contains(t, out, "Standard Plan")
	assert.Contains(t, out, "85% up to ₹3,000,000")
	assert.Contains(t, out, "Term options: 5, 10, 15 years")
	assert.Contains(t, out, "Monthly: ₹833")
	assert.Contains(t, out, "10 *")
	assert.Contains(t, out, "₹180,000")
	assert.Contains(t, out, "1.80x")
	assert.Contains(t, out, "✓ Dental coverage (basic)")
}

func TestFormatConfirmation(t *testing.T) {
	start := time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)
	purchaser := calculation.NewPurchaserWith(func(int) int { return 7 }, func() time.Time { return start })
	conf, err := purchaser.Purchase(decimal.NewFromInt(10000), domain.PlanSelection{PlanID: domain.PlanBasic, Term: 8})
	require.NoError(t, err)

	out := FormatConfirmation(conf)
	assert.Contains(t, out, "Policy Number:  MHI-000007")
	assert.Contains(t, out, "Basic Plan")
	assert.Contains(t, out, "Annual Premium: ₹8,000")
	assert.Contains(t, out, "Start Date:     October 19, 2026")
	assert.Contains(t, out, "End Date:       October 19, 2034")
}
