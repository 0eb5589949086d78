package calculation

import (
	"regexp"
	"testing"
	"time"

	"github.com/rgehrsitz/mediquote/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaser_Purchase(t *testing.T) {
	start := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	purchaser := NewPurchaserWith(
		func(n int) int {
			assert.Equal(t, 1000000, n)
			return 4217
		},
		func() time.Time { return start },
	)

	conf, err := purchaser.Purchase(decimal.NewFromInt(12500), domain.PlanSelection{PlanID: domain.PlanPremium, Term: 10})
	require.NoError(t, err)

	assert.Equal(t, "MHI-004217", conf.PolicyNumber)
	assert.Equal(t, domain.PlanPremium, conf.Plan.ID)
	assert.Equal(t, 10, conf.Term)
	assert.Equal(t, "17500", conf.AnnualPremium.String())
	assert.Equal(t, start, conf.StartDate)
	assert.Equal(t, time.Date(2036, time.March, 14, 9, 30, 0, 0, time.UTC), conf.EndDate)
	assert.Equal(t, "March 14, 2036", conf.EndDate.Format(domain.PolicyDateLayout))
}

func TestPurchaser_PolicyNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^MHI-\d{6}$`)
	purchaser := NewPurchaser()

	for i := 0; i < 50; i++ {
		conf, err := purchaser.Purchase(decimal.NewFromInt(9000), domain.DefaultPlanSelection())
		require.NoError(t, err)
		assert.Regexp(t, pattern, conf.PolicyNumber)
	}
}

func TestPurchaser_RejectsInvalidSelection(t *testing.T) {
	purchaser := NewPurchaser()

	_, err := purchaser.Purchase(decimal.NewFromInt(9000), domain.PlanSelection{PlanID: domain.PlanBasic, Term: 15})
	assert.ErrorIs(t, err, ErrInvalidPlanTerm)

	_, err = purchaser.Purchase(decimal.NewFromInt(9000), domain.PlanSelection{PlanID: "diamond", Term: 5})
	assert.ErrorIs(t, err, domain.ErrUnknownPlan)
}
