package calculation

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rgehrsitz/mediquote/internal/domain"
	"github.com/shopspring/decimal"
)

const policyNumberSpace = 1000000

// Purchaser simulates buying a plan. Nothing is stored or charged.
type Purchaser struct {
	intn  func(n int) int
	clock func() time.Time
}

// NewPurchaser returns a Purchaser backed by math/rand and the wall clock
func NewPurchaser() *Purchaser {
	return &Purchaser{intn: rand.Intn, clock: time.Now}
}

// NewPurchaserWith allows tests to fix the policy number and dates
func NewPurchaserWith(intn func(n int) int, clock func() time.Time) *Purchaser {
	p := NewPurchaser()
	if intn != nil {
		p.intn = intn
	}
	if clock != nil {
		p.clock = clock
	}
	return p
}

// Purchase validates the selection and returns a confirmation for it
func (p *Purchaser) Purchase(base decimal.Decimal, sel domain.PlanSelection) (domain.PolicyConfirmation, error) {
	plan, err := ValidateSelection(sel)
	if err != nil {
		return domain.PolicyConfirmation{}, fmt.Errorf("cannot purchase: %w", err)
	}

	start := p.clock()
	return domain.PolicyConfirmation{
		PolicyNumber:  fmt.Sprintf("%s%06d", domain.PolicyNumberPrefix, p.intn(policyNumberSpace)),
		Plan:          plan,
		Term:          sel.Term,
		AnnualPremium: PricePlan(base, plan).AdjustedPremium,
		StartDate:     start,
		EndDate:       start.AddDate(sel.Term, 0, 0),
	}, nil
}
