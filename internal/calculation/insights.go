package calculation

import (
	"fmt"

	"github.com/rgehrsitz/mediquote/internal/domain"
	"github.com/shopspring/decimal"
)

// Band factors relative to the applicant's premium
var (
	AverageBandFactor  = decimal.NewFromFloat(0.85)
	LowRiskBandFactor  = decimal.NewFromFloat(0.60)
	HighRiskBandFactor = decimal.NewFromFloat(1.30)
)

// Saving factors for the health notes
var (
	BMISavingPerPoint   = decimal.NewFromInt(500)
	SmokingSavingFactor = decimal.NewFromFloat(0.30)
)

// DeriveBands computes the comparison bands for a premium
func DeriveBands(premium decimal.Decimal) domain.Bands {
	return domain.Bands{
		Estimate: premium,
		Average:  premium.Mul(AverageBandFactor).Round(0),
		LowRisk:  premium.Mul(LowRiskBandFactor).Round(0),
		HighRisk: premium.Mul(HighRiskBandFactor).Round(0),
	}
}

// DeriveNotes returns the BMI and smoking notes that apply, or a single healthy
// profile note when neither does. bmi may be nil.
func DeriveNotes(premium decimal.Decimal, bmi *domain.BMIResult, isSmoker bool) []domain.HealthNote {
	var notes []domain.HealthNote

	if bmi != nil && bmi.Value.GreaterThan(domain.BMIOverweightFloor) {
		saving := bmi.Value.Sub(domain.BMIOverweightFloor).Mul(BMISavingPerPoint).Round(0)
		notes = append(notes, domain.HealthNote{
			Kind:    domain.NoteBMI,
			Title:   "BMI Impact",
			Message: fmt.Sprintf("Your BMI of %s is above the healthy range. Reaching a BMI of 25 could lower your premium.", bmi.Value.StringFixed(1)),
			Saving:  saving,
		})
	}

	if isSmoker {
		notes = append(notes, domain.HealthNote{
			Kind:    domain.NoteSmoking,
			Title:   "Smoking Impact",
			Message: "Smoking significantly increases your premium. Quitting could reduce it by up to 30%.",
			Saving:  premium.Mul(SmokingSavingFactor).Round(0),
		})
	}

	if len(notes) == 0 {
		notes = append(notes, domain.HealthNote{
			Kind:    domain.NoteHealthy,
			Title:   "Healthy Profile",
			Message: "Your health profile is helping keep your premium low. Keep up the healthy lifestyle!",
			Saving:  decimal.Zero,
		})
	}

	return notes
}

// DeriveInsights bundles bands and notes for a quoted premium
func DeriveInsights(premium decimal.Decimal, bmi *domain.BMIResult, isSmoker bool) domain.Insights {
	return domain.Insights{
		Bands: DeriveBands(premium),
		Notes: DeriveNotes(premium, bmi, isSmoker),
	}
}
