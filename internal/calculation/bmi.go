package calculation

import (
	"errors"
	"fmt"

	"github.com/rgehrsitz/mediquote/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrInvalidInput is returned when a BMI is requested for a non-positive height or weight
var ErrInvalidInput = errors.New("invalid input")

var hundred = decimal.NewFromInt(100)

// ComputeBMI returns weight / (height in metres)², rounded to one decimal place,
// and the category of the rounded value.
func ComputeBMI(heightCm, weightKg int) (domain.BMIResult, error) {
	if heightCm <= 0 {
		return domain.BMIResult{}, fmt.Errorf("%w: height must be positive, got %d", ErrInvalidInput, heightCm)
	}
	if weightKg <= 0 {
		return domain.BMIResult{}, fmt.Errorf("%w: weight must be positive, got %d", ErrInvalidInput, weightKg)
	}

	metres := decimal.NewFromInt(int64(heightCm)).Div(hundred)
	value := decimal.NewFromInt(int64(weightKg)).Div(metres.Mul(metres)).Round(1)

	return domain.BMIResult{
		Value:    value,
		Category: domain.CategorizeBMI(value),
	}, nil
}

// RecomputeBMI is called whenever height or weight changes. Any previous result
// is replaced: an invalid pair yields nil rather than keeping a stale value.
func RecomputeBMI(heightCm, weightKg int) *domain.BMIResult {
	result, err := ComputeBMI(heightCm, weightKg)
	if err != nil {
		return nil
	}
	return &result
}
