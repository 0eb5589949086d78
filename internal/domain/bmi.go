package domain

import (
	"github.com/shopspring/decimal"
)

// BMICategory is the weight classification derived from a BMI value
type BMICategory string

const (
	BMIUnderweight BMICategory = "Underweight"
	BMINormal      BMICategory = "Normal"
	BMIOverweight  BMICategory = "Overweight"
	BMIObese       BMICategory = "Obese"
)

// BMI category thresholds (lower bound inclusive)
var (
	BMINormalFloor     = decimal.NewFromFloat(18.5)
	BMIOverweightFloor = decimal.NewFromInt(25)
	BMIObeseFloor      = decimal.NewFromInt(30)
)

// CategorizeBMI maps a BMI value onto its category using half-open intervals
func CategorizeBMI(value decimal.Decimal) BMICategory {
	switch {
	case value.LessThan(BMINormalFloor):
		return BMIUnderweight
	case value.LessThan(BMIOverweightFloor):
		return BMINormal
	case value.LessThan(BMIObeseFloor):
		return BMIOverweight
	default:
		return BMIObese
	}
}

// BMIResult is a computed body-mass index, rounded to one decimal place
type BMIResult struct {
	Value    decimal.Decimal `yaml:"value" json:"value"`
	Category BMICategory     `yaml:"category" json:"category"`
}

// Advice returns the guidance shown next to the BMI
func (b BMIResult) Advice() string {
	switch b.Category {
	case BMIOverweight, BMIObese:
		return "A higher BMI may result in higher insurance premiums. Consider consulting with a healthcare provider about weight management."
	case BMIUnderweight:
		return "Being underweight may affect your premium. Consider consulting with a healthcare provider about healthy weight gain."
	default:
		return "Your BMI is within the normal range, which may positively impact your insurance premium."
	}
}

// String renders the value with its single fractional digit
func (b BMIResult) String() string {
	return b.Value.StringFixed(1)
}
