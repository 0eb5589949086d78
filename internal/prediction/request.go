package prediction

import (
	"github.com/rgehrsitz/mediquote/internal/domain"
)

// Request is the payload posted to the prediction service. Height and weight
// are folded into BMI and never sent. BMI is a float so it encodes as a JSON
// number rather than decimal's quoted string.
type Request struct {
	Age      int     `json:"age"`
	BMI      float64 `json:"bmi"`
	IsSmoker bool    `json:"isSmoker"`
	Region   string  `json:"region"`
	Children int     `json:"children"`
	Gender   string  `json:"gender"`
}

// NewRequest normalizes a profile into the service payload. A missing BMI is sent as 0.
func NewRequest(profile domain.ApplicantProfile, bmi *domain.BMIResult) Request {
	var value float64
	if bmi != nil {
		value = bmi.Value.InexactFloat64()
	}
	return Request{
		Age:      profile.Age,
		BMI:      value,
		IsSmoker: profile.IsSmoker,
		Region:   string(profile.Region),
		Children: profile.Children,
		Gender:   string(profile.Gender),
	}
}
