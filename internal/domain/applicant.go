package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation marks errors caused by applicant input outside its declared range
var ErrValidation = errors.New("validation error")

// Region is the applicant's area of residence
type Region string

const (
	RegionNortheast Region = "northeast"
	RegionSoutheast Region = "southeast"
	RegionSouthwest Region = "southwest"
	RegionNorthwest Region = "northwest"
)

// Regions lists the accepted regions in display order
var Regions = []Region{RegionNortheast, RegionSoutheast, RegionSouthwest, RegionNorthwest}

// Valid reports whether r is one of the accepted regions
func (r Region) Valid() bool {
	for _, candidate := range Regions {
		if r == candidate {
			return true
		}
	}
	return false
}

// Gender is the applicant's self-reported gender
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Genders lists the accepted genders in display order
var Genders = []Gender{GenderMale, GenderFemale, GenderOther}

// Valid reports whether g is one of the accepted genders
func (g Gender) Valid() bool {
	for _, candidate := range Genders {
		if g == candidate {
			return true
		}
	}
	return false
}

// Input bounds for an applicant profile (closed intervals)
const (
	MinAge      = 18
	MaxAge      = 100
	MinHeightCm = 100
	MaxHeightCm = 250
	MinWeightKg = 30
	MaxWeightKg = 300
	MinChildren = 0
	MaxChildren = 10
)

// ApplicantProfile holds the demographic and health attributes of one submission.
// It is passed by value so a submitted profile is never changed afterwards.
type ApplicantProfile struct {
	Age      int    `yaml:"age" json:"age"`
	HeightCm int    `yaml:"height_cm" json:"heightCm"`
	WeightKg int    `yaml:"weight_kg" json:"weightKg"`
	IsSmoker bool   `yaml:"is_smoker" json:"isSmoker"`
	Region   Region `yaml:"region" json:"region"`
	Gender   Gender `yaml:"gender" json:"gender"`
	Children int    `yaml:"children" json:"children"`
}

// FieldError describes a single invalid field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (fe FieldError) Error() string {
	return fe.Field + ": " + fe.Message
}

// ValidationError collects every invalid field of a profile
type ValidationError struct {
	Fields []FieldError
}

func (ve *ValidationError) Error() string {
	parts := make([]string, 0, len(ve.Fields))
	for _, f := range ve.Fields {
		parts = append(parts, f.Error())
	}
	return fmt.Sprintf("%v: %s", ErrValidation, strings.Join(parts, "; "))
}

// Is lets errors.Is match ErrValidation
func (ve *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Field returns the error for the named field, if any
func (ve *ValidationError) Field(name string) (FieldError, bool) {
	for _, f := range ve.Fields {
		if f.Field == name {
			return f, true
		}
	}
	return FieldError{}, false
}

// Validate checks every field against its declared range. It returns a
// *ValidationError listing all offending fields, or nil.
func (p ApplicantProfile) Validate() error {
	var fields []FieldError

	if p.Age < MinAge || p.Age > MaxAge {
		fields = append(fields, FieldError{Field: "age", Message: fmt.Sprintf("age must be between %d and %d years", MinAge, MaxAge)})
	}
	if p.HeightCm < MinHeightCm || p.HeightCm > MaxHeightCm {
		fields = append(fields, FieldError{Field: "height", Message: fmt.Sprintf("height must be between %d and %d cm", MinHeightCm, MaxHeightCm)})
	}
	if p.WeightKg < MinWeightKg || p.WeightKg > MaxWeightKg {
		fields = append(fields, FieldError{Field: "weight", Message: fmt.Sprintf("weight must be between %d and %d kg", MinWeightKg, MaxWeightKg)})
	}
	if p.Region == "" {
		fields = append(fields, FieldError{Field: "region", Message: "please select a region"})
	} else if !p.Region.Valid() {
		fields = append(fields, FieldError{Field: "region", Message: fmt.Sprintf("unknown region %q", p.Region)})
	}
	if p.Gender == "" {
		fields = append(fields, FieldError{Field: "gender", Message: "please select a gender"})
	} else if !p.Gender.Valid() {
		fields = append(fields, FieldError{Field: "gender", Message: fmt.Sprintf("unknown gender %q", p.Gender)})
	}
	if p.Children < MinChildren || p.Children > MaxChildren {
		fields = append(fields, FieldError{Field: "children", Message: fmt.Sprintf("number of children must be between %d and %d", MinChildren, MaxChildren)})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// DefaultApplicantProfile returns the form defaults: northeast region, no children
func DefaultApplicantProfile() ApplicantProfile {
	return ApplicantProfile{
		Region:   RegionNortheast,
		Children: 0,
	}
}
