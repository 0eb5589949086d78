package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/mediquote/internal/domain"
	"gopkg.in/yaml.v3"
)

// QuoteInput is the on-disk form of a submission: the applicant and an
// optional plan selection.
type QuoteInput struct {
	Applicant domain.ApplicantProfile `yaml:"applicant"`
	Plan      *domain.PlanSelection   `yaml:"plan,omitempty"`
}

// Selection returns the configured plan selection or the default one
func (q *QuoteInput) Selection() domain.PlanSelection {
	if q.Plan == nil || q.Plan.PlanID == "" {
		return domain.DefaultPlanSelection()
	}
	return *q.Plan
}

// InputParser handles parsing of applicant input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads an applicant input from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*QuoteInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates YAML input
func (ip *InputParser) Parse(data []byte) (*QuoteInput, error) {
	var input QuoteInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateInput(&input); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	return &input, nil
}

// ValidateInput validates the applicant and, when present, the plan selection
func (ip *InputParser) ValidateInput(input *QuoteInput) error {
	if err := input.Applicant.Validate(); err != nil {
		return err
	}
	if input.Plan != nil {
		if _, err := input.Plan.Validate(); err != nil {
			return fmt.Errorf("plan selection: %w", err)
		}
	}
	return nil
}

// CreateExampleProfile returns an input that passes validation
func (ip *InputParser) CreateExampleProfile() *QuoteInput {
	sel := domain.DefaultPlanSelection()
	return &QuoteInput{
		Applicant: domain.ApplicantProfile{
			Age:      35,
			HeightCm: 170,
			WeightKg: 70,
			IsSmoker: false,
			Region:   domain.RegionNortheast,
			Gender:   domain.GenderFemale,
			Children: 1,
		},
		Plan: &sel,
	}
}

// SaveProfile writes input as YAML
func (ip *InputParser) SaveProfile(input *QuoteInput, filename string) error {
	data, err := yaml.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
