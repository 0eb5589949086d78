package domain

import (
	"github.com/shopspring/decimal"
)

// Bands are the comparison values derived from a premium
type Bands struct {
	Estimate decimal.Decimal `json:"estimate"`
	Average  decimal.Decimal `json:"average"`
	LowRisk  decimal.Decimal `json:"lowRisk"`
	HighRisk decimal.Decimal `json:"highRisk"`
}

// Bar is one labelled value of the comparison chart
type Bar struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// Bars returns the chart series in display order
func (b Bands) Bars() []Bar {
	return []Bar{
		{Label: "Your Estimate", Value: b.Estimate},
		{Label: "Average", Value: b.Average},
		{Label: "Low Risk", Value: b.LowRisk},
		{Label: "High Risk", Value: b.HighRisk},
	}
}

// NoteKind identifies a health note
type NoteKind string

const (
	NoteBMI     NoteKind = "bmi"
	NoteSmoking NoteKind = "smoking"
	NoteHealthy NoteKind = "healthy"
)

// HealthNote is an advisory message, optionally with a projected annual saving
type HealthNote struct {
	Kind    NoteKind        `json:"kind"`
	Title   string          `json:"title"`
	Message string          `json:"message"`
	Saving  decimal.Decimal `json:"saving"`
}

// HasSaving reports whether the note carries a positive saving
func (n HealthNote) HasSaving() bool {
	return n.Saving.IsPositive()
}

// Insights bundles the bands and notes shown with a quote
type Insights struct {
	Bands Bands        `json:"bands"`
	Notes []HealthNote `json:"notes"`
}

// Note returns the note of the given kind, if present
func (i Insights) Note(kind NoteKind) (HealthNote, bool) {
	for _, n := range i.Notes {
		if n.Kind == kind {
			return n, true
		}
	}
	return HealthNote{}, false
}
