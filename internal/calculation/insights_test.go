package calculation

import (
	"testing"

	"github.com/rgehrsitz/mediquote/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bmiOf(value string) *domain.BMIResult {
	v := decimal.RequireFromString(value)
	return &domain.BMIResult{Value: v, Category: domain.CategorizeBMI(v)}
}

func TestDeriveBands(t *testing.T) {
	bands := DeriveBands(decimal.NewFromInt(12500))

	assert.Equal(t, "12500", bands.Estimate.String())
	assert.Equal(t, "10625", bands.Average.String())
	assert.Equal(t, "7500", bands.LowRisk.String())
	assert.Equal(t, "16250", bands.HighRisk.String())

	bars := bands.Bars()
	require.Len(t, bars, 4)
	assert.Equal(t, "Your Estimate", bars[0].Label)
	assert.Equal(t, "Average", bars[1].Label)
	assert.Equal(t, "Low Risk", bars[2].Label)
	assert.Equal(t, "High Risk", bars[3].Label)
}

func TestDeriveBands_Rounding(t *testing.T) {
	bands := DeriveBands(decimal.RequireFromString("18533.33"))
	assert.Equal(t, "15753", bands.Average.String())
	assert.Equal(t, "11120", bands.LowRisk.String())
	assert.Equal(t, "24093", bands.HighRisk.String())
}

func TestDeriveNotes_SmokerWithHighBMI(t *testing.T) {
	insights := DeriveInsights(decimal.NewFromInt(20000), bmiOf("27"), true)

	bmiNote, ok := insights.Note(domain.NoteBMI)
	require.True(t, ok)
	assert.Equal(t, "1000", bmiNote.Saving.String())

	smokeNote, ok := insights.Note(domain.NoteSmoking)
	require.True(t, ok)
	assert.Equal(t, "6000", smokeNote.Saving.String())

	_, ok = insights.Note(domain.NoteHealthy)
	assert.False(t, ok)
	assert.Len(t, insights.Notes, 2)
}

func TestDeriveNotes(t *testing.T) {
	tests := []struct {
		name     string
		bmi      *domain.BMIResult
		smoker   bool
		expected []domain.NoteKind
	}{
		{"healthy", bmiOf("22.0"), false, []domain.NoteKind{domain.NoteHealthy}},
		{"bmi exactly 25 is not penalised", bmiOf("25.0"), false, []domain.NoteKind{domain.NoteHealthy}},
		{"bmi just above 25", bmiOf("25.1"), false, []domain.NoteKind{domain.NoteBMI}},
		{"smoker only", bmiOf("21.3"), true, []domain.NoteKind{domain.NoteSmoking}},
		{"no bmi", nil, false, []domain.NoteKind{domain.NoteHealthy}},
		{"no bmi smoker", nil, true, []domain.NoteKind{domain.NoteSmoking}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notes := DeriveNotes(decimal.NewFromInt(15000), tt.bmi, tt.smoker)
			kinds := make([]domain.NoteKind, 0, len(notes))
			for _, n := range notes {
				kinds = append(kinds, n.Kind)
			}
			assert.Equal(t, tt.expected, kinds)
		})
	}
}

func TestDeriveNotes_BMISavingRounds(t *testing.T) {
	notes := DeriveNotes(decimal.NewFromInt(10000), bmiOf("25.1"), false)
	require.Len(t, notes, 1)
	assert.Equal(t, "50", notes[0].Saving.String())
	assert.True(t, notes[0].HasSaving())
	assert.Contains(t, notes[0].Message, "25.1")
}

func TestDeriveNotes_HealthyHasNoSaving(t *testing.T) {
	notes := DeriveNotes(decimal.NewFromInt(10000), bmiOf("20.0"), false)
	require.Len(t, notes, 1)
	assert.False(t, notes[0].HasSaving())
}
