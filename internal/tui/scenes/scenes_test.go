package scenes

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/mediquote/internal/calculation"
	"github.com/rgehrsitz/mediquote/internal/domain"
	"github.com/rgehrsitz/mediquote/internal/tui/tuimsg"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func filledForm() *FormModel {
	m := NewFormModel()
	m.SetValue(FieldAge, "35")
	m.SetValue(FieldHeight, "170")
	m.SetValue(FieldWeight, "70")
	m.SetGender(domain.GenderFemale)
	return m
}

func TestFormModel_Defaults(t *testing.T) {
	m := NewFormModel()

	assert.Equal(t, FieldAge, m.Focused())
	assert.Nil(t, m.BMI())

	profile, err := m.Profile()
	require.Error(t, err)
	assert.Equal(t, domain.RegionNortheast, profile.Region)
	assert.Equal(t, 0, profile.Children)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	gender, ok := ve.Field("gender")
	require.True(t, ok)
	assert.Equal(t, "please select a gender", gender.Message)
}

func TestFormModel_LiveBMI(t *testing.T) {
	tests := []struct {
		name     string
		height   string
		weight   string
		expected string
		category domain.BMICategory
	}{
		{"normal after rounding", "174", "56", "18.5", domain.BMINormal},
		{"overweight", "170", "80", "27.7", domain.BMIOverweight},
		{"height zero", "0", "70", "", ""},
		{"weight not a number", "170", "7o", "", ""},
		{"weight missing", "170", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewFormModel()
			m.SetValue(FieldHeight, "170")
			m.SetValue(FieldWeight, "70")
			require.NotNil(t, m.BMI())

			m.SetValue(FieldHeight, tt.height)
			m.SetValue(FieldWeight, tt.weight)
			if tt.expected == "" {
				assert.Nil(t, m.BMI(), "invalid input clears the previous BMI")
				return
			}
			require.NotNil(t, m.BMI())
			assert.Equal(t, tt.expected, m.BMI().String())
			assert.Equal(t, tt.category, m.BMI().Category)
		})
	}
}

func TestFormModel_TypingUpdatesBMI(t *testing.T) {
	m := NewFormModel()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FieldHeight, m.Focused())

	m, _ = m.Update(keyRunes("180"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(keyRunes("81"))

	require.NotNil(t, m.BMI())
	assert.Equal(t, "25.0", m.BMI().String())
	assert.Equal(t, domain.BMIOverweight, m.BMI().Category)
}

func TestFormModel_FocusWraps(t *testing.T) {
	m := NewFormModel()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, FieldGender, m.Focused())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FieldAge, m.Focused())
}

func TestFormModel_Options(t *testing.T) {
	m := filledForm()
	for m.Focused() != FieldSmoker {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})

	profile, err := m.Profile()
	require.NoError(t, err)
	assert.True(t, profile.IsSmoker)
	assert.Equal(t, domain.RegionSoutheast, profile.Region)
	assert.Equal(t, domain.GenderMale, profile.Gender)
}

func TestFormModel_SubmitInvalid(t *testing.T) {
	m := NewFormModel()
	m.SetValue(FieldAge, "abc")
	m.SetValue(FieldHeight, "300")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, "please enter a whole number", m.FieldError("age"))
	assert.Equal(t, "height must be between 100 and 250 cm", m.FieldError("height"))
	assert.Equal(t, "please select a gender", m.FieldError("gender"))
	assert.Contains(t, m.View(), "please select a gender")
}

func TestFormModel_SubmitValid(t *testing.T) {
	m := filledForm()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(tuimsg.SubmitProfileMsg)
	require.True(t, ok)
	assert.Equal(t, domain.ApplicantProfile{
		Age:      35,
		HeightCm: 170,
		WeightKg: 70,
		Region:   domain.RegionNortheast,
		Gender:   domain.GenderFemale,
	}, msg.Profile)
}

func testQuotes() []domain.PlanQuote {
	return calculation.QuoteAllPlans(decimal.NewFromInt(10000), domain.DefaultPlanSelection())
}

func TestPlansModel_Update(t *testing.T) {
	m := NewPlansModel()
	m.SetQuotes(testQuotes(), domain.DefaultPlanSelection())

	selected, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, domain.PlanStandard, selected.Plan.ID)

	tests := []struct {
		name     string
		key      tea.KeyMsg
		expected tea.Msg
	}{
		{"next plan", tea.KeyMsg{Type: tea.KeyRight}, tuimsg.PlanSelectedMsg{PlanID: domain.PlanPremium}},
		{"previous plan", tea.KeyMsg{Type: tea.KeyLeft}, tuimsg.PlanSelectedMsg{PlanID: domain.PlanBasic}},
		{"longer term", tea.KeyMsg{Type: tea.KeyUp}, tuimsg.TermSelectedMsg{Term: 10}},
		{"purchase", keyRunes("b"), tuimsg.PurchaseRequestedMsg{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cmd := m.Update(tt.key)
			require.NotNil(t, cmd)
			assert.Equal(t, tt.expected, cmd())
		})
	}

	// already at the shortest term
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Nil(t, cmd)
}

func TestPlansModel_View(t *testing.T) {
	m := NewPlansModel()
	assert.Contains(t, m.View(), "No plans")

	m.SetQuotes(testQuotes(), domain.DefaultPlanSelection())
	view := m.View()
	assert.Contains(t, view, "Standard Plan")
	assert.Contains(t, view, "Claimable Amount Calculator")
	assert.Contains(t, view, "₹10,000")
	assert.Contains(t, view, "+3 more features")
}

func TestResultsModel(t *testing.T) {
	m := NewResultsModel()
	assert.Contains(t, m.View(), "No estimate yet")

	_, cmd := m.Update(keyRunes("p"))
	assert.Nil(t, cmd)

	quote := domain.NewFallbackQuote()
	insights := calculation.DeriveInsights(quote.Amount, nil, true)
	m.SetEstimate(&domain.Estimate{
		Status:   domain.StatusFallback,
		Quote:    &quote,
		Warnings: []string{domain.WarningConnection, domain.WarningDemoMode},
		Insights: &insights,
	})

	view := m.View()
	assert.Contains(t, view, "₹12,500")
	assert.Contains(t, view, "demo data")
	assert.Contains(t, view, "! "+domain.WarningConnection)
	assert.Contains(t, view, "High Risk")

	_, cmd = m.Update(keyRunes("p"))
	require.NotNil(t, cmd)
	assert.Equal(t, tuimsg.ShowPlansMsg{}, cmd())

	m.SetEstimate(&domain.Estimate{Status: domain.StatusRejected, Error: "Invalid gender"})
	assert.Contains(t, m.View(), "Invalid gender")
}

func TestConfirmationModel(t *testing.T) {
	m := NewConfirmationModel()
	assert.Contains(t, m.View(), "No policy")

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	c, err := calculation.NewPurchaserWith(func(int) int { return 7 }, func() time.Time { return start }).
		Purchase(decimal.NewFromInt(10000), domain.DefaultPlanSelection())
	require.NoError(t, err)
	m.SetConfirmation(&c)

	view := m.View()
	assert.Contains(t, view, "MHI-000007")
	assert.Contains(t, view, "March 1, 2024")
	assert.Contains(t, view, "March 1, 2029")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, tuimsg.NewQuoteMsg{}, cmd())
}
