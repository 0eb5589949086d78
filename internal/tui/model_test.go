package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/mediquote/internal/calculation"
	"github.com/rgehrsitz/mediquote/internal/domain"
	"github.com/rgehrsitz/mediquote/internal/prediction"
	"github.com/rgehrsitz/mediquote/internal/tui/tuimsg"
)

// ageQuotes prices every profile at age × 1000 unless err is set
type ageQuotes struct {
	err error
}

func (q *ageQuotes) RequestQuote(_ context.Context, p domain.ApplicantProfile, _ *domain.BMIResult) (domain.PremiumQuote, error) {
	if q.err != nil {
		return domain.PremiumQuote{}, q.err
	}
	return domain.NewServiceQuote(decimal.NewFromInt(int64(p.Age) * 1000)), nil
}

func profileAged(age int) domain.ApplicantProfile {
	return domain.ApplicantProfile{
		Age:      age,
		HeightCm: 170,
		WeightKg: 70,
		Region:   domain.RegionNortheast,
		Gender:   domain.GenderFemale,
	}
}

func newTestModel(quotes calculation.QuoteRequester) Model {
	return NewModel(calculation.NewEstimateEngine(quotes))
}

// step feeds msg to the model and returns the concrete model and command
func step(t *testing.T, m tea.Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

// submit issues a profile and runs the resulting estimate command
func submit(t *testing.T, m Model, p domain.ApplicantProfile) (Model, tea.Msg) {
	t.Helper()
	m, cmd := step(t, m, tuimsg.SubmitProfileMsg{Profile: p})
	require.NotNil(t, cmd)
	return m, cmd()
}

func TestModel_SubmitAppliesEstimate(t *testing.T) {
	m := newTestModel(&ageQuotes{})

	m, result := submit(t, m, profileAged(30))
	assert.True(t, m.Pending())

	m, _ = step(t, m, result)
	assert.False(t, m.Pending())
	assert.Equal(t, SceneResults, m.CurrentScene())

	est := m.Estimate()
	require.True(t, est.HasQuote())
	assert.True(t, decimal.NewFromInt(30000).Equal(est.Quote.Amount))
	assert.NotEmpty(t, est.SubmissionID)
	assert.Equal(t, domain.DefaultPlanSelection(), m.Selection())
	assert.Len(t, est.Plans, 3)
}

func TestModel_LatestSubmissionWins(t *testing.T) {
	tests := []struct {
		name     string
		oldFirst bool
	}{
		{"stale result arrives last", false},
		{"stale result arrives first", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(&ageQuotes{})

			m, cmdA := step(t, m, tuimsg.SubmitProfileMsg{Profile: profileAged(30)})
			m, cmdB := step(t, m, tuimsg.SubmitProfileMsg{Profile: profileAged(60)})
			msgA, msgB := cmdA(), cmdB()

			if tt.oldFirst {
				m, _ = step(t, m, msgA)
				assert.Nil(t, m.Estimate())
				assert.True(t, m.Pending())
				m, _ = step(t, m, msgB)
			} else {
				m, _ = step(t, m, msgB)
				m, _ = step(t, m, msgA)
			}

			require.True(t, m.Estimate().HasQuote())
			assert.True(t, decimal.NewFromInt(60000).Equal(m.Estimate().Quote.Amount))
			assert.False(t, m.Pending())
		})
	}
}

func TestModel_StaleResultCancelledContext(t *testing.T) {
	m := newTestModel(&ageQuotes{})

	ticket, ctx := m.tracker.Begin(context.Background())
	_, _ = m.tracker.Begin(context.Background())

	assert.ErrorIs(t, ctx.Err(), context.Canceled)
	m, _ = step(t, m, EstimateCompleteMsg{Ticket: ticket, Estimate: &domain.Estimate{}})
	assert.Nil(t, m.Estimate())
}

func TestModel_RejectedEstimate(t *testing.T) {
	m := newTestModel(&ageQuotes{err: &prediction.RejectedError{StatusCode: 400, Message: "Invalid region"}})

	m, result := submit(t, m, profileAged(30))
	m, _ = step(t, m, result)

	assert.Equal(t, SceneResults, m.CurrentScene())
	assert.Equal(t, domain.StatusRejected, m.Estimate().Status)
	assert.Equal(t, "Invalid region", m.Estimate().Error)

	m, _ = step(t, m, tuimsg.ShowPlansMsg{})
	assert.Equal(t, SceneResults, m.CurrentScene())
}

func TestModel_FallbackEstimate(t *testing.T) {
	m := newTestModel(&ageQuotes{err: prediction.ErrUnreachable})

	m, result := submit(t, m, profileAged(30))
	m, _ = step(t, m, result)

	est := m.Estimate()
	require.True(t, est.HasQuote())
	assert.True(t, est.Quote.IsFallback())
	assert.True(t, domain.FallbackPremium.Equal(est.Quote.Amount))
	assert.Contains(t, est.Warnings, domain.WarningConnection)
}

func TestModel_ValidationErrorReturnsToForm(t *testing.T) {
	m := newTestModel(&ageQuotes{})

	m, result := submit(t, m, profileAged(12))
	m, _ = step(t, m, result)

	assert.Equal(t, SceneForm, m.CurrentScene())
	assert.Nil(t, m.Estimate())
	assert.NotEmpty(t, m.formModel.FieldError("age"))
}

func TestModel_PlanAndTermSelection(t *testing.T) {
	m := newTestModel(&ageQuotes{})
	m, result := submit(t, m, profileAged(20))
	m, _ = step(t, m, result)

	m, _ = step(t, m, tuimsg.PlanSelectedMsg{PlanID: domain.PlanPremium})
	assert.Equal(t, domain.PlanSelection{PlanID: domain.PlanPremium, Term: 5}, m.Selection())

	m, _ = step(t, m, tuimsg.TermSelectedMsg{Term: 20})
	assert.Equal(t, 20, m.Selection().Term)

	// basic tops out at 10 years, so the term falls back to its minimum
	m, _ = step(t, m, tuimsg.PlanSelectedMsg{PlanID: domain.PlanBasic})
	assert.Equal(t, domain.PlanSelection{PlanID: domain.PlanBasic, Term: 3}, m.Selection())

	basic, ok := m.Estimate().PlanByID(domain.PlanBasic)
	require.True(t, ok)
	assert.Equal(t, 3, basic.Term)
	assert.True(t, decimal.NewFromInt(16000).Equal(basic.AdjustedPremium))

	m, _ = step(t, m, tuimsg.TermSelectedMsg{Term: 15})
	assert.Equal(t, 3, m.Selection().Term)
	assert.Error(t, m.err)
}

func TestModel_Purchase(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	m := newTestModel(&ageQuotes{}).WithPurchaser(
		calculation.NewPurchaserWith(func(int) int { return 42 }, func() time.Time { return start }))

	m, cmd := step(t, m, tuimsg.PurchaseRequestedMsg{})
	assert.Nil(t, cmd, "nothing to buy before an estimate")

	m, result := submit(t, m, profileAged(20))
	m, _ = step(t, m, result)

	m, cmd = step(t, m, tuimsg.PurchaseRequestedMsg{})
	require.NotNil(t, cmd)
	m, _ = step(t, m, cmd())

	assert.Equal(t, SceneConfirmation, m.CurrentScene())
	require.NotNil(t, m.confirmation)
	assert.Equal(t, "MHI-000042", m.confirmation.PolicyNumber)
	assert.Equal(t, start.AddDate(5, 0, 0), m.confirmation.EndDate)

	m, _ = step(t, m, tuimsg.NewQuoteMsg{})
	assert.Equal(t, SceneForm, m.CurrentScene())
	assert.Nil(t, m.confirmation)
}

func TestModel_KeyHandling(t *testing.T) {
	m := newTestModel(&ageQuotes{})

	_, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	// q is text on the form
	typed, _ := step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.Equal(t, SceneForm, typed.CurrentScene())

	m, result := submit(t, m, profileAged(30))
	m, _ = step(t, m, result)

	_, cmd = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	require.NotNil(t, cmd)
	m, _ = step(t, m, cmd())
	assert.Equal(t, ScenePlans, m.CurrentScene())

	_, cmd = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateMsg{Scene: SceneResults}, cmd())
}

func TestModel_ErrorDismissedByAnyKey(t *testing.T) {
	m := newTestModel(&ageQuotes{})

	m, _ = step(t, m, ErrorMsg{Err: errors.New("boom")})
	assert.Contains(t, m.View(), "boom")

	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Nil(t, cmd)
	assert.NoError(t, m.err)
}

func TestModel_View(t *testing.T) {
	m := newTestModel(&ageQuotes{err: prediction.ErrUnreachable})
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 60})
	assert.Contains(t, m.View(), "Get Your Health Insurance Premium Estimate")

	m, result := submit(t, m, profileAged(30))
	m, _ = step(t, m, result)

	view := m.View()
	assert.Contains(t, view, "₹12,500")
	assert.Contains(t, view, "Premium Comparison")
	assert.Contains(t, view, domain.WarningDemoMode)
}

func TestScene_String(t *testing.T) {
	assert.Equal(t, "Insurance Plans", ScenePlans.String())
	assert.Equal(t, "Unknown", Scene(99).String())
}
