package scenes

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/mediquote/internal/domain"
	"github.com/rgehrsitz/mediquote/internal/tui/components"
	"github.com/rgehrsitz/mediquote/internal/tui/tuimsg"
	"github.com/rgehrsitz/mediquote/internal/tui/tuistyles"
)

var keyShowPlans = key.NewBinding(key.WithKeys("enter", "p"))

// ResultsModel shows the premium, warnings, comparison chart, and health notes
type ResultsModel struct {
	estimate *domain.Estimate
	width    int
	height   int
}

// NewResultsModel creates a new results scene model
func NewResultsModel() *ResultsModel {
	return &ResultsModel{}
}

// SetEstimate updates the estimate to display
func (m *ResultsModel) SetEstimate(est *domain.Estimate) {
	m.estimate = est
}

// SetSize updates the scene dimensions
func (m *ResultsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the results scene
func (m *ResultsModel) Update(msg tea.Msg) (*ResultsModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keyShowPlans) && m.estimate.HasQuote() {
		return m, func() tea.Msg { return tuimsg.ShowPlansMsg{} }
	}
	return m, nil
}

// View renders the results scene
func (m *ResultsModel) View() string {
	if m.estimate == nil {
		return tuistyles.BorderStyle.Render("No estimate yet.\n\nFill in the form and press enter.")
	}

	if !m.estimate.HasQuote() {
		return m.renderRejected()
	}

	sections := []string{m.renderPremium()}
	if len(m.estimate.Warnings) > 0 {
		sections = append(sections, m.renderWarnings())
	}
	if m.estimate.Insights != nil {
		chart := components.NewBarChart("Premium Comparison", m.estimate.Insights.Bands.Bars()).WithWidth(36)
		sections = append(sections, tuistyles.BorderStyle.Render(chart.Render()))
		sections = append(sections, m.renderNotes())
	}
	sections = append(sections, tuistyles.HelpDescStyle.Render("enter/p: view insurance plans • esc: edit details"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *ResultsModel) renderPremium() string {
	return components.NewPremiumCard(*m.estimate.Quote, m.estimate.BMI).Render()
}

func (m *ResultsModel) renderWarnings() string {
	lines := make([]string, 0, len(m.estimate.Warnings))
	for _, w := range m.estimate.Warnings {
		lines = append(lines, tuistyles.WarningStyle.Render("! "+w))
	}
	return strings.Join(lines, "\n")
}

func (m *ResultsModel) renderNotes() string {
	return components.NoteGrid(m.estimate.Insights.Notes, 2)
}

func (m *ResultsModel) renderRejected() string {
	msg := m.estimate.Error
	if msg == "" {
		msg = "The prediction service could not price this profile."
	}
	return tuistyles.BorderStyle.Render(
		tuistyles.ErrorStyle.Render("Prediction Error") + "\n\n" + msg + "\n\n" +
			tuistyles.HelpDescStyle.Render("esc: edit details"))
}
