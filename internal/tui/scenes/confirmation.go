package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/mediquote/internal/domain"
	"github.com/rgehrsitz/mediquote/internal/tui/tuimsg"
	"github.com/rgehrsitz/mediquote/internal/tui/tuistyles"
)

var keyNewQuote = key.NewBinding(key.WithKeys("enter", "n"))

// ConfirmationModel shows a simulated policy confirmation
type ConfirmationModel struct {
	confirmation *domain.PolicyConfirmation
	width        int
	height       int
}

// NewConfirmationModel creates a new confirmation scene model
func NewConfirmationModel() *ConfirmationModel {
	return &ConfirmationModel{}
}

// SetConfirmation updates the policy to display
func (m *ConfirmationModel) SetConfirmation(c *domain.PolicyConfirmation) {
	m.confirmation = c
}

// SetSize updates the scene dimensions
func (m *ConfirmationModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the confirmation scene
func (m *ConfirmationModel) Update(msg tea.Msg) (*ConfirmationModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keyNewQuote) {
		return m, func() tea.Msg { return tuimsg.NewQuoteMsg{} }
	}
	return m, nil
}

// View renders the confirmation scene
func (m *ConfirmationModel) View() string {
	if m.confirmation == nil {
		return tuistyles.BorderStyle.Render("No policy purchased.")
	}
	c := m.confirmation

	var content strings.Builder
	content.WriteString(tuistyles.SuccessStyle.Render("✓ Purchase Successful!"))
	content.WriteString("\n\n")
	rows := [][2]string{
		{"Policy Number", c.PolicyNumber},
		{"Plan", c.Plan.Name},
		{"Coverage", fmt.Sprintf("%d%% up to %s", c.Plan.CoveragePercentage, tuistyles.FormatCurrency(c.Plan.CoverageLimit))},
		{"Term", fmt.Sprintf("%d years", c.Term)},
		{"Annual Premium", tuistyles.FormatCurrency(c.AnnualPremium)},
		{"Start Date", c.StartDate.Format(domain.PolicyDateLayout)},
		{"End Date", c.EndDate.Format(domain.PolicyDateLayout)},
	}
	for _, r := range rows {
		content.WriteString(fmt.Sprintf("%s %s\n",
			tuistyles.MetricLabelStyle.Width(16).Render(r[0]+":"),
			tuistyles.MetricValueStyle.Render(r[1])))
	}
	content.WriteString("\n")
	content.WriteString(tuistyles.HelpDescStyle.Render("This is a simulated purchase; nothing has been stored.\nenter/n: start a new quote"))

	return tuistyles.ActiveBorderStyle.Render(content.String())
}
