package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/mediquote/internal/domain"
	"github.com/rgehrsitz/mediquote/internal/tui/tuistyles"
)

// headlineFeatures is how many features a plan card lists before "+N more"
const headlineFeatures = 3

// PlanCard displays a compact overview of one priced plan
type PlanCard struct {
	Quote      domain.PlanQuote
	IsSelected bool
	Width      int
}

// NewPlanCard creates a card for a priced plan
func NewPlanCard(q domain.PlanQuote) *PlanCard {
	return &PlanCard{
		Quote: q,
		Width: 34,
	}
}

// SetSelected marks the card as selected
func (p *PlanCard) SetSelected(selected bool) *PlanCard {
	p.IsSelected = selected
	return p
}

// WithWidth sets the card width
func (p *PlanCard) WithWidth(width int) *PlanCard {
	p.Width = width
	return p
}

// Render returns the styled plan card
func (p *PlanCard) Render() string {
	q := p.Quote
	var content strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(tuistyles.ColorPrimary)
	content.WriteString(titleStyle.Render(q.Plan.Name))
	content.WriteString("\n")
	content.WriteString(tuistyles.SubtitleStyle.Render(q.Plan.Description))
	content.WriteString("\n\n")

	content.WriteString(tuistyles.MetricValueStyle.Render(tuistyles.FormatCurrency(q.AdjustedPremium)))
	content.WriteString(tuistyles.HelpDescStyle.Render(" /year"))
	content.WriteString("\n")
	content.WriteString(tuistyles.HelpDescStyle.Render(fmt.Sprintf("%s /month", tuistyles.FormatCurrency(q.MonthlyPremium))))
	content.WriteString("\n\n")

	content.WriteString(fmt.Sprintf("%d%% coverage up to %s\n",
		q.Plan.CoveragePercentage, tuistyles.FormatCurrency(q.Plan.CoverageLimit)))

	features, more := q.Plan.HeadlineFeatures(headlineFeatures)
	featureStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	for _, f := range features {
		content.WriteString(featureStyle.Render("✓ " + f))
		content.WriteString("\n")
	}
	if more > 0 {
		content.WriteString(featureStyle.Render(fmt.Sprintf("+%d more features", more)))
		content.WriteString("\n")
	}

	borderColor := tuistyles.ColorBorder
	if p.IsSelected {
		borderColor = tuistyles.ColorPrimary
	}
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(p.Width)

	return cardStyle.Render(strings.TrimRight(content.String(), "\n"))
}

// RenderCompact returns a single-line version
func (p *PlanCard) RenderCompact() string {
	marker := "  "
	style := tuistyles.UnselectedItemStyle
	if p.IsSelected {
		marker = "▸ "
		style = tuistyles.SelectedItemStyle
	}
	return style.Render(fmt.Sprintf("%s%-14s %s/yr", marker, p.Quote.Plan.Name, tuistyles.FormatCurrency(p.Quote.AdjustedPremium)))
}
