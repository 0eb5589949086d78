package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/mediquote/internal/tui/tuistyles"
)

// CoverageMeter shows how much of a plan's coverage limit the claimable amount uses
type CoverageMeter struct {
	Claimable decimal.Decimal
	Limit     decimal.Decimal
	Width     int
	Label     string
}

// NewCoverageMeter creates a meter for claimable against limit
func NewCoverageMeter(claimable, limit decimal.Decimal) *CoverageMeter {
	return &CoverageMeter{
		Claimable: claimable,
		Limit:     limit,
		Width:     40,
	}
}

// WithLabel sets the meter label
func (c *CoverageMeter) WithLabel(label string) *CoverageMeter {
	c.Label = label
	return c
}

// WithWidth sets the bar width
func (c *CoverageMeter) WithWidth(width int) *CoverageMeter {
	c.Width = width
	return c
}

// Percentage returns the used share of the limit, capped at 100
func (c *CoverageMeter) Percentage() float64 {
	if !c.Limit.IsPositive() {
		return 0
	}
	pct := c.Claimable.Div(c.Limit).Mul(decimal.NewFromInt(100)).InexactFloat64()
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// IsCapped reports whether the claimable amount has reached the limit
func (c *CoverageMeter) IsCapped() bool {
	return c.Limit.IsPositive() && c.Claimable.GreaterThanOrEqual(c.Limit)
}

// Render returns the styled meter
func (c *CoverageMeter) Render() string {
	var content strings.Builder

	if c.Label != "" {
		labelStyle := lipgloss.NewStyle().
			Foreground(tuistyles.ColorForeground).
			Bold(true)
		content.WriteString(labelStyle.Render(c.Label))
		content.WriteString("\n")
	}

	percentage := c.Percentage()
	filled := int(float64(c.Width) * percentage / 100)
	if filled > c.Width {
		filled = c.Width
	}
	empty := c.Width - filled

	barColor := tuistyles.ColorSuccess
	if c.IsCapped() {
		barColor = tuistyles.ColorAccent
	}
	barStyle := lipgloss.NewStyle().Foreground(barColor)
	emptyStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorBorder)

	content.WriteString("[")
	if filled > 0 {
		content.WriteString(barStyle.Render(strings.Repeat("█", filled)))
	}
	if empty > 0 {
		content.WriteString(emptyStyle.Render(strings.Repeat("░", empty)))
	}
	content.WriteString("] ")

	percentStyle := lipgloss.NewStyle().
		Foreground(tuistyles.ColorPrimary).
		Bold(true)
	content.WriteString(percentStyle.Render(fmt.Sprintf("%.0f%%", percentage)))
	content.WriteString(tuistyles.HelpDescStyle.Render(fmt.Sprintf(" of %s", tuistyles.FormatCurrency(c.Limit))))

	return content.String()
}
