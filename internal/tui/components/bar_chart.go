package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/mediquote/internal/domain"
	"github.com/rgehrsitz/mediquote/internal/tui/tuistyles"
)

// BarChart draws labelled horizontal bars scaled to the largest value
type BarChart struct {
	Title string
	Bars  []domain.Bar
	Width int
}

// NewBarChart creates a chart for the given bars
func NewBarChart(title string, bars []domain.Bar) *BarChart {
	return &BarChart{
		Title: title,
		Bars:  bars,
		Width: 40,
	}
}

// WithWidth sets the width of the longest bar
func (c *BarChart) WithWidth(width int) *BarChart {
	c.Width = width
	return c
}

// BarLength returns the drawn length of a value, at least one cell for any
// positive amount.
func (c *BarChart) BarLength(value decimal.Decimal) int {
	peak := c.peak()
	if !peak.IsPositive() || !value.IsPositive() {
		return 0
	}
	n := int(value.Div(peak).Mul(decimal.NewFromInt(int64(c.Width))).Round(0).IntPart())
	if n < 1 {
		n = 1
	}
	if n > c.Width {
		n = c.Width
	}
	return n
}

func (c *BarChart) peak() decimal.Decimal {
	peak := decimal.Zero
	for _, b := range c.Bars {
		if b.Value.GreaterThan(peak) {
			peak = b.Value
		}
	}
	return peak
}

// Render returns the styled chart
func (c *BarChart) Render() string {
	if len(c.Bars) == 0 {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	labelWidth := 0
	for _, b := range c.Bars {
		if len(b.Label) > labelWidth {
			labelWidth = len(b.Label)
		}
	}

	var content strings.Builder
	if c.Title != "" {
		content.WriteString(tuistyles.TitleStyle.Render(c.Title))
		content.WriteString("\n\n")
	}

	labelStyle := lipgloss.NewStyle().Width(labelWidth + 2).Foreground(tuistyles.ColorMuted)
	for i, b := range c.Bars {
		color := tuistyles.ChartColors[i%len(tuistyles.ChartColors)]
		bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", c.BarLength(b.Value)))
		content.WriteString(labelStyle.Render(b.Label))
		content.WriteString(bar)
		content.WriteString(" ")
		content.WriteString(tuistyles.FormatCurrency(b.Value))
		if i < len(c.Bars)-1 {
			content.WriteString("\n")
		}
	}

	return content.String()
}
