// Package tuistyles holds the lipgloss palette shared by the TUI, its scenes and components.
package tuistyles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/mediquote/internal/output"
)

// Colors
var (
	ColorPrimary   = lipgloss.Color("#0F766E")
	ColorSecondary = lipgloss.Color("#14B8A6")
	ColorAccent    = lipgloss.Color("#F59E0B")
	ColorSuccess   = lipgloss.Color("#22C55E")
	ColorDanger    = lipgloss.Color("#EF4444")
	ColorWarning   = lipgloss.Color("#EAB308")
	ColorInfo      = lipgloss.Color("#3B82F6")

	ColorForeground = lipgloss.Color("#E5E7EB")
	ColorMuted      = lipgloss.Color("#9CA3AF")
	ColorBorder     = lipgloss.Color("#4B5563")

	// Chart bars, in the order Estimate, Average, Low Risk, High Risk
	ColorChartBar1 = lipgloss.Color("#4CAF50")
	ColorChartBar2 = lipgloss.Color("#2196F3")
	ColorChartBar3 = lipgloss.Color("#8BC34A")
	ColorChartBar4 = lipgloss.Color("#F44336")
)

// ChartColors lists the bar colors in display order
var ChartColors = []lipgloss.Color{ColorChartBar1, ColorChartBar2, ColorChartBar3, ColorChartBar4}

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary).
			MarginTop(1)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorForeground).
			Background(lipgloss.Color("#1F2937")).
			Padding(0, 1)

	StatusKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(1, 2)

	SelectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	UnselectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorForeground)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	MetricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	MetricPositiveStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	MetricNegativeStyle = lipgloss.NewStyle().Foreground(ColorDanger)

	FieldLabelStyle = lipgloss.NewStyle().
			Width(12).
			Foreground(ColorMuted)

	FieldFocusedLabelStyle = FieldLabelStyle.
				Foreground(ColorPrimary).
				Bold(true)

	HelpKeyStyle  = lipgloss.NewStyle().Foreground(ColorAccent)
	HelpDescStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	ErrorStyle   = lipgloss.NewStyle().Foreground(ColorDanger).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	InfoStyle    = lipgloss.NewStyle().Foreground(ColorInfo)
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)

	TableHeaderStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary)
	TableCellStyle      = lipgloss.NewStyle().Foreground(ColorForeground)
	TableHighlightStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
)

// MetricTrendStyle colors a delta; a saving is positive
func MetricTrendStyle(isPositive bool) lipgloss.Style {
	if isPositive {
		return MetricPositiveStyle
	}
	return MetricNegativeStyle
}

// TrendIndicator returns the arrow for a delta
func TrendIndicator(isPositive bool) string {
	if isPositive {
		return "↑"
	}
	return "↓"
}

// FormatCurrency renders an amount the same way the CLI output does
func FormatCurrency(amount decimal.Decimal) string {
	return output.FormatCurrency(amount)
}

// CategoryStyle colors a BMI category label
func CategoryStyle(category string) lipgloss.Style {
	switch category {
	case "Normal":
		return MetricPositiveStyle
	case "Underweight", "Overweight":
		return WarningStyle
	default:
		return MetricNegativeStyle
	}
}
