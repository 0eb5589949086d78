package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/mediquote/internal/domain"
	"github.com/rgehrsitz/mediquote/internal/tui/tuistyles"
)

var twelve = decimal.NewFromInt(12)

// PremiumCard shows the estimated annual premium, where it came from, and the BMI it was priced with
type PremiumCard struct {
	Quote domain.PremiumQuote
	BMI   *domain.BMIResult
	Width int
}

// NewPremiumCard creates a premium card for a quote
func NewPremiumCard(q domain.PremiumQuote, bmi *domain.BMIResult) *PremiumCard {
	return &PremiumCard{Quote: q, BMI: bmi, Width: 44}
}

// Source is the badge shown after the amount
func (c *PremiumCard) Source() string {
	if c.Quote.IsFallback() {
		return "demo data"
	}
	return "predicted"
}

func (c *PremiumCard) Render() string {
	var b strings.Builder
	b.WriteString(tuistyles.MetricLabelStyle.Render("Estimated Annual Premium"))
	b.WriteString("\n")
	b.WriteString(tuistyles.MetricValueStyle.Render(tuistyles.FormatCurrency(c.Quote.Amount)))
	b.WriteString(" ")
	b.WriteString(tuistyles.SubtitleStyle.Render("(" + c.Source() + ")"))
	b.WriteString("\n")
	b.WriteString(tuistyles.SubtitleStyle.Render("Monthly about " + tuistyles.FormatCurrency(c.Quote.Amount.Div(twelve).Round(0))))

	if c.BMI != nil {
		b.WriteString("\n")
		b.WriteString(tuistyles.CategoryStyle(string(c.BMI.Category)).
			Render("BMI " + c.BMI.String() + " (" + string(c.BMI.Category) + ")"))
	}

	border := tuistyles.ColorBorder
	if c.Quote.IsFallback() {
		border = tuistyles.ColorWarning
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2).
		Width(c.Width).
		Render(b.String())
}

// NoteCard renders one health note and its projected saving
type NoteCard struct {
	Note  domain.HealthNote
	Width int
}

func NewNoteCard(n domain.HealthNote) *NoteCard {
	return &NoteCard{Note: n, Width: 34}
}

// Icon marks the note kind
func (c *NoteCard) Icon() string {
	switch c.Note.Kind {
	case domain.NoteSmoking:
		return "🚭"
	case domain.NoteBMI:
		return "⚖"
	default:
		return "✓"
	}
}

func (c *NoteCard) Render() string {
	title := c.Icon() + " " + c.Note.Title
	lines := []string{tuistyles.MetricLabelStyle.Render(title)}
	if c.Note.HasSaving() {
		lines = append(lines, tuistyles.MetricPositiveStyle.Render(
			tuistyles.TrendIndicator(false)+" save "+tuistyles.FormatCurrency(c.Note.Saving)+" per year"))
	}
	lines = append(lines, tuistyles.SubtitleStyle.Render(c.Note.Message))

	border := tuistyles.ColorBorder
	if c.Note.Kind == domain.NoteHealthy {
		border = tuistyles.ColorSuccess
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(c.Width).
		Render(strings.Join(lines, "\n"))
}

// NoteGrid lays the notes out in rows of columns cards
func NoteGrid(notes []domain.HealthNote, columns int) string {
	if len(notes) == 0 {
		return ""
	}
	if columns < 1 {
		columns = 1
	}

	var rows []string
	for start := 0; start < len(notes); start += columns {
		end := start + columns
		if end > len(notes) {
			end = len(notes)
		}
		row := make([]string, 0, end-start)
		for _, n := range notes[start:end] {
			row = append(row, NewNoteCard(n).Render())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
