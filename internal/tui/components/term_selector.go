package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/mediquote/internal/tui/tuistyles"
)

// TermSelector steps through a plan's discrete term options
type TermSelector struct {
	Options   []int
	Index     int
	IsFocused bool
}

// NewTermSelector creates a selector positioned on term, or on the first
// option when term is not offered.
func NewTermSelector(options []int, term int) *TermSelector {
	t := &TermSelector{Options: options}
	t.SetTerm(term)
	return t
}

// SetTerm moves the selector to term when it is one of the options
func (t *TermSelector) SetTerm(term int) {
	t.Index = 0
	for i, o := range t.Options {
		if o == term {
			t.Index = i
			return
		}
	}
}

// Term returns the selected term, or zero when there are no options
func (t *TermSelector) Term() int {
	if len(t.Options) == 0 {
		return 0
	}
	return t.Options[t.Index]
}

// Next moves to the next longer term; it reports whether the term changed
func (t *TermSelector) Next() bool {
	if t.Index+1 >= len(t.Options) {
		return false
	}
	t.Index++
	return true
}

// Prev moves to the next shorter term; it reports whether the term changed
func (t *TermSelector) Prev() bool {
	if t.Index == 0 {
		return false
	}
	t.Index--
	return true
}

// Render returns the options with the selected one highlighted
func (t *TermSelector) Render() string {
	labelStyle := tuistyles.MetricLabelStyle
	if t.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
	}

	parts := make([]string, 0, len(t.Options))
	for i, o := range t.Options {
		text := fmt.Sprintf(" %d yrs ", o)
		if i == t.Index {
			parts = append(parts, lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(tuistyles.ColorPrimary).
				Render(text))
		} else {
			parts = append(parts, tuistyles.UnselectedItemStyle.Render(text))
		}
	}

	return labelStyle.Render("Policy term: ") + strings.Join(parts, " ")
}
