package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/mediquote/internal/domain"
	"github.com/rgehrsitz/mediquote/internal/tui/components"
	"github.com/rgehrsitz/mediquote/internal/tui/tuimsg"
	"github.com/rgehrsitz/mediquote/internal/tui/tuistyles"
)

var (
	keyPlanPrev = key.NewBinding(key.WithKeys("left", "h"))
	keyPlanNext = key.NewBinding(key.WithKeys("right", "l"))
	keyTermUp   = key.NewBinding(key.WithKeys("up", "k", "+"))
	keyTermDown = key.NewBinding(key.WithKeys("down", "j", "-"))
	keyPurchase = key.NewBinding(key.WithKeys("enter", "b"))
)

// PlansModel shows the priced plans and the claimable schedule of the selection
type PlansModel struct {
	quotes    []domain.PlanQuote
	selection domain.PlanSelection
	width     int
	height    int
}

// NewPlansModel creates a new plans scene model
func NewPlansModel() *PlansModel {
	return &PlansModel{selection: domain.DefaultPlanSelection()}
}

// SetQuotes replaces the priced plans and the current selection
func (m *PlansModel) SetQuotes(quotes []domain.PlanQuote, sel domain.PlanSelection) {
	m.quotes = quotes
	m.selection = sel
}

// Selection returns the plan and term being shown
func (m *PlansModel) Selection() domain.PlanSelection {
	return m.selection
}

// SetSize updates the scene dimensions
func (m *PlansModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Selected returns the quote of the selected plan
func (m *PlansModel) Selected() (domain.PlanQuote, bool) {
	for _, q := range m.quotes {
		if q.Plan.ID == m.selection.PlanID {
			return q, true
		}
	}
	return domain.PlanQuote{}, false
}

func (m *PlansModel) selectedIndex() int {
	for i, q := range m.quotes {
		if q.Plan.ID == m.selection.PlanID {
			return i
		}
	}
	return 0
}

// Update handles messages for the plans scene
func (m *PlansModel) Update(msg tea.Msg) (*PlansModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.quotes) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keyPlanPrev):
		if i := m.selectedIndex(); i > 0 {
			return m, selectPlanCmd(m.quotes[i-1].Plan.ID)
		}

	case key.Matches(keyMsg, keyPlanNext):
		if i := m.selectedIndex(); i < len(m.quotes)-1 {
			return m, selectPlanCmd(m.quotes[i+1].Plan.ID)
		}

	case key.Matches(keyMsg, keyTermUp, keyTermDown):
		current, ok := m.Selected()
		if !ok {
			return m, nil
		}
		selector := components.NewTermSelector(current.TermOptions, m.selection.Term)
		var changed bool
		if key.Matches(keyMsg, keyTermUp) {
			changed = selector.Next()
		} else {
			changed = selector.Prev()
		}
		if changed {
			term := selector.Term()
			return m, func() tea.Msg { return tuimsg.TermSelectedMsg{Term: term} }
		}

	case key.Matches(keyMsg, keyPurchase):
		return m, func() tea.Msg { return tuimsg.PurchaseRequestedMsg{} }
	}

	return m, nil
}

func selectPlanCmd(id string) tea.Cmd {
	return func() tea.Msg { return tuimsg.PlanSelectedMsg{PlanID: id} }
}

// View renders the plans scene
func (m *PlansModel) View() string {
	if len(m.quotes) == 0 {
		return tuistyles.BorderStyle.Render("No plans to show yet.")
	}

	cards := make([]string, 0, len(m.quotes))
	for _, q := range m.quotes {
		cards = append(cards, components.NewPlanCard(q).SetSelected(q.Plan.ID == m.selection.PlanID).Render())
	}

	sections := []string{
		tuistyles.TitleStyle.Render("Choose Your Insurance Plan"),
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
	}

	if q, ok := m.Selected(); ok {
		selector := components.NewTermSelector(q.TermOptions, q.Term)
		selector.IsFocused = true
		sections = append(sections,
			selector.Render(),
			renderSchedule(q),
			components.NewCoverageMeter(q.Claimable, q.Plan.CoverageLimit).WithLabel("Coverage used").WithWidth(30).Render(),
			renderPlanSummary(q),
		)
	}

	sections = append(sections, tuistyles.HelpDescStyle.Render("←→: plan • ↑↓: term • enter/b: purchase • esc: back to results"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderSchedule(q domain.PlanQuote) string {
	var content strings.Builder
	content.WriteString(tuistyles.SectionStyle.Render("Claimable Amount Calculator"))
	content.WriteString("\n")
	content.WriteString(tuistyles.TableHeaderStyle.Render(fmt.Sprintf("%-8s %14s %14s %8s", "Years", "Total Paid", "Claimable", "Ratio")))
	for _, row := range q.Schedule {
		style := tuistyles.TableCellStyle
		if row.Selected {
			style = tuistyles.TableHighlightStyle
		}
		content.WriteString("\n")
		content.WriteString(style.Render(fmt.Sprintf("%-8d %14s %14s %8s",
			row.Years,
			tuistyles.FormatCurrency(row.TotalPaid),
			tuistyles.FormatCurrency(row.Claimable),
			row.Ratio.StringFixed(2)+"x")))
	}
	return content.String()
}

func renderPlanSummary(q domain.PlanQuote) string {
	var content strings.Builder
	content.WriteString(tuistyles.SectionStyle.Render("Plan Summary"))
	content.WriteString("\n")
	content.WriteString(fmt.Sprintf("Plan: %s  |  Term: %d years\n", q.Plan.Name, q.Term))
	content.WriteString(fmt.Sprintf("Annual premium: %s  |  Monthly: %s\n",
		tuistyles.FormatCurrency(q.AdjustedPremium), tuistyles.FormatCurrency(q.MonthlyPremium)))
	content.WriteString(fmt.Sprintf("Total premium: %s  |  Maximum claimable: %s",
		tuistyles.FormatCurrency(q.TotalPaid), tuistyles.FormatCurrency(q.Claimable)))
	return tuistyles.BorderStyle.Render(content.String())
}
