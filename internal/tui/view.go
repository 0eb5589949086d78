package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.err != nil {
		return m.renderError()
	}

	var content string
	switch m.currentScene {
	case SceneForm:
		content = m.formModel.View()
	case SceneResults:
		content = m.resultsModel.View()
	case ScenePlans:
		content = m.plansModel.View()
	case SceneConfirmation:
		content = m.confirmationModel.View()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}

	return m.renderApp(content)
}

// renderApp wraps content with title bar and status bar
func (m Model) renderApp(content string) string {
	titleBar := m.renderTitleBar()
	statusBar := m.renderStatusBar()

	contentHeight := m.height - 4 // Title (2) + status (1) + padding (1)

	contentContainer := lipgloss.NewStyle().
		Height(max(contentHeight, 0)).
		Render(content)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleBar,
		contentContainer,
		statusBar,
	)
}

// renderTitleBar renders the application title and breadcrumb
func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("MediQuote - Health Insurance Premium Estimator")

	crumb := m.currentScene.String()
	if m.estimate.HasQuote() && m.currentScene != SceneForm {
		crumb = fmt.Sprintf("%s / %s, %d years", crumb, m.selection.PlanID, m.selection.Term)
	}
	if m.pending {
		crumb += "  ⠋ requesting premium..."
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		SubtitleStyle.Render(crumb),
	)
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	var shortcuts []string
	switch m.currentScene {
	case SceneForm:
		shortcuts = []string{
			formatShortcut("enter", "calculate"),
			formatShortcut("tab", "next field"),
			formatShortcut("ctrl+c", "quit"),
		}
	case SceneResults:
		shortcuts = []string{
			formatShortcut("p", "plans"),
			formatShortcut("esc", "edit"),
			formatShortcut("?", "help"),
			formatShortcut("q", "quit"),
		}
	case ScenePlans:
		shortcuts = []string{
			formatShortcut("←→", "plan"),
			formatShortcut("↑↓", "term"),
			formatShortcut("b", "buy"),
			formatShortcut("esc", "back"),
			formatShortcut("q", "quit"),
		}
	default:
		shortcuts = []string{
			formatShortcut("esc", "back"),
			formatShortcut("q", "quit"),
		}
	}

	statusText := strings.Join(shortcuts, " • ")

	if m.estimate.HasQuote() {
		source := SubtitleStyle.Render(string(m.estimate.Quote.Source))
		width := m.width - lipgloss.Width(statusText) - lipgloss.Width(source) - 2
		statusText = statusText + strings.Repeat(" ", max(0, width)) + source
	}

	return StatusBarStyle.Width(m.width).Render(statusText)
}

// formatShortcut formats a keyboard shortcut with key and description
func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}

// renderError renders an error message
func (m Model) renderError() string {
	errorMsg := "An error occurred"
	if m.err != nil {
		errorMsg = m.err.Error()
	}

	content := ErrorStyle.Render(
		fmt.Sprintf("Error: %s\n\nPress any key to continue...", errorMsg),
	)

	return m.renderApp(content)
}

// renderHelp lists the keys of every scene
func (m Model) renderHelp() string {
	sections := []struct {
		title string
		keys  [][2]string
	}{
		{"Applicant Details", [][2]string{
			{"tab / ↓", "next field"},
			{"shift+tab / ↑", "previous field"},
			{"← → / space", "change smoker, region, gender"},
			{"enter", "calculate premium (resubmitting replaces a pending request)"},
		}},
		{"Estimate", [][2]string{
			{"enter / p", "view insurance plans"},
			{"esc", "edit details"},
		}},
		{"Insurance Plans", [][2]string{
			{"← →", "choose plan (term resets when out of range)"},
			{"↑ ↓", "choose term"},
			{"enter / b", "purchase (simulated)"},
		}},
	}

	var b strings.Builder
	for _, s := range sections {
		b.WriteString(TitleStyle.Render(s.title))
		b.WriteString("\n")
		for _, k := range s.keys {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				HelpKeyStyle.Width(16).Render(k[0]),
				HelpDescStyle.Render(k[1])))
		}
		b.WriteString("\n")
	}
	b.WriteString(InfoStyle.Render("ctrl+c quits from anywhere"))

	return BorderStyle.Render(b.String())
}
