package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/mediquote/internal/calculation"
	"github.com/rgehrsitz/mediquote/internal/domain"
	"github.com/rgehrsitz/mediquote/internal/tui/tuimsg"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// Standard tea.Msg types
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.formModel.SetSize(msg.Width, msg.Height)
		m.resultsModel.SetSize(msg.Width, msg.Height)
		m.plansModel.SetSize(msg.Width, msg.Height)
		m.confirmationModel.SetSize(msg.Width, msg.Height)
		return m, nil

	// Custom messages
	case NavigateMsg:
		m.previousScene = m.currentScene
		m.currentScene = msg.Scene
		return m, nil

	case QuitMsg:
		return m, tea.Quit

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case tuimsg.SubmitProfileMsg:
		// Begin cancels whatever submission is still in flight.
		ticket, ctx := m.tracker.Begin(context.Background())
		m.pending = true
		m.formModel.SetPending(true)
		return m, estimateCmd(ctx, m.engine, ticket, msg.Profile)

	case EstimateCompleteMsg:
		if !m.tracker.Complete(msg.Ticket) {
			return m, nil
		}
		m.pending = false
		m.formModel.SetPending(false)
		if msg.Err != nil {
			if errors.Is(msg.Err, domain.ErrValidation) {
				m.formModel.SetValidationErrors(msg.Err)
				m.currentScene = SceneForm
				return m, nil
			}
			m.err = msg.Err
			return m, nil
		}
		m.applyEstimate(msg.Estimate)
		m.previousScene = SceneForm
		m.currentScene = SceneResults
		return m, nil

	case tuimsg.ShowPlansMsg:
		if m.estimate.HasQuote() {
			m.previousScene = m.currentScene
			m.currentScene = ScenePlans
		}
		return m, nil

	case tuimsg.PlanSelectedMsg:
		sel, err := calculation.SelectPlan(m.selection, msg.PlanID)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.setSelection(sel)
		return m, nil

	case tuimsg.TermSelectedMsg:
		sel, err := calculation.SelectTerm(m.selection, msg.Term)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.setSelection(sel)
		return m, nil

	case tuimsg.PurchaseRequestedMsg:
		if !m.estimate.HasQuote() {
			return m, nil
		}
		return m, purchaseCmd(m.purchaser, m.estimate.Quote.Amount, m.selection)

	case PurchaseCompleteMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		c := msg.Confirmation
		m.confirmation = &c
		m.confirmationModel.SetConfirmation(m.confirmation)
		m.previousScene = m.currentScene
		m.currentScene = SceneConfirmation
		return m, nil

	case tuimsg.NewQuoteMsg:
		m.confirmation = nil
		m.confirmationModel.SetConfirmation(nil)
		m.previousScene = m.currentScene
		m.currentScene = SceneForm
		return m, nil
	}

	// Delegate to scene-specific update handlers
	return m.updateCurrentScene(msg)
}

// applyEstimate makes est the displayed outcome and resets the plan selection
func (m *Model) applyEstimate(est *domain.Estimate) {
	m.estimate = est
	m.selection = m.defaultSelection()
	m.resultsModel.SetEstimate(est)
	m.plansModel.SetQuotes(est.Plans, m.selection)
}

// setSelection reprices every plan for a new selection
func (m *Model) setSelection(sel domain.PlanSelection) {
	m.selection = sel
	if !m.estimate.HasQuote() {
		return
	}
	m.estimate.Plans = calculation.QuoteAllPlans(m.estimate.Quote.Amount, sel)
	m.plansModel.SetQuotes(m.estimate.Plans, sel)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Any key dismisses an error
	if m.err != nil {
		m.err = nil
		return m, nil
	}

	// The form takes free text, so only ctrl+c is global there
	if m.currentScene == SceneForm {
		return m.updateCurrentScene(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "?":
		if m.currentScene != SceneHelp {
			return m, func() tea.Msg {
				return NavigateMsg{Scene: SceneHelp}
			}
		}

	case "esc":
		back := m.backScene()
		return m, func() tea.Msg {
			return NavigateMsg{Scene: back}
		}
	}

	// Let the current scene handle other keys
	return m.updateCurrentScene(msg)
}

// backScene is where esc leads from the current scene
func (m Model) backScene() Scene {
	switch m.currentScene {
	case ScenePlans:
		return SceneResults
	case SceneHelp:
		if m.previousScene != SceneHelp {
			return m.previousScene
		}
		return SceneForm
	default:
		return SceneForm
	}
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case SceneForm:
		m.formModel, cmd = m.formModel.Update(msg)
	case SceneResults:
		m.resultsModel, cmd = m.resultsModel.Update(msg)
	case ScenePlans:
		m.plansModel, cmd = m.plansModel.Update(msg)
	case SceneConfirmation:
		m.confirmationModel, cmd = m.confirmationModel.Update(msg)
	}
	return m, cmd
}
