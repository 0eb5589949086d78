package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/mediquote/internal/calculation"
	"github.com/rgehrsitz/mediquote/internal/domain"
	"github.com/rgehrsitz/mediquote/internal/prediction"
	"github.com/rgehrsitz/mediquote/internal/tui/scenes"
)

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	// Engines
	engine    *calculation.EstimateEngine
	tracker   *prediction.Tracker
	purchaser *calculation.Purchaser

	// Latest applied outcome and the plan the user is looking at
	estimate     *domain.Estimate
	selection    domain.PlanSelection
	confirmation *domain.PolicyConfirmation

	// Scene models
	formModel         *scenes.FormModel
	resultsModel      *scenes.ResultsModel
	plansModel        *scenes.PlansModel
	confirmationModel *scenes.ConfirmationModel

	// Error state
	err error

	// A submission is in flight
	pending bool
}

// NewModel creates a new application model around an estimate engine
func NewModel(engine *calculation.EstimateEngine) Model {
	return Model{
		currentScene:      SceneForm,
		engine:            engine,
		tracker:           prediction.NewTracker(),
		purchaser:         calculation.NewPurchaser(),
		selection:         domain.DefaultPlanSelection(),
		formModel:         scenes.NewFormModel(),
		resultsModel:      scenes.NewResultsModel(),
		plansModel:        scenes.NewPlansModel(),
		confirmationModel: scenes.NewConfirmationModel(),
		width:             80,
		height:            24,
	}
}

// WithPurchaser replaces the purchase simulator
func (m Model) WithPurchaser(p *calculation.Purchaser) Model {
	m.purchaser = p
	return m
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Estimate returns the latest applied estimate
func (m Model) Estimate() *domain.Estimate {
	return m.estimate
}

// Selection returns the current plan selection
func (m Model) Selection() domain.PlanSelection {
	return m.selection
}

// CurrentScene returns the scene being shown
func (m Model) CurrentScene() Scene {
	return m.currentScene
}

// Pending reports whether a submission is in flight
func (m Model) Pending() bool {
	return m.pending
}

// estimateCmd returns a command that runs one submission and tags the
// outcome with its ticket.
func estimateCmd(ctx context.Context, engine *calculation.EstimateEngine, ticket prediction.Ticket, profile domain.ApplicantProfile) tea.Cmd {
	return func() tea.Msg {
		est, err := engine.Estimate(ctx, profile)
		if est != nil {
			est.SubmissionID = ticket.String()
		}
		return EstimateCompleteMsg{
			Ticket:   ticket,
			Estimate: est,
			Err:      err,
		}
	}
}

// purchaseCmd returns a command that simulates buying the selection
func purchaseCmd(p *calculation.Purchaser, base decimal.Decimal, sel domain.PlanSelection) tea.Cmd {
	return func() tea.Msg {
		c, err := p.Purchase(base, sel)
		return PurchaseCompleteMsg{Confirmation: c, Err: err}
	}
}

// defaultSelection is the selection a fresh estimate starts from
func (m Model) defaultSelection() domain.PlanSelection {
	if m.engine != nil && m.engine.Selection.PlanID != "" {
		return m.engine.Selection
	}
	return domain.DefaultPlanSelection()
}
