package tui

import (
	"github.com/rgehrsitz/mediquote/internal/domain"
	"github.com/rgehrsitz/mediquote/internal/prediction"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneForm Scene = iota
	SceneResults
	ScenePlans
	SceneConfirmation
	SceneHelp
)

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneForm:
		return "Applicant Details"
	case SceneResults:
		return "Estimate"
	case ScenePlans:
		return "Insurance Plans"
	case SceneConfirmation:
		return "Confirmation"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// Message types for the Bubble Tea update cycle

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// QuitMsg signals the application should exit
type QuitMsg struct{}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// EstimateCompleteMsg carries the outcome of one submission. Outcomes whose
// ticket is no longer current are dropped.
type EstimateCompleteMsg struct {
	Ticket   prediction.Ticket
	Estimate *domain.Estimate
	Err      error
}

// PurchaseCompleteMsg carries a simulated policy confirmation
type PurchaseCompleteMsg struct {
	Confirmation domain.PolicyConfirmation
	Err          error
}
