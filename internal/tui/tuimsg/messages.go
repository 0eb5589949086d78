// Package tuimsg holds the messages scenes send back to the root model.
package tuimsg

import (
	"github.com/rgehrsitz/mediquote/internal/domain"
)

// SubmitProfileMsg asks for an estimate of a completed form
type SubmitProfileMsg struct {
	Profile domain.ApplicantProfile
}

// PlanSelectedMsg signals the user picked another plan
type PlanSelectedMsg struct {
	PlanID string
}

// TermSelectedMsg signals the user picked another term
type TermSelectedMsg struct {
	Term int
}

// PurchaseRequestedMsg asks to buy the current plan selection
type PurchaseRequestedMsg struct{}

// ShowPlansMsg asks to open the plans scene from the results scene
type ShowPlansMsg struct{}

// NewQuoteMsg asks to return to the form after a confirmation
type NewQuoteMsg struct{}
