package prediction

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Ticket identifies one submission
type Ticket struct {
	ID       uuid.UUID
	Sequence uint64
}

func (t Ticket) String() string {
	return t.ID.String()
}

// Tracker enforces that only the latest submission's outcome is applied.
// Starting a new submission cancels the context of the previous one.
type Tracker struct {
	mu      sync.Mutex
	seq     uint64
	current Ticket
	cancel  context.CancelFunc
}

// NewTracker returns an idle tracker
func NewTracker() *Tracker {
	return &Tracker{}
}

// Begin registers a new submission and returns its ticket together with a
// context that is cancelled when a later submission begins.
func (t *Tracker) Begin(parent context.Context) (Ticket, context.Context) {
	ctx, cancel := context.WithCancel(parent)

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
	}
	t.seq++
	t.current = Ticket{ID: uuid.New(), Sequence: t.seq}
	t.cancel = cancel
	return t.current, ctx
}

// IsCurrent reports whether ticket belongs to the latest submission
func (t *Tracker) IsCurrent(ticket Ticket) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return ticket.Sequence == t.seq && ticket.ID == t.current.ID
}

// Complete releases the ticket's context. It returns false when a newer
// submission has begun, in which case the caller must discard its outcome.
func (t *Tracker) Complete(ticket Ticket) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if ticket.Sequence != t.seq || ticket.ID != t.current.ID {
		return false
	}
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	return true
}
