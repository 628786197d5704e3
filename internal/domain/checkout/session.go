package checkout

import (
	"time"

	"storefront-checkout/internal/domain/cart"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type State string

const (
	StateIdle      State = "idle"
	StatePending   State = "pending"
	StateStarted   State = "started"
	StateCompleted State = "completed"
	// StateAbandoned is reached outside this service, by the relay's own
	// timeout. It is never set locally.
	StateAbandoned State = "abandoned"
)

// Snapshot is the form and cart content a started event carries.
type Snapshot struct {
	Contact Contact
	Lines   []cart.Line
	Total   decimal.Decimal
}

// Session is the state machine of one shopper's checkout attempt. It is not
// safe for concurrent use; the owner serializes access.
type Session struct {
	id          uuid.UUID
	state       State
	snapshot    Snapshot
	startedSent bool
	revision    uint64
	startedAt   time.Time
}

func NewSession() *Session {
	return &Session{state: StateIdle}
}

// RestoreStarted rebuilds a session whose started event was already sent
// under id, e.g. before a restart.
func RestoreStarted(id uuid.UUID) *Session {
	return &Session{id: id, state: StateStarted, startedSent: true}
}

// Update records new form content and returns the revision it produced.
// Before Started, valid content moves the session to Pending and invalid
// content back to Idle. Started sessions keep their state.
func (s *Session) Update(snap Snapshot, valid bool) uint64 {
	s.revision++
	s.snapshot = snap

	switch s.state {
	case StateStarted:
		return s.revision
	case StateCompleted:
		s.id = uuid.Nil
		s.startedSent = false
	}

	if valid {
		s.state = StatePending
	} else {
		s.state = StateIdle
	}
	return s.revision
}

// DueAt reports whether a debounce timer armed at revision may still fire.
func (s *Session) DueAt(revision uint64) bool {
	return s.state == StatePending && s.revision == revision && !s.startedSent
}

// CanForce reports whether a flush may emit. Only content that is valid at
// the time of the flush qualifies, whatever the session state.
func (s *Session) CanForce(valid bool) bool {
	if s.startedSent {
		return false
	}
	switch s.state {
	case StatePending, StateIdle, StateCompleted:
		return valid
	default:
		return false
	}
}

// MarkStarted is the single at-most-once gate: it succeeds for the first
// caller only, whichever path (timer, flush) it comes from.
func (s *Session) MarkStarted(id uuid.UUID, at time.Time) bool {
	if s.startedSent {
		return false
	}
	s.startedSent = true
	s.id = id
	s.state = StateStarted
	s.startedAt = at
	s.revision++
	return true
}

// Complete closes a started session and returns its id. It reports false
// when no started event was sent, so completion never precedes start.
func (s *Session) Complete() (uuid.UUID, bool) {
	if s.state != StateStarted || s.id == uuid.Nil {
		return uuid.Nil, false
	}
	id := s.id
	s.id = uuid.Nil
	s.startedSent = false
	s.state = StateCompleted
	s.snapshot = Snapshot{}
	s.revision++
	return id, true
}

// Dismiss resets a session that has not started yet. Started sessions are
// left for the relay to time out, so it reports false for them.
func (s *Session) Dismiss() bool {
	if s.state == StateStarted {
		return false
	}
	s.state = StateIdle
	s.snapshot = Snapshot{}
	s.revision++
	return true
}

func (s *Session) ID() uuid.UUID        { return s.id }
func (s *Session) State() State         { return s.state }
func (s *Session) Snapshot() Snapshot   { return s.snapshot }
func (s *Session) StartedSent() bool    { return s.startedSent }
func (s *Session) StartedAt() time.Time { return s.startedAt }
