package ledger

// SessionState identifies where the entry flow currently is.
type SessionState int

const (
	// StateIdle means nothing is in progress; the buffer sits at "0".
	StateIdle SessionState = iota
	// StateEntering means the amount buffer is being typed into and no
	// amount has been confirmed yet.
	StateEntering
	// StateSelecting means an amount is confirmed and a category pick is
	// pending; committing or cancelling returns to idle.
	StateSelecting
)

// session tracks an in-progress new-record entry or the edit of one
// existing record. It is ephemeral: commit and cancel both reset it.
type session struct {
	state SessionState

	// pending is the confirmed amount awaiting a category pick. Only
	// meaningful in StateSelecting.
	pending float64

	// editing is true when the pending commit targets an existing record.
	editing        bool
	targetID       string
	originalAmount float64
}

func (s *session) reset() {
	*s = session{}
}

// touch marks keypad activity while no amount is confirmed yet.
func (s *session) touch() {
	if s.state == StateIdle {
		s.state = StateEntering
	}
}

// beginSelect records a confirmed amount and moves to category selection.
// Edit bookkeeping, if any, is left intact.
func (s *session) beginSelect(amount float64) {
	s.state = StateSelecting
	s.pending = amount
}
