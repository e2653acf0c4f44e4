package outcome

import "sync"

// Policy decides which response may update a slot when triggers overlap.
type Policy int

const (
	// LatestIssued applies only the response to the most recently issued token.
	LatestIssued Policy = iota
	// LastResolved lets every response overwrite the slot, so the request that
	// resolves last in wall-clock time wins regardless of issue order.
	LastResolved
)

func (p Policy) String() string {
	if p == LastResolved {
		return "last-resolved"
	}
	return "latest-issued"
}

// Token identifies one issued request on a slot.
type Token uint64

// Slot holds the Outcome of one request slot. It is safe for concurrent use.
type Slot[T any] struct {
	mu     sync.Mutex
	policy Policy
	state  Outcome[T]
	issued Token
	floor  Token // tokens at or below floor were invalidated by Reset
}

// NewSlot creates an Idle slot with the given policy.
func NewSlot[T any](policy Policy) *Slot[T] {
	return &Slot[T]{policy: policy}
}

// Policy returns the slot's overlap policy.
func (s *Slot[T]) Policy() Policy {
	return s.policy
}

// Begin moves the slot to Loading and returns the token for the new request.
func (s *Slot[T]) Begin() Token {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	s.state = LoadingOutcome[T]()
	return s.issued
}

// Succeed records a resolved value. It reports whether the slot was updated.
func (s *Slot[T]) Succeed(tok Token, v T) bool {
	return s.resolve(tok, SuccessOutcome(v))
}

// Fail records a failure message. It reports whether the slot was updated.
func (s *Slot[T]) Fail(tok Token, msg string) bool {
	return s.resolve(tok, FailureOutcome[T](msg))
}

func (s *Slot[T]) resolve(tok Token, o Outcome[T]) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.acceptsLocked(tok) {
		return false
	}
	s.state = o
	return true
}

func (s *Slot[T]) acceptsLocked(tok Token) bool {
	if tok <= s.floor || tok > s.issued {
		return false
	}
	if s.policy == LatestIssued {
		return tok == s.issued
	}
	return true
}

// Reset returns the slot to Idle and invalidates every outstanding token.
func (s *Slot[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.floor = s.issued
	s.state = IdleOutcome[T]()
}

// Snapshot returns a copy of the current outcome.
func (s *Slot[T]) Snapshot() Outcome[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
