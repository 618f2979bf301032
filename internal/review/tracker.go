package review

import (
	"github.com/hellodocs/flashdeck/internal/progress"
)

// GuestTracker tracks known cards through the guest progress ledger:
// membership by flashcard id, marking by appending a correct outcome.
type GuestTracker struct {
	ledger *progress.Ledger
}

func NewGuestTracker(ledger *progress.Ledger) *GuestTracker {
	return &GuestTracker{ledger: ledger}
}

func (t *GuestTracker) Known(flashcardID int) bool {
	return t.ledger.Contains(flashcardID)
}

func (t *GuestTracker) Mark(flashcardID int) error {
	if !t.ledger.Add(flashcardID, true) {
		return ErrLimitReached
	}
	return nil
}

func (t *GuestTracker) KnownCount() int {
	return t.ledger.Count()
}

func (t *GuestTracker) Resettable() bool {
	return false
}

func (t *GuestTracker) Reset() error {
	return ErrGuestReset
}

// KnownSetTracker tracks known cards for authenticated users in an
// in-memory set. The set is session-scoped on purpose: the backend owns
// durable progress once records are migrated, so restarting the client
// starts review from the server's view again.
type KnownSetTracker struct {
	known map[int]struct{}
}

func NewKnownSetTracker() *KnownSetTracker {
	return &KnownSetTracker{known: make(map[int]struct{})}
}

func (t *KnownSetTracker) Known(flashcardID int) bool {
	_, ok := t.known[flashcardID]
	return ok
}

func (t *KnownSetTracker) Mark(flashcardID int) error {
	t.known[flashcardID] = struct{}{}
	return nil
}

func (t *KnownSetTracker) KnownCount() int {
	return len(t.known)
}

func (t *KnownSetTracker) Resettable() bool {
	return true
}

func (t *KnownSetTracker) Reset() error {
	t.known = make(map[int]struct{})
	return nil
}
