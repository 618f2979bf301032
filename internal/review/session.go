// Package review drives a study session: a pointer over the remaining
// cards, known/unknown partitioning, and mode switching. The session is
// purely client-local and never shared across concurrent contexts.
package review

import (
	"context"
	"errors"

	"github.com/hellodocs/flashdeck/internal/flashcard"
)

// Mode selects the candidate card set for a session.
type Mode string

const (
	ModeAll        Mode = "all"
	ModeDifficulty Mode = "difficulty"
)

// State is the session lifecycle phase.
type State int

const (
	StateLoading State = iota
	StateActive
	StateComplete
)

var (
	// ErrLimitReached signals that the guest ledger is full; the mark
	// transition was refused and session state is unchanged. Callers
	// surface a login prompt.
	ErrLimitReached = errors.New("guest progress limit reached")

	// ErrGuestReset signals that guests cannot reset known cards; their
	// known state is the ledger itself and is deliberately not locally
	// resettable.
	ErrGuestReset = errors.New("guest progress cannot be reset")
)

// CardSource supplies review candidates.
type CardSource interface {
	GetAll(ctx context.Context) []flashcard.Flashcard
	GetWithFilters(ctx context.Context, opts flashcard.FilterOptions) []flashcard.Flashcard
}

// Tracker is the known-card policy, which differs between guests and
// authenticated users.
type Tracker interface {
	// Known reports whether the card should be excluded from new sessions.
	Known(flashcardID int) bool
	// Mark records the current card as known. Returns ErrLimitReached
	// when the guest ledger refuses the record.
	Mark(flashcardID int) error
	// KnownCount returns how many cards are tracked as known.
	KnownCount() int
	// Resettable reports whether Reset is allowed.
	Resettable() bool
	// Reset forgets all known cards.
	Reset() error
}

// Session is the review state machine.
type Session struct {
	source  CardSource
	tracker Tracker

	state      State
	mode       Mode
	difficulty string
	cards      []flashcard.Flashcard
	index      int
}

func NewSession(source CardSource, tracker Tracker) *Session {
	return &Session{
		source:  source,
		tracker: tracker,
		state:   StateLoading,
	}
}

// Start loads the candidate set for the mode, removes cards already
// known, and resets the pointer. An empty result completes the session
// immediately.
func (s *Session) Start(ctx context.Context, mode Mode, difficulty string) {
	s.state = StateLoading
	s.mode = mode
	s.difficulty = difficulty

	var candidates []flashcard.Flashcard
	if mode == ModeDifficulty {
		if s.difficulty == "" {
			s.difficulty = flashcard.DifficultyBeginner
		}
		candidates = s.source.GetWithFilters(ctx, flashcard.FilterOptions{DifficultyLevel: s.difficulty})
	} else {
		candidates = s.source.GetAll(ctx)
	}

	s.cards = s.cards[:0]
	for _, card := range candidates {
		if s.tracker.Known(card.ID) {
			continue
		}
		s.cards = append(s.cards, card)
	}
	s.index = 0

	if len(s.cards) == 0 {
		s.state = StateComplete
		return
	}
	s.state = StateActive
}

// State returns the current lifecycle phase.
func (s *Session) State() State {
	return s.state
}

// Current returns the card under the pointer, or false when the session
// is not active.
func (s *Session) Current() (flashcard.Flashcard, bool) {
	if s.state != StateActive || len(s.cards) == 0 {
		return flashcard.Flashcard{}, false
	}
	return s.cards[s.index], true
}

// Index returns the zero-based pointer position.
func (s *Session) Index() int {
	return s.index
}

// Remaining returns the number of cards still in the session.
func (s *Session) Remaining() int {
	return len(s.cards)
}

// Mastered returns the tracker's known-card count, for progress display.
func (s *Session) Mastered() int {
	return s.tracker.KnownCount()
}

// Next advances the pointer, wrapping to the first card past the end.
func (s *Session) Next() {
	if s.state != StateActive || len(s.cards) == 0 {
		return
	}
	if s.index < len(s.cards)-1 {
		s.index++
	} else {
		s.index = 0
	}
}

// Previous retreats the pointer, wrapping to the last card before the
// start.
func (s *Session) Previous() {
	if s.state != StateActive || len(s.cards) == 0 {
		return
	}
	if s.index > 0 {
		s.index--
	} else {
		s.index = len(s.cards) - 1
	}
}

// MarkKnown records the current card as known and removes it from the
// session. When the tracker refuses (guest ledger at capacity) the
// session is left unchanged and the error is surfaced. Removing the last
// card completes the session; otherwise the pointer is clamped to the
// new bounds.
func (s *Session) MarkKnown() error {
	if s.state != StateActive || len(s.cards) == 0 {
		return nil
	}

	current := s.cards[s.index]
	if err := s.tracker.Mark(current.ID); err != nil {
		return err
	}

	remaining := make([]flashcard.Flashcard, 0, len(s.cards)-1)
	for _, card := range s.cards {
		if card.ID == current.ID {
			continue
		}
		remaining = append(remaining, card)
	}
	s.cards = remaining

	if len(s.cards) == 0 {
		s.index = 0
		s.state = StateComplete
		return nil
	}
	if s.index >= len(s.cards) {
		s.index = len(s.cards) - 1
	}
	return nil
}

// ResetKnown clears the known set and reloads the session with the same
// mode. Guests are refused with ErrGuestReset and directed toward
// authentication instead.
func (s *Session) ResetKnown(ctx context.Context) error {
	if !s.tracker.Resettable() {
		return ErrGuestReset
	}
	if err := s.tracker.Reset(); err != nil {
		return err
	}
	s.Start(ctx, s.mode, s.difficulty)
	return nil
}
