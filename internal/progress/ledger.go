// Package progress holds the guest progress ledger: an in-memory, capped,
// append-only record of anonymous review outcomes, migrated to server-side
// storage once on authentication.
package progress

import (
	"context"
	"fmt"
	"time"
)

// Limit is the hard capacity of the ledger. Adds beyond it are rejected;
// nothing is evicted.
const Limit = 50

// Record is a single anonymous review outcome.
type Record struct {
	FlashcardID int       `json:"flashcardId"`
	IsCorrect   bool      `json:"isCorrect"`
	Timestamp   time.Time `json:"timestamp"`
}

// BatchSender transmits a full ledger in one authenticated batch request.
//
//go:generate mockgen -source=ledger.go -destination=../mocks/progress/mock_sender.go -package=mock_progress BatchSender
type BatchSender interface {
	SendProgressBatch(ctx context.Context, token string, records []Record) error
}

// Ledger accumulates guest review outcomes up to Limit. It is not safe
// for concurrent use; the client runs every operation on one logical
// thread.
type Ledger struct {
	records []Record
	now     func() time.Time
}

func NewLedger() *Ledger {
	return &Ledger{now: time.Now}
}

// NewLedgerFromRecords rebuilds a ledger from previously snapshotted
// records, truncating anything beyond Limit.
func NewLedgerFromRecords(records []Record) *Ledger {
	if len(records) > Limit {
		records = records[:Limit]
	}
	ledger := NewLedger()
	ledger.records = append(ledger.records, records...)
	return ledger
}

// Add appends a timestamped record and returns true, or returns false
// without mutating state when the ledger is at capacity. Callers surface
// a capacity-reached signal (a login prompt) on false.
func (l *Ledger) Add(flashcardID int, isCorrect bool) bool {
	if !l.CanAddMore() {
		return false
	}
	l.records = append(l.records, Record{
		FlashcardID: flashcardID,
		IsCorrect:   isCorrect,
		Timestamp:   l.now(),
	})
	return true
}

// CanAddMore reports whether the ledger is below capacity.
func (l *Ledger) CanAddMore() bool {
	return len(l.records) < Limit
}

// Count returns the current ledger size.
func (l *Ledger) Count() int {
	return len(l.records)
}

// Records returns a copy of the ledger contents in insertion order.
func (l *Ledger) Records() []Record {
	records := make([]Record, len(l.records))
	copy(records, l.records)
	return records
}

// Contains reports whether any record references the given flashcard.
// Guest review sessions use this as their known-card membership check.
func (l *Ledger) Contains(flashcardID int) bool {
	for _, record := range l.records {
		if record.FlashcardID == flashcardID {
			return true
		}
	}
	return false
}

// Clear empties the ledger. Called after a successful migration, or when
// the user explicitly abandons guest progress.
func (l *Ledger) Clear() {
	l.records = nil
}

// Migrate sends the full ledger as one batch using the given credential.
// On success the ledger is cleared; on any failure it is left untouched
// so a later manual retry can resend it. Migration is never retried
// automatically. An empty ledger migrates trivially.
func (l *Ledger) Migrate(ctx context.Context, sender BatchSender, token string) error {
	if len(l.records) == 0 {
		return nil
	}
	if err := sender.SendProgressBatch(ctx, token, l.Records()); err != nil {
		return fmt.Errorf("sender.SendProgressBatch > %w", err)
	}
	l.Clear()
	return nil
}
