package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// DifficultyTier buckets questions by how hard the content team rates them.
type DifficultyTier string

// Difficulty tiers, easiest first.
const (
	DifficultyBasic        DifficultyTier = "basic"
	DifficultyIntermediate DifficultyTier = "intermediate"
	DifficultyAdvanced     DifficultyTier = "advanced"
)

// QuestionStat-specific validation errors
var (
	// ErrQuestionIDEmpty is returned when a question ID is empty or nil.
	ErrQuestionIDEmpty = errors.New("question ID cannot be empty")

	// ErrQuestionTopicEmpty is returned when a question has no topic.
	ErrQuestionTopicEmpty = errors.New("question topic cannot be empty")

	// ErrNegativeAttempts is returned when an attempt counter is negative.
	ErrNegativeAttempts = errors.New("attempt counters cannot be negative")
)

// InvariantViolationError reports caller data that breaks a monotonicity
// invariant the engine relies on, such as more correct attempts than total
// attempts. The engine refuses to compute on such records rather than
// producing a nonsensical result.
type InvariantViolationError struct {
	Entity  string
	ID      uuid.UUID
	Message string
}

// Error implements the error interface.
func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("invariant violation on %s %s: %s", e.Entity, e.ID, e.Message)
}

// QuestionStat is the engine's read-only view of one question's lifetime
// attempt counters. The calling layer increments the counters after each
// attempt; the selector only reads them.
type QuestionStat struct {
	ID              uuid.UUID      `json:"id"`
	Topic           string         `json:"topic"`
	Difficulty      DifficultyTier `json:"difficulty"`
	CFALevel        int            `json:"cfa_level"`
	TimesAttempted  int            `json:"times_attempted"`
	CorrectAttempts int            `json:"correct_attempts"`
	Active          bool           `json:"active"`
	Approved        bool           `json:"approved"`
}

// Validate checks if the QuestionStat has valid data, including the
// correct-attempts-never-exceed-attempts invariant.
func (q *QuestionStat) Validate() error {
	if q.ID == uuid.Nil {
		return ErrQuestionIDEmpty
	}

	if q.Topic == "" {
		return ErrQuestionTopicEmpty
	}

	if q.TimesAttempted < 0 || q.CorrectAttempts < 0 {
		return ErrNegativeAttempts
	}

	if q.CorrectAttempts > q.TimesAttempted {
		return &InvariantViolationError{
			Entity:  "question",
			ID:      q.ID,
			Message: fmt.Sprintf("correct attempts %d exceed total attempts %d", q.CorrectAttempts, q.TimesAttempted),
		}
	}

	return nil
}
