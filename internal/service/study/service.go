package study

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/quantprep/mastery-engine/internal/domain"
)

// StudyService orchestrates the engine's calculators against the storage
// boundary: it schedules reviews, applies XP and streak updates, and sweeps
// the achievement catalog after progress changes.
type StudyService interface {
	// SubmitReview processes a review action ("again", "hard", "good",
	// "easy") for a piece of study material and persists the rescheduled
	// card. A card is created on first review.
	//
	// Returns the updated card, or ErrInvalidReviewAction when the action
	// does not name one of the four review buttons.
	SubmitReview(
		ctx context.Context,
		userID uuid.UUID,
		materialID uuid.UUID,
		action string,
		now time.Time,
	) (*domain.ReviewCard, error)

	// RecordAnswer applies the XP and streak consequences of one answered
	// question and persists the updated progress record. Emits level-up and
	// streak events as they occur.
	RecordAnswer(
		ctx context.Context,
		userID uuid.UUID,
		correct bool,
		now time.Time,
	) (*domain.UserProgress, error)

	// SweepAchievements evaluates the whole catalog against the user's
	// current statistics and unlocks everything newly completed. Safe to
	// call repeatedly: already-unlocked achievements are skipped and the
	// store's uniqueness constraint absorbs races. Returns the unlocks
	// created by this sweep.
	SweepAchievements(
		ctx context.Context,
		stats *domain.UserStats,
		now time.Time,
	) ([]*domain.AchievementUnlock, error)
}

// Common error types for StudyService
var (
	// ErrInvalidReviewAction indicates the review action is not one of the
	// four buttons.
	ErrInvalidReviewAction = errors.New("invalid review action")

	// ErrNilStats indicates a nil stats snapshot was passed to a sweep.
	ErrNilStats = errors.New("user stats cannot be nil")
)

// ServiceError wraps errors from the study service with operation context.
// Consumers differentiate failures with errors.As instead of string
// matching.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "submit_review").
	Operation string
	// Message is a human-readable description of the error.
	Message string
	// Err is the underlying error that caused the failure.
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the underlying error for errors.Is/errors.As chains.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// newServiceError creates a ServiceError with the given context.
func newServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
