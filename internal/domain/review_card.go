package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// QualityRating is a discrete recall-strength signal on the 0-5 SM-2 scale.
// Only the four values reachable from the review UI are valid; Again and
// Hard both land below the lapse threshold.
type QualityRating int

// Quality ratings produced by the four review actions.
const (
	QualityAgain QualityRating = 0
	QualityHard  QualityRating = 2
	QualityGood  QualityRating = 3
	QualityEasy  QualityRating = 5
)

// Valid reports whether the rating is one of the four reachable values.
func (q QualityRating) Valid() bool {
	switch q {
	case QualityAgain, QualityHard, QualityGood, QualityEasy:
		return true
	default:
		return false
	}
}

// IsLapse reports whether the rating counts as a failed recall.
// Ratings below Good reset the repetition ladder.
func (q QualityRating) IsLapse() bool {
	return q < QualityGood
}

// ParseQualityRating maps a review action name ("again", "hard", "good",
// "easy") onto its quality rating. This is the validation boundary for
// review input; the scheduler assumes a rating that passed it.
func ParseQualityRating(action string) (QualityRating, error) {
	switch action {
	case "again":
		return QualityAgain, nil
	case "hard":
		return QualityHard, nil
	case "good":
		return QualityGood, nil
	case "easy":
		return QualityEasy, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidQualityRating, action)
	}
}

// ReviewCard-specific validation errors
var (
	// ErrCardIDEmpty is returned when a review card ID is empty or nil.
	ErrCardIDEmpty = errors.New("review card ID cannot be empty")

	// ErrCardUserIDEmpty is returned when a review card's user ID is empty or nil.
	ErrCardUserIDEmpty = errors.New("review card user ID cannot be empty")

	// ErrInvalidIntervalDays is returned when a card interval is negative.
	ErrInvalidIntervalDays = errors.New("interval days must be greater than or equal to 0")

	// ErrInvalidRepetitions is returned when a repetition count is negative.
	ErrInvalidRepetitions = errors.New("repetitions must be greater than or equal to 0")

	// ErrInvalidEaseFactor is returned when an ease factor is below the 1.3 floor.
	ErrInvalidEaseFactor = errors.New("ease factor must be at least 1.3")
)

// MinEaseFactor is the floor below which a card's ease factor never drops.
// Without it a run of lapses would collapse intervals permanently.
const MinEaseFactor = 1.3

// DefaultEaseFactor is the ease factor assigned to a card on first review.
const DefaultEaseFactor = 2.5

// ReviewCard tracks a user's spaced-repetition state for one piece of study
// material. Cards are created on first review and never destroyed; a lapse
// resets the repetition ladder, not the card.
type ReviewCard struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	MaterialID   uuid.UUID `json:"material_id"`
	EaseFactor   float64   `json:"ease_factor"`
	IntervalDays int       `json:"interval_days"`
	Repetitions  int       `json:"repetitions"`
	NextReviewAt time.Time `json:"next_review_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewReviewCard creates a card for a user and study material with default
// scheduling state. The card is due immediately.
func NewReviewCard(userID, materialID uuid.UUID, now time.Time) (*ReviewCard, error) {
	card := &ReviewCard{
		ID:           uuid.New(),
		UserID:       userID,
		MaterialID:   materialID,
		EaseFactor:   DefaultEaseFactor,
		IntervalDays: 0,
		Repetitions:  0,
		NextReviewAt: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the ReviewCard has valid data.
// Returns an error if any field fails validation.
func (c *ReviewCard) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCardIDEmpty
	}

	if c.UserID == uuid.Nil {
		return ErrCardUserIDEmpty
	}

	if c.IntervalDays < 0 {
		return ErrInvalidIntervalDays
	}

	if c.Repetitions < 0 {
		return ErrInvalidRepetitions
	}

	if c.EaseFactor < MinEaseFactor {
		return ErrInvalidEaseFactor
	}

	return nil
}
