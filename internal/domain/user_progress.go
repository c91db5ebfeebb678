package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// UserProgress-specific validation errors
var (
	// ErrProgressUserIDEmpty is returned when a progress record has no user ID.
	ErrProgressUserIDEmpty = errors.New("user progress user ID cannot be empty")

	// ErrNegativeXP is returned when total XP is negative.
	ErrNegativeXP = errors.New("total XP cannot be negative")

	// ErrInvalidLevel is returned when a level is below 1.
	ErrInvalidLevel = errors.New("level must be at least 1")

	// ErrNegativeStreak is returned when a streak counter is negative.
	ErrNegativeStreak = errors.New("streak counters cannot be negative")

	// ErrStreakInvariant is returned when the longest streak is shorter
	// than the current streak.
	ErrStreakInvariant = errors.New("longest streak cannot be less than current streak")
)

// UserProgress is a user's gamified progression record: lifetime experience,
// the level derived from it, and study-streak continuity state.
// Level is always a pure function of TotalXP; callers never set it directly.
type UserProgress struct {
	UserID           uuid.UUID `json:"user_id"`
	TotalXP          int       `json:"total_xp"`
	Level            int       `json:"level"`
	CurrentStreak    int       `json:"current_streak"`
	LongestStreak    int       `json:"longest_streak"`
	LastActivityDate time.Time `json:"last_activity_date"` // date precision; zero until first activity
	UpdatedAt        time.Time `json:"updated_at"`
}

// NewUserProgress creates a fresh progression record for a user who has not
// yet earned any XP or recorded any activity.
func NewUserProgress(userID uuid.UUID) (*UserProgress, error) {
	progress := &UserProgress{
		UserID:        userID,
		TotalXP:       0,
		Level:         1,
		CurrentStreak: 0,
		LongestStreak: 0,
		UpdatedAt:     time.Now().UTC(),
	}

	if err := progress.Validate(); err != nil {
		return nil, err
	}

	return progress, nil
}

// Validate checks if the UserProgress has valid data.
// Returns an error if any field fails validation.
func (p *UserProgress) Validate() error {
	if p.UserID == uuid.Nil {
		return ErrProgressUserIDEmpty
	}

	if p.TotalXP < 0 {
		return ErrNegativeXP
	}

	if p.Level < 1 {
		return ErrInvalidLevel
	}

	if p.CurrentStreak < 0 || p.LongestStreak < 0 {
		return ErrNegativeStreak
	}

	if p.LongestStreak < p.CurrentStreak {
		return ErrStreakInvariant
	}

	return nil
}
