package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// AchievementCategory classifies what kind of statistic an achievement
// measures. Each category reads exactly one group of requirement fields.
type AchievementCategory string

// Known achievement categories.
const (
	CategoryQuestionsAnswered AchievementCategory = "questions_answered"
	CategoryStreak            AchievementCategory = "streak"
	CategorySocial            AchievementCategory = "social"
	CategoryStudyTime         AchievementCategory = "study_time"
	CategoryAccuracy          AchievementCategory = "accuracy"
	CategorySpeed             AchievementCategory = "speed"
)

// Valid reports whether the category is one of the known values.
func (c AchievementCategory) Valid() bool {
	switch c {
	case CategoryQuestionsAnswered, CategoryStreak, CategorySocial,
		CategoryStudyTime, CategoryAccuracy, CategorySpeed:
		return true
	default:
		return false
	}
}

// Requirement carries the numeric targets for one achievement. Only the
// fields belonging to the achievement's category are read; a nil field
// means "this target is not part of the requirement". Within a category the
// first non-nil field wins.
type Requirement struct {
	QuestionsAnswered *int `json:"questions_answered,omitempty"`
	CorrectAnswers    *int `json:"correct_answers,omitempty"`
	StudyStreak       *int `json:"study_streak,omitempty"`
	ForumPosts        *int `json:"forum_posts,omitempty"`
	BattlesWon        *int `json:"battles_won,omitempty"`
	StudyHours        *int `json:"study_hours,omitempty"`
}

// Achievement-specific validation errors
var (
	// ErrAchievementIDEmpty is returned when an achievement ID is empty or nil.
	ErrAchievementIDEmpty = errors.New("achievement ID cannot be empty")

	// ErrAchievementNameEmpty is returned when an achievement has no name.
	ErrAchievementNameEmpty = errors.New("achievement name cannot be empty")

	// ErrNegativeRewardXP is returned when an achievement's XP reward is negative.
	ErrNegativeRewardXP = errors.New("achievement reward XP cannot be negative")

	// ErrUnlockUserIDEmpty is returned when an unlock record has no user ID.
	ErrUnlockUserIDEmpty = errors.New("achievement unlock user ID cannot be empty")
)

// Achievement is an immutable catalog entry describing one unlockable badge.
type Achievement struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Category    AchievementCategory `json:"category"`
	Requirement Requirement         `json:"requirement"`
	RewardXP    int                 `json:"reward_xp"`
}

// Validate checks if the Achievement has valid data.
// Returns an error if any field fails validation.
func (a *Achievement) Validate() error {
	if a.ID == uuid.Nil {
		return ErrAchievementIDEmpty
	}

	if a.Name == "" {
		return ErrAchievementNameEmpty
	}

	if !a.Category.Valid() {
		return ErrInvalidAchievementCategory
	}

	if a.RewardXP < 0 {
		return ErrNegativeRewardXP
	}

	return nil
}

// AchievementUnlock records that a user earned an achievement. At most one
// exists per (user, achievement) pair; the storage layer enforces the
// uniqueness constraint.
type AchievementUnlock struct {
	UserID        uuid.UUID `json:"user_id"`
	AchievementID uuid.UUID `json:"achievement_id"`
	UnlockedAt    time.Time `json:"unlocked_at"`
}

// NewAchievementUnlock creates an unlock record for a user and achievement.
func NewAchievementUnlock(userID, achievementID uuid.UUID, now time.Time) (*AchievementUnlock, error) {
	if userID == uuid.Nil {
		return nil, ErrUnlockUserIDEmpty
	}
	if achievementID == uuid.Nil {
		return nil, ErrAchievementIDEmpty
	}

	return &AchievementUnlock{
		UserID:        userID,
		AchievementID: achievementID,
		UnlockedAt:    now,
	}, nil
}
