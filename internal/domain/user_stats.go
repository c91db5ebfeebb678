package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// UserStats is the aggregated statistics snapshot the achievement evaluator
// reads. The calling layer assembles it from its stores; the engine treats
// it as immutable input.
type UserStats struct {
	UserID            uuid.UUID `json:"user_id"`
	QuestionsAnswered int       `json:"questions_answered"`
	CorrectAnswers    int       `json:"correct_answers"`
	CurrentStreak     int       `json:"current_streak"`
	ForumPosts        int       `json:"forum_posts"`
	BattlesWon        int       `json:"battles_won"`
	StudyHours        int       `json:"study_hours"`
}

// Validate checks the monotonicity invariant on the stats snapshot:
// a user cannot have answered more questions correctly than in total.
func (s *UserStats) Validate() error {
	if s.UserID == uuid.Nil {
		return ErrProgressUserIDEmpty
	}

	if s.CorrectAnswers > s.QuestionsAnswered {
		return &InvariantViolationError{
			Entity:  "user stats",
			ID:      s.UserID,
			Message: fmt.Sprintf("correct answers %d exceed questions answered %d", s.CorrectAnswers, s.QuestionsAnswered),
		}
	}

	return nil
}
