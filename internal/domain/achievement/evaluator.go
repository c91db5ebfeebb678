package achievement

import (
	"errors"
	"fmt"

	"github.com/quantprep/mastery-engine/internal/domain"
)

// Evaluator errors
var (
	// ErrNilAchievement is returned when a nil achievement is passed in.
	ErrNilAchievement = errors.New("achievement cannot be nil")

	// ErrNilStats is returned when a nil stats snapshot is passed in.
	ErrNilStats = errors.New("user stats cannot be nil")

	// ErrMissingRequirement is returned when an achievement's requirement
	// carries none of the fields its category reads. The original system
	// silently fell through to zero progress here; this engine treats it as
	// a catalog defect instead.
	ErrMissingRequirement = errors.New("achievement requirement has no target for its category")
)

// Progress is the result of evaluating one achievement for one user.
type Progress struct {
	// Percent is the completion percentage, clamped to [0, 100].
	Percent float64

	// ShouldUnlock signals that the caller should create the unlock record
	// and grant the reward XP. Always false when the achievement was
	// already unlocked, so rewards are never double-granted.
	ShouldUnlock bool
}

// RequiresSessionTelemetry reports whether a category needs per-session
// data the engine does not own. Accuracy and speed achievements stay at 0%
// until richer telemetry is supplied; this predicate lets callers tell that
// apart from genuine zero progress.
func RequiresSessionTelemetry(category domain.AchievementCategory) bool {
	return category == domain.CategoryAccuracy || category == domain.CategorySpeed
}

// Evaluator maps aggregated user statistics to achievement progress.
// It is stateless and safe for concurrent use.
type Evaluator struct{}

// NewEvaluator creates an achievement evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate computes completion progress for one achievement.
//
// The relevant statistic is divided by the category's requirement target
// and clamped to [0, 100]; a zero target short-circuits to 100% rather
// than dividing by zero. Unlocking is idempotent: when alreadyUnlocked is
// true the percent is still reported but ShouldUnlock is always false.
func (e *Evaluator) Evaluate(
	ach *domain.Achievement,
	stats *domain.UserStats,
	alreadyUnlocked bool,
) (Progress, error) {
	if ach == nil {
		return Progress{}, ErrNilAchievement
	}
	if stats == nil {
		return Progress{}, ErrNilStats
	}

	if err := ach.Validate(); err != nil {
		return Progress{}, err
	}
	if err := stats.Validate(); err != nil {
		return Progress{}, err
	}

	percent, err := e.percent(ach, stats)
	if err != nil {
		return Progress{}, err
	}

	return Progress{
		Percent:      percent,
		ShouldUnlock: percent >= 100 && !alreadyUnlocked,
	}, nil
}

// percent dispatches on the achievement category. Within a category the
// first non-nil requirement field wins.
func (e *Evaluator) percent(ach *domain.Achievement, stats *domain.UserStats) (float64, error) {
	req := ach.Requirement

	switch ach.Category {
	case domain.CategoryQuestionsAnswered:
		switch {
		case req.QuestionsAnswered != nil:
			return ratio(stats.QuestionsAnswered, *req.QuestionsAnswered), nil
		case req.CorrectAnswers != nil:
			return ratio(stats.CorrectAnswers, *req.CorrectAnswers), nil
		}

	case domain.CategoryStreak:
		if req.StudyStreak != nil {
			return ratio(stats.CurrentStreak, *req.StudyStreak), nil
		}

	case domain.CategorySocial:
		switch {
		case req.ForumPosts != nil:
			return ratio(stats.ForumPosts, *req.ForumPosts), nil
		case req.BattlesWon != nil:
			return ratio(stats.BattlesWon, *req.BattlesWon), nil
		}

	case domain.CategoryStudyTime:
		if req.StudyHours != nil {
			return ratio(stats.StudyHours, *req.StudyHours), nil
		}

	case domain.CategoryAccuracy, domain.CategorySpeed:
		// Needs session-level telemetry the engine does not receive yet.
		return 0, nil
	}

	return 0, fmt.Errorf("%w: %s (category %s)", ErrMissingRequirement, ach.Name, ach.Category)
}

// ratio converts current/target into a percentage clamped to [0, 100].
// A target of zero means the achievement is trivially complete.
func ratio(current, target int) float64 {
	if target <= 0 {
		return 100
	}
	if current <= 0 {
		return 0
	}

	percent := float64(current) / float64(target) * 100
	if percent > 100 {
		percent = 100
	}

	return percent
}
