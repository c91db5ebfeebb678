package study

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/quantprep/mastery-engine/internal/domain"
	"github.com/quantprep/mastery-engine/internal/domain/achievement"
	"github.com/quantprep/mastery-engine/internal/domain/progression"
	"github.com/quantprep/mastery-engine/internal/domain/srs"
	"github.com/quantprep/mastery-engine/internal/events"
	"github.com/quantprep/mastery-engine/internal/store"
)

// studyService is the standard implementation of StudyService.
type studyService struct {
	cards      store.CardStore
	progress   store.ProgressStore
	catalog    store.AchievementCatalog
	unlocks    store.UnlockStore
	scheduler  srs.Service
	calculator *progression.Calculator
	evaluator  *achievement.Evaluator
	emitter    events.EventEmitter
	logger     *slog.Logger
}

// NewStudyService creates a study service over the given stores and
// calculators.
func NewStudyService(
	cards store.CardStore,
	progress store.ProgressStore,
	catalog store.AchievementCatalog,
	unlocks store.UnlockStore,
	scheduler srs.Service,
	calculator *progression.Calculator,
	emitter events.EventEmitter,
	logger *slog.Logger,
) StudyService {
	return &studyService{
		cards:      cards,
		progress:   progress,
		catalog:    catalog,
		unlocks:    unlocks,
		scheduler:  scheduler,
		calculator: calculator,
		evaluator:  achievement.NewEvaluator(),
		emitter:    emitter,
		logger:     logger.With("component", "study_service"),
	}
}

// SubmitReview implements StudyService.
func (s *studyService) SubmitReview(
	ctx context.Context,
	userID uuid.UUID,
	materialID uuid.UUID,
	action string,
	now time.Time,
) (*domain.ReviewCard, error) {
	quality, err := domain.ParseQualityRating(action)
	if err != nil {
		return nil, ErrInvalidReviewAction
	}

	card, err := s.cards.Get(ctx, userID, materialID)
	if err != nil {
		if !errors.Is(err, store.ErrCardNotFound) {
			return nil, newServiceError("submit_review", "failed to load review card", err)
		}

		card, err = domain.NewReviewCard(userID, materialID, now)
		if err != nil {
			return nil, newServiceError("submit_review", "failed to create review card", err)
		}
	}

	newCard, err := s.scheduler.Schedule(card, quality, now)
	if err != nil {
		return nil, newServiceError("submit_review", "failed to schedule review", err)
	}

	if err := s.cards.Save(ctx, newCard); err != nil {
		return nil, newServiceError("submit_review", "failed to save review card", err)
	}

	s.logger.Debug("review scheduled",
		"user_id", userID,
		"material_id", materialID,
		"quality", int(quality),
		"interval_days", newCard.IntervalDays,
		"repetitions", newCard.Repetitions)

	return newCard, nil
}

// RecordAnswer implements StudyService.
func (s *studyService) RecordAnswer(
	ctx context.Context,
	userID uuid.UUID,
	correct bool,
	now time.Time,
) (*domain.UserProgress, error) {
	progress, err := s.progress.Get(ctx, userID)
	if err != nil {
		return nil, newServiceError("record_answer", "failed to load user progress", err)
	}

	event := progression.EventIncorrectAnswer
	if correct {
		event = progression.EventCorrectAnswer
	}

	delta, err := s.calculator.Award(event)
	if err != nil {
		return nil, newServiceError("record_answer", "failed to look up XP award", err)
	}

	updated, err := s.calculator.ApplyXP(progress, delta, now)
	if err != nil {
		return nil, newServiceError("record_answer", "failed to apply XP", err)
	}

	streaked, err := s.calculator.RecordActivity(updated, now)
	if err != nil {
		return nil, newServiceError("record_answer", "failed to update streak", err)
	}

	if streaked.CurrentStreak > updated.CurrentStreak {
		bonus, err := s.calculator.Award(progression.EventStreakBonus)
		if err != nil {
			return nil, newServiceError("record_answer", "failed to look up streak bonus", err)
		}

		streaked, err = s.calculator.ApplyXP(streaked, bonus, now)
		if err != nil {
			return nil, newServiceError("record_answer", "failed to apply streak bonus", err)
		}

		s.emit(ctx, events.TypeStreakExtended, userID, map[string]int{
			"current_streak": streaked.CurrentStreak,
			"longest_streak": streaked.LongestStreak,
		})
	}

	if streaked.Level > progress.Level {
		s.emit(ctx, events.TypeLevelUp, userID, map[string]int{
			"level":    streaked.Level,
			"total_xp": streaked.TotalXP,
		})
	}

	if err := s.progress.Update(ctx, streaked); err != nil {
		return nil, newServiceError("record_answer", "failed to save user progress", err)
	}

	return streaked, nil
}

// SweepAchievements implements StudyService.
func (s *studyService) SweepAchievements(
	ctx context.Context,
	stats *domain.UserStats,
	now time.Time,
) ([]*domain.AchievementUnlock, error) {
	if stats == nil {
		return nil, ErrNilStats
	}

	catalog, err := s.catalog.List(ctx)
	if err != nil {
		return nil, newServiceError("sweep_achievements", "failed to list achievement catalog", err)
	}

	var created []*domain.AchievementUnlock

	for _, ach := range catalog {
		unlocked, err := s.unlocks.Exists(ctx, stats.UserID, ach.ID)
		if err != nil {
			return nil, newServiceError("sweep_achievements", "failed to check prior unlock", err)
		}

		result, err := s.evaluator.Evaluate(ach, stats, unlocked)
		if err != nil {
			return nil, newServiceError("sweep_achievements", "failed to evaluate achievement", err)
		}

		if !result.ShouldUnlock {
			continue
		}

		unlock, err := domain.NewAchievementUnlock(stats.UserID, ach.ID, now)
		if err != nil {
			return nil, newServiceError("sweep_achievements", "failed to build unlock record", err)
		}

		if err := s.unlocks.Create(ctx, unlock); err != nil {
			if errors.Is(err, store.ErrDuplicateUnlock) {
				// A concurrent sweep won the race; nothing to grant.
				continue
			}
			return nil, newServiceError("sweep_achievements", "failed to record unlock", err)
		}

		if ach.RewardXP > 0 {
			if err := s.grantRewardXP(ctx, stats.UserID, ach.RewardXP, now); err != nil {
				return nil, err
			}
		}

		s.emit(ctx, events.TypeAchievementUnlocked, stats.UserID, map[string]string{
			"achievement_id":   ach.ID.String(),
			"achievement_name": ach.Name,
		})

		created = append(created, unlock)
	}

	return created, nil
}

// grantRewardXP applies an achievement's XP reward to the user's progress.
func (s *studyService) grantRewardXP(
	ctx context.Context,
	userID uuid.UUID,
	reward int,
	now time.Time,
) error {
	progress, err := s.progress.Get(ctx, userID)
	if err != nil {
		return newServiceError("sweep_achievements", "failed to load progress for reward", err)
	}

	updated, err := s.calculator.ApplyXP(progress, reward, now)
	if err != nil {
		return newServiceError("sweep_achievements", "failed to apply reward XP", err)
	}

	if updated.Level > progress.Level {
		s.emit(ctx, events.TypeLevelUp, userID, map[string]int{
			"level":    updated.Level,
			"total_xp": updated.TotalXP,
		})
	}

	if err := s.progress.Update(ctx, updated); err != nil {
		return newServiceError("sweep_achievements", "failed to save rewarded progress", err)
	}

	return nil
}

// emit publishes a progression event; emission failures are logged, never
// propagated, because progression state has already been decided.
func (s *studyService) emit(ctx context.Context, eventType string, userID uuid.UUID, payload interface{}) {
	event, err := events.NewProgressionEvent(eventType, userID, payload)
	if err != nil {
		s.logger.Error("failed to build progression event",
			"error", err,
			"event_type", eventType,
			"user_id", userID)
		return
	}

	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		s.logger.Error("failed to emit progression event",
			"error", err,
			"event_type", eventType,
			"user_id", userID)
	}
}
