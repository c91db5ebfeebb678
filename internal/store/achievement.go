package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/quantprep/mastery-engine/internal/domain"
)

// AchievementCatalog defines read access to the immutable achievement
// catalog.
type AchievementCatalog interface {
	// List returns every achievement in the catalog.
	List(ctx context.Context) ([]*domain.Achievement, error)

	// Get returns one achievement by ID.
	// Returns ErrAchievementNotFound if it does not exist.
	Get(ctx context.Context, id uuid.UUID) (*domain.Achievement, error)
}

// UnlockStore defines the interface for achievement unlock persistence.
type UnlockStore interface {
	// Exists reports whether the user already unlocked the achievement.
	// This is the evaluator's fast-path idempotency check, not the sole
	// guard; Create's uniqueness constraint is.
	Exists(ctx context.Context, userID, achievementID uuid.UUID) (bool, error)

	// Create records an unlock. Implementations MUST back this with a
	// uniqueness constraint on (user, achievement) and return
	// ErrDuplicateUnlock on conflict, which callers treat as a no-op.
	Create(ctx context.Context, unlock *domain.AchievementUnlock) error

	// ListByUser returns all of a user's unlocks.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.AchievementUnlock, error)
}
