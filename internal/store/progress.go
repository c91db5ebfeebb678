package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/quantprep/mastery-engine/internal/domain"
)

// ProgressStore defines the interface for user progression persistence.
type ProgressStore interface {
	// Get retrieves the progress record for a user.
	// Returns ErrProgressNotFound if the user has no record yet.
	Get(ctx context.Context, userID uuid.UUID) (*domain.UserProgress, error)

	// Update writes back a progress record produced by the engine.
	// XP updates are read-modify-write: implementations MUST serialize
	// Get/Update pairs for the same user (row lock or equivalent) so two
	// concurrent awards cannot lose an increment.
	// Returns ErrProgressNotFound if the record does not exist.
	Update(ctx context.Context, progress *domain.UserProgress) error

	// Create saves a fresh progress record for a new user.
	Create(ctx context.Context, progress *domain.UserProgress) error
}

// CardStore defines the interface for review card persistence.
type CardStore interface {
	// Get retrieves a user's review card for a piece of study material.
	// Returns ErrCardNotFound if no card exists yet; the caller creates one
	// on first review.
	Get(ctx context.Context, userID, materialID uuid.UUID) (*domain.ReviewCard, error)

	// Save upserts a card's scheduling state.
	Save(ctx context.Context, card *domain.ReviewCard) error

	// ListDue retrieves the user's cards whose next review time is at or
	// before the given instant, ordered most-overdue first.
	ListDue(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.ReviewCard, error)
}
