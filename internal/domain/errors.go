package domain

import "errors"

// Common domain errors used across the engine.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidQualityRating is returned when a recall quality rating is
	// outside the set of values the four review actions can produce.
	ErrInvalidQualityRating = errors.New("invalid quality rating")

	// ErrInvalidAchievementCategory is returned when an achievement category
	// is not one of the known values.
	ErrInvalidAchievementCategory = errors.New("invalid achievement category")
)
