package store

import "errors"

// Common store errors. Implementations translate their backend's failures
// into these sentinels so services can branch with errors.Is.
var (
	// ErrProgressNotFound indicates no progress record exists for the user.
	ErrProgressNotFound = errors.New("user progress not found")

	// ErrCardNotFound indicates no review card exists for the user/material pair.
	ErrCardNotFound = errors.New("review card not found")

	// ErrAchievementNotFound indicates the achievement is not in the catalog.
	ErrAchievementNotFound = errors.New("achievement not found")

	// ErrDuplicateUnlock indicates an unlock already exists for the
	// (user, achievement) pair. Implementations MUST enforce this with a
	// storage-level uniqueness constraint: two concurrent evaluations can
	// both observe "not yet unlocked", and the constraint is the guard that
	// keeps the unlock at-most-once.
	ErrDuplicateUnlock = errors.New("achievement already unlocked")
)
