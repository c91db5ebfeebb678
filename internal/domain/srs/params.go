package srs

import "github.com/quantprep/mastery-engine/internal/domain"

// Params defines all configurable parameters for the SRS algorithm.
// There is deliberately no upper bound on the ease factor: the quality
// formula can raise it by at most 0.1 per review.
type Params struct {
	// MinEaseFactor is the floor the ease factor is clamped to after every
	// update. Prevents runaway short intervals on repeated lapses.
	MinEaseFactor float64

	// FirstIntervalDays is the interval after the first successful review.
	FirstIntervalDays int

	// SecondIntervalDays is the interval after the second successful review.
	SecondIntervalDays int

	// LapseIntervalDays is the interval a card falls back to after a lapse.
	LapseIntervalDays int
}

// ParamsConfig allows overriding the default parameters when creating a new
// Params instance. Zero values keep the defaults.
type ParamsConfig struct {
	MinEaseFactor      float64
	FirstIntervalDays  int
	SecondIntervalDays int
	LapseIntervalDays  int
}

// NewDefaultParams creates a new Params instance with the standard SM-2
// constants.
func NewDefaultParams() *Params {
	return &Params{
		MinEaseFactor:      domain.MinEaseFactor,
		FirstIntervalDays:  1,
		SecondIntervalDays: 6,
		LapseIntervalDays:  1,
	}
}

// NewParams creates a new Params instance with custom configuration.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.MinEaseFactor > 0 {
		params.MinEaseFactor = config.MinEaseFactor
	}
	if config.FirstIntervalDays > 0 {
		params.FirstIntervalDays = config.FirstIntervalDays
	}
	if config.SecondIntervalDays > 0 {
		params.SecondIntervalDays = config.SecondIntervalDays
	}
	if config.LapseIntervalDays > 0 {
		params.LapseIntervalDays = config.LapseIntervalDays
	}

	return params
}
