package srs

import (
	"errors"
	"time"

	"github.com/quantprep/mastery-engine/internal/domain"
)

// Common errors
var (
	ErrNilCard        = errors.New("review card cannot be nil")
	ErrInvalidQuality = errors.New("invalid quality rating")
	ErrInvalidDays    = errors.New("postpone days must be at least 1")
)

// Service defines the interface for spaced-repetition scheduling operations.
type Service interface {
	// Schedule computes a card's next scheduling state from a quality rating.
	// The returned card is a new value; the input is never mutated.
	Schedule(
		card *domain.ReviewCard,
		quality domain.QualityRating,
		now time.Time,
	) (*domain.ReviewCard, error)

	// PostponeReview pushes the next review time forward by a number of days
	// without touching the repetition ladder or ease factor.
	PostponeReview(
		card *domain.ReviewCard,
		days int,
		now time.Time,
	) (*domain.ReviewCard, error)
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new SRS service with default parameters.
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new SRS service with custom parameters.
func NewServiceWithParams(params *Params) Service {
	return &defaultService{
		params: params,
	}
}

// Schedule implements the Service interface.
func (s *defaultService) Schedule(
	card *domain.ReviewCard,
	quality domain.QualityRating,
	now time.Time,
) (*domain.ReviewCard, error) {
	if card == nil {
		return nil, ErrNilCard
	}

	if !quality.Valid() {
		return nil, ErrInvalidQuality
	}

	return calculateNextCard(card, quality, now, s.params), nil
}

// PostponeReview implements the Service interface.
func (s *defaultService) PostponeReview(
	card *domain.ReviewCard,
	days int,
	now time.Time,
) (*domain.ReviewCard, error) {
	if card == nil {
		return nil, ErrNilCard
	}

	if days < 1 {
		return nil, ErrInvalidDays
	}

	newCard := *card
	newCard.NextReviewAt = card.NextReviewAt.AddDate(0, 0, days)
	newCard.UpdatedAt = now

	return &newCard, nil
}
