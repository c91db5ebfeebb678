package srs

import (
	"math"
	"time"

	"github.com/quantprep/mastery-engine/internal/domain"
)

// calculateNewEaseFactor applies the SM-2 ease update for a quality rating.
//
// The adjustment is 0.1 - (5-q)*(0.08 + (5-q)*0.02), which rewards an Easy
// recall (+0.1), leaves Good nearly flat (-0.14), and punishes Hard and
// Again progressively harder. The result is clamped to the configured
// floor so a card can never spiral into arbitrarily short intervals.
func calculateNewEaseFactor(
	currentEF float64,
	quality domain.QualityRating,
	params *Params,
) float64 {
	q := float64(quality)
	newEF := currentEF + (0.1 - (5-q)*(0.08+(5-q)*0.02))

	if newEF < params.MinEaseFactor {
		newEF = params.MinEaseFactor
	}

	return newEF
}

// calculateNewInterval determines the next interval in days for a card
// whose review succeeded (quality at or above Good).
//
// The repetition ladder follows SM-2: the first two successful reviews use
// fixed intervals, after which the interval grows multiplicatively by the
// card's ease factor as it stood before this review. Rounding is to the
// nearest day and the result is always at least one day.
func calculateNewInterval(
	currentInterval int,
	newRepetitions int,
	easeFactor float64,
	params *Params,
) int {
	switch {
	case newRepetitions == 1:
		return params.FirstIntervalDays
	case newRepetitions == 2:
		return params.SecondIntervalDays
	default:
		interval := int(math.Round(float64(currentInterval) * easeFactor))
		if interval < 1 {
			interval = 1
		}
		return interval
	}
}

// calculateNextCard computes the card's next scheduling state after a
// review, following immutability principles: the input card is never
// modified, a fully populated copy is returned.
//
// On a lapse (quality below Good) the repetition ladder resets and the card
// comes back in LapseIntervalDays; the ease factor is still updated so the
// lapse leaves a lasting mark on interval growth. On success the ladder
// advances and the interval grows from the pre-review ease factor.
func calculateNextCard(
	card *domain.ReviewCard,
	quality domain.QualityRating,
	now time.Time,
	params *Params,
) *domain.ReviewCard {
	newCard := *card

	newCard.EaseFactor = calculateNewEaseFactor(card.EaseFactor, quality, params)

	if quality.IsLapse() {
		newCard.Repetitions = 0
		newCard.IntervalDays = params.LapseIntervalDays
	} else {
		newCard.Repetitions = card.Repetitions + 1
		newCard.IntervalDays = calculateNewInterval(
			card.IntervalDays,
			newCard.Repetitions,
			card.EaseFactor,
			params,
		)
	}

	newCard.NextReviewAt = now.AddDate(0, 0, newCard.IntervalDays)
	newCard.UpdatedAt = now

	return &newCard
}
