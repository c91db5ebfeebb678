package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQualityRating(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		action   string
		expected QualityRating
		wantErr  bool
	}{
		{name: "again maps to 0", action: "again", expected: QualityAgain},
		{name: "hard maps to 2", action: "hard", expected: QualityHard},
		{name: "good maps to 3", action: "good", expected: QualityGood},
		{name: "easy maps to 5", action: "easy", expected: QualityEasy},
		{name: "unknown action rejected", action: "meh", wantErr: true},
		{name: "empty action rejected", action: "", wantErr: true},
		{name: "case sensitive", action: "Good", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rating, err := ParseQualityRating(tc.action)

			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidQualityRating)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, rating)
			assert.True(t, rating.Valid())
		})
	}
}

func TestQualityRatingIsLapse(t *testing.T) {
	t.Parallel()

	assert.True(t, QualityAgain.IsLapse())
	assert.True(t, QualityHard.IsLapse())
	assert.False(t, QualityGood.IsLapse())
	assert.False(t, QualityEasy.IsLapse())
}

func TestQualityRatingValid(t *testing.T) {
	t.Parallel()

	// 1 and 4 are on the SM-2 scale but unreachable from the four buttons.
	assert.False(t, QualityRating(1).Valid())
	assert.False(t, QualityRating(4).Valid())
	assert.False(t, QualityRating(-1).Valid())
	assert.False(t, QualityRating(6).Valid())
}

func TestNewReviewCard(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()

	card, err := NewReviewCard(uuid.New(), uuid.New(), now)
	require.NoError(t, err)

	assert.Equal(t, 0, card.Repetitions)
	assert.Equal(t, 0, card.IntervalDays)
	assert.Equal(t, DefaultEaseFactor, card.EaseFactor)
	assert.True(t, card.NextReviewAt.Equal(now), "new card should be due immediately")
}

func TestReviewCardValidate(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()

	valid := func() *ReviewCard {
		return &ReviewCard{
			ID:           uuid.New(),
			UserID:       uuid.New(),
			MaterialID:   uuid.New(),
			EaseFactor:   2.5,
			IntervalDays: 6,
			Repetitions:  2,
			NextReviewAt: now,
		}
	}

	testCases := []struct {
		name    string
		mutate  func(*ReviewCard)
		wantErr error
	}{
		{
			name:   "valid card passes",
			mutate: func(c *ReviewCard) {},
		},
		{
			name:    "nil ID rejected",
			mutate:  func(c *ReviewCard) { c.ID = uuid.Nil },
			wantErr: ErrCardIDEmpty,
		},
		{
			name:    "nil user ID rejected",
			mutate:  func(c *ReviewCard) { c.UserID = uuid.Nil },
			wantErr: ErrCardUserIDEmpty,
		},
		{
			name:    "negative interval rejected",
			mutate:  func(c *ReviewCard) { c.IntervalDays = -1 },
			wantErr: ErrInvalidIntervalDays,
		},
		{
			name:    "negative repetitions rejected",
			mutate:  func(c *ReviewCard) { c.Repetitions = -1 },
			wantErr: ErrInvalidRepetitions,
		},
		{
			name:    "ease factor below floor rejected",
			mutate:  func(c *ReviewCard) { c.EaseFactor = 1.2 },
			wantErr: ErrInvalidEaseFactor,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			card := valid()
			tc.mutate(card)

			err := card.Validate()
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
