package leaderboard

import (
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/quantprep/mastery-engine/internal/domain"
)

// ErrSubjectNotFound is returned when the subject user is not present in
// the snapshot being ranked.
var ErrSubjectNotFound = errors.New("subject user not in leaderboard snapshot")

// RankedUser is one row of a leaderboard view. Derived and non-persistent;
// its lifetime is a single query.
type RankedUser struct {
	UserID        uuid.UUID `json:"user_id"`
	Rank          int       `json:"rank"`
	TotalXP       int       `json:"total_xp"`
	Level         int       `json:"level"`
	CurrentStreak int       `json:"current_streak"`
}

// Ranking is the result of ranking a frozen progress snapshot.
type Ranking struct {
	// Top holds the first N rows in rank order.
	Top []RankedUser

	// SubjectRank is the subject's 1-based rank over the whole snapshot,
	// valid even when the subject is outside the Top window.
	SubjectRank int
}

// precedes is the composite comparator: total XP descending, then level,
// then current streak, with user ID as the final ascending tie-break so the
// ordering is a strict total order.
func precedes(a, b *domain.UserProgress) bool {
	if a.TotalXP != b.TotalXP {
		return a.TotalXP > b.TotalXP
	}
	if a.Level != b.Level {
		return a.Level > b.Level
	}
	if a.CurrentStreak != b.CurrentStreak {
		return a.CurrentStreak > b.CurrentStreak
	}
	return strings.Compare(a.UserID.String(), b.UserID.String()) < 0
}

// Rank orders a frozen snapshot of user progress records and resolves the
// subject's rank. The snapshot must be complete: ranking while scores are
// still arriving produces a non-final view, so callers synchronize before
// calling (see the battle-scoring barrier in the embedding application).
//
// Repeated calls over the same snapshot return identical orderings.
func Rank(users []*domain.UserProgress, subjectID uuid.UUID, topN int) (*Ranking, error) {
	ordered := make([]*domain.UserProgress, len(users))
	copy(ordered, users)

	sort.Slice(ordered, func(i, j int) bool {
		return precedes(ordered[i], ordered[j])
	})

	subject, found := lo.Find(ordered, func(u *domain.UserProgress) bool {
		return u.UserID == subjectID
	})
	if !found {
		return nil, ErrSubjectNotFound
	}

	// Strict-predecessor count under the full composite key. An XP-only
	// count would under-rank users tied on XP but behind on level/streak.
	subjectRank := 1
	for _, u := range ordered {
		if u.UserID == subjectID {
			break
		}
		if precedes(u, subject) {
			subjectRank++
		}
	}

	if topN > len(ordered) {
		topN = len(ordered)
	}
	if topN < 0 {
		topN = 0
	}

	top := lo.Map(ordered[:topN], func(u *domain.UserProgress, i int) RankedUser {
		return RankedUser{
			UserID:        u.UserID,
			Rank:          i + 1,
			TotalXP:       u.TotalXP,
			Level:         u.Level,
			CurrentStreak: u.CurrentStreak,
		}
	})

	return &Ranking{
		Top:         top,
		SubjectRank: subjectRank,
	}, nil
}
