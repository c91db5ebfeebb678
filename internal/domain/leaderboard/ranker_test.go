package leaderboard

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantprep/mastery-engine/internal/domain"
)

func user(totalXP, level, currentStreak int) *domain.UserProgress {
	return &domain.UserProgress{
		UserID:        uuid.New(),
		TotalXP:       totalXP,
		Level:         level,
		CurrentStreak: currentStreak,
		LongestStreak: currentStreak,
	}
}

func TestRankOrdering(t *testing.T) {
	t.Parallel()

	first := user(9000, 18, 3)
	second := user(8650, 18, 15)
	third := user(8650, 18, 4)   // same XP and level, lower streak
	fourth := user(8650, 17, 20) // same XP, lower level beats higher streak
	fifth := user(100, 2, 1)

	users := []*domain.UserProgress{fifth, third, first, fourth, second}

	ranking, err := Rank(users, first.UserID, 5)
	require.NoError(t, err)
	require.Len(t, ranking.Top, 5)

	expected := []uuid.UUID{first.UserID, second.UserID, third.UserID, fourth.UserID, fifth.UserID}
	for i, row := range ranking.Top {
		assert.Equal(t, expected[i], row.UserID, "row %d", i)
		assert.Equal(t, i+1, row.Rank)
	}

	assert.Equal(t, 1, ranking.SubjectRank)
}

func TestRankTieBreakIsTotalOrder(t *testing.T) {
	t.Parallel()

	// Fully tied on all three progression keys: the user ID alone decides.
	a := user(5000, 10, 7)
	b := user(5000, 10, 7)

	ranking, err := Rank([]*domain.UserProgress{a, b}, a.UserID, 2)
	require.NoError(t, err)

	wantFirst := a.UserID
	if b.UserID.String() < a.UserID.String() {
		wantFirst = b.UserID
	}
	assert.Equal(t, wantFirst, ranking.Top[0].UserID)
}

func TestRankDeterministic(t *testing.T) {
	t.Parallel()

	users := make([]*domain.UserProgress, 0, 50)
	for i := 0; i < 50; i++ {
		users = append(users, user((i%7)*100, i%5+1, i%11))
	}
	subject := users[13]

	first, err := Rank(users, subject.UserID, 10)
	require.NoError(t, err)
	second, err := Rank(users, subject.UserID, 10)
	require.NoError(t, err)

	assert.Equal(t, first, second, "re-ranking the same snapshot must be identical")
}

func TestRankSubjectOutsideWindow(t *testing.T) {
	t.Parallel()

	// 46 users strictly precede the subject under the composite key, so the
	// subject ranks 47th even though only the top 10 are returned.
	subject := user(8650, 18, 15)

	users := []*domain.UserProgress{subject}
	for i := 0; i < 40; i++ {
		users = append(users, user(9000+i, 19, 1))
	}
	for i := 0; i < 3; i++ {
		users = append(users, user(8650, 19, 1)) // XP tie, higher level
	}
	for i := 0; i < 3; i++ {
		users = append(users, user(8650, 18, 20)) // XP+level tie, higher streak
	}
	for i := 0; i < 30; i++ {
		users = append(users, user(1000+i, 4, 0)) // trailing field
	}

	ranking, err := Rank(users, subject.UserID, 10)
	require.NoError(t, err)

	assert.Len(t, ranking.Top, 10)
	assert.Equal(t, 47, ranking.SubjectRank)
	for _, row := range ranking.Top {
		assert.NotEqual(t, subject.UserID, row.UserID)
	}
}

func TestRankWindowClamping(t *testing.T) {
	t.Parallel()

	users := []*domain.UserProgress{user(100, 2, 0), user(200, 2, 0)}

	ranking, err := Rank(users, users[0].UserID, 10)
	require.NoError(t, err)
	assert.Len(t, ranking.Top, 2, "window larger than population returns everyone")

	ranking, err = Rank(users, users[0].UserID, 0)
	require.NoError(t, err)
	assert.Empty(t, ranking.Top)
	assert.Equal(t, 2, ranking.SubjectRank, "rank resolves even with an empty window")
}

func TestRankSubjectNotFound(t *testing.T) {
	t.Parallel()

	_, err := Rank([]*domain.UserProgress{user(100, 2, 0)}, uuid.New(), 10)
	assert.ErrorIs(t, err, ErrSubjectNotFound)
}

func TestRankInputNotMutated(t *testing.T) {
	t.Parallel()

	users := []*domain.UserProgress{user(100, 2, 0), user(900, 4, 2), user(500, 3, 1)}
	snapshot := fmt.Sprintf("%v", users)

	_, err := Rank(users, users[0].UserID, 3)
	require.NoError(t, err)

	assert.Equal(t, snapshot, fmt.Sprintf("%v", users), "input slice order must be preserved")
}
