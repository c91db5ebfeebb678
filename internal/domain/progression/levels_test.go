package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevelTableValidation(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		thresholds []int
		wantErr    error
	}{
		{
			name:       "valid table",
			thresholds: []int{0, 100, 300},
		},
		{
			name:       "empty table rejected",
			thresholds: nil,
			wantErr:    ErrEmptyThresholds,
		},
		{
			name:       "first threshold must be zero",
			thresholds: []int{50, 100},
			wantErr:    ErrFirstThresholdNotZero,
		},
		{
			name:       "plateau rejected",
			thresholds: []int{0, 100, 100},
			wantErr:    ErrThresholdsNotIncreasing,
		},
		{
			name:       "decrease rejected",
			thresholds: []int{0, 200, 100},
			wantErr:    ErrThresholdsNotIncreasing,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			table, err := NewLevelTable(tc.thresholds)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, table)
		})
	}
}

func TestLevelOf(t *testing.T) {
	t.Parallel()
	table := NewDefaultLevelTable()

	testCases := []struct {
		name     string
		xp       int
		expected int
	}{
		{name: "zero XP is level 1", xp: 0, expected: 1},
		{name: "just below second threshold", xp: 99, expected: 1},
		{name: "exactly on a threshold", xp: 100, expected: 2},
		{name: "between thresholds four and five", xp: 1249, expected: 5}, // 1000 <= 1249 < 1750
		{name: "small award keeps the level", xp: 1259, expected: 5},
		{name: "exactly on threshold five", xp: 1750, expected: 6},
		{name: "beyond the table caps at max level", xp: 10_000_000, expected: 20},
		{name: "negative XP treated as zero", xp: -5, expected: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, table.LevelOf(tc.xp))
		})
	}
}

// TestLevelOfTableEntries checks that each threshold maps to its own level:
// LevelOf(thresholds[i]) == i+1 for every entry.
func TestLevelOfTableEntries(t *testing.T) {
	t.Parallel()

	thresholds := []int{0, 100, 300, 600, 1000, 1750}
	table, err := NewLevelTable(thresholds)
	require.NoError(t, err)

	for i, threshold := range thresholds {
		assert.Equal(t, i+1, table.LevelOf(threshold), "threshold[%d]=%d", i, threshold)
	}
}

// TestLevelOfNonDecreasing sweeps XP upward and checks the level never
// drops.
func TestLevelOfNonDecreasing(t *testing.T) {
	t.Parallel()
	table := NewDefaultLevelTable()

	prev := 0
	for xp := 0; xp <= 70_000; xp += 37 {
		level := table.LevelOf(xp)
		require.GreaterOrEqual(t, level, prev, "level decreased at xp=%d", xp)
		prev = level
	}
}

func TestXPToNextLevel(t *testing.T) {
	t.Parallel()
	table := NewDefaultLevelTable()

	assert.Equal(t, 100, table.XPToNextLevel(0))
	assert.Equal(t, 1, table.XPToNextLevel(99))
	assert.Equal(t, 501, table.XPToNextLevel(1249)) // next threshold is 1750
	assert.Equal(t, 0, table.XPToNextLevel(60000), "top of the table has no next level")
}

func TestMaxLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 20, NewDefaultLevelTable().MaxLevel())
}
