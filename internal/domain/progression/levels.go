package progression

import (
	"errors"
	"sort"
)

// Level table errors
var (
	// ErrEmptyThresholds is returned when a level table has no entries.
	ErrEmptyThresholds = errors.New("level thresholds cannot be empty")

	// ErrFirstThresholdNotZero is returned when the first threshold is not 0,
	// which would leave low-XP users without a level.
	ErrFirstThresholdNotZero = errors.New("first level threshold must be 0")

	// ErrThresholdsNotIncreasing is returned when the thresholds are not
	// strictly increasing.
	ErrThresholdsNotIncreasing = errors.New("level thresholds must be strictly increasing")
)

// defaultThresholds maps cumulative XP to levels: reaching thresholds[i]
// puts a user at level i+1.
var defaultThresholds = []int{
	0, 100, 300, 600, 1000, 1750, 2750, 4000, 5500, 7500,
	10000, 13000, 16500, 20500, 25000, 30000, 36000, 43000, 51000, 60000,
}

// LevelTable is an immutable ascending XP threshold table. Level n requires
// at least Thresholds[n-1] total XP.
type LevelTable struct {
	thresholds []int
}

// NewDefaultLevelTable creates the standard twenty-level table.
func NewDefaultLevelTable() *LevelTable {
	table, err := NewLevelTable(defaultThresholds)
	if err != nil {
		// The default table is a compile-time constant; a failure here is
		// a programming error.
		panic(err)
	}
	return table
}

// NewLevelTable creates a level table from the given thresholds, validating
// that they start at 0 and are strictly increasing.
func NewLevelTable(thresholds []int) (*LevelTable, error) {
	if len(thresholds) == 0 {
		return nil, ErrEmptyThresholds
	}

	if thresholds[0] != 0 {
		return nil, ErrFirstThresholdNotZero
	}

	for i := 1; i < len(thresholds); i++ {
		if thresholds[i] <= thresholds[i-1] {
			return nil, ErrThresholdsNotIncreasing
		}
	}

	table := &LevelTable{thresholds: make([]int, len(thresholds))}
	copy(table.thresholds, thresholds)

	return table, nil
}

// LevelOf returns the level for a total XP amount: the highest index i with
// xp >= thresholds[i], plus one. Binary search, O(log n).
func (t *LevelTable) LevelOf(xp int) int {
	if xp < 0 {
		xp = 0
	}

	// First index whose threshold exceeds xp; the level is that index.
	idx := sort.Search(len(t.thresholds), func(i int) bool {
		return t.thresholds[i] > xp
	})

	if idx == 0 {
		// Unreachable with a validated table (thresholds[0] == 0).
		return 1
	}

	return idx
}

// XPToNextLevel returns how much more XP is needed to reach the next level,
// or 0 if the user is already at the top of the table.
func (t *LevelTable) XPToNextLevel(xp int) int {
	if xp < 0 {
		xp = 0
	}

	level := t.LevelOf(xp)
	if level >= len(t.thresholds) {
		return 0
	}

	return t.thresholds[level] - xp
}

// MaxLevel returns the highest level the table can award.
func (t *LevelTable) MaxLevel() int {
	return len(t.thresholds)
}
