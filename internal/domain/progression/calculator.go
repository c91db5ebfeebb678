package progression

import (
	"errors"
	"time"

	"github.com/quantprep/mastery-engine/internal/domain"
)

// ErrNilProgress is returned when a nil progress record is passed in.
var ErrNilProgress = errors.New("user progress cannot be nil")

// Calculator computes XP, level and streak transitions over immutable
// UserProgress records. It holds only read-only configuration and is safe
// for concurrent use.
type Calculator struct {
	awards *AwardTable
	levels *LevelTable
}

// NewCalculator creates a calculator from an award table and level table.
func NewCalculator(awards *AwardTable, levels *LevelTable) *Calculator {
	return &Calculator{
		awards: awards,
		levels: levels,
	}
}

// NewDefaultCalculator creates a calculator with the standard award table
// and level thresholds.
func NewDefaultCalculator() *Calculator {
	return NewCalculator(NewDefaultAwardTable(), NewDefaultLevelTable())
}

// Award returns the XP delta for an event, as configured in the award table.
func (c *Calculator) Award(event XPEvent) (int, error) {
	return c.awards.Award(event)
}

// LevelOf returns the level a total XP amount corresponds to.
func (c *Calculator) LevelOf(xp int) int {
	return c.levels.LevelOf(xp)
}

// XPToNextLevel returns the XP still needed to reach the next level.
func (c *Calculator) XPToNextLevel(xp int) int {
	return c.levels.XPToNextLevel(xp)
}

// ApplyXP adds a (possibly negative) XP delta to a progress record and
// recomputes the level. Total XP is clamped at zero on penalty paths; it
// never goes negative. Returns a new record, the input is never mutated.
func (c *Calculator) ApplyXP(
	progress *domain.UserProgress,
	delta int,
	now time.Time,
) (*domain.UserProgress, error) {
	if progress == nil {
		return nil, ErrNilProgress
	}

	newProgress := *progress

	newProgress.TotalXP = progress.TotalXP + delta
	if newProgress.TotalXP < 0 {
		newProgress.TotalXP = 0
	}

	newProgress.Level = c.levels.LevelOf(newProgress.TotalXP)
	newProgress.UpdatedAt = now

	return &newProgress, nil
}

// RecordActivity updates streak state for an activity on the given date.
//
// An activity on the day after the last one extends the streak; a second
// activity on the same day is a no-op for the counter (idempotent); any
// gap of two or more days, or the first activity ever, starts a fresh
// streak of one. The longest streak is maintained as the running maximum.
func (c *Calculator) RecordActivity(
	progress *domain.UserProgress,
	activityDate time.Time,
) (*domain.UserProgress, error) {
	if progress == nil {
		return nil, ErrNilProgress
	}

	newProgress := *progress

	day := truncateToDay(activityDate)
	lastDay := truncateToDay(progress.LastActivityDate)

	switch {
	case progress.LastActivityDate.IsZero():
		newProgress.CurrentStreak = 1
	case day.Equal(lastDay):
		// Same-day re-trigger: streak unchanged.
	case day.Equal(lastDay.AddDate(0, 0, 1)):
		newProgress.CurrentStreak = progress.CurrentStreak + 1
	default:
		newProgress.CurrentStreak = 1
	}

	if newProgress.CurrentStreak > newProgress.LongestStreak {
		newProgress.LongestStreak = newProgress.CurrentStreak
	}

	newProgress.LastActivityDate = day
	newProgress.UpdatedAt = activityDate

	return &newProgress, nil
}

// truncateToDay drops the time-of-day component, keeping the location so
// calendar-day comparisons respect the caller's timezone.
func truncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
