package config

import (
	"github.com/quantprep/mastery-engine/internal/domain/progression"
	"github.com/quantprep/mastery-engine/internal/domain/srs"
)

// Params converts the scheduler section into SRS algorithm parameters.
func (c *SchedulerConfig) Params() *srs.Params {
	return srs.NewParams(srs.ParamsConfig{
		MinEaseFactor:      c.MinEaseFactor,
		FirstIntervalDays:  c.FirstIntervalDays,
		SecondIntervalDays: c.SecondIntervalDays,
		LapseIntervalDays:  c.LapseIntervalDays,
	})
}

// AwardTable converts the progression section into an XP award table.
func (c *ProgressionConfig) AwardTable() *progression.AwardTable {
	return &progression.AwardTable{
		CorrectAnswer:       c.CorrectAnswerXP,
		IncorrectAnswer:     c.IncorrectAnswerXP,
		SessionCompleted:    c.SessionCompletedXP,
		BattleWon:           c.BattleWonXP,
		BattleParticipation: c.BattleParticipationXP,
		ForumPost:           c.ForumPostXP,
		ForumComment:        c.ForumCommentXP,
		DailyLogin:          c.DailyLoginXP,
		StreakBonus:         c.StreakBonusXP,
	}
}

// LevelTable converts the configured thresholds into a validated level
// table. Fails if the thresholds are not strictly increasing from zero.
func (c *ProgressionConfig) LevelTable() (*progression.LevelTable, error) {
	return progression.NewLevelTable(c.LevelThresholds)
}
