package config

// Config holds all engine configuration.
// It organizes settings into logical groups for better maintainability.
// Loaded once at process start; nothing mutates it afterwards.
type Config struct {
	Engine      EngineConfig      `mapstructure:"engine" validate:"required"`
	Scheduler   SchedulerConfig   `mapstructure:"scheduler" validate:"required"`
	Progression ProgressionConfig `mapstructure:"progression" validate:"required"`
	Selection   SelectionConfig   `mapstructure:"selection" validate:"required"`
}

// EngineConfig contains process-wide engine settings.
type EngineConfig struct {
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// SchedulerConfig contains the spaced-repetition algorithm parameters.
type SchedulerConfig struct {
	MinEaseFactor      float64 `mapstructure:"min_ease_factor"      validate:"required,gte=1"`
	FirstIntervalDays  int     `mapstructure:"first_interval_days"  validate:"required,gte=1"`
	SecondIntervalDays int     `mapstructure:"second_interval_days" validate:"required,gte=1"`
	LapseIntervalDays  int     `mapstructure:"lapse_interval_days"  validate:"required,gte=1"`
}

// ProgressionConfig contains the XP award table and the level thresholds.
type ProgressionConfig struct {
	CorrectAnswerXP       int   `mapstructure:"correct_answer_xp"       validate:"gte=0"`
	IncorrectAnswerXP     int   `mapstructure:"incorrect_answer_xp"     validate:"gte=0"`
	SessionCompletedXP    int   `mapstructure:"session_completed_xp"    validate:"gte=0"`
	BattleWonXP           int   `mapstructure:"battle_won_xp"           validate:"gte=0"`
	BattleParticipationXP int   `mapstructure:"battle_participation_xp" validate:"gte=0"`
	ForumPostXP           int   `mapstructure:"forum_post_xp"           validate:"gte=0"`
	ForumCommentXP        int   `mapstructure:"forum_comment_xp"        validate:"gte=0"`
	DailyLoginXP          int   `mapstructure:"daily_login_xp"          validate:"gte=0"`
	StreakBonusXP         int   `mapstructure:"streak_bonus_xp"         validate:"gte=0"`
	LevelThresholds       []int `mapstructure:"level_thresholds"        validate:"required,min=1"`
}

// SelectionConfig contains question selector defaults.
type SelectionConfig struct {
	DefaultSessionSize int `mapstructure:"default_session_size" validate:"required,gte=1"`
}
