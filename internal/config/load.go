package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from defaults, an optional config file, and
// environment variables. Environment variables (prefixed MASTERY_, with
// dots replaced by underscores, e.g. MASTERY_ENGINE_LOG_LEVEL) take
// precedence over files, which take precedence over defaults.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("mastery")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults plus env cover everything.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("MASTERY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults installs the engine's standard tuning so a bare process runs
// with the documented constants.
func setDefaults(v *viper.Viper) {
	v.SetDefault("engine.log_level", "info")

	v.SetDefault("scheduler.min_ease_factor", 1.3)
	v.SetDefault("scheduler.first_interval_days", 1)
	v.SetDefault("scheduler.second_interval_days", 6)
	v.SetDefault("scheduler.lapse_interval_days", 1)

	v.SetDefault("progression.correct_answer_xp", 10)
	v.SetDefault("progression.incorrect_answer_xp", 2)
	v.SetDefault("progression.session_completed_xp", 50)
	v.SetDefault("progression.battle_won_xp", 100)
	v.SetDefault("progression.battle_participation_xp", 25)
	v.SetDefault("progression.forum_post_xp", 15)
	v.SetDefault("progression.forum_comment_xp", 5)
	v.SetDefault("progression.daily_login_xp", 5)
	v.SetDefault("progression.streak_bonus_xp", 10)
	v.SetDefault("progression.level_thresholds", []int{
		0, 100, 300, 600, 1000, 1750, 2750, 4000, 5500, 7500,
		10000, 13000, 16500, 20500, 25000, 30000, 36000, 43000, 51000, 60000,
	})

	v.SetDefault("selection.default_session_size", 10)
}
