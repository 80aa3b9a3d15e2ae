package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		Database
		Scan
		Streak
		Suggestions
	}

	Database struct {
		Path string
	}
	Scan struct {
		Debounce time.Duration // Minimum gap between accepted scanner codes
	}
	Streak struct {
		RefreshSchedule string // Cron format: "0 0 * * *" = midnight
	}
	Suggestions struct {
		PerCategory int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("scan_debounce", "800ms")
	v.SetDefault("streak_refresh_schedule", "0 0 * * *") // Midnight rollover
	v.SetDefault("suggestions_per_category", 4)

	return &Config{
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Scan: Scan{
			Debounce: v.GetDuration("SCAN_DEBOUNCE"),
		},
		Streak: Streak{
			RefreshSchedule: v.GetString("STREAK_REFRESH_SCHEDULE"),
		},
		Suggestions: Suggestions{
			PerCategory: v.GetInt("SUGGESTIONS_PER_CATEGORY"),
		},
	}
}
