// Package config reads the configuration of the backend from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	ErrAPIURLRequired      = errors.New("environment variable API_URL must be set")
	ErrReminderDaysInvalid = errors.New("REMINDER_DAYS must be a number of days between 0 and 31")
)

// Config holds the configuration of the backend
type Config struct {
	APIURL *url.URL // Base URL for links in responses
	Port   string

	// SQLite is used unless DBHost is set
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	ReminderSchedule string // Cron spec. Reminders are disabled if empty
	ReminderDays     int
}

// Load reads the configuration. Variables from a .env file in the working
// directory are used unless they are already set in the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		return nil, ErrAPIURLRequired
	}

	u, err := url.Parse(apiURL)
	if err != nil {
		return nil, fmt.Errorf("environment variable API_URL must be a valid URL: %w", err)
	}

	days, err := strconv.Atoi(getEnv("REMINDER_DAYS", "3"))
	if err != nil || days < 0 || days > 31 {
		return nil, ErrReminderDaysInvalid
	}

	return &Config{
		APIURL:           u,
		Port:             getEnv("PORT", "8080"),
		DBPath:           getEnv("DB_PATH", "data/gorm.db"),
		DBHost:           getEnv("DB_HOST", ""),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", "duewise"),
		DBPassword:       getEnv("DB_PASSWORD", ""),
		DBName:           getEnv("DB_NAME", "duewise"),
		ReminderSchedule: getEnv("REMINDER_SCHEDULE", "0 7 * * *"),
		ReminderDays:     days,
	}, nil
}

// Postgres reports if PostgreSQL is configured.
func (c Config) Postgres() bool {
	return c.DBHost != ""
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
