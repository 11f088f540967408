package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	AppEnv           string
	EnableDocs       bool
	GymName          string
	ScheduleFile     string
	Timezone         *time.Location
	PayrollBaseRate  float64
	PayrollBonusRate float64
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	timezone, err := time.LoadLocation(getEnv("GYM_TIMEZONE", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("GYM_TIMEZONE is invalid: %w", err)
	}
	baseRate, err := getEnvFloat("PAYROLL_BASE_RATE", 25.0)
	if err != nil {
		return nil, err
	}
	bonusRate, err := getEnvFloat("PAYROLL_BONUS_RATE", 1.50)
	if err != nil {
		return nil, err
	}
	if baseRate < 0 || bonusRate < 0 {
		return nil, fmt.Errorf("payroll rates must not be negative")
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		AppEnv:           normalizeEnv(getEnv("APP_ENV", "production")),
		EnableDocs:       getEnvBool("ENABLE_API_DOCS", false),
		GymName:          getEnv("GYM_NAME", "Gym"),
		ScheduleFile:     strings.TrimSpace(getEnv("GYM_SCHEDULE_FILE", "")),
		Timezone:         timezone,
		PayrollBaseRate:  baseRate,
		PayrollBonusRate: bonusRate,
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return fallback, nil
	}

	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return parsed, nil
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}

func (c *Config) DocsEnabled() bool {
	return c != nil && c.EnableDocs && c.AppEnv == "development"
}

// Location falls back to UTC when no timezone was configured.
func (c *Config) Location() *time.Location {
	if c == nil || c.Timezone == nil {
		return time.UTC
	}
	return c.Timezone
}
