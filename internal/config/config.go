// Package config loads process settings from the environment, reading a .env
// file first when one exists.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds everything the bot process needs to start
type Config struct {
	DiscordToken  string
	ApplicationID string

	// GuildID registers commands to one server for development, empty for global
	GuildID string

	RiotAPIKey string

	RedisAddr     string
	RedisPassword string

	// ResultsDBPath is the sqlite file holding match results
	ResultsDBPath string

	// TrackingInterval is the live match polling period
	TrackingInterval time.Duration

	LogLevel logrus.Level
}

const (
	defaultRedisAddr        = "localhost:6379"
	defaultResultsDBPath    = "riftcustoms.sqlite"
	defaultTrackingInterval = 15 * time.Second
)

// Load reads the given .env files, or .env when none are given, then the
// environment. Missing files are ignored; variables already set win.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
	}

	cfg := &Config{
		DiscordToken:  os.Getenv("DISCORD_TOKEN"),
		ApplicationID: os.Getenv("APPLICATION_ID"),
		GuildID:       os.Getenv("GUILD_ID"),
		RiotAPIKey:    os.Getenv("RIOT_API_KEY"),
		RedisAddr:     getEnv("REDIS_ADDR", defaultRedisAddr),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		ResultsDBPath: getEnv("RESULTS_DB_PATH", defaultResultsDBPath),
	}

	if cfg.DiscordToken == "" {
		return nil, errors.New("DISCORD_TOKEN environment variable is required")
	}
	if cfg.RiotAPIKey == "" {
		return nil, errors.New("RIOT_API_KEY environment variable is required")
	}

	interval, err := time.ParseDuration(getEnv("TRACKING_INTERVAL", defaultTrackingInterval.String()))
	if err != nil {
		return nil, fmt.Errorf("invalid TRACKING_INTERVAL: %w", err)
	}
	if interval <= 0 {
		return nil, errors.New("TRACKING_INTERVAL must be positive")
	}
	cfg.TrackingInterval = interval

	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
