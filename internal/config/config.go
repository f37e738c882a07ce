package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	appName         = "lyrical"
	defaultCacheTTL = 24 * time.Hour
)

// Settings is everything lyrical reads from the environment
type Settings struct {
	ConfigDir string
	Token     string

	LogLevel     string
	LogBotToken  string
	LogChannelID int64

	RedisURL      string
	RedisPassword string
	CacheTTL      time.Duration
}

// LoadDotEnv loads a .env file from the working directory when one exists
func LoadDotEnv() {
	_ = godotenv.Load()
}

// FromEnv builds Settings from getenv, normally os.Getenv
func FromEnv(getenv func(string) string) (Settings, error) {
	s := Settings{
		ConfigDir:     filepath.Join(configHome(getenv), appName),
		Token:         strings.TrimSpace(getenv("LYRICAL_TOKEN")),
		LogLevel:      getenv("LYRICAL_LOG_LEVEL"),
		LogBotToken:   getenv("LYRICAL_LOG_BOT_TOKEN"),
		RedisURL:      getenv("LYRICAL_REDIS_URL"),
		RedisPassword: getenv("LYRICAL_REDIS_PASSWORD"),
		CacheTTL:      defaultCacheTTL,
	}

	if raw := getenv("LYRICAL_LOG_CHANNEL_ID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("failed to parse LYRICAL_LOG_CHANNEL_ID: %w", err)
		}
		s.LogChannelID = id
	}

	if raw := getenv("LYRICAL_CACHE_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return Settings{}, fmt.Errorf("failed to parse LYRICAL_CACHE_TTL: %w", err)
		}
		s.CacheTTL = ttl
	}

	return s, nil
}

// configHome is $XDG_CONFIG_HOME, falling back to $HOME/.config
func configHome(getenv func(string) string) string {
	if dir := getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	return filepath.Join(getenv("HOME"), ".config")
}

// TokenPath is where the API token file is expected
func (s Settings) TokenPath() string {
	return filepath.Join(s.ConfigDir, "token")
}

func (s Settings) CacheEnabled() bool {
	return s.RedisURL != ""
}

func (s Settings) LogForwardingEnabled() bool {
	return s.LogBotToken != "" && s.LogChannelID != 0
}
