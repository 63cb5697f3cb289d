package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the bot.
type Config struct {
	App    AppConfig
	Slack  SlackConfig
	DeepL  DeepLConfig
	Redis  RedisConfig
	Dedup  DedupConfig
	Logger LoggerConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// SlackConfig holds Slack API credentials and call limits.
type SlackConfig struct {
	BotToken           string
	SigningSecret      string
	CallTimeoutSeconds int
}

// DeepLConfig holds translation provider settings.
type DeepLConfig struct {
	AuthKey            string
	APIBaseURL         string
	CallTimeoutSeconds int
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// DedupConfig bounds the translated-unit retention window.
type DedupConfig struct {
	RetentionSeconds int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "translate-bot"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "3000"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Slack: SlackConfig{
			BotToken:           os.Getenv("SLACK_BOT_TOKEN"),
			SigningSecret:      os.Getenv("SLACK_SIGNING_SECRET"),
			CallTimeoutSeconds: getEnvAsInt("SLACK_CALL_TIMEOUT_SECONDS", 10),
		},
		DeepL: DeepLConfig{
			AuthKey:            os.Getenv("DEEPL_AUTH_KEY"),
			APIBaseURL:         getEnv("DEEPL_API_BASE_URL", "https://api.deepl.com"),
			CallTimeoutSeconds: getEnvAsInt("DEEPL_CALL_TIMEOUT_SECONDS", 10),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Dedup: DedupConfig{
			RetentionSeconds: getEnvAsInt("DEDUP_RETENTION_SECONDS", 604800),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if cfg.Slack.BotToken == "" {
		return nil, errors.New("SLACK_BOT_TOKEN is required")
	}
	if cfg.Slack.SigningSecret == "" {
		return nil, errors.New("SLACK_SIGNING_SECRET is required")
	}
	if cfg.DeepL.AuthKey == "" {
		return nil, errors.New("DEEPL_AUTH_KEY is required")
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// CallTimeout returns the per-call timeout for Slack Web API requests.
func (s SlackConfig) CallTimeout() time.Duration {
	if s.CallTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(s.CallTimeoutSeconds) * time.Second
}

// CallTimeout returns the per-call timeout for translation requests.
func (d DeepLConfig) CallTimeout() time.Duration {
	if d.CallTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(d.CallTimeoutSeconds) * time.Second
}

// Retention returns the dedup retention window.
func (d DedupConfig) Retention() time.Duration {
	if d.RetentionSeconds <= 0 {
		return 7 * 24 * time.Hour
	}
	return time.Duration(d.RetentionSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
