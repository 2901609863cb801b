package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Fallback  FallbackConfig
	Redis     RedisConfig
	Admin     AdminConfig
	Email     EmailConfig
	Gemini    GeminiConfig
	RateLimit RateLimitConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MAGIE_APP_ENV" default:"development"`
	Port         string `envconfig:"MAGIE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"MAGIE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MAGIE_LOG_WARN_STACK" default:"false"`
	AutoMigrate  bool   `envconfig:"MAGIE_AUTO_MIGRATE" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// DBConfig points at the hosted order database. An empty DSN leaves the
// hosted store unconfigured; dev mode then runs on the local fallback alone.
type DBConfig struct {
	DSN string `envconfig:"MAGIE_DB_DSN"`

	MaxOpenConns    int           `envconfig:"MAGIE_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"MAGIE_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"MAGIE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MAGIE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (d DBConfig) Configured() bool {
	return strings.TrimSpace(d.DSN) != ""
}

// FallbackConfig locates the on-device order slot used when the hosted
// database is unreachable or unconfigured.
type FallbackConfig struct {
	Path string `envconfig:"MAGIE_FALLBACK_PATH" default:"magie_orders_fallback.db"`
}

// RedisConfig is optional; when URL is empty the order rate limiter keeps
// its counters in process memory instead.
type RedisConfig struct {
	URL          string        `envconfig:"MAGIE_REDIS_URL"`
	PoolSize     int           `envconfig:"MAGIE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MAGIE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MAGIE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MAGIE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MAGIE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Configured() bool {
	return strings.TrimSpace(r.URL) != ""
}

// AdminConfig holds the shared dashboard secret. Exactly one of Password or
// PasswordHash (Argon2id) should be set; the hash wins when both are.
type AdminConfig struct {
	Password     string `envconfig:"MAGIE_ADMIN_PASSWORD"`
	PasswordHash string `envconfig:"MAGIE_ADMIN_PASSWORD_HASH"`
}

func (a AdminConfig) Configured() bool {
	return a.Password != "" || a.PasswordHash != ""
}

type EmailConfig struct {
	ResendAPIKey string `envconfig:"MAGIE_RESEND_API_KEY"`
	FromAddress  string `envconfig:"MAGIE_ORDER_EMAIL_FROM"`
	NotifyTo     string `envconfig:"MAGIE_ORDER_NOTIFY_TO"`
}

func (e EmailConfig) Configured() bool {
	return e.ResendAPIKey != "" && e.FromAddress != "" && e.NotifyTo != ""
}

type GeminiConfig struct {
	APIKey string `envconfig:"MAGIE_GEMINI_API_KEY"`
	Model  string `envconfig:"MAGIE_GEMINI_MODEL" default:"gemini-2.0-flash"`
}

// RateLimitConfig throttles order submissions per client address.
type RateLimitConfig struct {
	OrderWindow  time.Duration `envconfig:"MAGIE_RATE_LIMIT_ORDER_WINDOW" default:"1m"`
	OrderIPLimit int           `envconfig:"MAGIE_RATE_LIMIT_ORDER_IP_LIMIT" default:"10"`
}
