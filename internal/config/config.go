package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	Feed      FeedConfig      `yaml:"feed"`
	Recommend RecommendConfig `yaml:"recommend"`
	CORS      CORSConfig      `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// FeedConfig holds change-feed listener settings.
type FeedConfig struct {
	Channel           string        `yaml:"channel"             env:"FEED_CHANNEL"             env-default:"entity_changes"`
	ReconnectMinDelay time.Duration `yaml:"reconnect_min_delay" env:"FEED_RECONNECT_MIN_DELAY" env-default:"1s"`
	ReconnectMaxDelay time.Duration `yaml:"reconnect_max_delay" env:"FEED_RECONNECT_MAX_DELAY" env-default:"30s"`
}

// RecommendConfig holds the recommendation scoring weights and limits.
// The weights are process-wide constants of the scoring heuristic, carried
// as an explicitly-constructed configuration value rather than globals.
type RecommendConfig struct {
	CategoryWeight   float64 `yaml:"category_weight"   env:"RECOMMEND_CATEGORY_WEIGHT"   env-default:"0.4"`
	SocietyWeight    float64 `yaml:"society_weight"    env:"RECOMMEND_SOCIETY_WEIGHT"    env-default:"0.3"`
	PopularityWeight float64 `yaml:"popularity_weight" env:"RECOMMEND_POPULARITY_WEIGHT" env-default:"0.2"`
	NoveltyWeight    float64 `yaml:"novelty_weight"    env:"RECOMMEND_NOVELTY_WEIGHT"    env-default:"0.1"`
	MinScore         float64 `yaml:"min_score"         env:"RECOMMEND_MIN_SCORE"         env-default:"0.1"`
	DefaultLimit     int     `yaml:"default_limit"     env:"RECOMMEND_DEFAULT_LIMIT"     env-default:"10"`
	MaxLimit         int     `yaml:"max_limit"         env:"RECOMMEND_MAX_LIMIT"         env-default:"50"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-User-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
