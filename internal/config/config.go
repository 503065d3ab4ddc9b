package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Discussion DiscussionConfig `yaml:"discussion"`
	Cache      CacheConfig      `yaml:"cache"`
	Projection ProjectionConfig `yaml:"projection"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,x-authenticated-user-token"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
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
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"true"`
	// HealthCheckPeriod is how often idle connections are probed.
	HealthCheckPeriod time.Duration `yaml:"health_check_period" env:"DATABASE_HEALTH_CHECK_PERIOD" env-default:"30s"`
	ApplicationName   string        `yaml:"application_name"    env:"DATABASE_APPLICATION_NAME"    env-default:"discussion-backend"`
}

// AuthConfig holds access-token and search-key signing settings.
type AuthConfig struct {
	JWTSecret       string        `yaml:"jwt_secret"        env:"AUTH_JWT_SECRET"        env-required:"true"`
	JWTIssuer       string        `yaml:"jwt_issuer"        env:"AUTH_JWT_ISSUER"        env-default:"discussion-backend"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl"  env:"AUTH_ACCESS_TOKEN_TTL"  env-default:"15m"`
	SearchKeySecret string        `yaml:"search_key_secret" env:"AUTH_SEARCH_KEY_SECRET" env-default:"discussion-search-result-cache-key"`
}

// DiscussionConfig holds discussion service settings.
type DiscussionConfig struct {
	IndexName       string        `yaml:"index_name"        env:"DISCUSSION_INDEX_NAME"        env-default:"discussion"`
	StoreTimeout    time.Duration `yaml:"store_timeout"     env:"DISCUSSION_STORE_TIMEOUT"     env-default:"5s"`
	MaxVoteAttempts int           `yaml:"max_vote_attempts" env:"DISCUSSION_MAX_VOTE_ATTEMPTS" env-default:"3"`
}

// CacheConfig holds in-process cache settings.
type CacheConfig struct {
	DocumentCapacity int           `yaml:"document_capacity" env:"CACHE_DOCUMENT_CAPACITY" env-default:"10000"`
	SearchCapacity   int           `yaml:"search_capacity"   env:"CACHE_SEARCH_CAPACITY"   env-default:"1000"`
	SearchTTL        time.Duration `yaml:"search_ttl"        env:"CACHE_SEARCH_TTL"        env-default:"60s"`
}

// ProjectionConfig holds settings of the asynchronous index/cache projector.
type ProjectionConfig struct {
	Workers     int           `yaml:"workers"      env:"PROJECTION_WORKERS"      env-default:"4"`
	QueueSize   int           `yaml:"queue_size"   env:"PROJECTION_QUEUE_SIZE"   env-default:"256"`
	TaskTimeout time.Duration `yaml:"task_timeout" env:"PROJECTION_TASK_TIMEOUT" env-default:"5s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-client request rate limits.
type RateLimitConfig struct {
	Enabled        bool    `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	RequestsPerSec float64 `yaml:"requests_per_sec" env:"RATE_LIMIT_REQUESTS_PER_SEC" env-default:"20"`
	Burst          int     `yaml:"burst"            env:"RATE_LIMIT_BURST"            env-default:"40"`
}
