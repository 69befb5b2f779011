package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Voice      VoiceConfig      `yaml:"voice"`
	Monitor    MonitorConfig    `yaml:"monitor"`
	Directions DirectionsConfig `yaml:"directions"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Timezone,X-Client-Info,Apikey"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
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
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"false"`
}

// AuthConfig holds bearer-token verification settings. Tokens are issued by
// the external auth provider and signed with the shared HS256 secret.
type AuthConfig struct {
	JWTSecret   string `yaml:"jwt_secret"   env:"AUTH_JWT_SECRET"   env-required:"true"`
	JWTIssuer   string `yaml:"jwt_issuer"   env:"AUTH_JWT_ISSUER"`
	JWTAudience string `yaml:"jwt_audience" env:"AUTH_JWT_AUDIENCE" env-default:"authenticated"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-client request limits for the /api routes.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	PerMinute       int           `yaml:"per_minute"       env:"RATE_LIMIT_PER_MINUTE"       env-default:"120"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// VoiceConfig holds voice command settings.
type VoiceConfig struct {
	MaxCommandLength int `yaml:"max_command_length" env:"VOICE_MAX_COMMAND_LENGTH" env-default:"1000"`
	HistoryLimit     int `yaml:"history_limit"      env:"VOICE_HISTORY_LIMIT"      env-default:"50"`
}

// MonitorConfig holds location monitor settings.
// AlertWindow must match the dedup window of the component that raises alerts.
type MonitorConfig struct {
	AlertWindow  time.Duration `yaml:"alert_window"  env:"MONITOR_ALERT_WINDOW"  env-default:"5m"`
	NudgeEnabled bool          `yaml:"nudge_enabled" env:"MONITOR_NUDGE_ENABLED" env-default:"true"`
	// LocationRetention is how long position samples are kept by cmd/cleanup.
	LocationRetention time.Duration `yaml:"location_retention" env:"MONITOR_LOCATION_RETENTION" env-default:"720h"`
}

// DirectionsConfig holds the walking-directions text generator settings.
// An empty APIKey disables the directions endpoint.
type DirectionsConfig struct {
	APIKey   string        `yaml:"api_key"   env:"DIRECTIONS_API_KEY"`
	Model    string        `yaml:"model"     env:"DIRECTIONS_MODEL"     env-default:"gemini-2.5-flash"`
	Timeout  time.Duration `yaml:"timeout"   env:"DIRECTIONS_TIMEOUT"   env-default:"20s"`
	CacheTTL time.Duration `yaml:"cache_ttl" env:"DIRECTIONS_CACHE_TTL" env-default:"10m"`
}

// Enabled reports whether a text generator is configured.
func (c DirectionsConfig) Enabled() bool {
	return c.APIKey != ""
}
