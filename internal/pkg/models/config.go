package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	APIKey   APIKeyConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
	Shipping ShippingConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains the settings used to verify admin tokens
type JWTConfig struct {
	Secret    string
	Issuer    string
	AdminRole string
}

// APIKeyConfig holds the API keys of services allowed to call internal routes
type APIKeyConfig struct {
	CartService  string
	AdminService string
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	LogsEnabled bool
	ForwardLogs bool
}

// LoggerConfig contains logger output configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}

// ShippingConfig contains shipping service specific configuration
type ShippingConfig struct {
	Currency          string
	SessionTTL        time.Duration // lifetime of a shopper quote session in Redis
	ConfigCacheTTL    time.Duration // lifetime of a cached pricing config in Redis
	GeohashPrecision  uint
	ConfigLoadRetries int
	RateLimit         int           // public requests per client IP and route per window, 0 disables
	RateLimitWindow   time.Duration
}
