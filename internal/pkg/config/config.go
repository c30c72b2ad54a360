package config

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/pawsfam/pawhaven/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads the env file at configPath when running locally, then lets
// environment variables override it.
func InitConfig(configPath string) *models.Config {
	viper.SetConfigType("env")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	local := GetEnv("APP_ENV", "local")
	if local == "local" && configPath != "" {
		viper.SetConfigFile(configPath)
		if err := viper.ReadInConfig(); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfig()
}

func loadConfig() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "shipping-service")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9994)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 10)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 10)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 10)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv("DB_HOST", "localhost")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 10)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 5)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "nats://localhost:4222")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "")
	configs.JWT.AdminRole = GetEnv("JWT_ADMIN_ROLE", "admin")

	// API keys
	configs.APIKey.CartService = GetEnv("API_KEY_CART_SERVICE", "")
	configs.APIKey.AdminService = GetEnv("API_KEY_ADMIN_SERVICE", "")

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.LogsEnabled = GetEnvAsBool("NEW_RELIC_LOGS_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")
	configs.Logger.Type = GetEnv("LOG_TYPE", "stdout")

	// Shipping config
	configs.Shipping.Currency = GetEnv("SHIPPING_CURRENCY", "USD")
	configs.Shipping.SessionTTL = GetEnvAsDuration("SHIPPING_SESSION_TTL", 30*time.Minute)
	configs.Shipping.ConfigCacheTTL = GetEnvAsDuration("SHIPPING_CONFIG_CACHE_TTL", 10*time.Minute)
	configs.Shipping.GeohashPrecision = geohashPrecision(GetEnvAsInt("SHIPPING_GEOHASH_PRECISION", 7))
	configs.Shipping.ConfigLoadRetries = GetEnvAsInt("SHIPPING_CONFIG_LOAD_RETRIES", 3)
	configs.Shipping.RateLimit = GetEnvAsInt("SHIPPING_RATE_LIMIT", 120)
	configs.Shipping.RateLimitWindow = GetEnvAsDuration("SHIPPING_RATE_LIMIT_WINDOW", time.Minute)

	return configs
}

// Helper functions to read settings with different types. Environment
// variables win over the env file.
func GetEnv(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	if GetEnv(key, "") == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(viper.GetString(key))
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	switch strings.ToLower(valueStr) {
	case "1", "t", "true", "yes":
		return true
	case "0", "f", "false", "no":
		return false
	default:
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	if GetEnv(key, "") == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(viper.GetString(key), 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

// GetEnvAsDuration accepts Go duration strings such as "30m" or "1h30m".
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil || value <= 0 {
		log.Printf("Warning: Invalid duration value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

// geohashPrecision clamps the configured precision to the 1..12 characters a
// geohash can carry.
func geohashPrecision(n int) uint {
	switch {
	case n < 1:
		return 1
	case n > 12:
		return 12
	}
	return uint(n)
}
