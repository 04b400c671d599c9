package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Gateway  GatewayConfig
	Geocoder GeocoderConfig
	Events   EventsConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	// IdempotencyTTL is how long stored responses are replayed before the sweeper drops them
	IdempotencyTTL time.Duration
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	ConnMaxLifetime time.Duration
	MaxOpenConns    int
	MaxIdleConns    int
	// TxTimeout bounds every mutating transaction. Payment confirmation runs
	// several writes plus an aggregate inside one transaction, so keep it generous.
	TxTimeout time.Duration
}

// AuthConfig holds the shared secret used to verify identity tokens
type AuthConfig struct {
	JWTSecret string
	JWTIssuer string
}

// GatewayConfig holds hosted checkout configuration
type GatewayConfig struct {
	BaseURL    string
	APIKey     string
	SuccessURL string
	CancelURL  string
	Currency   string
	Timeout    time.Duration
}

// GeocoderConfig holds geocoding service and cache configuration
type GeocoderConfig struct {
	BaseURL  string
	RedisURL string
	Timeout  time.Duration
	CacheTTL time.Duration
}

// EventsConfig holds outbox relay configuration
type EventsConfig struct {
	KafkaBrokers []string
	TopicPrefix  string
	Interval     time.Duration
	BatchSize    int
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// Load loads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", "15s"),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", "45s"),
			IdleTimeout:  getEnvAsDuration("SERVER_IDLE_TIMEOUT", "60s"),

			IdempotencyTTL: getEnvAsDuration("IDEMPOTENCY_TTL", "24h"),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			DBName:          getEnv("DB_NAME", "layaway"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", "5m"),
			TxTimeout:       getEnvAsDuration("DB_TX_TIMEOUT", "30s"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-me"),
			JWTIssuer: getEnv("JWT_ISSUER", ""),
		},
		Gateway: GatewayConfig{
			BaseURL:    getEnv("GATEWAY_BASE_URL", "http://localhost:8081"),
			APIKey:     getEnv("GATEWAY_API_KEY", ""),
			SuccessURL: getEnv("CHECKOUT_SUCCESS_URL", "http://localhost:3000/payments/success"),
			CancelURL:  getEnv("CHECKOUT_CANCEL_URL", "http://localhost:3000/payments/cancel"),
			Currency:   getEnv("CURRENCY", "USD"),
			Timeout:    getEnvAsDuration("GATEWAY_TIMEOUT", "10s"),
		},
		Geocoder: GeocoderConfig{
			BaseURL:  getEnv("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org"),
			RedisURL: getEnv("REDIS_URL", ""),
			Timeout:  getEnvAsDuration("GEOCODER_TIMEOUT", "5s"),
			CacheTTL: getEnvAsDuration("GEOCODE_CACHE_TTL", "168h"),
		},
		Events: EventsConfig{
			KafkaBrokers: getEnvAsList("KAFKA_BROKERS"),
			TopicPrefix:  getEnv("KAFKA_TOPIC_PREFIX", "layaway"),
			Interval:     getEnvAsDuration("OUTBOX_INTERVAL", "2s"),
			BatchSize:    getEnvAsInt("OUTBOX_BATCH_SIZE", 100),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port cannot be empty")
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host cannot be empty")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database name cannot be empty")
	}
	if c.Database.TxTimeout <= 0 {
		return fmt.Errorf("transaction timeout must be positive, got %s", c.Database.TxTimeout)
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("jwt secret cannot be empty")
	}

	if c.Gateway.Currency == "" {
		return fmt.Errorf("currency cannot be empty")
	}

	if c.Events.BatchSize <= 0 {
		return fmt.Errorf("outbox batch size must be positive, got %d", c.Events.BatchSize)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}
	if c.Logger.Format != "json" && c.Logger.Format != "text" {
		return fmt.Errorf("invalid log format: %s (must be json or text)", c.Logger.Format)
	}

	return nil
}

// DSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsList(key string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvAsDuration(key, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		// Fallback to parsing the default if provided value is invalid
		duration, err = time.ParseDuration(defaultValue)
		if err != nil {
			return 0
		}
	}
	return duration
}
