package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port        string `yaml:"port" env:"SERVER_PORT"`
		Mode        string `yaml:"mode" env:"SERVER_MODE"`
		BaseURL     string `yaml:"base_url" env:"SERVER_BASE_URL"`
		StoragePath string `yaml:"storage_path" env:"SERVER_STORAGE_PATH"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	JWT struct {
		Secret          string `yaml:"secret" env:"JWT_SECRET"`
		TokenExpiration string `yaml:"token_expiration" env:"JWT_TOKEN_EXPIRATION"`
		Issuer          string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Storage struct {
		// Driver selects the file store backend: "local" or "minio"
		Driver         string `yaml:"driver" env:"STORAGE_DRIVER"`
		MinioEndpoint  string `yaml:"minio_endpoint" env:"MINIO_ENDPOINT"`
		MinioAccessKey string `yaml:"minio_access_key" env:"MINIO_ACCESS_KEY"`
		MinioSecretKey string `yaml:"minio_secret_key" env:"MINIO_SECRET_KEY"`
		MinioBucket    string `yaml:"minio_bucket" env:"MINIO_BUCKET"`
		MinioRegion    string `yaml:"minio_region" env:"MINIO_REGION"`
		MinioUseSSL    bool   `yaml:"minio_use_ssl" env:"MINIO_USE_SSL"`
	} `yaml:"storage"`

	Payment struct {
		KeyID     string `yaml:"key_id" env:"RAZORPAY_KEY_ID"`
		KeySecret string `yaml:"key_secret" env:"RAZORPAY_KEY_SECRET"`
		// FeeAmount is the fixed application fee in minor units (paise)
		FeeAmount int64  `yaml:"fee_amount" env:"PAYMENT_FEE_AMOUNT"`
		Currency  string `yaml:"currency" env:"PAYMENT_CURRENCY"`
	} `yaml:"payment"`

	Admissions struct {
		RollPrefix string `yaml:"roll_prefix" env:"ADMISSIONS_ROLL_PREFIX"`
		Year       int    `yaml:"year" env:"ADMISSIONS_YEAR"`
	} `yaml:"admissions"`

	Redis struct {
		Addr     string `yaml:"addr" env:"REDIS_ADDR"`
		Password string `yaml:"password" env:"REDIS_PASSWORD"`
		DB       int    `yaml:"db" env:"REDIS_DB"`
		// RateLimit is the max requests per window per client IP; 0 disables
		RateLimit  int    `yaml:"rate_limit" env:"REDIS_RATE_LIMIT"`
		RateWindow string `yaml:"rate_window" env:"REDIS_RATE_WINDOW"`
	} `yaml:"redis"`

	SMTP struct {
		Host      string `yaml:"host" env:"SMTP_HOST"`
		Port      int    `yaml:"port" env:"SMTP_PORT"`
		Username  string `yaml:"username" env:"SMTP_USERNAME"`
		Password  string `yaml:"password" env:"SMTP_PASSWORD"`
		FromName  string `yaml:"from_name" env:"SMTP_FROM_NAME"`
		FromEmail string `yaml:"from_email" env:"SMTP_FROM_EMAIL"`
	} `yaml:"smtp"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional; env vars alone can configure the service
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.BaseURL = "http://localhost:8080"
	config.Server.StoragePath = "uploads"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "fifty_villagers"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	config.JWT.TokenExpiration = "120h"
	config.JWT.Issuer = "fiftyvillagers.org"

	config.Storage.Driver = "local"
	config.Storage.MinioBucket = "seva-portal"

	config.Payment.FeeAmount = 10000 // ₹100 in paise
	config.Payment.Currency = "INR"

	config.Admissions.RollPrefix = "FV"
	config.Admissions.Year = time.Now().Year()

	config.Redis.RateLimit = 300
	config.Redis.RateWindow = "15m"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return applyEnvOverrides(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if _, err := time.ParseDuration(config.JWT.TokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT token expiration format: %w", err)
	}

	switch config.Storage.Driver {
	case "local":
	case "minio":
		if config.Storage.MinioEndpoint == "" {
			return fmt.Errorf("minio endpoint is required for the minio storage driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", config.Storage.Driver)
	}

	if config.Payment.FeeAmount <= 0 {
		return fmt.Errorf("payment fee amount must be positive")
	}

	if config.Redis.Addr != "" {
		if _, err := time.ParseDuration(config.Redis.RateWindow); err != nil {
			return fmt.Errorf("invalid rate limit window format: %w", err)
		}
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
