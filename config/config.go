package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Gemini    GeminiConfig
	ProductDB ProductDBConfig
	Cache     CacheConfig
	Upload    UploadConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// GeminiConfig holds vision-model API configuration
type GeminiConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// ProductDBConfig holds downstream product database configuration
type ProductDBConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// CacheConfig holds lookup-cache configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// UploadConfig holds upload handling configuration
type UploadConfig struct {
	MaxFileSize int64 `mapstructure:"max_file_size"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/skulens/")

	// Environment variable settings
	v.SetEnvPrefix("SKULENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Gemini defaults
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com")
	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("gemini.timeout", "60s")

	// Product database defaults
	v.SetDefault("productdb.base_url", "http://localhost:5001/api/products")
	v.SetDefault("productdb.timeout", "30s")

	// Cache defaults
	v.SetDefault("cache.ttl", "10m")

	// Upload defaults
	v.SetDefault("upload.max_file_size", 10485760) // 10MB
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Gemini.APIKey == "" {
		return fmt.Errorf("Gemini API key is required (set SKULENS_GEMINI_API_KEY)")
	}

	if config.ProductDB.BaseURL == "" {
		return fmt.Errorf("product database base URL must not be empty")
	}

	if config.Upload.MaxFileSize <= 0 {
		return fmt.Errorf("upload max file size must be positive, got: %d", config.Upload.MaxFileSize)
	}

	return nil
}
