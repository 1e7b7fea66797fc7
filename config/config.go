package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// SoloApp API configuration.
	APIBaseURL        string `mapstructure:"API_BASE_URL"`
	APIToken          string `mapstructure:"API_TOKEN"`
	RequestTimeoutSec int    `mapstructure:"REQUEST_TIMEOUT_SEC"`
	MaxRetries        int    `mapstructure:"MAX_RETRIES"`
	RequestsPerSec    int    `mapstructure:"REQUESTS_PER_SEC"`

	// Slot computation.
	SlotDurationMin int `mapstructure:"SLOT_DURATION_MIN"`

	// Redis configuration (optional booking-session store).
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	SessionTTLMin  int    `mapstructure:"SESSION_TTL_MIN"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("API_BASE_URL", "http://localhost:8000/api")
	viper.SetDefault("API_TOKEN", "")
	viper.SetDefault("REQUEST_TIMEOUT_SEC", 10)
	viper.SetDefault("MAX_RETRIES", 3)
	viper.SetDefault("REQUESTS_PER_SEC", 10)
	viper.SetDefault("SLOT_DURATION_MIN", 50)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("SESSION_TTL_MIN", 10)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// RequestTimeout returns the configured per-request timeout.
func RequestTimeout() time.Duration {
	return time.Duration(AppConfig.RequestTimeoutSec) * time.Second
}

// SessionTTL returns how long an abandoned booking session is retained.
func SessionTTL() time.Duration {
	return time.Duration(AppConfig.SessionTTLMin) * time.Minute
}
