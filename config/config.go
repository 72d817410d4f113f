package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// External marketplace backend API.
	BackendURL string `mapstructure:"BACKEND_URL"`

	// Session verification. The backend issues the session JWTs; the
	// gateway only validates them.
	JWTSecret     string `mapstructure:"JWT_SECRET"`
	SessionCookie string `mapstructure:"SESSION_COOKIE"`

	// Redis configuration (viewer-session cache).
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// Stripe publishable key exposed to payment views. Never a secret key;
	// all processor calls happen in the backend.
	StripePublishableKey string `mapstructure:"STRIPE_PUBLISHABLE_KEY"`

	// Display time zone for rendered dates and form input values.
	DisplayTimezone string `mapstructure:"DISPLAY_TIMEZONE"`

	// Where the "Contact Support" action points.
	SupportURL string `mapstructure:"SUPPORT_URL"`
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
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("BACKEND_URL", "http://localhost:4000")
	viper.SetDefault("SESSION_COOKIE", "token")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("STRIPE_PUBLISHABLE_KEY", "")
	viper.SetDefault("DISPLAY_TIMEZONE", "")
	viper.SetDefault("SUPPORT_URL", "/support")

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
