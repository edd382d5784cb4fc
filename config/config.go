package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	ServerPort      string        `mapstructure:"SERVER_PORT" validate:"required"`
	GinMode         string        `mapstructure:"GIN_MODE" validate:"oneof=debug release test"`
	DatabaseURL     string        `mapstructure:"DATABASE_URL"` // Empty disables the completion log
	ContentFile     string        `mapstructure:"CONTENT_FILE"` // Empty serves the embedded article
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT" validate:"gt=0"`
	Session         SessionConfig `mapstructure:"SESSION"`
}

// SessionConfig holds the quiz session cookie settings
type SessionConfig struct {
	SigningKey   string        `mapstructure:"SIGNING_KEY" validate:"required,min=16"`
	Issuer       string        `mapstructure:"ISSUER" validate:"required"`
	CookieName   string        `mapstructure:"COOKIE_NAME" validate:"required"`
	TTL          time.Duration `mapstructure:"TTL" validate:"gt=0"`
	SecureCookie bool          `mapstructure:"SECURE_COOKIE"`
}

// LoadConfig loads configuration from environment variables and config.yaml
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config") // config.yaml
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("SERVER_PORT", ":8080")
	v.SetDefault("GIN_MODE", "debug") // gin.DebugMode, gin.ReleaseMode, gin.TestMode
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("CONTENT_FILE", "")
	v.SetDefault("SHUTDOWN_TIMEOUT", "5s")
	v.SetDefault("SESSION.SIGNING_KEY", "change-me-lightwork-session-key") // IMPORTANT: Change this in production
	v.SetDefault("SESSION.ISSUER", "lightwork")
	v.SetDefault("SESSION.COOKIE_NAME", "lightwork_quiz")
	v.SetDefault("SESSION.TTL", "2h")
	v.SetDefault("SESSION.SECURE_COOKIE", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Println("config.yaml not found, using environment variables and defaults")
		} else {
			return nil, fmt.Errorf("fatal error config file: %w", err)
		}
	}

	// LIGHTWORK_SERVER_PORT, LIGHTWORK_SESSION_SIGNING_KEY etc.
	v.SetEnvPrefix("LIGHTWORK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
