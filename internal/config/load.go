package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load configuration from environment variables and optionally a config
// file. Environment variables take precedence over values from config
// files. Returns a populated Config struct or an error if loading or
// validation fails.
//
// Environment variables use the PLACES_ prefix with underscores for
// nesting, e.g. PLACES_SERVER_PORT, PLACES_AUTH_JWT_SECRET.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// Optional config file next to the binary or in the working directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine; env vars and defaults carry the load.
	}

	v.SetEnvPrefix("PLACES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv does not make viper.Unmarshal see env-only keys, so bind
	// each known key explicitly.
	for _, key := range []string{
		"server.port",
		"server.log_level",
		"database.url",
		"auth.jwt_secret",
		"auth.signup_token_lifetime_minutes",
		"auth.login_token_lifetime_minutes",
		"auth.bcrypt_cost",
		"upload.dir",
		"upload.max_bytes",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers defaults for everything that has a sensible one.
// Secrets deliberately have no default.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("auth.signup_token_lifetime_minutes", 60)
	v.SetDefault("auth.login_token_lifetime_minutes", 30)
	v.SetDefault("auth.bcrypt_cost", 12)
	v.SetDefault("upload.dir", "uploads/images")
	v.SetDefault("upload.max_bytes", int64(5<<20))
}
