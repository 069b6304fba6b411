package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	Upload   UploadConfig   `mapstructure:"upload"   validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains all authentication and authorization settings.
// Token lifetimes differ by issuance context: signup tokens live longer
// than login tokens. Both are policy knobs, not fixed laws.
type AuthConfig struct {
	JWTSecret                   string `mapstructure:"jwt_secret"                     validate:"required,min=32"`
	SignupTokenLifetimeMinutes  int    `mapstructure:"signup_token_lifetime_minutes"  validate:"required,gt=0"`
	LoginTokenLifetimeMinutes   int    `mapstructure:"login_token_lifetime_minutes"   validate:"required,gt=0"`
	BcryptCost                  int    `mapstructure:"bcrypt_cost"                    validate:"required,gte=4,lte=31"`
}

// UploadConfig contains settings for stored image uploads.
type UploadConfig struct {
	Dir      string `mapstructure:"dir"       validate:"required"`
	MaxBytes int64  `mapstructure:"max_bytes" validate:"required,gt=0"`
}
