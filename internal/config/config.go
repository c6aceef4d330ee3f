// Package config manages environment variables.
//
// It reads variables from the process environment (optionally seeded
// from a `.env` file), loads them into structured Go types, and
// validates that required values are present so they can be reused
// across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (e.g. logging).
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process env before any variable is read. No explicit call needed.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf maps values from. The
// `validate:"required"` tags are enforced by go-playground/validator so
// a missing block fails startup instead of surfacing later.
//
// Logging is a pointer because it is optional. If not provided, we
// inject defaults at load time.
type Config struct {
	Primary  Primary        `koanf:"primary" validate:"required"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Logging  *LoggingConfig `koanf:"logging"`
}

// Primary holds top-level information about the runtime environment.
// Used to tag logs and switch behavior (e.g. SQL tracing in "local").
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are stored as whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	// Level is the verbosity threshold (trace/debug/info/warn/error).
	Level string `koanf:"level" validate:"required"`

	// Format selects the output format: "json" or "console".
	Format string `koanf:"format" validate:"required"`
}

// DefaultLoggingConfig returns the logging defaults used when the
// logging block is absent from the environment.
func DefaultLoggingConfig() *LoggingConfig {
	return &LoggingConfig{
		Level:  "info",
		Format: "json",
	}
}

// EnvPrefix is the prefix shared by every environment variable the
// application reads.
//
// Nesting uses a double underscore so single underscores survive inside
// key names:
//
//	ITEMS_SERVER__PORT             -> server.port
//	ITEMS_DATABASE__MAX_OPEN_CONNS -> database.max_open_conns
const EnvPrefix = "ITEMS_"

// Load reads configuration from environment variables, unmarshals it
// into Config, validates it, and applies defaults for optional blocks.
func Load() (*Config, error) {
	// "." is the key-path delimiter koanf uses to represent nesting,
	// e.g. "server.port" means Config.Server.Port.
	k := koanf.New(".")

	// Only env vars carrying the prefix are read. The mapping function
	// strips the prefix, lowercases the rest, and converts the "__"
	// nesting marker into koanf's "." delimiter. List-valued keys are
	// comma-separated in the environment and split here, since the env
	// provider has no native list syntax.
	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(s, v string) (string, interface{}) {
		key := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
		if key == "server.cors_allowed_origins" {
			return key, strings.Split(v, ",")
		}
		return key, v
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading environment variables: %w", err)
	}

	mainConfig := &Config{}

	// "" means "unmarshal everything from the root". koanf's default
	// decoder is weakly typed, so "5432" becomes an int and
	// comma-separated values become a []string.
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if mainConfig.Logging == nil {
		mainConfig.Logging = DefaultLoggingConfig()
	}

	// Validate recursively; any missing required field fails startup.
	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return mainConfig, nil
}
