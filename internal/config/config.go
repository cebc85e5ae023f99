package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/franciscosanchezn/gin-pizzeria-api/internal/database"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(LevelForEnvironment(GetEnvWithDefault("APP_ENV", "development")))
}

// ConfigFileEnv names the environment variable pointing at an optional YAML config file
const ConfigFileEnv = "PIZZERIA_CONFIG"

// envKeys maps environment variables to config keys
var envKeys = map[string]string{
	"APP_PORT":         "port",
	"APP_HOST":         "host",
	"APP_ENV":          "environment",
	"DB_URI":           "database_uri",
	"LOG_LEVEL":        "log_level",
	"SEED_DATABASE":    "seed_database",
	"SHUTDOWN_TIMEOUT": "shutdown_timeout",
}

// Config used for the application configuration
type Config struct {
	// Server Configuration
	Port            int           `koanf:"port" json:"port"`
	Host            string        `koanf:"host" json:"host"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" json:"shutdown_timeout"`

	// Database configuration
	DatabaseURI  string `koanf:"database_uri" json:"database_uri"`
	SeedDatabase bool   `koanf:"seed_database" json:"seed_database"`

	// Logging configuration
	Environment string `koanf:"environment" json:"environment"`
	LogLevel    string `koanf:"log_level" json:"log_level"`
}

// Default returns the configuration used when nothing overrides it
func Default() *Config {
	return &Config{
		Port:            5555,
		Host:            "localhost",
		ShutdownTimeout: 10 * time.Second,
		DatabaseURI:     "sqlite://app.db",
		SeedDatabase:    true,
		Environment:     "development",
	}
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, DatabaseURI: %s, SeedDatabase: %t, Environment: %s, LogLevel: %s, ShutdownTimeout: %s}",
		c.Port, c.Host, database.MaskURI(c.DatabaseURI), c.SeedDatabase, c.Environment, c.LogLevel, c.ShutdownTimeout)
}

// Address returns the host:port the server listens on
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Database parses DatabaseURI into a database configuration
func (c *Config) Database() (database.DatabaseConfig, error) {
	return database.ParseDatabaseURI(c.DatabaseURI)
}

// Level returns LogLevel when set and valid, otherwise the level implied by Environment
func (c *Config) Level() logrus.Level {
	if c.LogLevel != "" {
		if level, err := logrus.ParseLevel(c.LogLevel); err == nil {
			return level
		}
	}
	return LevelForEnvironment(c.Environment)
}

// LevelForEnvironment maps APP_ENV to a log level
func LevelForEnvironment(environment string) logrus.Level {
	switch environment {
	case "development":
		return logrus.DebugLevel
	case "production":
		return logrus.ErrorLevel
	default:
		// Default to info level for other environments
		return logrus.InfoLevel
	}
}

// LoadConfig builds a Config by layering, lowest precedence first:
//  1. defaults
//  2. YAML file named by PIZZERIA_CONFIG, if set
//  3. DATABASE_URL, kept as an alias of DB_URI
//  4. the variables in envKeys
//
// Returns an error if any value is missing or invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration")
	k := koanf.New(".")

	if path := GetEnvWithDefault(ConfigFileEnv, ""); path != "" {
		log.WithField("path", path).Info("Loading configuration file")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	alias := env.ProviderWithValue("DATABASE_URL", ".", func(key, value string) (string, interface{}) {
		if key != "DATABASE_URL" || value == "" {
			return "", nil
		}
		return "database_uri", value
	})
	if err := k.Load(alias, nil); err != nil {
		return nil, err
	}

	if err := k.Load(env.ProviderWithValue("", ".", envKey), nil); err != nil {
		return nil, err
	}

	config := Default()
	if err := k.UnmarshalWithConf("", config, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// envKey translates a known environment variable into its config key; unknown or empty ones are skipped
func envKey(key, value string) (string, interface{}) {
	name, ok := envKeys[key]
	if !ok || value == "" {
		return "", nil
	}
	return name, value
}

// Validate checks the values LoadConfig cannot enforce by type alone
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if strings.TrimSpace(c.DatabaseURI) == "" {
		return errors.New("DB_URI must not be empty")
	}
	if _, err := c.Database(); err != nil {
		return fmt.Errorf("invalid DB_URI: %w", err)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %s", c.ShutdownTimeout)
	}
	return nil
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}
