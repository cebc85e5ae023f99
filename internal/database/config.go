package database

import (
	"fmt"
	"net/url"
	"strings"
)

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	// Driver specifies the database driver (postgres, sqlite)
	Driver string

	// URL is the PostgreSQL connection URL
	URL string

	// Path is the SQLite database file, or :memory:
	Path string
}

// ParseDatabaseURI builds a DatabaseConfig from a single connection string.
// postgres:// and postgresql:// select PostgreSQL, sqlite:// or a bare path select SQLite.
func ParseDatabaseURI(uri string) (DatabaseConfig, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return DatabaseConfig{}, fmt.Errorf("database URI is empty")
	}

	switch {
	case strings.HasPrefix(uri, "postgres://"), strings.HasPrefix(uri, "postgresql://"):
		if _, err := url.Parse(uri); err != nil {
			return DatabaseConfig{}, fmt.Errorf("invalid postgres URI: %w", err)
		}
		return DatabaseConfig{Driver: "postgres", URL: uri}, nil

	case strings.HasPrefix(uri, "sqlite://"):
		path := strings.TrimPrefix(uri, "sqlite://")
		if path == "" {
			return DatabaseConfig{}, fmt.Errorf("sqlite URI has no path: %s", uri)
		}
		return DatabaseConfig{Driver: "sqlite", Path: path}, nil

	case strings.Contains(uri, "://"):
		return DatabaseConfig{}, fmt.Errorf("unsupported database scheme in %q (supported: postgres, sqlite)", MaskURI(uri))

	default:
		return DatabaseConfig{Driver: "sqlite", Path: uri}, nil
	}
}

// String returns a string representation with sensitive data masked
func (c *DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Driver: %s, URL: %s, Path: %s}",
		c.Driver, MaskURI(c.URL), c.Path)
}

// DSN builds a Data Source Name string based on the driver
func (c *DatabaseConfig) DSN() string {
	switch c.Driver {
	case "postgres", "postgresql":
		return c.URL
	case "sqlite", "":
		// foreign keys are off by default in SQLite
		if strings.Contains(c.Path, "?") {
			return c.Path + "&_foreign_keys=on"
		}
		return c.Path + "?_foreign_keys=on"
	default:
		return ""
	}
}

// MaskURI masks the password in a connection URL
func MaskURI(uri string) string {
	if uri == "" {
		return ""
	}

	parsed, err := url.Parse(uri)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}

	if parsed.User != nil {
		if _, hasPassword := parsed.User.Password(); hasPassword {
			parsed.User = url.UserPassword(parsed.User.Username(), "REDACTED")
		}
	}

	return parsed.String()
}
