package storage

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/momentum/internal/constants"
)

// New selects a provider from the --config value: Postgres URLs, JSON files,
// the in-memory sentinel, or (by default) a SQLite database path.
func New(config string) Provider {
	switch {
	case IsPostgres(config):
		return NewPostgresStore(config)
	case config == constants.MemoryConfig:
		return NewMemoryStore()
	case strings.HasSuffix(strings.ToLower(config), ".json"):
		return NewJSONStore(ExpandPath(config))
	default:
		return NewSQLiteStore(ExpandPath(config))
	}
}

// IsPostgres reports whether config is a PostgreSQL connection URL
func IsPostgres(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string carries a password inline.
func HasEmbeddedCredentials(connStr string) bool {
	if IsPostgres(connStr) {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		if u.User != nil {
			if _, ok := u.User.Password(); ok {
				return true
			}
		}
		return u.Query().Get("password") != ""
	}
	// key=value DSN form
	for _, field := range strings.Fields(connStr) {
		if strings.HasPrefix(strings.ToLower(field), "password=") {
			return true
		}
	}
	return false
}

// ExpandPath resolves a leading "~" to the user's home directory
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

// ConfigDir returns the directory that holds logs and backups for a given --config value.
// Network-backed configs fall back to the default config directory.
func ConfigDir(config string) string {
	if IsPostgres(config) || config == constants.MemoryConfig || config == constants.KeyringConfig || config == "" {
		return ExpandPath(constants.DefaultConfigDir)
	}
	return filepath.Dir(ExpandPath(config))
}

// Versioned is implemented by providers backed by a migrated SQL schema
type Versioned interface {
	SchemaVersion() (current, latest int, err error)
}
