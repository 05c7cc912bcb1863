package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Storage backend kinds selectable at startup.
const (
	StorageSQLite   = "sqlite"
	StorageDocument = "document"
)

// Config is the runtime configuration, read from JOURNAL_* environment
// variables with defaults matching a local single-node deployment.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string

	// Storage selects the repository backend: StorageSQLite or
	// StorageDocument.
	Storage string

	// DBPath is the SQLite database file (sqlite backend).
	DBPath string

	// DocumentPath is the JSON document store file (document backend).
	DocumentPath string

	// PublicDir is the static frontend directory; empty disables static
	// serving and the SPA fallback.
	PublicDir string
}

func Load() *Config {
	v := viper.New()
	v.SetEnvPrefix("journal")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("addr", ":3000")
	v.SetDefault("storage", StorageSQLite)
	v.SetDefault("db_path", "journal.db")
	v.SetDefault("document_path", "db.json")
	v.SetDefault("public_dir", "./public")

	return &Config{
		Addr:         v.GetString("addr"),
		Storage:      v.GetString("storage"),
		DBPath:       v.GetString("db_path"),
		DocumentPath: v.GetString("document_path"),
		PublicDir:    v.GetString("public_dir"),
	}
}
