// Package config loads slidegrid configuration from a TOML file.
//
// Every field has a sensible default, so a missing config file is not an
// error: Load returns Default() when the path does not exist. Partial
// files are fine too; only the keys present override the defaults.
//
// # Usage
//
//	cfg, err := config.Load(config.DefaultPath())
//	if err != nil {
//	    return err
//	}
//	store, err := config.OpenStore(ctx, cfg)
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/mr-romero/slidegrid/pkg/grid"
)

// Store backend names accepted in [store] backend.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendMongo  = "mongo"
)

// Config is the full slidegrid configuration.
type Config struct {
	Grid    GridConfig    `toml:"grid"`
	Store   StoreConfig   `toml:"store"`
	Server  ServerConfig  `toml:"server"`
	Present PresentConfig `toml:"present"`
}

// GridConfig bounds slide layouts.
type GridConfig struct {
	// MaxRows caps grid growth. Assignments beyond it are clamped.
	MaxRows int `toml:"max_rows"`

	// MaxColumns caps grid growth. Assignments beyond it are clamped.
	MaxColumns int `toml:"max_columns"`

	// ConflictPolicy is the default when a request does not choose one:
	// "overwrite" or "reject".
	ConflictPolicy string `toml:"conflict_policy"`
}

// MaxDim returns the configured cap as a grid dimension.
func (g GridConfig) MaxDim() grid.Dim {
	return grid.Dim{Rows: g.MaxRows, Columns: g.MaxColumns}
}

// ClampDim bounds requested grid dimensions to the configured caps. The
// lower bound stays the engine's concern.
func (g GridConfig) ClampDim(rows, cols int) (int, int) {
	if rows > g.MaxRows {
		rows = g.MaxRows
	}
	if cols > g.MaxColumns {
		cols = g.MaxColumns
	}
	return rows, cols
}

// ClampPosition bounds a requested anchor cell to the configured caps,
// so lazy grid growth cannot carry the grid past them.
func (g GridConfig) ClampPosition(pos grid.Position) grid.Position {
	if pos.Row > g.MaxRows-1 {
		pos.Row = g.MaxRows - 1
	}
	if pos.Column > g.MaxColumns-1 {
		pos.Column = g.MaxColumns - 1
	}
	return pos
}

// StoreConfig selects and configures the slide storage backend.
type StoreConfig struct {
	// Backend is one of "memory", "file", or "mongo".
	Backend string `toml:"backend"`

	// Dir is the slide directory for the file backend. Empty means the
	// default under the user config directory.
	Dir string `toml:"dir"`

	// MongoURI is the connection string for the mongo backend.
	MongoURI string `toml:"mongo_uri"`

	// MongoDatabase overrides the database name for the mongo backend.
	MongoDatabase string `toml:"mongo_database"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `toml:"addr"`

	// ReadTimeout and WriteTimeout bound request handling.
	ReadTimeout  time.Duration `toml:"read_timeout"`
	WriteTimeout time.Duration `toml:"write_timeout"`
}

// PresentConfig configures live presentation sessions.
type PresentConfig struct {
	// SessionTTL is how long a presentation session stays joinable.
	SessionTTL time.Duration `toml:"session_ttl"`

	// RedisAddr enables the Redis session store when non-empty. Empty
	// means sessions are held in memory.
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Grid: GridConfig{
			MaxRows:        5,
			MaxColumns:     5,
			ConflictPolicy: "overwrite",
		},
		Store: StoreConfig{
			Backend: BackendFile,
		},
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Present: PresentConfig{
			SessionTTL: 4 * time.Hour,
		},
	}
}

// DefaultPath returns the standard config file location,
// ~/.config/slidegrid/config.toml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "slidegrid", "config.toml")
}

// Load reads the TOML file at path, layered over Default(). A missing
// file returns the defaults; a malformed file returns an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks for values that cannot be clamped into shape.
func (c Config) Validate() error {
	if c.Grid.MaxRows < 1 || c.Grid.MaxColumns < 1 {
		return fmt.Errorf("grid limits must be at least 1, got %dx%d", c.Grid.MaxRows, c.Grid.MaxColumns)
	}
	switch c.Grid.ConflictPolicy {
	case "overwrite", "reject":
	default:
		return fmt.Errorf("unknown conflict policy %q", c.Grid.ConflictPolicy)
	}
	switch c.Store.Backend {
	case BackendMemory, BackendFile:
	case BackendMongo:
		if c.Store.MongoURI == "" {
			return fmt.Errorf("mongo backend requires mongo_uri")
		}
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
	return nil
}
