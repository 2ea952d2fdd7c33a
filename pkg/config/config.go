// Package config loads the vertexsim configuration file. The file is TOML,
// lives at ~/.config/vertexsim/config.toml by default, and every field has a
// working default, so running without a file is fully supported. Command
// line flags override file values; the merge happens in the CLI layer.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/uspp-raketa/vertexsim/pkg/similarity"
	"github.com/uspp-raketa/vertexsim/pkg/wordgraph"
)

// Config is the full configuration tree.
type Config struct {
	Engine     Engine     `toml:"engine"`
	Cache      Cache      `toml:"cache"`
	Redis      Redis      `toml:"redis"`
	Mongo      Mongo      `toml:"mongo"`
	Dictionary Dictionary `toml:"dictionary"`
	Server     Server     `toml:"server"`
	Neo4j      Neo4j      `toml:"neo4j"`
}

// Engine tunes the similarity iteration.
type Engine struct {
	// Tolerance is the convergence threshold on the round-to-round score
	// change.
	Tolerance float64 `toml:"tolerance"`

	// MaxRounds caps the iteration count.
	MaxRounds int `toml:"max_rounds"`
}

// Cache configures the local file cache.
type Cache struct {
	// Dir is the cache directory. Empty selects the XDG default
	// (~/.cache/vertexsim).
	Dir string `toml:"dir"`

	// Disabled turns caching off entirely.
	Disabled bool `toml:"disabled"`
}

// Redis configures the shared cache used by server deployments. An empty
// Addr keeps the file cache.
type Redis struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// Mongo configures durable report storage for the HTTP API. An empty URI
// keeps the in-memory store.
type Mongo struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// Dictionary configures the OPTED word graph source.
type Dictionary struct {
	// BaseURL is the root of the per-letter dictionary pages.
	BaseURL string `toml:"base_url"`

	// MaxInDegree is the neighbourhood hub filter threshold. Zero
	// disables the filter.
	MaxInDegree int `toml:"max_in_degree"`
}

// Server configures the HTTP API.
type Server struct {
	Addr string `toml:"addr"`
}

// Neo4j configures the graph database source for "vertexsim fetch neo4j".
type Neo4j struct {
	URI      string `toml:"uri"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	Database string `toml:"database"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Engine: Engine{
			Tolerance: similarity.DefaultTolerance,
			MaxRounds: similarity.DefaultMaxRounds,
		},
		Dictionary: Dictionary{
			BaseURL:     wordgraph.DefaultBaseURL,
			MaxInDegree: wordgraph.DefaultMaxInDegree,
		},
		Mongo: Mongo{
			Database:   "vertexsim",
			Collection: "reports",
		},
		Server: Server{
			Addr: ":8080",
		},
		Neo4j: Neo4j{
			URI:      "neo4j://localhost:7687",
			Database: "neo4j",
		},
	}
}

// DefaultPath returns the standard config file location,
// $XDG_CONFIG_HOME/vertexsim/config.toml or ~/.config/vertexsim/config.toml.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "vertexsim", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "vertexsim", "config.toml"), nil
}

// Load reads the config file at path. An empty path selects [DefaultPath];
// a missing file at the default location is not an error and yields
// [Default]. An explicitly named file must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = DefaultPath(); err != nil {
			return Default(), nil
		}
	}

	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}
