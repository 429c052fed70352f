// Package config loads chesscore's TOML configuration (§4.8). Loading
// is a program boundary, not a hot path: every error here is a plain
// returned error, never a panic.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// PerftConfig controls the perft transposition table.
type PerftConfig struct {
	TableSizeMB int  `toml:"table_size_mb"`
	Enabled     bool `toml:"enabled"`
}

// EngineConfig controls core engine behavior.
type EngineConfig struct {
	Mode string `toml:"mode"` // "normal" or "chess960"
}

// Config is the root document, with [perft] and [engine] tables.
type Config struct {
	Perft  PerftConfig  `toml:"perft"`
	Engine EngineConfig `toml:"engine"`
}

// Default returns the documented defaults: a 256 MiB enabled perft
// table and normal (non-Chess960) castling rules.
func Default() Config {
	return Config{
		Perft: PerftConfig{
			TableSizeMB: 256,
			Enabled:     true,
		},
		Engine: EngineConfig{
			Mode: "normal",
		},
	}
}

// Load reads and parses the TOML file at path, overlaying it on
// Default(). An empty path returns the defaults unchanged. A malformed
// file is reported as an error, not a panic.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decoding %q: %w", path, err)
	}
	if cfg.Engine.Mode != "normal" && cfg.Engine.Mode != "chess960" {
		return Config{}, fmt.Errorf("config: %q: engine.mode must be \"normal\" or \"chess960\", got %q", path, cfg.Engine.Mode)
	}
	if cfg.Perft.TableSizeMB <= 0 {
		return Config{}, fmt.Errorf("config: %q: perft.table_size_mb must be positive, got %d", path, cfg.Perft.TableSizeMB)
	}
	return cfg, nil
}
