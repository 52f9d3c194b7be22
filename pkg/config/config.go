// Package config loads editor preferences from a TOML file.
//
// Preferences cover creation defaults (node size, color) and render
// defaults (format, PNG scale). A missing config file is not an error;
// the built-in defaults apply.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds editor preferences.
type Config struct {
	// Node sets defaults applied when creating nodes.
	Node NodeConfig `toml:"node"`
	// Render sets defaults for the render command.
	Render RenderConfig `toml:"render"`
}

// NodeConfig holds node creation defaults.
type NodeConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Color  string  `toml:"color"` // empty means the theme default
}

// RenderConfig holds render output defaults.
type RenderConfig struct {
	Format string  `toml:"format"` // "svg", "png", or "dot"
	Scale  float64 `toml:"scale"`  // PNG scale factor
}

// Default returns the built-in preferences.
func Default() Config {
	return Config{
		Node:   NodeConfig{Width: 150, Height: 80},
		Render: RenderConfig{Format: "svg", Scale: 2.0},
	}
}

// DefaultPath returns the standard config location,
// ~/.config/flowboard/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "flowboard", "config.toml"), nil
}

// Load reads preferences from the TOML file at path, layered over the
// built-in defaults. If path is empty, [DefaultPath] is used. A missing
// file returns the defaults; a file that exists but does not parse is an
// error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Node.Width <= 0 {
		cfg.Node.Width = Default().Node.Width
	}
	if cfg.Node.Height <= 0 {
		cfg.Node.Height = Default().Node.Height
	}
	if cfg.Render.Scale <= 0 {
		cfg.Render.Scale = Default().Render.Scale
	}
	return cfg, nil
}
