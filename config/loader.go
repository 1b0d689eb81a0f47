package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the configuration.
// Search order: customPath -> ~/.maze/config.yaml -> ./configs/maze.yaml -> embedded default
//
// Values missing from a file keep their defaults. The result is validated.
func Load(customPath string) (Config, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Default(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "maze.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultMazeYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults
func Parse(data []byte) (Config, error) {
	cfg := Default()
	// A maze in the document replaces the default rows instead of merging into them
	cfg.Maze.Rows = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	if len(cfg.Maze.Rows) == 0 {
		cfg.Maze.Rows = Default().Maze.Rows
	}
	return cfg, nil
}

// ResolveAssets rewrites relative asset paths to live under dir
func (c *Config) ResolveAssets(dir string) {
	if dir == "" {
		return
	}
	if !filepath.IsAbs(c.Assets.Wall) {
		c.Assets.Wall = filepath.Join(dir, c.Assets.Wall)
	}
	if !filepath.IsAbs(c.Assets.Floor) {
		c.Assets.Floor = filepath.Join(dir, c.Assets.Floor)
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".maze", filename)
}
