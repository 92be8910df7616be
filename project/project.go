package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/bloodmagesoftware/forge/editor"
)

const configFileName = "forge.yaml"

// Config represents the project configuration from forge.yaml.
type Config struct {
	Name   string       `yaml:"name"`
	Editor EditorConfig `yaml:"editor,omitempty"`
}

// EditorConfig holds the optional editor settings block. Zero values fall
// back to the editor defaults.
type EditorConfig struct {
	GridSnap     bool    `yaml:"grid_snap,omitempty"`
	MinZoom      float32 `yaml:"min_zoom,omitempty"`
	MaxZoom      float32 `yaml:"max_zoom,omitempty"`
	ZoomStep     float32 `yaml:"zoom_step,omitempty"`
	HitThreshold float32 `yaml:"hit_threshold,omitempty"`
	HistoryLimit int     `yaml:"history_limit,omitempty"`
}

// FindProjectRoot walks up from the current working directory looking for forge.yaml.
// Returns the directory containing forge.yaml, or an error if not found.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}

	dir := cwd
	for {
		configPath := filepath.Join(dir, configFileName)
		if _, err := os.Stat(configPath); err == nil {
			return dir, nil
		}

		// Move up one directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root without finding forge.yaml
			return "", fmt.Errorf("forge.yaml not found in any parent directory of %s", cwd)
		}
		dir = parent
	}
}

// LoadConfig loads and parses the forge.yaml file from the given project root.
func LoadConfig(projectRoot string) (*Config, error) {
	configPath := filepath.Join(projectRoot, configFileName)

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", configFileName, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", configFileName, err)
	}

	if config.Name == "" {
		return nil, fmt.Errorf("'name' field is required in %s", configFileName)
	}

	return &config, nil
}

// Resolve merges the editor settings block with the editor defaults.
// Settings left at their zero value keep the default.
func (c *Config) Resolve() editor.Config {
	cfg := editor.DefaultConfig()
	cfg.GridSnap = c.Editor.GridSnap
	if c.Editor.MinZoom > 0 {
		cfg.MinZoom = c.Editor.MinZoom
	}
	if c.Editor.MaxZoom > 0 {
		cfg.MaxZoom = c.Editor.MaxZoom
	}
	if c.Editor.ZoomStep > 0 {
		cfg.ZoomStep = c.Editor.ZoomStep
	}
	if c.Editor.HitThreshold > 0 {
		cfg.HitThreshold = c.Editor.HitThreshold
	}
	if c.Editor.HistoryLimit > 0 {
		cfg.HistoryLimit = c.Editor.HistoryLimit
	}
	return cfg
}
