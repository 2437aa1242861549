package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// GameFile is the name of the root config file
const GameFile = "game.json"

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGame loads game.json on top of Default(), so missing fields keep their defaults
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, GameFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", GameFile, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", GameFile, err)
	}

	return cfg, nil
}

// LoadLayout loads a layout JSON file
func (l *Loader) LoadLayout(name string) (*LayoutConfig, error) {
	path := "layouts/" + name + ".json"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout %s: %w", name, err)
	}

	var cfg LayoutConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse layout %s: %w", name, err)
	}
	if len(cfg.Rows) == 0 {
		return nil, fmt.Errorf("layout %s has no rows", name)
	}

	return &cfg, nil
}

// LoadAll loads game.json, resolves the configured layout and validates the result
func (l *Loader) LoadAll() (*GameConfig, error) {
	cfg, err := l.LoadGame()
	if err != nil {
		return nil, err
	}

	if err := l.ApplyLayout(cfg, cfg.World.Layout); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", l.basePath, err)
	}

	return cfg, nil
}

// ApplyLayout loads the named layout into cfg. An empty name selects generated terrain.
func (l *Loader) ApplyLayout(cfg *GameConfig, name string) error {
	cfg.World.Layout = name
	if name == "" {
		cfg.Layout = nil
		return nil
	}

	layout, err := l.LoadLayout(name)
	if err != nil {
		return err
	}
	cfg.Layout = layout
	// A layout fixes the map size
	cfg.World.Width = len([]rune(layout.Rows[0]))
	cfg.World.Height = len(layout.Rows)
	return nil
}
