package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/younwookim/ballerburg/internal/application/input"
	"github.com/younwookim/ballerburg/internal/domain/errs"
)

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

// LoadGame loads and validates game.json
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.json: %w", err)
	}

	var cfg GameConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.json: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game.json: %w", err)
	}

	return &cfg, nil
}

// Validate checks the values the navigation core cannot recover from.
func (c *GameConfig) Validate() error {
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		return fmt.Errorf("display size %dx%d: %w", c.Display.ScreenWidth, c.Display.ScreenHeight, errs.ErrInvalidArgument)
	}
	if c.Display.Framerate <= 0 {
		return fmt.Errorf("framerate %d: %w", c.Display.Framerate, errs.ErrInvalidArgument)
	}
	if n := len(c.Castles); n < 2 || n > input.MaxPlayers {
		return fmt.Errorf("%d castles, want 2..%d: %w", n, input.MaxPlayers, errs.ErrInvalidArgument)
	}
	for _, castle := range c.Castles {
		if len(castle.Towers) == 0 {
			return fmt.Errorf("castle %q has no towers: %w", castle.Name, errs.ErrInvalidArgument)
		}
	}
	if c.Camera.NearClip <= 0 || c.Camera.FarClip <= c.Camera.NearClip {
		return fmt.Errorf("clip planes %v..%v: %w", c.Camera.NearClip, c.Camera.FarClip, errs.ErrInvalidArgument)
	}
	return nil
}
