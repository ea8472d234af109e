// Package game provides the host loop that feeds input to the screen stack.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/younwookim/ballerburg/internal/application/input"
	"github.com/younwookim/ballerburg/internal/application/screen"
)

// Game implements ebiten.Game and drives a screen.Manager.
type Game struct {
	manager *screen.Manager
	input   *input.Snapshot
	screenW int
	screenH int
	dt      float64
	focused func() bool
	log     zerolog.Logger
}

// New creates a Game over m and loads the content of the screens already on it.
func New(m *screen.Manager, screenW, screenH int, log zerolog.Logger) (*Game, error) {
	if err := m.Initialize(); err != nil {
		return nil, err
	}
	return &Game{
		manager: m,
		input:   m.Input(),
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
		focused: ebiten.IsFocused,
		log:     log,
	}, nil
}

// Update polls input once and updates the screen stack.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if g.input != nil {
		g.input.Update()
	}
	g.manager.SetHostFocus(g.focused())

	err := g.manager.Update(g.dt)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ebiten.Termination):
		g.log.Info().Msg("game terminated")
		g.manager.Shutdown()
	default:
		g.log.Error().Err(err).Msg("screen failed")
	}
	return err
}

// Draw renders the screen stack.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.manager.Draw(screen, g.dt)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// SetFocusFunc replaces the window focus query.
func (g *Game) SetFocusFunc(f func() bool) {
	g.focused = f
}

// Focused reports whether the host counts as focused this frame.
func (g *Game) Focused() bool {
	return g.focused()
}
