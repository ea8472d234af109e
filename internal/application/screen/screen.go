// Package screen defines the Screen interface and the navigation stack that
// drives it.
//
// Each layer of the UI (background, menus, dialogs, the gameplay view)
// implements Screen by embedding Base, which owns the transition state
// machine. The Manager updates screens top to bottom, routes input to the
// topmost eligible one and draws bottom to top.
package screen

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/ballerburg/internal/application/input"
)

// Screen represents one layer of the navigation stack.
//
// Types implement Screen by embedding Base and overriding the hooks they need.
type Screen interface {
	// LoadContent is called once when the screen is added to an initialized manager.
	LoadContent() error

	// UnloadContent is called once when the screen leaves the stack.
	UnloadContent()

	// HandleInput is called only on the screen that owns focus this frame.
	// Returning an error terminates the game.
	HandleInput(in *input.Snapshot) error

	// Update runs every frame after the transition step, regardless of focus.
	// dt is the delta time in seconds.
	Update(dt float64, otherHasFocus, covered bool)

	// Draw renders the screen. Hidden screens are not drawn.
	Draw(dst *ebiten.Image, dt float64)

	// ExitScreen asks the screen to transition off and leave the stack.
	ExitScreen()

	base() *Base
}

// Activator is implemented by screens that resynchronize state when they
// become Active again after having been Hidden.
type Activator interface {
	Activate()
}

// Deactivator is implemented by screens that react to becoming Hidden.
type Deactivator interface {
	Deactivate()
}
