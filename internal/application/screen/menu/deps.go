package menu

import (
	"fmt"

	"github.com/younwookim/ballerburg/internal/application/screen"
	"github.com/younwookim/ballerburg/internal/infrastructure/config"
)

// Deps carries what menu screens need to build each other.
type Deps struct {
	Faces       *Faces
	Transitions config.TransitionsConfig
	Settings    *config.Settings

	// NewGameplay builds a fresh gameplay screen.
	NewGameplay func() (screen.Screen, error)
}

// Load exits every screen on m and adds next in order.
func Load(m *screen.Manager, next ...screen.Screen) error {
	for _, s := range m.Screens() {
		s.ExitScreen()
	}
	for _, s := range next {
		if err := m.AddScreen(s); err != nil {
			return fmt.Errorf("failed to load screens: %w", err)
		}
	}
	return nil
}

// ShowMainMenu replaces the stack with the background and the main menu.
func ShowMainMenu(m *screen.Manager, deps Deps) error {
	return Load(m, NewBackground(deps), NewMainMenu(deps))
}

func apply(b *screen.Base, t config.TransitionConfig) {
	b.TransitionOnTime = t.OnDuration()
	b.TransitionOffTime = t.OffDuration()
}
