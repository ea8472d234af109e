package screen

import (
	"fmt"
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"
	"github.com/younwookim/ballerburg/internal/application/input"
	"github.com/younwookim/ballerburg/internal/domain/errs"
)

// Manager owns the screen stack. Insertion order is z-order: later screens
// are on top.
type Manager struct {
	screens []Screen
	pending []Screen

	input *input.Snapshot
	log   zerolog.Logger

	initialized bool
	hostFocus   bool
	exit        bool
}

// NewManager creates an empty stack that hands in to the focused screen.
func NewManager(in *input.Snapshot, log zerolog.Logger) *Manager {
	return &Manager{
		input:     in,
		log:       log,
		hostFocus: true,
	}
}

// Input returns the snapshot handed to the focused screen.
func (m *Manager) Input() *input.Snapshot { return m.input }

// SetHostFocus records whether the game window has focus. Without focus no
// screen receives input.
func (m *Manager) SetHostFocus(focused bool) { m.hostFocus = focused }

// Exit asks the host loop to stop; Update returns ebiten.Termination.
func (m *Manager) Exit() {
	m.log.Info().Msg("exit requested")
	m.exit = true
}

// Initialize loads the content of every screen already on the stack. Screens
// added afterwards load on AddScreen.
func (m *Manager) Initialize() error {
	if m.initialized {
		return nil
	}
	m.initialized = true
	for _, s := range m.screens {
		if err := m.load(s); err != nil {
			return err
		}
	}
	return nil
}

// Shutdown unloads every screen and empties the stack.
func (m *Manager) Shutdown() {
	for len(m.screens) > 0 {
		m.RemoveScreen(m.screens[len(m.screens)-1])
	}
	m.initialized = false
}

// AddScreen pushes s on top of the stack.
func (m *Manager) AddScreen(s Screen) error {
	if s == nil {
		return fmt.Errorf("add screen: %w", errs.ErrInvalidArgument)
	}

	s.base().bind(m, s)
	m.screens = append(m.screens, s)
	m.log.Debug().Str("screen", name(s)).Int("depth", len(m.screens)).Msg("screen added")

	if m.initialized {
		if err := m.load(s); err != nil {
			m.screens = m.screens[:len(m.screens)-1]
			s.base().unbind()
			return err
		}
	}
	return nil
}

func (m *Manager) load(s Screen) error {
	b := s.base()
	if b.loaded {
		return nil
	}
	if err := s.LoadContent(); err != nil {
		return fmt.Errorf("failed to load %s: %w", name(s), err)
	}
	b.loaded = true
	return nil
}

// RemoveScreen drops s from the stack and from this frame's update list and
// unloads it. Removing a screen that is not on the stack does nothing.
func (m *Manager) RemoveScreen(s Screen) {
	i := slices.Index(m.screens, s)
	if i < 0 {
		return
	}
	m.screens = slices.Delete(m.screens, i, i+1)
	if j := slices.Index(m.pending, s); j >= 0 {
		m.pending = slices.Delete(m.pending, j, j+1)
	}

	b := s.base()
	if b.loaded {
		s.UnloadContent()
		b.loaded = false
	}
	b.unbind()
	m.log.Debug().Str("screen", name(s)).Int("depth", len(m.screens)).Msg("screen removed")
}

// Screens returns a copy of the stack, bottom first.
func (m *Manager) Screens() []Screen {
	return slices.Clone(m.screens)
}

// Update advances every screen's transition from the top of the stack down.
// The first screen found transitioning on or active handles input; unless it
// is a popup it also covers everything beneath it.
//
// Screens may add or remove screens from inside their own callbacks.
func (m *Manager) Update(dt float64) error {
	m.pending = append(m.pending[:0], m.screens...)

	otherHasFocus := !m.hostFocus
	covered := false

	for len(m.pending) > 0 {
		s := m.pending[len(m.pending)-1]
		m.pending = m.pending[:len(m.pending)-1]

		b := s.base()
		b.advance(dt, otherHasFocus, covered)
		s.Update(dt, otherHasFocus, covered)

		if b.removePending {
			m.RemoveScreen(s)
			continue
		}
		// Removed itself during Update.
		if b.manager != m {
			continue
		}

		if !b.state.Focusable() {
			continue
		}
		if !otherHasFocus {
			if m.input == nil {
				return fmt.Errorf("handle input on %s: %w", name(s), errs.ErrInvalidArgument)
			}
			if err := s.HandleInput(m.input); err != nil {
				return err
			}
			otherHasFocus = true
		}
		if !b.Popup {
			covered = true
		}
	}

	if m.exit {
		return ebiten.Termination
	}
	return nil
}

// Draw renders every visible screen from the bottom of the stack up.
func (m *Manager) Draw(dst *ebiten.Image, dt float64) {
	for _, s := range m.screens {
		if !s.base().state.Visible() {
			continue
		}
		s.Draw(dst, dt)
	}
}

// FadeBackBufferToBlack darkens the whole of dst; alpha 255 is fully black.
func (m *Manager) FadeBackBufferToBlack(dst *ebiten.Image, alpha uint8) {
	if alpha == 0 {
		return
	}
	b := dst.Bounds()
	vector.DrawFilledRect(dst,
		float32(b.Min.X), float32(b.Min.Y),
		float32(b.Dx()), float32(b.Dy()),
		color.RGBA{A: alpha}, false)
}

func name(s Screen) string {
	return fmt.Sprintf("%T", s)
}
