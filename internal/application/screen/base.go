package screen

import (
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/ballerburg/internal/application/input"
	"github.com/younwookim/ballerburg/internal/application/state"
	"github.com/younwookim/ballerburg/internal/domain/errs"
)

// Base holds the transition state shared by every screen.
//
// Transition position runs from 0 (fully on) to 1 (fully off).
type Base struct {
	TransitionOnTime  time.Duration
	TransitionOffTime time.Duration

	// Popup screens never cover the screens beneath them.
	Popup bool

	// IgnoreCover keeps the screen Active while other screens cover it.
	IgnoreCover bool

	position      float64
	state         state.ScreenState
	exiting       bool
	otherHasFocus bool

	wasHidden     bool
	loaded        bool
	removePending bool

	self    Screen
	manager *Manager
}

func (b *Base) base() *Base { return b }

// State returns the current lifecycle phase.
func (b *Base) State() state.ScreenState { return b.state }

// TransitionPosition returns the transition progress in [0,1].
func (b *Base) TransitionPosition() float64 { return b.position }

// TransitionAlpha returns the opacity for the current transition position.
func (b *Base) TransitionAlpha() uint8 {
	return uint8(255 - int(math.Floor(b.position*255)))
}

// IsPopup reports whether the screen leaves the screens below untouched.
func (b *Base) IsPopup() bool { return b.Popup }

// IsExiting reports whether ExitScreen has been requested.
func (b *Base) IsExiting() bool { return b.exiting }

// IsActive reports whether the screen is on and owns input this frame.
func (b *Base) IsActive() bool {
	return !b.otherHasFocus && b.state.Focusable()
}

// Manager returns the manager the screen is on, or nil.
func (b *Base) Manager() *Manager { return b.manager }

// ExitScreen asks the screen to leave the stack. With a zero off time it is
// removed immediately; otherwise it transitions off and the manager removes
// it once the transition finishes.
func (b *Base) ExitScreen() {
	if b.TransitionOffTime == 0 && b.manager != nil {
		b.manager.RemoveScreen(b.self)
		return
	}
	b.exiting = true
}

// LoadContent is a no-op.
func (b *Base) LoadContent() error { return nil }

// UnloadContent is a no-op.
func (b *Base) UnloadContent() {}

// HandleInput rejects a nil snapshot and otherwise ignores input.
func (b *Base) HandleInput(in *input.Snapshot) error {
	if in == nil {
		return fmt.Errorf("handle input: %w", errs.ErrInvalidArgument)
	}
	return nil
}

// Update is a no-op.
func (b *Base) Update(dt float64, otherHasFocus, covered bool) {}

// Draw is a no-op.
func (b *Base) Draw(dst *ebiten.Image, dt float64) {}

// bind attaches the screen to m and resets its transition.
func (b *Base) bind(m *Manager, self Screen) {
	b.manager = m
	b.self = self
	b.exiting = false
	b.removePending = false
	b.wasHidden = false

	if b.TransitionOnTime == 0 {
		b.position = 0
		b.state = state.Active
		return
	}
	b.position = 1
	b.state = state.TransitionOn
}

func (b *Base) unbind() {
	b.manager = nil
	b.removePending = false
}

// advance runs one frame of the transition state machine.
func (b *Base) advance(dt float64, otherHasFocus, covered bool) {
	b.otherHasFocus = otherHasFocus
	if b.IgnoreCover {
		covered = false
	}

	switch {
	case b.exiting:
		b.state = state.TransitionOff
		if !b.step(dt, b.TransitionOffTime, 1) {
			b.removePending = true
		}
	case covered:
		if b.step(dt, b.TransitionOffTime, 1) {
			b.state = state.TransitionOff
		} else {
			b.hide()
		}
	default:
		if b.step(dt, b.TransitionOnTime, -1) {
			b.state = state.TransitionOn
		} else {
			b.show()
		}
	}
}

// step moves the position toward 0 or 1 and reports whether the
// transition is still running.
func (b *Base) step(dt float64, d time.Duration, direction float64) bool {
	delta := 1.0
	if d > 0 {
		delta = dt / d.Seconds()
	}

	b.position += delta * direction

	if (direction < 0 && b.position <= 0) || (direction > 0 && b.position >= 1) {
		b.position = math.Max(0, math.Min(1, b.position))
		return false
	}
	return true
}

func (b *Base) hide() {
	if b.state == state.Hidden {
		return
	}
	b.state = state.Hidden
	b.wasHidden = true
	if d, ok := b.self.(Deactivator); ok {
		d.Deactivate()
	}
}

func (b *Base) show() {
	b.state = state.Active
	if !b.wasHidden {
		return
	}
	b.wasHidden = false
	if a, ok := b.self.(Activator); ok {
		a.Activate()
	}
}
