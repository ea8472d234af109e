package menu

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/ballerburg/internal/application/input"
	"github.com/younwookim/ballerburg/internal/application/screen"
)

const (
	pauseResume = iota
	pauseQuit
)

// Pause is the popup shown over gameplay.
type Pause struct {
	screen.Base
	deps    Deps
	menu    *Menu
	confirm *MessageBox
}

// NewPause creates the pause popup.
func NewPause(deps Deps) *Pause {
	s := &Pause{
		deps: deps,
		menu: New("Paused", "Resume Game", "Quit Game"),
	}
	apply(&s.Base, deps.Transitions.Popup)
	s.Popup = true
	return s
}

// Menu exposes the entries for inspection.
func (s *Pause) Menu() *Menu { return s.menu }

// HandleInput resumes, or after confirmation returns to the main menu.
func (s *Pause) HandleInput(in *input.Snapshot) error {
	if err := s.Base.HandleInput(in); err != nil {
		return err
	}

	if s.confirm != nil {
		result := s.confirm.Result()
		s.confirm = nil
		if result == Accepted {
			return ShowMainMenu(s.Manager(), s.deps)
		}
	}

	cmd := s.menu.HandleInput(in, input.AnyPlayer)
	switch cmd.Action {
	case ActionCancel:
		s.ExitScreen()
	case ActionSelect:
		switch cmd.Entry {
		case pauseResume:
			s.ExitScreen()
		case pauseQuit:
			s.confirm = NewMessageBox(s.deps, "Are you sure you want to quit this game?")
			return s.Manager().AddScreen(s.confirm)
		}
	}
	return nil
}

// Draw darkens the game and renders the menu.
func (s *Pause) Draw(dst *ebiten.Image, dt float64) {
	if m := s.Manager(); m != nil {
		m.FadeBackBufferToBlack(dst, uint8(int(s.TransitionAlpha())*2/3))
	}
	s.menu.Draw(dst, &s.Base, s.deps.Faces)
}
