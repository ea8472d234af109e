package menu

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/ballerburg/internal/application/input"
	"github.com/younwookim/ballerburg/internal/application/screen"
)

const (
	mainPlay = iota
	mainOptions
	mainExit
)

// MainMenu is the first menu shown: play, options, exit.
type MainMenu struct {
	screen.Base
	deps    Deps
	menu    *Menu
	confirm *MessageBox
}

// NewMainMenu creates the main menu.
func NewMainMenu(deps Deps) *MainMenu {
	s := &MainMenu{
		deps: deps,
		menu: New("Ballerburg", "Play Game", "Options", "Exit"),
	}
	apply(&s.Base, deps.Transitions.Menu)
	return s
}

// Menu exposes the entries for inspection.
func (s *MainMenu) Menu() *Menu { return s.menu }

// HandleInput drains a pending exit confirmation, then runs the menu.
func (s *MainMenu) HandleInput(in *input.Snapshot) error {
	if err := s.Base.HandleInput(in); err != nil {
		return err
	}

	if s.confirm != nil {
		result := s.confirm.Result()
		s.confirm = nil
		if result == Accepted {
			s.Manager().Exit()
			return nil
		}
	}

	cmd := s.menu.HandleInput(in, input.AnyPlayer)
	switch cmd.Action {
	case ActionSelect:
		switch cmd.Entry {
		case mainPlay:
			return s.play()
		case mainOptions:
			return s.Manager().AddScreen(NewOptions(s.deps))
		case mainExit:
			return s.confirmExit()
		}
	case ActionCancel:
		return s.confirmExit()
	}
	return nil
}

func (s *MainMenu) play() error {
	if s.deps.NewGameplay == nil {
		return nil
	}
	gameplay, err := s.deps.NewGameplay()
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}
	return Load(s.Manager(), gameplay)
}

func (s *MainMenu) confirmExit() error {
	s.confirm = NewMessageBox(s.deps, "Are you sure you want to exit?")
	return s.Manager().AddScreen(s.confirm)
}

// Activate re-enables the menu when the screen returns.
func (s *MainMenu) Activate() { s.menu.SetEnabled(true) }

// Deactivate disables the menu while another screen covers it.
func (s *MainMenu) Deactivate() { s.menu.SetEnabled(false) }

// Draw renders the menu.
func (s *MainMenu) Draw(dst *ebiten.Image, dt float64) {
	s.menu.Draw(dst, &s.Base, s.deps.Faces)
}
