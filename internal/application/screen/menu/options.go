package menu

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/ballerburg/internal/application/input"
	"github.com/younwookim/ballerburg/internal/application/screen"
	"github.com/younwookim/ballerburg/internal/infrastructure/config"
)

const (
	optionsAnimated = iota
	optionsPlayers
	optionsInvert
	optionsBack
)

// Options edits the user settings in place.
type Options struct {
	screen.Base
	deps     Deps
	settings *config.Settings
	menu     *Menu
}

// NewOptions creates the options screen.
func NewOptions(deps Deps) *Options {
	s := &Options{
		deps:     deps,
		settings: deps.Settings,
		menu:     New("Options", "", "", "", "Back"),
	}
	if s.settings == nil {
		s.settings = &config.Settings{Players: 2, AnimatedCamera: true}
	}
	apply(&s.Base, deps.Transitions.Menu)
	s.refresh()
	return s
}

// Menu exposes the entries for inspection.
func (s *Options) Menu() *Menu { return s.menu }

// HandleInput toggles the selected option or leaves the screen.
func (s *Options) HandleInput(in *input.Snapshot) error {
	if err := s.Base.HandleInput(in); err != nil {
		return err
	}

	cmd := s.menu.HandleInput(in, input.AnyPlayer)
	switch cmd.Action {
	case ActionCancel:
		s.ExitScreen()
	case ActionSelect, ActionRight:
		if cmd.Action == ActionSelect && cmd.Entry == optionsBack {
			s.ExitScreen()
			return nil
		}
		s.change(cmd.Entry, 1)
	case ActionLeft:
		s.change(cmd.Entry, -1)
	}
	return nil
}

func (s *Options) change(entry, step int) {
	switch entry {
	case optionsAnimated:
		s.settings.AnimatedCamera = !s.settings.AnimatedCamera
	case optionsPlayers:
		s.settings.CyclePlayers(step)
	case optionsInvert:
		s.settings.InvertPitch = !s.settings.InvertPitch
	}
	s.refresh()
}

func (s *Options) refresh() {
	s.menu.SetText(optionsAnimated, "Animated camera: "+onOff(s.settings.AnimatedCamera))
	s.menu.SetText(optionsPlayers, fmt.Sprintf("Players: %d", s.settings.Players))
	s.menu.SetText(optionsInvert, "Invert pitch: "+onOff(s.settings.InvertPitch))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Draw renders the menu.
func (s *Options) Draw(dst *ebiten.Image, dt float64) {
	s.menu.Draw(dst, &s.Base, s.deps.Faces)
}
