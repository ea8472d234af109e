// Package menu implements the menu screens: background, main menu, options,
// pause and message box. Menu behavior lives in Menu, a helper each screen
// composes rather than inherits.
package menu

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/ballerburg/internal/application/input"
	"github.com/younwookim/ballerburg/internal/application/screen"
	"github.com/younwookim/ballerburg/internal/application/state"
)

// Action is what a menu asks its screen to do after input.
type Action int

const (
	ActionNone Action = iota
	ActionSelect
	ActionCancel
	ActionLeft
	ActionRight
)

// String returns the string representation of the action
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSelect:
		return "Select"
	case ActionCancel:
		return "Cancel"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Entry is one selectable line.
type Entry struct {
	Text     string
	Disabled bool
}

// Command is the result of one frame of menu input.
type Command struct {
	Action Action
	Entry  int
	Player input.PlayerIndex
}

var (
	colorEntry    = color.RGBA{255, 255, 255, 255}
	colorSelected = color.RGBA{255, 255, 0, 255}
	colorDisabled = color.RGBA{120, 120, 120, 255}
	colorTitle    = color.RGBA{192, 192, 192, 255}
)

// Menu is a vertical list of entries with a title and a selection cursor.
type Menu struct {
	Title   string
	Entries []Entry

	selected int
	enabled  bool
}

// New creates an enabled menu with the first entry selected.
func New(title string, entries ...string) *Menu {
	m := &Menu{Title: title, enabled: true}
	for _, e := range entries {
		m.Entries = append(m.Entries, Entry{Text: e})
	}
	return m
}

// Selected returns the index of the highlighted entry.
func (m *Menu) Selected() int { return m.selected }

// Enabled reports whether the menu reacts to input.
func (m *Menu) Enabled() bool { return m.enabled }

// SetEnabled turns input handling on or off. Screens disable their menu when
// they are hidden and enable it again on activation.
func (m *Menu) SetEnabled(enabled bool) { m.enabled = enabled }

// SetText replaces the text of entry i.
func (m *Menu) SetText(i int, s string) {
	if i >= 0 && i < len(m.Entries) {
		m.Entries[i].Text = s
	}
}

// HandleInput moves the cursor and reports the action taken this frame.
func (m *Menu) HandleInput(in *input.Snapshot, who input.PlayerIndex) Command {
	if !m.enabled || len(m.Entries) == 0 {
		return Command{Action: ActionNone, Entry: m.selected, Player: who}
	}

	if in.MenuUp(who) {
		m.move(-1)
	}
	if in.MenuDown(who) {
		m.move(1)
	}

	if p, ok := in.MenuSelect(who); ok {
		if m.Entries[m.selected].Disabled {
			return Command{Action: ActionNone, Entry: m.selected, Player: p}
		}
		return Command{Action: ActionSelect, Entry: m.selected, Player: p}
	}
	if p, ok := in.MenuCancel(who); ok {
		return Command{Action: ActionCancel, Entry: m.selected, Player: p}
	}
	if in.MenuLeft(who) {
		return Command{Action: ActionLeft, Entry: m.selected, Player: who}
	}
	if in.MenuRight(who) {
		return Command{Action: ActionRight, Entry: m.selected, Player: who}
	}
	return Command{Action: ActionNone, Entry: m.selected, Player: who}
}

// move steps the cursor, wrapping and skipping disabled entries.
func (m *Menu) move(step int) {
	n := len(m.Entries)
	next := m.selected
	for range n {
		next = ((next+step)%n + n) % n
		if !m.Entries[next].Disabled {
			m.selected = next
			return
		}
	}
}

// Draw renders the title and entries, sliding them in and out with the
// screen's transition.
func (m *Menu) Draw(dst *ebiten.Image, b *screen.Base, faces *Faces) {
	if faces == nil {
		return
	}

	w := float64(dst.Bounds().Dx())
	h := float64(dst.Bounds().Dy())
	alpha := float32(b.TransitionAlpha()) / 255

	// Entries slide in from the left and out to the right.
	offset := math.Pow(b.TransitionPosition(), 2)
	slide := -offset * 256
	if b.State() != state.TransitionOn {
		slide = offset * 512
	}

	y := h * 0.35
	for i, e := range m.Entries {
		c := colorEntry
		switch {
		case e.Disabled:
			c = colorDisabled
		case i == m.selected && m.enabled:
			c = colorSelected
		}
		drawText(dst, e.Text, faces.Entry, w*0.15+slide, y, c, alpha)
		y += faces.Entry.Size * 1.5
	}

	titleW, _ := text.Measure(m.Title, faces.Title, 0)
	drawText(dst, m.Title, faces.Title, (w-titleW)/2, h*0.12-offset*100, colorTitle, alpha)
}

func drawText(dst *ebiten.Image, s string, face *text.GoTextFace, x, y float64, c color.Color, alpha float32) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(alpha)
	text.Draw(dst, s, face, op)
}
