package menu

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/ballerburg/internal/application/input"
	"github.com/younwookim/ballerburg/internal/application/screen"
)

// Result is the answer a message box collected.
type Result int

const (
	Pending Result = iota
	Accepted
	Cancelled
)

// String returns the string representation of the result
func (r Result) String() string {
	switch r {
	case Pending:
		return "Pending"
	case Accepted:
		return "Accepted"
	case Cancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

const usage = "Space, Enter = ok    Esc = cancel"

var colorPanel = color.RGBA{20, 20, 40, 230}

// MessageBox is a popup asking the user to confirm. The screen that opened
// it reads Result once the box has been answered.
type MessageBox struct {
	screen.Base
	deps    Deps
	message string
	result  Result
}

// NewMessageBox creates a confirmation popup.
func NewMessageBox(deps Deps, message string) *MessageBox {
	s := &MessageBox{deps: deps, message: message}
	apply(&s.Base, deps.Transitions.Popup)
	s.Popup = true
	return s
}

// Result returns the answer, or Pending.
func (s *MessageBox) Result() Result { return s.result }

// HandleInput accepts or cancels and closes the box.
func (s *MessageBox) HandleInput(in *input.Snapshot) error {
	if err := s.Base.HandleInput(in); err != nil {
		return err
	}

	if _, ok := in.MenuSelect(input.AnyPlayer); ok {
		s.result = Accepted
		s.ExitScreen()
	} else if _, ok := in.MenuCancel(input.AnyPlayer); ok {
		s.result = Cancelled
		s.ExitScreen()
	}
	return nil
}

// Draw darkens the screens below and draws the message panel.
func (s *MessageBox) Draw(dst *ebiten.Image, dt float64) {
	if m := s.Manager(); m != nil {
		m.FadeBackBufferToBlack(dst, uint8(int(s.TransitionAlpha())*2/3))
	}
	faces := s.deps.Faces
	if faces == nil {
		return
	}

	w := float64(dst.Bounds().Dx())
	h := float64(dst.Bounds().Dy())
	alpha := float32(s.TransitionAlpha()) / 255

	msgW, msgH := text.Measure(s.message, faces.Entry, faces.Entry.Size*1.2)
	useW, useH := text.Measure(usage, faces.Small, 0)
	panelW := max(msgW, useW) + 64
	panelH := msgH + useH + 64
	x := (w - panelW) / 2
	y := (h - panelH) / 2

	vector.DrawFilledRect(dst, float32(x), float32(y), float32(panelW), float32(panelH), fade(colorPanel, s.TransitionAlpha()), false)
	drawText(dst, s.message, faces.Entry, x+32, y+24, colorEntry, alpha)
	drawText(dst, usage, faces.Small, x+32, y+32+msgH, colorDisabled, alpha)
}
