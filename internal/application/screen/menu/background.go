package menu

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/ballerburg/internal/application/screen"
)

var (
	colorSky    = color.RGBA{40, 60, 110, 255}
	colorGround = color.RGBA{50, 80, 40, 255}
	colorWall   = color.RGBA{90, 85, 80, 255}
)

// Background sits under every menu. Other screens never cover it.
type Background struct {
	screen.Base
	deps Deps
}

// NewBackground creates the menu backdrop.
func NewBackground(deps Deps) *Background {
	s := &Background{deps: deps}
	apply(&s.Base, deps.Transitions.Background)
	s.IgnoreCover = true
	return s
}

// Draw paints the sky, the ground and two castle silhouettes.
func (s *Background) Draw(dst *ebiten.Image, dt float64) {
	w := float32(dst.Bounds().Dx())
	h := float32(dst.Bounds().Dy())
	a := s.TransitionAlpha()
	horizon := h * 0.7

	vector.DrawFilledRect(dst, 0, 0, w, horizon, fade(colorSky, a), false)
	vector.DrawFilledRect(dst, 0, horizon, w, h-horizon, fade(colorGround, a), false)

	for _, x := range []float32{w * 0.12, w * 0.72} {
		vector.DrawFilledRect(dst, x, horizon-60, w*0.16, 60, fade(colorWall, a), false)
		vector.DrawFilledRect(dst, x, horizon-95, 24, 95, fade(colorWall, a), false)
		vector.DrawFilledRect(dst, x+w*0.16-24, horizon-95, 24, 95, fade(colorWall, a), false)
	}
}

// fade scales a premultiplied color by alpha.
func fade(c color.RGBA, alpha uint8) color.RGBA {
	f := uint32(alpha)
	return color.RGBA{
		R: uint8(uint32(c.R) * f / 255),
		G: uint8(uint32(c.G) * f / 255),
		B: uint8(uint32(c.B) * f / 255),
		A: uint8(uint32(c.A) * f / 255),
	}
}
