package gameplay

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/ballerburg/internal/domain/castle"
)

// Colors for rendering
var (
	colorSky      = color.RGBA{40, 60, 110, 255}
	colorGrid     = color.RGBA{60, 110, 60, 255}
	colorWall     = color.RGBA{200, 190, 170, 255}
	colorActive   = color.RGBA{255, 220, 80, 255}
	colorBarrel   = color.RGBA{230, 80, 60, 255}
	colorBall     = color.RGBA{20, 20, 20, 255}
	colorHUDPanel = color.RGBA{0, 0, 0, 140}
)

const (
	gridExtent  = 600.0
	gridSpacing = 50.0
	towerRadius = 6.0
	barrelReach = 12.0
)

const help = "Tab next player  1/2/3 view  Q/E tower  arrows look  Space fire  Esc pause  F9 copy pose"

// Draw renders the world as wireframe through the shared camera.
func (g *Gameplay) Draw(dst *ebiten.Image, dt float64) {
	dst.Fill(colorSky)

	p := newProjector(g.cam.ProjMatrix().Mul4(g.cam.ViewMatrix()), dst)

	for x := -gridExtent; x <= gridExtent; x += gridSpacing {
		p.line(dst, mgl64.Vec3{x, 0, -gridExtent}, mgl64.Vec3{x, 0, gridExtent}, colorGrid)
		p.line(dst, mgl64.Vec3{-gridExtent, 0, x}, mgl64.Vec3{gridExtent, 0, x}, colorGrid)
	}

	for i, cs := range g.castles {
		g.drawCastle(dst, p, cs, i == g.ctrl.ActivePlayer())
	}

	if g.ball != nil {
		if x, y, ok := p.point(g.ball.Position); ok {
			vector.DrawFilledRect(dst, x-3, y-3, 6, 6, colorBall, false)
		}
	}

	g.drawHUD(dst)

	if g.TransitionPosition() > 0 {
		if m := g.Manager(); m != nil {
			m.FadeBackBufferToBlack(dst, 255-g.TransitionAlpha())
		}
	}
}

func (g *Gameplay) drawCastle(dst *ebiten.Image, p projector, cs *castle.Castle, active bool) {
	for i, t := range cs.Towers {
		c := colorWall
		if active && i == g.ctrl.Tower() {
			c = colorActive
		}
		base := cs.ToWorld(t.Position)
		top := cs.ToWorld(t.Top())
		corners := [4]mgl64.Vec3{
			{-towerRadius, 0, -towerRadius},
			{towerRadius, 0, -towerRadius},
			{towerRadius, 0, towerRadius},
			{-towerRadius, 0, towerRadius},
		}
		for k, off := range corners {
			next := corners[(k+1)%len(corners)]
			p.line(dst, base.Add(off), top.Add(off), c)
			p.line(dst, base.Add(off), base.Add(next), c)
			p.line(dst, top.Add(off), top.Add(next), c)
		}

		if k := (i + 1) % len(cs.Towers); k != i {
			wall := mgl64.Vec3{0, min(t.Height, cs.Towers[k].Height) / 2, 0}
			p.line(dst, base.Add(wall), cs.ToWorld(cs.Towers[k].Position).Add(wall), colorWall)
		}

		if t.Cannon != nil {
			muzzle, err := cs.CannonPosition(i)
			if err == nil {
				p.line(dst, muzzle, muzzle.Add(t.Cannon.Direction().Mul(barrelReach)), colorBarrel)
			}
		}
	}
}

func (g *Gameplay) drawHUD(dst *ebiten.Image) {
	w := float32(dst.Bounds().Dx())
	vector.DrawFilledRect(dst, 0, 0, w, 36, colorHUDPanel, false)

	cs := g.ctrl.Castle()
	status := fmt.Sprintf("Player %d (%s)  View: %s  Tower %d/%d",
		g.ctrl.ActivePlayer()+1, cs.Name, g.cam.State(), g.ctrl.Tower()+1, len(cs.Towers))
	if cn := g.ctrl.SelectedCannon(); cn != nil {
		status += fmt.Sprintf("  Elevation %.0f", mgl64.RadToDeg(cn.Elevation()))
	}
	if g.ball != nil {
		status += fmt.Sprintf("  Ball %.0fm", g.ball.Position.Sub(g.ball.Start).Len())
	}
	ebitenutil.DebugPrintAt(dst, status, 8, 2)
	ebitenutil.DebugPrintAt(dst, help, 8, 18)
}

// projector maps world points to pixels of the target image.
type projector struct {
	viewProj mgl64.Mat4
	w, h     float64
}

func newProjector(viewProj mgl64.Mat4, dst *ebiten.Image) projector {
	b := dst.Bounds()
	return projector{viewProj: viewProj, w: float64(b.Dx()), h: float64(b.Dy())}
}

// point reports false for points behind the camera.
func (p projector) point(v mgl64.Vec3) (x, y float32, ok bool) {
	clip := p.viewProj.Mul4x1(v.Vec4(1))
	if clip.W() <= 1e-6 {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	return float32((ndc.X() + 1) / 2 * p.w), float32((1 - ndc.Y()) / 2 * p.h), true
}

// line skips segments with an end behind the camera.
func (p projector) line(dst *ebiten.Image, a, b mgl64.Vec3, c color.Color) {
	x0, y0, ok0 := p.point(a)
	x1, y1, ok1 := p.point(b)
	if !ok0 || !ok1 {
		return
	}
	vector.StrokeLine(dst, x0, y0, x1, y1, 1, c, true)
}
