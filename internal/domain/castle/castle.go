// Package castle holds the in-world objects the camera orbits and aims:
// castles, their towers, the cannons on top of them and cannonballs in flight.
package castle

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/ballerburg/internal/domain/errs"
)

// Forward is the heading a cannon with zero yaw points along.
var Forward = mgl64.Vec3{0, 0, -1}

// Cannon sits on top of a tower. Its barrel mirrors the camera's yaw and
// pitch while the camera is in Cannon mode.
type Cannon struct {
	// Offset is relative to the top of the owning tower.
	Offset mgl64.Vec3

	// Heading is the resting yaw of the barrel (radians about world up).
	Heading float64

	// RestElevation is the barrel elevation when the aim pitch is zero.
	RestElevation float64

	MuzzleSpeed float64

	Yaw   float64
	Pitch float64
}

// SetAim mirrors the camera's accumulated yaw and pitch into the barrel.
func (c *Cannon) SetAim(yaw, pitch float64) {
	c.Yaw = yaw
	c.Pitch = pitch
}

// Elevation returns the barrel elevation, kept within [0, π/2).
func (c *Cannon) Elevation() float64 {
	e := c.RestElevation + c.Pitch
	return mgl64.Clamp(e, 0, math.Pi/2-0.01)
}

// Direction returns the unit world-space direction of the barrel.
func (c *Cannon) Direction() mgl64.Vec3 {
	h := mgl64.Rotate3DY(c.Heading + c.Yaw).Mul3x1(Forward)
	e := c.Elevation()
	return mgl64.Vec3{h.X() * math.Cos(e), math.Sin(e), h.Z() * math.Cos(e)}.Normalize()
}

// Tower is a castle tower. Position is the base, relative to the castle origin.
type Tower struct {
	Position mgl64.Vec3
	Height   float64
	Cannon   *Cannon
}

// Top returns the castle-local point on top of the tower.
func (t *Tower) Top() mgl64.Vec3 {
	return t.Position.Add(mgl64.Vec3{0, t.Height, 0})
}

// Castle is one player's fortress. Towers are addressed by index.
type Castle struct {
	Name   string
	Origin mgl64.Vec3
	Towers []*Tower
}

// New creates a castle at origin.
func New(name string, origin mgl64.Vec3, towers []*Tower) *Castle {
	return &Castle{
		Name:   name,
		Origin: origin,
		Towers: towers,
	}
}

// Tower returns the tower at index i.
func (c *Castle) Tower(i int) (*Tower, error) {
	if i < 0 || i >= len(c.Towers) {
		return nil, fmt.Errorf("castle %q tower %d of %d: %w", c.Name, i, len(c.Towers), errs.ErrIndexOutOfRange)
	}
	return c.Towers[i], nil
}

// Cannon returns the cannon mounted on tower i.
func (c *Castle) Cannon(i int) (*Cannon, error) {
	t, err := c.Tower(i)
	if err != nil {
		return nil, err
	}
	if t.Cannon == nil {
		return nil, fmt.Errorf("castle %q tower %d has no cannon: %w", c.Name, i, errs.ErrIndexOutOfRange)
	}
	return t.Cannon, nil
}

// World returns the castle-local to world transform.
func (c *Castle) World() mgl64.Mat4 {
	return mgl64.Translate3D(c.Origin.Elem())
}

// ToWorld maps a castle-local point into world space.
func (c *Castle) ToWorld(local mgl64.Vec3) mgl64.Vec3 {
	return mgl64.TransformCoordinate(local, c.World())
}

// ToLocal maps a world point into the castle's local frame.
func (c *Castle) ToLocal(world mgl64.Vec3) mgl64.Vec3 {
	return mgl64.TransformCoordinate(world, c.World().Inv())
}

// TowerTop returns the world-space top of tower i.
func (c *Castle) TowerTop(i int) (mgl64.Vec3, error) {
	t, err := c.Tower(i)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	return c.ToWorld(t.Top()), nil
}

// CannonPosition returns the world-space muzzle pivot of the cannon on tower i.
func (c *Castle) CannonPosition(i int) (mgl64.Vec3, error) {
	t, err := c.Tower(i)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	if t.Cannon == nil {
		return mgl64.Vec3{}, fmt.Errorf("castle %q tower %d has no cannon: %w", c.Name, i, errs.ErrIndexOutOfRange)
	}
	return c.ToWorld(t.Top().Add(t.Cannon.Offset)), nil
}

// Center returns the average world position of all tower tops, or the
// origin when the castle has no towers.
func (c *Castle) Center() mgl64.Vec3 {
	if len(c.Towers) == 0 {
		return c.Origin
	}
	var sum mgl64.Vec3
	for _, t := range c.Towers {
		sum = sum.Add(t.Top())
	}
	return c.ToWorld(sum.Mul(1 / float64(len(c.Towers))))
}
