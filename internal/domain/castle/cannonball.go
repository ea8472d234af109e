package castle

import "github.com/go-gl/mathgl/mgl64"

// GroundLevel is the world height at which cannonballs land.
const GroundLevel = 0.0

// Cannonball is a ballistic projectile fired from a cannon.
type Cannonball struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Start    mgl64.Vec3

	Gravity  float64
	MaxRange float64

	Active bool
	Landed bool
	Age    float64
}

// NewCannonball creates a ball leaving pos along dir at speed.
func NewCannonball(pos, dir mgl64.Vec3, speed, gravity, maxRange float64) *Cannonball {
	return &Cannonball{
		Position: pos,
		Velocity: dir.Normalize().Mul(speed),
		Start:    pos,
		Gravity:  gravity,
		MaxRange: maxRange,
		Active:   true,
	}
}

// Fire launches a ball from the cannon on tower i of c.
func Fire(c *Castle, i int, gravity, maxRange float64) (*Cannonball, error) {
	cannon, err := c.Cannon(i)
	if err != nil {
		return nil, err
	}
	pos, err := c.CannonPosition(i)
	if err != nil {
		return nil, err
	}
	return NewCannonball(pos, cannon.Direction(), cannon.MuzzleSpeed, gravity, maxRange), nil
}

// Update integrates one step of flight.
func (b *Cannonball) Update(dt float64) {
	if !b.Active {
		return
	}
	b.Age += dt

	b.Velocity = b.Velocity.Sub(mgl64.Vec3{0, b.Gravity * dt, 0})
	b.Position = b.Position.Add(b.Velocity.Mul(dt))

	if b.Position.Y() <= GroundLevel {
		b.Position = mgl64.Vec3{b.Position.X(), GroundLevel, b.Position.Z()}
		b.Landed = true
		b.Active = false
		return
	}

	// Deactivate if exceeded max range
	if b.MaxRange > 0 {
		flat := b.Position.Sub(b.Start)
		flat = mgl64.Vec3{flat.X(), 0, flat.Z()}
		if flat.Len() >= b.MaxRange {
			b.Active = false
		}
	}
}

// Orientation returns the rotation taking Forward onto the flight direction.
func (b *Cannonball) Orientation() mgl64.Quat {
	if b.Velocity.Len() < 1e-9 {
		return mgl64.QuatIdent()
	}
	return mgl64.QuatBetweenVectors(Forward, b.Velocity.Normalize())
}
