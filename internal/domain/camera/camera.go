// Package camera implements the shared gameplay camera: a four-mode state
// machine over position, look-at target and accumulated yaw/pitch, plus the
// curved transitions used when switching modes.
//
// The view and projection matrices are rebuilt from position, target and the
// current viewport on every update; they are never edited directly.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// WorldUp is the up axis of the world.
var WorldUp = mgl64.Vec3{0, 1, 0}

// PitchLimit keeps accumulated pitch away from the poles where LookAt degenerates.
const PitchLimit = math.Pi/2 - 0.01

// Viewport supplies the size of the render target.
type Viewport interface {
	Size() (width, height int)
}

// ViewportFunc adapts a function to Viewport.
type ViewportFunc func() (int, int)

// Size implements Viewport.
func (f ViewportFunc) Size() (int, int) { return f() }

// Aimer receives the camera's yaw and pitch while in Cannon mode.
type Aimer interface {
	SetAim(yaw, pitch float64)
}

// Options holds projection and animation tuning.
type Options struct {
	FieldOfView float64 // radians
	NearClip    float64
	FarClip     float64
	BezierStep  float64 // normalized time per UpdateBezier call
}

// DefaultOptions returns the projection used by the game.
func DefaultOptions() Options {
	return Options{
		FieldOfView: math.Pi / 4,
		NearClip:    0.1,
		FarClip:     2000,
		BezierStep:  0.01,
	}
}

// Camera is shared by all players. Only the active gameplay screen and the
// Bezier runner write to it.
type Camera struct {
	position    mgl64.Vec3
	target      mgl64.Vec3
	orientation mgl64.Quat

	yaw   float64
	pitch float64

	state    State
	endState State

	castleReference mgl64.Vec3
	towerCenter     mgl64.Vec3

	bezier bezierRunner

	view mgl64.Mat4
	proj mgl64.Mat4

	viewport Viewport
	opts     Options
	aimer    Aimer
}

// New creates a camera in CastleView looking from position at target.
func New(viewport Viewport, opts Options, position, target mgl64.Vec3) *Camera {
	if opts.BezierStep <= 0 {
		opts.BezierStep = DefaultOptions().BezierStep
	}
	c := &Camera{
		position:        position,
		target:          target,
		orientation:     mgl64.QuatIdent(),
		state:           CastleView,
		endState:        CastleView,
		castleReference: target,
		towerCenter:     position,
		viewport:        viewport,
		opts:            opts,
	}
	c.rebuild()
	return c
}

// Position returns the world-space eye point.
func (c *Camera) Position() mgl64.Vec3 { return c.position }

// Target returns the world-space look-at point.
func (c *Camera) Target() mgl64.Vec3 { return c.target }

// Orientation returns the orientation set by the last third-person update.
func (c *Camera) Orientation() mgl64.Quat { return c.orientation }

// Yaw returns the yaw accumulated since the current mode was entered.
func (c *Camera) Yaw() float64 { return c.yaw }

// Pitch returns the pitch accumulated since the current mode was entered.
func (c *Camera) Pitch() float64 { return c.pitch }

// State returns the current mode.
func (c *Camera) State() State { return c.state }

// EndState returns the mode an in-flight Bezier transition will settle in.
func (c *Camera) EndState() State { return c.endState }

// BezierTime returns normalized progress of the running transition.
func (c *Camera) BezierTime() float64 { return c.bezier.time }

// ViewMatrix returns the current view matrix.
func (c *Camera) ViewMatrix() mgl64.Mat4 { return c.view }

// ProjMatrix returns the current projection matrix.
func (c *Camera) ProjMatrix() mgl64.Mat4 { return c.proj }

// CastleReference returns the CastleView orbit pivot.
func (c *Camera) CastleReference() mgl64.Vec3 { return c.castleReference }

// SetState switches mode directly. Switching to the current mode is a no-op;
// otherwise accumulated yaw and pitch restart from zero.
func (c *Camera) SetState(s State) {
	if s == c.state {
		return
	}
	c.state = s
	c.yaw = 0
	c.pitch = 0
}

// SetRotation overwrites the accumulated yaw and pitch without moving the
// camera, e.g. to resume a cannon's stored aim.
func (c *Camera) SetRotation(yaw, pitch float64) {
	c.yaw = yaw
	c.pitch = pitch
}

// SetCastleReference sets the pivot CastleView orbits around.
func (c *Camera) SetCastleReference(p mgl64.Vec3) { c.castleReference = p }

// SetTowerCenter sets the vertical axis Tower mode yaws around.
func (c *Camera) SetTowerCenter(p mgl64.Vec3) { c.towerCenter = p }

// AttachCannon sets the barrel that mirrors Cannon-mode aim. nil detaches.
func (c *Camera) AttachCannon(a Aimer) { c.aimer = a }

// Place moves the camera instantly and rebuilds the matrices.
func (c *Camera) Place(position, target mgl64.Vec3) {
	c.position = position
	c.target = target
	c.rebuild()
}

// UpdateCamera is the single entry point for direct updates: it moves the eye
// to position, applies the rotation deltas according to the current mode and
// rebuilds the view and projection matrices.
func (c *Camera) UpdateCamera(position mgl64.Vec3, deltaYaw, deltaPitch float64) {
	c.position = position

	prevPitch := c.pitch
	c.yaw += deltaYaw
	c.pitch += deltaPitch

	if c.state == Cannon && c.pitch > 0 {
		c.pitch = 0
	}

	pitchStep := c.pitch - prevPitch
	if math.Abs(c.pitch) > PitchLimit {
		c.pitch = math.Copysign(PitchLimit, c.pitch)
		pitchStep = 0
	}

	if deltaYaw != 0 || pitchStep != 0 {
		c.rotate(deltaYaw, pitchStep)
	}

	if c.state == Cannon && c.aimer != nil {
		c.aimer.SetAim(c.yaw, c.pitch)
	}

	c.rebuild()
}

func (c *Camera) rotate(deltaYaw, pitchStep float64) {
	yawRot := mgl64.HomogRotate3DY(deltaYaw)

	switch c.state {
	case CastleView:
		// Orbit the eye around the reference; the target stays put.
		if deltaYaw != 0 {
			c.position = aroundPivot(c.position, c.castleReference, yawRot)
		}
		if axis, ok := c.pitchAxis(pitchStep); ok {
			c.position = aroundPivot(c.position, c.castleReference, mgl64.HomogRotate3D(pitchStep, axis))
		}
	case Tower:
		if deltaYaw != 0 {
			c.position = aroundPivot(c.position, c.towerCenter, yawRot)
			c.target = aroundPivot(c.target, c.towerCenter, yawRot)
		}
		if axis, ok := c.pitchAxis(pitchStep); ok {
			c.target = aroundPivot(c.target, c.position, mgl64.HomogRotate3D(pitchStep, axis))
		}
	case Cannon:
		if deltaYaw != 0 {
			c.target = aroundPivot(c.target, c.position, yawRot)
		}
		if axis, ok := c.pitchAxis(pitchStep); ok {
			c.target = aroundPivot(c.target, c.position, mgl64.HomogRotate3D(pitchStep, axis))
		}
	}
}

// pitchAxis is perpendicular to the view direction and world up.
func (c *Camera) pitchAxis(pitchStep float64) (mgl64.Vec3, bool) {
	if pitchStep == 0 {
		return mgl64.Vec3{}, false
	}
	axis := c.target.Sub(c.position).Cross(WorldUp)
	if axis.Len() < DegenerateEpsilon {
		return mgl64.Vec3{}, false
	}
	return axis.Normalize(), true
}

func aroundPivot(p, pivot mgl64.Vec3, rot mgl64.Mat4) mgl64.Vec3 {
	m := mgl64.Translate3D(pivot.Elem()).
		Mul4(rot).
		Mul4(mgl64.Translate3D(pivot.Mul(-1).Elem()))
	return mgl64.TransformCoordinate(p, m)
}

// UpdateCameraThirdPerson places the camera at offset from follow, rotated by
// orientation, looking at follow. The mode is left unchanged.
func (c *Camera) UpdateCameraThirdPerson(follow mgl64.Vec3, orientation mgl64.Quat, offset mgl64.Vec3) {
	c.orientation = orientation
	c.target = follow
	c.position = follow.Add(orientation.Rotate(offset))
	c.rebuild()
}

// InitBezier starts a curved transition that settles in endState. When a
// transition is already running it restarts from the live pose instead of
// the given start pose.
func (c *Camera) InitBezier(startPos, startTarget, endPos, endTarget mgl64.Vec3, endState State) {
	if c.state == Animated {
		startPos = c.position
		startTarget = c.target
	}
	c.bezier.init(startPos, startTarget, endPos, endTarget, c.opts.BezierStep)
	c.endState = endState
	c.state = Animated
	c.yaw = 0
	c.pitch = 0
}

// UpdateBezier advances the running transition by one step and reports
// whether it is still running. It does nothing outside Animated.
func (c *Camera) UpdateBezier() bool {
	if c.state != Animated {
		return false
	}

	pos, target, done := c.bezier.advance()
	c.target = target
	c.UpdateCamera(pos, 0, 0)

	if done {
		c.state = c.endState
		c.yaw = 0
		c.pitch = 0
		return false
	}
	return true
}

func (c *Camera) aspectRatio() float64 {
	if c.viewport == nil {
		return 1
	}
	w, h := c.viewport.Size()
	if w <= 0 || h <= 0 {
		return 1
	}
	return float64(w) / float64(h)
}

func (c *Camera) rebuild() {
	c.view = mgl64.LookAtV(c.position, c.target, upFor(c.target.Sub(c.position)))
	c.proj = mgl64.Perspective(c.opts.FieldOfView, c.aspectRatio(), c.opts.NearClip, c.opts.FarClip)
}

// upFor picks an up vector that is not parallel to dir.
func upFor(dir mgl64.Vec3) mgl64.Vec3 {
	if dir.Cross(WorldUp).Len() < DegenerateEpsilon {
		return mgl64.Vec3{0, 0, -1}
	}
	return WorldUp
}
