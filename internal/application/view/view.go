// Package view keeps each player's camera memory for the shared camera.
//
// Poses are stored relative to the frame they belong to: the castle's local
// frame for CastleView and the selected tower or cannon for Tower and Cannon.
// Switching player or mode saves the outgoing pose in its frame before the
// camera is touched and restores the incoming one into world space.
package view

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
	"github.com/younwookim/ballerburg/internal/domain/camera"
	"github.com/younwookim/ballerburg/internal/domain/castle"
	"github.com/younwookim/ballerburg/internal/domain/errs"
)

// Options places the default poses.
type Options struct {
	// CastleViewOffset is relative to the castle center, turned so the
	// camera looks at the castle from the side facing away from the map center.
	CastleViewOffset mgl64.Vec3
	TowerEyeHeight   float64
	LookDistance     float64
}

// Pose is a camera position and look-at target.
type Pose struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
}

const modeCount = int(camera.Cannon) + 1

type memory struct {
	mode  camera.State
	tower int
	poses [modeCount]Pose
	saved [modeCount]bool
}

// Controller drives the shared camera on behalf of the active player.
type Controller struct {
	cam     *camera.Camera
	castles []*castle.Castle
	players []memory
	active  int

	opts      Options
	animated  bool
	suspended bool
	log       zerolog.Logger
}

// NewController creates memory for one player per castle. Every player
// starts in CastleView on tower 0.
func NewController(cam *camera.Camera, castles []*castle.Castle, opts Options, log zerolog.Logger) *Controller {
	return &Controller{
		cam:     cam,
		castles: castles,
		players: make([]memory, len(castles)),
		opts:    opts,
		log:     log,
	}
}

// Camera returns the shared camera.
func (c *Controller) Camera() *camera.Camera { return c.cam }

// SetAnimated selects Bezier transitions instead of instant cuts.
func (c *Controller) SetAnimated(animated bool) { c.animated = animated }

// ActivePlayer returns the player the camera currently serves.
func (c *Controller) ActivePlayer() int { return c.active }

// Players returns the number of players.
func (c *Controller) Players() int { return len(c.players) }

// Mode returns the active player's view mode.
func (c *Controller) Mode() camera.State { return c.players[c.active].mode }

// Tower returns the active player's selected tower.
func (c *Controller) Tower() int { return c.players[c.active].tower }

// Castle returns the active player's castle.
func (c *Controller) Castle() *castle.Castle { return c.castles[c.active] }

// SelectedCannon returns the cannon on the active player's selected tower,
// or nil when the tower has none.
func (c *Controller) SelectedCannon() *castle.Cannon {
	m := c.players[c.active]
	cn, err := c.castles[c.active].Cannon(m.tower)
	if err != nil {
		return nil
	}
	return cn
}

// SavedPose returns a player's stored pose for mode, in that mode's frame.
func (c *Controller) SavedPose(player int, mode camera.State) (Pose, bool) {
	if player < 0 || player >= len(c.players) || !isViewMode(mode) {
		return Pose{}, false
	}
	m := c.players[player]
	return m.poses[mode], m.saved[mode]
}

// Restore moves the camera to the active player's current mode without
// saving first. Used when gameplay starts or resumes.
func (c *Controller) Restore() {
	c.restore(false)
}

// SwitchPlayer hands the camera to player.
func (c *Controller) SwitchPlayer(player int) error {
	if player < 0 || player >= len(c.players) {
		return fmt.Errorf("switch to player %d of %d: %w", player, len(c.players), errs.ErrIndexOutOfRange)
	}
	if player == c.active {
		return nil
	}

	c.save()
	c.active = player
	c.log.Debug().Int("player", player).Str("mode", c.Mode().String()).Msg("player switched")
	c.restore(c.animated)
	return nil
}

// NextPlayer hands the camera to the next of the first count players.
func (c *Controller) NextPlayer(count int) error {
	if count <= 0 || count > len(c.players) {
		count = len(c.players)
	}
	return c.SwitchPlayer((c.active + 1) % count)
}

// SwitchMode changes the active player's view mode. Switching to the current
// mode does nothing.
func (c *Controller) SwitchMode(mode camera.State) error {
	if !isViewMode(mode) {
		return fmt.Errorf("switch to mode %s: %w", mode, errs.ErrInvalidArgument)
	}
	m := &c.players[c.active]
	if mode == m.mode {
		return nil
	}
	if mode == camera.Cannon {
		if _, err := c.castles[c.active].Cannon(m.tower); err != nil {
			return fmt.Errorf("switch to cannon view: %w", err)
		}
	}

	c.save()
	m.mode = mode
	c.log.Debug().Int("player", c.active).Str("mode", mode.String()).Msg("mode switched")
	c.restore(c.animated)
	return nil
}

// SelectTower picks the active player's tower. The camera and memory are left
// untouched when i is out of range, or when in Cannon view the tower has no cannon.
func (c *Controller) SelectTower(i int) error {
	cs := c.castles[c.active]
	if _, err := cs.Tower(i); err != nil {
		return fmt.Errorf("select tower: %w", err)
	}
	m := &c.players[c.active]
	if m.mode == camera.Cannon {
		if _, err := cs.Cannon(i); err != nil {
			return fmt.Errorf("select tower: %w", err)
		}
	}
	if i == m.tower {
		return nil
	}

	c.save()
	m.tower = i
	if m.mode != camera.CastleView {
		c.restore(c.animated)
	}
	return nil
}

// CycleTower selects the next or previous tower, wrapping around.
func (c *Controller) CycleTower(step int) error {
	n := len(c.castles[c.active].Towers)
	if n == 0 {
		return fmt.Errorf("castle %q has no towers: %w", c.castles[c.active].Name, errs.ErrIndexOutOfRange)
	}
	next := ((c.Tower()+step)%n + n) % n
	if c.Mode() != camera.Cannon {
		return c.SelectTower(next)
	}
	for range n {
		if _, err := c.castles[c.active].Cannon(next); err == nil {
			return c.SelectTower(next)
		}
		next = ((next+step)%n + n) % n
	}
	return nil
}

// Suspend stores the active player's pose and lends the camera out, e.g. to
// follow a cannonball. Memory is not written again until Resume.
func (c *Controller) Suspend() {
	c.save()
	c.suspended = true
	c.log.Debug().Int("player", c.active).Msg("camera suspended")
}

// Suspended reports whether the camera is lent out.
func (c *Controller) Suspended() bool { return c.suspended }

// Resume takes the camera back for player and restores that player's view
// from wherever the camera was left.
func (c *Controller) Resume(player int) error {
	if player < 0 || player >= len(c.players) {
		return fmt.Errorf("resume player %d of %d: %w", player, len(c.players), errs.ErrIndexOutOfRange)
	}
	c.suspended = false
	c.active = player
	c.log.Debug().Int("player", player).Str("mode", c.Mode().String()).Msg("camera resumed")
	c.restore(c.animated)
	return nil
}

// Rotate applies look-around input. It is ignored while a transition runs
// or the camera is lent out.
func (c *Controller) Rotate(deltaYaw, deltaPitch float64) {
	if c.suspended || c.cam.State() == camera.Animated {
		return
	}
	if c.cam.State() == camera.Cannon {
		// The barrel cannot dip below the ground plane.
		if cn := c.SelectedCannon(); cn != nil {
			if floor := -cn.RestElevation; c.cam.Pitch()+deltaPitch < floor {
				deltaPitch = math.Min(0, floor-c.cam.Pitch())
			}
		}
	}
	c.cam.UpdateCamera(c.cam.Position(), deltaYaw, deltaPitch)
}

// Update advances a running transition by one step.
func (c *Controller) Update() {
	if c.cam.State() != camera.Animated {
		return
	}
	if !c.cam.UpdateBezier() {
		c.settle()
	}
}

// save stores the camera pose in the active player's frame. A pose caught
// mid-transition is not stored; the destination saved by restore stands.
func (c *Controller) save() {
	if c.suspended || c.cam.State() == camera.Animated {
		return
	}
	m := &c.players[c.active]
	frame := c.frame(c.active, m.mode)
	inv := frame.Inv()

	m.poses[m.mode] = Pose{
		Position: mgl64.TransformCoordinate(c.cam.Position(), inv),
		Target:   mgl64.TransformCoordinate(c.cam.Target(), inv),
	}
	m.saved[m.mode] = true
}

func (c *Controller) restore(animated bool) {
	m := &c.players[c.active]
	if !m.saved[m.mode] {
		m.poses[m.mode] = c.defaultPose(c.active, m.mode, m.tower)
		m.saved[m.mode] = true
	}

	frame := c.frame(c.active, m.mode)
	pos := mgl64.TransformCoordinate(m.poses[m.mode].Position, frame)
	target := mgl64.TransformCoordinate(m.poses[m.mode].Target, frame)

	cs := c.castles[c.active]
	switch m.mode {
	case camera.CastleView:
		c.cam.SetCastleReference(target)
		c.cam.AttachCannon(nil)
	case camera.Tower:
		top, _ := cs.TowerTop(m.tower)
		c.cam.SetTowerCenter(top)
		c.cam.AttachCannon(nil)
	case camera.Cannon:
		// One pose serves every cannon; the look follows the selected barrel.
		c.cam.AttachCannon(nil)
		if cn := c.SelectedCannon(); cn != nil {
			reach := target.Sub(pos).Len()
			if reach < camera.DegenerateEpsilon {
				reach = c.opts.LookDistance
			}
			target = pos.Add(cn.Direction().Mul(reach))
			c.cam.AttachCannon(cn)
		}
	}

	if animated {
		c.log.Debug().Int("player", c.active).Str("to", m.mode.String()).Msg("bezier started")
		c.cam.InitBezier(c.cam.Position(), c.cam.Target(), pos, target, m.mode)
		return
	}

	c.cam.SetState(m.mode)
	c.cam.Place(pos, target)
	c.settle()
}

// settle resumes the stored barrel aim once the camera is in Cannon view.
func (c *Controller) settle() {
	if c.cam.State() != camera.Cannon {
		c.cam.SetRotation(0, 0)
		return
	}
	if cn := c.SelectedCannon(); cn != nil {
		c.cam.SetRotation(cn.Yaw, cn.Pitch)
	}
}

// frame returns the local-to-world transform poses of mode are stored in.
func (c *Controller) frame(player int, mode camera.State) mgl64.Mat4 {
	cs := c.castles[player]
	tower := c.players[player].tower

	switch mode {
	case camera.Tower:
		if top, err := cs.TowerTop(tower); err == nil {
			return mgl64.Translate3D(top.Elem())
		}
	case camera.Cannon:
		if p, err := cs.CannonPosition(tower); err == nil {
			return mgl64.Translate3D(p.Elem())
		}
	}
	return cs.World()
}

// defaultPose returns a first-visit pose in the frame of mode.
func (c *Controller) defaultPose(player int, mode camera.State, tower int) Pose {
	cs := c.castles[player]
	facing := facingCenter(cs.Origin)
	eye := mgl64.Vec3{0, c.opts.TowerEyeHeight, 0}

	switch mode {
	case camera.Tower:
		return Pose{Position: eye, Target: eye.Add(facing.Mul(c.opts.LookDistance))}
	case camera.Cannon:
		if cn, err := cs.Cannon(tower); err == nil {
			facing = horizontal(cn)
		}
		lift := mgl64.Vec3{0, c.opts.TowerEyeHeight / 2, 0}
		return Pose{Position: lift, Target: lift.Add(facing.Mul(c.opts.LookDistance))}
	}

	center := cs.ToLocal(cs.Center())
	away := math.Atan2(-facing.X(), -facing.Z())
	offset := mgl64.Rotate3DY(away).Mul3x1(c.opts.CastleViewOffset)
	return Pose{Position: center.Add(offset), Target: center}
}

// facingCenter points from origin toward the map center in the ground plane.
func facingCenter(origin mgl64.Vec3) mgl64.Vec3 {
	d := mgl64.Vec3{-origin.X(), 0, -origin.Z()}
	if d.Len() < camera.DegenerateEpsilon {
		return castle.Forward
	}
	return d.Normalize()
}

// horizontal is the cannon's resting heading in the ground plane.
func horizontal(cn *castle.Cannon) mgl64.Vec3 {
	return mgl64.Rotate3DY(cn.Heading).Mul3x1(castle.Forward)
}

func isViewMode(s camera.State) bool {
	return s == camera.CastleView || s == camera.Tower || s == camera.Cannon
}
