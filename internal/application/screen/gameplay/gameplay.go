// Package gameplay provides the 3D screen where players take turns aiming
// their cannons. It owns the shared camera and hands it between players.
package gameplay

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/younwookim/ballerburg/internal/application/input"
	"github.com/younwookim/ballerburg/internal/application/screen"
	"github.com/younwookim/ballerburg/internal/application/screen/menu"
	"github.com/younwookim/ballerburg/internal/application/system"
	"github.com/younwookim/ballerburg/internal/application/view"
	"github.com/younwookim/ballerburg/internal/domain/camera"
	"github.com/younwookim/ballerburg/internal/domain/castle"
	"github.com/younwookim/ballerburg/internal/domain/errs"
	"github.com/younwookim/ballerburg/internal/infrastructure/config"
)

// Deps carries what the gameplay screen is built from.
type Deps struct {
	Config   *config.GameConfig
	Settings *config.Settings
	Menu     menu.Deps
	Log      zerolog.Logger

	// Viewport defaults to the configured display size.
	Viewport camera.Viewport

	// Clipboard defaults to the system clipboard.
	Clipboard func(string) error
}

// Gameplay is the screen the match is played on. Other screens never cover
// it; the pause menu is a popup on top.
type Gameplay struct {
	screen.Base
	deps Deps
	log  zerolog.Logger

	cam     *camera.Camera
	ctrl    *view.Controller
	castles []*castle.Castle

	ball    *castle.Cannonball
	shooter int
	dt      float64
}

// New builds a match for the configured number of players.
func New(deps Deps) (*Gameplay, error) {
	if deps.Config == nil {
		return nil, fmt.Errorf("gameplay config: %w", errs.ErrInvalidArgument)
	}
	cfg := deps.Config

	players := len(cfg.Castles)
	if deps.Settings != nil {
		players = min(deps.Settings.Players, players)
	}
	if players < 2 {
		return nil, fmt.Errorf("gameplay needs 2 players, have %d: %w", players, errs.ErrInvalidArgument)
	}
	castles := system.LoadCastles(cfg.Castles[:players])

	if deps.Viewport == nil {
		w, h := cfg.Display.ScreenWidth, cfg.Display.ScreenHeight
		deps.Viewport = camera.ViewportFunc(func() (int, int) { return w, h })
	}
	if deps.Clipboard == nil {
		deps.Clipboard = clipboard.WriteAll
	}

	cam := camera.New(deps.Viewport, camera.Options{
		FieldOfView: cfg.Camera.FieldOfView(),
		NearClip:    cfg.Camera.NearClip,
		FarClip:     cfg.Camera.FarClip,
		BezierStep:  cfg.Camera.BezierStep,
	}, cfg.Camera.CastleViewOffset.Vec(), mgl64.Vec3{})

	ctrl := view.NewController(cam, castles, view.Options{
		CastleViewOffset: cfg.Camera.CastleViewOffset.Vec(),
		TowerEyeHeight:   cfg.Camera.TowerEyeHeight,
		LookDistance:     cfg.Camera.LookDistance,
	}, deps.Log)
	if deps.Settings != nil {
		ctrl.SetAnimated(deps.Settings.AnimatedCamera)
	}

	g := &Gameplay{
		deps:    deps,
		log:     deps.Log.With().Str("screen", "gameplay").Logger(),
		cam:     cam,
		ctrl:    ctrl,
		castles: castles,
		dt:      1.0 / float64(max(cfg.Display.Framerate, 1)),
	}
	g.TransitionOnTime = cfg.Transitions.Gameplay.OnDuration()
	g.TransitionOffTime = cfg.Transitions.Gameplay.OffDuration()
	g.IgnoreCover = true
	return g, nil
}

// Controller exposes the camera memory.
func (g *Gameplay) Controller() *view.Controller { return g.ctrl }

// Camera returns the shared camera.
func (g *Gameplay) Camera() *camera.Camera { return g.cam }

// Ball returns the cannonball in flight, or nil.
func (g *Gameplay) Ball() *castle.Cannonball { return g.ball }

// LoadContent puts the first player's view on the camera.
func (g *Gameplay) LoadContent() error {
	g.ctrl.Restore()
	g.log.Info().Int("players", len(g.castles)).Msg("match started")
	return nil
}

// Update advances camera transitions and the cannonball. The match is frozen
// while another screen has focus.
func (g *Gameplay) Update(dt float64, otherHasFocus, covered bool) {
	g.dt = dt
	if otherHasFocus {
		return
	}

	if g.ball == nil {
		g.ctrl.Update()
		return
	}

	g.ball.Update(dt)
	g.cam.UpdateCameraThirdPerson(g.ball.Position, g.ball.Orientation(), g.deps.Config.Camera.ChaseOffset.Vec())
	if g.ball.Active {
		return
	}

	g.log.Info().
		Int("player", g.shooter).
		Bool("landed", g.ball.Landed).
		Float64("x", g.ball.Position.X()).
		Float64("z", g.ball.Position.Z()).
		Msg("cannonball down")
	g.ball = nil
	next := (g.shooter + 1) % len(g.castles)
	if err := g.ctrl.Resume(next); err != nil {
		g.log.Error().Err(err).Msg("failed to resume camera")
	}
}

// HandleInput runs the active player's turn.
func (g *Gameplay) HandleInput(in *input.Snapshot) error {
	if err := g.Base.HandleInput(in); err != nil {
		return err
	}

	if in.PauseGame(input.AnyPlayer) {
		return g.Manager().AddScreen(menu.NewPause(g.deps.Menu))
	}
	if _, ok := in.IsNewKeyPress(ebiten.KeyF9, input.AnyPlayer); ok {
		g.copyPose()
	}
	if g.ball != nil {
		return nil
	}

	if newPress(in, ebiten.KeyTab, ebiten.StandardGamepadButtonFrontBottomLeft) {
		g.refused(g.ctrl.NextPlayer(len(g.castles)), "player switch")
	}

	for _, b := range modeBindings {
		if newPress(in, b.key, b.button) {
			g.refused(g.ctrl.SwitchMode(b.mode), "mode switch")
		}
	}

	if newPress(in, ebiten.KeyQ, ebiten.StandardGamepadButtonFrontTopLeft) {
		g.refused(g.ctrl.CycleTower(-1), "tower select")
	}
	if newPress(in, ebiten.KeyE, ebiten.StandardGamepadButtonFrontTopRight) {
		g.refused(g.ctrl.CycleTower(1), "tower select")
	}

	g.look(in)

	if newPress(in, ebiten.KeySpace, ebiten.StandardGamepadButtonRightBottom) {
		return g.fire()
	}
	return nil
}

type modeBinding struct {
	key    ebiten.Key
	button ebiten.StandardGamepadButton
	mode   camera.State
}

var modeBindings = []modeBinding{
	{ebiten.KeyDigit1, ebiten.StandardGamepadButtonRightLeft, camera.CastleView},
	{ebiten.KeyDigit2, ebiten.StandardGamepadButtonRightTop, camera.Tower},
	{ebiten.KeyDigit3, ebiten.StandardGamepadButtonRightRight, camera.Cannon},
}

func newPress(in *input.Snapshot, key ebiten.Key, button ebiten.StandardGamepadButton) bool {
	if _, ok := in.IsNewKeyPress(key, input.AnyPlayer); ok {
		return true
	}
	_, ok := in.IsNewButtonPress(button, input.AnyPlayer)
	return ok
}

// refused logs navigation requests the camera turned down. They are part of
// normal play, e.g. pressing a mode key mid-transition.
func (g *Gameplay) refused(err error, what string) {
	if err != nil {
		g.log.Debug().Err(err).Msg(what + " refused")
	}
}

// look turns the camera with the arrow keys or the right stick.
func (g *Gameplay) look(in *input.Snapshot) {
	var yaw, pitch float64
	if in.IsKeyDown(ebiten.KeyArrowLeft, input.AnyPlayer) {
		yaw++
	}
	if in.IsKeyDown(ebiten.KeyArrowRight, input.AnyPlayer) {
		yaw--
	}
	if in.IsKeyDown(ebiten.KeyArrowUp, input.AnyPlayer) {
		pitch++
	}
	if in.IsKeyDown(ebiten.KeyArrowDown, input.AnyPlayer) {
		pitch--
	}
	x, y := in.Look(input.AnyPlayer)
	yaw -= x
	pitch += y

	if yaw == 0 && pitch == 0 {
		return
	}

	speed := g.deps.Config.Camera.RotationSpeed
	if g.deps.Settings != nil {
		speed = g.deps.Settings.RotationSpeed
		if g.deps.Settings.InvertPitch {
			pitch = -pitch
		}
	}
	step := speed * g.dt
	g.ctrl.Rotate(yaw*step, pitch*step)
}

// fire launches a ball from the selected cannon and lends the camera to it.
func (g *Gameplay) fire() error {
	if g.cam.State() != camera.Cannon {
		return nil
	}
	cb := g.deps.Config.Cannonball
	ball, err := castle.Fire(g.ctrl.Castle(), g.ctrl.Tower(), cb.Gravity, cb.MaxRange)
	if err != nil {
		return fmt.Errorf("failed to fire: %w", err)
	}

	g.ctrl.Suspend()
	g.ball = ball
	g.shooter = g.ctrl.ActivePlayer()
	g.log.Info().
		Int("player", g.shooter).
		Int("tower", g.ctrl.Tower()).
		Float64("speed", ball.Velocity.Len()).
		Msg("cannon fired")
	return nil
}

// copyPose puts the camera pose on the clipboard for tuning default views.
func (g *Gameplay) copyPose() {
	pos, target := g.cam.Position(), g.cam.Target()
	s := fmt.Sprintf("player=%d mode=%s position=(%.2f, %.2f, %.2f) target=(%.2f, %.2f, %.2f)",
		g.ctrl.ActivePlayer(), g.cam.State(),
		pos.X(), pos.Y(), pos.Z(),
		target.X(), target.Y(), target.Z())
	if err := g.deps.Clipboard(s); err != nil {
		g.log.Warn().Err(err).Msg("failed to copy camera pose")
		return
	}
	g.log.Info().Str("pose", s).Msg("camera pose copied")
}
