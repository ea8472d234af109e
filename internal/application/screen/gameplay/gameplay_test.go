package gameplay

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/ballerburg/internal/application/input"
	"github.com/younwookim/ballerburg/internal/application/screen"
	"github.com/younwookim/ballerburg/internal/application/screen/menu"
	"github.com/younwookim/ballerburg/internal/domain/camera"
	"github.com/younwookim/ballerburg/internal/domain/errs"
	"github.com/younwookim/ballerburg/internal/infrastructure/config"
)

const frame = 1.0 / 60.0

func createTestConfig() *config.GameConfig {
	tower := func(x, heading float64) config.TowerConfig {
		return config.TowerConfig{
			Position: config.Vec3{X: x},
			Height:   30,
			Cannon: &config.CannonConfig{
				Offset:       config.Vec3{Y: 2},
				HeadingDeg:   heading,
				ElevationDeg: 30,
				MuzzleSpeed:  60,
			},
		}
	}
	return &config.GameConfig{
		Display: config.DisplayConfig{ScreenWidth: 960, ScreenHeight: 540, Scale: 1, Framerate: 60},
		Camera: config.CameraConfig{
			FieldOfViewDeg:   45,
			NearClip:         0.1,
			FarClip:          2000,
			BezierStep:       0.05,
			RotationSpeed:    1.5,
			CastleViewOffset: config.Vec3{Y: 60, Z: 120},
			TowerEyeHeight:   4,
			LookDistance:     50,
			ChaseOffset:      config.Vec3{Y: 6, Z: 20},
		},
		Cannonball: config.CannonballConfig{Gravity: 9.81, MaxRange: 900},
		Castles: []config.CastleConfig{
			{Name: "west", Origin: config.Vec3{X: -300}, Towers: []config.TowerConfig{tower(-20, -90), {Position: config.Vec3{X: 20}, Height: 40}}},
			{Name: "east", Origin: config.Vec3{X: 300}, Towers: []config.TowerConfig{tower(0, 90)}},
			{Name: "north", Origin: config.Vec3{Z: -300}, Towers: []config.TowerConfig{tower(0, 180)}},
		},
	}
}

type harness struct {
	t      *testing.T
	script *input.Script
	in     *input.Snapshot
	m      *screen.Manager
	g      *Gameplay
	copied []string
}

func newHarness(t *testing.T, settings *config.Settings) *harness {
	h := &harness{t: t, script: input.NewScript()}
	h.in = input.New(h.script)
	h.m = screen.NewManager(h.in, zerolog.Nop())
	require.NoError(t, h.m.Initialize())

	g, err := New(Deps{
		Config:   createTestConfig(),
		Settings: settings,
		Menu:     menu.Deps{Settings: settings},
		Log:      zerolog.Nop(),
		Clipboard: func(s string) error {
			h.copied = append(h.copied, s)
			return nil
		},
	})
	require.NoError(t, err)
	require.NoError(t, h.m.AddScreen(g))
	h.g = g
	return h
}

func (h *harness) step(keys ...ebiten.Key) {
	h.t.Helper()
	h.script.Push(keys...)
	h.in.Update()
	require.NoError(h.t, h.m.Update(frame))
}

func createTestSettings() *config.Settings {
	return &config.Settings{Players: 2, RotationSpeed: 1.5}
}

func TestNew_Validation(t *testing.T) {
	_, err := New(Deps{})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	cfg := createTestConfig()
	cfg.Castles = cfg.Castles[:1]
	_, err = New(Deps{Config: cfg, Log: zerolog.Nop()})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestNew_PlayerCountFromSettings(t *testing.T) {
	g, err := New(Deps{Config: createTestConfig(), Settings: createTestSettings(), Log: zerolog.Nop()})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Controller().Players())
	assert.True(t, g.IgnoreCover)

	settings := createTestSettings()
	settings.Players = 4
	g, err = New(Deps{Config: createTestConfig(), Settings: settings, Log: zerolog.Nop()})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Controller().Players(), "capped at the castles available")
}

func TestGameplay_StartsInCastleView(t *testing.T) {
	h := newHarness(t, createTestSettings())

	assert.Equal(t, camera.CastleView, h.g.Camera().State())
	assert.Equal(t, 0, h.g.Controller().ActivePlayer())
	assert.True(t, h.g.Camera().Target().ApproxEqualThreshold(h.g.Controller().Castle().Center(), 1e-9))
}

func TestGameplay_NavigationKeys(t *testing.T) {
	h := newHarness(t, createTestSettings())
	ctrl := h.g.Controller()

	h.step(ebiten.KeyDigit2)
	assert.Equal(t, camera.Tower, h.g.Camera().State())

	h.step(ebiten.KeyE)
	assert.Equal(t, 1, ctrl.Tower())

	h.step(ebiten.KeyDigit3)
	assert.Equal(t, camera.Tower, h.g.Camera().State(), "tower 1 has no cannon")

	h.step(ebiten.KeyQ)
	h.step(ebiten.KeyDigit3)
	assert.Equal(t, camera.Cannon, h.g.Camera().State())

	h.step(ebiten.KeyTab)
	assert.Equal(t, 1, ctrl.ActivePlayer())
	assert.Equal(t, camera.CastleView, h.g.Camera().State())

	h.step(ebiten.KeyTab)
	assert.Equal(t, 0, ctrl.ActivePlayer())
	assert.Equal(t, camera.Cannon, h.g.Camera().State(), "mode remembered per player")
}

func TestGameplay_LookRotatesCamera(t *testing.T) {
	h := newHarness(t, createTestSettings())
	h.step(ebiten.KeyDigit2)

	h.step(ebiten.KeyArrowLeft, ebiten.KeyArrowUp)

	assert.InDelta(t, 1.5*frame, h.g.Camera().Yaw(), 1e-9)
	assert.InDelta(t, 1.5*frame, h.g.Camera().Pitch(), 1e-9)
}

func TestGameplay_InvertPitch(t *testing.T) {
	settings := createTestSettings()
	settings.InvertPitch = true
	h := newHarness(t, settings)
	h.step(ebiten.KeyDigit2)

	h.step(ebiten.KeyArrowUp)

	assert.InDelta(t, -1.5*frame, h.g.Camera().Pitch(), 1e-9)
}

func TestGameplay_FireHandsTurnToNextPlayer(t *testing.T) {
	h := newHarness(t, createTestSettings())
	h.step(ebiten.KeyDigit3)

	h.step(ebiten.KeySpace)
	require.NotNil(t, h.g.Ball())
	assert.True(t, h.g.Controller().Suspended())
	start := h.g.Ball().Position

	h.step()
	assert.NotEqual(t, start, h.g.Ball().Position)
	assert.Equal(t, h.g.Ball().Position, h.g.Camera().Target(), "camera chases the ball")

	h.step(ebiten.KeyTab)
	assert.Equal(t, 0, h.g.Controller().ActivePlayer(), "no navigation while the ball flies")

	for i := 0; h.g.Ball() != nil; i++ {
		require.Less(t, i, 5000, "ball never came down")
		h.step()
	}

	assert.False(t, h.g.Controller().Suspended())
	assert.Equal(t, 1, h.g.Controller().ActivePlayer())
	assert.Equal(t, camera.CastleView, h.g.Camera().State())
}

func TestGameplay_FireOutsideCannonView(t *testing.T) {
	h := newHarness(t, createTestSettings())

	h.step(ebiten.KeySpace)

	assert.Nil(t, h.g.Ball())
}

func TestGameplay_PauseFreezesMatch(t *testing.T) {
	h := newHarness(t, createTestSettings())
	h.step(ebiten.KeyDigit3)
	h.step(ebiten.KeySpace)
	require.NotNil(t, h.g.Ball())

	h.step(ebiten.KeyEscape)
	screens := h.m.Screens()
	require.Len(t, screens, 2)
	assert.IsType(t, &menu.Pause{}, screens[1])

	pos := h.g.Ball().Position
	h.step()
	h.step()
	assert.Equal(t, pos, h.g.Ball().Position)

	h.step(ebiten.KeyEnter)
	assert.Len(t, h.m.Screens(), 1)
	h.step()
	assert.NotEqual(t, pos, h.g.Ball().Position)
}

func TestGameplay_CopyPose(t *testing.T) {
	h := newHarness(t, createTestSettings())

	h.step(ebiten.KeyF9)

	require.Len(t, h.copied, 1)
	assert.Contains(t, h.copied[0], "player=0 mode=CastleView")
}
