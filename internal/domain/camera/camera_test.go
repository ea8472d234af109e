package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedViewport struct{ w, h int }

func (v *fixedViewport) Size() (int, int) { return v.w, v.h }

type recordingAimer struct {
	yaw, pitch float64
	calls      int
}

func (a *recordingAimer) SetAim(yaw, pitch float64) {
	a.yaw = yaw
	a.pitch = pitch
	a.calls++
}

func createTestCamera() (*Camera, *fixedViewport) {
	vp := &fixedViewport{w: 800, h: 600}
	c := New(vp, DefaultOptions(), mgl64.Vec3{0, 20, 50}, mgl64.Vec3{0, 0, 0})
	return c, vp
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{CastleView, "CastleView"},
		{Tower, "Tower"},
		{Cannon, "Cannon"},
		{Animated, "Animated"},
		{State(42), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestCamera_ZeroDeltaIsStable(t *testing.T) {
	for _, s := range []State{CastleView, Tower, Cannon} {
		t.Run(s.String(), func(t *testing.T) {
			c, _ := createTestCamera()
			c.SetState(s)
			pos := c.Position()

			c.UpdateCamera(pos, 0, 0)
			view, proj := c.ViewMatrix(), c.ProjMatrix()

			for i := 0; i < 100; i++ {
				c.UpdateCamera(pos, 0, 0)
			}

			assert.Equal(t, view, c.ViewMatrix())
			assert.Equal(t, proj, c.ProjMatrix())
		})
	}
}

func TestCamera_CannonPitchClamp(t *testing.T) {
	c, _ := createTestCamera()
	c.SetState(Cannon)

	for i := 0; i < 50; i++ {
		c.UpdateCamera(c.Position(), 0.01, 0.1)
		require.LessOrEqual(t, c.Pitch(), 0.0)
	}

	c.UpdateCamera(c.Position(), 0, -0.3)
	assert.InDelta(t, -0.3, c.Pitch(), 1e-12)

	c.UpdateCamera(c.Position(), 0, 1.0)
	assert.Equal(t, 0.0, c.Pitch())
}

func TestCamera_CannonMirrorsAim(t *testing.T) {
	c, _ := createTestCamera()
	aimer := &recordingAimer{}
	c.AttachCannon(aimer)

	c.UpdateCamera(c.Position(), 0.2, 0)
	assert.Equal(t, 0, aimer.calls, "only Cannon mode aims the barrel")

	c.SetState(Cannon)
	c.UpdateCamera(c.Position(), 0.2, -0.1)

	assert.Equal(t, 1, aimer.calls)
	assert.InDelta(t, 0.2, aimer.yaw, 1e-12)
	assert.InDelta(t, -0.1, aimer.pitch, 1e-12)
}

func TestCamera_PitchLimit(t *testing.T) {
	c, _ := createTestCamera()
	c.SetState(Tower)

	for i := 0; i < 40; i++ {
		c.UpdateCamera(c.Position(), 0, 0.1)
	}

	assert.Equal(t, PitchLimit, c.Pitch())
	for _, v := range c.ViewMatrix() {
		assert.False(t, math.IsNaN(v))
	}

	for i := 0; i < 80; i++ {
		c.UpdateCamera(c.Position(), 0, -0.1)
	}
	assert.Equal(t, -PitchLimit, c.Pitch())
}

func TestCamera_CastleViewOrbitKeepsTarget(t *testing.T) {
	c, _ := createTestCamera()
	target := c.Target()
	dist := c.Position().Sub(c.CastleReference()).Len()

	c.UpdateCamera(c.Position(), math.Pi/2, 0)

	assert.Equal(t, target, c.Target())
	assert.InDelta(t, dist, c.Position().Sub(c.CastleReference()).Len(), 1e-9)
	// (0,20,50) yawed a quarter turn about the origin lands on +X.
	assert.True(t, c.Position().ApproxEqualThreshold(mgl64.Vec3{50, 20, 0}, 1e-9))
}

func TestCamera_TowerRotatesTarget(t *testing.T) {
	c, _ := createTestCamera()
	c.SetState(Tower)
	c.SetTowerCenter(c.Position())
	pos := c.Position()
	reach := c.Target().Sub(pos).Len()

	c.UpdateCamera(pos, 0.3, 0.2)

	assert.True(t, pos.ApproxEqualThreshold(c.Position(), 1e-9))
	assert.InDelta(t, reach, c.Target().Sub(pos).Len(), 1e-9)
	assert.InDelta(t, 0.3, c.Yaw(), 1e-12)
	assert.InDelta(t, 0.2, c.Pitch(), 1e-12)
}

func TestCamera_TowerYawsAroundTowerCenter(t *testing.T) {
	c, _ := createTestCamera()
	c.SetState(Tower)
	c.SetTowerCenter(mgl64.Vec3{0, 20, 40})

	c.UpdateCamera(c.Position(), math.Pi, 0)

	assert.True(t, c.Position().ApproxEqualThreshold(mgl64.Vec3{0, 20, 30}, 1e-9))
}

func TestCamera_ProjectionFollowsViewport(t *testing.T) {
	c, vp := createTestCamera()
	before := c.ProjMatrix()

	vp.w, vp.h = 1600, 600
	c.UpdateCamera(c.Position(), 0, 0)

	assert.NotEqual(t, before, c.ProjMatrix())
	want := mgl64.Perspective(math.Pi/4, 1600.0/600.0, 0.1, 2000)
	assert.Equal(t, want, c.ProjMatrix())
}

func TestCamera_ViewMatrixFromPose(t *testing.T) {
	c, _ := createTestCamera()
	c.UpdateCamera(mgl64.Vec3{5, 6, 7}, 0, 0)

	want := mgl64.LookAtV(mgl64.Vec3{5, 6, 7}, c.Target(), WorldUp)
	assert.Equal(t, want, c.ViewMatrix())
}

func TestCamera_StraightDownDoesNotProduceNaN(t *testing.T) {
	c, _ := createTestCamera()
	c.Place(mgl64.Vec3{0, 50, 0}, mgl64.Vec3{0, 0, 0})

	for _, v := range c.ViewMatrix() {
		assert.False(t, math.IsNaN(v))
	}
}

func TestCamera_SetStateSameIsNoop(t *testing.T) {
	c, _ := createTestCamera()
	c.UpdateCamera(c.Position(), 0.4, 0.1)

	c.SetState(CastleView)

	assert.InDelta(t, 0.4, c.Yaw(), 1e-12)
	assert.InDelta(t, 0.1, c.Pitch(), 1e-12)

	c.SetState(Tower)
	assert.Equal(t, 0.0, c.Yaw())
	assert.Equal(t, 0.0, c.Pitch())
}

func TestCamera_ThirdPerson(t *testing.T) {
	c, _ := createTestCamera()
	follow := mgl64.Vec3{10, 5, 10}
	q := mgl64.QuatRotate(math.Pi/2, WorldUp)

	c.UpdateCameraThirdPerson(follow, q, mgl64.Vec3{0, 2, 10})

	assert.Equal(t, follow, c.Target())
	assert.True(t, c.Position().ApproxEqualThreshold(mgl64.Vec3{20, 7, 10}, 1e-9))
	assert.Equal(t, CastleView, c.State())
}

func TestCamera_SetRotationKeepsPose(t *testing.T) {
	c, _ := createTestCamera()
	c.SetState(Cannon)
	pos, target := c.Position(), c.Target()

	c.SetRotation(0.5, -0.2)

	assert.Equal(t, pos, c.Position())
	assert.Equal(t, target, c.Target())
	assert.Equal(t, 0.5, c.Yaw())
	assert.Equal(t, -0.2, c.Pitch())

	c.UpdateCamera(pos, 0, 0.5)
	assert.Equal(t, 0.0, c.Pitch(), "cannon clamp applies to the resumed pitch")
}
