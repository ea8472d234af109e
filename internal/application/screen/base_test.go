package screen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/ballerburg/internal/application/state"
	"github.com/younwookim/ballerburg/internal/domain/errs"
)

func createTestBase(on, off time.Duration) *Base {
	b := &Base{TransitionOnTime: on, TransitionOffTime: off}
	b.bind(nil, nil)
	return b
}

func TestBase_BindStartsTransitionOn(t *testing.T) {
	b := createTestBase(time.Second, time.Second)
	assert.Equal(t, state.TransitionOn, b.State())
	assert.Equal(t, 1.0, b.TransitionPosition())

	instant := createTestBase(0, time.Second)
	assert.Equal(t, state.Active, instant.State())
	assert.Equal(t, 0.0, instant.TransitionPosition())
}

func TestBase_TransitionOnReachesActive(t *testing.T) {
	b := createTestBase(time.Second, time.Second)

	for i := 0; i < 3; i++ {
		b.advance(0.25, false, false)
		assert.Equal(t, state.TransitionOn, b.State())
	}
	assert.Equal(t, 0.25, b.TransitionPosition())

	b.advance(0.25, false, false)
	assert.Equal(t, state.Active, b.State())
	assert.Equal(t, 0.0, b.TransitionPosition())
}

func TestBase_CoveredHidesThenReturns(t *testing.T) {
	b := createTestBase(0, time.Second)
	b.TransitionOnTime = time.Second

	b.advance(0.25, true, true)
	assert.Equal(t, state.TransitionOff, b.State())
	assert.Equal(t, 0.25, b.TransitionPosition())

	for i := 0; i < 3; i++ {
		b.advance(0.25, true, true)
	}
	assert.Equal(t, state.Hidden, b.State())
	assert.Equal(t, 1.0, b.TransitionPosition())

	b.advance(0.25, false, false)
	assert.Equal(t, state.TransitionOn, b.State())

	for i := 0; i < 3; i++ {
		b.advance(0.25, false, false)
	}
	assert.Equal(t, state.Active, b.State())
}

func TestBase_PositionStaysInBounds(t *testing.T) {
	b := createTestBase(300*time.Millisecond, 700*time.Millisecond)
	check := func() {
		require.GreaterOrEqual(t, b.TransitionPosition(), 0.0)
		require.LessOrEqual(t, b.TransitionPosition(), 1.0)
	}

	for frame := 0; frame < 600; frame++ {
		covered := (frame/45)%2 == 1
		b.advance(1.0/60.0, covered, covered)
		check()
	}

	b.ExitScreen()
	for frame := 0; frame < 120; frame++ {
		b.advance(1.0/60.0, false, false)
		check()
	}
	assert.True(t, b.removePending)
}

func TestBase_LargeStepClamps(t *testing.T) {
	b := createTestBase(time.Millisecond, time.Millisecond)

	b.advance(10, false, false)
	assert.Equal(t, 0.0, b.TransitionPosition())

	b.advance(10, false, true)
	assert.Equal(t, 1.0, b.TransitionPosition())
	assert.Equal(t, state.Hidden, b.State())
}

func TestBase_TransitionAlpha(t *testing.T) {
	tests := []struct {
		position float64
		expected uint8
	}{
		{0, 255},
		{0.25, 192},
		{0.5, 128},
		{1, 0},
	}

	for _, tt := range tests {
		b := &Base{position: tt.position}
		assert.Equal(t, tt.expected, b.TransitionAlpha(), "position %v", tt.position)
	}
}

func TestBase_ExitingWithoutManagerTransitionsOff(t *testing.T) {
	b := createTestBase(0, time.Second)

	b.ExitScreen()
	assert.True(t, b.IsExiting())

	for i := 0; i < 3; i++ {
		b.advance(0.25, false, false)
		assert.Equal(t, state.TransitionOff, b.State())
		assert.False(t, b.removePending)
	}

	b.advance(0.25, false, false)
	assert.True(t, b.removePending)
}

func TestBase_ExitingOverridesCoverAndFocus(t *testing.T) {
	b := createTestBase(0, time.Second)
	b.ExitScreen()

	b.advance(0.25, false, false)
	assert.Equal(t, state.TransitionOff, b.State())
	assert.Equal(t, 0.25, b.TransitionPosition())
}

func TestBase_IgnoreCoverStaysActive(t *testing.T) {
	b := createTestBase(0, 0)
	b.IgnoreCover = true

	for i := 0; i < 10; i++ {
		b.advance(1.0/60.0, true, true)
	}

	assert.Equal(t, state.Active, b.State())
	assert.False(t, b.IsActive(), "still loses focus to the screen above")
}

func TestBase_HandleInputRejectsNil(t *testing.T) {
	b := &Base{}
	err := b.HandleInput(nil)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}
