package config

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/ballerburg/internal/domain/errs"
)

func TestLoader_LoadGame(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadGame()
	require.NoError(t, err)

	assert.Equal(t, 960, cfg.Display.ScreenWidth)
	assert.Equal(t, 540, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 0.01, cfg.Camera.BezierStep)
	assert.InDelta(t, 0.7853981633974483, cfg.Camera.FieldOfView(), 1e-12)
	assert.Len(t, cfg.Castles, 4)

	west := cfg.Castles[0]
	assert.Equal(t, "Westburg", west.Name)
	assert.Equal(t, -300.0, west.Origin.X)
	require.Len(t, west.Towers, 3)
	require.NotNil(t, west.Towers[2].Cannon)
	assert.Equal(t, 80.0, west.Towers[2].Cannon.MuzzleSpeed)
}

func TestTransitionConfig_Durations(t *testing.T) {
	tc := TransitionConfig{On: 0.5, Off: 0.25}

	assert.Equal(t, 500*time.Millisecond, tc.OnDuration())
	assert.Equal(t, 250*time.Millisecond, tc.OffDuration())
	assert.Equal(t, time.Duration(0), TransitionConfig{}.OnDuration())
}

func TestLoader_LoadGameErrors(t *testing.T) {
	valid := `{
		"display": {"screenWidth": 320, "screenHeight": 240, "framerate": 60},
		"camera": {"nearClip": 0.1, "farClip": 100},
		"castles": [
			{"name": "a", "towers": [{"height": 10}]},
			{"name": "b", "towers": [{"height": 10}]}
		]
	}`

	tests := []struct {
		name    string
		files   fstest.MapFS
		wantErr error
	}{
		{
			name:  "valid",
			files: fstest.MapFS{"game.json": {Data: []byte(valid)}},
		},
		{
			name:  "missing file",
			files: fstest.MapFS{},
		},
		{
			name:  "malformed json",
			files: fstest.MapFS{"game.json": {Data: []byte(`{"display":`)}},
		},
		{
			name: "single castle",
			files: fstest.MapFS{"game.json": {Data: []byte(`{
				"display": {"screenWidth": 320, "screenHeight": 240, "framerate": 60},
				"camera": {"nearClip": 0.1, "farClip": 100},
				"castles": [{"name": "a", "towers": [{"height": 10}]}]
			}`)}},
			wantErr: errs.ErrInvalidArgument,
		},
		{
			name: "castle without towers",
			files: fstest.MapFS{"game.json": {Data: []byte(`{
				"display": {"screenWidth": 320, "screenHeight": 240, "framerate": 60},
				"camera": {"nearClip": 0.1, "farClip": 100},
				"castles": [{"name": "a", "towers": [{"height": 10}]}, {"name": "b"}]
			}`)}},
			wantErr: errs.ErrInvalidArgument,
		},
		{
			name: "bad clip planes",
			files: fstest.MapFS{"game.json": {Data: []byte(`{
				"display": {"screenWidth": 320, "screenHeight": 240, "framerate": 60},
				"camera": {"nearClip": 10, "farClip": 1},
				"castles": [{"name": "a", "towers": [{}]}, {"name": "b", "towers": [{}]}]
			}`)}},
			wantErr: errs.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewFSLoader(tt.files, "configs").LoadGame()

			if tt.name == "valid" {
				require.NoError(t, err)
				assert.Len(t, cfg.Castles, 2)
				return
			}
			require.Error(t, err)
			assert.Nil(t, cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
