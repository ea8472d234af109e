package config

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// GameConfig is the root config for game.json
type GameConfig struct {
	Display     DisplayConfig     `json:"display"`
	Transitions TransitionsConfig `json:"transitions"`
	Camera      CameraConfig      `json:"camera"`
	Cannonball  CannonballConfig  `json:"cannonball"`
	Castles     []CastleConfig    `json:"castles"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// TransitionConfig holds fade times in seconds
type TransitionConfig struct {
	On  float64 `json:"on"`
	Off float64 `json:"off"`
}

// OnDuration returns the fade-in time.
func (t TransitionConfig) OnDuration() time.Duration {
	return seconds(t.On)
}

// OffDuration returns the fade-out time.
func (t TransitionConfig) OffDuration() time.Duration {
	return seconds(t.Off)
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// TransitionsConfig configures fade times per screen kind
type TransitionsConfig struct {
	Background TransitionConfig `json:"background"`
	Menu       TransitionConfig `json:"menu"`
	Popup      TransitionConfig `json:"popup"`
	Gameplay   TransitionConfig `json:"gameplay"`
}

type CameraConfig struct {
	FieldOfViewDeg float64 `json:"fieldOfViewDeg"`
	NearClip       float64 `json:"nearClip"`
	FarClip        float64 `json:"farClip"`
	BezierStep     float64 `json:"bezierStep"`    // normalized time per frame
	RotationSpeed  float64 `json:"rotationSpeed"` // radians per second at full deflection

	// CastleViewOffset is where CastleView starts, relative to a castle's center
	CastleViewOffset Vec3 `json:"castleViewOffset"`
	// TowerEyeHeight lifts the Tower camera above the tower top
	TowerEyeHeight float64 `json:"towerEyeHeight"`
	// LookDistance is how far ahead of the eye Tower and Cannon targets start
	LookDistance float64 `json:"lookDistance"`
	// ChaseOffset places the chase camera behind a cannonball in flight
	ChaseOffset Vec3 `json:"chaseOffset"`
}

// FieldOfView returns the vertical field of view in radians.
func (c CameraConfig) FieldOfView() float64 {
	return c.FieldOfViewDeg * math.Pi / 180
}

type CannonballConfig struct {
	Gravity  float64 `json:"gravity"`
	MaxRange float64 `json:"maxRange"`
}

// CastleConfig describes one player's castle
type CastleConfig struct {
	Name   string        `json:"name"`
	Origin Vec3          `json:"origin"`
	Towers []TowerConfig `json:"towers"`
}

// TowerConfig positions a tower relative to its castle origin
type TowerConfig struct {
	Position Vec3          `json:"position"`
	Height   float64       `json:"height"`
	Cannon   *CannonConfig `json:"cannon,omitempty"`
}

type CannonConfig struct {
	Offset       Vec3    `json:"offset"`
	HeadingDeg   float64 `json:"headingDeg"`
	ElevationDeg float64 `json:"elevationDeg"`
	MuzzleSpeed  float64 `json:"muzzleSpeed"`
}

// Vec3 is a JSON friendly vector
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Vec converts to a math vector.
func (v Vec3) Vec() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}
