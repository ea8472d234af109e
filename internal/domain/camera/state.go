package camera

// State is the camera mode. It decides how yaw, pitch and position are interpreted.
type State int

const (
	// CastleView orbits the camera around the castle reference point.
	CastleView State = iota
	// Tower anchors the camera on a tower and rotates the look-at target.
	Tower
	// Cannon behaves like Tower, clamps pitch to the horizon and aims the barrel.
	Cannon
	// Animated overrides the other modes while a Bezier transition runs.
	Animated
)

// String returns the string representation of the camera state
func (s State) String() string {
	switch s {
	case CastleView:
		return "CastleView"
	case Tower:
		return "Tower"
	case Cannon:
		return "Cannon"
	case Animated:
		return "Animated"
	default:
		return "Unknown"
	}
}
