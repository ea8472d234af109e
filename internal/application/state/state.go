package state

// ScreenState is the lifecycle phase of a screen on the navigation stack
type ScreenState int

const (
	TransitionOn ScreenState = iota
	Active
	TransitionOff
	Hidden
)

// String returns the string representation of the screen state
func (s ScreenState) String() string {
	switch s {
	case TransitionOn:
		return "TransitionOn"
	case Active:
		return "Active"
	case TransitionOff:
		return "TransitionOff"
	case Hidden:
		return "Hidden"
	default:
		return "Unknown"
	}
}

// Visible reports whether a screen in this state is drawn
func (s ScreenState) Visible() bool {
	return s != Hidden
}

// Focusable reports whether a screen in this state may own input
func (s ScreenState) Focusable() bool {
	return s == TransitionOn || s == Active
}
