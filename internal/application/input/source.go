package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Source polls the device state of one player slot.
type Source interface {
	Poll(player PlayerIndex) DeviceState
}

// EbitenSource reads the keyboard and standard-layout gamepads through ebiten.
// The keyboard belongs to the first slot; gamepads fill slots in connection order.
type EbitenSource struct {
	gamepads []ebiten.GamepadID
}

// NewEbitenSource creates an ebiten-backed source.
func NewEbitenSource() *EbitenSource {
	return &EbitenSource{}
}

// Poll reads the current state for player.
func (s *EbitenSource) Poll(player PlayerIndex) DeviceState {
	st := DeviceState{
		Keys:    make(map[ebiten.Key]bool),
		Buttons: make(map[ebiten.StandardGamepadButton]bool),
	}

	if player == PlayerOne {
		for _, k := range inpututil.AppendPressedKeys(nil) {
			st.Keys[k] = true
		}
		// Refresh the connection list once per frame, on the first slot.
		s.gamepads = ebiten.AppendGamepadIDs(s.gamepads[:0])
	}

	if int(player) >= len(s.gamepads) {
		return st
	}
	id := s.gamepads[player]
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return st
	}

	for b := ebiten.StandardGamepadButton(0); b <= ebiten.StandardGamepadButtonMax; b++ {
		if ebiten.IsStandardGamepadButtonPressed(id, b) {
			st.Buttons[b] = true
		}
	}
	st.LookX = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
	st.LookY = -ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)

	return st
}

// Script is a Source that plays back a fixed list of frames for one or more
// players, then reports idle devices. Useful for tests and demos.
type Script struct {
	frames [][MaxPlayers]DeviceState
	polled [MaxPlayers]int
}

// NewScript creates a script where frames[i][p] is player p's state on poll i.
func NewScript(frames ...[MaxPlayers]DeviceState) *Script {
	return &Script{frames: frames}
}

// Push appends a frame in which only the first player holds keys.
func (s *Script) Push(keys ...ebiten.Key) *Script {
	var f [MaxPlayers]DeviceState
	f[PlayerOne] = Keys(keys...)
	s.frames = append(s.frames, f)
	return s
}

// PushState appends a full frame.
func (s *Script) PushState(f [MaxPlayers]DeviceState) *Script {
	s.frames = append(s.frames, f)
	return s
}

// Poll implements Source.
func (s *Script) Poll(player PlayerIndex) DeviceState {
	i := s.polled[player]
	s.polled[player]++
	if i >= len(s.frames) {
		return DeviceState{}
	}
	return s.frames[i][player]
}

// Keys builds a device state holding the given keys.
func Keys(keys ...ebiten.Key) DeviceState {
	st := DeviceState{Keys: make(map[ebiten.Key]bool, len(keys))}
	for _, k := range keys {
		st.Keys[k] = true
	}
	return st
}

// Buttons builds a device state holding the given gamepad buttons.
func Buttons(buttons ...ebiten.StandardGamepadButton) DeviceState {
	st := DeviceState{Buttons: make(map[ebiten.StandardGamepadButton]bool, len(buttons))}
	for _, b := range buttons {
		st.Buttons[b] = true
	}
	return st
}
