// Package input keeps the current and previous device state for every
// player slot and answers edge-triggered questions about it.
//
// Call Update once per frame before anything reads the snapshot.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// MaxPlayers is the number of logical player slots.
const MaxPlayers = 4

// PlayerIndex identifies a player slot.
type PlayerIndex int

const (
	PlayerOne PlayerIndex = iota
	PlayerTwo
	PlayerThree
	PlayerFour
)

// AnyPlayer makes a query OR across all slots.
const AnyPlayer PlayerIndex = -1

// DeviceState is one slot's keyboard and gamepad state for a single frame.
type DeviceState struct {
	Keys    map[ebiten.Key]bool
	Buttons map[ebiten.StandardGamepadButton]bool

	// LookX and LookY are the right stick, up and right positive.
	LookX float64
	LookY float64
}

// Snapshot holds this frame's and last frame's device states.
type Snapshot struct {
	source   Source
	current  [MaxPlayers]DeviceState
	previous [MaxPlayers]DeviceState
}

// New creates a snapshot polling src.
func New(src Source) *Snapshot {
	return &Snapshot{source: src}
}

// Update rolls the current state into previous and polls the source.
func (s *Snapshot) Update() {
	s.previous = s.current
	for p := PlayerOne; p < MaxPlayers; p++ {
		s.current[p] = s.source.Poll(p)
	}
}

// Current returns this frame's state for player.
func (s *Snapshot) Current(player PlayerIndex) DeviceState {
	if !valid(player) {
		return DeviceState{}
	}
	return s.current[player]
}

// Previous returns last frame's state for player.
func (s *Snapshot) Previous(player PlayerIndex) DeviceState {
	if !valid(player) {
		return DeviceState{}
	}
	return s.previous[player]
}

func valid(p PlayerIndex) bool {
	return p >= PlayerOne && p < MaxPlayers
}

// players returns the slots a query covers.
func players(who PlayerIndex) []PlayerIndex {
	if who == AnyPlayer {
		return []PlayerIndex{PlayerOne, PlayerTwo, PlayerThree, PlayerFour}
	}
	if !valid(who) {
		return nil
	}
	return []PlayerIndex{who}
}

// IsNewKeyPress reports whether key went down this frame for who, and which
// slot pressed it.
func (s *Snapshot) IsNewKeyPress(key ebiten.Key, who PlayerIndex) (PlayerIndex, bool) {
	for _, p := range players(who) {
		if s.current[p].Keys[key] && !s.previous[p].Keys[key] {
			return p, true
		}
	}
	return who, false
}

// IsNewButtonPress reports whether button went down this frame for who, and
// which slot pressed it.
func (s *Snapshot) IsNewButtonPress(button ebiten.StandardGamepadButton, who PlayerIndex) (PlayerIndex, bool) {
	for _, p := range players(who) {
		if s.current[p].Buttons[button] && !s.previous[p].Buttons[button] {
			return p, true
		}
	}
	return who, false
}

// IsKeyDown reports whether key is held by who.
func (s *Snapshot) IsKeyDown(key ebiten.Key, who PlayerIndex) bool {
	for _, p := range players(who) {
		if s.current[p].Keys[key] {
			return true
		}
	}
	return false
}

// IsButtonDown reports whether button is held by who.
func (s *Snapshot) IsButtonDown(button ebiten.StandardGamepadButton, who PlayerIndex) bool {
	for _, p := range players(who) {
		if s.current[p].Buttons[button] {
			return true
		}
	}
	return false
}

// Look returns the summed right-stick deflection of who.
func (s *Snapshot) Look(who PlayerIndex) (x, y float64) {
	for _, p := range players(who) {
		x += s.current[p].LookX
		y += s.current[p].LookY
	}
	return x, y
}

func (s *Snapshot) newKeyOrButton(key ebiten.Key, button ebiten.StandardGamepadButton, who PlayerIndex) (PlayerIndex, bool) {
	if p, ok := s.IsNewKeyPress(key, who); ok {
		return p, true
	}
	return s.IsNewButtonPress(button, who)
}

// MenuUp checks for a "menu up" input action.
func (s *Snapshot) MenuUp(who PlayerIndex) bool {
	_, ok := s.newKeyOrButton(ebiten.KeyArrowUp, ebiten.StandardGamepadButtonLeftTop, who)
	return ok
}

// MenuDown checks for a "menu down" input action.
func (s *Snapshot) MenuDown(who PlayerIndex) bool {
	_, ok := s.newKeyOrButton(ebiten.KeyArrowDown, ebiten.StandardGamepadButtonLeftBottom, who)
	return ok
}

// MenuLeft checks for a "menu left" input action.
func (s *Snapshot) MenuLeft(who PlayerIndex) bool {
	_, ok := s.newKeyOrButton(ebiten.KeyArrowLeft, ebiten.StandardGamepadButtonLeftLeft, who)
	return ok
}

// MenuRight checks for a "menu right" input action.
func (s *Snapshot) MenuRight(who PlayerIndex) bool {
	_, ok := s.newKeyOrButton(ebiten.KeyArrowRight, ebiten.StandardGamepadButtonLeftRight, who)
	return ok
}

// MenuSelect checks for a "menu select" input action and reports the slot.
func (s *Snapshot) MenuSelect(who PlayerIndex) (PlayerIndex, bool) {
	if p, ok := s.IsNewKeyPress(ebiten.KeySpace, who); ok {
		return p, true
	}
	return s.newKeyOrButton(ebiten.KeyEnter, ebiten.StandardGamepadButtonRightBottom, who)
}

// MenuCancel checks for a "menu cancel" input action and reports the slot.
func (s *Snapshot) MenuCancel(who PlayerIndex) (PlayerIndex, bool) {
	if p, ok := s.IsNewKeyPress(ebiten.KeyEscape, who); ok {
		return p, true
	}
	if p, ok := s.IsNewButtonPress(ebiten.StandardGamepadButtonRightRight, who); ok {
		return p, true
	}
	return s.IsNewButtonPress(ebiten.StandardGamepadButtonCenterLeft, who)
}

// PauseGame checks for a "pause the game" input action.
func (s *Snapshot) PauseGame(who PlayerIndex) bool {
	if _, ok := s.IsNewKeyPress(ebiten.KeyEscape, who); ok {
		return true
	}
	if _, ok := s.IsNewButtonPress(ebiten.StandardGamepadButtonCenterLeft, who); ok {
		return true
	}
	_, ok := s.IsNewButtonPress(ebiten.StandardGamepadButtonCenterRight, who)
	return ok
}
