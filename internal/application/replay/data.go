package replay

import (
	"maps"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/ballerburg/internal/application/input"
	"github.com/younwookim/ballerburg/internal/infrastructure/config"
)

// Version is written into every recording.
const Version = "1.0"

// FrameInput records the devices of every player with input on one frame
type FrameInput struct {
	F int           `json:"f"`           // Frame number
	P []PlayerInput `json:"p,omitempty"` // Players with input
}

// PlayerInput is one player's device state
type PlayerInput struct {
	I  int                            `json:"i"`            // Player slot
	K  []ebiten.Key                   `json:"k,omitempty"`  // Held keys
	B  []ebiten.StandardGamepadButton `json:"b,omitempty"`  // Held buttons
	LX float64                        `json:"lx,omitempty"` // Right stick X
	LY float64                        `json:"ly,omitempty"` // Right stick Y
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string           `json:"version"`
	StartTime string           `json:"startTime"`
	Settings  *config.Settings `json:"settings,omitempty"`
	Frames    []FrameInput     `json:"frames"`
}

func fromDevice(player input.PlayerIndex, st input.DeviceState) (PlayerInput, bool) {
	in := PlayerInput{I: int(player), LX: st.LookX, LY: st.LookY}
	for _, k := range slices.Sorted(maps.Keys(st.Keys)) {
		if st.Keys[k] {
			in.K = append(in.K, k)
		}
	}
	for _, b := range slices.Sorted(maps.Keys(st.Buttons)) {
		if st.Buttons[b] {
			in.B = append(in.B, b)
		}
	}
	empty := len(in.K) == 0 && len(in.B) == 0 && in.LX == 0 && in.LY == 0
	return in, !empty
}

func (p PlayerInput) device() input.DeviceState {
	st := input.Keys(p.K...)
	st.Buttons = input.Buttons(p.B...).Buttons
	st.LookX = p.LX
	st.LookY = p.LY
	return st
}
