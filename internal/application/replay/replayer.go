package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/ballerburg/internal/application/input"
)

// Replayer is an input.Source that plays back recorded frames, then reports
// idle devices.
type Replayer struct {
	data   ReplayData
	frames [][input.MaxPlayers]input.DeviceState
	polled [input.MaxPlayers]int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	r := &Replayer{
		data:   data,
		frames: make([][input.MaxPlayers]input.DeviceState, len(data.Frames)),
	}
	for i, f := range data.Frames {
		for _, p := range f.P {
			if p.I >= 0 && p.I < input.MaxPlayers {
				r.frames[i][p.I] = p.device()
			}
		}
	}
	return r
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Poll implements input.Source.
func (r *Replayer) Poll(player input.PlayerIndex) input.DeviceState {
	if player < input.PlayerOne || player >= input.MaxPlayers {
		return input.DeviceState{}
	}
	i := r.polled[player]
	r.polled[player]++
	if i >= len(r.frames) {
		return input.DeviceState{}
	}
	return r.frames[i][player]
}

// CurrentFrame returns the number of frames played for the first player
func (r *Replayer) CurrentFrame() int {
	return r.polled[input.PlayerOne]
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.frames)
}

// Done reports whether every recorded frame has been played.
func (r *Replayer) Done() bool {
	return r.CurrentFrame() >= len(r.frames)
}

// Data returns the replay being played.
func (r *Replayer) Data() ReplayData {
	return r.data
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.polled = [input.MaxPlayers]int{}
}
