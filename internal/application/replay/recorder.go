package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/ballerburg/internal/application/input"
	"github.com/younwookim/ballerburg/internal/infrastructure/config"
)

// Recorder is an input.Source that records everything it passes through
// from the wrapped source.
type Recorder struct {
	src       input.Source
	data      ReplayData
	recording bool
}

// NewRecorder wraps src. settings, if given, is stored so a replay can run
// with the same options.
func NewRecorder(src input.Source, settings *config.Settings) *Recorder {
	var saved *config.Settings
	if settings != nil {
		s := *settings
		saved = &s
	}
	return &Recorder{
		src: src,
		data: ReplayData{
			Version:   Version,
			StartTime: time.Now().Format(time.RFC3339),
			Settings:  saved,
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
	}
}

// Poll implements input.Source. A poll of the first player starts a frame.
func (r *Recorder) Poll(player input.PlayerIndex) input.DeviceState {
	st := r.src.Poll(player)
	if !r.recording {
		return st
	}

	if player == input.PlayerOne || len(r.data.Frames) == 0 {
		r.data.Frames = append(r.data.Frames, FrameInput{F: len(r.data.Frames)})
	}
	if in, ok := fromDevice(player, st); ok {
		last := &r.data.Frames[len(r.data.Frames)-1]
		last.P = append(last.P, in)
	}
	return st
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording; input still passes through.
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded data.
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
