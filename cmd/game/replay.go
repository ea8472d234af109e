package main

import (
	"github.com/younwookim/ballerburg/internal/application/input"
	"github.com/younwookim/ballerburg/internal/application/replay"
)

// inputSource picks where input comes from: a recorded session, or the live
// devices, recorded when asked to. A recording carries the settings it was
// made with; they replace the loaded ones except for the log level.
func (a *app) inputSource(opts options, live input.Source) (input.Source, error) {
	if opts.replay != "" {
		data, err := replay.LoadReplay(opts.replay)
		if err != nil {
			return nil, err
		}
		if data.Settings != nil {
			level := a.settings.LogLevel
			*a.settings = *data.Settings
			a.settings.LogLevel = level
		}
		a.replayer = replay.NewReplayer(*data)
		a.log.Info().
			Str("file", opts.replay).
			Int("frames", a.replayer.TotalFrames()).
			Msg("replaying session")
		return a.replayer, nil
	}

	if opts.record != "" {
		a.recorder = replay.NewRecorder(live, a.settings)
		a.log.Info().Str("file", opts.record).Msg("recording enabled")
		return a.recorder, nil
	}
	return live, nil
}
