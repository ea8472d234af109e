package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"github.com/younwookim/ballerburg/internal/application/game"
	"github.com/younwookim/ballerburg/internal/application/input"
	"github.com/younwookim/ballerburg/internal/application/replay"
	"github.com/younwookim/ballerburg/internal/application/screen"
	"github.com/younwookim/ballerburg/internal/application/screen/gameplay"
	"github.com/younwookim/ballerburg/internal/application/screen/menu"
	"github.com/younwookim/ballerburg/internal/infrastructure/config"
	"github.com/younwookim/ballerburg/internal/infrastructure/logging"
)

const settingsFileHint = config.SettingsFile

type options struct {
	record      string
	replay      string
	settingsDir string
	logFile     string
}

// app is the wired game plus what has to be flushed when it stops.
type app struct {
	cfg      *config.GameConfig
	settings *config.Settings
	log      zerolog.Logger

	manager  *screen.Manager
	game     *game.Game
	recorder *replay.Recorder
	replayer *replay.Replayer
	recordTo string

	closers []io.Closer
}

// newApp loads configuration, builds the screen stack with the main menu on
// it and wraps it in a host loop. live is the device source used unless a
// replay is given.
func newApp(configs fs.FS, opts options, console io.Writer, live input.Source) (*app, error) {
	loader := config.NewFSLoader(configs, "configs")
	cfg, err := loader.LoadGame()
	if err != nil {
		return nil, err
	}
	settings, err := config.LoadSettings(opts.settingsDir)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, settings: settings, recordTo: opts.record}

	var file io.Writer
	if opts.logFile != "" {
		f, err := os.Create(opts.logFile)
		if err != nil {
			return nil, fmt.Errorf("failed to create log file: %w", err)
		}
		a.closers = append(a.closers, f)
		file = f
	}
	a.log = logging.New(console, file, settings.LogLevel)

	src, err := a.inputSource(opts, live)
	if err != nil {
		_ = a.close()
		return nil, err
	}

	faces, err := menu.LoadFaces()
	if err != nil {
		_ = a.close()
		return nil, err
	}

	a.manager = screen.NewManager(input.New(src), a.log)
	deps := menu.Deps{
		Faces:       faces,
		Transitions: cfg.Transitions,
		Settings:    settings,
	}
	deps.NewGameplay = func() (screen.Screen, error) {
		g, err := gameplay.New(gameplay.Deps{
			Config:   cfg,
			Settings: settings,
			Menu:     deps,
			Log:      a.log,
		})
		if err != nil {
			return nil, err
		}
		return g, nil
	}
	if err := menu.ShowMainMenu(a.manager, deps); err != nil {
		_ = a.close()
		return nil, err
	}

	a.game, err = game.New(a.manager, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, a.log)
	if err != nil {
		_ = a.close()
		return nil, err
	}
	a.game.SetDT(1.0 / float64(cfg.Display.Framerate))
	if a.replayer != nil {
		// Playback must not drop frames when the window loses focus.
		a.game.SetFocusFunc(func() bool { return true })
	}

	a.log.Info().
		Int("players", settings.Players).
		Bool("animatedCamera", settings.AnimatedCamera).
		Msg("game ready")
	return a, nil
}

// close saves the recording, if any, and closes open files.
func (a *app) close() error {
	var errs []error
	if a.recorder != nil {
		a.recorder.Stop()
		if err := a.recorder.Save(a.recordTo); err != nil {
			errs = append(errs, fmt.Errorf("failed to save recording: %w", err))
		} else {
			a.log.Info().Str("file", a.recordTo).Int("frames", a.recorder.FrameCount()).Msg("recording saved")
		}
		a.recorder = nil
	}
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	a.closers = nil
	return errors.Join(errs...)
}
