package main

import (
	"embed"
	"flag"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/younwookim/ballerburg/internal/application/input"
)

//go:embed configs
var configFS embed.FS

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded session instead of reading devices")
	settingsFlag := flag.String("settings", ".", "Directory holding "+settingsFileHint)
	logFlag := flag.String("log", "", "Also write the log to this file")
	flag.Parse()

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get config subfs")
	}

	a, err := newApp(fsys, options{
		record:      *recordFlag,
		replay:      *replayFlag,
		settingsDir: *settingsFlag,
		logFile:     *logFlag,
	}, os.Stderr, input.NewEbitenSource())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start")
	}

	// Set up ebiten
	display := a.cfg.Display
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Ballerburg")
	ebiten.SetTPS(display.Framerate)

	// Run game
	runErr := ebiten.RunGame(a.game)
	if err := a.close(); err != nil {
		a.log.Error().Err(err).Msg("shutdown")
	}
	if runErr != nil {
		a.log.Fatal().Err(runErr).Msg("game stopped")
	}
}
