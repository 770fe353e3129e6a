// Package main provides the entry point for the Anatomy Mapper application.
package main

import (
	"os"
	"time"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"

	"anatomy-mapper/internal/app"
	"anatomy-mapper/internal/version"
	"anatomy-mapper/ui/mainwindow"
	"anatomy-mapper/ui/prefs"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()
	log.Info().
		Str("version", version.Version).
		Str("commit", version.GitCommit).
		Msg("starting anatomy mapper")

	fyneApp := fyneapp.NewWithID("anatomy-mapper")
	fyneApp.Settings().SetTheme(&app.ClinicalTheme{})

	appState := app.NewState(log)
	appPrefs := prefs.Load()

	win := mainwindow.New(fyneApp, appState, appPrefs, log)

	// an optional model path argument overrides the restored asset
	if len(os.Args) > 1 {
		win.OpenModel(os.Args[1])
	}

	win.ShowAndRun()
}
