// quadchess - a four-key chess game built with Ebitengine
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/quadkey/quadchess/internal/config"
	"github.com/quadkey/quadchess/internal/obslog"
	"github.com/quadkey/quadchess/internal/storage"
	"github.com/quadkey/quadchess/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to quadchess.yaml (default: ./quadchess.yaml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	if err := obslog.Init(obslog.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	}); err != nil {
		log.Fatal(err)
	}
	defer obslog.Sync()
	logger := obslog.L()

	store, err := storage.Open(cfg.DataDir)
	if err != nil {
		// Preferences are a convenience; the game runs without them.
		logger.Warn("preference store unavailable", zap.Error(err))
		store = nil
	} else {
		defer store.Close()
	}

	mode, err := cfg.GameMode()
	if err != nil {
		log.Fatal(err)
	}

	app := ui.NewApp(cfg.AIConfig(), mode, store, logger)

	w, h := app.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("quadchess")

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
