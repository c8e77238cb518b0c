package storage

import (
	"testing"
	"time"

	"github.com/quadkey/quadchess/internal/board"
	"github.com/quadkey/quadchess/internal/engine"
	"github.com/quadkey/quadchess/internal/game"
)

func openTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return s
}

func TestPreferencesRoundTrip(t *testing.T) {
	s := openTestStorage(t)

	// Fresh database yields the defaults.
	prefs, err := s.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences: %v", err)
	}
	if prefs.Mode != game.HumanVsComputer || prefs.Difficulty != engine.Medium {
		t.Errorf("defaults = %+v", prefs)
	}

	prefs.Mode = game.ComputerVsComputer
	prefs.Difficulty = engine.Hard
	prefs.MoveDelayMS = 250
	if err := s.SavePreferences(prefs); err != nil {
		t.Fatalf("SavePreferences: %v", err)
	}

	loaded, err := s.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences: %v", err)
	}
	if loaded.Mode != game.ComputerVsComputer || loaded.Difficulty != engine.Hard || loaded.MoveDelayMS != 250 {
		t.Errorf("loaded = %+v", loaded)
	}
	if loaded.LastPlayed.IsZero() {
		t.Error("SavePreferences must stamp LastPlayed")
	}
}

func TestRecordGame(t *testing.T) {
	s := openTestStorage(t)

	games := []GameResult{
		{Mode: game.HumanVsComputer, Status: board.StatusCheckmate, Winner: board.White, Duration: time.Minute},
		{Mode: game.HumanVsComputer, Status: board.StatusCheckmate, Winner: board.Black, Duration: 2 * time.Minute},
		{Mode: game.ComputerVsComputer, Status: board.StatusStalemate, Duration: 30 * time.Second},
	}
	for _, g := range games {
		if err := s.RecordGame(g); err != nil {
			t.Fatalf("RecordGame: %v", err)
		}
	}

	stats, err := s.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats: %v", err)
	}
	if stats.GamesPlayed != 3 {
		t.Errorf("GamesPlayed = %d, want 3", stats.GamesPlayed)
	}
	if stats.WhiteWins != 1 || stats.BlackWins != 1 || stats.Stalemates != 1 {
		t.Errorf("outcomes = %d/%d/%d, want 1/1/1", stats.WhiteWins, stats.BlackWins, stats.Stalemates)
	}
	if stats.GamesByMode["HumanVsComputer"] != 2 {
		t.Errorf("GamesByMode = %v", stats.GamesByMode)
	}
	if stats.TotalPlayTime != 3*time.Minute+30*time.Second {
		t.Errorf("TotalPlayTime = %v", stats.TotalPlayTime)
	}
}

func TestDatabaseDirFallsBackToDataDir(t *testing.T) {
	dir, err := DatabaseDir(t.TempDir())
	if err != nil {
		t.Fatalf("DatabaseDir: %v", err)
	}
	if dir == "" {
		t.Error("DatabaseDir returned empty path")
	}
}
