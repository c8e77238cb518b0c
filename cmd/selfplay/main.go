// selfplay runs headless computer-vs-computer games, useful for smoke
// testing the engine and for watching it play without the GUI.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/quadkey/quadchess/internal/board"
	"github.com/quadkey/quadchess/internal/engine"
	"github.com/quadkey/quadchess/internal/game"
	"github.com/quadkey/quadchess/internal/obslog"
)

func main() {
	difficulty := flag.String("difficulty", "medium", "easy, medium or hard")
	startFEN := flag.String("fen", board.StartFEN, "starting position in FEN")
	maxPlies := flag.Int("max-plies", 300, "abort the game after this many plies")
	quiet := flag.Bool("quiet", false, "suppress per-move output")
	logLevel := flag.String("log-level", "warn", "zap log level")
	flag.Parse()

	if err := obslog.Init(obslog.Options{Level: *logLevel}); err != nil {
		log.Fatal(err)
	}
	defer obslog.Sync()

	var d engine.Difficulty
	switch strings.ToLower(*difficulty) {
	case "easy":
		d = engine.Easy
	case "medium":
		d = engine.Medium
	case "hard":
		d = engine.Hard
	default:
		log.Fatalf("unknown difficulty: %q", *difficulty)
	}

	pos, err := board.ParseFEN(*startFEN)
	if err != nil {
		log.Fatalf("bad starting position: %v", err)
	}

	cfg := game.AIConfig{Difficulty: d, MoveDelay: 0}
	ctrl, err := game.NewControllerFrom(game.ComputerVsComputer, pos, cfg, obslog.L())
	if err != nil {
		log.Fatalf("cannot start game: %v", err)
	}

	plies := 0
	for ctrl.State() != game.StateGameOver && plies < *maxPlies {
		if !ctrl.Step() {
			continue
		}
		session := ctrl.Session()
		if len(session.History) > plies {
			plies = len(session.History)
			if !*quiet {
				entry := session.History[plies-1]
				fmt.Printf("%3d. %-5s %-7s %s\n", plies, entry.Move, entry.Mover, entry.Status)
			}
		}
	}

	session := ctrl.Session()
	fmt.Printf("\nResult after %d plies: %s\n", len(session.History), session.Status)
	if winner, ok := session.Winner(); ok {
		fmt.Printf("Winner: %s\n", winner)
	} else if session.Status == board.StatusStalemate {
		fmt.Println("Draw by stalemate")
	} else if plies >= *maxPlies {
		fmt.Println("Aborted: ply limit reached")
	}
}
