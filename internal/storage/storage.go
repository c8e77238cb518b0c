package storage

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/quadkey/quadchess/internal/board"
	"github.com/quadkey/quadchess/internal/engine"
	"github.com/quadkey/quadchess/internal/game"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
)

// Preferences stores the user-facing settings the start menu seeds from.
type Preferences struct {
	Mode        game.Mode         `json:"mode"`
	Difficulty  engine.Difficulty `json:"difficulty"`
	MoveDelayMS int               `json:"move_delay_ms"`
	LastPlayed  time.Time         `json:"last_played"`
}

// DefaultPreferences returns the stock settings.
func DefaultPreferences() *Preferences {
	return &Preferences{
		Mode:        game.HumanVsComputer,
		Difficulty:  engine.Medium,
		MoveDelayMS: 1000,
	}
}

// Stats accumulates finished-game counters.
type Stats struct {
	GamesPlayed   int            `json:"games_played"`
	WhiteWins     int            `json:"white_wins"`
	BlackWins     int            `json:"black_wins"`
	Stalemates    int            `json:"stalemates"`
	GamesByMode   map[string]int `json:"games_by_mode"`
	TotalPlayTime time.Duration  `json:"total_play_time"`
}

// NewStats returns empty statistics.
func NewStats() *Stats {
	return &Stats{
		GamesByMode: make(map[string]int),
	}
}

// GameResult describes one finished session for the stats ledger.
type GameResult struct {
	Mode     game.Mode
	Status   board.Status
	Winner   board.Color // meaningful only for checkmate
	Duration time.Duration
}

// Storage wraps BadgerDB for persistent storage.
type Storage struct {
	db *badger.DB
}

// Open opens (or creates) the preference database under root. An empty root
// uses the per-user data directory.
func Open(root string) (*Storage, error) {
	dbDir, err := DatabaseDir(root)
	if err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil // Disable badger's own logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Storage{db: db}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreferences saves user preferences, stamping LastPlayed.
func (s *Storage) SavePreferences(prefs *Preferences) error {
	prefs.LastPlayed = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads user preferences, returning defaults if not found.
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if err == badger.ErrKeyNotFound {
			return nil // Use defaults
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})
	return prefs, err
}

// LoadStats loads game statistics, returning empty stats if not found.
func (s *Storage) LoadStats() (*Stats, error) {
	stats := NewStats()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil // Use empty stats
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})
	if stats.GamesByMode == nil {
		stats.GamesByMode = make(map[string]int)
	}
	return stats, err
}

// RecordGame folds one finished game into the statistics.
func (s *Storage) RecordGame(result GameResult) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.GamesPlayed++
	stats.TotalPlayTime += result.Duration
	stats.GamesByMode[result.Mode.String()]++

	switch result.Status {
	case board.StatusCheckmate:
		if result.Winner == board.White {
			stats.WhiteWins++
		} else {
			stats.BlackWins++
		}
	case board.StatusStalemate:
		stats.Stalemates++
	}

	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}
