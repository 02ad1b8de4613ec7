package storage

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"

	"github.com/hailam/othelloplay/internal/board"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
	keyFirstLaunch = "first_launch"
)

// GameMode represents the game mode
type GameMode int

const (
	ModeHumanVsHuman GameMode = iota
	ModeHumanVsComputer
)

// String returns the short mode key used in statistics.
func (m GameMode) String() string {
	if m == ModeHumanVsComputer {
		return "hvc"
	}
	return "hvh"
}

// Difficulty represents AI difficulty level
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// String returns the difficulty key used in statistics.
func (d Difficulty) String() string {
	switch d {
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return "easy"
	}
}

// UserPreferences stores user settings
type UserPreferences struct {
	PlayerNames  [board.NumPlayers]string `json:"player_names"`
	Difficulty   Difficulty               `json:"difficulty"`
	GameMode     GameMode                 `json:"game_mode"`
	HumanSide    board.Player             `json:"human_side"` // side the human plays against the computer
	SoundEnabled bool                     `json:"sound_enabled"`
	LastPlayed   time.Time                `json:"last_played"`
}

// DefaultPreferences returns default user preferences
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{
		PlayerNames:  [board.NumPlayers]string{"Player 1", "Player 2"},
		Difficulty:   DifficultyEasy,
		GameMode:     ModeHumanVsHuman,
		HumanSide:    board.Player1,
		SoundEnabled: true,
		LastPlayed:   time.Now(),
	}
}

// GameStats stores lifetime statistics. Board positions are never stored.
type GameStats struct {
	GamesPlayed   int                   `json:"games_played"`
	Wins          [board.NumPlayers]int `json:"wins"`
	Ties          int                   `json:"ties"`
	MatchesWon    [board.NumPlayers]int `json:"matches_won"`
	WinsByMode    map[string]int        `json:"wins_by_mode"`
	HumanWinsDiff map[string]int        `json:"human_wins_by_difficulty"`
	TotalPlayTime time.Duration         `json:"total_play_time"`
	LongestGame   time.Duration         `json:"longest_game"`
}

// NewGameStats returns empty game statistics
func NewGameStats() *GameStats {
	return &GameStats{
		WinsByMode:    make(map[string]int),
		HumanWinsDiff: make(map[string]int),
	}
}

// GameResult represents the result of a completed game
type GameResult struct {
	Outcome    board.Outcome
	Mode       GameMode
	Difficulty Difficulty
	HumanSide  board.Player // only read in ModeHumanVsComputer
	Duration   time.Duration
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage opens the store in the platform data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Open opens a store in dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "open database %s", dir)
	}

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// IsFirstLaunch returns true if this is the first launch
func (s *Storage) IsFirstLaunch() (bool, error) {
	firstLaunch := true

	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(keyFirstLaunch))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		firstLaunch = false
		return nil
	})

	return firstLaunch, errors.Wrap(err, "read first launch")
}

// MarkFirstLaunchComplete marks that first launch setup is complete
func (s *Storage) MarkFirstLaunchComplete() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyFirstLaunch), []byte("done"))
	})
}

// SavePreferences saves user preferences
func (s *Storage) SavePreferences(prefs *UserPreferences) error {
	prefs.LastPlayed = time.Now()
	return s.put(keyPreferences, prefs)
}

// LoadPreferences loads user preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*UserPreferences, error) {
	prefs := DefaultPreferences()
	err := s.get(keyPreferences, prefs)
	return prefs, err
}

// SaveStats saves game statistics
func (s *Storage) SaveStats(stats *GameStats) error {
	return s.put(keyStats, stats)
}

// LoadStats loads game statistics, returns empty stats if not found
func (s *Storage) LoadStats() (*GameStats, error) {
	stats := NewGameStats()
	err := s.get(keyStats, stats)
	return stats, err
}

// put stores v as JSON under key.
func (s *Storage) put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	return errors.Wrapf(err, "write %s", key)
}

// get decodes the JSON value under key into v, leaving v untouched if absent.
func (s *Storage) get(key string, v any) error {
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
	return errors.Wrapf(err, "read %s", key)
}

// RecordGame records a completed game and updates statistics
func (s *Storage) RecordGame(result GameResult) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.GamesPlayed++
	stats.TotalPlayTime += result.Duration
	if result.Duration > stats.LongestGame {
		stats.LongestGame = result.Duration
	}

	if result.Outcome.Tie {
		stats.Ties++
		return s.SaveStats(stats)
	}

	winner := result.Outcome.Winner
	stats.Wins[winner]++
	stats.WinsByMode[result.Mode.String()]++
	if result.Mode == ModeHumanVsComputer && winner == result.HumanSide {
		stats.HumanWinsDiff[result.Difficulty.String()]++
	}

	return s.SaveStats(stats)
}

// RecordMatch records a match won by p.
func (s *Storage) RecordMatch(p board.Player) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}
	stats.MatchesWon[p]++
	return s.SaveStats(stats)
}

// GetWinRate returns the share of all games won by p as a percentage (0-100).
func (s *GameStats) GetWinRate(p board.Player) float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.Wins[p]) / float64(s.GamesPlayed) * 100
}
