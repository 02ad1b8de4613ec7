package storage

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hailam/othelloplay/internal/board"
)

func openTemp(t *testing.T) (*Storage, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, dir
}

func TestStorage(t *testing.T) {
	t.Run("DefaultPreferences", func(t *testing.T) {
		prefs := DefaultPreferences()
		require.Equal(t, "Player 1", prefs.PlayerNames[board.Player1])
		require.Equal(t, DifficultyEasy, prefs.Difficulty)
		require.Equal(t, ModeHumanVsHuman, prefs.GameMode)
		require.Equal(t, board.Player1, prefs.HumanSide)
	})

	t.Run("NewGameStats", func(t *testing.T) {
		stats := NewGameStats()
		require.Zero(t, stats.GamesPlayed)
		require.Zero(t, stats.GetWinRate(board.Player1))
	})

	t.Run("WinRate", func(t *testing.T) {
		stats := &GameStats{
			GamesPlayed: 10,
			Wins:        [board.NumPlayers]int{5, 3},
			Ties:        2,
		}
		require.Equal(t, 50.0, stats.GetWinRate(board.Player1))
		require.Equal(t, 30.0, stats.GetWinRate(board.Player2))
	})
}

func TestFirstLaunch(t *testing.T) {
	s, _ := openTemp(t)

	first, err := s.IsFirstLaunch()
	require.NoError(t, err)
	require.True(t, first)

	require.NoError(t, s.MarkFirstLaunchComplete())
	first, err = s.IsFirstLaunch()
	require.NoError(t, err)
	require.False(t, first)
}

func TestPreferencesPersist(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)

	prefs, err := s.LoadPreferences()
	require.NoError(t, err)
	require.Equal(t, DefaultPreferences().PlayerNames, prefs.PlayerNames)

	prefs.PlayerNames[board.Player2] = "Ada"
	prefs.GameMode = ModeHumanVsComputer
	prefs.Difficulty = DifficultyHard
	prefs.HumanSide = board.Player2
	prefs.SoundEnabled = false
	require.NoError(t, s.SavePreferences(prefs))
	require.NoError(t, s.Close())

	s, err = Open(dir)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.LoadPreferences()
	require.NoError(t, err)
	require.Equal(t, "Ada", got.PlayerNames[board.Player2])
	require.Equal(t, ModeHumanVsComputer, got.GameMode)
	require.Equal(t, DifficultyHard, got.Difficulty)
	require.Equal(t, board.Player2, got.HumanSide)
	require.False(t, got.SoundEnabled)
}

func TestRecordGame(t *testing.T) {
	s, _ := openTemp(t)

	results := []GameResult{
		{Outcome: board.Outcome{Winner: board.Player1}, Mode: ModeHumanVsHuman, Duration: time.Minute},
		{Outcome: board.Outcome{Winner: board.NoPlayer, Tie: true}, Mode: ModeHumanVsHuman, Duration: 2 * time.Minute},
		{Outcome: board.Outcome{Winner: board.Player2}, Mode: ModeHumanVsComputer, Difficulty: DifficultyHard, HumanSide: board.Player2, Duration: 3 * time.Minute},
		{Outcome: board.Outcome{Winner: board.Player1}, Mode: ModeHumanVsComputer, Difficulty: DifficultyHard, HumanSide: board.Player2, Duration: time.Minute},
	}
	for _, r := range results {
		require.NoError(t, s.RecordGame(r))
	}
	require.NoError(t, s.RecordMatch(board.Player1))

	stats, err := s.LoadStats()
	require.NoError(t, err)
	require.Equal(t, 4, stats.GamesPlayed)
	require.Equal(t, [board.NumPlayers]int{2, 1}, stats.Wins)
	require.Equal(t, 1, stats.Ties)
	require.Equal(t, [board.NumPlayers]int{1, 0}, stats.MatchesWon)
	require.Equal(t, 1, stats.WinsByMode["hvh"])
	require.Equal(t, 2, stats.WinsByMode["hvc"])
	require.Equal(t, 1, stats.HumanWinsDiff["hard"])
	require.Equal(t, 7*time.Minute, stats.TotalPlayTime)
	require.Equal(t, 3*time.Minute, stats.LongestGame)
}

func TestDataPaths(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	dataDir, err := GetDataDir()
	require.NoError(t, err)
	require.NotEmpty(t, dataDir)

	_, err = os.Stat(dataDir)
	require.NoError(t, err, "data directory was not created")

	cfg, err := GetConfigPath()
	require.NoError(t, err)
	require.Contains(t, cfg, appName)
}
