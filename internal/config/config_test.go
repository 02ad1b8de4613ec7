package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	icon := filepath.Join(dir, "p1.svg")
	require.NoError(t, os.WriteFile(icon, []byte("<svg/>"), 0o644))

	path := filepath.Join(dir, DefaultFile)
	data := "match:\n  target: 5\nbot:\n  hard_depth: 6\nicons:\n  player1: " + icon + "\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Match.Target)
	require.Equal(t, 6, cfg.Bot.HardDepth)
	require.Equal(t, 2, cfg.Bot.EasyDepth, "unset keys keep their default")
	require.Equal(t, icon, cfg.Icons.Player1)

	lvl, err := cfg.LogLevel()
	require.NoError(t, err)
	require.Equal(t, zerolog.DebugLevel, lvl)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	cfg := Default()
	cfg.Match.Target = 7

	require.NoError(t, Save(path, cfg))
	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, got)
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Match.Target = 0
	cfg.Bot.EasyDepth = 0
	cfg.Bot.HardDepth = 65
	cfg.Icons.Computer = filepath.Join(t.TempDir(), "missing.svg")
	cfg.Log.Level = "loud"

	err := cfg.Validate()
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	require.Len(t, merr.Errors, 5)
}

func TestLoadRejectsBadFile(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("match: [unclosed"), 0o644))
	_, err := Load(bad)
	require.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("match:\n  target: -1\n"), 0o644))
	cfg, err := Load(invalid)
	require.Error(t, err)
	require.Equal(t, Default(), cfg)
}
