// Package config loads the YAML settings read once at startup.
package config

import (
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/hailam/othelloplay/internal/board"
)

// DefaultFile is the config file name looked up in the data directory.
const DefaultFile = "othelloplay.yaml"

// Config holds every startup setting.
type Config struct {
	Match Match `yaml:"match"`
	Bot   Bot   `yaml:"bot"`
	Icons Icons `yaml:"icons"`
	Log   Log   `yaml:"log"`
}

// Match configures the live match.
type Match struct {
	Target int `yaml:"target"` // games needed to win a match
}

// Bot configures the search depth of each difficulty.
type Bot struct {
	EasyDepth   int `yaml:"easy_depth"`
	MediumDepth int `yaml:"medium_depth"`
	HardDepth   int `yaml:"hard_depth"`
}

// Icons holds optional SVG paths replacing the built-in artwork.
// An empty path keeps the built-in image.
type Icons struct {
	Player1      string `yaml:"player1"`
	Player2      string `yaml:"player2"`
	Indicator    string `yaml:"indicator"`
	Computer     string `yaml:"computer"`
	ComputerHard string `yaml:"computer_hard"`
}

// Log configures the logger.
type Log struct {
	Level string `yaml:"level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Match: Match{Target: 3},
		Bot: Bot{
			EasyDepth:   2,
			MediumDepth: 3,
			HardDepth:   4,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write config %s", path)
	}
	return nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs error

	if c.Match.Target < 1 {
		errs = multierror.Append(errs, errors.Errorf("match.target must be at least 1, got %d", c.Match.Target))
	}

	depths := []struct {
		name  string
		depth int
	}{
		{"bot.easy_depth", c.Bot.EasyDepth},
		{"bot.medium_depth", c.Bot.MediumDepth},
		{"bot.hard_depth", c.Bot.HardDepth},
	}
	for _, d := range depths {
		if d.depth < 1 || d.depth > board.NumSquares {
			errs = multierror.Append(errs, errors.Errorf("%s must be in 1..%d, got %d", d.name, board.NumSquares, d.depth))
		}
	}

	icons := []struct {
		name, path string
	}{
		{"icons.player1", c.Icons.Player1},
		{"icons.player2", c.Icons.Player2},
		{"icons.indicator", c.Icons.Indicator},
		{"icons.computer", c.Icons.Computer},
		{"icons.computer_hard", c.Icons.ComputerHard},
	}
	for _, icon := range icons {
		if icon.path == "" {
			continue
		}
		if _, err := os.Stat(icon.path); err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "%s", icon.name))
		}
	}

	if _, err := c.LogLevel(); err != nil {
		errs = multierror.Append(errs, err)
	}

	return errs
}

// LogLevel parses Log.Level. An empty level means info.
func (c Config) LogLevel() (zerolog.Level, error) {
	if c.Log.Level == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.InfoLevel, errors.Wrap(err, "log.level")
	}
	return lvl, nil
}
