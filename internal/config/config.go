// Package config loads the game configuration from YAML, with defaults for
// every field and environment overrides for the common knobs.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Garsondee/Hexagonal-Zero/internal/board"
)

// Config holds all game configuration
type Config struct {
	Board    BoardConfig    `yaml:"board"`
	Timing   TimingConfig   `yaml:"timing"`
	Score    board.Scoring  `yaml:"score"`
	Window   WindowConfig   `yaml:"window"`
	Audio    AudioConfig    `yaml:"audio"`
	Palette  PaletteConfig  `yaml:"palette"`
	Rotation RotationConfig `yaml:"rotation"`
	Seed     int64          `yaml:"seed"` // 0 picks a time-based seed
	LogLevel string         `yaml:"log_level"`
}

// BoardConfig holds level settings
type BoardConfig struct {
	Size   int `yaml:"size"` // rings including the centre
	Colors int `yaml:"colors"`
	Moves  int `yaml:"moves"`
}

// TimingConfig holds animation rates. Velocities are in world units per
// second, angular speeds in radians per second.
type TimingConfig struct {
	FPS              int     `yaml:"fps"`
	Omega            float64 `yaml:"omega"`
	SwapVelocity     float64 `yaml:"swap_velocity"`
	FallVelocity     float64 `yaml:"fall_velocity"`
	DissolveVelocity float64 `yaml:"dissolve_velocity"`
	BombOmega        float64 `yaml:"bomb_omega"`
	PulseAmplitude   float64 `yaml:"pulse_amplitude"`
	PulsePeriod      float64 `yaml:"pulse_period"` // seconds
	GameOverSeconds  float64 `yaml:"game_over_seconds"`
	HexBombPeak      float64 `yaml:"hex_bomb_peak"` // dissolve overshoot, > 1
}

// WindowConfig holds windowed front end settings
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// AudioConfig holds sound settings
type AudioConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Volume      float64 `yaml:"volume"`
	MusicVolume float64 `yaml:"music_volume"`
}

// PaletteConfig holds tile colour settings
type PaletteConfig struct {
	Base string `yaml:"base"`
}

// RotationConfig selects the direction of the automatic turn after each
// move.
type RotationConfig struct {
	Clockwise bool `yaml:"clockwise"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Board: BoardConfig{Size: 6, Colors: 6, Moves: 20},
		Timing: TimingConfig{
			FPS:              60,
			Omega:            math.Pi / 3,
			SwapVelocity:     8,
			FallVelocity:     16,
			DissolveVelocity: 2.5,
			BombOmega:        1.5,
			PulseAmplitude:   0.12,
			PulsePeriod:      0.8,
			GameOverSeconds:  4,
			HexBombPeak:      2.2,
		},
		Score:    board.DefaultScoring(),
		Window:   WindowConfig{Width: 720, Height: 720, Title: "Hexagonal Zero"},
		Audio:    AudioConfig{Enabled: true, Volume: 0.6, MusicVolume: 0.3},
		Palette:  PaletteConfig{Base: board.DefaultBaseColor},
		Rotation: RotationConfig{Clockwise: true},
		LogLevel: "info",
	}
}

// Load reads configuration from a YAML file. Keys missing from the file
// keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the operator
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Environment variables read by FromEnv and ApplyEnv.
const (
	EnvConfig   = "HEXZERO_CONFIG"
	EnvSeed     = "HEXZERO_SEED"
	EnvSize     = "HEXZERO_SIZE"
	EnvColors   = "HEXZERO_COLORS"
	EnvMoves    = "HEXZERO_MOVES"
	EnvMute     = "HEXZERO_MUTE"
	EnvLogLevel = "LOG_LEVEL"
)

// FromEnv loads the file named by path, or by HEXZERO_CONFIG when path is
// empty, or the defaults when neither is set, then applies environment
// overrides.
func FromEnv(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the environment through lookup and
// re-validates.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvSize, &c.Board.Size},
		{EnvColors, &c.Board.Colors},
		{EnvMoves, &c.Board.Moves},
	}
	for _, e := range ints {
		v, ok := lookup(e.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", e.key, err)
		}
		*e.dst = n
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = n
	}
	if v, ok := lookup(EnvMute); ok && v != "" {
		mute, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMute, err)
		}
		c.Audio.Enabled = !mute
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	return c.Validate()
}

// Validation errors.
var (
	ErrBoardSize = errors.New("board size must be between 3 and 12")
	ErrColors    = errors.New("colors must be between 3 and 12")
	ErrMoves     = errors.New("moves must be positive")
	ErrFPS       = errors.New("fps must be between 1 and 1000")
	ErrRate      = errors.New("animation rates must be positive")
	ErrPeak      = errors.New("hex_bomb_peak must be greater than 1")
	ErrVolume    = errors.New("volumes must be within [0, 1]")
)

// Board limits. Below three rings no swap can make a run of three, and
// with two colours a large board cannot be cleared of standing runs.
const (
	MinBoardSize = 3
	MaxBoardSize = 12
	MinColors    = 3
	MaxColors    = 12
)

// Validate checks every field range and returns the first problem found.
func (c *Config) Validate() error {
	switch {
	case c.Board.Size < MinBoardSize || c.Board.Size > MaxBoardSize:
		return fmt.Errorf("%w: got %d", ErrBoardSize, c.Board.Size)
	case c.Board.Colors < MinColors || c.Board.Colors > MaxColors:
		return fmt.Errorf("%w: got %d", ErrColors, c.Board.Colors)
	case c.Board.Moves < 1:
		return fmt.Errorf("%w: got %d", ErrMoves, c.Board.Moves)
	case c.Timing.FPS < 1 || c.Timing.FPS > 1000:
		return fmt.Errorf("%w: got %d", ErrFPS, c.Timing.FPS)
	}
	t := c.Timing
	for _, r := range []float64{t.Omega, t.SwapVelocity, t.FallVelocity, t.DissolveVelocity, t.PulsePeriod, t.GameOverSeconds} {
		if r <= 0 {
			return ErrRate
		}
	}
	if t.HexBombPeak <= 1 {
		return fmt.Errorf("%w: got %g", ErrPeak, t.HexBombPeak)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 || c.Audio.MusicVolume < 0 || c.Audio.MusicVolume > 1 {
		return ErrVolume
	}
	if _, err := board.NewPalette(c.Board.Colors, c.Palette.Base); err != nil {
		return fmt.Errorf("palette: %w", err)
	}
	return nil
}
