// Package game runs one Hexagonal Zero session: the state machine that
// sequences swap, match, remove, collapse, refill and rotate over a
// board.Grid, plus the logs, report and headless harness around it.
package game

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog"

	"github.com/Garsondee/Hexagonal-Zero/internal/board"
	"github.com/Garsondee/Hexagonal-Zero/internal/config"
	"github.com/Garsondee/Hexagonal-Zero/internal/hex"
)

const (
	// stabiliseLimit bounds the recolouring passes used to clear initial matches.
	stabiliseLimit = 200
	// regenerateLimit bounds fresh boards tried when one has no legal move.
	regenerateLimit = 20
)

// Session owns all mutable game state. Front ends feed it pointer and key
// input between steps and call Step once per fixed tick.
type Session struct {
	cfg     *config.Config
	log     zerolog.Logger
	sound   SoundSystem
	seed    int64
	rng     *rand.Rand
	palette *board.Palette
	grid    *board.Grid
	layout  func(*board.Grid)
	clip    func(string) error

	state     State
	tick      int
	levelTick int     // tick the current level began on
	elapsed   float64 // simulated seconds

	highlighted *board.Tile
	locked      *board.Tile
	swapped     *board.Tile
	pulseStart  float64
	swapT       float64
	hint        []*board.Tile

	dissolving []*board.Tile
	dissolveT  float64
	falling    []*board.Tile

	angle       float64
	targetAngle float64
	rotateCW    bool

	level     int
	score     int
	combo     int
	maxCombo  int
	movesLeft int
	removed   int
	created   int
	fired     int
	gameOverT float64
	result    *Result
	musicOn   bool
	message   string

	Events *EventLog
	Feed   *Feed
}

// NewSession builds a session from cfg and starts the first level. A nil
// sound system means Mute. Music starts when audio is enabled.
func NewSession(cfg *config.Config, sound SoundSystem, logger zerolog.Logger) *Session {
	s := newSession(cfg, sound, logger)
	s.NewLevel()
	if s.cfg.Audio.Enabled {
		s.ToggleMusic()
	}
	return s
}

func newSession(cfg *config.Config, sound SoundSystem, logger zerolog.Logger) *Session {
	if cfg == nil {
		cfg = config.Default()
	}
	if sound == nil {
		sound = Mute{}
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	palette, err := board.NewPalette(cfg.Board.Colors, cfg.Palette.Base)
	if err != nil {
		palette = board.MustPalette(cfg.Board.Colors, board.DefaultBaseColor)
	}
	return &Session{
		cfg:     cfg,
		log:     logger.With().Str("component", "session").Logger(),
		sound:   sound,
		seed:    seed,
		rng:     rand.New(rand.NewSource(seed)), // #nosec G404 -- game only
		palette: palette,
		clip:    clipboard.WriteAll,
		combo:   1,
		Events:  NewEventLog(false),
		Feed:    NewFeed(),
	}
}

// NewLevel discards the board and starts over with full moves and a zero
// score. The new board has no standing matches and at least one legal move.
func (s *Session) NewLevel() {
	s.level++
	s.score, s.combo, s.maxCombo = 0, 1, 1
	s.removed, s.created, s.fired = 0, 0, 0
	s.movesLeft = s.cfg.Board.Moves
	s.angle, s.targetAngle = 0, 0
	s.result = nil
	s.clearSelection()
	s.dissolving, s.falling = nil, nil

	passes, attempts := 0, 0
	stable, movable := false, false
	for attempts < regenerateLimit {
		attempts++
		s.grid = s.buildGrid()
		passes, stable = s.grid.Stabilise(stabiliseLimit)
		_, _, movable = s.grid.FindMove()
		if (stable && movable) || s.layout != nil {
			break
		}
	}
	if !stable {
		s.Events.Add(s.tick, "level", "unstable", fmt.Sprintf("matches left after %d passes", passes), float64(passes))
		s.log.Warn().Int("level", s.level).Int("passes", passes).Msg("board still has matches after stabilising")
	}
	if !movable {
		s.Events.Add(s.tick, "level", "no_move", fmt.Sprintf("%d boards tried", attempts), float64(attempts))
		s.log.Warn().Int("level", s.level).Int("attempts", attempts).Msg("no legal move on the new board")
	}

	s.levelTick = s.tick
	s.setState(StateIdle)
	s.Events.Add(s.tick, "level", "start",
		fmt.Sprintf("level %d size=%d colors=%d moves=%d", s.level, s.grid.Size(), s.grid.Colors(), s.movesLeft), float64(s.level))
	s.Feed.Add(s.tick, ToneInfo, fmt.Sprintf("Level %d: %d moves", s.level, s.movesLeft))
	s.log.Info().
		Int("level", s.level).
		Int64("seed", s.seed).
		Int("passes", passes).
		Int("attempts", attempts).
		Msg("level started")
}

func (s *Session) buildGrid() *board.Grid {
	size, colors := s.cfg.Board.Size, s.cfg.Board.Colors
	if s.layout == nil {
		return board.New(size, colors, s.palette, s.rng)
	}
	g := board.NewEmpty(size, colors, s.palette, s.rng)
	s.layout(g)
	g.Refill()
	return g
}

// Step advances the simulation by dt seconds.
func (s *Session) Step(dt float64) {
	s.tick++
	s.elapsed += dt

	switch s.state {
	case StateHexSelected:
		s.updateSelected()
	case StateHexSwap:
		s.updateSwap(dt)
	case StateHexUnswap:
		s.updateUnswap(dt)
	case StateRemovingMatches:
		s.updateRemoving(dt)
	case StateCloseGaps:
		s.updateFalling(dt)
	case StateRotating:
		s.updateRotating(dt)
	case StateGameOver:
		s.updateGameOver(dt)
	}

	spin := s.cfg.Timing.BombOmega * dt
	for _, t := range s.grid.Tiles() {
		if t.Kind.Spins() {
			t.Geometry.Rotate(spin)
		}
	}
}

func (s *Session) setState(st State) {
	if st == s.state {
		return
	}
	s.Events.Add(s.tick, "state", "change", fmt.Sprintf("%s → %s", s.state, st), 0)
	s.log.Debug().Str("from", s.state.String()).Str("to", st.String()).Int("tick", s.tick).Msg("state change")
	s.state = st
}

func (s *Session) clearSelection() {
	if s.locked != nil {
		s.locked.Geometry.Resize(1)
	}
	s.highlighted, s.locked, s.swapped = nil, nil, nil
	s.swapT = 0
	s.hint = nil
}

// SetMessage shows text in the message area, for example an audio or
// clipboard failure.
func (s *Session) SetMessage(msg string) {
	s.message = msg
	if msg != "" {
		s.Feed.Add(s.tick, ToneWarn, msg)
	}
}

// ToggleMusic starts or stops the background loop.
func (s *Session) ToggleMusic() bool {
	s.musicOn = !s.musicOn
	if s.musicOn {
		s.sound.StartMusic()
	} else {
		s.sound.StopMusic()
	}
	s.Events.Add(s.tick, "audio", "music", fmt.Sprintf("%t", s.musicOn), 0)
	return s.musicOn
}

// Accessors used by front ends, the report and tests.

func (s *Session) State() State                 { return s.state }
func (s *Session) Grid() *board.Grid            { return s.grid }
func (s *Session) Config() *config.Config       { return s.cfg }
func (s *Session) Tick() int                    { return s.tick }
func (s *Session) Seed() int64                  { return s.seed }
func (s *Session) Level() int                   { return s.level }
func (s *Session) Score() int                   { return s.score }
func (s *Session) Combo() int                   { return s.combo }
func (s *Session) MaxCombo() int                { return s.maxCombo }
func (s *Session) MovesLeft() int               { return s.movesLeft }
func (s *Session) Angle() float64               { return s.angle }
func (s *Session) Message() string              { return s.message }
func (s *Session) MusicOn() bool                { return s.musicOn }
func (s *Session) Locked() *board.Tile          { return s.locked }
func (s *Session) Highlighted() *board.Tile     { return s.highlighted }
func (s *Session) Hinted() []*board.Tile        { return s.hint }
func (s *Session) Dissolving() []*board.Tile    { return s.dissolving }
func (s *Session) Orientation() hex.Orientation { return s.grid.Orientation() }

// Result returns the graded level once the session reached game over.
func (s *Session) Result() (Result, bool) {
	if s.result == nil {
		return Result{}, false
	}
	return *s.result, true
}

// GameOverRemaining returns the seconds left before the next level starts.
func (s *Session) GameOverRemaining() float64 {
	if s.state != StateGameOver {
		return 0
	}
	return math.Max(0, s.cfg.Timing.GameOverSeconds-s.gameOverT)
}
