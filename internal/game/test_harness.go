package game

import (
	"github.com/rs/zerolog"

	"github.com/Garsondee/Hexagonal-Zero/internal/board"
	"github.com/Garsondee/Hexagonal-Zero/internal/config"
	"github.com/Garsondee/Hexagonal-Zero/internal/hex"
)

// TestSession is a headless session harness used by tests and the
// headless report. It steps a real Session at the configured rate with no
// front end, no audio and deterministic seeding.
type TestSession struct {
	*Session
	Cfg   *config.Config
	Sound SoundSystem
	dt    float64
}

// sessionOptionKind controls the pass in which an option is applied.
type sessionOptionKind int

const (
	sessionOptConfig sessionOptionKind = iota // size, colours, seed, moves: applied first
	sessionOptSetup                           // layout, sound, verbose: applied before the first level
)

// SessionOption is a builder function applied to a TestSession during
// construction.
type SessionOption struct {
	kind sessionOptionKind
	fn   func(*TestSession)
}

// WithSize sets the number of board rings.
func WithSize(n int) SessionOption {
	return SessionOption{sessionOptConfig, func(ts *TestSession) {
		ts.Cfg.Board.Size = n
	}}
}

// WithColors sets the number of tile colours.
func WithColors(n int) SessionOption {
	return SessionOption{sessionOptConfig, func(ts *TestSession) {
		ts.Cfg.Board.Colors = n
	}}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SessionOption {
	return SessionOption{sessionOptConfig, func(ts *TestSession) {
		ts.Cfg.Seed = seed
	}}
}

// WithMoves sets the moves per level.
func WithMoves(n int) SessionOption {
	return SessionOption{sessionOptConfig, func(ts *TestSession) {
		ts.Cfg.Board.Moves = n
	}}
}

// WithScoring replaces the score table.
func WithScoring(sc board.Scoring) SessionOption {
	return SessionOption{sessionOptConfig, func(ts *TestSession) {
		ts.Cfg.Score = sc
	}}
}

// WithConfig lets a test adjust any other field.
func WithConfig(fn func(*config.Config)) SessionOption {
	return SessionOption{sessionOptConfig, func(ts *TestSession) {
		fn(ts.Cfg)
	}}
}

// WithLayout fills every level's board through fn instead of at random.
// Cells fn leaves empty are filled at random.
func WithLayout(fn func(*board.Grid)) SessionOption {
	return SessionOption{sessionOptSetup, func(ts *TestSession) {
		ts.layout = fn
	}}
}

// WithSound routes cues to snd instead of Mute.
func WithSound(snd SoundSystem) SessionOption {
	return SessionOption{sessionOptSetup, func(ts *TestSession) {
		ts.Sound = snd
		ts.sound = snd
	}}
}

// WithVerbose enables per-tick event logging.
func WithVerbose(v bool) SessionOption {
	return SessionOption{sessionOptSetup, func(ts *TestSession) {
		ts.Events = NewEventLog(v)
	}}
}

// NewTestSession constructs a TestSession from the given options in two
// ordered passes:
//  1. Config (size, colours, seed, moves, scoring)
//  2. Setup (layout, sound, verbose), then the first level starts
func NewTestSession(opts ...SessionOption) *TestSession {
	ts := &TestSession{Cfg: config.Default(), Sound: Mute{}}
	ts.Cfg.Seed = 1
	ts.Cfg.Audio.Enabled = false
	for _, o := range opts {
		if o.kind == sessionOptConfig {
			o.fn(ts)
		}
	}
	ts.Session = newSession(ts.Cfg, ts.Sound, zerolog.Nop())
	ts.clip = func(string) error { return nil }
	for _, o := range opts {
		if o.kind == sessionOptSetup {
			o.fn(ts)
		}
	}
	ts.dt = 1 / float64(ts.Cfg.Timing.FPS)
	ts.NewLevel()
	return ts
}

// RunTicks advances the session n fixed steps.
func (ts *TestSession) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.Step(ts.dt)
	}
}

// RunUntil advances up to maxTicks steps, stopping early if predicate
// returns true. Returns the tick at which the predicate was satisfied, or -1.
func (ts *TestSession) RunUntil(predicate func(*TestSession) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.Step(ts.dt)
		if predicate(ts) {
			return ts.tick
		}
	}
	return -1
}

// RunUntilIdle advances until the session accepts input again.
func (ts *TestSession) RunUntilIdle(maxTicks int) int {
	return ts.RunUntil(func(ts *TestSession) bool { return ts.state == StateIdle }, maxTicks)
}

// ClickTile presses the pointer on the centre of the tile at (a, c).
func (ts *TestSession) ClickTile(a, c int) {
	x, y := hex.AxialToPixel(a, c)
	ts.PointerDown(x, y)
}

// PlayMove lets the bot make one legal swap. It reports false when the
// session is not idle or no move exists.
func (ts *TestSession) PlayMove() bool {
	if ts.state != StateIdle {
		return false
	}
	t1, t2, ok := ts.grid.FindMove()
	if !ok {
		return false
	}
	ts.ClickTile(t1.A, t1.C)
	ts.ClickTile(t2.A, t2.C)
	return ts.state == StateHexSwap
}

// PlayLevel lets the bot play until game over or maxTicks pass. It
// returns the result, or false if the level did not finish.
func (ts *TestSession) PlayLevel(maxTicks int) (Result, bool) {
	for ts.tick < maxTicks {
		switch ts.state {
		case StateGameOver:
			return ts.Result()
		case StateIdle:
			if !ts.PlayMove() {
				// Stuck: no legal move on the board.
				return Result{}, false
			}
		}
		ts.Step(ts.dt)
	}
	return Result{}, false
}

// Snapshot is a lightweight copy of the session counters.
type Snapshot struct {
	Tick      int
	State     State
	Score     int
	Combo     int
	MovesLeft int
	Tiles     int
	Empty     int
	Angle     float64
}

// Snapshot returns the current counters.
func (ts *TestSession) Snapshot() Snapshot {
	return Snapshot{
		Tick:      ts.tick,
		State:     ts.state,
		Score:     ts.score,
		Combo:     ts.combo,
		MovesLeft: ts.movesLeft,
		Tiles:     ts.grid.Count(),
		Empty:     ts.grid.Empty(),
		Angle:     ts.angle,
	}
}
