package game

import (
	"fmt"
	"math"

	"github.com/Garsondee/Hexagonal-Zero/internal/board"
	"github.com/Garsondee/Hexagonal-Zero/internal/hex"
)

// Per-state update handlers. Each runs once per Step while its state is
// current.

func (s *Session) updateSelected() {
	if s.locked == nil {
		return
	}
	t := s.elapsed - s.pulseStart
	tm := s.cfg.Timing
	s.locked.Geometry.Resize(1 + tm.PulseAmplitude*math.Sin(2*math.Pi*t/tm.PulsePeriod))
}

// placeSwapPair positions the two swapping tiles a distance t along the
// line between their cells.
func (s *Session) placeSwapPair(t float64) {
	ax, ay := s.locked.Center()
	bx, by := s.swapped.Center()
	f := t / hex.Spacing
	s.locked.Geometry.Move(ax+(bx-ax)*f, ay+(by-ay)*f)
	s.swapped.Geometry.Move(bx+(ax-bx)*f, by+(ay-by)*f)
}

func (s *Session) updateSwap(dt float64) {
	s.swapT += s.cfg.Timing.SwapVelocity * dt
	if s.swapT < hex.Spacing {
		s.placeSwapPair(s.swapT)
		return
	}
	s.swapT = hex.Spacing

	s.grid.Swap(s.locked, s.swapped)
	s.locked.Geometry.Move(s.locked.Center())
	s.swapped.Geometry.Move(s.swapped.Center())

	groups := s.swapGroups()
	if countTiles(groups) == 0 {
		s.sound.Fail()
		s.Events.Add(s.tick, "input", "swap_fail", tileLabel(s.locked)+" ↔ "+tileLabel(s.swapped), 0)
		s.Feed.Add(s.tick, ToneWarn, "No match")
		s.grid.Swap(s.locked, s.swapped)
		s.placeSwapPair(s.swapT)
		s.setState(StateHexUnswap)
		return
	}

	s.movesLeft--
	s.Events.Add(s.tick, "input", "move", fmt.Sprintf("%d left", s.movesLeft), float64(s.movesLeft))
	locked, swapped := s.locked, s.swapped
	s.clearSelection()
	s.startRemoval(groups, swapped, locked)
}

// swapGroups evaluates the board right after a swap, honouring colour
// bombs: one clears every tile of the other tile's colour, two clear the
// whole board.
func (s *Session) swapGroups() []board.Group {
	a, b := s.locked, s.swapped
	aBomb, bBomb := a.Kind == board.ColorBomb, b.Kind == board.ColorBomb
	switch {
	case aBomb && bBomb:
		s.Events.Add(s.tick, "bomb", "color_pair", "all tiles", 0)
		return s.grid.AllTileMatch()
	case aBomb || bBomb:
		bomb, other := a, b
		if bBomb {
			bomb, other = b, a
		}
		groups := s.grid.ColorMatch(other.Color)
		bomb.MatchCount = 1
		groups[0].Tiles = append(groups[0].Tiles, bomb)
		s.Events.Add(s.tick, "bomb", "color", fmt.Sprintf("color %d", other.Color), float64(len(groups[0].Tiles)))
		return groups
	}
	if !s.grid.HasMatches() {
		return nil
	}
	return s.grid.MatchedGroups()
}

func (s *Session) updateUnswap(dt float64) {
	s.swapT -= s.cfg.Timing.SwapVelocity * dt
	if s.swapT > 0 {
		s.placeSwapPair(s.swapT)
		return
	}
	s.placeSwapPair(0)
	s.clearSelection()
	s.setState(StateIdle)
}

// startRemoval resolves the groups on the grid, scores the pass and starts
// the dissolve animation.
func (s *Session) startRemoval(groups []board.Group, preferred ...*board.Tile) {
	for _, grp := range groups {
		s.Events.Add(s.tick, "match", "group",
			fmt.Sprintf("axis=%s line=%t run=%d tiles=%d", grp.Axis, grp.Line, grp.Run, len(grp.Tiles)), float64(len(grp.Tiles)))
	}
	res := s.grid.Resolve(groups, preferred...)
	gained := res.Score(s.cfg.Score, s.combo)
	s.score += gained
	s.removed += len(res.Removed)
	s.created += len(res.Created)
	s.fired += len(res.Triggered)

	s.Events.Add(s.tick, "score", "add",
		fmt.Sprintf("%d tiles x%d, %d bombs", len(res.Removed), s.combo, len(res.Created)), float64(gained))
	for _, t := range res.Created {
		s.Events.Add(s.tick, "bomb", "created", t.Kind.String()+" at "+tileLabel(t), 0)
		s.Feed.Add(s.tick, ToneBomb, "New "+t.Kind.String())
	}
	for _, t := range res.Triggered {
		s.Events.Add(s.tick, "bomb", "triggered", t.Kind.String()+" at "+tileLabel(t), 0)
	}
	s.Feed.Add(s.tick, ToneScore, fmt.Sprintf("+%d (x%d)", gained, s.combo))

	if len(res.Triggered) > 0 || len(res.Created) > 0 {
		s.sound.Bomb()
	}
	s.sound.Remove()

	s.dissolving = res.Removed
	s.dissolveT = 0
	s.setState(StateRemovingMatches)
	if len(s.dissolving) == 0 {
		s.finishRemoval()
	}
}

// dissolveScale is the dissolve curve f(t) = 1 - b·t + (b-1)·t². It starts
// at 1, ends at 0 at t=1 and peaks at exactly peak (>= 1) on the way.
func dissolveScale(t, peak float64) float64 {
	if peak < 1 {
		peak = 1
	}
	b := 2 - 2*peak - 2*math.Sqrt(peak*(peak-1))
	return 1 - b*t + (b-1)*t*t
}

func (s *Session) updateRemoving(dt float64) {
	s.dissolveT += s.cfg.Timing.DissolveVelocity * dt
	if s.dissolveT > 1 {
		s.finishRemoval()
		return
	}
	for _, t := range s.dissolving {
		peak := 1.0
		if t.Kind == board.HexBomb {
			peak = s.cfg.Timing.HexBombPeak
		}
		t.Geometry.Resize(dissolveScale(s.dissolveT, peak))
	}
}

// finishRemoval closes the gaps, refills the board and sends every moved
// or new tile falling towards its cell.
func (s *Session) finishRemoval() {
	for _, t := range s.dissolving {
		t.Geometry.Hide()
	}
	s.dissolving = nil
	s.combo++
	if s.combo > s.maxCombo {
		s.maxCombo = s.combo
	}
	s.Events.Add(s.tick, "score", "combo", fmt.Sprintf("x%d", s.combo), float64(s.combo))

	cols := s.grid.CloseGaps()
	added := s.grid.Refill()

	s.falling = s.falling[:0]
	for _, col := range cols {
		s.falling = append(s.falling, col.Shifted...)
	}
	for _, t := range added {
		missing := cols[s.grid.ColumnOf(t.Cube)].Missing
		t.Geometry.Move(hex.CubeToPixel(s.grid.SpawnOffset(t.Cube, missing)))
		s.falling = append(s.falling, t)
	}
	s.Events.Add(s.tick, "board", "refill", fmt.Sprintf("%d new, %d falling", len(added), len(s.falling)), float64(len(added)))
	s.setState(StateCloseGaps)
}

// approach moves v towards target by step. It reports arrival when the
// target is hit exactly or overshot on either axis, snapping in that case.
func approach(x, y, tx, ty, step float64) (float64, float64, bool) {
	dx, dy := tx-x, ty-y
	d := math.Hypot(dx, dy)
	if d == 0 {
		return tx, ty, true
	}
	nx, ny := x+dx/d*step, y+dy/d*step
	rx, ry := tx-nx, ty-ny
	if (dx != 0 && rx*dx <= 0) || (dy != 0 && ry*dy <= 0) {
		return tx, ty, true
	}
	return nx, ny, false
}

func (s *Session) updateFalling(dt float64) {
	step := s.cfg.Timing.FallVelocity * dt
	arrived := 0
	for _, t := range s.falling {
		geo := t.Geometry
		x, y, done := approach(geo.X, geo.Y, t.TargetX, t.TargetY, step)
		geo.Move(x, y)
		if done {
			arrived++
		}
	}

	// Separate pass: keep only the tiles still in flight.
	if arrived > 0 {
		still := s.falling[:0]
		for _, t := range s.falling {
			if t.Geometry.X != t.TargetX || t.Geometry.Y != t.TargetY {
				still = append(still, t)
			}
		}
		s.falling = still
	}
	if len(s.falling) > 0 {
		return
	}

	if s.grid.HasMatches() {
		s.startRemoval(s.grid.MatchedGroups())
		return
	}
	s.startRotation(s.cfg.Rotation.Clockwise)
}

// startRotation turns the board logically and starts the visual turn.
func (s *Session) startRotation(clockwise bool) {
	s.grid.Rotate(clockwise)
	s.rotateCW = clockwise
	if clockwise {
		s.targetAngle = s.angle - math.Pi/3
	} else {
		s.targetAngle = s.angle + math.Pi/3
	}
	s.sound.Rotate(clockwise)
	s.Events.Add(s.tick, "board", "rotate", s.grid.Orientation().String(), float64(s.grid.Orientation()))
	s.setState(StateRotating)
}

func (s *Session) updateRotating(dt float64) {
	step := s.cfg.Timing.Omega * dt
	diff := s.targetAngle - s.angle
	if math.Abs(diff) > step {
		s.angle += math.Copysign(step, diff)
		return
	}
	s.angle = normalizeAngle(s.targetAngle)
	s.targetAngle = s.angle
	s.combo = 1

	if s.movesLeft > 0 {
		s.setState(StateIdle)
		return
	}
	res := DetermineResult(s.level, s.score, s.cfg.Board.Moves-s.movesLeft, s.maxCombo, s.removed, s.created, s.fired)
	s.result = &res
	s.gameOverT = 0
	s.Events.Add(s.tick, "level", "game_over", res.String(), float64(res.Score))
	s.Feed.Add(s.tick, ToneInfo, fmt.Sprintf("Game over: %d (%s)", res.Score, res.Rating))
	s.log.Info().
		Int("level", res.Level).
		Int("score", res.Score).
		Int("max_combo", res.MaxCombo).
		Str("rating", res.Rating.String()).
		Msg("game over")
	s.setState(StateGameOver)
}

// normalizeAngle maps a into [0, 2π), snapping values within rounding of a
// multiple of π/3 onto it.
func normalizeAngle(a float64) float64 {
	step := math.Pi / 3
	k := math.Round(a / step)
	if math.Abs(a-k*step) < 1e-9 {
		a = k * step
	}
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi-1e-9 {
		a = 0
	}
	return a
}

func (s *Session) updateGameOver(dt float64) {
	s.gameOverT += dt
	if s.gameOverT >= s.cfg.Timing.GameOverSeconds {
		s.NewLevel()
	}
}

func countTiles(groups []board.Group) int {
	n := 0
	for _, g := range groups {
		n += len(g.Tiles)
	}
	return n
}

func tileLabel(t *board.Tile) string {
	if t == nil {
		return "-"
	}
	return fmt.Sprintf("(%d,%d,%d)", t.A, t.B, t.C)
}
