package game

import (
	"fmt"
	"math"

	"github.com/Garsondee/Hexagonal-Zero/internal/board"
	"github.com/Garsondee/Hexagonal-Zero/internal/hex"
)

// MaxCoord is the half-extent of the board view in world units. Pointer
// events outside it are ignored.
func (s *Session) MaxCoord() float64 {
	return hex.Spacing * float64(s.grid.Size())
}

// ViewToBoard undoes the board rotation for a point in view coordinates
// (world units, y up, origin at the board centre).
func (s *Session) ViewToBoard(x, y float64) (float64, float64) {
	return hex.Rotate(x, y, -s.angle)
}

func (s *Session) tileAt(x, y float64) *board.Tile {
	return s.grid.At(hex.PixelToAxial(x, y))
}

func (s *Session) ignore(what string) {
	s.Events.Add(s.tick, "input", "ignored", fmt.Sprintf("%s in %s", what, s.state), 0)
}

// PointerMove updates the hover highlight for a point in board
// coordinates. In HexSelected only neighbours of the locked tile light up.
func (s *Session) PointerMove(x, y float64) {
	var next *board.Tile
	switch s.state {
	case StateIdle:
		next = s.tileAt(x, y)
	case StateHexSelected:
		if t := s.tileAt(x, y); t != nil && board.Distance(t, s.locked) == 1 {
			next = t
		}
	}
	if next == s.highlighted {
		return
	}
	s.highlighted = next
	if next != nil {
		s.sound.Blip()
		s.Events.AddVerbose(s.tick, "input", "hover", tileLabel(next), 0)
	}
}

// PointerDown selects or swaps the tile under a point in board
// coordinates.
func (s *Session) PointerDown(x, y float64) {
	m := s.MaxCoord()
	if math.Abs(x) > m || math.Abs(y) > m {
		s.ignore("click outside board")
		return
	}
	if s.state != StateIdle && s.state != StateHexSelected {
		s.ignore("click")
		return
	}
	t := s.tileAt(x, y)
	if t == nil {
		s.ignore("click on empty cell")
		return
	}
	s.hint = nil

	switch {
	case s.state == StateIdle:
		s.selectTile(t)
	case t == s.locked:
		s.ignore("click on selected tile")
	case board.Distance(t, s.locked) == 1:
		s.locked.Geometry.Resize(1)
		s.swapped = t
		s.swapT = 0
		s.highlighted = nil
		s.sound.Swap()
		s.Events.Add(s.tick, "input", "swap", tileLabel(s.locked)+" ↔ "+tileLabel(t), 0)
		s.setState(StateHexSwap)
	default:
		s.locked.Geometry.Resize(1)
		s.selectTile(t)
	}
}

func (s *Session) selectTile(t *board.Tile) {
	s.locked = t
	s.pulseStart = s.elapsed
	s.highlighted = nil
	s.sound.Select()
	s.Events.Add(s.tick, "input", "select", tileLabel(t), 0)
	s.setState(StateHexSelected)
}

// RotateManual turns the board by hand. It works only in Idle and does
// not use up a move.
func (s *Session) RotateManual(clockwise bool) bool {
	if s.state != StateIdle {
		s.ignore("rotate")
		return false
	}
	s.highlighted = nil
	s.hint = nil
	s.startRotation(clockwise)
	return true
}

// Hint marks the first legal move found on the board.
func (s *Session) Hint() bool {
	if s.state != StateIdle {
		s.ignore("hint")
		return false
	}
	t1, t2, ok := s.grid.FindMove()
	if !ok {
		s.Feed.Add(s.tick, ToneWarn, "No moves")
		return false
	}
	s.hint = []*board.Tile{t1, t2}
	s.Events.Add(s.tick, "input", "hint", tileLabel(t1)+" ↔ "+tileLabel(t2), 0)
	return true
}

// Restart abandons the level and starts a new one.
func (s *Session) Restart() {
	s.Events.Add(s.tick, "input", "restart", fmt.Sprintf("level %d", s.level), 0)
	s.NewLevel()
}
