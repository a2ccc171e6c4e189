package game

import (
	"github.com/Garsondee/Hexagonal-Zero/internal/board"
	"github.com/Garsondee/Hexagonal-Zero/internal/hex"
)

// Render draws the session onto c in board space. Order: resting tiles,
// hover and hint outlines, the swapping pair (swapped under locked),
// dissolving tiles with hex bombs on top, then the border. The canvas
// applies Angle itself.
func (s *Session) Render(c board.Canvas) {
	for _, t := range s.grid.Tiles() {
		if t == s.locked || t == s.swapped {
			continue
		}
		t.Geometry.Render(c, false)
	}

	if s.highlighted != nil {
		s.highlighted.Geometry.Render(c, true)
	}
	for _, t := range s.hint {
		t.Geometry.Render(c, true)
	}

	for _, t := range []*board.Tile{s.swapped, s.locked} {
		if t == nil {
			continue
		}
		t.Geometry.Render(c, false)
		t.Geometry.Render(c, true)
	}

	for _, t := range s.dissolving {
		if t.Kind != board.HexBomb {
			t.Geometry.Render(c, false)
		}
	}
	for _, t := range s.dissolving {
		if t.Kind == board.HexBomb {
			t.Geometry.Render(c, false)
		}
	}

	c.Border(s.grid.Size(), hex.Spacing)
}
