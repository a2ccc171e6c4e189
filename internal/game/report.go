package game

import (
	"fmt"
	"strings"

	"github.com/Garsondee/Hexagonal-Zero/internal/board"
	"github.com/Garsondee/Hexagonal-Zero/internal/hex"
)

// reportEvents is how many recent events a report includes by default.
const reportEvents = 40

// Report renders a plain-text snapshot of the session: seed, counters, an
// ASCII board and the most recent events. lastEvents <= 0 uses the default.
func (s *Session) Report(lastEvents int) string {
	if lastEvents <= 0 {
		lastEvents = reportEvents
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- Hexagonal Zero session report ---\n")
	fmt.Fprintf(&b, "seed=%d level=%d tick=%d state=%s\n", s.seed, s.level, s.tick, s.state)
	fmt.Fprintf(&b, "score=%d combo=x%d max_combo=x%d moves_left=%d/%d\n",
		s.score, s.combo, s.maxCombo, s.movesLeft, s.cfg.Board.Moves)
	fmt.Fprintf(&b, "removed=%d bombs_created=%d bombs_fired=%d\n", s.removed, s.created, s.fired)
	fmt.Fprintf(&b, "orientation=%d gravity=%s angle=%.3f\n",
		s.grid.Orientation(), s.grid.Orientation(), s.angle)
	if res, ok := s.Result(); ok {
		fmt.Fprintf(&b, "result: %s\n", res)
	}
	level := s.Events.FilterTickRange(s.levelTick, s.tick)
	fmt.Fprintf(&b, "level_start_tick=%d level_events=%d\n", s.levelTick, len(level))
	b.WriteByte('\n')

	b.WriteString("board (columns by a, cells by c; digits are colours, H/R/* bombs, . empty):\n")
	b.WriteString(BoardString(s.grid))
	b.WriteByte('\n')

	events := s.Events.Tail(lastEvents)
	if events == "" {
		b.WriteString("(no events recorded yet)\n")
	} else {
		fmt.Fprintf(&b, "last %d events:\n", lastEvents)
		b.WriteString(events)
	}
	return b.String()
}

// BoardString draws the grid one storage column per line, indented so the
// hexagon shape shows.
func BoardString(g *board.Grid) string {
	var b strings.Builder
	size := g.Size()
	for i := 0; i < hex.Columns(size); i++ {
		n := hex.ColumnLen(size, i)
		b.WriteString(strings.Repeat(" ", hex.Columns(size)-n))
		for j := 0; j < n; j++ {
			p := hex.IndexToAxial(size, i, j)
			b.WriteByte(tileGlyph(g.At(p)))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func tileGlyph(t *board.Tile) byte {
	if t == nil {
		return '.'
	}
	switch t.Kind {
	case board.HexBomb:
		return 'H'
	case board.RowBomb:
		return 'R'
	case board.ColorBomb:
		return '*'
	}
	if t.Color >= 0 && t.Color < 10 {
		return byte('0' + t.Color)
	}
	return '?'
}

// CopyReport puts the session report on the system clipboard and notes
// the outcome in the message area.
func (s *Session) CopyReport() error {
	if err := s.clip(s.Report(0)); err != nil {
		s.SetMessage("clipboard unavailable")
		s.log.Warn().Err(err).Msg("copy report")
		return fmt.Errorf("copy report: %w", err)
	}
	s.SetMessage("report copied to clipboard")
	return nil
}
