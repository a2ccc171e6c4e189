package board

import "github.com/Garsondee/Hexagonal-Zero/internal/hex"

// minRun is the shortest run of equal colours that counts as a match.
const minRun = 3

// Group is one set of matched tiles.
type Group struct {
	Tiles []*Tile
	Axis  hex.Axis
	Line  bool // all tiles lie on one line of Axis
	Run   int  // run length before tiles shared with earlier groups were dropped
}

// scanRuns walks every board line along all three axes and calls fn for
// each run of at least minRun equal-coloured tiles. fn returns false to
// stop the scan.
func (g *Grid) scanRuns(fn func(ax hex.Axis, run []*Tile) bool) {
	run := make([]*Tile, 0, 2*g.size)
	for _, ax := range hex.Axes {
		for v := -g.size + 1; v <= g.size-1; v++ {
			run = run[:0]
			for _, p := range hex.Line(g.size, ax, v) {
				t := g.At(p)
				if len(run) > 0 && run[len(run)-1].Matches(t) {
					run = append(run, t)
					continue
				}
				if len(run) >= minRun && !fn(ax, run) {
					return
				}
				run = run[:0]
				if t != nil && t.Matches(t) {
					run = append(run, t)
				}
			}
			if len(run) >= minRun && !fn(ax, run) {
				return
			}
		}
	}
}

// HasMatches reports whether any run of three or more exists.
func (g *Grid) HasMatches() bool {
	found := false
	g.scanRuns(func(hex.Axis, []*Tile) bool {
		found = true
		return false
	})
	return found
}

// MatchedGroups collects every tile of every run along all three axes.
// Each tile appears once across the result; MatchCount records how many
// runs touched it, which is what turns crossings into hex bombs.
func (g *Grid) MatchedGroups() []Group {
	g.epoch++
	var groups []Group
	g.scanRuns(func(ax hex.Axis, run []*Tile) bool {
		grp := Group{Axis: ax, Line: true, Run: len(run)}
		for _, t := range run {
			if t.seen == g.epoch {
				t.MatchCount++
				continue
			}
			t.seen = g.epoch
			t.MatchCount = 1
			grp.Tiles = append(grp.Tiles, t)
		}
		groups = append(groups, grp)
		return true
	})
	return groups
}

// ColorMatch returns one group holding every tile of the given colour.
func (g *Grid) ColorMatch(col int) []Group {
	grp := Group{}
	for _, t := range g.Tiles() {
		if t.Color == col && col != NoColor {
			t.MatchCount = 1
			grp.Tiles = append(grp.Tiles, t)
		}
	}
	grp.Run = len(grp.Tiles)
	return []Group{grp}
}

// AllTileMatch returns one group holding every tile on the board.
func (g *Grid) AllTileMatch() []Group {
	tiles := g.Tiles()
	for _, t := range tiles {
		t.MatchCount = 1
	}
	return []Group{{Tiles: tiles, Run: len(tiles)}}
}

// FindMove returns the first adjacent pair whose swap produces a match.
// Any pair with a colour bomb qualifies.
func (g *Grid) FindMove() (*Tile, *Tile, bool) {
	for _, t := range g.Tiles() {
		// Three directions cover every unordered neighbour pair.
		for _, d := range hex.Directions[:3] {
			o := g.At(t.Cube.Add(d))
			if o == nil {
				continue
			}
			if t.Kind == ColorBomb || o.Kind == ColorBomb {
				return t, o, true
			}
			if t.Matches(o) {
				continue
			}
			g.Swap(t, o)
			ok := g.HasMatches()
			g.Swap(t, o)
			if ok {
				return t, o, true
			}
		}
	}
	return nil, nil, false
}
