package board

import "github.com/Garsondee/Hexagonal-Zero/internal/hex"

// Stabilise recolours matched tiles until no run of three remains or limit
// passes ran. A matched tile takes a random colour that cannot complete a
// run through its cell whenever such a colour exists. It returns the
// passes used and whether the board ended without matches.
func (g *Grid) Stabilise(limit int) (int, bool) {
	for n := 0; n < limit; n++ {
		if !g.HasMatches() {
			return n, true
		}
		for _, grp := range g.MatchedGroups() {
			for _, t := range grp.Tiles {
				g.recolor(t, g.safeColor(t))
			}
		}
	}
	return limit, !g.HasMatches()
}

// safeColor picks a colour for t that no neighbouring pair along any axis
// would turn into a run, falling back to any colour.
func (g *Grid) safeColor(t *Tile) int {
	if g.nColors <= 0 {
		return 0
	}
	banned := make([]bool, g.nColors)
	for _, d := range hex.Directions[:3] {
		back1, back2 := g.At(t.Cube.Sub(d)), g.At(t.Cube.Sub(d.Scale(2)))
		fwd1, fwd2 := g.At(t.Cube.Add(d)), g.At(t.Cube.Add(d.Scale(2)))
		for _, pair := range [3][2]*Tile{{back1, back2}, {fwd1, fwd2}, {back1, fwd1}} {
			if pair[0].Matches(pair[1]) && pair[0].Color < g.nColors {
				banned[pair[0].Color] = true
			}
		}
	}
	free := make([]int, 0, g.nColors)
	for c, b := range banned {
		if !b {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return g.randomColor()
	}
	return free[g.rng.Intn(len(free))]
}

func (g *Grid) recolor(t *Tile, col int) {
	t.Color = col
	g.styleGeometry(t)
}
