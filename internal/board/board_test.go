package board

import (
	"math/rand"
	"testing"

	"github.com/Garsondee/Hexagonal-Zero/internal/hex"
)

func mod(v, m int) int { return ((v % m) + m) % m }

// striped builds a board with no two equal neighbours: colour 3+(a-c)%3.
// Colours 0..2 are free for planting runs.
func striped(size int) *Grid {
	g := NewEmpty(size, 6, nil, rand.New(rand.NewSource(7))) // #nosec G404 -- test
	for i := 0; i < hex.Columns(size); i++ {
		for j := 0; j < hex.ColumnLen(size, i); j++ {
			p := hex.IndexToAxial(size, i, j)
			g.Place(p, Regular, 3+mod(p.A-p.C, 3), hex.AxisA)
		}
	}
	return g
}

func plant(g *Grid, col int, cells ...hex.Cube) []*Tile {
	out := make([]*Tile, len(cells))
	for i, p := range cells {
		out[i] = g.Place(p, Regular, col, hex.AxisA)
	}
	return out
}

func checkPlacement(t *testing.T, g *Grid) {
	t.Helper()
	for _, tile := range g.Tiles() {
		if !tile.Valid() {
			t.Fatalf("tile %+v breaks a+b+c=0", tile.Cube)
		}
		if g.At(tile.Cube) != tile {
			t.Fatalf("tile at %+v not stored in its own slot", tile.Cube)
		}
	}
}

func TestStripedBoardHasNoMatches(t *testing.T) {
	for size := 1; size <= 6; size++ {
		g := striped(size)
		if g.HasMatches() {
			t.Fatalf("size %d: striped board should have no runs", size)
		}
		if got := g.Count(); got != hex.CellCount(size) {
			t.Fatalf("size %d: expected full board, got %d tiles", size, got)
		}
	}
}

func TestRunDetection(t *testing.T) {
	g := striped(3)
	ones := plant(g, 1, hex.Axial(0, -2), hex.Axial(0, -1), hex.Axial(0, 0))
	plant(g, 2, hex.Axial(0, 1), hex.Axial(0, 2))

	if !g.HasMatches() {
		t.Fatal("expected [1,1,1,2,2] to contain a match")
	}
	groups := g.MatchedGroups()
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	grp := groups[0]
	if len(grp.Tiles) != 3 || grp.Axis != hex.AxisA || !grp.Line || grp.Run != 3 {
		t.Fatalf("unexpected group %+v", grp)
	}
	for i, tile := range grp.Tiles {
		if tile != ones[i] {
			t.Fatalf("group tile %d is %+v, want %+v", i, tile.Cube, ones[i].Cube)
		}
	}
}

func TestMatchedGroupsNoDuplicates(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- test
		g := New(6, 3, nil, rng)
		seen := map[*Tile]bool{}
		for _, grp := range g.MatchedGroups() {
			for _, tile := range grp.Tiles {
				if seen[tile] {
					t.Fatalf("seed %d: tile %+v collected twice", seed, tile.Cube)
				}
				seen[tile] = true
				if tile.MatchCount < 1 {
					t.Fatalf("seed %d: collected tile has MatchCount %d", seed, tile.MatchCount)
				}
			}
		}
	}
}

func TestCrossingRunsMakeHexBomb(t *testing.T) {
	g := striped(4)
	plant(g, 0, hex.Axial(0, -1), hex.Axial(0, 0), hex.Axial(0, 1), hex.Axial(-1, 0), hex.Axial(1, 0))

	groups := g.MatchedGroups()
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	centre := g.Get(0, 0)
	if centre.MatchCount != 2 {
		t.Fatalf("expected centre MatchCount 2, got %d", centre.MatchCount)
	}
	total := len(groups[0].Tiles) + len(groups[1].Tiles)
	if total != 5 {
		t.Fatalf("expected 5 distinct tiles, got %d", total)
	}

	res := g.Resolve(groups)
	if len(res.Removed) != 4 {
		t.Fatalf("expected 4 removed, got %d", len(res.Removed))
	}
	if len(res.Created) != 1 || res.Created[0] != centre || centre.Kind != HexBomb {
		t.Fatalf("expected centre to become a hex bomb, got %+v", res.Created)
	}
	if g.Get(0, 0) != centre {
		t.Fatal("hex bomb should stay in its slot")
	}
	if got := res.Score(DefaultScoring(), 1); got != 10*4+10*5 {
		t.Fatalf("expected score 90, got %d", got)
	}
}

func TestFourRunMakesRowBomb(t *testing.T) {
	g := striped(3)
	run := plant(g, 0, hex.Axial(0, -2), hex.Axial(0, -1), hex.Axial(0, 0), hex.Axial(0, 1))

	res := g.Resolve(g.MatchedGroups())
	if len(res.Created) != 1 || res.Created[0] != run[2] {
		t.Fatalf("expected the third tile promoted, got %+v", res.Created)
	}
	if run[2].Kind != RowBomb || run[2].Axis != hex.AxisA {
		t.Fatalf("expected row bomb along a, got %v along %v", run[2].Kind, run[2].Axis)
	}
	if len(res.Removed) != 3 {
		t.Fatalf("expected 3 removed, got %d", len(res.Removed))
	}
	if g.Empty() != 3 {
		t.Fatalf("expected 3 empty cells, got %d", g.Empty())
	}
}

func TestPromotionPrefersSwappedTile(t *testing.T) {
	g := striped(3)
	run := plant(g, 0, hex.Axial(0, -2), hex.Axial(0, -1), hex.Axial(0, 0), hex.Axial(0, 1))

	res := g.Resolve(g.MatchedGroups(), nil, run[0])
	if len(res.Created) != 1 || res.Created[0] != run[0] {
		t.Fatalf("expected preferred tile promoted, got %+v", res.Created)
	}
}

func TestFiveRunMakesColorBomb(t *testing.T) {
	g := striped(3)
	run := plant(g, 0, hex.Axial(0, -2), hex.Axial(0, -1), hex.Axial(0, 0), hex.Axial(0, 1), hex.Axial(0, 2))

	res := g.Resolve(g.MatchedGroups())
	if len(res.Created) != 1 || run[2].Kind != ColorBomb {
		t.Fatalf("expected a colour bomb, got %+v", res.Created)
	}
	if run[2].Color != NoColor {
		t.Fatalf("colour bomb should have no colour, got %d", run[2].Color)
	}
	if len(res.Removed) != 4 {
		t.Fatalf("expected 4 removed, got %d", len(res.Removed))
	}
	if got := res.Score(DefaultScoring(), 2); got != 10*4*2+10*10*2 {
		t.Fatalf("unexpected score %d", got)
	}
}

func TestRowBombClearsLine(t *testing.T) {
	g := striped(4)
	plant(g, 0, hex.Axial(0, -1), hex.Axial(0, 1))
	bomb := g.Place(hex.Axial(0, 0), RowBomb, 0, hex.AxisC)

	res := g.Resolve(g.MatchedGroups())
	// Three matched along a, plus the other six cells of line c=0.
	if len(res.Removed) != 9 {
		t.Fatalf("expected 9 removed, got %d", len(res.Removed))
	}
	if len(res.Triggered) != 1 || res.Triggered[0] != bomb {
		t.Fatalf("expected the row bomb to trigger, got %+v", res.Triggered)
	}
	for _, p := range hex.Line(4, hex.AxisC, 0) {
		if g.At(p) != nil {
			t.Fatalf("cell %+v on the bomb line should be empty", p)
		}
	}
}

func TestHexBombChainTerminates(t *testing.T) {
	g := striped(5)
	bomb := g.Place(hex.Axial(0, 0), HexBomb, 3, hex.AxisA)
	res := g.Detonate(bomb)
	if len(res.Removed) != 7 {
		t.Fatalf("centre blast: expected 7 removed, got %d", len(res.Removed))
	}

	g = striped(5)
	bomb = g.Place(hex.Axial(4, -4), HexBomb, 3, hex.AxisA)
	res = g.Detonate(bomb)
	if len(res.Removed) != 4 {
		t.Fatalf("corner blast: expected 4 removed, got %d", len(res.Removed))
	}

	g = striped(5)
	first := g.Place(hex.Axial(0, 0), HexBomb, 3, hex.AxisA)
	g.Place(hex.Axial(1, 0), HexBomb, 4, hex.AxisA)
	res = g.Detonate(first)
	if len(res.Removed) != 10 || len(res.Triggered) != 2 {
		t.Fatalf("chained blast: expected 10 removed by 2 bombs, got %d by %d",
			len(res.Removed), len(res.Triggered))
	}
	removed := map[*Tile]bool{}
	for _, tile := range res.Removed {
		if removed[tile] {
			t.Fatalf("tile %+v removed twice", tile.Cube)
		}
		removed[tile] = true
	}
}

func TestColorBombSurvivesBlast(t *testing.T) {
	g := striped(3)
	bomb := g.Place(hex.Axial(0, 0), HexBomb, 3, hex.AxisA)
	cb := g.Place(hex.Axial(1, 0), ColorBomb, 0, hex.AxisA)

	res := g.Detonate(bomb)
	if len(res.Removed) != 6 {
		t.Fatalf("expected 6 removed, got %d", len(res.Removed))
	}
	if g.Get(1, 0) != cb {
		t.Fatal("colour bomb should survive the blast")
	}
}

func TestPromotedBombStillFires(t *testing.T) {
	g := striped(4)
	plant(g, 0, hex.Axial(0, -1), hex.Axial(0, 1), hex.Axial(0, 2))
	bomb := g.Place(hex.Axial(0, 0), HexBomb, 0, hex.AxisA)

	res := g.Resolve(g.MatchedGroups(), bomb)
	if bomb.Kind != RowBomb || g.Get(0, 0) != bomb {
		t.Fatalf("expected hex bomb promoted to row bomb in place, got %v", bomb.Kind)
	}
	// Three run tiles plus the four neighbours off the run.
	if len(res.Removed) != 7 {
		t.Fatalf("expected 7 removed, got %d", len(res.Removed))
	}
}

func TestColorMatchAndAllTiles(t *testing.T) {
	g := striped(3)
	groups := g.ColorMatch(4)
	want := 0
	for _, tile := range g.Tiles() {
		if tile.Color == 4 {
			want++
		}
	}
	if len(groups) != 1 || len(groups[0].Tiles) != want || groups[0].Line {
		t.Fatalf("expected one non-line group of %d, got %+v", want, groups)
	}
	all := g.AllTileMatch()
	if len(all[0].Tiles) != hex.CellCount(3) {
		t.Fatalf("expected every tile, got %d", len(all[0].Tiles))
	}
	res := g.Resolve(all)
	if g.Count() != 0 || len(res.Removed) != hex.CellCount(3) {
		t.Fatalf("expected a cleared board, %d tiles remain", g.Count())
	}
}

func TestCloseGapsConservesColumns(t *testing.T) {
	for o := 0; o < hex.OrientationCount; o++ {
		rng := rand.New(rand.NewSource(int64(o) + 3)) // #nosec G404 -- test
		g := New(5, 4, nil, rng)
		for i := 0; i < o; i++ {
			g.Rotate(false)
		}
		for _, tile := range g.Tiles() {
			if rng.Intn(3) == 0 {
				g.Remove(tile)
			}
		}
		grav := g.Orientation().Gravity()
		before := map[int]int{}
		for _, tile := range g.Tiles() {
			before[tile.Coord(grav.Column)]++
		}

		cols := g.CloseGaps()
		checkPlacement(t, g)
		for _, col := range cols {
			cells := g.bottomUp(grav, col.Value)
			n := 0
			for n < len(cells) && g.At(cells[n]) != nil {
				n++
			}
			for _, p := range cells[n:] {
				if g.At(p) != nil {
					t.Fatalf("orientation %d column %d: gap below a tile", o, col.Value)
				}
			}
			if n != before[col.Value] {
				t.Fatalf("orientation %d column %d: %d tiles, had %d", o, col.Value, n, before[col.Value])
			}
			if col.Missing != len(cells)-n {
				t.Fatalf("orientation %d column %d: missing %d, want %d", o, col.Value, col.Missing, len(cells)-n)
			}
			for _, tile := range col.Shifted {
				x, y := hex.CubeToPixel(tile.Cube)
				if tile.TargetX != x || tile.TargetY != y {
					t.Fatalf("shifted tile target not updated")
				}
			}
		}

		empty := g.Empty()
		added := g.Refill()
		if len(added) != empty || g.Empty() != 0 {
			t.Fatalf("refill added %d of %d, %d still empty", len(added), empty, g.Empty())
		}
		checkPlacement(t, g)
	}
}

func TestSpawnOffsetIsAboveColumn(t *testing.T) {
	g := striped(4)
	p := hex.Axial(0, -3)
	grav := g.Orientation().Gravity()
	q := g.SpawnOffset(p, 2)
	if q.Coord(grav.Column) != p.Coord(grav.Column) {
		t.Fatal("spawn point left its column")
	}
	if hex.Distance(p, q) != 2 {
		t.Fatalf("expected spawn 2 cells up, got %d", hex.Distance(p, q))
	}
	if g.ColumnOf(p) != p.Coord(grav.Column)+3 {
		t.Fatal("unexpected column index")
	}
}

func TestSwapKeepsPlacement(t *testing.T) {
	g := striped(3)
	a, b := g.Get(0, 0), g.Get(1, 0)
	g.Swap(a, b)
	if g.Get(1, 0) != a || g.Get(0, 0) != b {
		t.Fatal("swap did not exchange slots")
	}
	checkPlacement(t, g)
}

func TestRotateSixTimes(t *testing.T) {
	g := striped(2)
	for _, cw := range []bool{true, false} {
		start := g.Orientation()
		for i := 0; i < 6; i++ {
			g.Rotate(cw)
		}
		if g.Orientation() != start {
			t.Fatalf("six rotations (cw=%v) changed orientation to %v", cw, g.Orientation())
		}
	}
}

func TestChangeTypeKeepsIdentity(t *testing.T) {
	g := striped(3)
	tile := g.Get(0, 0)
	g.ChangeType(tile, ColorBomb, hex.AxisB)
	if g.Get(0, 0) != tile || tile.Color != NoColor || tile.Geometry.Shape != ShapeWedges {
		t.Fatalf("unexpected tile after conversion: %+v", tile)
	}
	if tile.Matches(tile) {
		t.Fatal("colour bombs never match")
	}
}

func TestFindMove(t *testing.T) {
	g := striped(4)
	plant(g, 0, hex.Axial(0, -2), hex.Axial(0, -1), hex.Axial(1, 0))
	t1, t2, ok := g.FindMove()
	if !ok {
		t.Fatal("expected a move")
	}
	if Distance(t1, t2) != 1 {
		t.Fatalf("move tiles not adjacent")
	}
	g.Swap(t1, t2)
	if !g.HasMatches() {
		t.Fatal("suggested move makes no match")
	}

	if _, _, ok := striped(1).FindMove(); ok {
		t.Fatal("a single cell has no move")
	}
}

func TestPaletteDistinct(t *testing.T) {
	p, err := NewPalette(6, DefaultBaseColor)
	if err != nil {
		t.Fatalf("NewPalette: %v", err)
	}
	seen := map[[3]uint8]bool{}
	for i := 0; i < p.Len(); i++ {
		c := p.Color(i)
		key := [3]uint8{c.R, c.G, c.B}
		if seen[key] {
			t.Fatalf("colour %d repeats %v", i, c)
		}
		seen[key] = true
	}
	if _, err := NewPalette(0, DefaultBaseColor); err == nil {
		t.Fatal("expected an error for an empty palette")
	}
	if _, err := NewPalette(3, "not-a-colour"); err == nil {
		t.Fatal("expected an error for a bad base colour")
	}
}

func TestStabiliseClearsRunsInPlace(t *testing.T) {
	for size := 3; size <= 12; size++ {
		for _, colors := range []int{3, 4, 12} {
			for seed := int64(1); seed <= 3; seed++ {
				g := New(size, colors, nil, rand.New(rand.NewSource(seed))) // #nosec G404 -- test
				before := g.Tiles()
				passes, ok := g.Stabilise(200)
				if !ok || g.HasMatches() {
					t.Fatalf("size=%d colors=%d seed=%d: still matched after %d passes", size, colors, seed, passes)
				}
				after := g.Tiles()
				if len(after) != hex.CellCount(size) {
					t.Fatalf("size=%d: expected a full board, got %d tiles", size, len(after))
				}
				for i := range before {
					if before[i] != after[i] {
						t.Fatalf("size=%d: tile %d replaced instead of recoloured", size, i)
					}
					if c := after[i].Color; c < 0 || c >= colors {
						t.Fatalf("size=%d: colour %d out of range", size, c)
					}
				}
			}
		}
	}
}

func TestSafeColorAvoidsRuns(t *testing.T) {
	g := striped(3)
	// Pairs on both sides of the centre along axis a: c=-2,-1 and c=1,2.
	plant(g, 0, hex.Axial(0, -2), hex.Axial(0, -1))
	plant(g, 1, hex.Axial(0, 1), hex.Axial(0, 2))
	centre := g.Get(0, 0)
	for i := 0; i < 50; i++ {
		if c := g.safeColor(centre); c == 0 || c == 1 {
			t.Fatalf("safe colour %d would complete a run", c)
		}
	}
}
