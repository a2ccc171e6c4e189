package board

import "github.com/Garsondee/Hexagonal-Zero/internal/hex"

// Scoring holds the base score per removed tile and the bonus multiplier
// per created bomb kind.
type Scoring struct {
	Base      int `yaml:"base"`
	RowBomb   int `yaml:"row_bomb"`
	HexBomb   int `yaml:"hex_bomb"`
	ColorBomb int `yaml:"color_bomb"`
}

// DefaultScoring returns the stock score table.
func DefaultScoring() Scoring {
	return Scoring{Base: 10, RowBomb: 3, HexBomb: 5, ColorBomb: 10}
}

func (s Scoring) bonus(k Kind) int {
	switch k {
	case RowBomb:
		return s.RowBomb
	case HexBomb:
		return s.HexBomb
	case ColorBomb:
		return s.ColorBomb
	}
	return 0
}

// Resolution is what one removal pass did to the board.
type Resolution struct {
	Removed   []*Tile // cleared from the grid, in trigger order
	Created   []*Tile // converted into bombs and kept on the grid
	Triggered []*Tile // bombs that detonated
}

// Score returns the points for the pass at the given combo multiplier.
func (r Resolution) Score(s Scoring, combo int) int {
	total := s.Base * len(r.Removed) * combo
	for _, t := range r.Created {
		total += s.Base * s.bonus(t.Kind) * combo
	}
	return total
}

// Empty reports whether the pass neither removed nor created anything.
func (r Resolution) Empty() bool { return len(r.Removed) == 0 && len(r.Created) == 0 }

// resolver is the bookkeeping for one Resolve call.
type resolver struct {
	g       *Grid
	queue   []*Tile
	queued  map[*Tile]bool
	matched map[*Tile]bool
	created map[*Tile]bool
	flagged []*Tile
	res     Resolution
}

func (r *resolver) enqueue(t *Tile) {
	if t == nil || r.queued[t] {
		return
	}
	r.queued[t] = true
	r.queue = append(r.queue, t)
}

func (r *resolver) blast(kind Kind, p hex.Cube, ax hex.Axis) {
	fn := kindTraits[kind].blast
	if fn == nil {
		return
	}
	for _, q := range fn(r.g, p, ax) {
		r.enqueue(r.g.At(q))
	}
}

func (r *resolver) create(t *Tile, kind Kind, ax hex.Axis) {
	r.g.ChangeType(t, kind, ax)
	r.created[t] = true
	r.res.Created = append(r.res.Created, t)
}

// promotion picks the tile a long run turns into a bomb: the first
// preferred tile in the group, else the third.
func promotion(grp Group, preferred []*Tile) *Tile {
	for _, p := range preferred {
		for _, t := range grp.Tiles {
			if t == p && p != nil {
				return t
			}
		}
	}
	switch n := len(grp.Tiles); {
	case n == 0:
		return nil
	case n > 2:
		return grp.Tiles[2]
	default:
		return grp.Tiles[n-1]
	}
}

// Resolve runs one removal pass over the matched groups. Long runs promote
// a member into a row or colour bomb, bombs detonate in a breadth-first
// chain, tiles matched by more than one run become hex bombs and every
// other tile reached is removed from the grid. Colour bombs reached only by
// a blast survive. Each tile is visited at most once, so the pass always
// terminates.
func (g *Grid) Resolve(groups []Group, preferred ...*Tile) Resolution {
	r := &resolver{
		g:       g,
		queued:  make(map[*Tile]bool),
		matched: make(map[*Tile]bool),
		created: make(map[*Tile]bool),
	}
	for _, grp := range groups {
		for _, t := range grp.Tiles {
			r.matched[t] = true
		}
	}

	for _, grp := range groups {
		var promoted *Tile
		if grp.Line && grp.Run > minRun {
			promoted = promotion(grp, preferred)
		}
		if promoted != nil {
			oldKind, oldAxis := promoted.Kind, promoted.Axis
			kind := RowBomb
			if grp.Run > minRun+1 {
				kind = ColorBomb
			}
			r.queued[promoted] = true
			r.create(promoted, kind, grp.Axis)
			if oldKind.Fires() {
				r.res.Triggered = append(r.res.Triggered, promoted)
				r.blast(oldKind, promoted.Cube, oldAxis)
			}
		}
		for _, t := range grp.Tiles {
			if t != promoted {
				r.enqueue(t)
			}
		}
	}

	for len(r.queue) > 0 {
		t := r.queue[0]
		r.queue = r.queue[1:]
		if r.created[t] {
			continue
		}
		if t.Kind == ColorBomb && !r.matched[t] {
			continue
		}
		if !r.matched[t] {
			t.MatchCount = 1
		}
		r.flagged = append(r.flagged, t)
		if t.Kind.Fires() {
			r.res.Triggered = append(r.res.Triggered, t)
			r.blast(t.Kind, t.Cube, t.Axis)
		}
	}

	for _, t := range r.flagged {
		if t.MatchCount > 1 {
			r.create(t, HexBomb, t.Axis)
			continue
		}
		g.Remove(t)
		r.res.Removed = append(r.res.Removed, t)
	}
	return r.res
}

// Detonate fires a single bomb as if it had been matched on its own.
func (g *Grid) Detonate(t *Tile) Resolution {
	t.MatchCount = 1
	return g.Resolve([]Group{{Tiles: []*Tile{t}, Axis: t.Axis, Run: 1}})
}
