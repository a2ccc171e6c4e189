package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/Garsondee/Hexagonal-Zero/internal/config"
	"github.com/Garsondee/Hexagonal-Zero/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64

	outcome string // finished, stuck, timeout
	endTick int
	result  game.Result

	firstMatchTick  int
	firstBombTick   int
	firstComboTick  int
	firstRotateTick int

	swaps      int
	swapFails  int
	groups     int
	combos     int
	refills    int
	rotations  int
	colorBombs int
	pairBombs  int
	bombKinds  map[string]int
}

type runParams struct {
	size     int
	colors   int
	moves    int
	maxTicks int
}

func main() {
	var runs int
	var p runParams
	var seedBase int64
	var seedStep int64

	flag.IntVar(&runs, "runs", 5, "number of headless levels to play")
	flag.IntVar(&p.size, "size", 5, "board rings")
	flag.IntVar(&p.colors, "colors", 6, "tile colours")
	flag.IntVar(&p.moves, "moves", 20, "moves per level")
	flag.IntVar(&p.maxTicks, "max-ticks", 60*60*10, "tick limit per level")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if p.maxTicks <= 0 {
		fmt.Println("error: -max-ticks must be > 0")
		return
	}
	if err := p.validate(); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("=== Headless Hexagonal Zero Report ===\n")
	fmt.Printf("size=%d colors=%d moves=%d runs=%d max_ticks=%d seed_base=%d seed_step=%d\n\n",
		p.size, p.colors, p.moves, runs, p.maxTicks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := playLevel(i+1, seed, p)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

// validate applies the game's own board limits to the flags.
func (p runParams) validate() error {
	cfg := config.Default()
	cfg.Board.Size, cfg.Board.Colors, cfg.Board.Moves = p.size, p.colors, p.moves
	return cfg.Validate()
}

func playLevel(runIndex int, seed int64, p runParams) runStats {
	ts := game.NewTestSession(
		game.WithSize(p.size),
		game.WithColors(p.colors),
		game.WithMoves(p.moves),
		game.WithSeed(seed),
	)
	res, ok := ts.PlayLevel(p.maxTicks)
	snap := ts.Snapshot()

	entries := ts.Events.Entries()
	rs := runStats{
		runIndex:        runIndex,
		seed:            seed,
		outcome:         classifyRun(ok, snap.Tick, p.maxTicks),
		endTick:         snap.Tick,
		result:          res,
		firstMatchTick:  firstTick(entries, "match", "group", ""),
		firstBombTick:   firstTick(entries, "bomb", "created", ""),
		firstComboTick:  firstTick(entries, "score", "combo", "x2"),
		firstRotateTick: firstTick(entries, "board", "rotate", ""),
		swaps:           ts.Events.Count("input", "swap"),
		swapFails:       ts.Events.Count("input", "swap_fail"),
		groups:          ts.Events.Count("match", "group"),
		combos:          ts.Events.Count("score", "combo"),
		refills:         ts.Events.Count("board", "refill"),
		rotations:       ts.Events.Count("board", "rotate"),
		colorBombs:      ts.Events.Count("bomb", "color"),
		pairBombs:       ts.Events.Count("bomb", "color_pair"),
		bombKinds:       bombKinds(entries),
	}
	if !ok {
		// Unfinished levels still report what was scored so far.
		rs.result = game.DetermineResult(ts.Level(), ts.Score(), p.moves-snap.MovesLeft, 0, 0, 0, 0)
	}
	return rs
}

// classifyRun names how a level ended.
func classifyRun(finished bool, endTick, maxTicks int) string {
	switch {
	case finished:
		return "finished"
	case endTick >= maxTicks:
		return "timeout"
	default:
		return "stuck"
	}
}

func firstTick(entries []game.EventEntry, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Tick
		}
	}
	return -1
}

// bombKinds counts created bombs by kind name ("hex-bomb at (1,-2)").
func bombKinds(entries []game.EventEntry) map[string]int {
	out := map[string]int{}
	for _, e := range entries {
		if e.Category != "bomb" || e.Key != "created" {
			continue
		}
		kind, _, _ := strings.Cut(e.Value, " ")
		out[kind]++
	}
	return out
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("outcome=%s end_tick=%d\n", rs.outcome, rs.endTick)
	fmt.Printf("result: %s\n", rs.result)
	fmt.Printf("phase_markers: first_match=%d first_bomb=%d first_combo_x2=%d first_rotate=%d\n",
		rs.firstMatchTick, rs.firstBombTick, rs.firstComboTick, rs.firstRotateTick)
	fmt.Printf("event_totals: swap=%d swap_fail=%d group=%d combo=%d refill=%d rotate=%d\n",
		rs.swaps, rs.swapFails, rs.groups, rs.combos, rs.refills, rs.rotations)
	fmt.Printf("bomb_events: color=%d color_pair=%d created=%s\n",
		rs.colorBombs, rs.pairBombs, joinCounts(rs.bombKinds))
	fmt.Println()
}

func printAggregate(all []runStats) {
	totalScore := 0
	totalMoves := 0
	totalRemoved := 0
	totalGroups := 0
	totalFails := 0
	totalRotations := 0
	bestCombo := 0

	matchTicks := make([]int, 0, len(all))
	bombTicks := make([]int, 0, len(all))
	comboTicks := make([]int, 0, len(all))
	outcomes := map[string]int{}
	ratings := map[string]int{}
	kinds := map[string]int{}

	for _, rs := range all {
		totalScore += rs.result.Score
		totalMoves += rs.result.Moves
		totalRemoved += rs.result.Removed
		totalGroups += rs.groups
		totalFails += rs.swapFails
		totalRotations += rs.rotations
		if rs.result.MaxCombo > bestCombo {
			bestCombo = rs.result.MaxCombo
		}
		if rs.firstMatchTick >= 0 {
			matchTicks = append(matchTicks, rs.firstMatchTick)
		}
		if rs.firstBombTick >= 0 {
			bombTicks = append(bombTicks, rs.firstBombTick)
		}
		if rs.firstComboTick >= 0 {
			comboTicks = append(comboTicks, rs.firstComboTick)
		}
		outcomes[rs.outcome]++
		if rs.outcome == "finished" {
			ratings[rs.result.Rating.String()]++
		}
		for k, n := range rs.bombKinds {
			kinds[k] += n
		}
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d outcomes=%s\n", len(all), joinCounts(outcomes))
	fmt.Printf("avg_per_run: score=%.1f moves=%.1f removed=%.1f groups=%.1f swap_fail=%.1f rotate=%.1f\n",
		avg(totalScore, len(all)), avg(totalMoves, len(all)), avg(totalRemoved, len(all)),
		avg(totalGroups, len(all)), avg(totalFails, len(all)), avg(totalRotations, len(all)))
	fmt.Printf("score_per_move=%.1f best_combo=x%d\n", avg(totalScore, totalMoves), bestCombo)
	fmt.Printf("phase_marker_avg_ticks: first_match=%s first_bomb=%s first_combo_x2=%s\n",
		avgTickString(matchTicks), avgTickString(bombTicks), avgTickString(comboTicks))
	fmt.Printf("ratings=%s\n", joinCounts(ratings))
	fmt.Printf("bombs_created=%s\n", joinCounts(kinds))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func joinCounts(m map[string]int) string {
	if len(m) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s:%d", k, m[k]))
	}
	return strings.Join(parts, ",")
}
