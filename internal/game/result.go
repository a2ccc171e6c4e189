package game

import "fmt"

// Rating grades a finished level by points earned per move.
type Rating int

const (
	RatingNone Rating = iota
	RatingBronze
	RatingSilver
	RatingGold
)

func (r Rating) String() string {
	switch r {
	case RatingBronze:
		return "bronze"
	case RatingSilver:
		return "silver"
	case RatingGold:
		return "gold"
	case RatingNone:
		return "none"
	default:
		return "unknown"
	}
}

// Points per move needed for each rating.
const (
	bronzePerMove = 40
	silverPerMove = 80
	goldPerMove   = 160
)

// Result summarises a level at game over.
type Result struct {
	Level        int
	Score        int
	Moves        int // moves played
	MaxCombo     int
	Removed      int
	BombsCreated int
	BombsFired   int
	Rating       Rating
	Description  string
}

// PerMove returns the average score per move played.
func (r Result) PerMove() float64 {
	if r.Moves <= 0 {
		return 0
	}
	return float64(r.Score) / float64(r.Moves)
}

func (r Result) String() string {
	return fmt.Sprintf("level %d: score %d in %d moves (%s), max combo x%d, %d removed, %d bombs made, %d fired",
		r.Level, r.Score, r.Moves, r.Rating, r.MaxCombo, r.Removed, r.BombsCreated, r.BombsFired)
}

// DetermineResult grades the level from the session counters.
func DetermineResult(level, score, moves, maxCombo, removed, created, fired int) Result {
	res := Result{
		Level:        level,
		Score:        score,
		Moves:        moves,
		MaxCombo:     maxCombo,
		Removed:      removed,
		BombsCreated: created,
		BombsFired:   fired,
	}
	perMove := res.PerMove()
	switch {
	case moves == 0:
		res.Rating = RatingNone
		res.Description = "no_moves_played"
	case perMove >= goldPerMove:
		res.Rating = RatingGold
		res.Description = "gold_cascade_master"
	case perMove >= silverPerMove:
		res.Rating = RatingSilver
		res.Description = "silver_steady_chains"
	case perMove >= bronzePerMove:
		res.Rating = RatingBronze
		res.Description = "bronze_matches_made"
	default:
		res.Rating = RatingNone
		res.Description = "below_bronze"
	}
	return res
}
