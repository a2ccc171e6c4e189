package game

// State is the phase of the session state machine.
type State int

const (
	StateIdle State = iota
	StateHexSelected
	StateHexSwap
	StateHexUnswap
	StateRemovingMatches
	StateCloseGaps
	StateRotating
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateHexSelected:
		return "hex_selected"
	case StateHexSwap:
		return "hex_swap"
	case StateHexUnswap:
		return "hex_unswap"
	case StateRemovingMatches:
		return "removing_matches"
	case StateCloseGaps:
		return "close_gaps"
	case StateRotating:
		return "rotating"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Busy reports whether the state is an animation that must finish before
// the player can act again.
func (s State) Busy() bool {
	return s != StateIdle && s != StateHexSelected
}
