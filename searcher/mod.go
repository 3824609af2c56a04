package searcher

import (
	"connectfour/game"
	"errors"
	"fmt"
	"math"
)

var (
	ErrContractViolation = errors.New("move generator broke its contract")
	ErrNoLegalMoves      = errors.New("no legal moves")
)

// Result is a searched score from the perspective of the player to move,
// with the move achieving it. Move is NoMove at leaves.
type Result struct {
	Score float64
	Move  game.Move
}

func (r Result) HasMove() bool {
	return r.Move != game.NoMove
}

func leaf(score float64) Result {
	return Result{Score: score, Move: game.NoMove}
}

// worst is the starting point of every node before its first child is scored.
func worst() Result {
	return leaf(math.Inf(-1))
}

// childWindow flips the (alpha, beta) bounds into the child's perspective.
func childWindow(alpha, beta float64) (float64, float64) {
	return -beta, -alpha
}

func checkTransition(parent game.State, t game.Transition) error {
	if t.Move == game.NoMove {
		return fmt.Errorf("%w: transition without a move", ErrContractViolation)
	}
	if t.State == nil {
		return fmt.Errorf("%w: move %d has no resulting state", ErrContractViolation, t.Move)
	}
	if t.State.Player() == parent.Player() {
		return fmt.Errorf("%w: move %d did not pass the turn from %s", ErrContractViolation, t.Move, parent.Player())
	}
	return nil
}
