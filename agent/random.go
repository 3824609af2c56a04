package agent

import (
	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/searcher"
	"fmt"
	"time"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rand *rand.Rand
}

// NewRandom returns an agent that plays a uniformly random legal move.
func NewRandom(seed uint64) Agent {
	return &randomAgent{rand: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) Name() string {
	return "random"
}

func (a *randomAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric, error) {
	start := time.Now()
	moves := state.Moves()
	if len(moves) == 0 {
		return game.NoMove, metrics.SearchMetric{}, fmt.Errorf("random move: %w", searcher.ErrNoLegalMoves)
	}
	move := moves[a.rand.Intn(len(moves))].Move
	return move, metrics.SearchMetric{Duration: time.Since(start)}, nil
}
