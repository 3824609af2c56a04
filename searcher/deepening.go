package searcher

import (
	"connectfour/experiments/metrics"
	"connectfour/game"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"
)

// FindTimed deepens the search one ply at a time until the budget runs out,
// a win or loss is proven, or the max depth is reached. The clock is only
// read between depths, so the last depth may overrun the budget; its result
// is then discarded, unless it is the min depth, which is always used.
func (s *Searcher) FindTimed(state game.State, evaluate game.Evaluate, budget time.Duration) (game.Move, metrics.SearchMetric, error) {
	s.metrics.Start()
	transitions := s.generate(state)
	if game.IsOver(state) || len(transitions) == 0 {
		return game.NoMove, s.metrics.Complete(), fmt.Errorf("deepening search: %w", ErrNoLegalMoves)
	}

	start := s.now()
	best := worst()
	completed := 0
	for depth := s.minDepth; depth <= s.maxDepth; depth++ {
		result, err := s.Best(state, depth, evaluate)
		if err != nil {
			return game.NoMove, s.metrics.Complete(), err
		}

		elapsed := s.now().Sub(start)
		late := elapsed > budget
		if late && depth > s.minDepth {
			log.Debug().Int("depth", depth).Dur("elapsed", elapsed).Msg("discarding late iteration")
			break
		}

		best, completed = result, depth
		log.Debug().
			Int("depth", depth).
			Int("move", int(result.Move)).
			Float64("score", result.Score).
			Dur("elapsed", elapsed).
			Msg("iteration complete")

		if late || math.Abs(result.Score) >= game.WinThreshold {
			break
		}
	}

	if !best.HasMove() {
		best.Move = transitions[0].Move
	}
	s.metrics.SetDepth(completed)
	s.metrics.SetScore(best.Score)
	return best.Move, s.metrics.Complete(), nil
}

// TimeBounded picks a move for the player to move in state within roughly the
// given budget with a default Searcher.
func TimeBounded(state game.State, evaluate game.Evaluate, budget time.Duration) (game.Move, error) {
	move, _, err := New().FindTimed(state, evaluate, budget)
	return move, err
}
