package agent

import (
	"connectfour/experiments/metrics"
	"connectfour/game"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

type Agent interface {
	Name() string
	// FindMove returns a move and performance metrics (if collected) from the search process
	FindMove(state game.State) (game.Move, metrics.SearchMetric, error)
}

// Policy turns an agent into a position -> move function. It never returns
// NoMove while state has a legal move: failures and illegal moves fall back
// to the first legal one.
func Policy(a Agent) func(game.State) game.Move {
	return func(state game.State) game.Move {
		move, _, err := a.FindMove(state)
		if err != nil {
			log.Warn().Err(err).Msgf("%s failed to find a move, falling back", a.Name())
			return FirstLegal(state)
		}
		if !IsLegal(state, move) {
			log.Warn().Msgf("%s returned illegal move %d, falling back", a.Name(), move)
			return FirstLegal(state)
		}
		return move
	}
}

func IsLegal(state game.State, move game.Move) bool {
	return lo.ContainsBy(state.Moves(), func(t game.Transition) bool {
		return t.Move == move
	})
}

// FirstLegal returns the first move in generator order, or NoMove once the
// game is over.
func FirstLegal(state game.State) game.Move {
	first, ok := lo.First(state.Moves())
	if !ok {
		return game.NoMove
	}
	return first.Move
}
