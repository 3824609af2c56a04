package engine

import (
	"connectfour/agent"
	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/meta"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

type Option func(e *localEngine)

// WithMaxTurns caps the number of moves played before the game is abandoned.
func WithMaxTurns(turns int) Option {
	return func(e *localEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

type localEngine struct {
	state    game.State
	agents   map[game.Player]agent.Agent
	maxTurns int
}

// LocalEngine seats first as game.First and second as game.Second. The
// player to move in start goes first.
func LocalEngine(first, second agent.Agent, start game.State, options ...Option) Engine {
	if first == nil || second == nil {
		panic("need two agents")
	}
	if start == nil {
		panic("need a starting state")
	}

	e := &localEngine{
		state: start,
		agents: map[game.Player]agent.Agent{
			game.First:  first,
			game.Second: second,
		},
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game loop until the game is over.
func (e *localEngine) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.state.Player(),
		StartTime:      time.Now(),
	}
	log.Info().Msgf("%s (%s) is starting", e.state.Player(), e.agents[e.state.Player()].Name())

	var moveMetrics []metrics.MoveMetric
	turn := 1
	for !game.IsOver(e.state) && turn <= e.maxTurns {
		player := e.state.Player()
		a := e.agents[player]

		move, searchMetric, err := a.FindMove(e.state)
		if err != nil {
			log.Warn().Err(err).Msgf("%s failed to find a move", a.Name())
		}
		next, ok := e.transition(move)
		if !ok {
			fallback := agent.FirstLegal(e.state)
			log.Warn().Msgf("%s returned illegal move %d, playing %d instead", a.Name(), move, fallback)
			next, _ = e.transition(fallback)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       player,
			Agent:        a.Name(),
			Move:         next.Move,
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("turn %d: %s plays %d\n%v", turn, a.Name(), next.Move, next.State)

		e.state = next.State
		turn++
	}

	gameMetric.Winner = e.state.Winner()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	switch {
	case gameMetric.Winner != game.NoPlayer:
		log.Info().Msgf("%s (%s) won after %d moves", gameMetric.Winner, e.agents[gameMetric.Winner].Name(), gameMetric.TotalMoves)
	case e.state.IsTie():
		log.Info().Msgf("game tied after %d moves", gameMetric.TotalMoves)
	default:
		log.Info().Msgf("stopped after %d turns (no winner yet)", e.maxTurns)
	}

	return gameMetric.Winner, gameMetric, moveMetrics
}

func (e *localEngine) transition(move game.Move) (game.Transition, bool) {
	return lo.Find(e.state.Moves(), func(t game.Transition) bool {
		return t.Move == move
	})
}
