package agent

import (
	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/searcher"
	"time"

	"github.com/rs/zerolog/log"
)

type fixedDepthAgent struct {
	name     string
	depth    int
	evaluate game.Evaluate
	searcher *searcher.Searcher
}

// NewFixedDepth returns an agent that searches every position to depth.
func NewFixedDepth(name string, depth int, evaluate game.Evaluate, options ...searcher.Option) Agent {
	if depth <= 0 {
		panic("depth must be positive")
	}
	return fixedDepthAgent{
		name:     name,
		depth:    depth,
		evaluate: evaluate,
		searcher: searcher.New(append([]searcher.Option{searcher.WithMetrics()}, options...)...),
	}
}

func (a fixedDepthAgent) Name() string {
	return a.name
}

func (a fixedDepthAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric, error) {
	return a.searcher.Find(state, a.depth, a.evaluate)
}

type timeBoundedAgent struct {
	name     string
	budget   time.Duration
	evaluate game.Evaluate
	searcher *searcher.Searcher
}

// NewTimeBounded returns an agent that deepens its search until budget runs out.
func NewTimeBounded(name string, budget time.Duration, evaluate game.Evaluate, options ...searcher.Option) Agent {
	return timeBoundedAgent{
		name:     name,
		budget:   budget,
		evaluate: evaluate,
		searcher: searcher.New(append([]searcher.Option{searcher.WithMetrics()}, options...)...),
	}
}

func (a timeBoundedAgent) Name() string {
	return a.name
}

func (a timeBoundedAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric, error) {
	return a.searcher.FindTimed(state, a.evaluate, a.budget)
}

type memoizedAgent struct {
	Agent
	cache *game.EvalCache
}

// NewMemoized returns a time-bounded agent whose evaluations are cached for
// as long as the agent lives. The agent must not be shared between games
// played concurrently.
func NewMemoized(name string, budget time.Duration, evaluate game.Evaluate, options ...searcher.Option) Agent {
	cache := game.Memoize(evaluate)
	return memoizedAgent{
		Agent: NewTimeBounded(name, budget, cache.Evaluate, options...),
		cache: cache,
	}
}

func (a memoizedAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric, error) {
	move, metric, err := a.Agent.FindMove(state)
	log.Debug().
		Str("agent", a.Name()).
		Int("entries", a.cache.Len()).
		Float64("hit_rate", a.cache.HitRate()).
		Msg("evaluation cache")
	return move, metric, err
}
