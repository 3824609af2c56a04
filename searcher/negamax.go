package searcher

import (
	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/meta"
	"math"
	"time"
)

type Option func(s *Searcher)

// Searcher runs negamax alpha-beta searches over any game.State. It holds no
// state across calls besides its metrics collector, so one Searcher must not
// be shared between goroutines.
type Searcher struct {
	generate game.Generate
	terminal game.Terminal
	minDepth int
	maxDepth int
	now      func() time.Time
	metrics  metrics.Collector
}

func WithGenerator(generate game.Generate) Option {
	return func(s *Searcher) {
		if generate != nil {
			s.generate = generate
		}
	}
}

func WithTerminal(terminal game.Terminal) Option {
	return func(s *Searcher) {
		if terminal != nil {
			s.terminal = terminal
		}
	}
}

// WithMinDepth sets the first depth of iterative deepening. It always
// completes, even past the time budget.
func WithMinDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.minDepth = depth
		}
	}
}

func WithMaxDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.maxDepth = depth
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Searcher) {
		if now != nil {
			s.now = now
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

func New(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		generate: game.NextMoves,
		terminal: game.IsTerminal,
		minDepth: meta.MIN_DEPTH,
		maxDepth: meta.MAX_DEPTH,
		now:      time.Now,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	if s.maxDepth < s.minDepth {
		panic("max depth must not be below min depth")
	}
	return s
}

// AlphaBeta scores state to the given depth within the (alpha, beta) window.
// Children are visited in generator order and the first strictly best move
// wins ties.
func (s *Searcher) AlphaBeta(state game.State, depth int, evaluate game.Evaluate, alpha, beta float64) (Result, error) {
	s.metrics.AddNode()
	if s.terminal(depth, state) {
		s.metrics.AddEvaluation()
		return leaf(evaluate(state)), nil
	}

	transitions := s.generate(state)
	if len(transitions) == 0 {
		s.metrics.AddEvaluation()
		return leaf(evaluate(state)), nil
	}

	best := worst()
	for _, t := range transitions {
		err := checkTransition(state, t)
		if err != nil {
			return Result{}, err
		}

		childAlpha, childBeta := childWindow(alpha, beta)
		child, err := s.AlphaBeta(t.State, depth-1, evaluate, childAlpha, childBeta)
		if err != nil {
			return Result{}, err
		}

		score := -child.Score
		if score > best.Score {
			best = Result{Score: score, Move: t.Move}
		}
		alpha = math.Max(alpha, score)
		if alpha >= beta {
			s.metrics.AddCutoff()
			return best, nil
		}
	}
	return best, nil
}

// Best searches state with a full window.
func (s *Searcher) Best(state game.State, depth int, evaluate game.Evaluate) (Result, error) {
	return s.AlphaBeta(state, depth, evaluate, math.Inf(-1), math.Inf(1))
}

// Find runs a fixed-depth search and reports the work it took. The move is
// NoMove when depth is 0 or state is terminal.
func (s *Searcher) Find(state game.State, depth int, evaluate game.Evaluate) (game.Move, metrics.SearchMetric, error) {
	s.metrics.Start()
	result, err := s.Best(state, depth, evaluate)
	if err != nil {
		return game.NoMove, s.metrics.Complete(), err
	}
	s.metrics.SetDepth(depth)
	s.metrics.SetScore(result.Score)
	return result.Move, s.metrics.Complete(), nil
}

// Search picks a move for the player to move in state with a default Searcher.
func Search(state game.State, depth int, evaluate game.Evaluate) (game.Move, error) {
	move, _, err := New().Find(state, depth, evaluate)
	return move, err
}
