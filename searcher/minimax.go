package searcher

import "connectfour/game"

// Minimax is AlphaBeta without pruning: every child of every node is scored.
// It is the reference the pruned search must agree with.
func (s *Searcher) Minimax(state game.State, depth int, evaluate game.Evaluate) (Result, error) {
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

		child, err := s.Minimax(t.State, depth-1, evaluate)
		if err != nil {
			return Result{}, err
		}

		score := -child.Score
		if score > best.Score {
			best = Result{Score: score, Move: t.Move}
		}
	}
	return best, nil
}
