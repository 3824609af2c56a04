package searcher

import (
	"connectfour/game"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// steppingClock advances by step every time it is read.
func steppingClock(step time.Duration) func() time.Time {
	now := time.Unix(0, 0)
	return func() time.Time {
		t := now
		now = now.Add(step)
		return t
	}
}

func TestFindTimed(t *testing.T) {
	t.Run("returning a legal move when the budget is too small for any depth", func(t *testing.T) {
		s := New(WithClock(steppingClock(time.Second)), WithMetrics())

		move, metric, err := s.FindTimed(game.NewStandardBoard(), game.EvaluateFocused, time.Nanosecond)

		require.NoError(t, err)
		require.Equal(t, game.Move(3), move)
		require.Equal(t, 1, metric.Depth, "The min depth should complete even past the budget")
	})

	t.Run("discarding an iteration that finished late", func(t *testing.T) {
		s := New(WithClock(steppingClock(time.Second)), WithMetrics())

		_, metric, err := s.FindTimed(game.NewStandardBoard(), game.EvaluateFocused, 2500*time.Millisecond)

		require.NoError(t, err)
		require.Equal(t, 2, metric.Depth, "Depth 3 finished at 3s and should be dropped")
	})

	t.Run("starting from a configured min depth", func(t *testing.T) {
		s := New(WithClock(steppingClock(time.Second)), WithMinDepth(4), WithMetrics())

		move, metric, err := s.FindTimed(game.NewStandardBoard(), game.EvaluateFocused, time.Nanosecond)

		require.NoError(t, err)
		require.Equal(t, game.Move(3), move)
		require.Equal(t, 4, metric.Depth)
	})

	t.Run("stopping at the max depth", func(t *testing.T) {
		s := New(WithClock(steppingClock(0)), WithMaxDepth(3), WithMetrics())

		_, metric, err := s.FindTimed(game.NewStandardBoard(), game.EvaluateFocused, time.Second)

		require.NoError(t, err)
		require.Equal(t, 3, metric.Depth)
	})

	t.Run("stopping once a win is proven", func(t *testing.T) {
		s := New(WithClock(steppingClock(0)), WithMetrics())
		b := mustBoard(t, 0, 0, 1, 1, 2, 2)

		move, metric, err := s.FindTimed(b, game.EvaluateDefensive, time.Hour)

		require.NoError(t, err)
		require.Equal(t, game.Move(3), move)
		require.Equal(t, 1, metric.Depth)
		require.Equal(t, game.WinBonus-7, metric.Score)
	})

	t.Run("not mistaking a large heuristic for a proven win", func(t *testing.T) {
		greedy := game.NewEvaluator(game.Weights{Scope: game.AllChains, ChainWeight: 1e6, ChainExponent: 1})
		s := New(WithClock(steppingClock(0)), WithMaxDepth(3), WithMetrics())

		_, metric, err := s.FindTimed(game.NewStandardBoard(), greedy, time.Second)

		require.NoError(t, err)
		require.Equal(t, 3, metric.Depth)
		require.Less(t, metric.Score, game.WinThreshold)
	})

	t.Run("failing on a finished game", func(t *testing.T) {
		b := mustBoard(t, 0, 1, 0, 1, 0, 1, 0)

		move, _, err := New().FindTimed(b, game.EvaluateFocused, time.Second)

		require.ErrorIs(t, err, ErrNoLegalMoves)
		require.Equal(t, game.NoMove, move)
	})

	t.Run("searching within a real budget", func(t *testing.T) {
		b := mustBoard(t, 6, 0, 6, 1, 5, 2)

		move, err := TimeBounded(b, game.Memoize(game.EvaluateDefensive).Evaluate, 50*time.Millisecond)

		require.NoError(t, err)
		require.Equal(t, game.Move(3), move, "Only column 3 stops the open three")
	})

	t.Run("panicking on an inverted depth range", func(t *testing.T) {
		require.Panics(t, func() {
			New(WithMinDepth(5), WithMaxDepth(2))
		})
	})
}
