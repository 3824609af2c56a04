package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func countingEvaluator(calls *int) Evaluate {
	return func(s State) float64 {
		*calls++
		return EvaluateDefensive(s)
	}
}

func TestEvalCache(t *testing.T) {
	t.Run("computing structurally identical positions once", func(t *testing.T) {
		calls := 0
		cache := Memoize(countingEvaluator(&calls))
		a := mustBoard(t, 0, 1, 2, 3)
		b := mustBoard(t, 2, 3, 0, 1) // Same position, different move order

		first := cache.Evaluate(a)
		second := cache.Evaluate(b)

		require.Equal(t, first, second, "Identical positions should score identically")
		require.Equal(t, EvaluateDefensive(a), first, "Cached score should match the wrapped function")
		require.Equal(t, 1, calls, "Wrapped function should run once")
		require.Equal(t, 1, cache.Hits())
		require.Equal(t, 1, cache.Misses())
		require.Equal(t, 1, cache.Len())
		require.Equal(t, 50.0, cache.HitRate())
	})

	t.Run("keeping perspectives apart", func(t *testing.T) {
		calls := 0
		cache := Memoize(countingEvaluator(&calls))
		b := mustBoard(t, 0, 3)

		cache.Evaluate(b)
		cache.Evaluate(b.WithTurn(Second))

		require.Equal(t, 2, calls, "Different players to move should not share an entry")
		require.Equal(t, 2, cache.Len())
	})

	t.Run("empty cache has no hit rate", func(t *testing.T) {
		require.Equal(t, 0.0, Memoize(EvaluateFocused).HitRate())
	})

	t.Run("panicking on a nil function", func(t *testing.T) {
		require.Panics(t, func() {
			Memoize(nil)
		})
	})
}
