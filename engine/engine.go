package engine

import (
	"connectfour/experiments/metrics"
	"connectfour/game"
)

type Engine interface {
	// Run plays a game till there's a winner, a tie or a max number of moves is reached
	Run() (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
