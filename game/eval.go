package game

import "math"

const (
	WinBonus     = 1100.0
	WinThreshold = 1000.0
)

// ChainScope selects which chains a heuristic scores.
type ChainScope int

const (
	// LongestChain scores each side's longest chain once and the centrality
	// of every occupied cell.
	LongestChain ChainScope = iota
	// AllChains scores every chain and the centrality of every chain member,
	// so a piece contributes once per direction.
	AllChains
)

// Weights tunes the chain/centrality heuristic. Chain terms are added for the
// mover and subtracted for the opponent; centrality terms penalize the mover's
// distance from the center column and reward the opponent's. Heuristic scores
// are clamped strictly inside (-WinThreshold, WinThreshold), which is reserved
// for finished games.
type Weights struct {
	Scope                 ChainScope
	ChainWeight           float64
	ChainExponent         float64
	OpponentChainWeight   float64
	OpponentChainExponent float64
	CenterWeight          float64
	OpponentCenterWeight  float64
}

var (
	// FocusedWeights rewards extending one's own longest chain and central play.
	FocusedWeights = Weights{
		Scope:                LongestChain,
		ChainWeight:          10,
		ChainExponent:        1,
		CenterWeight:         1,
		OpponentCenterWeight: 1,
	}

	// DefensiveWeights cares more about the opponent's central chains than
	// about its own.
	DefensiveWeights = Weights{
		Scope:                 AllChains,
		ChainWeight:           1,
		ChainExponent:         1.5,
		OpponentChainWeight:   1,
		OpponentChainExponent: 2,
		CenterWeight:          3,
		OpponentCenterWeight:  5,
	}
)

var (
	EvaluateFocused   = NewEvaluator(FocusedWeights)
	EvaluateDefensive = NewEvaluator(DefensiveWeights)
)

// TerminalScore scores a finished game from the mover's perspective. Faster
// wins and slower losses score better. ok is false if the game goes on.
func TerminalScore(s State) (score float64, ok bool) {
	switch winner := s.Winner(); {
	case winner == s.Player():
		return WinBonus - float64(s.Tokens()), true
	case winner == s.Opponent():
		return -WinBonus + float64(s.Tokens()), true
	case s.IsTie():
		return 0, true
	}
	return 0, false
}

// NewEvaluator builds a heuristic over a Grid. Handing it any other State is a
// programming error.
func NewEvaluator(w Weights) Evaluate {
	return func(s State) float64 {
		if score, ok := TerminalScore(s); ok {
			return score
		}
		g, ok := s.(Grid)
		if !ok {
			panic("unexpected state type")
		}
		if w.Scope == AllChains {
			return clampHeuristic(w.scoreAllChains(g))
		}
		return clampHeuristic(w.scoreLongestChain(g))
	}
}

var maxHeuristic = math.Nextafter(WinThreshold, 0)

func clampHeuristic(score float64) float64 {
	return math.Max(-maxHeuristic, math.Min(maxHeuristic, score))
}

func (w Weights) scoreLongestChain(g Grid) float64 {
	current, opponent := g.Player(), g.Opponent()
	score := w.ChainWeight * math.Pow(float64(g.LongestChain(current)), w.ChainExponent)
	if w.OpponentChainWeight != 0 {
		score -= w.OpponentChainWeight * math.Pow(float64(g.LongestChain(opponent)), w.OpponentChainExponent)
	}

	// Prefer having your pieces in the center of the board
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			switch g.Cell(row, col) {
			case current:
				score -= w.CenterWeight * centerDistance(g, col)
			case opponent:
				score += w.OpponentCenterWeight * centerDistance(g, col)
			}
		}
	}
	return score
}

func (w Weights) scoreAllChains(g Grid) float64 {
	score := 0.0
	for _, chain := range g.Chains(g.Opponent()) {
		score -= w.OpponentChainWeight * math.Pow(float64(len(chain)), w.OpponentChainExponent)
		for _, cell := range chain {
			score += w.OpponentCenterWeight * centerDistance(g, cell.Col)
		}
	}
	for _, chain := range g.Chains(g.Player()) {
		score += w.ChainWeight * math.Pow(float64(len(chain)), w.ChainExponent)
		for _, cell := range chain {
			score -= w.CenterWeight * centerDistance(g, cell.Col)
		}
	}
	return score
}

func centerDistance(g Grid, col int) float64 {
	return math.Abs(float64(g.Cols()/2 - col))
}
