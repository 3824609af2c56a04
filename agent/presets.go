package agent

import (
	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/meta"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
)

var ErrUnknownAgent = errors.New("unknown agent")

// Preset is a named agent configuration. New builds a fresh agent, so every
// game gets its own searcher and evaluation cache.
type Preset struct {
	Name   string
	Depth  int           // 0 for time-bounded agents
	Budget time.Duration // 0 for fixed-depth agents
	build  func(p Preset) Agent
}

func (p Preset) New() Agent {
	return p.build(p)
}

// WithBudget returns a copy of a time-bounded preset with a different budget.
// Fixed-depth presets are returned unchanged.
func (p Preset) WithBudget(budget time.Duration) Preset {
	if p.Budget > 0 && budget > 0 {
		p.Budget = budget
	}
	return p
}

func (p Preset) Config(id int) metrics.AgentConfig {
	return metrics.AgentConfig{
		ID:     id,
		Name:   p.Name,
		Depth:  p.Depth,
		Budget: p.Budget,
	}
}

func Presets() []Preset {
	return []Preset{
		{
			Name:  "quick",
			Depth: meta.QUICK_DEPTH,
			build: func(p Preset) Agent {
				return NewFixedDepth(p.Name, p.Depth, game.EvaluateFocused)
			},
		},
		{
			Name:  "alphabeta",
			Depth: meta.ALPHA_BETA_DEPTH,
			build: func(p Preset) Agent {
				return NewFixedDepth(p.Name, p.Depth, game.EvaluateFocused)
			},
		},
		{
			Name:   "iterative",
			Budget: meta.TIME_BUDGET,
			build: func(p Preset) Agent {
				return NewTimeBounded(p.Name, p.Budget, game.EvaluateFocused)
			},
		},
		{
			Name:   "defensive",
			Budget: meta.TIME_BUDGET,
			build: func(p Preset) Agent {
				return NewMemoized(p.Name, p.Budget, game.EvaluateDefensive)
			},
		},
		{
			Name: "random",
			build: func(p Preset) Agent {
				return NewRandom(meta.RANDOM_SEED)
			},
		},
	}
}

func Names() []string {
	return lo.Map(Presets(), func(p Preset, _ int) string {
		return p.Name
	})
}

func Lookup(name string) (Preset, error) {
	preset, ok := lo.Find(Presets(), func(p Preset) bool {
		return p.Name == name
	})
	if !ok {
		return Preset{}, fmt.Errorf("%w %q, expected one of %v", ErrUnknownAgent, name, Names())
	}
	return preset, nil
}
