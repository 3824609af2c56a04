package experiments

import (
	"connectfour/agent"
	"connectfour/engine"
	"connectfour/experiments/metrics"
	"connectfour/game"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// Standing tallies the results of one agent over all its games.
type Standing struct {
	Name   string
	Wins   int
	Losses int
	Ties   int // ties and games stopped at the turn limit
}

type Report struct {
	Dir       string // folder holding the CSV files
	Games     []metrics.GameRecord
	Standings []Standing
}

type matchUp struct {
	first, second int // index into presets
}

type result struct {
	game  metrics.GameRecord
	moves []metrics.MoveRecord
}

// RoundRobin plays games games for every ordered pair of distinct presets,
// so each pair meets with both agents starting. Up to goroutines games run
// at once; every game builds fresh agents, so no searcher or cache is shared.
func RoundRobin(presets []agent.Preset, games, goroutines int, outDir string) (*Report, error) {
	if len(presets) < 2 {
		return nil, fmt.Errorf("round robin needs at least two agents, got %d", len(presets))
	}
	if games <= 0 || goroutines <= 0 {
		return nil, fmt.Errorf("round robin needs positive games and goroutines, got %d and %d", games, goroutines)
	}

	matchUps := []matchUp{}
	for i := range presets {
		for j := range presets {
			if i != j {
				matchUps = append(matchUps, matchUp{first: i, second: j})
			}
		}
	}

	log.Info().Msgf("starting round robin of %d matchups x %d games...", len(matchUps), games)

	results := make([]result, len(matchUps)*games)
	g := errgroup.Group{}
	g.SetLimit(goroutines)
	for mi, m := range matchUps {
		for i := 0; i < games; i++ {
			id := mi*games + i + 1
			g.Go(func() error {
				first, second := presets[m.first], presets[m.second]
				log.Info().Msgf("starting game %d: %s vs %s...", id, first.Name, second.Name)

				e := engine.LocalEngine(first.New(), second.New(), game.NewStandardBoard())
				winner, gameMetric, moveMetrics := e.Run()

				results[id-1] = result{
					game: metrics.GameRecord{
						ID:         id,
						Agent1:     m.first + 1,
						Agent2:     m.second + 1,
						GameMetric: gameMetric,
					},
					moves: lo.Map(moveMetrics, func(mm metrics.MoveMetric, _ int) metrics.MoveRecord {
						return metrics.MoveRecord{Game: id, MoveMetric: mm}
					}),
				}

				log.Info().Msgf("completed game %d with winner: %s", id, winner)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info().Msg("completed round robin")

	gameRecords := lo.Map(results, func(r result, _ int) metrics.GameRecord {
		return r.game
	})
	moveRecords := lo.FlatMap(results, func(r result, _ int) []metrics.MoveRecord {
		return r.moves
	})
	configs := lo.Map(presets, func(p agent.Preset, i int) metrics.AgentConfig {
		return p.Config(i + 1)
	})

	writer, err := metrics.NewWriter(outDir, "round_robin")
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return nil, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return nil, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return nil, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return &Report{
		Dir:       writer.Dir(),
		Games:     gameRecords,
		Standings: standings(presets, gameRecords),
	}, nil
}

func standings(presets []agent.Preset, records []metrics.GameRecord) []Standing {
	return lo.Map(presets, func(p agent.Preset, i int) Standing {
		id := i + 1
		played := lo.Filter(records, func(r metrics.GameRecord, _ int) bool {
			return r.Agent1 == id || r.Agent2 == id
		})
		wins := lo.CountBy(played, func(r metrics.GameRecord) bool {
			return seatOf(r, id) == r.Winner
		})
		ties := lo.CountBy(played, func(r metrics.GameRecord) bool {
			return r.Winner == game.NoPlayer
		})
		return Standing{
			Name:   p.Name,
			Wins:   wins,
			Losses: len(played) - wins - ties,
			Ties:   ties,
		}
	})
}

// seatOf returns the player the agent with id played in a game. Agent1
// always plays game.First.
func seatOf(r metrics.GameRecord, id int) game.Player {
	if r.Agent1 == id {
		return game.First
	}
	return game.Second
}
