package main

import (
	"connectfour/agent"
	"connectfour/engine"
	"connectfour/experiments"
	"connectfour/game"
	"connectfour/meta"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

type config struct {
	mode       string
	first      string
	second     string
	games      int
	goroutines int
	budget     time.Duration
	out        string
	verbose    bool
}

func main() {
	cfg := parseFlags()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var err error
	switch cfg.mode {
	case "game":
		err = runGame(cfg)
	case "tournament":
		err = runTournament(cfg)
	default:
		err = fmt.Errorf("unknown mode %q, expected game or tournament", cfg.mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("connectfour failed")
	}
}

func parseFlags() config {
	cfg := config{}
	flag.StringVar(&cfg.mode, "mode", "game", "game or tournament")
	flag.StringVar(&cfg.first, "first", "quick", fmt.Sprintf("agent playing first, one of %v", agent.Names()))
	flag.StringVar(&cfg.second, "second", "defensive", "agent playing second")
	flag.IntVar(&cfg.games, "games", meta.NUM_GAMES, "games per matchup in a tournament")
	flag.IntVar(&cfg.goroutines, "goroutines", meta.GO_ROUTINES, "games played at once in a tournament")
	flag.DurationVar(&cfg.budget, "budget", meta.TIME_BUDGET, "time budget per move of time-bounded agents")
	flag.StringVar(&cfg.out, "out", "results", "folder for tournament CSV files")
	flag.BoolVar(&cfg.verbose, "v", false, "log every search iteration and move")
	flag.Parse()
	return cfg
}

func runGame(cfg config) error {
	first, err := agent.Lookup(cfg.first)
	if err != nil {
		return err
	}
	second, err := agent.Lookup(cfg.second)
	if err != nil {
		return err
	}

	e := engine.LocalEngine(
		first.WithBudget(cfg.budget).New(),
		second.WithBudget(cfg.budget).New(),
		game.NewStandardBoard(),
	)
	winner, gameMetric, moveMetrics := e.Run()

	for _, mm := range moveMetrics {
		log.Info().Msgf("%d. %s (%s) played %d: depth=%d nodes=%d score=%.2f in %v",
			mm.Step, mm.Player, mm.Agent, mm.Move, mm.Depth, mm.Nodes, mm.Score, mm.Duration)
	}
	log.Info().Msgf("winner: %s after %d moves in %v", winner, gameMetric.TotalMoves, gameMetric.Duration)
	return nil
}

func runTournament(cfg config) error {
	presets := lo.Map(agent.Presets(), func(p agent.Preset, _ int) agent.Preset {
		return p.WithBudget(cfg.budget)
	})

	report, err := experiments.RoundRobin(presets, cfg.games, cfg.goroutines, cfg.out)
	if err != nil {
		return err
	}

	for _, s := range report.Standings {
		log.Info().Msgf("%-10s wins=%d losses=%d ties=%d", s.Name, s.Wins, s.Losses, s.Ties)
	}
	log.Info().Msgf("results stored in %s", report.Dir)
	return nil
}
