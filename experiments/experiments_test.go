package experiments

import (
	"connectfour/agent"
	"connectfour/experiments/metrics"
	"connectfour/game"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func lookup(t *testing.T, names ...string) []agent.Preset {
	t.Helper()
	presets := []agent.Preset{}
	for _, name := range names {
		preset, err := agent.Lookup(name)
		require.NoError(t, err)
		presets = append(presets, preset)
	}
	return presets
}

func TestRoundRobin(t *testing.T) {
	t.Run("playing both seatings of every pair", func(t *testing.T) {
		presets := lookup(t, "random", "quick")

		report, err := RoundRobin(presets, 2, 2, t.TempDir())

		require.NoError(t, err)
		require.Len(t, report.Games, 4)
		for i, record := range report.Games {
			require.Equal(t, i+1, record.ID)
			require.NotEqual(t, record.Agent1, record.Agent2)
			require.Positive(t, record.TotalMoves)
		}
		require.Equal(t, 1, report.Games[0].Agent1, "First matchup seats the first preset as the starter")
		require.Equal(t, 2, report.Games[2].Agent1)

		for _, standing := range report.Standings {
			require.Equal(t, 4, standing.Wins+standing.Losses+standing.Ties)
		}
		require.Equal(t, report.Standings[0].Wins, report.Standings[1].Losses)

		for _, name := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
			_, err := os.Stat(filepath.Join(report.Dir, name))
			require.NoError(t, err, "%s should be written", name)
		}
	})

	t.Run("rejecting a lone agent", func(t *testing.T) {
		_, err := RoundRobin(lookup(t, "quick"), 1, 1, t.TempDir())
		require.Error(t, err)
	})

	t.Run("rejecting zero games", func(t *testing.T) {
		_, err := RoundRobin(lookup(t, "quick", "random"), 0, 1, t.TempDir())
		require.Error(t, err)
	})
}

func TestStandings(t *testing.T) {
	presets := lookup(t, "quick", "random")
	records := []metrics.GameRecord{
		{ID: 1, Agent1: 1, Agent2: 2, GameMetric: metrics.GameMetric{Winner: game.First}},
		{ID: 2, Agent1: 2, Agent2: 1, GameMetric: metrics.GameMetric{Winner: game.Second}},
		{ID: 3, Agent1: 2, Agent2: 1, GameMetric: metrics.GameMetric{Winner: game.NoPlayer}},
	}

	got := standings(presets, records)

	require.Equal(t, []Standing{
		{Name: "quick", Wins: 2, Losses: 0, Ties: 1},
		{Name: "random", Wins: 0, Losses: 2, Ties: 1},
	}, got)
}
