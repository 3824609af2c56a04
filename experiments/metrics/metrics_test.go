package metrics

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"connectfour/game"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counting search work", func(t *testing.T) {
		c := NewCollector()
		c.Start()
		c.AddNode()
		c.AddNode()
		c.AddEvaluation()
		c.AddCutoff()
		c.SetDepth(3)
		c.SetScore(-12.5)

		got := c.Complete()

		require.Equal(t, 2, got.Nodes)
		require.Equal(t, 1, got.Evaluations)
		require.Equal(t, 1, got.Cutoffs)
		require.Equal(t, 3, got.Depth)
		require.Equal(t, -12.5, got.Score)
		require.GreaterOrEqual(t, got.Duration, time.Duration(0))
	})

	t.Run("starting again resets counters", func(t *testing.T) {
		c := NewCollector()
		c.Start()
		c.AddNode()
		c.SetDepth(5)
		c.Start()

		got := c.Complete()
		require.Zero(t, got.Nodes)
		require.Zero(t, got.Depth)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start()
		c.AddNode()
		c.SetDepth(2)

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

type failingCloser struct {
	io.Writer
}

func (failingCloser) Close() error {
	return errors.New("disk full")
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "round_robin")
	require.NoError(t, err)

	t.Run("writing agent configs", func(t *testing.T) {
		err := w.WriteAgentConfigs([]AgentConfig{
			{ID: 1, Name: "quick", Depth: 4},
			{ID: 2, Name: "defensive", Budget: time.Second},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Equal(t, []string{"id", "name", "depth", "budget"}, rows[0])
		require.Equal(t, []string{"1", "quick", "4", "0s"}, rows[1])
		require.Equal(t, []string{"2", "defensive", "0", "1s"}, rows[2])
	})

	t.Run("writing game records", func(t *testing.T) {
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		err := w.WriteGameRecords([]GameRecord{{
			ID:     1,
			Agent1: 1,
			Agent2: 2,
			GameMetric: GameMetric{
				StartingPlayer: game.First,
				Winner:         game.Second,
				StartTime:      start,
				EndTime:        start.Add(time.Minute),
				Duration:       time.Minute,
				TotalMoves:     12,
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "1", "2", "Player1", "Player2", "2024-01-01T00:00:00Z", "2024-01-01T00:01:00Z", "1m0s", "12"}, rows[1])
	})

	t.Run("writing move records", func(t *testing.T) {
		err := w.WriteMoveRecords([]MoveRecord{{
			Game: 1,
			MoveMetric: MoveMetric{
				Step:   1,
				Player: game.First,
				Agent:  "quick",
				Move:   3,
				SearchMetric: SearchMetric{
					Depth:       4,
					Nodes:       100,
					Evaluations: 60,
					Cutoffs:     7,
					Score:       19,
					Duration:    time.Millisecond,
				},
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "1", "Player1", "quick", "3", "4", "100", "60", "7", "19", "1ms"}, rows[1])
	})

	t.Run("reporting a failed close", func(t *testing.T) {
		var buf bytes.Buffer
		failing := &Writer{
			baseDir: t.TempDir(),
			create: func(path string) (io.WriteCloser, error) {
				return failingCloser{Writer: &buf}, nil
			},
		}

		err := failing.WriteAgentConfigs([]AgentConfig{{ID: 1, Name: "quick", Depth: 4}})

		require.ErrorContains(t, err, "failed to close agent_configs.csv")
		require.Contains(t, buf.String(), "1,quick,4,0s", "Rows should be flushed before closing")
	})

	t.Run("reporting a failed create", func(t *testing.T) {
		broken := &Writer{baseDir: filepath.Join(t.TempDir(), "missing")}
		broken.create = func(path string) (io.WriteCloser, error) {
			return os.Create(path)
		}

		err := broken.WriteGameRecords(nil)

		require.ErrorContains(t, err, "failed to create game_records.csv")
	})
}
