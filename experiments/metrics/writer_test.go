package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/ur-fault/checkengine/game"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "depth")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "depth"), filepath.Dir(w.BaseDir()))

	t.Run("agent configs", func(t *testing.T) {
		err := w.WriteAgentConfigs([]AgentConfig{
			{ID: 0, Kind: "minimax", Depth: 1},
			{ID: 1, Kind: "random", Seed: 42},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.BaseDir(), "agent_configs.csv"))
		require.Equal(t, [][]string{
			{"id", "kind", "depth", "seed"},
			{"0", "minimax", "1", "0"},
			{"1", "random", "0", "42"},
		}, rows)
	})

	t.Run("game records", func(t *testing.T) {
		id := uuid.New()
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		err := w.WriteGameRecords([]GameRecord{{
			ID:     1,
			Agent1: 0,
			Agent2: 1,
			GameMetric: GameMetric{
				ID:             id,
				StartingPlayer: game.White,
				Winner:         "Black",
				StartTime:      start,
				EndTime:        start.Add(2 * time.Second),
				Duration:       2 * time.Second,
				TotalMoves:     31,
				Turns:          14,
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.BaseDir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{
			"1", id.String(), "0", "1", "White", "Black",
			"2024-01-02T03:04:05Z", "2024-01-02T03:04:07Z", "2s", "31", "14",
		}, rows[1])
	})

	t.Run("move records", func(t *testing.T) {
		err := w.WriteMoveRecords([]MoveRecord{{
			Game: 1,
			MoveMetric: MoveMetric{
				Step:   3,
				Player: game.Black,
				Move:   "D6 -> C5",
				SearchMetric: SearchMetric{
					MaxDepth:  2,
					Duration:  time.Millisecond,
					Nodes:     120,
					Leaves:    100,
					Terminals: 4,
				},
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.BaseDir(), "move_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "3", "Black", "D6 -> C5", "2", "1ms", "120", "100", "4"}, rows[1])
	})
}

func TestCollector(t *testing.T) {
	t.Run("counts a search", func(t *testing.T) {
		c := NewCollector()
		c.Start(3)
		c.AddNode()
		c.AddNode()
		c.AddLeaf()
		c.AddTerminal()

		metric := c.Complete()

		require.Equal(t, 3, metric.MaxDepth)
		require.Equal(t, 2, metric.Nodes)
		require.Equal(t, 1, metric.Leaves)
		require.Equal(t, 1, metric.Terminals)
	})

	t.Run("start resets the counters", func(t *testing.T) {
		c := NewCollector()
		c.Start(1)
		c.AddNode()
		c.Start(2)

		metric := c.Complete()

		require.Equal(t, 2, metric.MaxDepth)
		require.Zero(t, metric.Nodes)
	})

	t.Run("dummy collects nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(3)
		c.AddNode()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}
