package experiments

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"tugame/loader"

	"github.com/stretchr/testify/require"
)

const permissionGame = `{
  "n": 3,
  "values": {"[]": 0, "[0]": 1, "[1]": 1, "[2]": 0.5, "[0,1]": 3, "[0,2]": 1.2, "[1,2]": 1.1, "[0,1,2]": 4},
  "permission": {"1": [0], "2": [0]}
}`

func TestRunConvergence(t *testing.T) {
	g, err := loader.Decode(strings.NewReader(permissionGame))
	require.NoError(t, err)

	exact, records, err := RunConvergence(context.Background(), g, Config{
		SampleCounts: []int{10, 20000},
		Seeds:        []uint64{1, 2},
		Goroutines:   2,
	})

	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{10.5 / 6, 7.6 / 6, 2.2 / 6}, []float64(exact), 1e-12)
	require.Len(t, records, 4)
	for i, record := range records {
		require.Equal(t, i+1, record.ID)
		require.Equal(t, 2, record.Goroutines)
		require.GreaterOrEqual(t, record.MaxError, record.MeanError)
	}
	require.Equal(t, 20000, records[3].Samples)
	require.Less(t, records[3].MaxError, 0.05, "Large sample count should be close to exact")
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "convergence")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())

	require.NoError(t, w.WriteValues([]float64{1.75, 0.5}))
	require.NoError(t, w.WriteRecords([]Record{
		{ID: 1, Samples: 100, Seed: 7, Goroutines: 1, MaxError: 0.25, MeanError: 0.125, Duration: time.Millisecond},
	}))

	values := readCSV(t, filepath.Join(w.Dir(), "values.csv"))
	require.Equal(t, [][]string{{"player", "value"}, {"0", "1.75"}, {"1", "0.5"}}, values)

	records := readCSV(t, filepath.Join(w.Dir(), "convergence_records.csv"))
	require.Len(t, records, 2)
	require.Equal(t, []string{"1", "100", "7", "1", "0.25", "0.125", "1ms"}, records[1])
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
