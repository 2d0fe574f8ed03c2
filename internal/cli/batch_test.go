package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lindio/diophantine"
)

const batchYAML = `equations:
  - {a: 3, b: 5, c: 1}
  - {a: 2, b: 4, c: 7}
  - {a: 3, b: 5, c: 100, natural: true, all: true}
  - {a: 1, b: 1, c: 2, natural: true}
`

func writeBatch(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadBatchFile(t *testing.T) {
	entries, err := readBatchFile(writeBatch(t, batchYAML))
	require.NoError(t, err)
	require.Len(t, entries, 4)
	assert.Equal(t, batchEntry{A: 3, B: 5, C: 1}, entries[0])
	assert.True(t, entries[2].Natural)
	assert.True(t, entries[2].All)
	assert.Nil(t, entries[2].Limit)

	_, err = readBatchFile(writeBatch(t, "equations: [oops"))
	assert.ErrorContains(t, err, "parse batch file")

	_, err = readBatchFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "read batch file")
}

func TestSolveBatch_KeepsOrder(t *testing.T) {
	entries := make([]batchEntry, 0, 40)
	for c := int64(1); c <= 40; c++ {
		entries = append(entries, batchEntry{A: 4, B: 6, C: c})
	}

	outcomes, err := solveBatch(context.Background(), entries, 8, diophantine.DefaultLimit)
	require.NoError(t, err)
	require.Len(t, outcomes, len(entries))
	for i, o := range outcomes {
		assert.Equal(t, entries[i], o.Entry)
		if entries[i].C%2 == 0 {
			require.NoError(t, o.Err)
			assert.True(t, o.Result.Equation.Satisfies(o.Result.Particular))
		} else {
			assert.ErrorIs(t, o.Err, diophantine.ErrNoIntegralSolution)
		}
	}
}

func TestSolveBatch_PerEntryLimit(t *testing.T) {
	limit := 2
	entries := []batchEntry{
		{A: 3, B: 5, C: 100, Natural: true, Limit: &limit},
		{A: 3, B: 5, C: 100, Natural: true},
	}

	outcomes, err := solveBatch(context.Background(), entries, 0, 5)
	require.NoError(t, err)
	assert.Len(t, outcomes[0].Result.Naturals, 2)
	assert.Len(t, outcomes[1].Result.Naturals, 5, "falls back to the configured limit")
}

func TestSolveBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := solveBatch(ctx, []batchEntry{{A: 3, B: 5, C: 1}}, 1, 10)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBatchCmd(t *testing.T) {
	out, _, err := runCLI(t, "batch", "--parallel", "2", writeBatch(t, batchYAML))
	require.NoError(t, err)

	upper := strings.ToUpper(out)
	assert.Contains(t, upper, "SOLVED 3 OF 4")
	assert.Contains(t, out, "no integral solution")
	assert.Contains(t, out, "(5, 17) (10, 14) (15, 11) … (6 total)")
	assert.Contains(t, out, "(1, 1)")
	assert.Contains(t, out, "1 equation(s) have no integral solution or failed")
}

func TestFormatNaturals(t *testing.T) {
	assert.Equal(t, "", formatNaturals(false, nil))
	assert.Equal(t, "none", formatNaturals(true, nil))
	assert.Equal(t, "(1, 1)", formatNaturals(true, []diophantine.Solution{{X: 1, Y: 1}}))
}
