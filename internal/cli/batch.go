package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lindio/diophantine"
)

// maxListed is how many natural solutions a batch row shows before eliding.
const maxListed = 3

// batchFile is the YAML layout read by the batch command.
type batchFile struct {
	Equations []batchEntry `yaml:"equations"`
}

type batchEntry struct {
	A       int64 `yaml:"a"`
	B       int64 `yaml:"b"`
	C       int64 `yaml:"c"`
	Natural bool  `yaml:"natural"`
	Limit   *int  `yaml:"limit"`
	All     bool  `yaml:"all"`
	Invert  bool  `yaml:"invert"`
}

func (e batchEntry) options(defaultLimit int) []diophantine.Option {
	limit := defaultLimit
	if e.Limit != nil {
		limit = *e.Limit
	}

	opts := []diophantine.Option{diophantine.WithLimit(limit)}
	if e.Natural {
		opts = append(opts, diophantine.WithNaturals())
	}
	if e.All {
		opts = append(opts, diophantine.WithAll())
	}
	if e.Invert {
		opts = append(opts, diophantine.WithInvert())
	}

	return opts
}

// batchOutcome is the result of one entry; Err is per equation, not fatal.
type batchOutcome struct {
	Entry  batchEntry
	Result diophantine.Result
	Err    error
}

func (a *app) newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Solve every equation listed in a YAML file",
		Long: `Solve every equation listed in a YAML file, concurrently.

File layout:
  equations:
    - {a: 3, b: 5, c: 1}
    - {a: 3, b: 5, c: 100, natural: true, limit: 10}

An unsolvable equation is reported in its row and does not stop the batch.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := readBatchFile(args[0])
			if err != nil {
				return err
			}

			outcomes, err := solveBatch(cmd.Context(), entries, a.v.GetInt(batchParallelKey), a.v.GetInt(naturalLimitKey))
			if err != nil {
				return err
			}

			printBatch(newPrinter(cmd.OutOrStdout()), outcomes)
			return nil
		},
	}

	cmd.Flags().IntP(parallelFlagName, "p", a.v.GetInt(batchParallelKey), "number of equations solved concurrently")
	bindFlagToConfig(a.v, cmd.Flags().Lookup(parallelFlagName), batchParallelKey)

	return cmd
}

func readBatchFile(path string) ([]batchEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}

	var f batchFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse batch file %s: %w", path, err)
	}

	return f.Equations, nil
}

// solveBatch solves entries with at most parallel concurrent workers.
// Outcomes keep the input order. Only cancellation of ctx is returned as an error.
func solveBatch(ctx context.Context, entries []batchEntry, parallel, defaultLimit int) ([]batchOutcome, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if parallel < 1 {
		parallel = 1
	}

	outcomes := make([]batchOutcome, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i, e := range entries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			eq := diophantine.NewEquation(e.A, e.B, e.C)
			res, err := diophantine.Solve(eq, e.options(defaultLimit)...)
			if err != nil {
				slog.Warn("batch entry failed", "index", i, "equation", eq.String(), "error", err)
			}
			outcomes[i] = batchOutcome{Entry: e, Result: res, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	slog.Info("batch finished", "equations", len(entries), "parallel", parallel)

	return outcomes, nil
}

func printBatch(p *printer, outcomes []batchOutcome) {
	rows := make([][]string, 0, len(outcomes))
	solved := 0
	for i, o := range outcomes {
		eq := diophantine.NewEquation(o.Entry.A, o.Entry.B, o.Entry.C)
		if o.Err != nil {
			rows = append(rows, []string{strconv.Itoa(i + 1), eq.String(), "-", "-", o.Err.Error(), ""})
			continue
		}

		solved++
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			eq.String(),
			strconv.FormatInt(o.Result.GCD, 10),
			o.Result.Particular.String(),
			o.Result.Family.String(),
			formatNaturals(o.Entry.Natural, o.Result.Naturals),
		})
	}

	p.table(renderTable(
		[]string{"#", "equation", "gcd", "particular", "general", "natural"},
		rows,
		[]string{"", fmt.Sprintf("solved %d of %d", solved, len(outcomes)), "", "", "", ""},
	))
	if solved < len(outcomes) {
		p.failure(fmt.Sprintf("%d equation(s) have no integral solution or failed", len(outcomes)-solved))
	}
}

func formatNaturals(requested bool, sols []diophantine.Solution) string {
	if !requested {
		return ""
	}
	if len(sols) == 0 {
		return "none"
	}

	parts := make([]string, 0, maxListed+1)
	for i, s := range sols {
		if i == maxListed {
			parts = append(parts, fmt.Sprintf("… (%d total)", len(sols)))
			break
		}
		parts = append(parts, s.String())
	}

	return strings.Join(parts, " ")
}
