package cli

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lindio/diophantine"
)

type solveFlags struct {
	natural    bool
	all        bool
	invert     bool
	noShortcut bool
}

func (a *app) newSolveCmd() *cobra.Command {
	var f solveFlags

	cmd := &cobra.Command{
		Use:   "solve A B C",
		Short: "Solve A·x + B·y = C",
		Long: `Solve A·x + B·y = C over the integers.

Prints gcd(A, B), the Bézout coefficients, a particular solution and the
general solution family. With --natural, also lists the solutions where both
x and y are positive, up to --limit of them.`,
		Example: `  diophantine solve 3 5 100 --natural --all
  diophantine solve --natural --limit 5 -- 3 -5 1`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInts(args)
			if err != nil {
				return err
			}
			eq := diophantine.NewEquation(n[0], n[1], n[2])

			return a.runSolve(cmd, eq, f)
		},
	}

	cmd.Flags().BoolVarP(&f.natural, "natural", "n", false, "list natural (positive) solutions")
	cmd.Flags().IntP(limitFlagName, "l", a.v.GetInt(naturalLimitKey), "maximum number of natural solutions")
	bindFlagToConfig(a.v, cmd.Flags().Lookup(limitFlagName), naturalLimitKey)
	cmd.Flags().BoolVar(&f.all, "all", false, "list every natural solution of a finite range, ignoring --limit")
	cmd.Flags().BoolVar(&f.invert, "invert", false, "walk the solution line in the opposite direction")
	cmd.Flags().BoolVar(&f.noShortcut, "no-shortcut", false, "disable the a+b=c shortcut")

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, eq diophantine.Equation, f solveFlags) error {
	limit := a.v.GetInt(naturalLimitKey)
	opts := []diophantine.Option{diophantine.WithLimit(limit)}
	if f.invert {
		opts = append(opts, diophantine.WithInvert())
	}
	if f.all {
		opts = append(opts, diophantine.WithAll())
	}
	if f.noShortcut {
		opts = append(opts, diophantine.WithoutShortcut())
	}

	slog.Debug("solving", "equation", eq.String(), "natural", f.natural)
	res, err := diophantine.Solve(eq, opts...)
	if err != nil {
		slog.Warn("solve failed", "equation", eq.String(), "error", err)
		return err
	}

	p := newPrinter(cmd.OutOrStdout())
	p.title(eq.String())
	p.line("gcd(%d, %d) = %d, Bézout coefficients %v", eq.A, eq.B, res.GCD, res.Coefficients)
	p.line("Particular solution: %v", res.Particular)
	p.line("General Solutions are:")
	p.success(res.Family.String())

	if !f.natural {
		return nil
	}

	seq, err := diophantine.Naturals(eq, res.Family, opts...)
	if err != nil {
		return err
	}

	var rows [][]string
	for t, s := range seq {
		rows = append(rows, []string{strconv.FormatInt(t, 10), strconv.FormatInt(s.X, 10), strconv.FormatInt(s.Y, 10)})
	}
	slog.Debug("natural solutions", "equation", eq.String(), "range", res.Range.String(), "count", len(rows))

	p.line("Parameter range for natural solutions: %v", res.Range)
	complete := len(rows) < limit || (f.all && res.Range.Finite())
	header := []string{"t", "x", "y"}
	switch {
	case len(rows) == 0:
		p.muted("No natural number solution")
	case len(rows) == 1 && complete:
		p.success("Only one natural number solution !")
		p.table(renderTable(header, rows, nil))
	case complete:
		p.table(renderTable(header, rows, []string{"", "", fmt.Sprintf("%d solutions", len(rows))}))
	default:
		p.table(renderTable(header, rows, []string{"", "", fmt.Sprintf("first %d solutions", len(rows))}))
	}

	return nil
}
