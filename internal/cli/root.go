// Package cli implements the diophantine command-line tool: cobra commands,
// viper configuration, slog logging and styled terminal output.
package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const rootLongDescription = `diophantine solves linear Diophantine equations a·x + b·y = c.

It checks whether integer solutions exist, prints a particular solution and
the general solution family, and lists natural (positive) solutions.

Negative coefficients must follow "--" so they are not read as flags:
  diophantine solve -- 3 -5 1`

// app carries the state shared by all subcommands of one root command.
type app struct {
	v          *viper.Viper
	configFile string
	verbose    bool
}

// NewRootCmd builds the command tree with a fresh configuration.
func NewRootCmd() *cobra.Command {
	a := &app{v: newConfig()}

	root := &cobra.Command{
		Use:           "diophantine",
		Short:         "Solve linear Diophantine equations in two unknowns",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(a.v, a.configFile); err != nil {
				return err
			}
			configureLogger(a.v, cmd.ErrOrStderr(), a.verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringVar(&a.configFile, configFlagName, "", "config file (default ./diophantine.yaml if present)")
	root.PersistentFlags().BoolVarP(&a.verbose, verboseFlagName, "v", false, "log at debug level")

	root.AddCommand(
		a.newSolveCmd(),
		newGCDCmd(),
		a.newBatchCmd(),
		newVersionCmd(),
	)

	return root
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		newPrinter(root.ErrOrStderr()).failure("Fatal: " + err.Error())
		os.Exit(1)
	}
}

// parseInts converts command arguments to int64 values.
func parseInts(args []string) ([]int64, error) {
	out := make([]int64, 0, len(args))
	for _, arg := range args {
		n, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", arg, err)
		}
		out = append(out, n)
	}

	return out, nil
}
