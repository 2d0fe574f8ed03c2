package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lindio/numtheory"
)

func newGCDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gcd N [N...]",
		Short: "Print the gcd and lcm of integers",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseInts(args)
			if err != nil {
				return err
			}

			d, err := numtheory.GCDMany(values...)
			if err != nil {
				return err
			}

			l := numtheory.Abs(values[0])
			for _, v := range values[1:] {
				if l, err = numtheory.LCM(l, v); err != nil {
					return err
				}
			}

			p := newPrinter(cmd.OutOrStdout())
			p.line("gcd = %d", d)
			p.line("lcm = %d", l)

			return nil
		},
	}
}
