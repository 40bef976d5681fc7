package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/budget-tools/bankstatement/internal/importer"
	"github.com/budget-tools/bankstatement/internal/summary"
)

func newSummaryCommand(a *app) *cobra.Command {
	var opts inputOptions

	cmd := &cobra.Command{
		Use:   "summary <statement>",
		Short: "Print transaction count and totals for a statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			return runSummary(cmd.Context(), a, args[0], opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", importer.FormatFECCCU, "input format (fecccu, csv)")
	cmd.Flags().BoolVar(&opts.text, "text", false, "input is already-extracted layout text")

	return cmd
}

func runSummary(ctx context.Context, a *app, path string, opts inputOptions, stdout io.Writer) error {
	p, err := a.parser(opts.format)
	if err != nil {
		return err
	}

	txns, err := a.load(ctx, path, p, opts.text)
	if err != nil {
		return err
	}

	lines, err := summary.Summarize(txns).Lines(a.cfg.Output.Currency)
	if err != nil {
		return err
	}
	for _, l := range lines {
		fmt.Fprintln(stdout, l)
	}
	return nil
}
