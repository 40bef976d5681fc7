package commands

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/budget-tools/bankstatement/internal/importer"
	"github.com/budget-tools/bankstatement/internal/transactions"
)

type convertOptions struct {
	inputOptions
	output string
	to     string
}

func newConvertCommand(a *app) *cobra.Command {
	var opts convertOptions

	cmd := &cobra.Command{
		Use:   "convert <statement>",
		Short: "Convert a statement to CSV, JSON or XLSX",
		Long: `Convert a statement to CSV, JSON or XLSX.

A fecccu statement is a PDF rendered to layout text with pdftotext before
scanning; pass --text when the input is already text. A csv input is a file
previously written by this command.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			return runConvert(cmd.Context(), a, args[0], opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", importer.FormatFECCCU, "input format (fecccu, csv)")
	cmd.Flags().BoolVar(&opts.text, "text", false, "input is already-extracted layout text")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default standard output)")
	cmd.Flags().StringVarP(&opts.to, "to", "t", "", "output format: csv, json or xlsx (default csv for fecccu, json for csv)")

	return cmd
}

func runConvert(ctx context.Context, a *app, path string, opts convertOptions, stdout io.Writer) error {
	p, err := a.parser(opts.format)
	if err != nil {
		return err
	}

	to := opts.to
	if to == "" {
		to = defaultOutputFormat(p.Format())
	}
	format, err := transactions.ParseFormat(to)
	if err != nil {
		return err
	}

	txns, err := a.load(ctx, path, p, opts.text)
	if err != nil {
		return err
	}

	// Nothing is written until the whole statement has been parsed.
	var buf bytes.Buffer
	if err := transactions.Write(&buf, format, txns); err != nil {
		return fmt.Errorf("encoding %s: %w", format, err)
	}

	if opts.output == "" {
		if _, err := stdout.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	} else if err := os.WriteFile(opts.output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	a.logger.Info("converted statement", "transactions", len(txns), "format", format, "output", outputName(opts.output))
	return nil
}

func defaultOutputFormat(inputFormat string) string {
	if inputFormat == importer.FormatCSV {
		return string(transactions.FormatJSON)
	}
	return string(transactions.FormatCSV)
}

func outputName(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}
