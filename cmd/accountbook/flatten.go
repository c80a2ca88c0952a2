package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/SscSPs/accountbook_service/internal/chartcsv"
	"github.com/SscSPs/accountbook_service/internal/core/chart"
	"github.com/spf13/cobra"
)

func newFlattenCmd() *cobra.Command {
	var (
		file     string
		system   string
		strategy string
	)

	cmd := &cobra.Command{
		Use:   "flatten",
		Short: "Classify and flatten a chart CSV into seed elements",
		Long: "Reads a chart CSV (code,c_name,e_name,parent_code) and writes the classified,\n" +
			"deduplicated seed elements as CSV to stdout. Duplicate codes are reported on stderr.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := chart.ParseStrategy(strategy)
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if file != "" && file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("opening chart: %w", err)
				}
				defer f.Close()
				in = f
			}
			return runFlatten(in, cmd.OutOrStdout(), system, s)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "chart CSV file, - for stdin")
	cmd.Flags().StringVar(&system, "system", "IFRS", "accounting system tag")
	cmd.Flags().StringVarP(&strategy, "strategy", "s", string(chart.BreadthFirst), "traversal strategy: bfs or dfs")
	return cmd
}

func runFlatten(in io.Reader, out io.Writer, system string, s chart.Strategy) error {
	root, err := chartcsv.ReadChart(in, system)
	if err != nil {
		return err
	}

	res := chart.Flatten(root, s)
	for _, dup := range res.Duplicates {
		slog.Warn("Duplicate account code in chart, keeping first occurrence",
			slog.String("code", dup.Code),
			slog.String("name", dup.Name),
			slog.String("parent_code", dup.ParentCode))
	}
	return chartcsv.WriteElements(out, res.Elements)
}
