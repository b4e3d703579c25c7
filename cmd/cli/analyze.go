package main

import (
	"fmt"
	"time"

	"calsdt/adapters/report"
	"calsdt/adapters/source"
	"calsdt/app"
	"calsdt/ports"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	defaultInput  = "sodienthoai.txt"
	defaultOutput = "result.txt"
)

func newAnalyzeCmd(c *cli) *cobra.Command {
	var flags configFlags
	var input, output, format string
	var workers int
	var quiet bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Rank every number in a list and write the survivors",
		Long: `Read candidate numbers, drop those that fail the filters and write the rest
ranked by score, one "NUMBER  score=X.XX" line each.

Inputs: a text file (one number per line), a .csv/.xlsx file (append #Column
to pick a header column), sqlite://file.db?table=t&column=c or
postgres://user@host/db?table=t&column=c.
Outputs: .txt, .csv, .xlsx, .html or .json by extension, "-" for stdout.

Example: calsdt analyze -i sodienthoai.txt -o result.txt --menh Kim`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}

			src, err := source.Open(input)
			if err != nil {
				return err
			}
			if closer, ok := src.(interface{ Close() error }); ok {
				defer closer.Close()
			}

			fmtName, err := report.ParseFormat(format, output)
			if err != nil {
				return err
			}
			sink, err := report.NewFileSink(output, fmtName)
			if err != nil {
				return err
			}

			svc := app.NewAnalysisService(c.logger, workers)
			rep, err := svc.Run(cmd.Context(), app.AnalysisRequest{
				Config: cfg,
				Source: src,
				Sinks:  []ports.ResultSink{sink},
			})
			if err != nil {
				return err
			}

			c.logger.Info("run finished", zap.String("run_id", rep.RunID.String()), zap.String("output", sink.Name()))
			if !quiet && output != "-" {
				fmt.Fprintf(cmd.OutOrStdout(), "Da tim thay %d so hop le trong %d so (%s). Ket qua: %s\n",
					rep.Accepted, rep.Total, rep.Elapsed.Round(time.Millisecond), output)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&input, "input", "i", defaultInput, "Input location")
	cmd.Flags().StringVarP(&output, "output", "o", defaultOutput, "Output file, - for stdout")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: txt, csv, xlsx, html, table, json (default from extension)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Parallel workers (default one per CPU)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not print the run summary")

	return cmd
}
