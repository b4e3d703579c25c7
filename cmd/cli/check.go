package main

import (
	"encoding/json"
	"fmt"

	"calsdt/app"

	"github.com/spf13/cobra"
)

func newCheckCmd(c *cli) *cobra.Command {
	var flags configFlags
	var explain, asJSON bool

	cmd := &cobra.Command{
		Use:   "check [number]",
		Short: "Check one number and explain why it passes or fails",
		Long: `Evaluate a single number. Prints the score if it passes, or the reason of
the first failing filter.

Example: calsdt check 0123456789 --menh Kim --explain`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}

			svc := app.NewAnalysisService(c.logger, 1)
			ev := svc.Explain(cfg, args[0])
			outcome := ev.Outcome()
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if explain {
					return enc.Encode(map[string]interface{}{"outcome": outcome, "trace": ev})
				}
				return enc.Encode(outcome)
			}

			if outcome.IsValid() {
				fmt.Fprintf(out, "%s  score=%.2f\n", ev.Number, outcome.Valid.Score)
			} else {
				fmt.Fprintf(out, "invalid: %s\n", outcome.Invalid.Reason)
			}
			if !explain || ev.Number == "" {
				return nil
			}

			fmt.Fprintf(out, "transformed: %s\n", ev.Transformed)
			fmt.Fprintf(out, "counts: Kim=%d Moc=%d Thuy=%d Hoa=%d Tho=%d\n",
				ev.Counts["Kim"], ev.Counts["Moc"], ev.Counts["Thuy"], ev.Counts["Hoa"], ev.Counts["Tho"])
			for _, g := range ev.Gates {
				status := "pass"
				switch {
				case g.Skipped:
					status = "skip"
				case !g.Passed:
					status = "FAIL"
				}
				fmt.Fprintf(out, "  %-16s %s", g.GateName, status)
				if g.FailureReason != "" {
					fmt.Fprintf(out, "  %s", g.FailureReason)
				}
				fmt.Fprintln(out)
			}
			if ev.Score != nil {
				fmt.Fprintf(out, "adjacency=%d compatibility=%.2f final=%.2f\n",
					ev.Score.Adjacency, ev.Score.Compatibility, ev.Score.Final)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&explain, "explain", "e", false, "Show every filter and the partial scores")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")

	return cmd
}
