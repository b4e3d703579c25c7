package main

import (
	"bufio"
	"os"

	"calsdt/internal/testkit"

	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	config := testkit.DefaultNumberConfig()
	var output string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a reproducible list of random candidate numbers",
		Long: `Write random 10-digit numbers, one per line. The same seed always produces
the same list.

Example: calsdt generate -n 5000 --prefix 09 --seed 7 -o sodienthoai.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := testkit.NewNumberGenerator(config).Generate()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}

			w := bufio.NewWriter(out)
			for _, line := range lines {
				w.WriteString(line)
				w.WriteByte('\n')
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&config.Count, "count", "n", config.Count, "How many numbers")
	cmd.Flags().StringVar(&config.Prefix, "prefix", config.Prefix, "Fixed leading digits")
	cmd.Flags().Int64Var(&config.Seed, "seed", config.Seed, "Random seed")
	cmd.Flags().Float64Var(&config.NoiseRate, "noise", 0, "Share of lines written with separators or malformed")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "Output file, - for stdout")

	return cmd
}
