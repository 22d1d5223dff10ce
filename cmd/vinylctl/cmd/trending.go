package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func trendingCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "trending",
		Short: "Show trending records",
		Long:  "Lists the most popular record listings on the marketplace right now.",
		Example: `  vinylctl trending
  vinylctl trending --country GB --limit 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := newClient().Trending(cmd.Context(), country(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, res)
			}
			if len(res.Items) == 0 {
				fmt.Fprintln(out, "No trending records found.")
				return nil
			}

			fmt.Fprintf(out, "Trending on %s (%d)\n\n", res.Marketplace, res.Count)
			return printScoredTable(out, res.Items)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of results (server default when 0)")

	return cmd
}
