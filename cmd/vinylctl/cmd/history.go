package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history <query>",
		Short: "Show sold price history",
		Long:  "Lists recent completed sales for a release with price statistics.",
		Example: `  vinylctl history "radiohead ok computer"
  vinylctl history "radiohead ok computer" --limit 100 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := newClient().PriceHistory(cmd.Context(), args[0], country(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, res)
			}
			if err := printHistorySummary(out, res); err != nil {
				return err
			}
			if len(res.Items) == 0 {
				return nil
			}

			fmt.Fprintln(out)
			return printSalesTable(out, res.Items)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum sold listings (server default when 0)")

	return cmd
}

func chartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chart <query>",
		Short: "Show sold price windows across format variants",
		Long: "Merges completed sales for the query and its format variants\n" +
			"(vinyl, lp, cd, cassette) and summarizes trailing windows.",
		Example: `  vinylctl chart "pink floyd"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := newClient().ChartData(cmd.Context(), args[0], country())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, res)
			}

			fmt.Fprintf(out, "%d sales across %d variants on %s\n\n",
				res.TotalRecords, len(res.Variants), res.Marketplace)
			return printWindowsTable(out, res.Windows)
		},
	}
}

func quotaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quota",
		Short: "Show the server's daily eBay call budget",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := newClient().Quota(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, q)
			}
			return printQuota(out, q)
		},
	}
}
