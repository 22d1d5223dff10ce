package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/clareta27/vinyl-backend/internal/api/client"
)

func searchCmd() *cobra.Command {
	var (
		limit  int
		offset int
		sort   string
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search record listings",
		Long:  "Runs a keyword search and shows the listings that are records.",
		Example: `  vinylctl search "miles davis kind of blue"
  vinylctl search "joy division" --sort price --limit 50`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := newClient().Search(cmd.Context(), &apiclient.SearchParams{
				Query:   args[0],
				Country: country(),
				Limit:   limit,
				Offset:  offset,
				Sort:    sort,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, res)
			}
			if len(res.Items) == 0 {
				fmt.Fprintln(out, "No listings found.")
				return nil
			}

			fmt.Fprintf(out, "Showing %d of %d listings on %s\n\n", len(res.Items), res.Total, res.Marketplace)
			return printItemsTable(out, res.Items)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "page size (server default when 0)")
	cmd.Flags().IntVar(&offset, "offset", 0, "result offset")
	cmd.Flags().StringVar(&sort, "sort", "", "sort order: price, -price, newlyListed, endingSoonest")

	return cmd
}

func lookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <code>",
		Short: "Look up a barcode or catalog number",
		Long: "Searches listings by UPC/EAN. When nothing matches the code is\n" +
			"retried as a keyword search.",
		Example: `  vinylctl lookup 0602547288226`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := newClient().Lookup(cmd.Context(), args[0], country())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, res)
			}
			if len(res.Items) == 0 {
				fmt.Fprintf(out, "Nothing found for %s.\n", res.Code)
				return nil
			}

			fmt.Fprintf(out, "%d listings for %s (matched by %s)\n\n", len(res.Items), res.Code, res.Source)
			return printItemsTable(out, res.Items)
		},
	}
}
