package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/clareta27/vinyl-backend/internal/api/client"
)

func recommendCmd() *cobra.Command {
	var (
		itemID string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "recommend [query]",
		Short: "Recommend similar records",
		Long:  "Finds records similar to a listing (--item) or a free-text query.",
		Example: `  vinylctl recommend --item "v1|125551234567|0"
  vinylctl recommend "shoegaze"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var query string
			if len(args) == 1 {
				query = args[0]
			}
			if itemID == "" && query == "" {
				return errors.New("either --item or a query is required")
			}

			res, err := newClient().Recommend(cmd.Context(), &apiclient.RecommendParams{
				ItemID:  itemID,
				Query:   query,
				Country: country(),
				Limit:   limit,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, res)
			}
			if res.Base != nil {
				fmt.Fprintf(out, "Because you looked at: %s\n", res.Base.Title)
			}
			if len(res.Items) == 0 {
				fmt.Fprintln(out, "No recommendations found.")
				return nil
			}

			fmt.Fprintf(out, "Similar to %q\n\n", res.Query)
			return printScoredTable(out, res.Items)
		},
	}
	cmd.Flags().StringVar(&itemID, "item", "", "base listing id")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of results (server default when 0)")

	return cmd
}
