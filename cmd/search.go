package cmd

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newSearchCommand() *cobra.Command {
	var query string
	var category string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search for professionals",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := url.Values{}
			if query != "" {
				params.Set("search", query)
			}
			if category != "" {
				params.Set("category", category)
			}

			professionals, err := apiClient().SearchProfessionals(cmd.Context(), params)
			if err != nil {
				return err
			}
			if len(professionals) == 0 {
				fmt.Println("No professionals found")
				return nil
			}
			for _, p := range professionals {
				fmt.Printf("%d\t%s\t$%.0f - $%.0f\t%s\n",
					p.ID, p.Name, p.PriceRangeMin, p.PriceRangeMax, p.Address)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "search text")
	cmd.Flags().StringVarP(&category, "category", "c", "", "professional category slug")
	return cmd
}
