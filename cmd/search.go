package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/weather-explorer/internal/domain"
)

// searchCmd represents the search command.
var searchCmd = newSearchCmd()

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "List cities matching a query",
		Long:  "List the cities OpenWeather geocoding returns for a query, with their coordinates.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			candidates, err := explorer.Search(cmd.Context(), query)
			if err != nil {
				return err
			}

			return printer.DisplaySuggestions(domain.SuggestionState{
				Query:      strings.TrimSpace(query),
				Candidates: candidates,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
