package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/weather-explorer/internal/controller"
)

// nowCmd represents the now command.
var nowCmd = newNowCmd()

func newNowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "now <query>",
		Short: "Print current conditions for a city",
		Long: `Resolve the query to its best matching city and print the current
conditions there. Exits non-zero when the city cannot be found or the
lookup fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNow(cmd, strings.Join(args, " "))
		},
	}

	return cmd
}

func runNow(cmd *cobra.Command, query string) error {
	units, err := resolveUnits()
	if err != nil {
		return err
	}

	if err := printer.Start(controller.WithUnits(units)); err != nil {
		return err
	}
	defer printer.Close()

	state, err := explorer.Current(cmd.Context(), query)
	if displayErr := printer.DisplayWeather(state); displayErr != nil {
		return displayErr
	}

	return err
}

func init() {
	rootCmd.AddCommand(nowCmd)
}
