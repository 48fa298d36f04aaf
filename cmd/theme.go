package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/weather-explorer/internal/model"
)

// themeCmd represents the theme command.
var themeCmd = newThemeCmd()

func newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "theme [day|night]",
		Short:     "Show or set the interactive theme",
		Long:      "Without an argument, print the saved theme. With day or night, save it for the next interactive session.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(m.ThemeDay), string(m.ThemeNight)},
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				theme, err := explorer.Theme()
				if err != nil {
					return err
				}

				return printer.DisplayTheme(theme)
			}

			theme, ok := m.ParseTheme(args[0])
			if !ok {
				return fmt.Errorf("unknown theme %q: want day or night", args[0])
			}

			if err := explorer.SetTheme(theme); err != nil {
				return err
			}

			return printer.DisplayTheme(theme)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
