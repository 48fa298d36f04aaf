// Package cmd provides the root command and CLI setup for weather-explorer.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/weather-explorer/internal/adapter"
	"github.com/mouse-blink/weather-explorer/internal/config"
	"github.com/mouse-blink/weather-explorer/internal/controller"
	"github.com/mouse-blink/weather-explorer/internal/domain"
	m "github.com/mouse-blink/weather-explorer/internal/model"
	"github.com/mouse-blink/weather-explorer/internal/observability"
)

var cfg *config.Config
var logger *slog.Logger
var logSink io.Closer
var metrics *observability.Metrics
var explorer domain.Explorer
var ui controller.UI
var printer controller.UI
var interactive bool

func init() {
	interactive = controller.IsTTY(os.Stdout)
	ui = controller.NewUI(rootCmd, interactive)
	printer = controller.NewUI(rootCmd, false)
	metrics = observability.NewMetrics()
	logger = observability.NewLogger(io.Discard, "info")
}

var unitsFlag string
var pixelRatioFlag float64
var logFileFlag string
var metricsAddrFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weather-explorer [query]",
		Short: "Look up current weather by city",
		Long: `Weather Explorer searches OpenWeather for a city and shows its current
conditions.

On a terminal it starts an interactive explorer: type to get city suggestions,
pick one or press enter to fetch the weather, toggle units and theme, and
scratch the card open with the secret code. Otherwise it prints a one-shot
report for the given query.

Set OPENWEATHER_API_KEY (environment or .env) to enable lookups.`,
		Args:              cobra.ArbitraryArgs,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			if !interactive {
				if strings.TrimSpace(query) == "" {
					return errors.New("a query is required when output is not a terminal")
				}

				return runNow(cmd, query)
			}

			return runInteractive(query)
		},
	}
	cmd.PersistentFlags().StringVarP(&unitsFlag, "units", "u", "", "unit system: metric or imperial (default from WEATHER_UNITS)")
	cmd.PersistentFlags().Float64Var(&pixelRatioFlag, "pixel-ratio", 0, "scratch card pixel ratio, 1 to 4 (default from REVEAL_PIXEL_RATIO)")
	cmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "", "append logs to this file (default from LOG_FILE)")
	cmd.PersistentFlags().StringVar(&metricsAddrFlag, "metrics-addr", "", "serve Prometheus metrics on this address (default from METRICS_ADDR)")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()

	if logSink != nil {
		_ = logSink.Close()
	}

	if err != nil {
		os.Exit(1)
	}
}

// setup loads configuration and builds the explorer unless one is already set.
func setup(_ *cobra.Command, _ []string) error {
	if explorer != nil {
		return nil
	}

	loaded, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	cfg = loaded

	if logFileFlag != "" {
		cfg.LogFile = logFileFlag
	}

	if metricsAddrFlag != "" {
		cfg.MetricsAddr = metricsAddrFlag
	}

	sink, err := observability.OpenLogFile(cfg.LogFile)
	if err != nil {
		return err
	}

	logSink = sink
	logger = observability.NewLogger(sink, cfg.LogLevel)

	if cfg.MetricsAddr != "" {
		serveMetrics(cfg.MetricsAddr)
	}

	if !cfg.Available() {
		logger.Warn("OPENWEATHER_API_KEY is not set; lookups are disabled")
	}

	explorer = newExplorer(cfg)

	return nil
}

func newExplorer(c *config.Config) domain.Explorer {
	client := adapter.NewOpenWeatherClient(c.APIKey, c.BaseURL, c.HTTPTimeout, logger, metrics)

	return domain.NewExplorer(
		adapter.NewCachedGeocoder(client, c.GeocodeCacheSize, metrics),
		client,
		adapter.NewLocalPreferenceStore(c.PreferencesPath),
		domain.ExplorerArgs{
			Available:    c.Available(),
			Debounce:     c.SuggestDebounce,
			SuggestLimit: c.SuggestLimit,
			SecretCode:   c.SecretCode,
			Logger:       logger,
			Metrics:      metrics,
		},
	)
}

func serveMetrics(addr string) {
	server := &http.Server{
		Addr:              addr,
		Handler:           metrics.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("serving metrics", "addr", addr)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", "error", err)
		}
	}()
}

func runInteractive(query string) error {
	units, err := resolveUnits()
	if err != nil {
		return err
	}

	pixelRatio, err := resolvePixelRatio()
	if err != nil {
		return err
	}

	theme, err := explorer.Theme()
	if err != nil {
		logger.Warn("theme preference unavailable", "error", err)
	}

	session := explorer.NewSession(
		domain.WithSuggestionUpdates(func(state domain.SuggestionState) {
			_ = ui.DisplaySuggestions(state)
		}),
		domain.WithWeatherUpdates(func(state domain.WeatherState) {
			_ = ui.DisplayWeather(state)
		}),
	)
	defer session.Close()

	err = ui.Start(
		controller.WithSession(session),
		controller.WithUnits(units),
		controller.WithTheme(theme),
		controller.WithInitialQuery(query),
		controller.WithPixelRatio(pixelRatio),
	)
	if err != nil {
		return err
	}

	ui.Wait()

	return nil
}

func resolveUnits() (m.UnitSystem, error) {
	if unitsFlag != "" {
		units, ok := m.ParseUnitSystem(unitsFlag)
		if !ok {
			return "", fmt.Errorf("invalid units %q: want metric or imperial", unitsFlag)
		}

		return units, nil
	}

	if cfg != nil {
		return cfg.Units, nil
	}

	return m.UnitsMetric, nil
}

func resolvePixelRatio() (float64, error) {
	if pixelRatioFlag != 0 {
		if !domain.ValidPixelRatio(pixelRatioFlag) {
			return 0, fmt.Errorf("invalid pixel ratio %g: want %g to %g",
				pixelRatioFlag, domain.MinPixelRatio, domain.MaxPixelRatio)
		}

		return pixelRatioFlag, nil
	}

	if cfg != nil {
		return cfg.PixelRatio, nil
	}

	return 1, nil
}
