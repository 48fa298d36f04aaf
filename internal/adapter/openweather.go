package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	m "github.com/mouse-blink/weather-explorer/internal/model"
	"github.com/mouse-blink/weather-explorer/internal/observability"
)

const iconBaseURL = "https://openweathermap.org/img/wn"

// OpenWeatherClient implements Geocoder and WeatherProvider using the OpenWeather APIs.
type OpenWeatherClient struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewOpenWeatherClient creates an OpenWeather client. An empty apiKey makes
// every call fail with model.ErrMissingConfiguration before touching the network.
func NewOpenWeatherClient(apiKey, baseURL string, timeout time.Duration, logger *slog.Logger, metrics *observability.Metrics) *OpenWeatherClient {
	return &OpenWeatherClient{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		logger:  logger,
		metrics: metrics,
	}
}

// IconURL resolves an icon identifier to its image on the OpenWeather CDN.
func IconURL(iconID string) string {
	if iconID == "" {
		return ""
	}

	return fmt.Sprintf("%s/%s@2x.png", iconBaseURL, url.PathEscape(iconID))
}

// Search returns up to limit places matching text, in the provider's order.
func (c *OpenWeatherClient) Search(ctx context.Context, text string, limit int) ([]m.Candidate, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("geocode: %w", m.ErrMissingConfiguration)
	}

	params := url.Values{
		"q":     {text},
		"limit": {strconv.Itoa(limit)},
		"appid": {c.apiKey},
	}

	var places []geoPlace
	if err := c.getJSON(ctx, "/geo/1.0/direct?"+params.Encode(), "geocode", &places); err != nil {
		return nil, err
	}

	candidates := make([]m.Candidate, 0, len(places))
	for _, p := range places {
		candidates = append(candidates, m.Candidate{
			Name:      p.Name,
			Region:    p.State,
			Country:   p.Country,
			Latitude:  p.Lat,
			Longitude: p.Lon,
		})
	}

	return candidates, nil
}

// CurrentConditions returns the current metric conditions at the coordinates.
func (c *OpenWeatherClient) CurrentConditions(ctx context.Context, lat, lon float64) (m.Conditions, error) {
	if c.apiKey == "" {
		return m.Conditions{}, fmt.Errorf("weather: %w", m.ErrMissingConfiguration)
	}

	params := url.Values{
		"lat":   {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon":   {strconv.FormatFloat(lon, 'f', -1, 64)},
		"units": {"metric"},
		"appid": {c.apiKey},
	}

	var resp currentResponse
	if err := c.getJSON(ctx, "/data/2.5/weather?"+params.Encode(), "weather", &resp); err != nil {
		return m.Conditions{}, err
	}

	if resp.Main == nil {
		return m.Conditions{}, fmt.Errorf("weather response missing main block: %w", m.ErrNetwork)
	}

	conditions := m.Conditions{
		TemperatureC: resp.Main.Temp,
		FeelsLikeC:   resp.Main.FeelsLike,
		HumidityPct:  resp.Main.Humidity,
	}

	if resp.Wind != nil {
		conditions.WindSpeedMs = resp.Wind.Speed
	}

	if len(resp.Weather) > 0 {
		conditions.Description = resp.Weather[0].Description
		conditions.IconID = resp.Weather[0].Icon
	}

	return conditions, nil
}

func (c *OpenWeatherClient) getJSON(ctx context.Context, path, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)

	if c.metrics != nil {
		c.metrics.APIDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}

	if err != nil {
		return fmt.Errorf("%s request: %w: %w", endpoint, m.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Debug("openweather non-success status", "endpoint", endpoint, "status", resp.StatusCode)

		return fmt.Errorf("openweather API error: status %d: %s: %w", resp.StatusCode, body, m.ErrNetwork)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w: %w", endpoint, m.ErrNetwork, err)
	}

	return nil
}

// OpenWeather API response types.

type geoPlace struct {
	Name    string  `json:"name"`
	State   string  `json:"state"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

type currentResponse struct {
	Main *struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind *struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}
