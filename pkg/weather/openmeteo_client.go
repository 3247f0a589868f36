package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/observability"
)

type openMeteo struct {
	baseURL    string
	lat, lon   float64
	timezone   string
	httpClient *http.Client
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// Options configures the Open-Meteo client.
type Options struct {
	BaseURL   string
	Latitude  float64
	Longitude float64
	Timezone  string
	Timeout   time.Duration
}

// NewOpenMeteo returns a Forecaster backed by the Open-Meteo daily API.
// Every call hits the network; nothing is cached.
func NewOpenMeteo(opts Options, metrics *observability.Metrics, logger *slog.Logger) Forecaster {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = observability.NewMetricsForTesting()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 2 * time.Second
	}
	return &openMeteo{
		baseURL:    opts.BaseURL,
		lat:        opts.Latitude,
		lon:        opts.Longitude,
		timezone:   opts.Timezone,
		httpClient: &http.Client{Timeout: opts.Timeout},
		metrics:    metrics,
		logger:     logger,
	}
}

type dailyResponse struct {
	Daily *struct {
		Time        []string  `json:"time"`
		WeatherCode []int     `json:"weathercode"`
		TempMax     []float64 `json:"temperature_2m_max"`
		TempMin     []float64 `json:"temperature_2m_min"`
	} `json:"daily"`
}

func (c *openMeteo) Forecast(ctx context.Context) []DailyForecast {
	days, err := c.fetch(ctx)
	if err != nil {
		c.metrics.WeatherRequests.WithLabelValues("error").Inc()
		c.logger.Warn("weather forecast unavailable", "error", err)
		return []DailyForecast{}
	}
	c.metrics.WeatherRequests.WithLabelValues("success").Inc()
	return days
}

func (c *openMeteo) fetch(ctx context.Context) ([]DailyForecast, error) {
	params := url.Values{
		"latitude":      {strconv.FormatFloat(c.lat, 'f', -1, 64)},
		"longitude":     {strconv.FormatFloat(c.lon, 'f', -1, 64)},
		"daily":         {"weathercode,temperature_2m_max,temperature_2m_min"},
		"timezone":      {c.timezone},
		"forecast_days": {strconv.Itoa(ForecastDays)},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("forecast request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("forecast API error: status %d: %s", resp.StatusCode, body)
	}

	var out dailyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	d := out.Daily
	if d == nil {
		return nil, errors.New("response has no daily block")
	}
	if len(d.Time) < ForecastDays || len(d.WeatherCode) < ForecastDays ||
		len(d.TempMax) < ForecastDays || len(d.TempMin) < ForecastDays {
		return nil, fmt.Errorf("daily arrays shorter than %d", ForecastDays)
	}

	days := make([]DailyForecast, 0, ForecastDays)
	for i := 0; i < ForecastDays; i++ {
		days = append(days, DailyForecast{
			Date:    d.Time[i],
			MaxTemp: d.TempMax[i],
			MinTemp: d.TempMin[i],
			Symbol:  Symbol(d.WeatherCode[i]),
		})
	}
	return days, nil
}
