package openmeteo

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/alexivanou/weather-mcp/internal/config"
	"github.com/alexivanou/weather-mcp/internal/model"
	"golang.org/x/time/rate"
)

// Provider defines the upstream operations the tools depend on
type Provider interface {
	Geocode(ctx context.Context, name string, count int, language string) ([]model.GeoLocation, error)
	CurrentWeather(ctx context.Context, at model.Coordinate) (*model.CurrentWeatherResponse, error)
	DailyForecast(ctx context.Context, at model.Coordinate, days int) (*model.DailyWeatherResponse, error)
	AirQuality(ctx context.Context, at model.Coordinate) (*model.AirQualityResponse, error)
	Archive(ctx context.Context, at model.Coordinate, rng model.DateRange) (*model.DailyWeatherResponse, error)
}

var (
	currentFields = []string{
		"temperature_2m",
		"relative_humidity_2m",
		"apparent_temperature",
		"is_day",
		"precipitation",
		"weather_code",
		"surface_pressure",
		"wind_speed_10m",
		"wind_direction_10m",
		"wind_gusts_10m",
		"visibility",
	}

	forecastDailyFields = []string{
		"weather_code",
		"temperature_2m_max",
		"temperature_2m_min",
		"apparent_temperature_max",
		"apparent_temperature_min",
		"precipitation_sum",
		"precipitation_probability_max",
		"wind_speed_10m_max",
		"wind_direction_10m_dominant",
		"sunrise",
		"sunset",
	}

	archiveDailyFields = []string{
		"weather_code",
		"temperature_2m_max",
		"temperature_2m_min",
		"precipitation_sum",
		"wind_speed_10m_max",
		"wind_direction_10m_dominant",
		"sunrise",
		"sunset",
	}

	airQualityFields = []string{
		"pm10",
		"pm2_5",
		"carbon_monoxide",
		"nitrogen_dioxide",
		"sulphur_dioxide",
		"ozone",
		"aerosol_optical_depth",
		"dust",
		"european_aqi",
	}
)

// Client talks to the Open-Meteo geocoding, forecast, air-quality and archive APIs
type Client struct {
	cfg        config.ProviderConfig
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a client. Throttling is opt-in: a zero RequestsPerSecond
// leaves the client without a limiter.
func NewClient(cfg config.ProviderConfig) *Client {
	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
	}
	if cfg.RateLimited() {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}
	return c
}

// get waits for the limiter and performs the request under one per-call deadline
func (c *Client) get(ctx context.Context, baseURL string, params *Params, timeout time.Duration, out any) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit wait canceled: %w", err)
		}
	}
	return getJSON(ctx, c.httpClient, baseURL, params, timeout, out)
}

func coordinateParams(at model.Coordinate) *Params {
	return NewParams().
		Set("latitude", at.Lat).
		Set("longitude", at.Lon).
		Set("timezone", "auto")
}

// Geocode searches locations by name. An empty language omits the parameter.
func (c *Client) Geocode(ctx context.Context, name string, count int, language string) ([]model.GeoLocation, error) {
	params := NewParams().
		Set("name", name).
		Set("count", count).
		Set("format", "json")
	if language != "" {
		params.Set("language", language)
	}

	var resp model.GeocodingResponse
	if err := c.get(ctx, c.cfg.GeocodingURL, params, c.cfg.Timeout, &resp); err != nil {
		return nil, fmt.Errorf("geocode %q: %w", name, err)
	}
	return resp.Results, nil
}

// CurrentWeather fetches current conditions
func (c *Client) CurrentWeather(ctx context.Context, at model.Coordinate) (*model.CurrentWeatherResponse, error) {
	params := coordinateParams(at).
		SetList("current", currentFields).
		Set("wind_speed_unit", "kmh")

	var resp model.CurrentWeatherResponse
	if err := c.get(ctx, c.cfg.ForecastURL, params, c.cfg.Timeout, &resp); err != nil {
		return nil, fmt.Errorf("current weather: %w", err)
	}
	return &resp, nil
}

// DailyForecast fetches daily aggregates for the next days
func (c *Client) DailyForecast(ctx context.Context, at model.Coordinate, days int) (*model.DailyWeatherResponse, error) {
	params := coordinateParams(at).
		SetList("daily", forecastDailyFields).
		Set("forecast_days", days).
		Set("wind_speed_unit", "kmh")

	var resp model.DailyWeatherResponse
	if err := c.get(ctx, c.cfg.ForecastURL, params, c.cfg.Timeout, &resp); err != nil {
		return nil, fmt.Errorf("daily forecast: %w", err)
	}
	return &resp, nil
}

// AirQuality fetches current pollutant concentrations
func (c *Client) AirQuality(ctx context.Context, at model.Coordinate) (*model.AirQualityResponse, error) {
	params := coordinateParams(at).
		SetList("current", airQualityFields)

	var resp model.AirQualityResponse
	if err := c.get(ctx, c.cfg.AirQualityURL, params, c.cfg.Timeout, &resp); err != nil {
		return nil, fmt.Errorf("air quality: %w", err)
	}
	return &resp, nil
}

// Archive fetches historical daily aggregates for an inclusive date range.
// A rejected range surfaces as an *UpstreamError with IsBadRequest set.
func (c *Client) Archive(ctx context.Context, at model.Coordinate, rng model.DateRange) (*model.DailyWeatherResponse, error) {
	params := coordinateParams(at).
		Set("start_date", rng.Start).
		Set("end_date", rng.End).
		SetList("daily", archiveDailyFields).
		Set("wind_speed_unit", "kmh")

	var resp model.DailyWeatherResponse
	if err := c.get(ctx, c.cfg.ArchiveURL, params, c.cfg.ArchiveTimeout, &resp); err != nil {
		return nil, fmt.Errorf("archive: %w", err)
	}
	return &resp, nil
}

var _ Provider = (*Client)(nil)
