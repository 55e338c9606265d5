package service

import (
	"context"

	"github.com/alexivanou/weather-mcp/internal/model"
)

// ServiceInterface defines the tool operations exposed to the host
type ServiceInterface interface {
	GeocodeCity(ctx context.Context, city string) (string, error)
	CurrentWeather(ctx context.Context, latitude, longitude float64) (string, error)
	Forecast(ctx context.Context, req model.ForecastRequest) (string, error)
	WeatherByCity(ctx context.Context, city string) (string, error)
	AirQuality(ctx context.Context, city string) (string, error)
	HistoricalWeather(ctx context.Context, req model.HistoryRequest) (string, error)
}
