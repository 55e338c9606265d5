package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexivanou/weather-mcp/internal/model"
	"github.com/alexivanou/weather-mcp/internal/openmeteo"
	"github.com/alexivanou/weather-mcp/internal/weather"
)

// GeocodeCity lists up to five locations matching the name
func (s *Service) GeocodeCity(ctx context.Context, city string) (string, error) {
	results, err := s.provider.Geocode(ctx, city, geocodeCandidates, s.geocodeLanguage)
	if err != nil {
		return "", fmt.Errorf("failed to geocode city: %w", err)
	}
	return weather.FormatGeocodeResults(city, results), nil
}

// CurrentWeather reports current conditions at the given coordinates
func (s *Service) CurrentWeather(ctx context.Context, latitude, longitude float64) (string, error) {
	if err := weather.ValidateCoordinates(latitude, longitude); err != nil {
		return err.Error(), nil
	}

	resp, err := s.provider.CurrentWeather(ctx, model.Coordinate{Lat: latitude, Lon: longitude})
	if err != nil {
		return "", fmt.Errorf("failed to get current weather: %w", err)
	}
	return weather.FormatCurrentAtCoordinates(latitude, longitude, resp), nil
}

// Forecast reports daily aggregates for 1 to 7 days; out-of-range day counts are clamped
func (s *Service) Forecast(ctx context.Context, req model.ForecastRequest) (string, error) {
	if err := weather.ValidateCoordinates(req.Latitude, req.Longitude); err != nil {
		return err.Error(), nil
	}

	days := weather.ClampDays(req.Days)
	resp, err := s.provider.DailyForecast(ctx, model.Coordinate{Lat: req.Latitude, Lon: req.Longitude}, days)
	if err != nil {
		return "", fmt.Errorf("failed to get forecast: %w", err)
	}
	return weather.FormatForecast(req.Latitude, req.Longitude, days, resp), nil
}

// WeatherByCity geocodes the name and reports current conditions at the first match
func (s *Service) WeatherByCity(ctx context.Context, city string) (string, error) {
	loc, err := s.resolveCity(ctx, city, s.geocodeLanguage)
	if err != nil {
		return "", err
	}
	if loc == nil {
		return fmt.Sprintf("❌ Không tìm thấy thành phố '%s'. Thử lại với tên tiếng Anh hoặc kiểm tra chính tả.", city), nil
	}

	resp, err := s.provider.CurrentWeather(ctx, coordinateOf(loc))
	if err != nil {
		return "", fmt.Errorf("failed to get current weather: %w", err)
	}
	return weather.FormatCurrentAtLocation(*loc, resp), nil
}

// AirQuality geocodes the name and reports pollutant levels at the first match
func (s *Service) AirQuality(ctx context.Context, city string) (string, error) {
	loc, err := s.resolveCity(ctx, city, "")
	if err != nil {
		return "", err
	}
	if loc == nil {
		return cityNotFound(city), nil
	}

	resp, err := s.provider.AirQuality(ctx, coordinateOf(loc))
	if err != nil {
		return "", fmt.Errorf("failed to get air quality: %w", err)
	}
	return weather.FormatAirQuality(*loc, resp), nil
}

// HistoricalWeather reports archived daily weather for an inclusive date range.
// A range rejected by the archive is returned as text, not as an error.
func (s *Service) HistoricalWeather(ctx context.Context, req model.HistoryRequest) (string, error) {
	if err := weather.ValidateDateRange(req.StartDate, req.EndDate); err != nil {
		return err.Error(), nil
	}

	loc, err := s.resolveCity(ctx, req.City, "")
	if err != nil {
		return "", err
	}
	if loc == nil {
		return cityNotFound(req.City), nil
	}

	rng := model.DateRange{Start: req.StartDate, End: req.EndDate}
	resp, err := s.provider.Archive(ctx, coordinateOf(loc), rng)
	if err != nil {
		var upErr *openmeteo.UpstreamError
		if errors.As(err, &upErr) && upErr.IsBadRequest() {
			return fmt.Sprintf("❌ Lỗi từ API: %s", upErr.Reason()), nil
		}
		return "", fmt.Errorf("failed to get historical weather: %w", err)
	}

	if resp.Daily.Days() == 0 {
		return fmt.Sprintf("Không có dữ liệu lịch sử cho '%s' trong khoảng %s → %s.", loc.Label(), rng.Start, rng.End), nil
	}
	return weather.FormatHistory(*loc, rng, resp), nil
}

func cityNotFound(city string) string {
	return fmt.Sprintf("❌ Không tìm thấy thành phố '%s'.", city)
}
