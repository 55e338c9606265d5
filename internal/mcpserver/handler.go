package mcpserver

import (
	"context"
	"time"

	"github.com/alexivanou/weather-mcp/internal/model"
	"github.com/alexivanou/weather-mcp/internal/service"
	"github.com/alexivanou/weather-mcp/internal/stats"
	"github.com/alexivanou/weather-mcp/internal/weather"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// Handler handles tool calls from the host
type Handler struct {
	service   service.ServiceInterface
	collector *stats.Collector
	logger    *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(service service.ServiceInterface, collector *stats.Collector, logger *zap.Logger) *Handler {
	return &Handler{service: service, collector: collector, logger: logger}
}

// invoke runs one tool call, logging and counting it.
// Upstream failures become error results; everything else is plain text.
func (h *Handler) invoke(ctx context.Context, tool string, call func(ctx context.Context) (string, error)) (*mcp.CallToolResult, error) {
	callID := uuid.NewString()
	start := time.Now()

	text, err := call(ctx)
	elapsed := time.Since(start)
	h.collector.Record(tool, callID, elapsed, err != nil)

	if err != nil {
		h.logger.Error("Tool call failed",
			zap.String("tool", tool),
			zap.String("call_id", callID),
			zap.Duration("duration", elapsed),
			zap.Error(err),
		)
		return mcp.NewToolResultErrorFromErr("upstream weather provider failed", err), nil
	}

	h.logger.Info("Tool call completed",
		zap.String("tool", tool),
		zap.String("call_id", callID),
		zap.Duration("duration", elapsed),
	)
	return mcp.NewToolResultText(text), nil
}

// GeocodeCity handles geocode_city
func (h *Handler) GeocodeCity(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	city, err := req.RequireString(argCityName)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return h.invoke(ctx, ToolGeocodeCity, func(ctx context.Context) (string, error) {
		return h.service.GeocodeCity(ctx, city)
	})
}

// CurrentWeather handles get_current_weather
func (h *Handler) CurrentWeather(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lat, err := req.RequireFloat(argLatitude)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	lon, err := req.RequireFloat(argLongitude)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return h.invoke(ctx, ToolCurrentWeather, func(ctx context.Context) (string, error) {
		return h.service.CurrentWeather(ctx, lat, lon)
	})
}

// Forecast handles get_forecast
func (h *Handler) Forecast(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lat, err := req.RequireFloat(argLatitude)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	lon, err := req.RequireFloat(argLongitude)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	forecast := model.ForecastRequest{
		Latitude:  lat,
		Longitude: lon,
		Days:      weather.ClampDaysArg(req.GetFloat(argDays, weather.DefaultForecastDays)),
	}
	return h.invoke(ctx, ToolForecast, func(ctx context.Context) (string, error) {
		return h.service.Forecast(ctx, forecast)
	})
}

// WeatherByCity handles get_weather_by_city
func (h *Handler) WeatherByCity(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	city, err := req.RequireString(argCityName)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return h.invoke(ctx, ToolWeatherByCity, func(ctx context.Context) (string, error) {
		return h.service.WeatherByCity(ctx, city)
	})
}

// AirQuality handles get_air_quality
func (h *Handler) AirQuality(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	city, err := req.RequireString(argCityName)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return h.invoke(ctx, ToolAirQuality, func(ctx context.Context) (string, error) {
		return h.service.AirQuality(ctx, city)
	})
}

// HistoricalWeather handles get_historical_weather
func (h *Handler) HistoricalWeather(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var history model.HistoryRequest
	var err error
	if history.City, err = req.RequireString(argCityName); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if history.StartDate, err = req.RequireString(argStartDate); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if history.EndDate, err = req.RequireString(argEndDate); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return h.invoke(ctx, ToolHistoricalWeather, func(ctx context.Context) (string, error) {
		return h.service.HistoricalWeather(ctx, history)
	})
}
