package openmeteo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexivanou/weather-mcp/internal/config"
	"github.com/alexivanou/weather-mcp/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(config.ProviderConfig{
		GeocodingURL:   srv.URL + "/v1/search",
		ForecastURL:    srv.URL + "/v1/forecast",
		AirQualityURL:  srv.URL + "/v1/air-quality",
		ArchiveURL:     srv.URL + "/v1/archive",
		Timeout:        2 * time.Second,
		ArchiveTimeout: 2 * time.Second,
	})
}

var hanoi = model.Coordinate{Lat: 21.0285, Lon: 105.8542}

func TestClient_Geocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/search", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "Hanoi", q.Get("name"))
		assert.Equal(t, "5", q.Get("count"))
		assert.Equal(t, "vi", q.Get("language"))
		assert.Equal(t, "json", q.Get("format"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"name":"Hà Nội","admin1":"Hà Nội","country":"Việt Nam","latitude":21.0245,"longitude":105.84117,"elevation":14.0}]}`))
	}))
	defer srv.Close()

	results, err := newTestClient(srv).Geocode(context.Background(), "Hanoi", 5, "vi")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Hà Nội", results[0].Name)
	assert.Equal(t, "Việt Nam", results[0].Country)
	assert.Equal(t, "14.0", results[0].Elevation.String())
}

func TestClient_GeocodeWithoutLanguage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.URL.Query()["language"]
		assert.False(t, present)
		assert.Equal(t, "1", r.URL.Query().Get("count"))
		w.Write([]byte(`{"generationtime_ms":0.5}`))
	}))
	defer srv.Close()

	results, err := newTestClient(srv).Geocode(context.Background(), "Atlantis", 1, "")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestClient_CurrentWeatherSendsRepeatedFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/v1/forecast", r.URL.Path)
		assert.Equal(t, currentFields, q["current"])
		assert.Equal(t, "21.0285", q.Get("latitude"))
		assert.Equal(t, "105.8542", q.Get("longitude"))
		assert.Equal(t, "kmh", q.Get("wind_speed_unit"))
		assert.Equal(t, "auto", q.Get("timezone"))

		w.Write([]byte(`{"timezone":"Asia/Bangkok","current_units":{"temperature_2m":"°C"},"current":{"time":"2024-01-05T14:00","temperature_2m":24.3}}`))
	}))
	defer srv.Close()

	resp, err := newTestClient(srv).CurrentWeather(context.Background(), hanoi)
	require.NoError(t, err)
	assert.Equal(t, "Asia/Bangkok", resp.Timezone)
	assert.Equal(t, "24.3", resp.Current.Temperature.String())
	assert.Equal(t, "°C", resp.CurrentUnits.Get("temperature_2m", ""))
}

func TestClient_DailyForecast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, forecastDailyFields, q["daily"])
		assert.Equal(t, "3", q.Get("forecast_days"))
		w.Write([]byte(`{"daily":{"time":["2024-01-05","2024-01-06","2024-01-07"]}}`))
	}))
	defer srv.Close()

	resp, err := newTestClient(srv).DailyForecast(context.Background(), hanoi, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Daily.Days())
}

func TestClient_AirQuality(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/air-quality", r.URL.Path)
		assert.Equal(t, airQualityFields, r.URL.Query()["current"])
		w.Write([]byte(`{"current":{"pm2_5":18.3,"european_aqi":42}}`))
	}))
	defer srv.Close()

	resp, err := newTestClient(srv).AirQuality(context.Background(), hanoi)
	require.NoError(t, err)
	assert.Equal(t, 42.0, resp.Current.EuropeanAQI.Value)
}

func TestClient_ArchiveBadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/v1/archive", r.URL.Path)
		assert.Equal(t, "2024-01-01", q.Get("start_date"))
		assert.Equal(t, "2030-01-01", q.Get("end_date"))
		assert.Equal(t, archiveDailyFields, q["daily"])

		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":true,"reason":"range too large"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Archive(context.Background(), hanoi, model.DateRange{Start: "2024-01-01", End: "2030-01-01"})
	require.Error(t, err)

	var upErr *UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.True(t, upErr.IsBadRequest())
	assert.Equal(t, "range too large", upErr.Reason())
}

func TestClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("internal server error"))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).CurrentWeather(context.Background(), hanoi)
	require.Error(t, err)

	var upErr *UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, http.StatusInternalServerError, upErr.StatusCode)
	assert.False(t, upErr.IsBadRequest())
	assert.Equal(t, "internal server error", upErr.Reason())
	assert.Contains(t, err.Error(), "HTTP 500")
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := newTestClient(srv)
	client.cfg.Timeout = 50 * time.Millisecond

	_, err := client.CurrentWeather(context.Background(), hanoi)
	require.Error(t, err)

	var upErr *UpstreamError
	assert.False(t, errors.As(err, &upErr))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(srv).Geocode(ctx, "Hanoi", 1, "")
	assert.Error(t, err)
}

func TestClient_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(config.ProviderConfig{
		GeocodingURL:      srv.URL,
		Timeout:           time.Second,
		RequestsPerSecond: 0.001,
		Burst:             1,
	})
	require.NotNil(t, client.limiter)

	_, err := client.Geocode(context.Background(), "Hanoi", 1, "")
	require.NoError(t, err)

	// The bucket is empty and refills far slower than this deadline
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = client.Geocode(ctx, "Hanoi", 1, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit")
}

func TestClient_RateLimitWaitBoundedByTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(config.ProviderConfig{
		GeocodingURL:      srv.URL,
		Timeout:           20 * time.Millisecond,
		RequestsPerSecond: 0.001,
		Burst:             1,
	})

	_, err := client.Geocode(context.Background(), "Hanoi", 1, "")
	require.NoError(t, err)

	start := time.Now()
	_, err = client.Geocode(context.Background(), "Hanoi", 1, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit")
	assert.Less(t, time.Since(start), time.Second)
}

func TestClient_NoLimiterByDefault(t *testing.T) {
	client := NewClient(config.ProviderConfig{Timeout: time.Second})
	assert.Nil(t, client.limiter)
}

func TestUpstreamError_ReasonFallback(t *testing.T) {
	e := &UpstreamError{StatusCode: http.StatusBadRequest, Body: "plain text rejection"}
	assert.Equal(t, "plain text rejection", e.Reason())

	e = &UpstreamError{StatusCode: http.StatusBadRequest, Body: `{"reason":""}`}
	assert.Equal(t, `{"reason":""}`, e.Reason())
}

func TestParams_Encode(t *testing.T) {
	p := NewParams().
		Set("latitude", 21.5).
		Set("count", 1).
		SetList("daily", []string{"sunrise", "sunset"})
	assert.Equal(t, "count=1&daily=sunrise&daily=sunset&latitude=21.5", p.Encode())
}
