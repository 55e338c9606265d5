package weather

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/alexivanou/weather-mcp/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode[T any](t *testing.T, body string) *T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(body), &v))
	return &v
}

func TestFormatGeocodeResults(t *testing.T) {
	t.Run("no results", func(t *testing.T) {
		out := FormatGeocodeResults("Xyzzy", nil)
		assert.Equal(t, "Không tìm thấy địa điểm nào khớp với 'Xyzzy'.", out)
	})

	t.Run("caps at five", func(t *testing.T) {
		var results []model.GeoLocation
		for i := 0; i < 7; i++ {
			results = append(results, model.GeoLocation{Name: "Springfield", Country: "United States"})
		}
		out := FormatGeocodeResults("Springfield", results)
		assert.Contains(t, out, "5. Springfield")
		assert.NotContains(t, out, "6. Springfield")
	})

	t.Run("formats coordinates and elevation", func(t *testing.T) {
		results := []model.GeoLocation{
			{Name: "Hà Nội", AdminRegion: "Hà Nội", Country: "Việt Nam", Latitude: 21.0245, Longitude: 105.84117, Elevation: model.Some(14)},
			{Name: "Hanoi", Latitude: 1, Longitude: 2},
		}
		out := FormatGeocodeResults("Hanoi", results)
		assert.True(t, strings.HasPrefix(out, "Kết quả tìm kiếm cho 'Hanoi':\n"))
		assert.Contains(t, out, "1. Hà Nội, Hà Nội, Việt Nam")
		assert.Contains(t, out, "lat=21.0245, lon=105.8412")
		assert.Contains(t, out, "Độ cao  : 14 m")
		assert.Contains(t, out, "2. Hanoi, N/A")
		assert.Contains(t, out, "Độ cao  : N/A m")
	})
}

func TestFormatCurrentAtCoordinates(t *testing.T) {
	resp := decode[model.CurrentWeatherResponse](t, `{
		"timezone": "Asia/Bangkok",
		"current_units": {"temperature_2m": "°C", "wind_speed_10m": "km/h", "visibility": "m"},
		"current": {
			"time": "2024-01-05T14:00",
			"temperature_2m": 24.3,
			"apparent_temperature": 25.1,
			"relative_humidity_2m": 70,
			"is_day": 0,
			"weather_code": 3,
			"surface_pressure": 1012.4,
			"wind_speed_10m": 8.6,
			"wind_direction_10m": 90,
			"wind_gusts_10m": 19.1,
			"visibility": 24140
		}
	}`)

	out := FormatCurrentAtCoordinates(21.0285, 105.8542, resp)

	assert.Contains(t, out, "(21.0285, 105.8542)")
	assert.Contains(t, out, "2024-01-05T14:00 (Asia/Bangkok)")
	assert.Contains(t, out, "🌙 Ban đêm")
	assert.Contains(t, out, "Nhiệt độ   : 24.3°C")
	assert.Contains(t, out, "Độ ẩm      : 70%")
	assert.Contains(t, out, "Lượng mưa  : N/Amm")
	assert.Contains(t, out, "Hướng gió  : Đông (90°)")
	assert.Contains(t, out, "Tầm nhìn   : 24140 m")
	assert.Contains(t, out, "Nhiều mây (Overcast)")
}

func TestFormatCurrentAtLocation_MissingEverything(t *testing.T) {
	resp := decode[model.CurrentWeatherResponse](t, `{}`)
	loc := model.GeoLocation{Name: "Đà Nẵng", Country: "Việt Nam", Latitude: 16.0678, Longitude: 108.2208}

	out := FormatCurrentAtLocation(loc, resp)

	assert.Contains(t, out, "🏙 Thời tiết tại Đà Nẵng, Việt Nam")
	assert.Contains(t, out, "lat=16.0678, lon=108.2208")
	assert.Contains(t, out, "N/A (Unknown)")
	assert.Contains(t, out, "☀️ Ban ngày")
	assert.Contains(t, out, "Hướng gió  : N/A")
	assert.Contains(t, out, "Không xác định (mã -1)")
}

const sevenDays = `["2024-01-01","2024-01-02","2024-01-03","2024-01-04","2024-01-05","2024-01-06","2024-01-07"]`

func TestFormatForecast_ShortArrays(t *testing.T) {
	resp := decode[model.DailyWeatherResponse](t, `{
		"timezone": "Asia/Bangkok",
		"daily_units": {"temperature_2m_max": "°C", "wind_speed_10m_max": "km/h"},
		"daily": {
			"time": `+sevenDays+`,
			"weather_code": [0, 1, 2, 3, 45, 61, 95],
			"temperature_2m_max": [30, 31, 32, 33, 34, 35, 36],
			"temperature_2m_min": [20, 21, 22, 23, 24, 25, 26],
			"wind_speed_10m_max": [10.1, 11.2, 12.3, 13.4, 14.5],
			"sunrise": ["2024-01-01T06:34", "2024-01-02T06:35"],
			"sunset": ["17:40"]
		}
	}`)

	out := FormatForecast(21.0285, 105.8542, 7, resp)
	blocks := strings.Split(out, "📆 ")
	require.Len(t, blocks, 8)

	assert.Contains(t, blocks[0], "Dự báo thời tiết 7 ngày tại (21.0285, 105.8542)")
	assert.Contains(t, blocks[0], "Múi giờ: Asia/Bangkok")
	assert.Contains(t, blocks[0], strings.Repeat("─", 52))

	assert.Contains(t, blocks[1], "2024-01-01")
	assert.Contains(t, blocks[1], "Nhiệt độ    : 20~30°C")
	assert.Contains(t, blocks[1], "Gió max     : 10.1km/h")
	assert.Contains(t, blocks[1], "Bình minh   : 06:34")
	assert.Contains(t, blocks[1], "Hoàng hôn: 17:40")

	assert.Contains(t, blocks[5], "Gió max     : 14.5km/h")
	assert.Contains(t, blocks[6], "Gió max     : N/Akm/h")
	assert.Contains(t, blocks[7], "Gió max     : N/Akm/h")
	assert.Contains(t, blocks[7], "Bình minh   : N/A")
	assert.Contains(t, blocks[7], "Dông (Thunderstorm)")
	assert.Contains(t, blocks[7], "cảm giác N/A~N/A°C")
}

func TestFormatHistory(t *testing.T) {
	resp := decode[model.DailyWeatherResponse](t, `{
		"timezone": "Asia/Bangkok",
		"daily": {
			"time": ["2024-01-01", "2024-01-02"],
			"weather_code": [61],
			"temperature_2m_max": [19.5, 20.1],
			"temperature_2m_min": [14.2, 15.0],
			"precipitation_sum": [3.2, 0.0],
			"wind_speed_10m_max": [12.0, 9.4],
			"wind_direction_10m_dominant": [45, 90],
			"sunrise": ["2024-01-01T06:34", "2024-01-02T06:35"],
			"sunset": ["2024-01-01T17:30", "2024-01-02T17:31"]
		}
	}`)
	loc := model.GeoLocation{Name: "Hanoi", AdminRegion: "Hanoi", Country: "Vietnam", Latitude: 21.0245, Longitude: 105.8412}

	out := FormatHistory(loc, model.DateRange{Start: "2024-01-01", End: "2024-01-02"}, resp)

	assert.Contains(t, out, "Thời tiết lịch sử: Hanoi, Hanoi, Vietnam")
	assert.Contains(t, out, "2024-01-01 → 2024-01-02 (2 ngày)")
	assert.Contains(t, out, "Múi giờ          : Asia/Bangkok")
	assert.Contains(t, out, "Nhiệt độ : 14.2~19.5°C")
	assert.Contains(t, out, "Lượng mưa: 0.0mm")
	assert.Contains(t, out, "hướng 90°")
	assert.Contains(t, out, "🌅 06:35  🌇 17:31")
	assert.Contains(t, out, "Mưa nhẹ (Slight rain)")
	assert.Contains(t, out, "Không xác định (mã -1)")
	assert.NotContains(t, out, "cảm giác")
	assert.NotContains(t, out, "xác suất")
}

func TestFormatAirQuality(t *testing.T) {
	resp := decode[model.AirQualityResponse](t, `{
		"timezone": "Asia/Bangkok",
		"current_units": {"pm2_5": "μg/m³"},
		"current": {
			"time": "2024-01-05T14:00",
			"pm2_5": 48.7,
			"pm10": 61.2,
			"carbon_monoxide": 820,
			"ozone": null,
			"european_aqi": 72
		}
	}`)
	loc := model.GeoLocation{Name: "Hanoi", AdminRegion: "Hanoi", Country: "Vietnam", Latitude: 21.0245, Longitude: 105.8412}

	out := FormatAirQuality(loc, resp)

	assert.Contains(t, out, "Chất lượng không khí tại Hanoi, Vietnam\n")
	assert.Contains(t, out, "AQI châu Âu : 72 — 🟠 Kém (61-80)")
	assert.Contains(t, out, "PM2.5        : 48.7 μg/m³ 🟠")
	assert.Contains(t, out, "O₃ (Ozone)   : N/A μg/m³")
	assert.Contains(t, out, "AOD          : N/A")
	assert.Contains(t, out, aqiLegend)
}

func TestFormatAirQuality_NonNumericAQI(t *testing.T) {
	resp := decode[model.AirQualityResponse](t, `{"current": {"european_aqi": "n/a"}}`)
	out := FormatAirQuality(model.GeoLocation{Name: "Nowhere"}, resp)

	assert.Contains(t, out, "tại Nowhere\n")
	assert.Contains(t, out, "AQI châu Âu : N/A — Không xác định")
}
