package weather

import (
	"fmt"
	"strings"

	"github.com/alexivanou/weather-mcp/internal/model"
)

// MaxGeocodeResults caps the candidates listed by FormatGeocodeResults
const MaxGeocodeResults = 5

const (
	unknownTimezone = "Unknown"
	ruleWidth       = 52
)

var rule = strings.Repeat("─", ruleWidth)

func orNA(s string) string {
	if s == "" {
		return model.NotAvailable
	}
	return s
}

func timezoneOf(tz string) string {
	if tz == "" {
		return unknownTimezone
	}
	return tz
}

// FormatGeocodeResults renders up to MaxGeocodeResults geocoding candidates
func FormatGeocodeResults(query string, results []model.GeoLocation) string {
	if len(results) == 0 {
		return fmt.Sprintf("Không tìm thấy địa điểm nào khớp với '%s'.", query)
	}
	if len(results) > MaxGeocodeResults {
		results = results[:MaxGeocodeResults]
	}

	lines := []string{fmt.Sprintf("Kết quả tìm kiếm cho '%s':\n", query)}
	for i, r := range results {
		location := orNA(r.Name)
		if r.AdminRegion != "" {
			location += ", " + r.AdminRegion
		}
		location += ", " + orNA(r.Country)

		lines = append(lines, fmt.Sprintf(
			"%d. %s\n"+
				"   📍 Tọa độ : lat=%.4f, lon=%.4f\n"+
				"   🏔  Độ cao  : %s m\n",
			i+1, location, r.Latitude, r.Longitude, r.Elevation,
		))
	}
	return strings.Join(lines, "\n")
}

// FormatCurrentAtCoordinates renders current conditions for a raw coordinate query
func FormatCurrentAtCoordinates(latitude, longitude float64, resp *model.CurrentWeatherResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🌤 Thời tiết hiện tại tại tọa độ (%.4f, %.4f)\n", latitude, longitude)
	writeCurrent(&b, resp)
	return b.String()
}

// FormatCurrentAtLocation renders current conditions for a geocoded place
func FormatCurrentAtLocation(loc model.GeoLocation, resp *model.CurrentWeatherResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🏙 Thời tiết tại %s\n", loc.Label())
	fmt.Fprintf(&b, "   📍 Tọa độ   : lat=%.4f, lon=%.4f\n", loc.Latitude, loc.Longitude)
	writeCurrent(&b, resp)
	return b.String()
}

func writeCurrent(b *strings.Builder, resp *model.CurrentWeatherResponse) {
	cur := resp.Current
	units := resp.CurrentUnits

	dayNight := "🌙 Ban đêm"
	if cur.Daytime() {
		dayNight = "☀️ Ban ngày"
	}

	fmt.Fprintf(b, "   🕐 Thời gian : %s (%s)\n", orNA(cur.Time), timezoneOf(resp.Timezone))
	fmt.Fprintf(b, "   %s\n\n", dayNight)
	fmt.Fprintf(b, "   🌡  Nhiệt độ   : %s%s\n", cur.Temperature, units.Get("temperature_2m", "°C"))
	fmt.Fprintf(b, "   🤔 Cảm giác   : %s%s\n", cur.ApparentTemperature, units.Get("apparent_temperature", "°C"))
	fmt.Fprintf(b, "   💧 Độ ẩm      : %s%s\n", cur.RelativeHumidity, units.Get("relative_humidity_2m", "%"))
	fmt.Fprintf(b, "   🌧  Lượng mưa  : %s%s\n", cur.Precipitation, units.Get("precipitation", "mm"))
	fmt.Fprintf(b, "   🔵 Áp suất    : %s%s\n", cur.SurfacePressure, units.Get("surface_pressure", "hPa"))
	fmt.Fprintf(b, "   💨 Tốc độ gió : %s%s\n", cur.WindSpeed, units.Get("wind_speed_10m", "km/h"))
	fmt.Fprintf(b, "   🧭 Hướng gió  : %s\n", WindDirection(cur.WindDirection))
	fmt.Fprintf(b, "   🌪  Gió giật   : %s%s\n", cur.WindGusts, units.Get("wind_gusts_10m", "km/h"))
	fmt.Fprintf(b, "   👁  Tầm nhìn   : %s %s\n", cur.Visibility, units.Get("visibility", "m"))
	fmt.Fprintf(b, "   ☁️  Tình trạng : %s\n", DescribeReading(cur.WeatherCode))
}

// FormatForecast renders one block per forecast day
func FormatForecast(latitude, longitude float64, days int, resp *model.DailyWeatherResponse) string {
	units := resp.DailyUnits
	lines := []string{fmt.Sprintf(
		"📅 Dự báo thời tiết %d ngày tại (%.4f, %.4f)\n"+
			"   Múi giờ: %s\n"+
			"%s\n",
		days, latitude, longitude, timezoneOf(resp.Timezone), rule,
	)}

	for i := 0; i < resp.Daily.Days(); i++ {
		d := resp.Daily.Day(i)
		lines = append(lines, fmt.Sprintf(
			"📆 %s\n"+
				"   ☁️  Tình trạng  : %s\n"+
				"   🌡  Nhiệt độ    : %s~%s%s  (cảm giác %s~%s%s)\n"+
				"   🌧  Mưa         : %s%s  (xác suất %s%s)\n"+
				"   💨 Gió max     : %s%s  hướng %s°\n"+
				"   🌅 Bình minh   : %s  🌇 Hoàng hôn: %s\n",
			d.Date,
			DescribeReading(d.WeatherCode),
			d.TemperatureMin, d.TemperatureMax, units.Get("temperature_2m_max", "°C"),
			d.FeelsMin, d.FeelsMax, units.Get("apparent_temperature_max", "°C"),
			d.PrecipitationSum, units.Get("precipitation_sum", "mm"),
			d.PrecipitationProbabilityMax, units.Get("precipitation_probability_max", "%"),
			d.WindSpeedMax, units.Get("wind_speed_10m_max", "km/h"), d.WindDirectionDominant,
			ShortTime(d.Sunrise), ShortTime(d.Sunset),
		))
	}
	return strings.Join(lines, "\n")
}

// FormatHistory renders one block per archived day, with a smaller field set than FormatForecast
func FormatHistory(loc model.GeoLocation, rng model.DateRange, resp *model.DailyWeatherResponse) string {
	units := resp.DailyUnits
	days := resp.Daily.Days()
	lines := []string{fmt.Sprintf(
		"📜 Thời tiết lịch sử: %s\n"+
			"   📅 Khoảng thời gian : %s → %s (%d ngày)\n"+
			"   📍 Tọa độ           : lat=%.4f, lon=%.4f\n"+
			"   🌐 Múi giờ          : %s\n"+
			"%s\n",
		loc.Label(), rng.Start, rng.End, days, loc.Latitude, loc.Longitude, timezoneOf(resp.Timezone), rule,
	)}

	for i := 0; i < days; i++ {
		d := resp.Daily.Day(i)
		lines = append(lines, fmt.Sprintf(
			"📆 %s\n"+
				"   ☁️  %s\n"+
				"   🌡  Nhiệt độ : %s~%s%s\n"+
				"   🌧  Lượng mưa: %s%s\n"+
				"   💨 Gió max  : %s%s hướng %s°\n"+
				"   🌅 %s  🌇 %s\n",
			d.Date,
			DescribeReading(d.WeatherCode),
			d.TemperatureMin, d.TemperatureMax, units.Get("temperature_2m_max", "°C"),
			d.PrecipitationSum, units.Get("precipitation_sum", "mm"),
			d.WindSpeedMax, units.Get("wind_speed_10m_max", "km/h"), d.WindDirectionDominant,
			ShortTime(d.Sunrise), ShortTime(d.Sunset),
		))
	}
	return strings.Join(lines, "\n")
}

const aqiLegend = "0-20 Rất tốt | 21-40 Tốt | 41-60 Trung bình | 61-80 Kém | 81-100 Xấu | >100 Rất xấu"

// FormatAirQuality renders pollutant concentrations and the banded European AQI
func FormatAirQuality(loc model.GeoLocation, resp *model.AirQualityResponse) string {
	cur := resp.Current
	units := resp.CurrentUnits
	const ug = "μg/m³"

	label := loc.Name
	if loc.Country != "" {
		label += ", " + loc.Country
	}

	var b strings.Builder
	fmt.Fprintf(&b, "💨 Chất lượng không khí tại %s\n", label)
	fmt.Fprintf(&b, "   📍 Tọa độ   : lat=%.4f, lon=%.4f\n", loc.Latitude, loc.Longitude)
	fmt.Fprintf(&b, "   🕐 Thời gian : %s (%s)\n\n", orNA(cur.Time), timezoneOf(resp.Timezone))
	fmt.Fprintf(&b, "   📊 AQI châu Âu : %s — %s\n\n", cur.EuropeanAQI, BandAQI(cur.EuropeanAQI).Label())
	b.WriteString("   🔬 Chỉ số chi tiết:\n")
	fmt.Fprintf(&b, "   PM2.5        : %s %s%s\n", cur.PM25, units.Get("pm2_5", ug), PM25Marker(cur.PM25))
	fmt.Fprintf(&b, "   PM10         : %s %s\n", cur.PM10, units.Get("pm10", ug))
	fmt.Fprintf(&b, "   CO (CO)      : %s %s\n", cur.CarbonMonoxide, units.Get("carbon_monoxide", ug))
	fmt.Fprintf(&b, "   NO₂          : %s %s\n", cur.NitrogenDioxide, units.Get("nitrogen_dioxide", ug))
	fmt.Fprintf(&b, "   SO₂          : %s %s\n", cur.SulphurDioxide, units.Get("sulphur_dioxide", ug))
	fmt.Fprintf(&b, "   O₃ (Ozone)   : %s %s\n", cur.Ozone, units.Get("ozone", ug))
	fmt.Fprintf(&b, "   Bụi sa mạc   : %s %s\n", cur.Dust, units.Get("dust", ug))
	fmt.Fprintf(&b, "   AOD          : %s\n\n", cur.AerosolOpticalDepth)
	fmt.Fprintf(&b, "   📖 Thang AQI châu Âu: %s\n", aqiLegend)
	return b.String()
}
