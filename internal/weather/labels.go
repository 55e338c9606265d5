package weather

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexivanou/weather-mcp/internal/model"
)

// CompassPoints lists the 8-point compass clockwise from north
var CompassPoints = [8]string{
	"Bắc", "Đông Bắc", "Đông", "Đông Nam",
	"Nam", "Tây Nam", "Tây", "Tây Bắc",
}

// CompassPoint maps a bearing in degrees to the nearest compass point.
// Halfway bearings round to even, so 22.5° is north and 67.5° is east.
func CompassPoint(degrees float64) string {
	idx := int(math.RoundToEven(degrees/45)) % len(CompassPoints)
	if idx < 0 {
		idx += len(CompassPoints)
	}
	return CompassPoints[idx]
}

// WindDirection renders a bearing as "<point> (<deg>°)", or N/A when absent
func WindDirection(deg model.Number) string {
	if !deg.Valid {
		return model.NotAvailable
	}
	return fmt.Sprintf("%s (%s°)", CompassPoint(deg.Value), deg)
}

// AQIBand is a European AQI severity band
type AQIBand int

const (
	AQIUnknown AQIBand = iota
	AQIVeryGood
	AQIGood
	AQIModerate
	AQIPoor
	AQIBad
	AQIVeryBad
)

var aqiLabels = map[AQIBand]string{
	AQIUnknown:  "Không xác định",
	AQIVeryGood: "🟢 Rất tốt (0-20)",
	AQIGood:     "🟢 Tốt (21-40)",
	AQIModerate: "🟡 Trung bình (41-60)",
	AQIPoor:     "🟠 Kém (61-80)",
	AQIBad:      "🔴 Xấu (81-100)",
	AQIVeryBad:  "🟣 Rất xấu (>100)",
}

// Label returns the display label of the band
func (b AQIBand) Label() string {
	return aqiLabels[b]
}

// BandAQI classifies a European AQI reading; absent readings are AQIUnknown
func BandAQI(aqi model.Number) AQIBand {
	if !aqi.Valid {
		return AQIUnknown
	}
	switch v := aqi.Value; {
	case v <= 20:
		return AQIVeryGood
	case v <= 40:
		return AQIGood
	case v <= 60:
		return AQIModerate
	case v <= 80:
		return AQIPoor
	case v <= 100:
		return AQIBad
	default:
		return AQIVeryBad
	}
}

// PM25Marker returns an inline severity marker for a PM2.5 concentration
func PM25Marker(pm25 model.Number) string {
	if !pm25.Valid {
		return ""
	}
	switch v := pm25.Value; {
	case v <= 12:
		return " 🟢"
	case v <= 35.4:
		return " 🟡"
	case v <= 55.4:
		return " 🟠"
	default:
		return " 🔴"
	}
}

// ShortTime cuts an ISO "YYYY-MM-DDTHH:MM" timestamp down to "HH:MM".
// Values without a 'T' separator pass through unchanged.
func ShortTime(ts string) string {
	_, clock, found := strings.Cut(ts, "T")
	if !found {
		return ts
	}
	if i := strings.IndexByte(clock, 'T'); i >= 0 {
		clock = clock[:i]
	}
	if runes := []rune(clock); len(runes) > 5 {
		return string(runes[:5])
	}
	return clock
}
