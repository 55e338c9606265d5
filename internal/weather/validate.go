package weather

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// ValidationError is a user-facing input problem detected before any network call
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateCoordinates checks latitude first, then longitude, and reports only the first violation
func ValidateCoordinates(latitude, longitude float64) error {
	if !(latitude >= -90 && latitude <= 90) {
		return &ValidationError{
			Field: "latitude",
			Message: fmt.Sprintf(
				"❌ Vĩ độ (latitude) không hợp lệ: %s\n"+
					"   Vĩ độ phải nằm trong khoảng -90 đến 90.\n"+
					"   Ví dụ Hà Nội: latitude=21.0285 (không phải 210285 hay 21285)\n"+
					"   Gợi ý: Dùng geocode_city để lấy tọa độ chính xác.",
				formatFloat(latitude),
			),
		}
	}
	if !(longitude >= -180 && longitude <= 180) {
		return &ValidationError{
			Field: "longitude",
			Message: fmt.Sprintf(
				"❌ Kinh độ (longitude) không hợp lệ: %s\n"+
					"   Kinh độ phải nằm trong khoảng -180 đến 180.\n"+
					"   Ví dụ Hà Nội: longitude=105.8542\n"+
					"   Gợi ý: Dùng geocode_city để lấy tọa độ chính xác.",
				formatFloat(longitude),
			),
		}
	}
	return nil
}

var datePattern = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)

// ValidDate reports whether s is a fixed-width YYYY-MM-DD string
func ValidDate(s string) bool {
	return datePattern.MatchString(s)
}

// ValidateDateRange checks both dates' format and that start is not after end.
// The format is fixed-width and zero-padded, so string order is date order.
func ValidateDateRange(start, end string) error {
	if !ValidDate(start) {
		return &ValidationError{
			Field:   "start_date",
			Message: fmt.Sprintf("❌ Định dạng start_date không hợp lệ: '%s'. Dùng định dạng YYYY-MM-DD, ví dụ: 2024-01-15", start),
		}
	}
	if !ValidDate(end) {
		return &ValidationError{
			Field:   "end_date",
			Message: fmt.Sprintf("❌ Định dạng end_date không hợp lệ: '%s'. Dùng định dạng YYYY-MM-DD, ví dụ: 2024-01-31", end),
		}
	}
	if start > end {
		return &ValidationError{
			Field:   "start_date",
			Message: fmt.Sprintf("❌ start_date (%s) phải trước end_date (%s).", start, end),
		}
	}
	return nil
}

// Forecast day bounds
const (
	MinForecastDays     = 1
	MaxForecastDays     = 7
	DefaultForecastDays = 7
)

// ClampDays forces days into [MinForecastDays, MaxForecastDays]
func ClampDays(days int) int {
	if days < MinForecastDays {
		return MinForecastDays
	}
	if days > MaxForecastDays {
		return MaxForecastDays
	}
	return days
}

// ClampDaysArg clamps a raw numeric argument before converting it to int,
// so huge values land on MaxForecastDays instead of overflowing.
// NaN yields DefaultForecastDays.
func ClampDaysArg(days float64) int {
	switch {
	case math.IsNaN(days):
		return DefaultForecastDays
	case days < MinForecastDays:
		return MinForecastDays
	case days > MaxForecastDays:
		return MaxForecastDays
	}
	return ClampDays(int(days))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
