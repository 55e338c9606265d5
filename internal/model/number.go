package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// NotAvailable is rendered in place of any reading the provider did not supply
const NotAvailable = "N/A"

// Number is an optional numeric reading from the provider.
// Anything other than a JSON number (null, strings, objects) decodes as absent.
type Number struct {
	Value float64
	Valid bool
	raw   string
}

// Some returns a present reading
func Some(v float64) Number {
	return Number{Value: v, Valid: true}
}

// UnmarshalJSON implements json.Unmarshaler
func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] == '"' || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(trimmed, &num); err != nil {
		return nil
	}
	v, err := num.Float64()
	if err != nil {
		return nil
	}
	*n = Number{Value: v, Valid: true, raw: num.String()}
	return nil
}

// MarshalJSON implements json.Marshaler
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return []byte(n.String()), nil
}

// String renders the reading the way the provider sent it, or N/A
func (n Number) String() string {
	if !n.Valid {
		return NotAvailable
	}
	if n.raw != "" {
		return n.raw
	}
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

// Integer returns the reading as an int. ok is false when the reading
// is absent or has a fractional part.
func (n Number) Integer() (v int, ok bool) {
	if !n.Valid || n.Value != math.Trunc(n.Value) || math.Abs(n.Value) > math.MaxInt32 {
		return 0, false
	}
	return int(n.Value), true
}

// At returns series[i], or an absent reading when the series is too short
func At(series []Number, i int) Number {
	if i < 0 || i >= len(series) {
		return Number{}
	}
	return series[i]
}

// TextAt returns series[i], or N/A when the series is too short or the entry is null
func TextAt(series []*string, i int) string {
	if i < 0 || i >= len(series) || series[i] == nil {
		return NotAvailable
	}
	return *series[i]
}
