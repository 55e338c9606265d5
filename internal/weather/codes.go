package weather

import (
	"fmt"

	"github.com/alexivanou/weather-mcp/internal/model"
)

// weatherCodes maps WMO weather interpretation codes to their descriptions
var weatherCodes = map[int]string{
	0:  "Trời quang (Clear sky)",
	1:  "Phần lớn quang (Mainly clear)",
	2:  "Có mây rải rác (Partly cloudy)",
	3:  "Nhiều mây (Overcast)",
	45: "Sương mù (Fog)",
	48: "Sương mù đóng băng (Depositing rime fog)",
	51: "Mưa phùn nhẹ (Light drizzle)",
	53: "Mưa phùn vừa (Moderate drizzle)",
	55: "Mưa phùn dày (Dense drizzle)",
	61: "Mưa nhẹ (Slight rain)",
	63: "Mưa vừa (Moderate rain)",
	65: "Mưa to (Heavy rain)",
	71: "Tuyết nhẹ (Slight snow)",
	73: "Tuyết vừa (Moderate snow)",
	75: "Tuyết dày (Heavy snow)",
	77: "Hạt tuyết nhỏ (Snow grains)",
	80: "Mưa rào nhẹ (Slight rain showers)",
	81: "Mưa rào vừa (Moderate rain showers)",
	82: "Mưa rào mạnh (Violent rain showers)",
	85: "Mưa tuyết nhẹ (Slight snow showers)",
	86: "Mưa tuyết nặng (Heavy snow showers)",
	95: "Dông (Thunderstorm)",
	96: "Dông kèm mưa đá nhẹ (Thunderstorm with slight hail)",
	99: "Dông kèm mưa đá to (Thunderstorm with heavy hail)",
}

// UnknownCode is used when the provider omits the weather code
const UnknownCode = -1

// DescribeCode returns the description of a WMO weather code.
// Codes outside the table yield a fallback that embeds the code.
func DescribeCode(code int) string {
	if desc, ok := weatherCodes[code]; ok {
		return desc
	}
	return fmt.Sprintf("Không xác định (mã %d)", code)
}

// DescribeReading describes a weather code reading. Absent readings use
// UnknownCode; fractional codes are never looked up.
func DescribeReading(n model.Number) string {
	if !n.Valid {
		return DescribeCode(UnknownCode)
	}
	if code, ok := n.Integer(); ok {
		return DescribeCode(code)
	}
	return fmt.Sprintf("Không xác định (mã %s)", n)
}
