package mcpserver

import (
	"github.com/alexivanou/weather-mcp/internal/weather"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Tool names exposed to the host
const (
	ToolGeocodeCity       = "geocode_city"
	ToolCurrentWeather    = "get_current_weather"
	ToolForecast          = "get_forecast"
	ToolWeatherByCity     = "get_weather_by_city"
	ToolAirQuality        = "get_air_quality"
	ToolHistoricalWeather = "get_historical_weather"
)

const (
	argCityName  = "city_name"
	argLatitude  = "latitude"
	argLongitude = "longitude"
	argDays      = "days"
	argStartDate = "start_date"
	argEndDate   = "end_date"
)

func cityNameArg(example string) mcp.ToolOption {
	return mcp.WithString(argCityName,
		mcp.Required(),
		mcp.Description("Tên thành phố (ví dụ: "+example+")"),
	)
}

func coordinateArgs() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithNumber(argLatitude,
			mcp.Required(),
			mcp.Description("Vĩ độ (ví dụ: 21.0285 cho Hà Nội)"),
		),
		mcp.WithNumber(argLongitude,
			mcp.Required(),
			mcp.Description("Kinh độ (ví dụ: 105.8542 cho Hà Nội)"),
		),
	}
}

// Tools returns every tool definition bound to its handler
func (h *Handler) Tools() []server.ServerTool {
	forecastOpts := append([]mcp.ToolOption{
		mcp.WithDescription("Lấy dự báo thời tiết theo ngày trong tối đa 7 ngày tới: nhiệt độ max/min, lượng mưa, xác suất mưa, tốc độ gió max, tình trạng trời."),
	}, coordinateArgs()...)
	forecastOpts = append(forecastOpts, mcp.WithNumber(argDays,
		mcp.Description("Số ngày dự báo (1-7, mặc định: 7)"),
		mcp.DefaultNumber(weather.DefaultForecastDays),
	))

	currentOpts := append([]mcp.ToolOption{
		mcp.WithDescription("Lấy thông tin thời tiết hiện tại tại vị trí cho trước: nhiệt độ, cảm giác thực, độ ẩm, gió, áp suất, tầm nhìn, tình trạng trời."),
	}, coordinateArgs()...)

	return []server.ServerTool{
		{
			Tool: mcp.NewTool(ToolGeocodeCity,
				mcp.WithDescription("Tìm tọa độ địa lý (latitude, longitude) của một thành phố. Trả về tối đa 5 địa điểm khớp."),
				cityNameArg(`"Hanoi", "Ho Chi Minh", "Da Nang"`),
			),
			Handler: h.GeocodeCity,
		},
		{
			Tool:    mcp.NewTool(ToolCurrentWeather, currentOpts...),
			Handler: h.CurrentWeather,
		},
		{
			Tool:    mcp.NewTool(ToolForecast, forecastOpts...),
			Handler: h.Forecast,
		},
		{
			Tool: mcp.NewTool(ToolWeatherByCity,
				mcp.WithDescription("Lấy thời tiết hiện tại bằng tên thành phố. Tự động geocode rồi lấy thời tiết trong một lần gọi."),
				cityNameArg(`"Hanoi", "Ho Chi Minh", "Da Nang", "Tokyo"`),
			),
			Handler: h.WeatherByCity,
		},
		{
			Tool: mcp.NewTool(ToolAirQuality,
				mcp.WithDescription("Lấy chỉ số chất lượng không khí hiện tại của một thành phố: PM2.5, PM10, CO, NO₂, O₃, SO₂ và chỉ số AQI châu Âu."),
				cityNameArg(`"Hanoi", "Ho Chi Minh City", "Bangkok"`),
			),
			Handler: h.AirQuality,
		},
		{
			Tool: mcp.NewTool(ToolHistoricalWeather,
				mcp.WithDescription("Lấy dữ liệu thời tiết lịch sử (từ năm 1940) của một thành phố trong khoảng ngày cho trước, bao gồm cả hai đầu."),
				cityNameArg(`"Hanoi", "Ho Chi Minh City"`),
				mcp.WithString(argStartDate,
					mcp.Required(),
					mcp.Description("Ngày bắt đầu định dạng YYYY-MM-DD (ví dụ: 2024-01-01)"),
				),
				mcp.WithString(argEndDate,
					mcp.Required(),
					mcp.Description("Ngày kết thúc định dạng YYYY-MM-DD (ví dụ: 2024-01-07). Nên cách start_date tối đa 31 ngày."),
				),
			),
			Handler: h.HistoricalWeather,
		},
	}
}
