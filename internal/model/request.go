package model

// ForecastRequest represents the parameters of get_forecast
type ForecastRequest struct {
	Latitude  float64
	Longitude float64
	Days      int
}

// HistoryRequest represents the parameters of get_historical_weather
type HistoryRequest struct {
	City      string
	StartDate string
	EndDate   string
}

// DateRange is an inclusive YYYY-MM-DD range for the archive endpoint
type DateRange struct {
	Start string
	End   string
}
