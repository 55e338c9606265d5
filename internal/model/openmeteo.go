package model

import "strings"

// Units maps a field name to the unit string the provider reported for it
type Units map[string]string

// Get returns the unit for field, or fallback when the provider omitted it
func (u Units) Get(field, fallback string) string {
	if v, ok := u[field]; ok && v != "" {
		return v
	}
	return fallback
}

// GeocodingResponse is the body of the geocoding search endpoint
type GeocodingResponse struct {
	Results []GeoLocation `json:"results"`
}

// GeoLocation represents one geocoding match
type GeoLocation struct {
	Name        string  `json:"name"`
	AdminRegion string  `json:"admin1"`
	Country     string  `json:"country"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Elevation   Number  `json:"elevation"`
	Timezone    string  `json:"timezone"`
}

// Label joins name, region and country, skipping empty parts
func (l GeoLocation) Label() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{l.Name, l.AdminRegion, l.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// Coordinate represents geographic coordinates
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// CurrentConditions is the "current" block of the forecast endpoint
type CurrentConditions struct {
	Time                string `json:"time"`
	Temperature         Number `json:"temperature_2m"`
	RelativeHumidity    Number `json:"relative_humidity_2m"`
	ApparentTemperature Number `json:"apparent_temperature"`
	IsDay               Number `json:"is_day"`
	Precipitation       Number `json:"precipitation"`
	WeatherCode         Number `json:"weather_code"`
	SurfacePressure     Number `json:"surface_pressure"`
	WindSpeed           Number `json:"wind_speed_10m"`
	WindDirection       Number `json:"wind_direction_10m"`
	WindGusts           Number `json:"wind_gusts_10m"`
	Visibility          Number `json:"visibility"`
}

// Daytime reports the is_day flag; an absent flag counts as daytime
func (c CurrentConditions) Daytime() bool {
	return !c.IsDay.Valid || c.IsDay.Value != 0
}

// CurrentWeatherResponse is the forecast endpoint body for current conditions
type CurrentWeatherResponse struct {
	Latitude     float64           `json:"latitude"`
	Longitude    float64           `json:"longitude"`
	Timezone     string            `json:"timezone"`
	Current      CurrentConditions `json:"current"`
	CurrentUnits Units             `json:"current_units"`
}

// DailySeries holds parallel per-day arrays indexed by position in Time.
// Any array may be shorter than Time; missing positions are absent readings.
type DailySeries struct {
	Time                        []string  `json:"time"`
	WeatherCode                 []Number  `json:"weather_code"`
	TemperatureMax              []Number  `json:"temperature_2m_max"`
	TemperatureMin              []Number  `json:"temperature_2m_min"`
	ApparentTemperatureMax      []Number  `json:"apparent_temperature_max"`
	ApparentTemperatureMin      []Number  `json:"apparent_temperature_min"`
	PrecipitationSum            []Number  `json:"precipitation_sum"`
	PrecipitationProbabilityMax []Number  `json:"precipitation_probability_max"`
	WindSpeedMax                []Number  `json:"wind_speed_10m_max"`
	WindDirectionDominant       []Number  `json:"wind_direction_10m_dominant"`
	Sunrise                     []*string `json:"sunrise"`
	Sunset                      []*string `json:"sunset"`
}

// Days returns the number of days in the series
func (d DailySeries) Days() int {
	return len(d.Time)
}

// Day returns the row at index i using the parallel-array rule
func (d DailySeries) Day(i int) DailyForecastEntry {
	return DailyForecastEntry{
		Date:                        d.Time[i],
		WeatherCode:                 At(d.WeatherCode, i),
		TemperatureMax:              At(d.TemperatureMax, i),
		TemperatureMin:              At(d.TemperatureMin, i),
		FeelsMax:                    At(d.ApparentTemperatureMax, i),
		FeelsMin:                    At(d.ApparentTemperatureMin, i),
		PrecipitationSum:            At(d.PrecipitationSum, i),
		PrecipitationProbabilityMax: At(d.PrecipitationProbabilityMax, i),
		WindSpeedMax:                At(d.WindSpeedMax, i),
		WindDirectionDominant:       At(d.WindDirectionDominant, i),
		Sunrise:                     TextAt(d.Sunrise, i),
		Sunset:                      TextAt(d.Sunset, i),
	}
}

// DailyForecastEntry is one calendar day of a forecast or archive response
type DailyForecastEntry struct {
	Date                        string
	WeatherCode                 Number
	TemperatureMax              Number
	TemperatureMin              Number
	FeelsMax                    Number
	FeelsMin                    Number
	PrecipitationSum            Number
	PrecipitationProbabilityMax Number
	WindSpeedMax                Number
	WindDirectionDominant       Number
	Sunrise                     string
	Sunset                      string
}

// DailyWeatherResponse is the forecast/archive endpoint body for daily aggregates
type DailyWeatherResponse struct {
	Latitude   float64     `json:"latitude"`
	Longitude  float64     `json:"longitude"`
	Timezone   string      `json:"timezone"`
	Daily      DailySeries `json:"daily"`
	DailyUnits Units       `json:"daily_units"`
}

// AirQualitySample is the "current" block of the air-quality endpoint
type AirQualitySample struct {
	Time                string `json:"time"`
	PM10                Number `json:"pm10"`
	PM25                Number `json:"pm2_5"`
	CarbonMonoxide      Number `json:"carbon_monoxide"`
	NitrogenDioxide     Number `json:"nitrogen_dioxide"`
	SulphurDioxide      Number `json:"sulphur_dioxide"`
	Ozone               Number `json:"ozone"`
	AerosolOpticalDepth Number `json:"aerosol_optical_depth"`
	Dust                Number `json:"dust"`
	EuropeanAQI         Number `json:"european_aqi"`
}

// AirQualityResponse is the air-quality endpoint body
type AirQualityResponse struct {
	Latitude     float64          `json:"latitude"`
	Longitude    float64          `json:"longitude"`
	Timezone     string           `json:"timezone"`
	Current      AirQualitySample `json:"current"`
	CurrentUnits Units            `json:"current_units"`
}
