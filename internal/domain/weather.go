package domain

import "time"

// CurrentConditions is a normalized snapshot of present weather for one city.
type CurrentConditions struct {
	City        string
	Country     string  // ISO 3166 alpha-2, e.g. "GB"
	Temperature float64 // °C
	FeelsLike   float64 // °C
	Humidity    int     // percent
	Description string  // capitalized, e.g. "Light rain"
	Icon        string  // OpenWeatherMap icon code, e.g. "10d"
	WindSpeed   float64 // m/s
	Pressure    int     // hPa
	FetchedAt   time.Time
}

// Sample is one raw 3-hour forecast reading.
type Sample struct {
	Timestamp   string // "YYYY-MM-DD HH:MM:SS"
	Temperature float64
	Description string
	Icon        string
}

// DailyForecast summarizes every sample that falls on one calendar date.
type DailyForecast struct {
	Date        string // ISO date "YYYY-MM-DD"
	MinTemp     float64
	MaxTemp     float64
	AvgTemp     float64
	Description string // most frequent across the day's samples, capitalized
	Icon        string // most frequent across the day's samples
}

// Forecast is the aggregated multi-day outlook for one city.
type Forecast struct {
	City      string
	Country   string
	Days      []DailyForecast // sorted ascending by Date
	FetchedAt time.Time
}
