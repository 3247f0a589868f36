package weather

import "context"

// DailyForecast is one day of the dashboard weather widget.
type DailyForecast struct {
	Date    string  `json:"date"`
	MaxTemp float64 `json:"max_temp"`
	MinTemp float64 `json:"min_temp"`
	Symbol  string  `json:"symbol"`
}

// ForecastDays is how many days every successful forecast holds.
const ForecastDays = 3

// Forecaster never fails: an empty slice means no forecast is available.
type Forecaster interface {
	Forecast(ctx context.Context) []DailyForecast
}
