package weather

import "context"

type staticClient struct{ days []DailyForecast }

// NewStatic returns a Forecaster that always answers with days.
func NewStatic(days []DailyForecast) Forecaster {
	cp := make([]DailyForecast, len(days))
	copy(cp, days)
	return &staticClient{days: cp}
}

func (s *staticClient) Forecast(context.Context) []DailyForecast {
	out := make([]DailyForecast, len(s.days))
	copy(out, s.days)
	return out
}
