package domain

import "fmt"

// MaxPeriods is how many forecast periods a forecast lookup reports.
const MaxPeriods = 5

// ForecastURL is the gridpoint forecast resource named by a points response.
// It is the only value carried from the first forecast request to the second.
type ForecastURL string

// ForecastPeriod is one named window of a gridpoint forecast. All fields are
// required upstream.
type ForecastPeriod struct {
	Name             string
	Temperature      string
	TemperatureUnit  string
	WindSpeed        string
	WindDirection    string
	DetailedForecast string
}

// ForecastURLOf reads properties.forecast from a points response.
func ForecastURLOf(points Document) (ForecastURL, error) {
	props, err := object(points["properties"], "properties")
	if err != nil {
		return "", err
	}
	v, path, err := field(props, "properties", "forecast")
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", &ShapeError{Path: path, Problem: fmt.Sprintf("expected string, got %T", v)}
	}
	return ForecastURL(s), nil
}

// ForecastPeriods reads up to limit entries of properties.periods, in order.
// Entries past limit are not inspected.
func ForecastPeriods(forecast Document, limit int) ([]ForecastPeriod, error) {
	props, err := object(forecast["properties"], "properties")
	if err != nil {
		return nil, err
	}
	v, path, err := field(props, "properties", "periods")
	if err != nil {
		return nil, err
	}
	items, ok := v.([]any)
	if !ok {
		return nil, &ShapeError{Path: path, Problem: fmt.Sprintf("expected array, got %T", v)}
	}

	if len(items) > limit {
		items = items[:limit]
	}
	periods := make([]ForecastPeriod, 0, len(items))
	for i, item := range items {
		p, err := forecastPeriodOf(item, index(path, i))
		if err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}
	return periods, nil
}

func forecastPeriodOf(v any, path string) (ForecastPeriod, error) {
	obj, err := object(v, path)
	if err != nil {
		return ForecastPeriod{}, err
	}

	var p ForecastPeriod
	for _, f := range []struct {
		key string
		dst *string
	}{
		{"name", &p.Name},
		{"temperature", &p.Temperature},
		{"temperatureUnit", &p.TemperatureUnit},
		{"windSpeed", &p.WindSpeed},
		{"windDirection", &p.WindDirection},
		{"detailedForecast", &p.DetailedForecast},
	} {
		s, err := requiredText(obj, path, f.key)
		if err != nil {
			return ForecastPeriod{}, err
		}
		*f.dst = s
	}
	return p, nil
}
