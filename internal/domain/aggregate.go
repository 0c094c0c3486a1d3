package domain

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// AggregateDaily groups 3-hour samples by calendar date and reduces each group
// to a DailyForecast. Temperatures reduce to min/max/arithmetic mean;
// description and icon reduce to the most frequent value, ties broken by
// whichever appeared first in sample order. Days come back sorted ascending
// by date.
func AggregateDaily(samples []Sample) []DailyForecast {
	byDate := make(map[string][]Sample)
	for _, s := range samples {
		date := sampleDate(s.Timestamp)
		byDate[date] = append(byDate[date], s)
	}

	days := make([]DailyForecast, 0, len(byDate))
	for date, group := range byDate {
		days = append(days, reduceDay(date, group))
	}

	// Map iteration order is random; fixed-width ISO dates compare correctly as strings.
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}

// BuildForecast aggregates raw samples into a Forecast for the given city,
// stamped with the fetch time.
func BuildForecast(city, country string, samples []Sample) Forecast {
	return Forecast{
		City:      city,
		Country:   country,
		Days:      AggregateDaily(samples),
		FetchedAt: clock.Now(),
	}
}

// NormalizeCurrent applies presentation normalization to freshly parsed
// conditions: the description is capitalized and the fetch time stamped.
func NormalizeCurrent(c CurrentConditions) CurrentConditions {
	c.Description = capitalize(c.Description)
	c.FetchedAt = clock.Now()
	return c
}

func reduceDay(date string, group []Sample) DailyForecast {
	minTemp := group[0].Temperature
	maxTemp := group[0].Temperature
	sum := 0.0
	descriptions := make([]string, len(group))
	icons := make([]string, len(group))

	for i, s := range group {
		if s.Temperature < minTemp {
			minTemp = s.Temperature
		}
		if s.Temperature > maxTemp {
			maxTemp = s.Temperature
		}
		sum += s.Temperature
		descriptions[i] = s.Description
		icons[i] = s.Icon
	}

	return DailyForecast{
		Date:        date,
		MinTemp:     minTemp,
		MaxTemp:     maxTemp,
		AvgTemp:     sum / float64(len(group)),
		Description: capitalize(mode(descriptions)),
		Icon:        mode(icons),
	}
}

// sampleDate extracts the date portion of a "YYYY-MM-DD HH:MM:SS" timestamp.
func sampleDate(ts string) string {
	if i := strings.IndexByte(ts, ' '); i >= 0 {
		return ts[:i]
	}
	return ts
}

// mode returns the most frequent value. A strictly-greater comparison over
// values in original order means ties go to the value encountered first.
func mode(values []string) string {
	if len(values) == 0 {
		return ""
	}

	counts := make(map[string]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	best := values[0]
	for _, v := range values {
		if counts[v] > counts[best] {
			best = v
		}
	}
	return best
}

// capitalize upper-cases the first rune and lower-cases the remainder.
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
