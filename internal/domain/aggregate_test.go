package domain

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(ts string, temp float64, desc, icon string) Sample {
	return Sample{Timestamp: ts, Temperature: temp, Description: desc, Icon: icon}
}

func TestAggregateDaily(t *testing.T) {
	t.Run("groups samples by calendar date", func(t *testing.T) {
		samples := []Sample{
			sample("2024-05-01 09:00:00", 12.0, "clear sky", "01d"),
			sample("2024-05-01 12:00:00", 15.0, "clear sky", "01d"),
			sample("2024-05-02 09:00:00", 10.0, "light rain", "10d"),
		}

		days := AggregateDaily(samples)

		require.Len(t, days, 2)
		assert.Equal(t, "2024-05-01", days[0].Date)
		assert.Equal(t, "2024-05-02", days[1].Date)
	})

	t.Run("min max and arithmetic mean per day", func(t *testing.T) {
		samples := []Sample{
			sample("2024-05-01 06:00:00", 10.0, "clear sky", "01d"),
			sample("2024-05-01 12:00:00", 30.0, "clear sky", "01d"),
			sample("2024-05-01 18:00:00", 20.0, "clear sky", "01d"),
		}

		days := AggregateDaily(samples)

		require.Len(t, days, 1)
		assert.Equal(t, 10.0, days[0].MinTemp)
		assert.Equal(t, 30.0, days[0].MaxTemp)
		assert.Equal(t, 20.0, days[0].AvgTemp)
	})

	t.Run("single sample day collapses to one reading", func(t *testing.T) {
		days := AggregateDaily([]Sample{
			sample("2024-05-05 21:00:00", 7.3, "overcast clouds", "04n"),
		})

		require.Len(t, days, 1)
		assert.Equal(t, 7.3, days[0].MinTemp)
		assert.Equal(t, 7.3, days[0].MaxTemp)
		assert.Equal(t, 7.3, days[0].AvgTemp)
	})

	t.Run("description is the most frequent value, capitalized", func(t *testing.T) {
		samples := []Sample{
			sample("2024-05-01 09:00:00", 12.0, "cloudy", "03d"),
			sample("2024-05-01 12:00:00", 13.0, "rainy", "10d"),
			sample("2024-05-01 15:00:00", 14.0, "cloudy", "03d"),
		}

		days := AggregateDaily(samples)

		require.Len(t, days, 1)
		assert.Equal(t, "Cloudy", days[0].Description)
		assert.Equal(t, "03d", days[0].Icon)
	})

	t.Run("frequency tie goes to first encountered", func(t *testing.T) {
		samples := []Sample{
			sample("2024-05-01 09:00:00", 12.0, "cloudy", "03d"),
			sample("2024-05-01 12:00:00", 13.0, "rainy", "10d"),
		}

		days := AggregateDaily(samples)

		require.Len(t, days, 1)
		assert.Equal(t, "Cloudy", days[0].Description)
		assert.Equal(t, "03d", days[0].Icon)
	})

	t.Run("days sorted ascending regardless of input order", func(t *testing.T) {
		samples := []Sample{
			sample("2024-05-03 12:00:00", 18.0, "clear sky", "01d"),
			sample("2024-05-01 12:00:00", 14.0, "clear sky", "01d"),
			sample("2024-05-02 12:00:00", 16.0, "clear sky", "01d"),
		}

		days := AggregateDaily(samples)

		require.Len(t, days, 3)
		assert.Equal(t, "2024-05-01", days[0].Date)
		assert.Equal(t, "2024-05-02", days[1].Date)
		assert.Equal(t, "2024-05-03", days[2].Date)
	})

	t.Run("min <= avg <= max holds for every day", func(t *testing.T) {
		samples := []Sample{
			sample("2024-05-01 00:00:00", -3.2, "snow", "13d"),
			sample("2024-05-01 12:00:00", 4.8, "snow", "13d"),
			sample("2024-05-02 00:00:00", 1.1, "mist", "50d"),
			sample("2024-05-02 12:00:00", 1.1, "mist", "50d"),
			sample("2024-05-03 12:00:00", 9.9, "clear sky", "01d"),
		}

		for _, day := range AggregateDaily(samples) {
			assert.LessOrEqual(t, day.MinTemp, day.AvgTemp, "day %s", day.Date)
			assert.LessOrEqual(t, day.AvgTemp, day.MaxTemp, "day %s", day.Date)
		}
	})

	t.Run("no samples", func(t *testing.T) {
		assert.Empty(t, AggregateDaily(nil))
	})
}

func TestBuildForecast(t *testing.T) {
	fixedTime := time.Date(2024, 5, 1, 12, 30, 45, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(fixedTime))
	defer SetClock(nil)

	samples := []Sample{
		sample("2024-05-01 09:00:00", 12.0, "clear sky", "01d"),
		sample("2024-05-02 09:00:00", 15.0, "few clouds", "02d"),
	}

	fc := BuildForecast("London", "GB", samples)

	assert.Equal(t, "London", fc.City)
	assert.Equal(t, "GB", fc.Country)
	assert.Equal(t, fixedTime, fc.FetchedAt)
	require.Len(t, fc.Days, 2)
	assert.Equal(t, "Clear sky", fc.Days[0].Description)
}

func TestNormalizeCurrent(t *testing.T) {
	fixedTime := time.Date(2024, 5, 1, 12, 30, 45, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(fixedTime))
	defer SetClock(nil)

	t.Run("capitalizes lower-case descriptions", func(t *testing.T) {
		c := NormalizeCurrent(CurrentConditions{City: "Paris", Description: "light rain"})

		assert.Equal(t, "Light rain", c.Description)
		assert.Equal(t, fixedTime, c.FetchedAt)
	})

	t.Run("lowers shouting descriptions", func(t *testing.T) {
		c := NormalizeCurrent(CurrentConditions{Description: "LIGHT RAIN"})
		assert.Equal(t, "Light rain", c.Description)
	})

	t.Run("empty description stays empty", func(t *testing.T) {
		c := NormalizeCurrent(CurrentConditions{})
		assert.Empty(t, c.Description)
	})
}

func TestSetClock(t *testing.T) {
	t.Run("set custom clock", func(t *testing.T) {
		fixedTime := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		SetClock(clockwork.NewFakeClockAt(fixedTime))

		assert.Equal(t, fixedTime, clock.Now())

		SetClock(nil) // reset
	})

	t.Run("reset to real clock", func(t *testing.T) {
		SetClock(clockwork.NewFakeClockAt(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
		SetClock(nil)

		// Real clock should return current time (within a small window)
		now := clock.Now()
		assert.True(t, time.Since(now) < time.Second)
	})
}
