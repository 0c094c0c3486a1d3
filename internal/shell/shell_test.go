package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/wxterm/internal/domain"
	"github.com/couchcryptid/wxterm/internal/observability"
	"github.com/couchcryptid/wxterm/internal/render"
)

type stubSource struct {
	current     domain.CurrentConditions
	currentErr  error
	forecast    domain.Forecast
	forecastErr error

	currentCalls  []string
	forecastCalls []string
}

func (s *stubSource) CurrentWeather(ctx context.Context, city string) (domain.CurrentConditions, error) {
	s.currentCalls = append(s.currentCalls, city)
	return s.current, s.currentErr
}

func (s *stubSource) Forecast(ctx context.Context, city string) (domain.Forecast, error) {
	s.forecastCalls = append(s.forecastCalls, city)
	return s.forecast, s.forecastErr
}

func newTestShell(input string, source *stubSource) (*Shell, *bytes.Buffer) {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sh := New(source, render.New(&out), observability.NewMetrics(), logger, strings.NewReader(input))
	return sh, &out
}

func nonEmptySource() *stubSource {
	return &stubSource{
		current: domain.CurrentConditions{
			City: "London", Country: "GB",
			Temperature: 18.5, FeelsLike: 17.8, Humidity: 72,
			Description: "Light rain", Icon: "10d",
			WindSpeed: 4.6, Pressure: 1012,
		},
		forecast: domain.Forecast{
			City: "London", Country: "GB",
			Days: []domain.DailyForecast{
				{Date: "2024-05-01", MinTemp: 10, MaxTemp: 18, AvgTemp: 14, Description: "Clear sky", Icon: "01d"},
			},
		},
	}
}

func TestRun_Exit(t *testing.T) {
	t.Run("exit keyword", func(t *testing.T) {
		source := nonEmptySource()
		sh, out := newTestShell("exit\n", source)

		err := sh.Run(context.Background())

		require.NoError(t, err)
		assert.Empty(t, source.currentCalls)
		assert.Empty(t, source.forecastCalls)
		assert.Contains(t, out.String(), "Goodbye!")
	})

	t.Run("keyword is case-insensitive", func(t *testing.T) {
		source := nonEmptySource()
		sh, _ := newTestShell("EXIT\n", source)

		require.NoError(t, sh.Run(context.Background()))
		assert.Empty(t, source.currentCalls)
	})

	t.Run("end of input behaves like exit", func(t *testing.T) {
		source := nonEmptySource()
		sh, out := newTestShell("", source)

		err := sh.Run(context.Background())

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Goodbye!")
	})
}

func TestRun_Query(t *testing.T) {
	t.Run("renders both views", func(t *testing.T) {
		source := nonEmptySource()
		sh, out := newTestShell("London\nexit\n", source)

		require.NoError(t, sh.Run(context.Background()))

		assert.Equal(t, []string{"London"}, source.currentCalls)
		assert.Equal(t, []string{"London"}, source.forecastCalls)

		s := out.String()
		assert.Contains(t, s, "Fetching weather for London...")
		assert.Contains(t, s, "Current Weather in London, GB")
		assert.Contains(t, s, "5-Day Forecast for London, GB")
		assert.Contains(t, s, strings.Repeat("=", 80))
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		source := nonEmptySource()
		sh, _ := newTestShell("  London  \nexit\n", source)

		require.NoError(t, sh.Run(context.Background()))
		assert.Equal(t, []string{"London"}, source.currentCalls)
	})

	t.Run("empty input reprompts without querying", func(t *testing.T) {
		source := nonEmptySource()
		sh, out := newTestShell("\n\nexit\n", source)

		require.NoError(t, sh.Run(context.Background()))

		assert.Empty(t, source.currentCalls)
		assert.Equal(t, 3, strings.Count(out.String(), "Enter city name"))
	})

	t.Run("current failure still attempts the forecast", func(t *testing.T) {
		source := nonEmptySource()
		source.currentErr = errors.New("connection timed out")
		sh, out := newTestShell("London\nexit\n", source)

		require.NoError(t, sh.Run(context.Background()))

		assert.Equal(t, []string{"London"}, source.forecastCalls)

		s := out.String()
		assert.Contains(t, s, "Could not retrieve current weather for London. Please check the city name.")
		assert.Contains(t, s, "5-Day Forecast for London, GB")
	})

	t.Run("forecast failure reports and continues", func(t *testing.T) {
		source := nonEmptySource()
		source.forecastErr = errors.New("status 500")
		sh, out := newTestShell("London\nParis\nexit\n", source)

		require.NoError(t, sh.Run(context.Background()))

		assert.Equal(t, []string{"London", "Paris"}, source.currentCalls)

		s := out.String()
		assert.Contains(t, s, "Could not retrieve forecast for London.")
		assert.Contains(t, s, "Could not retrieve forecast for Paris.")
		assert.Contains(t, s, "Current Weather in London, GB")
	})

	t.Run("both failing still separates queries", func(t *testing.T) {
		source := &stubSource{
			currentErr:  errors.New("boom"),
			forecastErr: errors.New("boom"),
		}
		sh, out := newTestShell("Atlantis\nexit\n", source)

		require.NoError(t, sh.Run(context.Background()))

		s := out.String()
		assert.Contains(t, s, "Could not retrieve current weather for Atlantis.")
		assert.Contains(t, s, "Could not retrieve forecast for Atlantis.")
		assert.Contains(t, s, strings.Repeat("=", 80))
	})
}

func TestRun_Stats(t *testing.T) {
	source := nonEmptySource()
	sh, out := newTestShell("stats\nLondon\nSTATS\nexit\n", source)

	require.NoError(t, sh.Run(context.Background()))

	// The stats keyword itself is not a query.
	assert.Equal(t, []string{"London"}, source.currentCalls)

	s := out.String()
	assert.Equal(t, 2, strings.Count(s, "Session Statistics"))
	assert.Contains(t, s, "Cities queried: 0")
	assert.Contains(t, s, "Cities queried: 1")
}
