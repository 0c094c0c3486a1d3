package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/couchcryptid/wxterm/internal/domain"
	"github.com/couchcryptid/wxterm/internal/observability"
	"github.com/couchcryptid/wxterm/internal/render"
)

// WeatherSource fetches weather data for one city. Implemented by the
// openweather client; tests substitute stubs.
type WeatherSource interface {
	CurrentWeather(ctx context.Context, city string) (domain.CurrentConditions, error)
	Forecast(ctx context.Context, city string) (domain.Forecast, error)
}

// Shell runs the interactive query loop: read a city name, fetch, render,
// repeat until "exit" or end of input.
type Shell struct {
	source   WeatherSource
	renderer *render.Renderer
	metrics  *observability.Metrics
	logger   *slog.Logger
	in       io.Reader
}

// New creates a Shell reading commands from in.
func New(source WeatherSource, renderer *render.Renderer, metrics *observability.Metrics, logger *slog.Logger, in io.Reader) *Shell {
	return &Shell{
		source:   source,
		renderer: renderer,
		metrics:  metrics,
		logger:   logger,
		in:       in,
	}
}

// Run is the prompt loop. Fetch failures are reported to the user and the
// loop continues; only a read error on the input ends it abnormally.
func (s *Shell) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(s.in)

	for {
		s.renderer.Prompt()
		if !scanner.Scan() {
			s.renderer.Goodbye()
			return scanner.Err()
		}

		input := strings.TrimSpace(scanner.Text())
		switch {
		case input == "":
			continue
		case strings.EqualFold(input, "exit"):
			s.renderer.Goodbye()
			return nil
		case strings.EqualFold(input, "stats"):
			s.showStats()
			continue
		}

		s.query(ctx, input)
	}
}

// query fetches and renders both views for one city. The two lookups succeed
// or fail independently: a dead current endpoint must not swallow a healthy
// forecast.
func (s *Shell) query(ctx context.Context, city string) {
	s.metrics.QueriesTotal.Inc()
	s.renderer.FetchNotice(city)

	current, err := s.source.CurrentWeather(ctx, city)
	if err != nil {
		s.logger.Warn("current weather lookup failed", "city", city, "error", err)
		s.renderer.ErrorNotice(fmt.Sprintf("Could not retrieve current weather for %s. Please check the city name.", city))
	} else {
		s.renderer.Current(current)
	}

	forecast, err := s.source.Forecast(ctx, city)
	if err != nil {
		s.logger.Warn("forecast lookup failed", "city", city, "error", err)
		s.renderer.ErrorNotice(fmt.Sprintf("Could not retrieve forecast for %s.", city))
	} else {
		s.renderer.Forecast(forecast)
	}

	s.renderer.Separator()
}

func (s *Shell) showStats() {
	snap, err := s.metrics.Snapshot()
	if err != nil {
		s.logger.Error("metrics snapshot failed", "error", err)
		s.renderer.ErrorNotice("Session statistics are unavailable.")
		return
	}
	s.renderer.SessionStats(snap)
}
