// Command wxterm-demo renders a canned London query through the real
// aggregation and display path. It needs no network access or API key,
// which makes it handy for checking terminal output after display changes.
package main

import (
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/wxterm/internal/domain"
	"github.com/couchcryptid/wxterm/internal/render"
)

func main() {
	domain.SetClock(clockwork.NewFakeClockAt(time.Date(2024, time.May, 1, 9, 30, 0, 0, time.UTC)))
	defer domain.SetClock(nil)

	renderer := render.New(os.Stdout)

	renderer.Welcome()
	renderer.FetchNotice("London")

	current := domain.NormalizeCurrent(domain.CurrentConditions{
		City:        "London",
		Country:     "GB",
		Temperature: 11.4,
		FeelsLike:   10.2,
		Humidity:    82,
		Description: "light rain",
		Icon:        "10d",
		WindSpeed:   4.6,
		Pressure:    1008,
	})
	renderer.Current(current)

	renderer.Forecast(domain.BuildForecast("London", "GB", demoSamples()))
	renderer.Separator()
	renderer.Goodbye()
}

// demoSamples fakes five days of 3-hourly forecast entries with enough
// spread to light up every corner of the display.
func demoSamples() []domain.Sample {
	days := []struct {
		date        string
		base        float64
		description string
		icon        string
	}{
		{"2024-05-01", 12.0, "clear sky", "01d"},
		{"2024-05-02", 13.5, "few clouds", "02d"},
		{"2024-05-03", 9.0, "light rain", "10d"},
		{"2024-05-04", 14.5, "scattered clouds", "03d"},
		{"2024-05-05", 17.0, "clear sky", "01d"},
	}
	hours := []string{"06", "09", "12", "15", "18", "21"}
	offsets := []float64{-2.0, -0.5, 1.5, 2.5, 1.0, -1.0}

	var samples []domain.Sample
	for _, d := range days {
		for i, h := range hours {
			samples = append(samples, domain.Sample{
				Timestamp:   d.date + " " + h + ":00:00",
				Temperature: d.base + offsets[i],
				Description: d.description,
				Icon:        d.icon,
			})
		}
	}
	return samples
}
