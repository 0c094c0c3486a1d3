package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/couchcryptid/wxterm/internal/domain"
	"github.com/couchcryptid/wxterm/internal/observability"
)

// dayPanelWidth is the content width of a forecast day card; the rounded
// border brings the drawn panel to 20 columns.
const dayPanelWidth = 18

// Renderer writes formatted weather output. Styles bind to the writer, so
// color degrades to plain text when out is not a terminal.
type Renderer struct {
	out io.Writer

	headline lipgloss.Style // section headings
	prompt   lipgloss.Style
	notice   lipgloss.Style // progress notes
	alert    lipgloss.Style // user-facing failure lines
	dim      lipgloss.Style
	header   lipgloss.Style // table header cells
	property lipgloss.Style // table left column
	value    lipgloss.Style // table right columns
	cold     lipgloss.Style
	hot      lipgloss.Style
	mild     lipgloss.Style
	dayTitle lipgloss.Style
	border   lipgloss.Style
	panel    lipgloss.Style // framed banners and section headers
	errPanel lipgloss.Style
	dayPanel lipgloss.Style
}

// New creates a Renderer writing to out.
func New(out io.Writer) *Renderer {
	lip := lipgloss.NewRenderer(out)
	return &Renderer{
		out:      out,
		headline: lip.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		prompt:   lip.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
		notice:   lip.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		alert:    lip.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		dim:      lip.NewStyle().Faint(true),
		header:   lip.NewStyle().Bold(true).Foreground(lipgloss.Color("10")).Padding(0, 1),
		property: lip.NewStyle().Foreground(lipgloss.Color("14")).Padding(0, 1),
		value:    lip.NewStyle().Foreground(lipgloss.Color("11")).Padding(0, 1).Align(lipgloss.Right),
		cold:     lip.NewStyle().Foreground(lipgloss.Color("12")),
		hot:      lip.NewStyle().Foreground(lipgloss.Color("9")),
		mild:     lip.NewStyle().Foreground(lipgloss.Color("10")),
		dayTitle: lip.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		border:   lip.NewStyle().Foreground(lipgloss.Color("5")),
		panel:    lip.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("14")).Padding(0, 1),
		errPanel: lip.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("9")).Padding(0, 1),
		dayPanel: lip.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("5")).Padding(0, 1).Width(dayPanelWidth),
	}
}

// Current prints present conditions as a labeled table.
func (r *Renderer) Current(c domain.CurrentConditions) {
	fmt.Fprintln(r.out, r.headline.Render(fmt.Sprintf("Current Weather in %s, %s", c.City, c.Country)))

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.border).
		StyleFunc(r.cellStyle).
		Headers("Property", "Value").
		Row("Temperature", fmt.Sprintf("%.1f°C %s", c.Temperature, icon(c.Icon))).
		Row("Feels Like", fmt.Sprintf("%.1f°C", c.FeelsLike)).
		Row("Description", c.Description).
		Row("Humidity", fmt.Sprintf("%d%%", c.Humidity)).
		Row("Wind Speed", fmt.Sprintf("%.1f m/s", c.WindSpeed)).
		Row("Pressure", fmt.Sprintf("%d hPa", c.Pressure))

	fmt.Fprintln(r.out, t.Render())
	fmt.Fprintln(r.out, r.dim.Render("as of "+c.FetchedAt.Format("15:04")))
	fmt.Fprintln(r.out)
}

// Forecast prints one card per day followed by the temperature trend chart.
func (r *Renderer) Forecast(f domain.Forecast) {
	if len(f.Days) == 0 {
		fmt.Fprintln(r.out, r.alert.Render(fmt.Sprintf("No forecast days available for %s.", f.City)))
		return
	}

	fmt.Fprintln(r.out, r.panel.Render(r.headline.Render(fmt.Sprintf("📅 5-Day Forecast for %s, %s 📅", f.City, f.Country))))

	cards := make([]string, len(f.Days))
	for i, day := range f.Days {
		cards[i] = r.dayPanel.Render(r.dayCard(day))
	}
	fmt.Fprintln(r.out, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out, r.panel.Render(r.headline.Render("📊 Daily Temperature Trend 📊")))

	for _, day := range f.Days {
		fmt.Fprintf(r.out, "%s: %s\n",
			r.dim.Render(dayOfMonth(day.Date)),
			r.mild.Render(fmt.Sprintf("%.1f°C", day.AvgTemp)))
	}
	for _, line := range temperatureChart(f.Days) {
		fmt.Fprintln(r.out, r.dim.Render(line))
	}

	fmt.Fprintln(r.out, r.dim.Render("as of "+f.FetchedAt.Format("15:04")))
	fmt.Fprintln(r.out)
}

// Welcome prints the startup banner.
func (r *Renderer) Welcome() {
	fmt.Fprintln(r.out, r.panel.Render(r.headline.Render("✨ Welcome to the wxterm Weather Forecast! ✨")))
}

// Goodbye prints the exit banner.
func (r *Renderer) Goodbye() {
	fmt.Fprintln(r.out, r.panel.Render(r.headline.Render("👋 Thank you for using wxterm! Goodbye! 👋")))
}

// ConfigurationError explains the missing API key and how to remedy it.
func (r *Renderer) ConfigurationError() {
	msg := "🚨 API Key Missing! Please set the OPENWEATHER_API_KEY environment variable.\n" +
		"You can get a free API key from OpenWeatherMap (openweathermap.org/api)."
	fmt.Fprintln(r.out, r.errPanel.Render(r.notice.Render(msg)))
}

// Prompt writes the input prompt without a trailing newline.
func (r *Renderer) Prompt() {
	fmt.Fprint(r.out, r.prompt.Render("Enter city name (e.g., London, Tokyo, New York) or 'exit' to quit")+": ")
}

// FetchNotice announces a lookup in progress.
func (r *Renderer) FetchNotice(city string) {
	fmt.Fprintln(r.out, r.notice.Render(fmt.Sprintf("Fetching weather for %s...", city)))
}

// ErrorNotice prints a user-facing failure line. The shell owns the wording.
func (r *Renderer) ErrorNotice(msg string) {
	fmt.Fprintln(r.out, r.alert.Render(msg))
}

// Separator closes out one query's output.
func (r *Renderer) Separator() {
	fmt.Fprintln(r.out, "\n"+strings.Repeat("=", 80)+"\n")
}

// SessionStats prints the metrics snapshot for the stats command.
func (r *Renderer) SessionStats(snap observability.Snapshot) {
	fmt.Fprintln(r.out, r.headline.Render("Session Statistics"))
	fmt.Fprintf(r.out, "Cities queried: %d\n", snap.Queries)

	if len(snap.Endpoints) == 0 {
		fmt.Fprintln(r.out, r.dim.Render("No API requests yet."))
		return
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.border).
		StyleFunc(r.cellStyle).
		Headers("Endpoint", "Requests", "Failures", "Mean Latency")

	for _, ep := range snap.Endpoints {
		t.Row(ep.Endpoint,
			strconv.FormatUint(ep.Requests, 10),
			strconv.FormatUint(ep.Failures, 10),
			ep.MeanLatency.Round(time.Millisecond).String())
	}

	fmt.Fprintln(r.out, t.Render())
}

func (r *Renderer) dayCard(day domain.DailyForecast) string {
	var b strings.Builder
	b.WriteString(r.dayTitle.Render(dayOfMonth(day.Date)) + "\n")
	b.WriteString(day.Date + "\n")
	b.WriteString(icon(day.Icon) + " " + day.Description + "\n")
	b.WriteString("Min: " + r.cold.Render(fmt.Sprintf("%.1f°C", day.MinTemp)) + "\n")
	b.WriteString("Max: " + r.hot.Render(fmt.Sprintf("%.1f°C", day.MaxTemp)) + "\n")
	b.WriteString("Avg: " + r.mild.Render(fmt.Sprintf("%.1f°C", day.AvgTemp)))
	return b.String()
}

func (r *Renderer) cellStyle(row, col int) lipgloss.Style {
	switch {
	case row == table.HeaderRow:
		return r.header
	case col == 0:
		return r.property
	default:
		return r.value
	}
}
