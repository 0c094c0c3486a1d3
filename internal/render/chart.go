package render

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/couchcryptid/wxterm/internal/domain"
)

const (
	chartHeight = 8
	chartWidth  = 50
	chartMarker = '●'
)

// temperatureChart plots each day's average temperature on a chartHeight by
// chartWidth grid and returns the framed rows followed by two axis label
// lines. The vertical scale spans the coldest daily minimum to the hottest
// daily maximum; the hottest row prints first. Days landing on the same cell
// overwrite each other.
func temperatureChart(days []domain.DailyForecast) []string {
	minAll, maxAll := temperatureBounds(days)

	// A flat range would divide by zero; substituting one collapses every
	// point onto the bottom row, which is acceptable for a trend sketch.
	span := maxAll - minAll
	if span == 0 {
		span = 1
	}

	grid := make([][]rune, chartHeight)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", chartWidth))
	}

	for i, day := range days {
		row := scaleRow(day.AvgTemp, minAll, span)
		col := scaleColumn(i, len(days))
		grid[chartHeight-1-row][col] = chartMarker
	}

	lines := make([]string, 0, chartHeight+2)
	for _, row := range grid {
		lines = append(lines, "|"+string(row)+"|")
	}

	labels := make([]string, len(days))
	for i, day := range days {
		labels[i] = dayOfMonth(day.Date)
	}
	lines = append(lines, center(strings.Join(labels, " "), chartWidth+2))
	lines = append(lines, center("Days", chartWidth+2))

	return lines
}

// scaleRow maps an average temperature onto [0, chartHeight-1], row 0 being
// the coldest.
func scaleRow(avg, minAll, span float64) int {
	row := int(math.Round((avg - minAll) / span * (chartHeight - 1)))
	return clamp(row, 0, chartHeight-1)
}

// scaleColumn spreads day i of n across [0, chartWidth-1].
func scaleColumn(i, n int) int {
	if n <= 1 {
		return 0
	}
	col := int(math.Round(float64(i) / float64(n-1) * (chartWidth - 1)))
	return clamp(col, 0, chartWidth-1)
}

// temperatureBounds returns the global scale: the coldest MinTemp and hottest
// MaxTemp across all days.
func temperatureBounds(days []domain.DailyForecast) (minAll, maxAll float64) {
	minAll, maxAll = days[0].MinTemp, days[0].MaxTemp
	for _, d := range days[1:] {
		if d.MinTemp < minAll {
			minAll = d.MinTemp
		}
		if d.MaxTemp > maxAll {
			maxAll = d.MaxTemp
		}
	}
	return minAll, maxAll
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// dayOfMonth extracts the day component of an ISO date, e.g. "2024-05-03" → "03".
func dayOfMonth(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) == 3 {
		return parts[2]
	}
	return date
}

// center pads s with spaces to width; the extra space of an odd pad goes right.
func center(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
