package render

// weatherIcons maps OpenWeatherMap icon codes to terminal glyphs. Codes are a
// two-digit condition group plus a day/night suffix.
var weatherIcons = map[string]string{
	"01d": "☀️", "01n": "🌙",
	"02d": "🌤️", "02n": "☁️",
	"03d": "☁️", "03n": "☁️",
	"04d": "☁️", "04n": "☁️",
	"09d": "🌧️", "09n": "🌧️",
	"10d": "🌦️", "10n": "🌧️",
	"11d": "⛈️", "11n": "⛈️",
	"13d": "❄️", "13n": "❄️",
	"50d": "🌫️", "50n": "🌫️",
}

// iconFallback stands in for any code missing from the table.
const iconFallback = "❓"

// icon returns the terminal glyph for an OpenWeatherMap icon code.
func icon(code string) string {
	if glyph, ok := weatherIcons[code]; ok {
		return glyph
	}
	return iconFallback
}
