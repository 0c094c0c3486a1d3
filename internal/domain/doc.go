// Package domain models OpenWeatherMap weather data for terminal presentation.
//
// # Data Source
//
// Readings come from two OpenWeatherMap REST endpoints: /weather returns the
// present conditions for one city, and /forecast returns an outlook of up to
// 40 samples spaced 3 hours apart (about 5 days). Both are queried by city
// name with metric units. The adapter layer validates and parses the JSON
// bodies; this package only sees well-formed values.
//
// # Forecast Aggregation
//
// Terminal output wants one row per day, not eight, so the 3-hour samples are
// grouped by the date portion of their "YYYY-MM-DD HH:MM:SS" timestamp and
// each group reduces to a daily summary:
//
//	temperature  → min, max, and arithmetic mean of the group
//	description  → most frequent value, ties broken by first appearance
//	icon         → most frequent value, same tie-break
//
// Days covered by a single sample (the trailing partial day of the window)
// are valid: min, max, and mean all equal that one reading. Aggregated days
// are sorted ascending by date; the fixed-width ISO form makes plain string
// comparison correct.
//
// # Description Casing
//
// The API reports descriptions in lower case ("light rain"). After mode
// selection the first rune is upper-cased and the remainder lower-cased, so
// "LIGHT RAIN" and "light rain" both present as "Light rain".
//
// # Icon Codes
//
// Icon codes are a two-digit condition group plus a day/night suffix, e.g.
// "01d" (clear day) or "10n" (rain at night). The render layer maps codes to
// glyphs and substitutes a placeholder for unrecognized ones; this package
// carries codes verbatim.
package domain
