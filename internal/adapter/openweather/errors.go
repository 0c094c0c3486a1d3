package openweather

import "fmt"

// NetworkError reports a transport-level failure: the request never produced
// an HTTP response (connection refused, DNS failure, timeout).
type NetworkError struct {
	Endpoint string // "weather" or "forecast"
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("openweathermap %s request: %v", e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// StatusError reports a non-2xx HTTP response. Body carries the response
// payload for diagnostics; OpenWeatherMap returns a JSON message there.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("openweathermap %s API error: status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// ParseError reports a response body that could not be interpreted: malformed
// JSON, or a required field missing or empty. Field names the JSON path that
// failed, e.g. "main.temp" or "list[3].weather[0]".
type ParseError struct {
	Field string
	Err   error // nil when the field was simply absent
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("openweathermap response: invalid %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("openweathermap response: missing %s", e.Field)
}

func (e *ParseError) Unwrap() error { return e.Err }
