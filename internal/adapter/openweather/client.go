package openweather

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/couchcryptid/wxterm/internal/config"
	"github.com/couchcryptid/wxterm/internal/domain"
	"github.com/couchcryptid/wxterm/internal/observability"
)

// Endpoint path segments, also used as metric label values.
const (
	endpointWeather  = "weather"
	endpointForecast = "forecast"
)

// Request outcomes for the api_requests_total metric.
const (
	outcomeSuccess      = "success"
	outcomeNetworkError = "network_error"
	outcomeStatusError  = "status_error"
	outcomeParseError   = "parse_error"
)

// Client queries the OpenWeatherMap REST API. One outbound request per call,
// no retries; a client-side limiter keeps bursts inside the free-tier quota.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewClient creates an OpenWeatherMap client from config.
func NewClient(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		logger:  logger,
		metrics: metrics,
	}
}

// CurrentWeather fetches present conditions for a city.
func (c *Client) CurrentWeather(ctx context.Context, city string) (domain.CurrentConditions, error) {
	body, err := c.get(ctx, endpointWeather, city)
	if err != nil {
		return domain.CurrentConditions{}, err
	}

	conditions, err := parseCurrent(body)
	if err != nil {
		c.metrics.APIRequests.WithLabelValues(endpointWeather, outcomeParseError).Inc()
		c.logger.Warn("unusable weather payload", "city", city, "error", err)
		return domain.CurrentConditions{}, err
	}

	c.metrics.APIRequests.WithLabelValues(endpointWeather, outcomeSuccess).Inc()
	return conditions, nil
}

// Forecast fetches the 5-day/3-hour outlook for a city, aggregated to days.
func (c *Client) Forecast(ctx context.Context, city string) (domain.Forecast, error) {
	body, err := c.get(ctx, endpointForecast, city)
	if err != nil {
		return domain.Forecast{}, err
	}

	forecast, err := parseForecast(body)
	if err != nil {
		c.metrics.APIRequests.WithLabelValues(endpointForecast, outcomeParseError).Inc()
		c.logger.Warn("unusable forecast payload", "city", city, "error", err)
		return domain.Forecast{}, err
	}

	c.metrics.APIRequests.WithLabelValues(endpointForecast, outcomeSuccess).Inc()
	return forecast, nil
}

// get performs one rate-limited GET against an endpoint and returns the raw
// body of a 2xx response.
func (c *Client) get(ctx context.Context, endpoint, city string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		c.metrics.APIRequests.WithLabelValues(endpoint, outcomeNetworkError).Inc()
		return nil, &NetworkError{Endpoint: endpoint, Err: err}
	}

	params := url.Values{
		"q":     {city},
		"appid": {c.apiKey},
		"units": {"metric"},
	}
	fullURL := c.baseURL + "/" + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		c.metrics.APIRequests.WithLabelValues(endpoint, outcomeNetworkError).Inc()
		return nil, &NetworkError{Endpoint: endpoint, Err: err}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.APIRequests.WithLabelValues(endpoint, outcomeNetworkError).Inc()
		c.logger.Warn("request failed", "endpoint", endpoint, "city", city, "error", err)
		return nil, &NetworkError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()
	c.metrics.APIDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.APIRequests.WithLabelValues(endpoint, outcomeNetworkError).Inc()
		return nil, &NetworkError{Endpoint: endpoint, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.metrics.APIRequests.WithLabelValues(endpoint, outcomeStatusError).Inc()
		c.logger.Warn("api error", "endpoint", endpoint, "city", city, "status", resp.StatusCode)
		return nil, &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}
