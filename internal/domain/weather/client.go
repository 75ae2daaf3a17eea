package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"krishi-officer-go/internal/platform/config"
	"krishi-officer-go/internal/platform/logging"
)

// Client talks to the weatherapi.com REST endpoints. Each call carries the
// configured per-request timeout; there are no retries.
type Client struct {
	baseURL      string
	apiKey       string
	forecastDays int
	httpClient   *http.Client
	logger       *logging.Logger
}

func NewClient(cfg config.WeatherConfig, logger *logging.Logger) *Client {
	return &Client{
		baseURL:      cfg.BaseURL,
		apiKey:       cfg.APIKey,
		forecastDays: cfg.ForecastDays,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		logger:       logger,
	}
}

// Current fetches current conditions with air quality data.
func (c *Client) Current(ctx context.Context, location string) (*currentResponse, error) {
	query := url.Values{}
	query.Set("key", c.apiKey)
	query.Set("q", location)
	query.Set("aqi", "yes")

	var resp currentResponse
	if err := c.get(ctx, "current.json", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Forecast fetches the daily forecast with provider alerts enabled.
func (c *Client) Forecast(ctx context.Context, location string) (*forecastResponse, error) {
	query := url.Values{}
	query.Set("key", c.apiKey)
	query.Set("q", location)
	query.Set("days", fmt.Sprintf("%d", c.forecastDays))
	query.Set("aqi", "no")
	query.Set("alerts", "yes")

	var resp forecastResponse
	if err := c.get(ctx, "forecast.json", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out interface{}) error {
	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}
