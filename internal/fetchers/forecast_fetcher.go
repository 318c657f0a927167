package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"aquacast/internal/models"
)

// ForecastFetcher pulls the 10-day demand forecast from the
// model-serving API. The upstream never specified a timeout; an
// explicit one is set here so a hung upstream degrades into the
// fallback path instead of blocking the refresher.
type ForecastFetcher struct {
	client  *resty.Client
	limiter *rate.Limiter
	url     string
}

// NewForecastFetcher creates a fetcher for the given forecast endpoint.
func NewForecastFetcher(url string, timeout time.Duration) *ForecastFetcher {
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetRetryCount(2)
	client.SetRetryWaitTime(1 * time.Second)

	// Manual refreshes are user-triggered; one request per 10 seconds
	// keeps a reload-happy browser from hammering the upstream.
	return &ForecastFetcher{
		client:  client,
		limiter: rate.NewLimiter(rate.Every(10*time.Second), 1),
		url:     url,
	}
}

// FetchForecast fetches and decodes the upstream forecast. Any network
// failure, non-200 status or undecodable body is returned as an error;
// the caller decides whether to substitute the fallback generator.
func (f *ForecastFetcher) FetchForecast(ctx context.Context) (*models.ForecastResponse, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(f.url)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch forecast: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("forecast API returned status %d", resp.StatusCode())
	}

	var forecast models.ForecastResponse
	if err := json.Unmarshal(resp.Body(), &forecast); err != nil {
		return nil, fmt.Errorf("failed to parse forecast response: %w", err)
	}

	return &forecast, nil
}

// AllowManualRefresh reports whether a user-triggered refresh may
// proceed under the rate limit.
func (f *ForecastFetcher) AllowManualRefresh() bool {
	return f.limiter.Allow()
}
