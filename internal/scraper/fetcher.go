// Package scraper extracts best-effort property records from web pages.
package scraper

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gocolly/colly/v2"
)

// FetcherConfig holds fetching configuration.
type FetcherConfig struct {
	UserAgent string
	Timeout   time.Duration
}

// DefaultFetcherConfig returns sensible defaults.
func DefaultFetcherConfig() FetcherConfig {
	return FetcherConfig{
		UserAgent: "Mozilla/5.0 (compatible; centrepage/2.0; +https://github.com/mediavision/centrepage)",
		Timeout:   30 * time.Second,
	}
}

// Fetcher retrieves static HTML pages.
type Fetcher struct {
	config FetcherConfig
}

// NewFetcher creates a fetcher.
func NewFetcher(cfg FetcherConfig) *Fetcher {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultFetcherConfig().UserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultFetcherConfig().Timeout
	}
	return &Fetcher{config: cfg}
}

// Fetch retrieves the page body. A network failure or non-success
// status is returned as an error; callers treat either as "no record".
func (f *Fetcher) Fetch(targetURL string) (string, error) {
	// A fresh collector per request: each fetch is independent.
	c := colly.NewCollector(
		colly.UserAgent(f.config.UserAgent),
	)
	c.SetRequestTimeout(f.config.Timeout)

	var (
		body     string
		status   int
		fetchErr error
	)

	c.OnResponse(func(r *colly.Response) {
		status = r.StatusCode
		body = string(r.Body)
	})
	c.OnError(func(r *colly.Response, err error) {
		if r != nil {
			status = r.StatusCode
		}
		fetchErr = err
	})

	if err := c.Visit(targetURL); err != nil {
		return "", fmt.Errorf("fetch %s: %w", targetURL, err)
	}
	if fetchErr != nil {
		return "", fmt.Errorf("fetch %s: %w", targetURL, fetchErr)
	}
	if status < 200 || status >= 300 {
		return "", fmt.Errorf("fetch %s: status %d %s", targetURL, status, http.StatusText(status))
	}
	return body, nil
}
