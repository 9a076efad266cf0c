package scraper

import (
	"context"
	"time"

	"github.com/mediavision/centrepage/internal/logger"
	"github.com/mediavision/centrepage/internal/property"
)

// Scraper turns URLs into best-effort property records. Fetches are
// sequential with a fixed pause between requests; there is no retry,
// backoff, or concurrency.
type Scraper struct {
	fetcher *Fetcher
	pause   time.Duration

	// sleep is swapped out in tests.
	sleep func(time.Duration)
}

// DefaultPause is the fixed inter-request pause when scraping a list,
// purely to avoid hammering a target server.
const DefaultPause = time.Second

// New creates a scraper.
func New(cfg FetcherConfig, pause time.Duration) *Scraper {
	if pause < 0 {
		pause = DefaultPause
	}
	return &Scraper{
		fetcher: NewFetcher(cfg),
		pause:   pause,
		sleep:   time.Sleep,
	}
}

// Scrape fetches one URL and extracts a record. A failed fetch or
// parse yields a nil record and the error; it never panics past the
// call site.
func (s *Scraper) Scrape(url string) (property.Record, error) {
	html, err := s.fetcher.Fetch(url)
	if err != nil {
		return nil, err
	}
	return Extract(html, url)
}

// ScrapeAll scrapes each URL in order, skipping failures. Failures are
// logged and do not affect the returned collection's other entries.
// ctx is checked between URLs.
func (s *Scraper) ScrapeAll(ctx context.Context, urls []string) []property.Record {
	var records []property.Record

	for i, url := range urls {
		if ctx.Err() != nil {
			logger.Warn("scrape cancelled", "completed", i, "total", len(urls))
			return records
		}

		rec, err := s.Scrape(url)
		if err != nil {
			logger.Warn("scrape failed", "url", url, "error", err)
		} else {
			logger.Info("scraped property", "url", url, "property", rec.DisplayName("Unknown"))
			records = append(records, rec)
		}

		if i < len(urls)-1 && s.pause > 0 {
			s.sleep(s.pause)
		}
	}
	return records
}
