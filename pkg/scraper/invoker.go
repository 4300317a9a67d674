package scraper

import (
	"fmt"
	"time"

	"web-scraping-tool/pkg/config"
)

// NewInvoker builds the invoker selected by cfg.Scraper.Mode.
func NewInvoker(cfg *config.Config) (Invoker, error) {
	switch cfg.Scraper.Mode {
	case config.ScraperModeMock, "":
		return NewMockInvoker(time.Duration(cfg.Scraper.MockDelayMS) * time.Millisecond), nil
	case config.ScraperModeRemote:
		return NewScraperService(cfg.Scraper.BaseURL, time.Duration(cfg.Scraper.Timeout)*time.Second), nil
	default:
		return nil, fmt.Errorf("unknown scraper mode: %q", cfg.Scraper.Mode)
	}
}
