package cli

import (
	"context"
	"fmt"
	"time"

	"web-scraping-tool/pkg/cli/urls"
	"web-scraping-tool/pkg/logger"
	"web-scraping-tool/pkg/models"
	"web-scraping-tool/pkg/utils"
)

// remotePollInterval is how often remote scrapes are polled for completion.
const remotePollInterval = 200 * time.Millisecond

// ListURLs prints the tracked URLs. With remote set, the API server's
// session is listed instead of the local one.
func (a *App) ListURLs(remote bool) error {
	rows := a.state.Rows()
	if remote {
		apiClient, err := a.getClient()
		if err != nil {
			return err
		}
		if rows, err = apiClient.ListURLs(); err != nil {
			return fmt.Errorf("error fetching URLs: %w", err)
		}
	}

	fmt.Fprint(a.out, urls.FormatTableOutput(rows))
	return nil
}

// AddURL registers raw and prints the new entry
func (a *App) AddURL(raw string, remote bool) error {
	var (
		entry *models.URLEntry
		err   error
	)
	if remote {
		apiClient, cerr := a.getClient()
		if cerr != nil {
			return cerr
		}
		entry, err = apiClient.AddURL(raw)
	} else {
		entry, err = a.state.Add(raw)
	}
	if err != nil {
		return err
	}

	fmt.Fprint(a.out, urls.FormatAddedMessage(entry))
	return nil
}

// ScrapeURL scrapes raw, registering it first if it is not tracked yet, and
// prints the resulting detail view.
func (a *App) ScrapeURL(ctx context.Context, raw string, remote bool) error {
	if remote {
		return a.scrapeURLRemote(ctx, raw)
	}

	entry, err := a.findOrAdd(raw)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "⏳ Scraping %s...\n", entry.URL)
	task, err := a.tracker.StartScrape(ctx, entry.ID)
	if err != nil {
		return err
	}
	if err := task.Wait(ctx); err != nil {
		return fmt.Errorf("scraping interrupted: %w", err)
	}

	fmt.Fprint(a.out, urls.FormatDetail(a.state.Render()))
	return nil
}

// ScrapeAll scrapes every tracked URL and prints the final statuses
func (a *App) ScrapeAll(ctx context.Context, remote bool) error {
	var (
		rows []models.URLRow
		err  error
	)
	if remote {
		rows, err = a.scrapeAllRemote(ctx)
	} else {
		rows, err = a.tracker.ScrapeAll(ctx, a.cfg.CLI.ScrapeConcurrency)
	}
	if err != nil {
		return fmt.Errorf("scraping interrupted: %w", err)
	}

	fmt.Fprint(a.out, urls.FormatTableOutput(rows))
	fmt.Fprint(a.out, urls.FormatScrapeSummary(rows))
	return nil
}

func (a *App) findOrAdd(raw string) (*models.URLEntry, error) {
	url, err := utils.ValidateURL(raw)
	if err != nil {
		return nil, err
	}
	for _, e := range a.state.List() {
		if e.URL == url {
			logger.Log("cli: %s already tracked as id=%d", e.URL, e.ID)
			return &e, nil
		}
	}
	return a.state.Add(url)
}
