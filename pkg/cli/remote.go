package cli

import (
	"context"
	"fmt"

	"web-scraping-tool/pkg/cli/client"
	"web-scraping-tool/pkg/cli/urls"
	"web-scraping-tool/pkg/logger"
	"web-scraping-tool/pkg/models"
	"web-scraping-tool/pkg/utils"
)

func (a *App) scrapeURLRemote(ctx context.Context, raw string) error {
	url, err := utils.ValidateURL(raw)
	if err != nil {
		return err
	}

	apiClient, err := a.getClient()
	if err != nil {
		return err
	}

	rows, err := apiClient.ListURLs()
	if err != nil {
		return fmt.Errorf("error fetching URLs: %w", err)
	}

	id := 0
	for _, row := range rows {
		if row.URL == url {
			id = row.ID
			break
		}
	}
	if id == 0 {
		entry, err := apiClient.AddURL(url)
		if err != nil {
			return err
		}
		id = entry.ID
	}

	fmt.Fprintf(a.out, "⏳ Scraping %s via %s...\n", url, a.cfg.CLI.APIBaseURL)
	if _, err := apiClient.StartScrape(id); err != nil {
		if !client.IsConflict(err) {
			return err
		}
		logger.Log("cli: %s is already running on the server, waiting", url)
	}

	// Render this id's result; the server's selection may point elsewhere by now.
	detail, err := apiClient.WaitScrape(ctx, id, remotePollInterval)
	if err != nil {
		return fmt.Errorf("scraping interrupted: %w", err)
	}
	fmt.Fprint(a.out, urls.FormatURLDetail(*detail))
	return nil
}

// scrapeAllRemote starts every scrape on the server, then waits for each.
// Rows already running on the server are waited on rather than restarted.
func (a *App) scrapeAllRemote(ctx context.Context) ([]models.URLRow, error) {
	apiClient, err := a.getClient()
	if err != nil {
		return nil, err
	}

	rows, err := apiClient.ListURLs()
	if err != nil {
		return nil, fmt.Errorf("error fetching URLs: %w", err)
	}

	for _, row := range rows {
		if row.Status == models.StatusRunning {
			continue
		}
		if _, err := apiClient.StartScrape(row.ID); err != nil && !client.IsConflict(err) {
			return nil, err
		}
	}

	for _, row := range rows {
		if _, err := apiClient.WaitScrape(ctx, row.ID, remotePollInterval); err != nil {
			return nil, err
		}
	}

	return apiClient.ListURLs()
}
