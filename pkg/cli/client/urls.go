package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"web-scraping-tool/pkg/models"
	"web-scraping-tool/pkg/widget"
)

// ListURLs retrieves all tracked URLs with their status
func (c *Client) ListURLs() ([]models.URLRow, error) {
	var rows []models.URLRow
	if err := c.doGetRequest("/api/v1/urls", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// GetURL retrieves a URL and its latest result
func (c *Client) GetURL(id int) (*models.URLDetail, error) {
	var detail models.URLDetail
	path := fmt.Sprintf("/api/v1/urls/%d", id)
	if err := c.doGetRequest(path, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// AddURL registers a new URL
func (c *Client) AddURL(url string) (*models.URLEntry, error) {
	var created models.URLEntry
	if err := c.doJSONRequest(http.MethodPost, "/api/v1/urls", models.URLCreate{URL: url}, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// StartScrape starts a scrape on the server. It returns once the URL is running.
func (c *Client) StartScrape(id int) (*models.URLRow, error) {
	var row models.URLRow
	path := fmt.Sprintf("/api/v1/urls/%d/scrape", id)
	if err := c.doJSONRequest(http.MethodPost, path, nil, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

// Select points the server's detail view at id
func (c *Client) Select(id int) (*widget.DetailView, error) {
	var view widget.DetailView
	if err := c.doJSONRequest(http.MethodPut, "/api/v1/selection", models.SelectionUpdate{ID: id}, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// GetView retrieves the rendered detail view
func (c *Client) GetView() (*widget.DetailView, error) {
	var view widget.DetailView
	if err := c.doGetRequest("/api/v1/view", &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// WaitScrape polls id until it is no longer running.
func (c *Client) WaitScrape(ctx context.Context, id int, interval time.Duration) (*models.URLDetail, error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		detail, err := c.GetURL(id)
		if err != nil {
			return nil, err
		}
		if detail.Result.Status != models.StatusRunning {
			return detail, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
