package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"web-scraping-tool/pkg/models"
	"web-scraping-tool/pkg/services"
	"web-scraping-tool/pkg/utils"
	"web-scraping-tool/pkg/widget"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// HealthCheck reports that the server is up
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListURLs lists all tracked URLs with their status
func ListURLs(tracker *services.ScrapeTracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, tracker.State().Rows())
	}
}

// AddURL registers a new URL
func AddURL(tracker *services.ScrapeTracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.URLCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			// A missing url field fails the required tag; anything else is a bad body.
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				c.JSON(http.StatusBadRequest, gin.H{"error": utils.ErrEmptyURL.Error()})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		entry, err := tracker.State().Add(req.URL)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, entry)
	}
}

// GetURL returns a single URL and its latest result
func GetURL(tracker *services.ScrapeTracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		state := tracker.State()
		entry, found := state.Lookup(id)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": widget.ErrURLNotFound.Error()})
			return
		}

		result, found := state.Result(id)
		if !found {
			result = models.ScrapeResult{Status: models.StatusNotRun}
		}

		c.JSON(http.StatusOK, models.URLDetail{URLEntry: entry, Result: result})
	}
}

// StartScrape kicks off a scrape for a URL. The scrape outlives the request.
func StartScrape(ctx context.Context, tracker *services.ScrapeTracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		// Same guard the TUI applies: a running scrape can't be triggered again.
		task, err := tracker.TryStartScrape(ctx, id)
		if err != nil {
			switch {
			case errors.Is(err, widget.ErrURLNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": widget.ErrURLNotFound.Error()})
				return
			case errors.Is(err, widget.ErrScrapeRunning):
				c.JSON(http.StatusConflict, gin.H{"error": widget.ErrScrapeRunning.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusAccepted, models.URLRow{
			URLEntry: models.URLEntry{ID: task.ID, URL: task.URL},
			Status:   models.StatusRunning,
		})
	}
}

// Select sets the URL shown by the detail view
func Select(tracker *services.ScrapeTracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SelectionUpdate
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		state := tracker.State()
		state.Select(req.ID)
		c.JSON(http.StatusOK, state.Render())
	}
}

// GetView renders the detail view for the current selection
func GetView(tracker *services.ScrapeTracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, tracker.State().Render())
	}
}

func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid URL ID"})
		return 0, false
	}
	return id, true
}
