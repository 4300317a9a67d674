package scraper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"web-scraping-tool/pkg/config"
)

func TestNewInvoker(t *testing.T) {
	cfg := config.DefaultConfig()

	inv, err := NewInvoker(cfg)
	require.NoError(t, err)
	mock, ok := inv.(*MockInvoker)
	require.True(t, ok)
	assert.Equal(t, time.Second, mock.Delay)

	cfg.Scraper.Mode = config.ScraperModeRemote
	inv, err = NewInvoker(cfg)
	require.NoError(t, err)
	assert.IsType(t, &ScraperService{}, inv)

	cfg.Scraper.Mode = "browser"
	_, err = NewInvoker(cfg)
	assert.Error(t, err)
}
