package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"web-scraping-tool/pkg/cli/client"
	"web-scraping-tool/pkg/cli/tui"
	"web-scraping-tool/pkg/config"
	"web-scraping-tool/pkg/scraper"
	"web-scraping-tool/pkg/services"
	"web-scraping-tool/pkg/widget"

	tea "github.com/charmbracelet/bubbletea"
)

type App struct {
	cfg     *config.Config
	state   *widget.State
	tracker *services.ScrapeTracker
	client  *client.Client

	// configPath overrides the default config location when saving
	configPath string
	out        io.Writer
}

// NewApp creates the CLI app with a fresh widget session seeded from cfg.
func NewApp(cfg *config.Config) (*App, error) {
	invoker, err := scraper.NewInvoker(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize scraper: %w", err)
	}
	return newApp(cfg, invoker, os.Stdout), nil
}

func newApp(cfg *config.Config, invoker scraper.Invoker, out io.Writer) *App {
	state := widget.New(cfg.URLs.Seed...)
	return &App{
		cfg:     cfg,
		state:   state,
		tracker: services.NewScrapeTracker(state, invoker),
		out:     out,
	}
}

// getClient returns the HTTP client, creating it if necessary
func (a *App) getClient() (*client.Client, error) {
	if a.client != nil {
		return a.client, nil
	}

	if a.cfg.CLI.APIBaseURL == "" {
		return nil, fmt.Errorf("API base URL not configured")
	}

	a.client = client.NewClient(a.cfg.CLI.APIBaseURL, a.cfg.CLI.APIKey)
	return a.client, nil
}

// Run launches the interactive TUI
func (a *App) Run(ctx context.Context) error {
	p := tea.NewProgram(
		tui.NewRootModel(ctx, a.tracker),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
