package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"web-scraping-tool/pkg/cli"
	"web-scraping-tool/pkg/cli/urls"
	"web-scraping-tool/pkg/config"
	"web-scraping-tool/pkg/logger"
)

func main() {
	var (
		listMode      = flag.Bool("list", false, "List all tracked URLs")
		addURL        = flag.String("add", "", "Add a URL to track")
		scrapeURL     = flag.String("scrape", "", "Scrape a URL and show its content")
		scrapeAllMode = flag.Bool("scrape-all", false, "Scrape every tracked URL")
		remote        = flag.Bool("remote", false, "Run URL commands against the API server")

		// Config commands
		configShow = flag.Bool("config-show", false, "Show current configuration")
		configSet  = flag.String("config-set", "", "Set a config value (format: section.key=value)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		exitOnError(err, "failed to load config")
	}

	// The TUI owns the terminal, so logs go to a file
	if logPath, err := logger.InitFile(cfg.CLI.LogDir); err != nil {
		fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
	} else {
		defer logger.CloseLog()
		logger.Log("CLI started, logging to %s", logPath)
	}

	app, err := cli.NewApp(cfg)
	if err != nil {
		exitOnError(err, "failed to initialize")
	}

	// Handle config commands first
	if *configShow {
		if err := app.ShowConfig(); err != nil {
			exitOnError(err, "failed to show config")
		}
		return
	}
	if *configSet != "" {
		if err := app.SetConfig(*configSet); err != nil {
			exitOnError(err, "failed to set config")
		}
		fmt.Println("Configuration updated successfully")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch {
	case *listMode:
		err = app.ListURLs(*remote)
	case *addURL != "":
		err = app.AddURL(*addURL, *remote)
	case *scrapeURL != "":
		err = app.ScrapeURL(ctx, *scrapeURL, *remote)
	case *scrapeAllMode:
		err = app.ScrapeAll(ctx, *remote)
	default:
		// Interactive TUI mode
		err = app.Run(ctx)
	}

	if err != nil {
		stop()
		exitOnError(err, "command failed")
	}
}

// exitOnError logs err, prints it to stderr and exits. os.Exit skips deferred
// calls, so the log file is closed here.
func exitOnError(err error, msg string) {
	logger.LogError(err, "%s", msg)
	urls.WriteToStderr(urls.FormatErrorMessage(fmt.Errorf("%s: %w", msg, err)))
	logger.CloseLog()
	os.Exit(1)
}
