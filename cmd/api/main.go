package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"web-scraping-tool/pkg/api"
	"web-scraping-tool/pkg/config"
	"web-scraping-tool/pkg/logger"
	"web-scraping-tool/pkg/scraper"
	"web-scraping-tool/pkg/services"
	"web-scraping-tool/pkg/widget"
)

func main() {
	logger.InitConsole(zerolog.InfoLevel)
	log := logger.NewLogger("main")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	invoker, err := scraper.NewInvoker(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize scraper")
	}
	if svc, ok := invoker.(*scraper.ScraperService); ok {
		checkCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := svc.CheckHealth(checkCtx); err != nil {
			log.Warn().Err(err).Str("base_url", cfg.Scraper.BaseURL).Msg("scraper service not reachable, scrapes will fail until it is up")
		}
		cancel()
	}

	// Scrapes outlive their requests but stop with the server
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	state := widget.New(cfg.URLs.Seed...)
	tracker := services.NewScrapeTracker(state, invoker)

	gin.SetMode(gin.ReleaseMode)
	router := api.NewRouter(ctx, tracker, cfg)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", srv.Addr).Str("scraper_mode", cfg.Scraper.Mode).Int("urls", len(state.List())).Msg("API server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()

	log.Info().Msg("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}
