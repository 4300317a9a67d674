package scraper

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"
)

// ScraperService is an Invoker backed by an external scraper service.
// Fetching and extraction happen in that service; this client only relays.
type ScraperService struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
}

func NewScraperService(baseURL string, timeout time.Duration) *ScraperService {
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &ScraperService{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		timeout: timeout,
		client: &http.Client{
			// Leave headroom over the per-scrape timeout sent to the service.
			Timeout: timeout + 5*time.Second,
		},
	}
}

// CheckHealth verifies the service is available
func (s *ScraperService) CheckHealth(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/health", nil)
	if err != nil {
		return newInvalidURLError("bad scraper base URL", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return classifyTransportError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return newServiceUnavailableError(fmt.Errorf("service unhealthy: status %d", resp.StatusCode))
	}

	return nil
}

// Scrape implements Invoker by asking the service to scrape url.
func (s *ScraperService) Scrape(ctx context.Context, url string) (string, error) {
	result, err := s.ScrapeResponse(ctx, url)
	if err != nil {
		return "", err
	}
	return result.Content(), nil
}

// ScrapeResponse scrapes a single URL and returns the raw service response.
func (s *ScraperService) ScrapeResponse(ctx context.Context, url string) (*ScrapeResponse, error) {
	reqBody := ScrapeRequest{
		URL:     url,
		Timeout: int(s.timeout / time.Millisecond),
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/scrape", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, newInvalidURLError("bad scraper base URL", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newNetworkError("failed to read response", err)
	}

	switch {
	case resp.StatusCode == http.StatusServiceUnavailable:
		return nil, newServiceUnavailableError(fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	case resp.StatusCode == http.StatusGatewayTimeout:
		return nil, newTimeoutError(fmt.Errorf("status %d", resp.StatusCode))
	case resp.StatusCode != http.StatusOK:
		return nil, newNetworkError(
			fmt.Sprintf("scraper service error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(body))),
			nil,
		)
	}

	var result ScrapeResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, newParseError("failed to decode response", err)
	}

	if !result.Success {
		msg := result.Error
		if msg == "" {
			msg = "scraper reported failure"
		}
		return nil, newExtractionError(msg)
	}

	return &result, nil
}

// classifyTransportError maps an http.Client error to a ScraperError.
func classifyTransportError(ctx context.Context, err error) *ScraperError {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fromContext(ctxErr)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return newTimeoutError(err)
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return newServiceUnavailableError(err)
	}

	return newNetworkError("failed to call scraper service", err)
}
