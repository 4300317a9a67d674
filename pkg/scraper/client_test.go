package scraper

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScraperServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/scrape", handler)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestScraperService_Scrape(t *testing.T) {
	srv := newScraperServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var req ScrapeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "https://example.com", req.URL)
		assert.Equal(t, 5000, req.Timeout)

		_ = json.NewEncoder(w).Encode(ScrapeResponse{
			Success: true,
			URL:     req.URL,
			Title:   "Example Domain",
			Text:    "This domain is for use in examples.",
		})
	})

	svc := NewScraperService(srv.URL+"/", 5*time.Second)
	require.NoError(t, svc.CheckHealth(context.Background()))

	content, err := svc.Scrape(context.Background(), "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "Example Domain\n\nThis domain is for use in examples.", content)
}

func TestScraperService_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    ErrorType
	}{
		{
			name: "http error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			want: ErrorTypeNetwork,
		},
		{
			name: "unavailable",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			want: ErrorTypeServiceUnavailable,
		},
		{
			name: "gateway timeout",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusGatewayTimeout)
			},
			want: ErrorTypeTimeout,
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"success": tru`))
			},
			want: ErrorTypeParse,
		},
		{
			name: "service reports failure",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"success": false, "error": "navigation failed"}`))
			},
			want: ErrorTypeExtraction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newScraperServer(t, tt.handler)
			svc := NewScraperService(srv.URL, time.Second)

			_, err := svc.Scrape(context.Background(), "https://example.com")
			require.Error(t, err)
			assert.Equal(t, tt.want, KindOf(err))
		})
	}
}

func TestScraperService_ContextTimeout(t *testing.T) {
	srv := newScraperServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	})
	svc := NewScraperService(srv.URL, time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := svc.Scrape(ctx, "https://example.com")
	assert.Equal(t, ErrorTypeTimeout, KindOf(err))
}

func TestScraperService_Unreachable(t *testing.T) {
	// Unused local port to force a connection error
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	ln.Close()

	svc := NewScraperService("http://"+addr, time.Second)

	_, err = svc.Scrape(context.Background(), "https://example.com")
	require.Error(t, err)
	assert.Equal(t, ErrorTypeServiceUnavailable, KindOf(err))

	assert.Error(t, svc.CheckHealth(context.Background()))
}
