package scraper

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScraperError_Error(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := newServiceUnavailableError(cause)
	assert.Equal(t, "service_unavailable: Service not available (dial tcp: refused)", err.Error())
	assert.ErrorIs(t, err, cause)

	assert.Equal(t, "extraction: empty page", newExtractionError("empty page").Error())
}

func TestScraperError_IsRetryable(t *testing.T) {
	tests := []struct {
		typ  ErrorType
		want bool
	}{
		{ErrorTypeServiceUnavailable, true},
		{ErrorTypeNetwork, true},
		{ErrorTypeTimeout, true},
		{ErrorTypeParse, false},
		{ErrorTypeExtraction, false},
		{ErrorTypeInvalidURL, false},
		{ErrorTypeCancelled, false},
		{ErrorTypeUnknown, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			err := &ScraperError{Type: tt.typ}
			assert.Equal(t, tt.want, err.IsRetryable())
		})
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, ErrorType(""), KindOf(nil))
	assert.Equal(t, ErrorTypeParse, KindOf(fmt.Errorf("wrapped: %w", newParseError("bad", nil))))
	assert.Equal(t, ErrorTypeTimeout, KindOf(context.DeadlineExceeded))
	assert.Equal(t, ErrorTypeCancelled, KindOf(fmt.Errorf("op: %w", context.Canceled)))
	assert.Equal(t, ErrorTypeUnknown, KindOf(errors.New("boom")))
}

func TestDescribe(t *testing.T) {
	kind, msg := Describe(newExtractionError("no article"))
	assert.Equal(t, ErrorTypeExtraction, kind)
	assert.Equal(t, "Failed to extract content from URL: no article", msg)

	kind, msg = Describe(errors.New("plain"))
	assert.Equal(t, ErrorTypeUnknown, kind)
	assert.Equal(t, "plain", msg)

	kind, msg = Describe(nil)
	assert.Empty(t, kind)
	assert.Empty(t, msg)
}
