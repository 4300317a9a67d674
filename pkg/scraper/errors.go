package scraper

import (
	"context"
	"errors"
	"fmt"
)

// ErrorType categorizes different types of scraper errors
type ErrorType string

const (
	ErrorTypeServiceUnavailable ErrorType = "service_unavailable"
	ErrorTypeTimeout            ErrorType = "timeout"
	ErrorTypeNetwork            ErrorType = "network"
	ErrorTypeParse              ErrorType = "parse"
	ErrorTypeExtraction         ErrorType = "extraction"
	ErrorTypeInvalidURL         ErrorType = "invalid_url"
	ErrorTypeCancelled          ErrorType = "cancelled"
	ErrorTypeUnknown            ErrorType = "unknown"
)

// ScraperError represents a structured error from an invoker
type ScraperError struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error implements the error interface
func (e *ScraperError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *ScraperError) Unwrap() error {
	return e.Cause
}

// IsRetryable returns true if the error is likely to succeed on retry
func (e *ScraperError) IsRetryable() bool {
	switch e.Type {
	case ErrorTypeServiceUnavailable, ErrorTypeNetwork, ErrorTypeTimeout:
		return true
	default:
		return false
	}
}

// UserMessage returns a user-friendly error message
func (e *ScraperError) UserMessage() string {
	switch e.Type {
	case ErrorTypeServiceUnavailable:
		return "Scraper service unavailable. Please check if the service is running."
	case ErrorTypeTimeout:
		return "Scraping timed out. The URL may be slow to load or the service may be busy."
	case ErrorTypeNetwork:
		return fmt.Sprintf("Network error occurred while scraping: %s", e.Message)
	case ErrorTypeParse:
		return "Received a malformed response from the scraper service."
	case ErrorTypeExtraction:
		return fmt.Sprintf("Failed to extract content from URL: %s", e.Message)
	case ErrorTypeInvalidURL:
		return fmt.Sprintf("Invalid URL: %s", e.Message)
	case ErrorTypeCancelled:
		return "Scraping was cancelled."
	default:
		return e.Message
	}
}

// KindOf reports the error kind of err. Context errors are mapped to
// timeout/cancelled; anything unstructured is unknown.
func KindOf(err error) ErrorType {
	if err == nil {
		return ""
	}
	var scraperErr *ScraperError
	if errors.As(err, &scraperErr) {
		return scraperErr.Type
	}
	if ctxErr := fromContext(err); ctxErr != nil {
		return ctxErr.Type
	}
	return ErrorTypeUnknown
}

// Describe returns the kind and a display message for err.
func Describe(err error) (ErrorType, string) {
	if err == nil {
		return "", ""
	}
	var scraperErr *ScraperError
	if errors.As(err, &scraperErr) {
		return scraperErr.Type, scraperErr.UserMessage()
	}
	if ctxErr := fromContext(err); ctxErr != nil {
		return ctxErr.Type, ctxErr.UserMessage()
	}
	return ErrorTypeUnknown, err.Error()
}

// fromContext converts context cancellation into a ScraperError, or returns nil.
func fromContext(err error) *ScraperError {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return newTimeoutError(err)
	case errors.Is(err, context.Canceled):
		return newCancelledError(err)
	}
	return nil
}

// Helper functions to create specific error types
func newServiceUnavailableError(cause error) *ScraperError {
	return &ScraperError{
		Type:    ErrorTypeServiceUnavailable,
		Message: "Service not available",
		Cause:   cause,
	}
}

func newTimeoutError(cause error) *ScraperError {
	return &ScraperError{
		Type:    ErrorTypeTimeout,
		Message: "Request timed out",
		Cause:   cause,
	}
}

func newNetworkError(message string, cause error) *ScraperError {
	return &ScraperError{
		Type:    ErrorTypeNetwork,
		Message: message,
		Cause:   cause,
	}
}

func newParseError(message string, cause error) *ScraperError {
	return &ScraperError{
		Type:    ErrorTypeParse,
		Message: message,
		Cause:   cause,
	}
}

func newExtractionError(message string) *ScraperError {
	return &ScraperError{
		Type:    ErrorTypeExtraction,
		Message: message,
	}
}

func newInvalidURLError(message string, cause error) *ScraperError {
	return &ScraperError{
		Type:    ErrorTypeInvalidURL,
		Message: message,
		Cause:   cause,
	}
}

func newCancelledError(cause error) *ScraperError {
	return &ScraperError{
		Type:    ErrorTypeCancelled,
		Message: "Operation cancelled",
		Cause:   cause,
	}
}
