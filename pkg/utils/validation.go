package utils

import (
	"errors"
	"strings"
)

// ErrEmptyURL is returned when URL input is blank after trimming.
var ErrEmptyURL = errors.New("URL is required")

// ValidateURL trims a URL string, returning the normalized value or
// ErrEmptyURL if nothing is left. Well-formedness is left to the invoker.
func ValidateURL(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", ErrEmptyURL
	}
	return s, nil
}
