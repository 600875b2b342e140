package timeparse

import (
	"strings"
	"time"

	"meter-reading-api/internal/pkg/errs"
)

// Accepted layouts, most specific first. Inputs without a zone are read as UTC.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Parse reads a measurement timestamp in any of the supported ISO-8601 shapes.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errs.New("empty timestamp")
	}

	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, errs.Wrapf(lastErr, "failed to parse timestamp %q", s)
}

func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}
