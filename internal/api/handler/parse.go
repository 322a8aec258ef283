package handler

import (
	"errors"
	"time"
)

var errBadDate = errors.New("unrecognized date format")

// parseDateTime accepts RFC 3339 timestamps and plain ISO dates.
func parseDateTime(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errBadDate
}

// parseDatePtr parses an optional ISO date; nil stays nil.
func parseDatePtr(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := parseDateTime(*raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
