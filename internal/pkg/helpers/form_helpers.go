package helpers

import (
	"strconv"
	"strings"
	"time"
)

// The application form submits every field as a string; empty strings mean
// "not filled in" and must be stored as NULL, never as zero values.

// NullableInt parses s into an int pointer, mapping empty input to nil.
// A non-empty, non-numeric value returns ok=false.
func NullableInt(s string) (*int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, false
	}
	return &n, true
}

// NullableDate parses a YYYY-MM-DD string into a time pointer, mapping
// empty input to nil. A non-empty, malformed value returns ok=false.
func NullableDate(s string) (*time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, false
	}
	return &t, true
}

// TrimmedOrNil returns nil when the pointed-to string is empty after
// trimming, otherwise a pointer to the trimmed value.
func TrimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
