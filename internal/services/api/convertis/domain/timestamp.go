package domain

import (
	"strings"
	"time"
)

// TimestampLayout is the wire format of data_ajout
const TimestampLayout = "2006-01-02 15:04:05"

var inputLayouts = []string{
	TimestampLayout,
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// ParseTimestamp reads a date_ajout value; ok is false for unknown layouts
// zone-less layouts are taken as UTC and the result is always UTC
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, l := range inputLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// FormatTimestamp renders t for the wire; nil (a NULL column) stays nil
func FormatTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(TimestampLayout)
	return &s
}
