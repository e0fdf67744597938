// Package dateutils normalizes the date representations found in uploaded
// expense sheets. Spreadsheet tools serialize dates inconsistently, so parsing
// is liberal on input; output is always one canonical form.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date format constants used throughout the application
const (
	// DateLayoutISO is the wire format sent to the API (YYYY-MM-DD).
	DateLayoutISO = "2006-01-02"
	// DateLayoutDisplay is the preview format shown to users (DD-MM-YYYY).
	DateLayoutDisplay = "02-01-2006"
	// DateLayoutUS is the US slash format (MM/DD/YYYY).
	DateLayoutUS = "01/02/2006"
)

// StrictFormats is the fixed pattern list accepted for textual date cells,
// tried in order with the first match winning.
var StrictFormats = []string{
	DateLayoutDisplay, // DD-MM-YYYY
	DateLayoutUS,      // MM/DD/YYYY
	DateLayoutISO,     // YYYY-MM-DD
}

// FallbackFormats is the permissive list tried when no strict pattern matches.
var FallbackFormats = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"02/01/2006",
	"02.01.2006",
	"2006/01/02",
	"2.1.2006",
	"2-Jan-2006",
	"02 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 January 2006",
}

// serialEpoch is day zero of the 1900 date system used by spreadsheet files.
var serialEpoch = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

var spaceRe = regexp.MustCompile(`\s+`)

// CleanDateString trims and collapses whitespace in a raw date cell.
func CleanDateString(dateStr string) string {
	return spaceRe.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// ParseDate parses a textual date cell. Strict patterns are tried first; if
// none match, the permissive fallback list is attempted.
func ParseDate(dateStr string) (time.Time, error) {
	cleaned := CleanDateString(dateStr)
	if cleaned == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}

	for _, format := range StrictFormats {
		if t, err := time.Parse(format, cleaned); err == nil {
			return Truncate(t), nil
		}
	}

	for _, format := range FallbackFormats {
		if t, err := time.Parse(format, cleaned); err == nil {
			return Truncate(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// FromSerial converts a spreadsheet date serial to a calendar date.
// The serial counts days from 1900-01-01; two days are subtracted to absorb
// the 1900 leap-year defect baked into that numbering scheme.
func FromSerial(serial float64) (time.Time, error) {
	days := int(serial)
	if days <= 0 {
		return time.Time{}, fmt.Errorf("invalid date serial: %v", serial)
	}
	return serialEpoch.AddDate(0, 0, days-2), nil
}

// Truncate drops the time-of-day component, pinning the date to UTC midnight.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ToDisplay formats a date as DD-MM-YYYY for previews.
func ToDisplay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayoutDisplay)
}

// ToISODate formats a date as YYYY-MM-DD for network submission.
func ToISODate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayoutISO)
}
