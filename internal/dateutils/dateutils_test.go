package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name       string
		dateStr    string
		expectedOk bool
		expectedY  int
		expectedM  time.Month
		expectedD  int
	}{
		{"Day-month-year", "05-11-2025", true, 2025, time.November, 5},
		{"US slash format", "11/05/2025", true, 2025, time.November, 5},
		{"ISO format", "2025-11-05", true, 2025, time.November, 5},
		{"Fallback European dots", "05.11.2025", true, 2025, time.November, 5},
		{"Fallback month name", "5 November 2025", true, 2025, time.November, 5},
		{"Fallback timestamp", "2025-11-05 14:30:00", true, 2025, time.November, 5},
		{"Padded whitespace", "  05-11-2025  ", true, 2025, time.November, 5},
		{"Empty string", "", false, 0, 0, 0},
		{"Garbage", "bad-date", false, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, err := ParseDate(tc.dateStr)

			if tc.expectedOk {
				require.NoError(t, err)
				assert.Equal(t, tc.expectedY, date.Year())
				assert.Equal(t, tc.expectedM, date.Month())
				assert.Equal(t, tc.expectedD, date.Day())
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestParseDateFirstMatchWins(t *testing.T) {
	// 05-11-2025 is ambiguous; the strict list tries DD-MM-YYYY first.
	date, err := ParseDate("05-11-2025")
	require.NoError(t, err)
	assert.Equal(t, time.November, date.Month())
	assert.Equal(t, 5, date.Day())
}

func TestFromSerial(t *testing.T) {
	tests := []struct {
		name     string
		serial   float64
		expected string
	}{
		// Serial 61 lands on 1900-03-01 once the phantom leap day is corrected.
		{"Early serial", 61, "1900-03-01"},
		{"Modern serial", 45966, "2025-11-05"},
		{"Fractional part ignored", 45966.75, "2025-11-05"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, err := FromSerial(tc.serial)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, ToISODate(date))
		})
	}
}

func TestFromSerialRejectsNonPositive(t *testing.T) {
	_, err := FromSerial(0)
	assert.Error(t, err)

	_, err = FromSerial(-3)
	assert.Error(t, err)
}

func TestSerialAndStringRoundTrip(t *testing.T) {
	// A serial and a textual date naming the same day must reformat to the
	// identical ISO value before submission.
	fromSerial, err := FromSerial(45966)
	require.NoError(t, err)

	fromString, err := ParseDate("05-11-2025")
	require.NoError(t, err)

	assert.Equal(t, ToISODate(fromString), ToISODate(fromSerial))
}

func TestFormatting(t *testing.T) {
	date := time.Date(2025, time.November, 5, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, "05-11-2025", ToDisplay(date))
	assert.Equal(t, "2025-11-05", ToISODate(date))

	assert.Equal(t, "", ToDisplay(time.Time{}))
	assert.Equal(t, "", ToISODate(time.Time{}))
}

func TestTruncate(t *testing.T) {
	date := time.Date(2025, time.November, 5, 23, 59, 59, 0, time.Local)
	truncated := Truncate(date)

	assert.Equal(t, time.UTC, truncated.Location())
	assert.Equal(t, 0, truncated.Hour())
	assert.Equal(t, 5, truncated.Day())
}
