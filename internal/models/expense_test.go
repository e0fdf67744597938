package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		cell     Cell
		expected string
		wantErr  bool
	}{
		{"Numeric cell", NumberCell(250), "250", false},
		{"Decimal numeric cell", NumberCell(99.95), "99.95", false},
		{"Numeric string", TextCell("1200"), "1200", false},
		{"Numeric string with spaces", TextCell(" 42.50 "), "42.5", false},
		{"Negative number", NumberCell(-10), "-10", false},
		{"Empty string", TextCell(""), "", true},
		{"Non-numeric string", TextCell("lots"), "", true},
		{"Date cell", DateCell(time.Now()), "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			amount, err := ParseAmount(tc.cell)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			expected, err := decimal.NewFromString(tc.expected)
			require.NoError(t, err)
			assert.True(t, expected.Equal(amount), "expected %s, got %s", expected, amount)
		})
	}
}

func TestNormalizedExpenseDateForms(t *testing.T) {
	exp := NormalizedExpense{
		CategoryID:   3,
		CategoryName: "rent",
		Amount:       decimal.NewFromInt(1200),
		Date:         time.Date(2025, time.November, 5, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, "05-11-2025", exp.DisplayDate())
	assert.Equal(t, "2025-11-05", exp.SubmitDate())
}

func TestRawRowGet(t *testing.T) {
	row := RawRow{
		"category": TextCell("Food"),
		"amount":   NumberCell(250),
	}

	c, ok := row.Get("Category")
	assert.True(t, ok)
	assert.Equal(t, "Food", c.Text)

	_, ok = row.Get("date")
	assert.False(t, ok)
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "Food", TextCell("Food").String())
	assert.Equal(t, "250", NumberCell(250).String())
	assert.Equal(t, "2025-11-05", DateCell(time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC)).String())
	assert.True(t, TextCell("   ").IsEmpty())
	assert.False(t, NumberCell(0).IsEmpty())
}
