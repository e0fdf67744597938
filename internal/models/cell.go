// Package models defines the data types flowing through the expense upload
// pipeline, from untrusted spreadsheet cells to normalized records ready for
// bulk submission.
package models

import (
	"fmt"
	"strings"
	"time"
)

// CellKind tags the representation of a parsed spreadsheet cell.
type CellKind int

const (
	// CellText is a plain string cell.
	CellText CellKind = iota
	// CellNumber is a numeric cell, including spreadsheet date serials.
	CellNumber
	// CellDate is a cell the sheet reader already resolved to a calendar date.
	CellDate
)

// Cell is a tagged variant for one spreadsheet cell. Downstream code
// dispatches on Kind instead of inspecting dynamic types.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
	Date   time.Time
}

// TextCell wraps a string value.
func TextCell(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

// NumberCell wraps a numeric value.
func NumberCell(f float64) Cell {
	return Cell{Kind: CellNumber, Number: f}
}

// DateCell wraps an already-resolved calendar date.
func DateCell(t time.Time) Cell {
	return Cell{Kind: CellDate, Date: t}
}

// IsEmpty reports whether a text cell holds only whitespace.
func (c Cell) IsEmpty() bool {
	return c.Kind == CellText && strings.TrimSpace(c.Text) == ""
}

// String renders the raw cell value for error messages and logs.
func (c Cell) String() string {
	switch c.Kind {
	case CellNumber:
		return fmt.Sprintf("%v", c.Number)
	case CellDate:
		return c.Date.Format("2006-01-02")
	default:
		return c.Text
	}
}

// RawRow is an unvalidated record parsed from an uploaded file. Keys are the
// column headers, lowercased at parse time; values keep their source cell
// representation. This is untrusted input with no invariants.
type RawRow map[string]Cell

// Get looks up a column by its case-insensitive header name.
func (r RawRow) Get(column string) (Cell, bool) {
	c, ok := r[strings.ToLower(column)]
	return c, ok
}
