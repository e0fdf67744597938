// Package ingesterror defines the error types produced by the expense upload
// pipeline. Input-rejection errors fail the whole file before any row is
// processed; row errors carry the offending row number so batches can report
// every defect at once.
package ingesterror

import (
	"fmt"
	"strings"
)

// UnsupportedFileTypeError is returned when an upload is neither CSV nor Excel.
type UnsupportedFileTypeError struct {
	FileName string
	MimeType string
}

func (e *UnsupportedFileTypeError) Error() string {
	if e.MimeType != "" {
		return fmt.Sprintf("unsupported file type for %s: %s (only CSV or Excel files are allowed)", e.FileName, e.MimeType)
	}
	return fmt.Sprintf("unsupported file type for %s (only CSV or Excel files are allowed)", e.FileName)
}

// MissingColumnsError is returned when the header row lacks required columns.
type MissingColumnsError struct {
	FileName string
	Columns  []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns in %s: %s", e.FileName, strings.Join(e.Columns, ", "))
}

// EmptyFileError is returned when a sheet contains no data rows.
type EmptyFileError struct {
	FileName string
}

func (e *EmptyFileError) Error() string {
	return fmt.Sprintf("uploaded file is empty: %s", e.FileName)
}

// RowError describes a validation failure on a single spreadsheet row.
// Row numbers are 1-based and count data rows, the header excluded.
type RowError struct {
	Row    int
	Field  string
	Value  string
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: invalid %s '%s': %s", e.Row, e.Field, e.Value, e.Reason)
}

// BatchError aggregates every row error found in one upload. Under the strict
// policy a non-empty BatchError rejects the batch as a whole.
type BatchError struct {
	FileName string
	Rows     []*RowError
}

func (e *BatchError) Error() string {
	msgs := make([]string, len(e.Rows))
	for i, r := range e.Rows {
		msgs[i] = r.Error()
	}
	return fmt.Sprintf("%d invalid row(s) in %s: %s", len(e.Rows), e.FileName, strings.Join(msgs, "; "))
}

// Add appends a row error and returns the receiver for chaining.
func (e *BatchError) Add(row *RowError) *BatchError {
	e.Rows = append(e.Rows, row)
	return e
}

// HasErrors reports whether any row failed validation.
func (e *BatchError) HasErrors() bool {
	return len(e.Rows) > 0
}

// APIError represents a failure reported by the SmartExpense server, either a
// non-2xx status or a {"success": false} envelope.
type APIError struct {
	Endpoint   string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "request failed"
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Endpoint, msg, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Endpoint, msg)
}
