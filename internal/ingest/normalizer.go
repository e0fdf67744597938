package ingest

import (
	"fmt"
	"strings"
	"time"

	"smartexpense/expense-cli/internal/catalog"
	"smartexpense/expense-cli/internal/dateutils"
	"smartexpense/expense-cli/internal/ingesterror"
	"smartexpense/expense-cli/internal/logging"
	"smartexpense/expense-cli/internal/models"
)

// Policy controls how a batch reacts to invalid rows.
type Policy string

const (
	// PolicyStrict rejects the whole batch when any row is invalid; the
	// error reports every offending row.
	PolicyStrict Policy = "strict"
	// PolicyPartial drops invalid rows, logs each one, and keeps the rest.
	PolicyPartial Policy = "partial"
)

// ParsePolicy validates a policy name from config or a flag.
func ParsePolicy(name string) (Policy, error) {
	switch Policy(strings.ToLower(name)) {
	case PolicyStrict:
		return PolicyStrict, nil
	case PolicyPartial:
		return PolicyPartial, nil
	}
	return "", fmt.Errorf("invalid upload policy: %s (must be 'strict' or 'partial')", name)
}

// Normalizer validates raw rows against the category catalog and produces
// normalized expense records.
type Normalizer struct {
	catalog *catalog.Catalog
	policy  Policy
	logger  logging.Logger
}

// NewNormalizer creates a normalizer bound to one immutable category catalog.
// A nil logger falls back to a default text logger at info level.
func NewNormalizer(cat *catalog.Catalog, policy Policy, logger logging.Logger) *Normalizer {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Normalizer{
		catalog: cat,
		policy:  policy,
		logger:  logger,
	}
}

// Result is the outcome of normalizing one upload. Dropped only carries
// entries under the partial policy; under strict, any invalid row fails the
// whole batch instead.
type Result struct {
	Accepted []models.NormalizedExpense
	Dropped  []*ingesterror.RowError
}

// NormalizeRows validates every raw row, collecting all row errors rather
// than stopping at the first. Row numbers in errors are 1-based over data
// rows, the header excluded.
func (n *Normalizer) NormalizeRows(fileName string, rows []models.RawRow) (*Result, error) {
	result := &Result{}
	batchErr := &ingesterror.BatchError{FileName: fileName}

	for i, row := range rows {
		exp, rowErr := n.normalizeRow(row, i+1)
		if rowErr != nil {
			batchErr.Add(rowErr)
			continue
		}
		result.Accepted = append(result.Accepted, exp)
	}

	if !batchErr.HasErrors() {
		return result, nil
	}

	if n.policy == PolicyStrict {
		return nil, batchErr
	}

	for _, rowErr := range batchErr.Rows {
		n.logger.Warn("Dropping invalid row",
			logging.Field{Key: logging.FieldFile, Value: fileName},
			logging.Field{Key: logging.FieldRow, Value: rowErr.Row},
			logging.Field{Key: logging.FieldReason, Value: rowErr.Reason})
	}
	result.Dropped = batchErr.Rows
	return result, nil
}

// NormalizeManual validates a single manual entry. All three fields are
// required; the category and date go through the same resolution and
// canonicalization as the bulk path, so manual and file-sourced entries are
// indistinguishable once normalized.
func (n *Normalizer) NormalizeManual(dateStr, categoryName, amountStr string) (models.NormalizedExpense, error) {
	if strings.TrimSpace(dateStr) == "" || strings.TrimSpace(categoryName) == "" || strings.TrimSpace(amountStr) == "" {
		return models.NormalizedExpense{}, fmt.Errorf("date, category and amount are all required")
	}

	row := models.RawRow{
		"date":     models.TextCell(dateStr),
		"category": models.TextCell(categoryName),
		"amount":   models.TextCell(amountStr),
	}

	exp, rowErr := n.normalizeRow(row, 1)
	if rowErr != nil {
		return models.NormalizedExpense{}, fmt.Errorf("invalid %s '%s': %s", rowErr.Field, rowErr.Value, rowErr.Reason)
	}
	return exp, nil
}

// normalizeRow checks category, amount and date in that order and reports the
// first violated field.
func (n *Normalizer) normalizeRow(row models.RawRow, rowNum int) (models.NormalizedExpense, *ingesterror.RowError) {
	categoryCell, _ := row.Get("category")
	categoryName := strings.ToLower(strings.TrimSpace(categoryCell.String()))
	if categoryName == "" {
		return models.NormalizedExpense{}, &ingesterror.RowError{
			Row: rowNum, Field: "category", Value: categoryCell.String(), Reason: "category is required",
		}
	}

	categoryID, ok := n.catalog.Resolve(categoryName)
	if !ok {
		return models.NormalizedExpense{}, &ingesterror.RowError{
			Row: rowNum, Field: "category", Value: categoryName, Reason: "unknown category",
		}
	}

	amountCell, _ := row.Get("amount")
	amount, err := models.ParseAmount(amountCell)
	if err != nil {
		return models.NormalizedExpense{}, &ingesterror.RowError{
			Row: rowNum, Field: "amount", Value: amountCell.String(), Reason: err.Error(),
		}
	}
	if !amount.IsPositive() {
		return models.NormalizedExpense{}, &ingesterror.RowError{
			Row: rowNum, Field: "amount", Value: amountCell.String(), Reason: "amount must be positive",
		}
	}

	dateCell, _ := row.Get("date")
	date, err := normalizeDate(dateCell)
	if err != nil {
		return models.NormalizedExpense{}, &ingesterror.RowError{
			Row: rowNum, Field: "date", Value: dateCell.String(), Reason: err.Error(),
		}
	}

	return models.NormalizedExpense{
		CategoryID:   categoryID,
		CategoryName: categoryName,
		Amount:       amount,
		Date:         date,
	}, nil
}

// normalizeDate dispatches on the cell's tag: numeric cells are spreadsheet
// date serials, date cells are used directly, text cells go through the
// strict-then-permissive pattern list.
func normalizeDate(c models.Cell) (time.Time, error) {
	switch c.Kind {
	case models.CellNumber:
		return dateutils.FromSerial(c.Number)
	case models.CellDate:
		return dateutils.Truncate(c.Date), nil
	default:
		return dateutils.ParseDate(c.Text)
	}
}
