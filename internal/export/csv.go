// Package export writes the pending batch to CSV so users can review a
// normalized upload outside the terminal.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"smartexpense/expense-cli/internal/fileutils"
	"smartexpense/expense-cli/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a configured logger for this package.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Delimiter is the output CSV delimiter.
var Delimiter rune = ','

// SetDelimiter allows setting the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// previewRow is the CSV projection of one normalized expense. Dates render
// in the DD-MM-YYYY display form, matching the preview table.
type previewRow struct {
	Date     string `csv:"date"`
	Category string `csv:"category"`
	Amount   string `csv:"amount"`
	CateID   int    `csv:"cate_id"`
}

// WriteExpensesToCSV writes normalized expenses to a CSV file, creating the
// parent directory if needed.
func WriteExpensesToCSV(entries []models.NormalizedExpense, csvFile string) error {
	if entries == nil {
		return fmt.Errorf("cannot write nil expenses to CSV")
	}

	log.WithFields(logrus.Fields{
		"file_path": csvFile,
		"count":     len(entries),
	}).Info("Writing expenses to CSV file")

	file, err := fileutils.CreateFile(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	return writeCSV(entries, file)
}

func writeCSV(entries []models.NormalizedExpense, w io.Writer) error {
	rows := make([]previewRow, len(entries))
	for i, e := range entries {
		rows[i] = previewRow{
			Date:     e.DisplayDate(),
			Category: e.CategoryName,
			Amount:   e.Amount.String(),
			CateID:   e.CategoryID,
		}
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}
