// Package ingest implements the expense upload pipeline: spreadsheet
// decoding into raw rows, per-row validation and normalization, and the
// batch failure policy.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"smartexpense/expense-cli/internal/ingesterror"
	"smartexpense/expense-cli/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a configured logger for this package.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// FileType identifies an accepted upload format.
type FileType string

const (
	// FileTypeCSV is a comma-separated values file.
	FileTypeCSV FileType = "csv"
	// FileTypeExcel is a legacy or modern Excel workbook.
	FileTypeExcel FileType = "excel"
)

// MIME types accepted by the upload surface, matching the file input of the
// expense-entry page.
const (
	mimeCSV      = "text/csv"
	mimeXLS      = "application/vnd.ms-excel"
	mimeXLSX     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimeCSVExcel = "application/csv"
)

// RequiredColumns are the headers every upload must carry, checked
// case-insensitively.
var RequiredColumns = []string{"category", "amount", "date"}

// DetectFileType classifies an upload by declared MIME type, falling back to
// the file extension when no type is declared. Anything outside the accepted
// set is rejected before any bytes are parsed.
func DetectFileType(fileName, mimeType string) (FileType, error) {
	switch mimeType {
	case mimeCSV, mimeCSVExcel:
		return FileTypeCSV, nil
	case mimeXLS, mimeXLSX:
		return FileTypeExcel, nil
	case "":
		switch strings.ToLower(filepath.Ext(fileName)) {
		case ".csv":
			return FileTypeCSV, nil
		case ".xls", ".xlsx":
			return FileTypeExcel, nil
		}
	}
	return "", &ingesterror.UnsupportedFileTypeError{FileName: fileName, MimeType: mimeType}
}

// ParseFile reads a spreadsheet from disk and converts it to raw rows.
func ParseFile(filePath string) ([]models.RawRow, error) {
	fileType, err := DetectFileType(filePath, "")
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	return Parse(file, filepath.Base(filePath), fileType)
}

// Parse converts spreadsheet bytes into ordered raw rows. The first sheet row
// is the header row; required columns are verified before any data row is
// produced, and a sheet with zero data rows is rejected outright.
func Parse(r io.Reader, fileName string, fileType FileType) ([]models.RawRow, error) {
	log.WithFields(logrus.Fields{
		"file_path": fileName,
		"file_type": string(fileType),
	}).Info("Parsing expense sheet")

	var records [][]string
	var err error

	switch fileType {
	case FileTypeCSV:
		records, err = readCSV(r)
	case FileTypeExcel:
		records, err = readExcel(r)
	default:
		return nil, &ingesterror.UnsupportedFileTypeError{FileName: fileName}
	}
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", fileName, err)
	}

	if len(records) == 0 || len(records) == 1 && isBlankRecord(records[0]) {
		return nil, &ingesterror.EmptyFileError{FileName: fileName}
	}

	headers := normalizeHeaders(records[0])
	if missing := missingColumns(headers); len(missing) > 0 {
		return nil, &ingesterror.MissingColumnsError{FileName: fileName, Columns: missing}
	}

	rows := make([]models.RawRow, 0, len(records)-1)
	for _, record := range records[1:] {
		if isBlankRecord(record) {
			continue
		}
		row := make(models.RawRow, len(headers))
		for i, header := range headers {
			if header == "" || i >= len(record) {
				continue
			}
			row[header] = toCell(record[i])
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, &ingesterror.EmptyFileError{FileName: fileName}
	}

	log.WithField("count", len(rows)).Info("Parsed expense sheet")
	return rows, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV: %w", err)
	}
	return records, nil
}

// readExcel opens a workbook and reads the first sheet with raw cell values,
// so date cells come back as their numeric serials instead of a
// locale-formatted rendering.
func readExcel(r io.Reader) ([][]string, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid Excel workbook: %w", err)
	}
	defer func() {
		if err := workbook.Close(); err != nil {
			log.WithError(err).Warn("Failed to close workbook")
		}
	}()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := workbook.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}

// toCell preserves the source cell representation: numeric values, date
// serials included, stay numeric.
func toCell(value string) models.Cell {
	trimmed := strings.TrimSpace(value)
	if trimmed != "" {
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return models.NumberCell(f)
		}
	}
	return models.TextCell(value)
}

func normalizeHeaders(record []string) []string {
	headers := make([]string, len(record))
	for i, h := range record {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}
	return headers
}

func missingColumns(headers []string) []string {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}

	var missing []string
	for _, required := range RequiredColumns {
		if !present[required] {
			missing = append(missing, required)
		}
	}
	return missing
}

func isBlankRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
