package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"smartexpense/expense-cli/internal/dateutils"
)

// NormalizedExpense is a validated expense record. Entries from file uploads
// and manual entry are indistinguishable once normalized; the list they
// accumulate in is append-only, and edits happen by discarding and re-adding.
type NormalizedExpense struct {
	// CategoryID is the 1-based position of the category in the server's
	// category list.
	CategoryID int `yaml:"cate_id" csv:"cate_id"`
	// CategoryName is the lowercase human-readable label.
	CategoryName string `yaml:"category" csv:"category"`
	// Amount is always strictly positive.
	Amount decimal.Decimal `yaml:"amount" csv:"amount"`
	// Date is the canonical calendar date at UTC midnight.
	Date time.Time `yaml:"date" csv:"-"`
}

// DisplayDate renders the date in the DD-MM-YYYY preview form.
func (e NormalizedExpense) DisplayDate() string {
	return dateutils.ToDisplay(e.Date)
}

// SubmitDate renders the date in the YYYY-MM-DD wire form. This is the only
// format the API ever receives.
func (e NormalizedExpense) SubmitDate() string {
	return dateutils.ToISODate(e.Date)
}

// ParseAmount coerces an amount cell into a decimal, accepting numeric cells
// and numeric strings. Validity (amount > 0) is checked by the caller.
func ParseAmount(c Cell) (decimal.Decimal, error) {
	switch c.Kind {
	case CellNumber:
		return decimal.NewFromFloat(c.Number), nil
	case CellText:
		trimmed := strings.TrimSpace(c.Text)
		if trimmed == "" {
			return decimal.Zero, fmt.Errorf("amount is empty")
		}
		d, err := decimal.NewFromString(trimmed)
		if err != nil {
			return decimal.Zero, fmt.Errorf("amount is not a number: %s", trimmed)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("amount cell holds a date")
	}
}
