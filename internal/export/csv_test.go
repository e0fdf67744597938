package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartexpense/expense-cli/internal/models"
)

func sampleEntries() []models.NormalizedExpense {
	return []models.NormalizedExpense{
		{
			CategoryID:   1,
			CategoryName: "food",
			Amount:       decimal.NewFromInt(250),
			Date:         time.Date(2025, time.November, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			CategoryID:   3,
			CategoryName: "rent",
			Amount:       decimal.RequireFromString("1200.50"),
			Date:         time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestWriteExpensesToCSV(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "out", "preview.csv")

	require.NoError(t, WriteExpensesToCSV(sampleEntries(), csvFile))

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "date,category,amount,cate_id", lines[0])
	assert.Equal(t, "05-11-2025,food,250,1", lines[1])
	assert.Equal(t, "30-11-2025,rent,1200.5,3", lines[2])
}

func TestWriteExpensesToCSVNil(t *testing.T) {
	err := WriteExpensesToCSV(nil, filepath.Join(t.TempDir(), "preview.csv"))
	assert.Error(t, err)
}

func TestWriteExpensesToCSVEmpty(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "preview.csv")

	require.NoError(t, WriteExpensesToCSV([]models.NormalizedExpense{}, csvFile))

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)
	assert.Equal(t, "date,category,amount,cate_id", strings.TrimSpace(string(data)))
}
