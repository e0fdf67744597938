// Package add handles manual expense entry.
package add

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"smartexpense/expense-cli/cmd/common"
	"smartexpense/expense-cli/cmd/root"
	"smartexpense/expense-cli/internal/dateutils"
	"smartexpense/expense-cli/internal/ingest"
	"smartexpense/expense-cli/internal/logging"
)

var (
	date     string
	category string
	amount   string
)

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Add a single expense to the pending batch",
	Long: `Add one manually entered expense. The entry goes through the same
validation as an uploaded row and is appended to the pending batch.`,
	Run: addFunc,
}

func init() {
	Cmd.Flags().StringVarP(&date, "date", "t", "", "Expense date (defaults to today)")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Category name")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "Expense amount")
	Cmd.MarkFlagRequired("category")
	Cmd.MarkFlagRequired("amount")
}

func addFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Add expense command called")

	if date == "" {
		date = dateutils.ToDisplay(time.Now())
	}

	client := root.Client()
	cat, err := client.FetchCategories(root.Context())
	if err != nil {
		root.Log.Fatalf("Error fetching categories: %v", err)
	}

	normalizer := ingest.NewNormalizer(cat, ingest.PolicyStrict, logging.NewLogrusAdapterFromLogger(root.Log))
	exp, err := normalizer.NormalizeManual(date, category, amount)
	if err != nil {
		root.Log.Fatalf("Invalid expense: %v", err)
	}

	batch, err := root.BatchStore().Append(exp)
	if err != nil {
		root.Log.Fatalf("Error saving pending batch: %v", err)
	}

	root.Log.Infof("Added %s %s (%s), batch now holds %d expense(s)",
		exp.CategoryName, exp.Amount.String(), exp.DisplayDate(), batch.Len())
	common.PrintExpenses(os.Stdout, batch.Entries)
}
