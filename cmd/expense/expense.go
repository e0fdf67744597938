// Package expense manages expenses already stored on the server.
package expense

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"smartexpense/expense-cli/cmd/root"
	"smartexpense/expense-cli/internal/api"
)

var (
	month int
	year  int
	yes   bool
)

// Cmd represents the expense command
var Cmd = &cobra.Command{
	Use:   "expense",
	Short: "Manage expenses stored on the server",
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete stored expenses for a month or a whole year",
	Long: `Delete every stored expense in the given month, or in the whole year when
no month is given. Without --yes the affected rows are only previewed.`,
	Run: deleteFunc,
}

func init() {
	deleteCmd.Flags().IntVarP(&month, "month", "m", 0, "Month to delete (1-12, omit for the whole year)")
	deleteCmd.Flags().IntVarP(&year, "year", "y", time.Now().Year(), "Year to delete from")
	deleteCmd.Flags().BoolVar(&yes, "yes", false, "Actually delete instead of previewing")

	Cmd.AddCommand(deleteCmd)
}

func deleteFunc(cmd *cobra.Command, args []string) {
	if month < 0 || month > 12 {
		root.Log.Fatalf("Invalid month %d: must be 1-12", month)
	}

	sess := root.CurrentSession()
	client := root.Client()

	if !yes {
		expenses, err := client.PreviewDeleteExpenses(root.Context(), sess.UserID, month, year)
		if err != nil {
			root.Log.Fatalf("Error previewing deletion: %v", err)
		}
		if len(expenses) == 0 {
			root.Log.Infof("Nothing to delete for %s", scopeLabel(month, year))
			return
		}

		printRecords(os.Stdout, expenses)
		root.Log.Infof("%d expense(s) would be deleted for %s; re-run with --yes to delete them", len(expenses), scopeLabel(month, year))
		return
	}

	deleted, err := client.DeleteExpenses(root.Context(), sess.UserID, month, year)
	if err != nil {
		root.Log.Fatalf("Error deleting expenses: %v", err)
	}
	root.Log.Infof("Deleted %d expense(s) for %s", deleted, scopeLabel(month, year))
}

func printRecords(w *os.File, expenses []api.ExpenseRecord) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tCATEGORY\tAMOUNT")
	for _, e := range expenses {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.ExpenseDate, e.CategoryName, e.Amount.String())
	}
	tw.Flush()
}

func scopeLabel(month, year int) string {
	if month == 0 {
		return fmt.Sprintf("year %d", year)
	}
	return fmt.Sprintf("%d-%02d", year, month)
}
