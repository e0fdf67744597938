// Package summary shows server-side dashboard figures.
package summary

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"smartexpense/expense-cli/cmd/root"
)

var (
	year  int
	month int
)

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Show monthly earnings and expense totals",
	Long: `Show the server-computed monthly summary for a year. With --month,
list the individual expenses stored for that month instead.`,
	Run: summaryFunc,
}

func init() {
	Cmd.Flags().IntVarP(&year, "year", "y", time.Now().Year(), "Year to summarize")
	Cmd.Flags().IntVarP(&month, "month", "m", 0, "List expenses for this month (1-12)")
}

func summaryFunc(cmd *cobra.Command, args []string) {
	sess := root.CurrentSession()

	if month != 0 {
		listMonth(sess.UserID)
		return
	}

	rows, err := root.Client().Summary(root.Context(), sess.UserID, year)
	if err != nil {
		root.Log.Fatalf("Error fetching summary: %v", err)
	}
	if len(rows) == 0 {
		root.Log.Infof("No activity recorded for %d", year)
		return
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MONTH\tEARNING\tEXPENSES\tCUM. EARNING\tCUM. EXPENSES")
	for _, row := range rows {
		fmt.Fprintf(tw, "%d-%02d\t%.2f\t%.2f\t%.2f\t%.2f\n",
			row.Year, row.Month, row.TotalEarning, row.TotalExpenses,
			row.CumulativeEarning, row.CumulativeExpenses)
	}
	tw.Flush()
}

func listMonth(userID int) {
	if month < 1 || month > 12 {
		root.Log.Fatalf("Invalid month %d: must be 1-12", month)
	}

	expenses, err := root.Client().ExpensesByMonth(root.Context(), userID, month, year)
	if err != nil {
		root.Log.Fatalf("Error fetching expenses: %v", err)
	}
	if len(expenses) == 0 {
		root.Log.Infof("No expenses recorded for %d-%02d", year, month)
		return
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tCATEGORY\tAMOUNT")
	for _, e := range expenses {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.ExpenseDate, e.CategoryName, e.Amount.String())
	}
	tw.Flush()
}
