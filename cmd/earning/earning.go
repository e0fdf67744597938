// Package earning handles income recording and lookup.
package earning

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"smartexpense/expense-cli/cmd/root"
	"smartexpense/expense-cli/internal/dateutils"
)

var (
	amount   string
	date     string
	delMonth int
	delYear  int
	yes      bool
)

// Cmd represents the earning command
var Cmd = &cobra.Command{
	Use:   "earning",
	Short: "Record and inspect earnings",
	Long:  `Record a monthly earning or show the most recent one.`,
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an earning",
	Run:   addFunc,
}

var latestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Show the most recent earning",
	Run:   latestFunc,
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete earnings for a month or a whole year",
	Long: `Delete every earning in the given month, or in the whole year when no
month is given. Without --yes the affected rows are only previewed.`,
	Run: deleteFunc,
}

func init() {
	addCmd.Flags().StringVarP(&amount, "amount", "a", "", "Earning amount")
	addCmd.Flags().StringVarP(&date, "date", "t", "", "Earning date (defaults to today)")
	addCmd.MarkFlagRequired("amount")

	deleteCmd.Flags().IntVarP(&delMonth, "month", "m", 0, "Month to delete (1-12, omit for the whole year)")
	deleteCmd.Flags().IntVarP(&delYear, "year", "y", time.Now().Year(), "Year to delete from")
	deleteCmd.Flags().BoolVar(&yes, "yes", false, "Actually delete instead of previewing")

	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(latestCmd)
	Cmd.AddCommand(deleteCmd)
}

// parseEarningAmount accepts only strictly positive numeric amounts, matching
// the rule applied to expense rows.
func parseEarningAmount(s string) (decimal.Decimal, error) {
	amt, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("earning amount is not a number: %s", s)
	}
	if !amt.IsPositive() {
		return decimal.Zero, fmt.Errorf("earning amount must be positive: %s", s)
	}
	return amt, nil
}

func addFunc(cmd *cobra.Command, args []string) {
	sess := root.CurrentSession()

	amt, err := parseEarningAmount(amount)
	if err != nil {
		root.Log.Fatalf("%v", err)
	}

	when := time.Now()
	if date != "" {
		when, err = dateutils.ParseDate(date)
		if err != nil {
			root.Log.Fatalf("Invalid earning date '%s': %v", date, err)
		}
	}

	earning, err := root.Client().AddEarning(root.Context(), sess.UserID, amt.String(), dateutils.ToISODate(when))
	if err != nil {
		root.Log.Fatalf("Error recording earning: %v", err)
	}

	root.Log.Infof("Recorded earning %s on %s", earning.Amount.String(), earning.EarningDate)
}

func latestFunc(cmd *cobra.Command, args []string) {
	sess := root.CurrentSession()

	earning, err := root.Client().LatestEarning(root.Context(), sess.UserID)
	if err != nil {
		root.Log.Fatalf("Error fetching latest earning: %v", err)
	}

	root.Log.Infof("Latest earning: %s on %s", earning.Amount.String(), earning.EarningDate)
}

func deleteFunc(cmd *cobra.Command, args []string) {
	if delMonth < 0 || delMonth > 12 {
		root.Log.Fatalf("Invalid month %d: must be 1-12", delMonth)
	}

	sess := root.CurrentSession()
	client := root.Client()

	if !yes {
		earnings, err := client.PreviewDeleteEarnings(root.Context(), sess.UserID, delMonth, delYear)
		if err != nil {
			root.Log.Fatalf("Error previewing deletion: %v", err)
		}
		if len(earnings) == 0 {
			root.Log.Infof("Nothing to delete for %s", scopeLabel(delMonth, delYear))
			return
		}

		for _, e := range earnings {
			fmt.Printf("  %s  %s\n", e.EarningDate, e.Amount.String())
		}
		root.Log.Infof("%d earning(s) would be deleted for %s; re-run with --yes to delete them", len(earnings), scopeLabel(delMonth, delYear))
		return
	}

	deleted, err := client.DeleteEarnings(root.Context(), sess.UserID, delMonth, delYear)
	if err != nil {
		root.Log.Fatalf("Error deleting earnings: %v", err)
	}
	root.Log.Infof("Deleted %d earning(s) for %s", deleted, scopeLabel(delMonth, delYear))
}

func scopeLabel(month, year int) string {
	if month == 0 {
		return fmt.Sprintf("year %d", year)
	}
	return fmt.Sprintf("%d-%02d", year, month)
}
