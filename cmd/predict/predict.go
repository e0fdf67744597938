// Package predict shows the server's expense predictions.
package predict

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"smartexpense/expense-cli/cmd/root"
	"smartexpense/expense-cli/internal/api"
)

var year int

// Cmd represents the predict command
var Cmd = &cobra.Command{
	Use:   "predict",
	Short: "Show predicted expenses per month",
	Long:  `Show the server's per-month expense predictions alongside recorded totals.`,
	Run:   predictFunc,
}

func init() {
	Cmd.Flags().IntVarP(&year, "year", "y", time.Now().Year(), "Year to predict")
}

func predictFunc(cmd *cobra.Command, args []string) {
	sess := root.CurrentSession()

	prediction, err := root.Client().PredictedExpenses(root.Context(), sess.UserID, year)
	if err != nil {
		root.Log.Fatalf("Error fetching predictions: %v", err)
	}

	root.Log.Infof("Predicted expenses for %d", prediction.Year)
	renderPrediction(os.Stdout, prediction)
}

// renderPrediction prints one row per calendar month. The recorded column is
// keyed by month number and may be sparse; predictions always cover all
// twelve months, indexed by month number minus one.
func renderPrediction(w io.Writer, prediction *api.Prediction) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MONTH\tRECORDED\tPREDICTED")

	for month := 1; month <= 12; month++ {
		recorded := "-"
		if v, ok := prediction.Expenses[strconv.Itoa(month)]; ok {
			recorded = fmt.Sprintf("%.2f", v)
		}
		predicted := "-"
		if month-1 < len(prediction.PredictedExpenses) {
			predicted = fmt.Sprintf("%.2f", prediction.PredictedExpenses[month-1])
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", month, recorded, predicted)
	}
	tw.Flush()
}
