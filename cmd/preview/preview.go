// Package preview shows the pending batch before submission.
package preview

import (
	"os"

	"github.com/spf13/cobra"

	"smartexpense/expense-cli/cmd/common"
	"smartexpense/expense-cli/cmd/root"
	"smartexpense/expense-cli/internal/export"
)

var output string

// Cmd represents the preview command
var Cmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the pending expense batch",
	Long:  `Print the expenses staged for submission, with dates in display form.`,
	Run:   previewFunc,
}

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Also write the pending batch to a CSV file")
}

func previewFunc(cmd *cobra.Command, args []string) {
	batch, err := root.BatchStore().Load()
	if err != nil {
		root.Log.Fatalf("Error reading pending batch: %v", err)
	}
	if batch.Len() == 0 {
		root.Log.Info("The pending batch is empty")
		return
	}

	root.Log.Infof("Batch %s holds %d expense(s)", batch.ID, batch.Len())
	common.PrintExpenses(os.Stdout, batch.Entries)

	if output != "" {
		if err := export.WriteExpensesToCSV(batch.Entries, output); err != nil {
			root.Log.Fatalf("Error writing %s: %v", output, err)
		}
		root.Log.Infof("Wrote pending batch to %s", output)
	}
}
