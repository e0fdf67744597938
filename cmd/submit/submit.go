// Package submit sends the pending batch to the server.
package submit

import (
	"github.com/spf13/cobra"

	"smartexpense/expense-cli/cmd/common"
	"smartexpense/expense-cli/cmd/root"
)

// Cmd represents the submit command
var Cmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit the pending batch in bulk",
	Long: `Send the pending expense batch to the server in a single bulk request.
On success the batch is cleared; on failure it is kept so you can retry.`,
	Run: submitFunc,
}

func submitFunc(cmd *cobra.Command, args []string) {
	sess := root.CurrentSession()
	if err := common.SubmitBatch(root.Context(), root.Client(), root.BatchStore(), sess, root.Log); err != nil {
		root.Log.Fatalf("Error submitting expenses: %v", err)
	}
}
