// Package clear discards the pending expense batch.
package clear

import (
	"github.com/spf13/cobra"

	"smartexpense/expense-cli/cmd/root"
)

// Cmd represents the clear command
var Cmd = &cobra.Command{
	Use:   "clear",
	Short: "Discard the pending batch",
	Long:  `Discard all staged expenses without submitting them.`,
	Run:   clearFunc,
}

func clearFunc(cmd *cobra.Command, args []string) {
	store := root.BatchStore()

	batch, err := store.Load()
	if err != nil {
		root.Log.Fatalf("Error reading pending batch: %v", err)
	}
	if batch.Len() == 0 {
		root.Log.Info("The pending batch is already empty")
		return
	}

	if err := store.Clear(); err != nil {
		root.Log.Fatalf("Error clearing pending batch: %v", err)
	}
	root.Log.Infof("Discarded %d staged expense(s)", batch.Len())
}
