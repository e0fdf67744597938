// Package upload handles spreadsheet ingestion commands.
package upload

import (
	"os"

	"github.com/spf13/cobra"

	"smartexpense/expense-cli/cmd/common"
	"smartexpense/expense-cli/cmd/root"
	"smartexpense/expense-cli/internal/batchstore"
	"smartexpense/expense-cli/internal/export"
	"smartexpense/expense-cli/internal/ingest"
	"smartexpense/expense-cli/internal/logging"
)

var (
	appendBatch bool
	policy      string
	output      string
	submit      bool
)

// Cmd represents the upload command
var Cmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a CSV or Excel expense sheet",
	Long: `Parse a CSV or Excel expense sheet, validate and normalize its rows
against the server's category list, and stage them as the pending batch.
By default a new upload replaces the pending batch; use --append to add
to it instead.`,
	Args: cobra.ExactArgs(1),
	Run:  uploadFunc,
}

func init() {
	Cmd.Flags().BoolVar(&appendBatch, "append", false, "Append to the pending batch instead of replacing it")
	Cmd.Flags().StringVar(&policy, "policy", "", "Failure policy: strict or partial (overrides config)")
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Also write the normalized rows to a CSV file")
	Cmd.Flags().BoolVar(&submit, "submit", false, "Submit the batch immediately after a successful upload")
}

func uploadFunc(cmd *cobra.Command, args []string) {
	filePath := args[0]
	root.Log.Infof("Uploading expense sheet: %s", filePath)

	pol := root.Policy()
	if policy != "" {
		p, err := ingest.ParsePolicy(policy)
		if err != nil {
			root.Log.Fatalf("%v", err)
		}
		pol = p
	}

	rows, err := ingest.ParseFile(filePath)
	if err != nil {
		root.Log.Fatalf("Error reading %s: %v", filePath, err)
	}

	client := root.Client()
	cat, err := client.FetchCategories(root.Context())
	if err != nil {
		root.Log.Fatalf("Error fetching categories: %v", err)
	}

	normalizer := ingest.NewNormalizer(cat, pol, logging.NewLogrusAdapterFromLogger(root.Log))
	result, err := normalizer.NormalizeRows(filePath, rows)
	if err != nil {
		root.Log.Fatalf("Upload rejected: %v", err)
	}
	if len(result.Dropped) > 0 {
		root.Log.Warnf("Dropped %d invalid row(s)", len(result.Dropped))
	}

	store := root.BatchStore()
	batch, err := stage(store, result)
	if err != nil {
		root.Log.Fatalf("Error saving pending batch: %v", err)
	}
	root.Log.Infof("Staged %d expense(s) in batch %s", batch.Len(), batch.ID)

	common.PrintExpenses(os.Stdout, batch.Entries)

	if output != "" {
		if err := export.WriteExpensesToCSV(batch.Entries, output); err != nil {
			root.Log.Fatalf("Error writing %s: %v", output, err)
		}
		root.Log.Infof("Wrote normalized rows to %s", output)
	}

	if submit {
		sess := root.CurrentSession()
		if err := common.SubmitBatch(root.Context(), client, store, sess, root.Log); err != nil {
			root.Log.Fatalf("Error submitting expenses: %v", err)
		}
	}
}

func stage(store *batchstore.Store, result *ingest.Result) (*batchstore.Batch, error) {
	if appendBatch {
		return store.Append(result.Accepted...)
	}
	return store.Replace(result.Accepted)
}
