// Package categories lists the server's expense categories.
package categories

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"smartexpense/expense-cli/cmd/root"
)

// Cmd represents the categories command
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "List the available expense categories",
	Long: `Fetch the category list from the server. Category IDs shown here are
the ones used when matching uploaded rows.`,
	Run: categoriesFunc,
}

func categoriesFunc(cmd *cobra.Command, args []string) {
	cat, err := root.Client().FetchCategories(root.Context())
	if err != nil {
		root.Log.Fatalf("Error fetching categories: %v", err)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME")
	for i, name := range cat.Names() {
		fmt.Fprintf(tw, "%d\t%s\n", i+1, name)
	}
	tw.Flush()
}
