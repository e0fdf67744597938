// Package recommend shows the server's category recommendations.
package recommend

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"smartexpense/expense-cli/cmd/root"
)

var year int

// Cmd represents the recommend command
var Cmd = &cobra.Command{
	Use:   "recommend",
	Short: "Show recommended spending categories",
	Long:  `Show the categories the server suggests cutting back on, based on past spending.`,
	Run:   recommendFunc,
}

func init() {
	Cmd.Flags().IntVarP(&year, "year", "y", time.Now().Year(), "Year to analyze")
}

func recommendFunc(cmd *cobra.Command, args []string) {
	sess := root.CurrentSession()

	names, err := root.Client().RecommendedCategories(root.Context(), sess.UserID, year)
	if err != nil {
		root.Log.Fatalf("Error fetching recommendations: %v", err)
	}
	if len(names) == 0 {
		root.Log.Info("No recommendations yet, add more expense history first")
		return
	}

	root.Log.Infof("Categories worth watching in %d:", year)
	for _, name := range names {
		fmt.Printf("  - %s\n", name)
	}
}
