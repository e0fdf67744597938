// Package profile shows the logged-in user's account details.
package profile

import (
	"fmt"

	"github.com/spf13/cobra"

	"smartexpense/expense-cli/cmd/root"
)

// Cmd represents the profile command
var Cmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the logged-in account",
	Run:   profileFunc,
}

func profileFunc(cmd *cobra.Command, args []string) {
	sess := root.CurrentSession()

	user, err := root.Client().Profile(root.Context(), sess.UserID)
	if err != nil {
		root.Log.Fatalf("Error fetching profile: %v", err)
	}

	fmt.Printf("User:  %s (id %d)\n", user.Username, user.ID)
	fmt.Printf("Email: %s\n", user.Email)
	if user.Phone != "" {
		fmt.Printf("Phone: %s\n", user.Phone)
	}
	if user.Bio != "" {
		fmt.Printf("Bio:   %s\n", user.Bio)
	}
}
