// Package signup handles account creation.
package signup

import (
	"github.com/spf13/cobra"

	"smartexpense/expense-cli/cmd/root"
	"smartexpense/expense-cli/internal/session"
)

var (
	email    string
	username string
	password string
	phone    string
	bio      string
)

// Cmd represents the signup command
var Cmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account and log in",
	Long:  `Create a SmartExpense account. On success the new user is saved as the active session.`,
	Run:   signupFunc,
}

func init() {
	Cmd.Flags().StringVarP(&email, "email", "e", "", "Account email")
	Cmd.Flags().StringVarP(&username, "username", "u", "", "Display name")
	Cmd.Flags().StringVarP(&password, "password", "p", "", "Account password")
	Cmd.Flags().StringVar(&phone, "phone", "", "Phone number (optional)")
	Cmd.Flags().StringVar(&bio, "bio", "", "Short bio (optional)")
	Cmd.MarkFlagRequired("email")
	Cmd.MarkFlagRequired("username")
	Cmd.MarkFlagRequired("password")
}

func signupFunc(cmd *cobra.Command, args []string) {
	user, err := root.Client().Signup(root.Context(), email, username, password, phone, bio)
	if err != nil {
		root.Log.Fatalf("Signup failed: %v", err)
	}

	sess := &session.Session{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
	if err := root.SessionStore().Save(sess); err != nil {
		root.Log.Fatalf("Account created but saving the session failed: %v", err)
	}

	root.Log.Infof("Created account %s (user %d) and logged in", user.Username, user.ID)
}
