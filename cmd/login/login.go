// Package login handles authentication against the server.
package login

import (
	"github.com/spf13/cobra"

	"smartexpense/expense-cli/cmd/root"
	"smartexpense/expense-cli/internal/session"
)

var (
	email    string
	password string
)

// Cmd represents the login command
var Cmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and save the session",
	Long: `Authenticate against the server and save the logged-in user locally.
Commands that write data (submit, earning add) need a saved session.`,
	Run: loginFunc,
}

// LogoutCmd represents the logout command
var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the saved session",
	Run:   logoutFunc,
}

func init() {
	Cmd.Flags().StringVarP(&email, "email", "e", "", "Account email")
	Cmd.Flags().StringVarP(&password, "password", "p", "", "Account password")
	Cmd.MarkFlagRequired("email")
	Cmd.MarkFlagRequired("password")
}

func loginFunc(cmd *cobra.Command, args []string) {
	user, err := root.Client().Login(root.Context(), email, password)
	if err != nil {
		root.Log.Fatalf("Login failed: %v", err)
	}

	sess := &session.Session{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
	if err := root.SessionStore().Save(sess); err != nil {
		root.Log.Fatalf("Error saving session: %v", err)
	}

	root.Log.Infof("Logged in as %s (user %d)", user.Username, user.ID)
}

func logoutFunc(cmd *cobra.Command, args []string) {
	if err := root.SessionStore().Clear(); err != nil {
		root.Log.Fatalf("Error clearing session: %v", err)
	}
	root.Log.Info("Logged out")
}
