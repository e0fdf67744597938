// Package root contains the root command for the application
package root

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"smartexpense/expense-cli/internal/api"
	"smartexpense/expense-cli/internal/batchstore"
	"smartexpense/expense-cli/internal/config"
	"smartexpense/expense-cli/internal/export"
	"smartexpense/expense-cli/internal/ingest"
	"smartexpense/expense-cli/internal/session"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the resolved application configuration
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "expense-cli",
		Short: "A CLI client for the SmartExpense personal finance tracker.",
		Long: `expense-cli uploads expense spreadsheets (CSV or Excel), validates and
normalizes them, and submits them in bulk to the SmartExpense API.
It also adds manual entries, records earnings and shows server-side
summaries, predictions and category recommendations.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to expense-cli!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Configuration error: %v", err)
			}
			if apiURL != "" {
				cfg.API.BaseURL = apiURL
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			// Propagate the configured logger to all packages
			api.SetLogger(Log)
			ingest.SetLogger(Log)
			session.SetLogger(Log)
			batchstore.SetLogger(Log)
			export.SetLogger(Log)
		},
	}

	// Flag overriding the configured API base URL
	apiURL string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Base URL of the SmartExpense API (overrides config)")
}

// Client builds an API client from the resolved configuration.
func Client() *api.Client {
	return api.NewClient(Cfg.API.BaseURL, time.Duration(Cfg.API.TimeoutSeconds)*time.Second)
}

// BatchStore returns the pending-batch store.
func BatchStore() *batchstore.Store {
	return batchstore.NewStore(Cfg.Batch.File)
}

// SessionStore returns the session store.
func SessionStore() *session.Store {
	return session.NewStore(Cfg.Session.File)
}

// CurrentSession loads the logged-in user or exits with a hint.
func CurrentSession() *session.Session {
	sess, err := SessionStore().Load()
	if err != nil {
		Log.Fatalf("%v", err)
	}
	return sess
}

// Policy resolves the configured upload policy.
func Policy() ingest.Policy {
	policy, err := ingest.ParsePolicy(Cfg.Upload.Policy)
	if err != nil {
		Log.Fatalf("%v", err)
	}
	return policy
}

// Context returns the base context for API calls.
func Context() context.Context {
	return context.Background()
}
