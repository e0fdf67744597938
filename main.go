// Package main provides the entry point for the expense-cli application.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"smartexpense/expense-cli/cmd/add"
	"smartexpense/expense-cli/cmd/categories"
	"smartexpense/expense-cli/cmd/clear"
	"smartexpense/expense-cli/cmd/earning"
	"smartexpense/expense-cli/cmd/expense"
	"smartexpense/expense-cli/cmd/login"
	"smartexpense/expense-cli/cmd/predict"
	"smartexpense/expense-cli/cmd/preview"
	"smartexpense/expense-cli/cmd/profile"
	"smartexpense/expense-cli/cmd/recommend"
	"smartexpense/expense-cli/cmd/root"
	"smartexpense/expense-cli/cmd/signup"
	"smartexpense/expense-cli/cmd/submit"
	"smartexpense/expense-cli/cmd/summary"
	"smartexpense/expense-cli/cmd/upload"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure the global log level before any logger is used
	configureLogLevelDirectly()

	// 3. Initialize the root command and its flags
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(signup.Cmd)
	root.Cmd.AddCommand(login.Cmd)
	root.Cmd.AddCommand(login.LogoutCmd)
	root.Cmd.AddCommand(profile.Cmd)
	root.Cmd.AddCommand(upload.Cmd)
	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(preview.Cmd)
	root.Cmd.AddCommand(clear.Cmd)
	root.Cmd.AddCommand(submit.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
	root.Cmd.AddCommand(expense.Cmd)
	root.Cmd.AddCommand(earning.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(predict.Cmd)
	root.Cmd.AddCommand(recommend.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus
// instances before command execution starts
func configureLogLevelDirectly() {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
