// Package session persists the logged-in user between invocations. The user
// is always passed explicitly to the code that needs it; nothing reads it
// from ambient global state.
package session

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"smartexpense/expense-cli/internal/fileutils"
)

var log = logrus.New()

// SetLogger allows setting a configured logger for this package.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Session identifies the authenticated user acting on the API.
type Session struct {
	UserID   int    `yaml:"user_id"`
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
}

// Store reads and writes the session file.
type Store struct {
	filePath string
}

// NewStore creates a store backed by the given file path.
func NewStore(filePath string) *Store {
	return &Store{filePath: filePath}
}

// Load reads the current session. A missing file means nobody is logged in.
func (s *Store) Load() (*Session, error) {
	if !fileutils.FileExists(s.filePath) {
		return nil, fmt.Errorf("not logged in: run 'expense-cli login' first")
	}

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var sess Session
	if err := yaml.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}
	if sess.UserID <= 0 {
		return nil, fmt.Errorf("session file has no valid user, log in again")
	}

	return &sess, nil
}

// Save writes the session after a successful login. The file is user-only
// readable since it identifies the account.
func (s *Store) Save(sess *Session) error {
	data, err := yaml.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := fileutils.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	log.WithField("user_id", sess.UserID).Debug("Saved session")
	return nil
}

// Clear removes the session file.
func (s *Store) Clear() error {
	if !fileutils.FileExists(s.filePath) {
		return nil
	}
	if err := os.Remove(s.filePath); err != nil {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
