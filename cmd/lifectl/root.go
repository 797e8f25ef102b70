// Command lifectl is the operator CLI for the lifestyle tracker: database
// migrations, user creation, library seeding and terminal reports.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lg/lifestyle-tracker-api/internal/config"
	"lg/lifestyle-tracker-api/internal/store"
)

var dbURL string

var rootCmd = &cobra.Command{
	Use:          "lifectl",
	Short:        "lifectl manages the lifestyle tracker database",
	Long:         "lifectl applies migrations, creates users, seeds sample libraries and prints sleep and step reports.",
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbURL, "db", "", "Database URL (defaults to DB_URL from the environment or .env)")
}

// resolveDBURL returns --db, falling back to DB_URL.
func resolveDBURL() (string, error) {
	if dbURL != "" {
		return dbURL, nil
	}
	return config.DBURL()
}

// withStore opens the configured store for the duration of run.
func withStore(ctx context.Context, run func(store.Store) error) error {
	url, err := resolveDBURL()
	if err != nil {
		return err
	}
	s, err := store.Open(ctx, url)
	if err != nil {
		return err
	}
	defer s.Close()
	return run(s)
}

// userID resolves a username to its id.
func userID(ctx context.Context, s store.Store, username string) (string, error) {
	if username == "" {
		return "", fmt.Errorf("--username is required")
	}
	u, err := s.UserByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("looking up user %q: %w", username, err)
	}
	return u.ID, nil
}

func main() {
	Execute()
}
