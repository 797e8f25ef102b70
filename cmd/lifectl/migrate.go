package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/spf13/cobra"
)

var migrationsDir string

// migrateCmd runs pending Postgres migrations from --dir. The migrations
// table is checked to skip already-applied files, and each migration plus its
// record insert runs in a single transaction.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending Postgres migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		url, err := resolveDBURL()
		if err != nil {
			return err
		}
		if !strings.HasPrefix(url, "postgres://") && !strings.HasPrefix(url, "postgresql://") {
			return fmt.Errorf("migrate needs a Postgres URL; SQLite databases create their schema on open")
		}

		ctx := cmd.Context()
		conn, err := pgx.Connect(ctx, url)
		if err != nil {
			return fmt.Errorf("unable to connect to database: %w", err)
		}
		defer conn.Close(ctx)

		return runMigrations(ctx, conn, migrationsDir, cmd.OutOrStdout())
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrationsDir, "dir", "db", "Directory holding *.sql migrations")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrations(ctx context.Context, conn *pgx.Conn, dir string, out io.Writer) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil || len(files) == 0 {
		return fmt.Errorf("no migration files found in %s", dir)
	}
	sort.Strings(files)

	// The migrations table may not exist yet.
	applied := make(map[string]bool)
	rows, err := conn.Query(ctx, "SELECT migration FROM migrations")
	if err == nil {
		names, err := pgx.CollectRows(rows, pgx.RowTo[string])
		if err != nil {
			return fmt.Errorf("reading applied migrations: %w", err)
		}
		for _, name := range names {
			applied[name] = true
		}
	}

	ran := 0
	for _, f := range files {
		filename := filepath.Base(f)
		if applied[filename] {
			fmt.Fprintf(out, "  skip: %s\n", filename)
			continue
		}
		content, err := os.ReadFile(f)
		if err != nil {
			return fmt.Errorf("reading %s: %w", filename, err)
		}
		if err := applyMigration(ctx, conn, filename, string(content)); err != nil {
			return err
		}
		fmt.Fprintf(out, "  applied: %s\n", filename)
		ran++
	}

	if ran == 0 {
		fmt.Fprintln(out, "No pending migrations.")
	} else {
		fmt.Fprintf(out, "\n%d migration(s) applied.\n", ran)
	}
	return nil
}

func applyMigration(ctx context.Context, conn *pgx.Conn, filename, sql string) error {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, sql); err != nil {
		return fmt.Errorf("running %s: %w", filename, err)
	}
	if _, err := tx.Exec(ctx, "INSERT INTO migrations (migration, description) VALUES ($1, $2)",
		filename, descriptionFromFilename(filename)); err != nil {
		return fmt.Errorf("recording %s: %w", filename, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing %s: %w", filename, err)
	}
	return nil
}

var migrationPrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-\d{3}-`)

// descriptionFromFilename strips the YYYY-MM-DD-NNN- prefix and .sql suffix.
func descriptionFromFilename(filename string) string {
	name := strings.TrimSuffix(filename, ".sql")
	name = migrationPrefix.ReplaceAllString(name, "")
	return strings.ReplaceAll(name, "-", " ")
}
