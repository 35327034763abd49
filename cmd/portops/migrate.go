package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Veraticus/portops/internal/cli"
	"github.com/Veraticus/portops/internal/storage"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run history database migrations",
		Long: `Initialize or update the history database schema to the latest version.

This runs regardless of history.enabled so the database can be prepared
ahead of time.`,
		RunE: runMigrate,
	}

	cmd.Flags().Bool("status", false, "Show current migration status without applying changes")

	return cmd
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	status, _ := cmd.Flags().GetBool("status")
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	dbPath := settings.HistoryPath

	slog.Info("Starting database migration",
		"database", dbPath,
		"status_only", status)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	ctx := cmd.Context()
	w := cmd.OutOrStdout()

	if status {
		current, err := store.SchemaVersion(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n%s\n%s\n",
			cli.FormatMetric("Database", dbPath),
			cli.FormatMetric("Current version", fmt.Sprint(current)),
			cli.FormatMetric("Latest version", fmt.Sprint(storage.ExpectedSchemaVersion)),
		)
		return err
	}

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	_, err = fmt.Fprintln(w, cli.FormatSuccess("Database migrations completed successfully!"))
	return err
}
