package cmd

import (
	"fmt"

	"github.com/fairlens/fairlens/core"
	"github.com/fairlens/fairlens/internal/contract"
	"github.com/fairlens/fairlens/internal/reportstore"
	"github.com/fairlens/fairlens/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// recordsMigrateSetup loads minimal configuration needed for migrate
// operations. It does NOT open the store, allowing migrations to run on a
// fresh database.
func recordsMigrateSetup(_ *cobra.Command, _ []string) error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.DatabaseBackend(viper.GetString("backend"))
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return fmt.Errorf("invalid backend %q: must be sqlite, mysql or postgresql", backend)
	}

	connStr := viper.GetString("db-connect")
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetDBFilePath()
	}

	cfg.Backend = backend
	cfg.DBConnect = connStr
	return nil
}

// recordsCmd manages the durable record store.
var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Inspect and manage stored ESG report records",
	Long: `Inspect and manage the durable record store backing the analytics.

Supported backends: SQLite (default), MySQL, PostgreSQL

Subcommands:
  list    - Show raw records for a company and period
  status  - Show the record store's schema version
  migrate - Run database schema migrations

Examples:
  # List a company's records for the default period
  fairlens records list --company acme

  # Prepare a fresh database
  fairlens records migrate`,
}

// recordsListCmd prints a company's raw records.
var recordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show raw records for a company and period",
	Long: `Print the raw records inside the reporting window, capped at the
configured result limit.

Examples:
  # Table of recent records
  fairlens records list --company acme

  # Full export for offline analysis
  fairlens records list --company acme --limit 1000 --output parquet --output-file records.parquet`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRecords(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot list records", err)
		}
	},
}

// recordsStatusCmd shows the store's migration state.
var recordsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the record store's schema version",
	Long: `Display the current schema migration version and whether the last
migration left the store in a dirty state.

Examples:
  # Check schema state before upgrading
  fairlens records status`,
	PreRunE: recordsMigrateSetup,
	Run: func(_ *cobra.Command, _ []string) {
		version, dirty, err := reportstore.MigrationVersion(cfg.Backend, cfg.DBConnect)
		if err != nil {
			contract.LogFatal("Failed to read schema version", err)
		}
		fmt.Printf("Backend: %s\n", cfg.Backend)
		fmt.Printf("Schema version: %d (dirty: %t)\n", version, dirty)
	},
}

// recordsMigrateCmd runs database migrations for the record store.
var recordsMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the record store.

By default, migrates to the latest version. Use --target-version for
specific versions.

Examples:
  # Migrate to latest version (default)
  fairlens records migrate

  # Rollback to initial state
  fairlens records migrate --target-version 0`,
	PreRunE: recordsMigrateSetup,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := reportstore.Migrate(cfg.Backend, cfg.DBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
		fmt.Println("Migrations applied successfully.")
	},
}
