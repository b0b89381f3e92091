package cmd

import (
	"fmt"

	"github.com/dietmarja/curricula/internal/catstore"
	"github.com/dietmarja/curricula/internal/contract"
	"github.com/dietmarja/curricula/internal/outwriter"
	"github.com/dietmarja/curricula/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// storeSetup loads minimal configuration needed for store operations.
// This is used by commands that need store access without full shared setup.
func storeSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values
	backend := schema.DatabaseBackend(viper.GetString("store-backend"))
	connStr := viper.GetString("store-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize persistence with the loaded config
	if err := catstore.InitStore(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr
	cfg.Output = schema.OutputMode(viper.GetString("output"))
	if cfg.Output == "" {
		cfg.Output = schema.TableOut
	}
	cfg.OutputFile = viper.GetString("output-file")
	cfg.ResultLimit = viper.GetInt("limit")
	if cfg.ResultLimit <= 0 {
		cfg.ResultLimit = contract.DefaultResultLimit
	}
	if cfg.Precision = viper.GetInt("precision"); cfg.Precision < 1 {
		cfg.Precision = contract.DefaultPrecision
	}

	return nil
}

// storeSetupWrapper wraps storeSetup to provide PreRunE for catalog commands.
func storeSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeSetup()
}

// catalogCmd focused on catalogue store management.
//
// Note: Catalog subcommands use minimal initialization (storeSetup) instead of
// the full sharedSetup used by selection commands. This avoids catalogue
// loading and weight processing for simple store operations.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the catalogue snapshot store and run history",
	Long: `Manage the store that holds the catalogue snapshot and selection run history.

Curricula snapshots the last loaded catalogue so later runs can reuse it
without a catalogue path, and records metadata for every selection run.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show store statistics and connection info
  clear   - Remove the stored snapshot and run history
  runs    - List recorded selection runs
  migrate - Run store schema migrations

Examples:
  # Check store status
  curricula catalog status

  # Review recent selection runs
  curricula catalog runs --limit 10`,
}

// catalogStatusCmd shows store status.
var catalogStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display store statistics and connection details",
	Long: `Show detailed information about the catalogue store.

Displays:
- Backend type and location
- Number of snapshot modules and recorded runs
- Store database size (SQLite)

Examples:
  # Check store status
  curricula catalog status`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := catstore.Manager.GetCatalogStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get store status", err)
		}
		if err := outwriter.WriteStatus(status, cfg); err != nil {
			contract.LogFatal("Failed to write store status", err)
		}
	},
}

// catalogClearCmd clears the store.
var catalogClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored catalogue snapshot and run history",
	Long: `Delete all stored data from the configured backend.

Use this when:
- The catalogue changed structurally and the snapshot is stale
- Run history should be reset
- Switching between catalogues

Examples:
  # Clear the SQLite store (default)
  curricula catalog clear

  # Clear a MySQL store (set connection string via env variable)
  CURRICULA_STORE_BACKEND=mysql CURRICULA_STORE_DB_CONNECT="..." curricula catalog clear`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := catstore.Manager.GetCatalogStore().Clear(); err != nil {
			contract.LogFatal("Failed to clear store", err)
		}
		fmt.Println("Store cleared successfully.")
	},
}

// catalogRunsCmd lists recorded selection runs.
var catalogRunsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded selection runs, most recent first",
	Long: `Show the metadata recorded for past selection runs.

Each run records role, topic, selection mode, module count, credit totals,
efficiency, and topic coverage. Use --output parquet with --output-file to
export the history for analysis.

Examples:
  # Show the last 25 runs
  curricula catalog runs

  # Export run history to Parquet
  curricula catalog runs --output parquet --output-file runs.parquet`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runs, err := catstore.Manager.GetCatalogStore().ListRuns(cfg.ResultLimit)
		if err != nil {
			contract.LogFatal("Failed to list runs", err)
		}
		if err := outwriter.WriteRuns(runs, cfg); err != nil {
			contract.LogFatal("Failed to write runs", err)
		}
	},
}

// catalogMigrateCmd runs store schema migrations.
var catalogMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run store schema migrations",
	Long: `Apply or roll back the catalogue store schema migrations.

By default migrates to the latest version. Use --target-version to migrate
to a specific version, or 0 to roll everything back.

Examples:
  # Migrate to the latest version
  curricula catalog migrate

  # Roll back all migrations
  curricula catalog migrate --target-version 0`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		// Migrations open their own connection; only config loading is needed.
		return loadConfigFile()
	},
	Run: func(_ *cobra.Command, _ []string) {
		backend := schema.DatabaseBackend(viper.GetString("store-backend"))
		connStr := viper.GetString("store-db-connect")
		targetVersion := viper.GetInt("target-version")
		if err := catstore.MigrateStore(backend, connStr, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
