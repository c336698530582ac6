// Package cmd defines the command-line interface for fairlens.
package cmd

import (
	"github.com/fairlens/fairlens/internal/contract"
	"github.com/fairlens/fairlens/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(trendsCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(complianceCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the records subcommands to the parent records command
	recordsCmd.AddCommand(recordsListCmd)
	recordsCmd.AddCommand(recordsStatusCmd)
	recordsCmd.AddCommand(recordsMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("company", "c", "", "Company identifier to analyze")
	rootCmd.PersistentFlags().String("start", "", "Period start in ISO8601 or time ago")
	rootCmd.PersistentFlags().String("end", "", "Period end in ISO8601 or time ago")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("backend", string(schema.SQLiteBackend), "Record store backend: sqlite or mysql or postgresql")
	rootCmd.PersistentFlags().String("db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().Int("employees", 0, "Active employee headcount override (0 = read from store)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of recordsMigrateCmd to Viper
	recordsMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(recordsMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding records migrate flags", err)
	}
}
