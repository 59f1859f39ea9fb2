package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/schoolseed/internal/cli"
	"github.com/example/schoolseed/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "schoolseed",
		Short:   "schoolseed - synthetic data seeder for the school API",
		Version: version.String(),
		Long: `schoolseed seeds a school-management backend with fake but
relationally consistent records: one school, then users, teachers,
parents, students and everything that hangs off them, created in
dependency order over the REST API.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.GenerateCmd())
	rootCmd.AddCommand(cli.ValidateConfigCmd())
	rootCmd.AddCommand(cli.FindCmd())
	rootCmd.AddCommand(cli.ListCmd())
	rootCmd.AddCommand(cli.CacheStatsCmd())
	rootCmd.AddCommand(cli.ExportCacheCmd())
	rootCmd.AddCommand(cli.ImportCacheCmd())
	rootCmd.AddCommand(cli.JournalCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
