package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/schoolseed/internal/api"
	"github.com/example/schoolseed/internal/cache"
	"github.com/example/schoolseed/internal/config"
	"github.com/example/schoolseed/internal/journal"
	"github.com/example/schoolseed/internal/seed"
)

// DefaultCachePath is where generate persists the entity cache when
// --cache is not given.
const DefaultCachePath = "schoolseed-cache.json"

// GenerateCmd returns the generate command
func GenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Seed the backend API with synthetic school data",
		Long: `Generate creates fake but relationally consistent school records
against the backend API, in dependency order: school, users, teachers,
parents, students, links, subjects, rooms, classes, enrollments,
lessons, assessments, attendance, events, activities, vendors, merits.

The entity cache is written to the cache file whether or not the run
completes; a later run can resume from it with --cache.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cachePath, _ := cmd.Flags().GetString("cache")
			features, _ := cmd.Flags().GetStringSlice("features")

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			c, err := loadOrNewCache(cachePath)
			if err != nil {
				return err
			}

			jnl, err := journal.Open(cachePath + ".journal.db")
			if err != nil {
				return fmt.Errorf("failed to open journal: %w", err)
			}
			defer jnl.Close()

			client := api.NewClient(api.Options{
				BaseURL:    cfg.API.BaseURL,
				Timeout:    cfg.API.Timeout(),
				MaxRetries: cfg.API.MaxRetries,
				Logger:     jnl,
			})

			run := seed.NewRun(cfg, c, client)
			orch := seed.NewOrchestrator(cmd.OutOrStdout())

			summary, execErr := orch.Execute(cmd.Context(), run, features)

			if saveErr := c.Save(cachePath); saveErr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", saveErr)
			}

			if summary != nil {
				printSummary(cmd, summary)
				fmt.Fprintf(cmd.OutOrStdout(), "Cache written to %s\n", cachePath)
			}

			return execErr
		},
	}

	cmd.Flags().String("config", "schoolseed.yaml", "Path to the YAML run configuration")
	cmd.Flags().String("cache", DefaultCachePath, "Path to the entity cache file (loaded if present)")
	cmd.Flags().StringSlice("features", nil, "Only run these stages (requires a cache holding their prerequisites)")

	return cmd
}

func loadOrNewCache(path string) (*cache.Cache, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cache.New(), nil
		}
		return nil, fmt.Errorf("failed to stat cache file: %w", err)
	}
	return cache.Load(path)
}

func printSummary(cmd *cobra.Command, summary *seed.Summary) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "\n%-22s %8s %8s %8s\n", "ENTITY", "CREATED", "SKIPPED", "REUSED")
	fmt.Fprintln(out, "──────────────────────────────────────────────────")
	for _, res := range summary.Results() {
		fmt.Fprintf(out, "%-22s %8d %8d %8d\n", res.Kind.Resource(), res.Created, res.Skipped, res.Reused)
	}
	fmt.Fprintln(out)

	if summary.Aborted() {
		color.New(color.FgRed).Fprintf(out, "✗ run aborted at stage %s\n", summary.AbortedStage)
		return
	}
	color.New(color.FgGreen).Fprintln(out, "✓ all stages complete")
}
