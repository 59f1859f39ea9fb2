package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/schoolseed/internal/cache"
	"github.com/example/schoolseed/internal/core/entity"
)

// CacheStatsCmd returns the cache-stats command
func CacheStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache-stats",
		Short: "Print per-kind record counts for a cache file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cachePath, _ := cmd.Flags().GetString("cache")

			c, err := cache.Load(cachePath)
			if err != nil {
				return err
			}

			total := 0
			fmt.Fprintf(cmd.OutOrStdout(), "\n%-22s %8s\n", "ENTITY", "COUNT")
			fmt.Fprintln(cmd.OutOrStdout(), "───────────────────────────────")
			for _, kind := range entity.All() {
				n := c.Count(kind)
				total += n
				fmt.Fprintf(cmd.OutOrStdout(), "%-22s %8d\n", kind.Resource(), n)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-22s %8d\n\n", "total", total)
			return nil
		},
	}

	cmd.Flags().String("cache", DefaultCachePath, "Path to the entity cache file")
	return cmd
}

// ExportCacheCmd returns the export-cache command
func ExportCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export-cache",
		Short: "Re-export a cache file (validating it round-trips)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cachePath, _ := cmd.Flags().GetString("cache")
			outPath, _ := cmd.Flags().GetString("out")

			c, err := cache.Load(cachePath)
			if err != nil {
				return err
			}
			if err := c.Save(outPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ exported %s to %s\n", cachePath, outPath)
			return nil
		},
	}

	cmd.Flags().String("cache", DefaultCachePath, "Path to the entity cache file")
	cmd.Flags().String("out", "", "Destination file")
	cmd.MarkFlagRequired("out")
	return cmd
}

// ImportCacheCmd returns the import-cache command
func ImportCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-cache",
		Short: "Validate a snapshot file and install it as the cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			inPath, _ := cmd.Flags().GetString("in")
			cachePath, _ := cmd.Flags().GetString("cache")

			c, err := cache.Load(inPath)
			if err != nil {
				return err
			}
			if err := c.Save(cachePath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ imported %s into %s\n", inPath, cachePath)
			return nil
		},
	}

	cmd.Flags().String("in", "", "Snapshot file to import")
	cmd.Flags().String("cache", DefaultCachePath, "Path to the entity cache file")
	cmd.MarkFlagRequired("in")
	return cmd
}
