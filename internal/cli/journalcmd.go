package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/schoolseed/internal/journal"
)

// JournalCmd returns the journal command
func JournalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Show recent API calls from a run's journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, _ := cmd.Flags().GetString("db")
			tail, _ := cmd.Flags().GetInt("tail")

			jnl, err := journal.Open(dbPath)
			if err != nil {
				return err
			}
			defer jnl.Close()

			entries, err := jnl.Tail(tail)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No journaled calls")
				return nil
			}

			failed := color.New(color.FgRed)
			for _, e := range entries {
				line := fmt.Sprintf("%s  %-6s %-40s %3d  %4dms", e.CalledAt.Format("15:04:05"), e.Method, e.Path, e.Status, e.DurationMS)
				if e.Status >= 200 && e.Status <= 299 {
					fmt.Fprintln(cmd.OutOrStdout(), line)
					continue
				}
				failed.Fprintln(cmd.OutOrStdout(), line)
				if e.Detail != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "          %s\n", e.Detail)
				}
			}
			return nil
		},
	}

	cmd.Flags().String("db", DefaultCachePath+".journal.db", "Path to the journal database")
	cmd.Flags().Int("tail", 50, "Number of most recent calls to show")
	return cmd
}
