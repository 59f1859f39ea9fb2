package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/schoolseed/internal/config"
)

// ValidateConfigCmd returns the validate-config command
func ValidateConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate-config",
		Short: "Validate a run configuration without touching the network",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")

			if _, err := config.Load(configPath); err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ %s is valid\n", configPath)
			return nil
		},
	}

	cmd.Flags().String("config", "schoolseed.yaml", "Path to the YAML run configuration")
	return cmd
}
