package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/schoolseed/internal/cache"
	"github.com/example/schoolseed/internal/core/entity"
)

// FindCmd returns the find command
func FindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find [kind]",
		Short: "Find one cached entity by name, natural key or UUID",
		Long: `Find looks up a single entity in a previously generated cache file,
offline. Exactly one of --name, --key/--value or --id must be given.

  schoolseed find student --name "Jane Doe"
  schoolseed find user --key email --value jane@example.edu
  schoolseed find teacher --id 4f6f…`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := entity.ParseKind(args[0])
			if !ok {
				return fmt.Errorf("unknown entity kind %q", args[0])
			}

			cachePath, _ := cmd.Flags().GetString("cache")
			name, _ := cmd.Flags().GetString("name")
			key, _ := cmd.Flags().GetString("key")
			value, _ := cmd.Flags().GetString("value")
			id, _ := cmd.Flags().GetString("id")

			c, err := cache.Load(cachePath)
			if err != nil {
				return err
			}

			rec, err := findRecord(c, kind, name, key, value, id)
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(rec, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to render record: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().String("cache", DefaultCachePath, "Path to the entity cache file")
	cmd.Flags().String("name", "", `Full name to match, e.g. "Jane Doe"`)
	cmd.Flags().String("key", "", "Natural key name (email, student_id, employee_id, room_number, code, slug)")
	cmd.Flags().String("value", "", "Natural key value")
	cmd.Flags().String("id", "", "Entity UUID")

	return cmd
}

func findRecord(c *cache.Cache, kind entity.Kind, name, key, value, id string) (entity.Record, error) {
	switch {
	case id != "":
		return c.Get(kind, id)
	case key != "":
		if value == "" {
			return nil, fmt.Errorf("--key requires --value")
		}
		return c.FindByNaturalKey(kind, key, value)
	case name != "":
		first, last, ok := strings.Cut(name, " ")
		if !ok {
			return nil, fmt.Errorf("--name wants \"First Last\", got %q", name)
		}
		return c.FindByName(kind, first, last)
	default:
		return nil, fmt.Errorf("one of --name, --key/--value or --id is required")
	}
}
