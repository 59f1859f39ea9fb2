package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/schoolseed/internal/cache"
	"github.com/example/schoolseed/internal/core/entity"
)

// ListCmd returns the list command
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [kind]",
		Short: "List cached entities of one kind, paginated",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := entity.ParseKind(args[0])
			if !ok {
				return fmt.Errorf("unknown entity kind %q", args[0])
			}

			cachePath, _ := cmd.Flags().GetString("cache")
			limit, _ := cmd.Flags().GetInt("limit")
			offset, _ := cmd.Flags().GetInt("offset")

			c, err := cache.Load(cachePath)
			if err != nil {
				return err
			}

			recs := c.All(kind)
			total := len(recs)
			if offset < 0 {
				offset = 0
			}
			if offset > total {
				offset = total
			}
			recs = recs[offset:]
			if limit > 0 && limit < len(recs) {
				recs = recs[:limit]
			}

			if len(recs) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No %s in cache\n", kind.Resource())
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\n%-38s %s\n", "ID", "SUMMARY")
			fmt.Fprintln(cmd.OutOrStdout(), "────────────────────────────────────────────────────────────────")
			for _, rec := range recs {
				fmt.Fprintf(cmd.OutOrStdout(), "%-38s %s\n", rec.GetID(), describe(rec))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d-%d of %d\n", offset+1, offset+len(recs), total)
			return nil
		},
	}

	cmd.Flags().String("cache", DefaultCachePath, "Path to the entity cache file")
	cmd.Flags().Int("limit", 20, "Maximum rows to print (0 for all)")
	cmd.Flags().Int("offset", 0, "Rows to skip")

	return cmd
}

// describe renders a one-line summary per record kind: the name or
// natural key a person scanning a listing would want.
func describe(rec entity.Record) string {
	var parts []string

	if named, ok := rec.(entity.Named); ok {
		first, last := named.Names()
		parts = append(parts, first+" "+last)
	}

	keys := rec.NaturalKeys()
	names := make([]string, 0, len(keys))
	for k := range keys {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		parts = append(parts, fmt.Sprintf("%s=%s", k, keys[k]))
	}

	switch r := rec.(type) {
	case *entity.Student:
		parts = append(parts, fmt.Sprintf("grade=%d", r.GradeLevel))
	case *entity.Class:
		parts = append(parts, fmt.Sprintf("grade=%d %s", r.GradeLevel, r.Quarter))
	case *entity.Attendance:
		parts = append(parts, fmt.Sprintf("%s %s", r.Date, r.Status))
	case *entity.Assessment:
		parts = append(parts, fmt.Sprintf("%s %.1f/%.1f", r.Type, r.PointsEarned, r.TotalPoints))
	case *entity.Event:
		parts = append(parts, fmt.Sprintf("%s %s", r.Date, r.Name))
	case *entity.Vendor:
		parts = append(parts, r.Name)
	case *entity.Activity:
		parts = append(parts, r.Name)
	case *entity.Merit:
		parts = append(parts, fmt.Sprintf("%s %dpt", r.Type, r.Points))
	case *entity.School:
		parts = append(parts, r.Name)
	case *entity.Subject:
		parts = append(parts, r.Name)
	case *entity.Room:
		parts = append(parts, r.Type)
	}

	if len(parts) == 0 {
		return string(rec.Kind())
	}
	return strings.Join(parts, "  ")
}
