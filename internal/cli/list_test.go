package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/example/schoolseed/internal/cache"
	"github.com/example/schoolseed/internal/core/entity"
)

func writeSchoolCache(t *testing.T) string {
	t.Helper()
	c := cache.New()
	school := &entity.School{ID: uuid.NewString(), Name: "Hill Valley High", Slug: "hill-valley"}
	if err := c.Add(school); err != nil {
		t.Fatalf("failed to seed cache: %v", err)
	}
	path := filepath.Join(t.TempDir(), "cache.json")
	if err := c.Save(path); err != nil {
		t.Fatalf("failed to save cache: %v", err)
	}
	return path
}

func runListCmd(t *testing.T, args ...string) string {
	t.Helper()
	cmd := ListCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	return out.String()
}

func TestListClampsNegativeOffset(t *testing.T) {
	path := writeSchoolCache(t)

	out := runListCmd(t, "school", "--cache", path, "--offset", "-1")
	if !strings.Contains(out, "hill-valley") {
		t.Errorf("expected the school listed, got:\n%s", out)
	}
	if !strings.Contains(out, "1-1 of 1") {
		t.Errorf("expected pagination line for the full set, got:\n%s", out)
	}
}

func TestListOffsetPastEndPrintsEmpty(t *testing.T) {
	path := writeSchoolCache(t)

	out := runListCmd(t, "school", "--cache", path, "--offset", "5")
	if !strings.Contains(out, "No schools in cache") {
		t.Errorf("expected empty listing, got:\n%s", out)
	}
}
