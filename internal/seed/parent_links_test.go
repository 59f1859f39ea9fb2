package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/example/schoolseed/internal/core/entity"
)

func TestParentLinksPairInOrder(t *testing.T) {
	run, _ := newTestRun(t, testConfig())
	seedSchool(t, run)

	students := make([]*entity.Student, 3)
	for i := range students {
		students[i] = seedStudent(t, run, 1+i)
	}
	parents := make([]*entity.Parent, 4)
	for i := range parents {
		parents[i] = seedParent(t, run)
	}

	results, err := ParentLinkGenerator{}.Generate(context.Background(), run)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if results[0].Created != 3 {
		t.Fatalf("expected 3 links, got %d", results[0].Created)
	}

	// i-th student pairs with i-th parent.
	for i, student := range students {
		linked := run.Cache.ParentsOf(student.ID)
		if len(linked) != 1 {
			t.Fatalf("student %d has %d parents", i, len(linked))
		}
		if linked[0] != parents[i].ID {
			t.Errorf("student %d linked to parent %s, want %s", i, linked[0], parents[i].ID)
		}
	}
}

func TestParentLinksAbortWhenParentsAreFewer(t *testing.T) {
	run, fake := newTestRun(t, testConfig())
	seedSchool(t, run)

	for i := 0; i < 3; i++ {
		seedStudent(t, run, 1)
	}
	for i := 0; i < 2; i++ {
		seedParent(t, run)
	}

	_, err := ParentLinkGenerator{}.Generate(context.Background(), run)

	var depErr *DependencyError
	if !errors.As(err, &depErr) {
		t.Fatalf("expected DependencyError, got %v", err)
	}
	if len(fake.created["parent_student_links"]) != 0 {
		t.Error("no links may be created on a dependency error")
	}
}
