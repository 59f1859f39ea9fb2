package seed

import (
	"context"

	"github.com/example/schoolseed/internal/core/entity"
)

var relationshipTypes = []entity.RelationshipType{
	entity.RelationshipMother,
	entity.RelationshipFather,
	entity.RelationshipGuardian,
}

// ParentLinkGenerator pairs the i-th student with the i-th parent so
// every student ends up with exactly one linked parent. Fewer parents
// than students is a hard dependency error, never a silent partial
// linking.
type ParentLinkGenerator struct{}

func (ParentLinkGenerator) Kind() entity.Kind { return entity.KindParentStudentLink }
func (ParentLinkGenerator) Requires() []entity.Kind {
	return []entity.Kind{entity.KindParent, entity.KindStudent}
}

func (ParentLinkGenerator) Generate(ctx context.Context, run *Run) ([]Result, error) {
	students := run.Cache.All(entity.KindStudent)
	parents := run.Cache.All(entity.KindParent)

	if len(parents) < len(students) {
		return nil, &DependencyError{
			Kind:   entity.KindParentStudentLink,
			Reason: "fewer parents than students: order-based pairing needs one parent per student",
		}
	}

	failures := &tracker{}
	cr := newCreator(run, entity.KindParentStudentLink, failures)

	for i, rec := range students {
		student := rec.(*entity.Student)
		parent := parents[i].(*entity.Parent)

		link := &entity.ParentStudentLink{
			ParentID:         parent.ID,
			StudentID:        student.ID,
			RelationshipType: relationshipTypes[run.Rand.Intn(len(relationshipTypes))],
		}
		if _, err := cr.create(ctx, link, nil); err != nil {
			return []Result{cr.res}, err
		}
	}

	return []Result{cr.res}, nil
}
