package seed

import (
	"context"

	"github.com/example/schoolseed/internal/core/entity"
)

// SubjectGenerator creates the subject catalog declared in the
// config. Codes were already charset-checked at config validation.
type SubjectGenerator struct{}

func (SubjectGenerator) Kind() entity.Kind { return entity.KindSubject }
func (SubjectGenerator) Requires() []entity.Kind {
	return []entity.Kind{entity.KindSchool}
}

func (SubjectGenerator) Generate(ctx context.Context, run *Run) ([]Result, error) {
	school, err := run.school()
	if err != nil {
		return nil, err
	}

	failures := &tracker{}
	cr := newCreator(run, entity.KindSubject, failures)

	for _, spec := range run.Config.Subjects {
		subject := &entity.Subject{
			SchoolID:    school.ID,
			Code:        spec.Code,
			Name:        spec.Name,
			GradeLevels: spec.GradeLevels,
		}
		if _, err := cr.create(ctx, subject, nil); err != nil {
			return []Result{cr.res}, err
		}
	}

	return []Result{cr.res}, nil
}
