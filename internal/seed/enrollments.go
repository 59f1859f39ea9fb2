package seed

import (
	"context"

	"github.com/example/schoolseed/internal/core/entity"
)

// EnrollmentGenerator links every student into every class of their
// grade level.
type EnrollmentGenerator struct{}

func (EnrollmentGenerator) Kind() entity.Kind { return entity.KindStudentClassLink }
func (EnrollmentGenerator) Requires() []entity.Kind {
	return []entity.Kind{entity.KindStudent, entity.KindClass}
}

func (EnrollmentGenerator) Generate(ctx context.Context, run *Run) ([]Result, error) {
	failures := &tracker{}
	cr := newCreator(run, entity.KindStudentClassLink, failures)

	classes := run.Cache.All(entity.KindClass)

	for _, rec := range run.Cache.All(entity.KindStudent) {
		student := rec.(*entity.Student)
		for _, crec := range classes {
			class := crec.(*entity.Class)
			if class.GradeLevel != student.GradeLevel {
				continue
			}

			link := &entity.StudentClassLink{
				StudentID:      student.ID,
				ClassID:        class.ID,
				EnrollmentDate: run.Config.Calendar.StartDate,
			}
			if _, err := cr.create(ctx, link, nil); err != nil {
				return []Result{cr.res}, err
			}
		}
	}

	return []Result{cr.res}, nil
}
