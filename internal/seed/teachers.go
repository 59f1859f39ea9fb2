package seed

import (
	"context"
	"sort"

	"github.com/example/schoolseed/internal/core/entity"
)

// TeacherGenerator creates teacher accounts: one user, then the
// teacher record wrapping it. Each teacher declares the grade levels
// they cover, which the class generator prefers when assigning.
type TeacherGenerator struct{}

func (TeacherGenerator) Kind() entity.Kind { return entity.KindTeacher }
func (TeacherGenerator) Requires() []entity.Kind {
	return []entity.Kind{entity.KindSchool}
}

func (TeacherGenerator) Generate(ctx context.Context, run *Run) ([]Result, error) {
	school, err := run.school()
	if err != nil {
		return nil, err
	}

	failures := &tracker{}
	users := newCreator(run, entity.KindUser, failures)
	teachers := newCreator(run, entity.KindTeacher, failures)

	grades := run.Config.Grades

	for i := 0; i < run.Config.Volumes.Teachers; i++ {
		user, first, last := newPersonUser(run, school, entity.PersonaTeacher)
		skipped, err := users.create(ctx, user, nil)
		if err != nil {
			return []Result{users.res, teachers.res}, err
		}
		if skipped {
			teachers.res.Skipped++
			continue
		}

		teacher := &entity.Teacher{
			SchoolID:    school.ID,
			UserID:      user.ID,
			FirstName:   first,
			LastName:    last,
			EmployeeID:  run.Keys.Next("EMP"),
			GradeLevels: teacherGrades(run, grades),
			HireDate:    run.Config.Calendar.StartDate,
		}
		if _, err := teachers.create(ctx, teacher, nil); err != nil {
			return []Result{users.res, teachers.res}, err
		}
	}

	return []Result{users.res, teachers.res}, nil
}

// teacherGrades picks a contiguous-ish subset of the configured
// grades for one teacher, at least one and at most three.
func teacherGrades(run *Run, grades []int) []int {
	n := 1 + run.Rand.Intn(3)
	if n > len(grades) {
		n = len(grades)
	}
	picked := make([]int, len(grades))
	copy(picked, grades)
	run.Rand.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	out := picked[:n]
	sort.Ints(out)
	return out
}
