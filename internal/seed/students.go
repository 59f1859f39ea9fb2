package seed

import (
	"context"

	"github.com/example/schoolseed/internal/core/entity"
)

// StudentGenerator creates student accounts. Grade levels are
// assigned round-robin over the configured grades so every declared
// grade ends up populated, which the class generator relies on.
type StudentGenerator struct{}

func (StudentGenerator) Kind() entity.Kind { return entity.KindStudent }
func (StudentGenerator) Requires() []entity.Kind {
	return []entity.Kind{entity.KindSchool}
}

func (StudentGenerator) Generate(ctx context.Context, run *Run) ([]Result, error) {
	school, err := run.school()
	if err != nil {
		return nil, err
	}

	failures := &tracker{}
	users := newCreator(run, entity.KindUser, failures)
	students := newCreator(run, entity.KindStudent, failures)

	grades := run.Config.Grades

	for i := 0; i < run.Config.Volumes.Students; i++ {
		user, first, last := newPersonUser(run, school, entity.PersonaStudent)
		skipped, err := users.create(ctx, user, nil)
		if err != nil {
			return []Result{users.res, students.res}, err
		}
		if skipped {
			students.res.Skipped++
			continue
		}

		// Round-robin over created students, not the loop index, so a
		// skip does not leave a gap in grade coverage.
		grade := grades[students.res.Created%len(grades)]
		student := &entity.Student{
			SchoolID:    school.ID,
			UserID:      user.ID,
			FirstName:   first,
			LastName:    last,
			StudentID:   run.Keys.Next("STU"),
			GradeLevel:  grade,
			DateOfBirth: studentBirthDate(run, grade),
		}
		if _, err := students.create(ctx, student, nil); err != nil {
			return []Result{users.res, students.res}, err
		}
	}

	return []Result{users.res, students.res}, nil
}

// studentBirthDate places a student's birthday so their age fits the
// grade: roughly 5 years plus the grade level at the start of the
// academic year, jittered within the year.
func studentBirthDate(run *Run, grade int) string {
	start := run.Config.Calendar.Start()
	years := 5 + grade
	dob := start.AddDate(-years, 0, -run.Rand.Intn(330))
	return dob.Format(entity.DateLayout)
}
