package seed

import (
	"context"
	"fmt"

	"github.com/example/schoolseed/internal/core/entity"
)

// LessonGenerator schedules lessons for every class on school days
// within the academic-year bounds.
type LessonGenerator struct{}

func (LessonGenerator) Kind() entity.Kind { return entity.KindLesson }
func (LessonGenerator) Requires() []entity.Kind {
	return []entity.Kind{entity.KindClass}
}

func (LessonGenerator) Generate(ctx context.Context, run *Run) ([]Result, error) {
	school, err := run.school()
	if err != nil {
		return nil, err
	}

	perClass := run.Config.Volumes.LessonsPerClass
	days := run.schoolDays(perClass)

	failures := &tracker{}
	cr := newCreator(run, entity.KindLesson, failures)

	for _, rec := range run.Cache.All(entity.KindClass) {
		class := rec.(*entity.Class)

		subjectName := class.Code
		if subj, err := run.Cache.Get(entity.KindSubject, class.SubjectID); err == nil {
			subjectName = subj.(*entity.Subject).Name
		}

		for i := 0; i < perClass && i < len(days); i++ {
			lesson := &entity.Lesson{
				SchoolID:      school.ID,
				ClassID:       class.ID,
				TeacherID:     class.TeacherID,
				SubjectID:     class.SubjectID,
				Title:         fmt.Sprintf("%s lesson %d", subjectName, i+1),
				ScheduledDate: days[i].Format(entity.DateLayout),
			}
			if _, err := cr.create(ctx, lesson, nil); err != nil {
				return []Result{cr.res}, err
			}
		}
	}

	return []Result{cr.res}, nil
}
