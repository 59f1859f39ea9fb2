package seed

import (
	"context"
	"fmt"
	"sort"

	"github.com/example/schoolseed/internal/core/entity"
)

// ClassGenerator creates one teaching assignment per (subject, grade)
// pair where the subject covers the grade and at least one student of
// that grade exists. Teachers covering the grade are preferred; any
// teacher is the fallback. Rooms must be classrooms.
type ClassGenerator struct{}

func (ClassGenerator) Kind() entity.Kind { return entity.KindClass }
func (ClassGenerator) Requires() []entity.Kind {
	return []entity.Kind{entity.KindSubject, entity.KindTeacher, entity.KindRoom, entity.KindStudent}
}

func (g ClassGenerator) Generate(ctx context.Context, run *Run) ([]Result, error) {
	school, err := run.school()
	if err != nil {
		return nil, err
	}

	classrooms := g.classrooms(run)
	if len(classrooms) == 0 {
		return nil, &DependencyError{
			Kind:   entity.KindClass,
			Reason: "no rooms of type classroom in cache",
		}
	}
	if run.Cache.Count(entity.KindTeacher) == 0 {
		return nil, &DependencyError{
			Kind:   entity.KindClass,
			Reason: "no teachers in cache",
		}
	}

	grades := g.gradesPresent(run)

	failures := &tracker{}
	cr := newCreator(run, entity.KindClass, failures)

	for _, rec := range run.Cache.All(entity.KindSubject) {
		subject := rec.(*entity.Subject)
		covered := make(map[int]bool, len(subject.GradeLevels))
		for _, gl := range subject.GradeLevels {
			covered[gl] = true
		}

		for _, grade := range grades {
			if !covered[grade] {
				continue
			}

			teacher, err := g.pickTeacher(run, grade)
			if err != nil {
				return []Result{cr.res}, err
			}
			room := classrooms[run.Rand.Intn(len(classrooms))]

			class := &entity.Class{
				SchoolID:     school.ID,
				SubjectID:    subject.ID,
				TeacherID:    teacher.ID,
				RoomID:       room.ID,
				Code:         g.classCode(run, subject, grade),
				GradeLevel:   grade,
				Quarter:      run.Config.Calendar.Quarter,
				AcademicYear: run.Config.Calendar.AcademicYear,
			}
			if _, err := cr.create(ctx, class, nil); err != nil {
				return []Result{cr.res}, err
			}
		}
	}

	return []Result{cr.res}, nil
}

// gradesPresent returns the distinct grade levels of cached students,
// ascending. Grades with no students get no classes.
func (ClassGenerator) gradesPresent(run *Run) []int {
	seen := make(map[int]bool)
	for _, rec := range run.Cache.All(entity.KindStudent) {
		seen[rec.(*entity.Student).GradeLevel] = true
	}
	grades := make([]int, 0, len(seen))
	for g := range seen {
		grades = append(grades, g)
	}
	sort.Ints(grades)
	return grades
}

func (ClassGenerator) classrooms(run *Run) []*entity.Room {
	var rooms []*entity.Room
	for _, rec := range run.Cache.All(entity.KindRoom) {
		if room := rec.(*entity.Room); room.Type == RoomTypeClassroom {
			rooms = append(rooms, room)
		}
	}
	return rooms
}

// pickTeacher prefers a random teacher whose declared grade levels
// include the target grade, falling back to any teacher.
func (ClassGenerator) pickTeacher(run *Run, grade int) (*entity.Teacher, error) {
	var matching []*entity.Teacher
	for _, rec := range run.Cache.All(entity.KindTeacher) {
		teacher := rec.(*entity.Teacher)
		for _, gl := range teacher.GradeLevels {
			if gl == grade {
				matching = append(matching, teacher)
				break
			}
		}
	}
	if len(matching) > 0 {
		return matching[run.Rand.Intn(len(matching))], nil
	}

	rec, err := run.Cache.RandomOne(entity.KindTeacher)
	if err != nil {
		return nil, fmt.Errorf("failed to pick teacher for grade %d: %w", grade, err)
	}
	return rec.(*entity.Teacher), nil
}

// classCode builds a run-unique code from the subject code, the grade
// and a per-grade running counter.
func (ClassGenerator) classCode(run *Run, subject *entity.Subject, grade int) string {
	seq := run.Keys.Seq(fmt.Sprintf("class-%d", grade))
	return fmt.Sprintf("%s-%d-%s-%02d", subject.Code, grade, run.Keys.Token(), seq)
}
