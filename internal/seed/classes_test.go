package seed

import (
	"context"
	"testing"

	"github.com/example/schoolseed/internal/core/entity"
)

// 5 teachers, 10 students across grades 1-7, 2 subjects covering
// grades 1-7, 4 rooms. One class per (subject, populated grade) pair,
// valid teacher and classroom references, and no class for a grade
// without students.
func TestClassesCoverSubjectsTimesPopulatedGrades(t *testing.T) {
	cfg := testConfig()
	run, _ := newTestRun(t, cfg)
	seedSchool(t, run)

	teachers := make(map[string]bool)
	for i := 0; i < 5; i++ {
		teachers[seedTeacher(t, run, []int{1 + i, 2 + i}).ID] = true
	}

	gradesPresent := make(map[int]bool)
	for i := 0; i < 10; i++ {
		grade := cfg.Grades[i%len(cfg.Grades)]
		seedStudent(t, run, grade)
		gradesPresent[grade] = true
	}

	subjects := map[string]*entity.Subject{}
	for _, code := range []string{"MATH", "SCI"} {
		subj := seedSubject(t, run, code, []int{1, 2, 3, 4, 5, 6, 7})
		subjects[subj.ID] = subj
	}

	rooms := make(map[string]*entity.Room)
	for i := 0; i < 4; i++ {
		room := seedRoom(t, run, RoomTypeClassroom)
		rooms[room.ID] = room
	}

	results, err := ClassGenerator{}.Generate(context.Background(), run)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	wantClasses := 2 * len(gradesPresent)
	if results[0].Created != wantClasses {
		t.Fatalf("expected %d classes, got %d", wantClasses, results[0].Created)
	}

	for _, rec := range run.Cache.All(entity.KindClass) {
		class := rec.(*entity.Class)

		if !gradesPresent[class.GradeLevel] {
			t.Errorf("class %s created for grade %d with no students", class.Code, class.GradeLevel)
		}
		if !teachers[class.TeacherID] {
			t.Errorf("class %s references unknown teacher %s", class.Code, class.TeacherID)
		}
		room, ok := rooms[class.RoomID]
		if !ok || room.Type != RoomTypeClassroom {
			t.Errorf("class %s must reference a classroom, got %v", class.Code, room)
		}

		subject, ok := subjects[class.SubjectID]
		if !ok {
			t.Fatalf("class %s references unknown subject %s", class.Code, class.SubjectID)
		}
		covered := false
		for _, g := range subject.GradeLevels {
			if g == class.GradeLevel {
				covered = true
			}
		}
		if !covered {
			t.Errorf("class %s grade %d not in subject %s grade_levels", class.Code, class.GradeLevel, subject.Code)
		}
	}
}

func TestClassesSkipGradesSubjectDoesNotCover(t *testing.T) {
	run, _ := newTestRun(t, testConfig())
	seedSchool(t, run)
	seedTeacher(t, run, []int{1, 2, 3})
	seedStudent(t, run, 1)
	seedStudent(t, run, 7)
	seedSubject(t, run, "READ", []int{1, 2})
	seedRoom(t, run, RoomTypeClassroom)

	results, err := ClassGenerator{}.Generate(context.Background(), run)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	// Students exist in grades 1 and 7 but READ only covers 1-2.
	if results[0].Created != 1 {
		t.Errorf("expected 1 class, got %d", results[0].Created)
	}
	class := run.Cache.All(entity.KindClass)[0].(*entity.Class)
	if class.GradeLevel != 1 {
		t.Errorf("expected the class at grade 1, got %d", class.GradeLevel)
	}
}

func TestClassesPreferTeachersCoveringTheGrade(t *testing.T) {
	run, _ := newTestRun(t, testConfig())
	seedSchool(t, run)

	specialist := seedTeacher(t, run, []int{3})
	seedTeacher(t, run, []int{5, 6})
	seedTeacher(t, run, []int{1, 2})

	seedStudent(t, run, 3)
	seedSubject(t, run, "MATH", []int{3})
	seedRoom(t, run, RoomTypeClassroom)

	if _, err := (ClassGenerator{}).Generate(context.Background(), run); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	class := run.Cache.All(entity.KindClass)[0].(*entity.Class)
	if class.TeacherID != specialist.ID {
		t.Errorf("expected the grade-3 specialist, got %s", class.TeacherID)
	}
}

func TestClassesRequireAClassroom(t *testing.T) {
	run, _ := newTestRun(t, testConfig())
	seedSchool(t, run)
	seedTeacher(t, run, []int{1})
	seedStudent(t, run, 1)
	seedSubject(t, run, "MATH", []int{1})
	seedRoom(t, run, "gym")

	_, err := ClassGenerator{}.Generate(context.Background(), run)
	if err == nil {
		t.Fatal("expected dependency error without classrooms")
	}
}
