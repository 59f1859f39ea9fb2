package seed

import (
	"context"
	"encoding/json"
	"net/url"
	"testing"

	"github.com/google/uuid"

	"github.com/example/schoolseed/internal/api"
	"github.com/example/schoolseed/internal/cache"
	"github.com/example/schoolseed/internal/config"
	"github.com/example/schoolseed/internal/core/entity"
)

// fakeAPI implements APIClient in memory: it assigns a UUID to every
// created record and remembers bodies, queries and call order.
type fakeAPI struct {
	created  map[string][]map[string]any
	queries  map[string][]url.Values
	sequence []string

	// rejects[resource] rejects that many upcoming creates with a 422.
	rejects map[string]int

	// rejectOn[resource] rejects specific create calls by 0-based
	// index, counting rejected calls too.
	rejectOn map[string]map[int]bool
	calls    map[string]int

	// listings[resource] backs List responses.
	listings map[string][]map[string]any
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		created:  make(map[string][]map[string]any),
		queries:  make(map[string][]url.Values),
		rejects:  make(map[string]int),
		rejectOn: make(map[string]map[int]bool),
		calls:    make(map[string]int),
		listings: make(map[string][]map[string]any),
	}
}

func (f *fakeAPI) Create(_ context.Context, resource string, body any, query url.Values) (json.RawMessage, error) {
	idx := f.calls[resource]
	f.calls[resource]++
	if f.rejects[resource] > 0 || f.rejectOn[resource][idx] {
		if f.rejects[resource] > 0 {
			f.rejects[resource]--
		}
		return nil, &api.Error{Resource: resource, StatusCode: 422, Detail: "rejected by test"}
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	var record map[string]any
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}
	record["id"] = uuid.NewString()

	f.created[resource] = append(f.created[resource], record)
	f.queries[resource] = append(f.queries[resource], query)
	f.sequence = append(f.sequence, resource)

	return json.Marshal(record)
}

func (f *fakeAPI) List(_ context.Context, resource string, _ url.Values) ([]json.RawMessage, error) {
	var items []json.RawMessage
	for _, item := range f.listings[resource] {
		data, err := json.Marshal(item)
		if err != nil {
			return nil, err
		}
		items = append(items, data)
	}
	return items, nil
}

func testConfig() *config.Config {
	return &config.Config{
		API:    config.API{BaseURL: "http://test", TimeoutSeconds: 1, MaxRetries: 1},
		School: config.SchoolProfile{Name: "Hill Valley High", Slug: "hill-valley", Email: "office@hillvalley.edu"},
		Grades: []int{1, 2, 3, 4, 5, 6, 7},
		Volumes: config.Volumes{
			Administrators:        2,
			Teachers:              5,
			Parents:               10,
			Students:              10,
			Rooms:                 4,
			Events:                3,
			Activities:            2,
			Vendors:               2,
			MeritsPerStudent:      1,
			LessonsPerClass:       2,
			AssessmentsPerStudent: 2,
			AttendanceDays:        3,
		},
		Subjects: []config.SubjectSpec{
			{Code: "MATH", Name: "Mathematics", GradeLevels: []int{1, 2, 3, 4, 5, 6, 7}},
			{Code: "SCI", Name: "Science", GradeLevels: []int{1, 2, 3, 4, 5, 6, 7}},
		},
		Calendar: config.Calendar{
			AcademicYear: "2025-2026",
			Quarter:      "Q1",
			StartDate:    "2025-08-15",
			EndDate:      "2026-06-05",
		},
	}
}

func newTestRun(t *testing.T, cfg *config.Config) (*Run, *fakeAPI) {
	t.Helper()
	fake := newFakeAPI()
	run := NewSeededRun(cfg, cache.NewSeeded(1), fake, 42)
	run.Keys = NewKeyAllocatorWithToken("t1")
	return run, fake
}

// seed helpers for generator tests that skip the earlier stages.

func seedSchool(t *testing.T, run *Run) *entity.School {
	t.Helper()
	school := &entity.School{ID: uuid.NewString(), Name: "Hill Valley High", Slug: "hill-valley"}
	if err := run.Cache.Add(school); err != nil {
		t.Fatalf("failed to seed school: %v", err)
	}
	return school
}

func seedTeacher(t *testing.T, run *Run, grades []int) *entity.Teacher {
	t.Helper()
	teacher := &entity.Teacher{
		ID:          uuid.NewString(),
		UserID:      uuid.NewString(),
		FirstName:   run.Faker.FirstName(),
		LastName:    run.Faker.LastName(),
		EmployeeID:  run.Keys.Next("EMP"),
		GradeLevels: grades,
	}
	if err := run.Cache.Add(teacher); err != nil {
		t.Fatalf("failed to seed teacher: %v", err)
	}
	return teacher
}

func seedStudent(t *testing.T, run *Run, grade int) *entity.Student {
	t.Helper()
	student := &entity.Student{
		ID:         uuid.NewString(),
		UserID:     uuid.NewString(),
		FirstName:  run.Faker.FirstName(),
		LastName:   run.Faker.LastName(),
		StudentID:  run.Keys.Next("STU"),
		GradeLevel: grade,
	}
	if err := run.Cache.Add(student); err != nil {
		t.Fatalf("failed to seed student: %v", err)
	}
	return student
}

func seedParent(t *testing.T, run *Run) *entity.Parent {
	t.Helper()
	parent := &entity.Parent{
		ID:        uuid.NewString(),
		UserID:    uuid.NewString(),
		FirstName: run.Faker.FirstName(),
		LastName:  run.Faker.LastName(),
	}
	if err := run.Cache.Add(parent); err != nil {
		t.Fatalf("failed to seed parent: %v", err)
	}
	return parent
}

func seedSubject(t *testing.T, run *Run, code string, grades []int) *entity.Subject {
	t.Helper()
	subject := &entity.Subject{
		ID:          uuid.NewString(),
		Code:        code,
		Name:        code,
		GradeLevels: grades,
	}
	if err := run.Cache.Add(subject); err != nil {
		t.Fatalf("failed to seed subject: %v", err)
	}
	return subject
}

func seedRoom(t *testing.T, run *Run, roomType string) *entity.Room {
	t.Helper()
	room := &entity.Room{
		ID:         uuid.NewString(),
		RoomNumber: run.Keys.Next("RM"),
		Type:       roomType,
		Capacity:   25,
	}
	if err := run.Cache.Add(room); err != nil {
		t.Fatalf("failed to seed room: %v", err)
	}
	return room
}
