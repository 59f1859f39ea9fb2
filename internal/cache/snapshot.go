package cache

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/example/schoolseed/internal/core/entity"
)

// Snapshot is the JSON file form of a cache. One typed slice per
// kind keeps the file human-inspectable and the decode compile-checked.
type Snapshot struct {
	Schools            []*entity.School            `json:"schools,omitempty"`
	Users              []*entity.User              `json:"users,omitempty"`
	Teachers           []*entity.Teacher           `json:"teachers,omitempty"`
	Parents            []*entity.Parent            `json:"parents,omitempty"`
	Students           []*entity.Student           `json:"students,omitempty"`
	ParentStudentLinks []*entity.ParentStudentLink `json:"parent_student_links,omitempty"`
	Subjects           []*entity.Subject           `json:"subjects,omitempty"`
	Rooms              []*entity.Room              `json:"rooms,omitempty"`
	Classes            []*entity.Class             `json:"classes,omitempty"`
	StudentClassLinks  []*entity.StudentClassLink  `json:"student_class_links,omitempty"`
	Lessons            []*entity.Lesson            `json:"lessons,omitempty"`
	Assessments        []*entity.Assessment        `json:"assessments,omitempty"`
	Attendance         []*entity.Attendance        `json:"attendance,omitempty"`
	Events             []*entity.Event             `json:"events,omitempty"`
	Activities         []*entity.Activity          `json:"activities,omitempty"`
	Vendors            []*entity.Vendor            `json:"vendors,omitempty"`
	Merits             []*entity.Merit             `json:"merits,omitempty"`
}

func collect[T entity.Record](c *Cache, kind entity.Kind) []T {
	ids := c.order[kind]
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		if rec, ok := c.records[kind][id].(T); ok {
			out = append(out, rec)
		}
	}
	return out
}

func addAll[T entity.Record](c *Cache, recs []T) error {
	for _, rec := range recs {
		if err := c.Add(rec); err != nil {
			return err
		}
	}
	return nil
}

// Export captures every cached record, in insertion order, as a
// snapshot. Relationship lists are not exported separately: they are
// rebuilt from the link records on Import, which keeps the round trip
// lossless by construction.
func (c *Cache) Export() *Snapshot {
	return &Snapshot{
		Schools:            collect[*entity.School](c, entity.KindSchool),
		Users:              collect[*entity.User](c, entity.KindUser),
		Teachers:           collect[*entity.Teacher](c, entity.KindTeacher),
		Parents:            collect[*entity.Parent](c, entity.KindParent),
		Students:           collect[*entity.Student](c, entity.KindStudent),
		ParentStudentLinks: collect[*entity.ParentStudentLink](c, entity.KindParentStudentLink),
		Subjects:           collect[*entity.Subject](c, entity.KindSubject),
		Rooms:              collect[*entity.Room](c, entity.KindRoom),
		Classes:            collect[*entity.Class](c, entity.KindClass),
		StudentClassLinks:  collect[*entity.StudentClassLink](c, entity.KindStudentClassLink),
		Lessons:            collect[*entity.Lesson](c, entity.KindLesson),
		Assessments:        collect[*entity.Assessment](c, entity.KindAssessment),
		Attendance:         collect[*entity.Attendance](c, entity.KindAttendance),
		Events:             collect[*entity.Event](c, entity.KindEvent),
		Activities:         collect[*entity.Activity](c, entity.KindActivity),
		Vendors:            collect[*entity.Vendor](c, entity.KindVendor),
		Merits:             collect[*entity.Merit](c, entity.KindMerit),
	}
}

// Import replays a snapshot into the cache in dependency order.
// Importing a snapshot with UUIDs already present fails with
// ErrDuplicateID.
func (c *Cache) Import(snap *Snapshot) error {
	if err := addAll(c, snap.Schools); err != nil {
		return err
	}
	if err := addAll(c, snap.Users); err != nil {
		return err
	}
	if err := addAll(c, snap.Teachers); err != nil {
		return err
	}
	if err := addAll(c, snap.Parents); err != nil {
		return err
	}
	if err := addAll(c, snap.Students); err != nil {
		return err
	}
	if err := addAll(c, snap.ParentStudentLinks); err != nil {
		return err
	}
	if err := addAll(c, snap.Subjects); err != nil {
		return err
	}
	if err := addAll(c, snap.Rooms); err != nil {
		return err
	}
	if err := addAll(c, snap.Classes); err != nil {
		return err
	}
	if err := addAll(c, snap.StudentClassLinks); err != nil {
		return err
	}
	if err := addAll(c, snap.Lessons); err != nil {
		return err
	}
	if err := addAll(c, snap.Assessments); err != nil {
		return err
	}
	if err := addAll(c, snap.Attendance); err != nil {
		return err
	}
	if err := addAll(c, snap.Events); err != nil {
		return err
	}
	if err := addAll(c, snap.Activities); err != nil {
		return err
	}
	if err := addAll(c, snap.Vendors); err != nil {
		return err
	}
	return addAll(c, snap.Merits)
}

// Save writes the cache snapshot as indented JSON.
func (c *Cache) Save(path string) error {
	data, err := json.MarshalIndent(c.Export(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	return nil
}

// Load reads a snapshot file into a fresh cache.
func Load(path string) (*Cache, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse cache file: %w", err)
	}
	c := New()
	if err := c.Import(&snap); err != nil {
		return nil, fmt.Errorf("failed to import cache file: %w", err)
	}
	return c, nil
}
