// Package cache is the in-memory record of everything a seeding run
// has created: UUID lookup, natural-key indexes, relationship lists,
// and a JSON snapshot for resumable runs and offline lookups.
//
// A Cache is an explicit value handed to whoever needs it. There is no
// package-level instance, so independent caches can coexist (parallel
// tests, side-by-side runs).
package cache

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/schoolseed/internal/core/entity"
)

var (
	// ErrNotFound is returned when no record matches a lookup.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateID is returned when Add sees a UUID already cached
	// for the kind. UUIDs are server-assigned, so this indicates a
	// bug or a corrupted snapshot, never normal operation.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrSampleTooLarge is returned when RandomSample is asked for
	// more records than the kind has.
	ErrSampleTooLarge = errors.New("sample larger than population")
)

// Cache indexes created entities by UUID and natural key.
// It is append-only: records are never mutated or removed.
type Cache struct {
	records map[entity.Kind]map[string]entity.Record
	order   map[entity.Kind][]string

	// byKey is kind -> natural key name -> value -> UUID.
	byKey map[entity.Kind]map[string]map[string]string

	parentsByStudent map[string][]string
	classesByStudent map[string][]string

	rng *rand.Rand
}

// New returns an empty cache with a time-seeded sampler.
func New() *Cache {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns an empty cache whose RandomSample draws from a
// deterministic source. Used by tests.
func NewSeeded(seed int64) *Cache {
	return &Cache{
		records:          make(map[entity.Kind]map[string]entity.Record),
		order:            make(map[entity.Kind][]string),
		byKey:            make(map[entity.Kind]map[string]map[string]string),
		parentsByStudent: make(map[string][]string),
		classesByStudent: make(map[string][]string),
		rng:              rand.New(rand.NewSource(seed)),
	}
}

// Add stores a record under its UUID. The record's ID must already be
// populated (the server assigns it). Natural-key indexes and
// relationship lists are maintained here so lookups stay O(1).
func (c *Cache) Add(rec entity.Record) error {
	kind := rec.Kind()
	id := rec.GetID()
	if id == "" {
		return fmt.Errorf("cannot cache %s record without an id", kind)
	}
	if err := uuid.Validate(id); err != nil {
		return fmt.Errorf("%s id %q is not a UUID: %w", kind, id, err)
	}

	if c.records[kind] == nil {
		c.records[kind] = make(map[string]entity.Record)
	}
	if _, exists := c.records[kind][id]; exists {
		return fmt.Errorf("%s %s: %w", kind, id, ErrDuplicateID)
	}

	c.records[kind][id] = rec
	c.order[kind] = append(c.order[kind], id)

	for key, value := range rec.NaturalKeys() {
		if value == "" {
			continue
		}
		if c.byKey[kind] == nil {
			c.byKey[kind] = make(map[string]map[string]string)
		}
		if c.byKey[kind][key] == nil {
			c.byKey[kind][key] = make(map[string]string)
		}
		c.byKey[kind][key][value] = id
	}

	switch link := rec.(type) {
	case *entity.ParentStudentLink:
		c.parentsByStudent[link.StudentID] = append(c.parentsByStudent[link.StudentID], link.ParentID)
	case *entity.StudentClassLink:
		c.classesByStudent[link.StudentID] = append(c.classesByStudent[link.StudentID], link.ClassID)
	}

	return nil
}

// Get retrieves a record by UUID.
func (c *Cache) Get(kind entity.Kind, id string) (entity.Record, error) {
	rec, ok := c.records[kind][id]
	if !ok {
		return nil, fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
	}
	return rec, nil
}

// All returns every record of a kind in insertion order.
func (c *Cache) All(kind entity.Kind) []entity.Record {
	ids := c.order[kind]
	out := make([]entity.Record, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.records[kind][id])
	}
	return out
}

// Count returns the number of cached records of a kind.
func (c *Cache) Count(kind entity.Kind) int {
	return len(c.order[kind])
}

// FindByNaturalKey resolves a record through its natural-key index
// (email, student_id, employee_id, room_number, code, slug).
func (c *Cache) FindByNaturalKey(kind entity.Kind, key, value string) (entity.Record, error) {
	id, ok := c.byKey[kind][key][value]
	if !ok {
		return nil, fmt.Errorf("%s with %s=%q: %w", kind, key, value, ErrNotFound)
	}
	return c.records[kind][id], nil
}

// FindByName scans name-bearing records of a kind for a
// case-insensitive first/last name match. Intended for the offline
// find command, not for relationship building.
func (c *Cache) FindByName(kind entity.Kind, first, last string) (entity.Record, error) {
	for _, id := range c.order[kind] {
		named, ok := c.records[kind][id].(entity.Named)
		if !ok {
			continue
		}
		f, l := named.Names()
		if strings.EqualFold(f, first) && strings.EqualFold(l, last) {
			return c.records[kind][id], nil
		}
	}
	return nil, fmt.Errorf("%s named %q %q: %w", kind, first, last, ErrNotFound)
}

// RandomSample returns n distinct records of a kind, uniformly
// without replacement. Asking for more than the population has is an
// error, never a silent short result.
func (c *Cache) RandomSample(kind entity.Kind, n int) ([]entity.Record, error) {
	ids := c.order[kind]
	if n > len(ids) {
		return nil, fmt.Errorf("%s: want %d of %d: %w", kind, n, len(ids), ErrSampleTooLarge)
	}

	picked := make([]string, len(ids))
	copy(picked, ids)
	c.rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})

	out := make([]entity.Record, n)
	for i := 0; i < n; i++ {
		out[i] = c.records[kind][picked[i]]
	}
	return out, nil
}

// RandomOne returns one uniformly chosen record of a kind.
func (c *Cache) RandomOne(kind entity.Kind) (entity.Record, error) {
	recs, err := c.RandomSample(kind, 1)
	if err != nil {
		return nil, err
	}
	return recs[0], nil
}

// ParentsOf returns the parent UUIDs linked to a student.
func (c *Cache) ParentsOf(studentID string) []string {
	return c.parentsByStudent[studentID]
}

// ClassesOf returns the class UUIDs a student is enrolled in.
func (c *Cache) ClassesOf(studentID string) []string {
	return c.classesByStudent[studentID]
}
