// Package seed contains the per-entity generators and the
// orchestrator that runs them in dependency order against the backend
// API, recording everything created in the entity cache.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/url"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/example/schoolseed/internal/cache"
	"github.com/example/schoolseed/internal/config"
	"github.com/example/schoolseed/internal/core/entity"
)

// APIClient is the slice of the backend client the generators use.
type APIClient interface {
	Create(ctx context.Context, resource string, body any, query url.Values) (json.RawMessage, error)
	List(ctx context.Context, resource string, query url.Values) ([]json.RawMessage, error)
}

// Run carries everything the generators share for one seeding run:
// the cache, the validated config, the API client, the key allocator
// and the random sources. It is passed explicitly; there is no
// package-level state.
type Run struct {
	Cache  *cache.Cache
	Config *config.Config
	API    APIClient
	Keys   *KeyAllocator
	Rand   *rand.Rand
	Faker  *gofakeit.Faker
}

// NewRun builds a run context with time-seeded random sources.
func NewRun(cfg *config.Config, c *cache.Cache, client APIClient) *Run {
	seedVal := time.Now().UnixNano()
	return NewSeededRun(cfg, c, client, seedVal)
}

// NewSeededRun builds a run context with deterministic random
// sources and a fixed key token. Used by tests.
func NewSeededRun(cfg *config.Config, c *cache.Cache, client APIClient, seedVal int64) *Run {
	return &Run{
		Cache:  c,
		Config: cfg,
		API:    client,
		Keys:   NewKeyAllocator(),
		Rand:   rand.New(rand.NewSource(seedVal)),
		Faker:  gofakeit.New(uint64(seedVal)),
	}
}

// school returns the run's school record, which every generator after
// the first stage needs for its school_id.
func (r *Run) school() (*entity.School, error) {
	recs := r.Cache.All(entity.KindSchool)
	if len(recs) == 0 {
		return nil, &DependencyError{
			Kind:   entity.KindSchool,
			Reason: "no school in cache",
		}
	}
	return recs[0].(*entity.School), nil
}

// weighted builds a sampler from the configured table, falling back
// to the generator's default when the config leaves it empty. Both
// tables are validated (config at load time, defaults by
// construction), so a failure here is a programming error.
func (r *Run) weighted(table, fallback map[string]float64) (*Weighted, error) {
	if len(table) == 0 {
		table = fallback
	}
	w, err := NewWeighted(table)
	if err != nil {
		return nil, fmt.Errorf("failed to build weight table: %w", err)
	}
	return w, nil
}

// schoolDays lists weekdays from the calendar start, bounded by the
// calendar end, up to max days (0 means no cap).
func (r *Run) schoolDays(max int) []time.Time {
	start := r.Config.Calendar.Start()
	end := r.Config.Calendar.End()

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		days = append(days, d)
		if max > 0 && len(days) == max {
			break
		}
	}
	return days
}

// randomSchoolDay picks one weekday within the calendar bounds.
func (r *Run) randomSchoolDay() string {
	days := r.schoolDays(0)
	if len(days) == 0 {
		return r.Config.Calendar.StartDate
	}
	return days[r.Rand.Intn(len(days))].Format(entity.DateLayout)
}
