package seed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/example/schoolseed/internal/api"
	"github.com/example/schoolseed/internal/cache"
	"github.com/example/schoolseed/internal/core/entity"
)

// Three 503s followed by a success must leave exactly one record in
// the cache: the retries happen inside the client, so the generator
// sees a single successful create.
func TestTransientServerErrorsCreateTheRecordOnce(t *testing.T) {
	attempts := 0
	createdID := uuid.NewString()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.Write([]byte(`[]`))
			return
		}
		attempts++
		if attempts <= 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "` + createdID + `", "name": "Hill Valley High", "slug": "hill-valley"}`))
	}))
	t.Cleanup(server.Close)

	cfg := testConfig()
	cfg.API.BaseURL = server.URL
	client := api.NewClient(api.Options{
		BaseURL:      server.URL,
		Timeout:      5 * time.Second,
		MaxRetries:   4,
		RetryWaitMin: time.Millisecond,
		RetryWaitMax: 5 * time.Millisecond,
	})
	run := NewSeededRun(cfg, cache.NewSeeded(1), client, 42)
	run.Keys = NewKeyAllocatorWithToken("t1")

	results, err := SchoolGenerator{}.Generate(context.Background(), run)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if attempts != 4 {
		t.Errorf("expected 4 attempts (3 failures + 1 success), got %d", attempts)
	}
	if results[0].Created != 1 || results[0].Skipped != 0 {
		t.Errorf("expected 1 created / 0 skipped, got %+v", results[0])
	}
	if n := run.Cache.Count(entity.KindSchool); n != 1 {
		t.Errorf("expected exactly one cached school, got %d", n)
	}
	rec, err := run.Cache.Get(entity.KindSchool, createdID)
	if err != nil {
		t.Fatalf("created school not cached under its id: %v", err)
	}
	if rec.(*entity.School).Slug != "hill-valley" {
		t.Errorf("cached school lost its slug: %+v", rec)
	}
}
