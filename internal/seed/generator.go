package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/example/schoolseed/internal/api"
	"github.com/example/schoolseed/internal/core/entity"
)

// maxConsecutiveFailures is the point at which record-level API
// rejections stop looking like bad records and start looking like a
// systemic problem, aborting the generator.
const maxConsecutiveFailures = 5

// Generator produces all records of one entity kind. Generators for
// kinds that wrap a user (teacher, parent, student) also report the
// users they created, hence the result slice.
type Generator interface {
	// Kind is the primary entity kind the generator produces.
	Kind() entity.Kind

	// Requires lists the kinds that must already be cached before
	// this generator can run. Checked up front in restricted mode.
	Requires() []entity.Kind

	Generate(ctx context.Context, run *Run) ([]Result, error)
}

// Result is the per-kind outcome of one generator.
type Result struct {
	Kind    entity.Kind `json:"kind"`
	Created int         `json:"created"`
	Skipped int         `json:"skipped"`
	Reused  int         `json:"reused"`
}

// DependencyError reports a generator whose prerequisites are not
// satisfiable: it aborts the generator (and the run) before any API
// call for that stage.
type DependencyError struct {
	Kind   entity.Kind
	Reason string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s: dependency not satisfied: %s", e.Kind, e.Reason)
}

// tracker counts consecutive record-level failures across the
// creators of one generator.
type tracker struct {
	consecutive int
}

// creator issues create calls for one kind, caches the results and
// applies the shared failure policy: 4xx skips the record (and counts
// toward the consecutive-failure abort), anything else aborts.
type creator struct {
	run      *Run
	res      Result
	failures *tracker
}

func newCreator(run *Run, kind entity.Kind, failures *tracker) *creator {
	return &creator{
		run:      run,
		res:      Result{Kind: kind},
		failures: failures,
	}
}

// create POSTs the record, decodes the server response (which carries
// the assigned UUID) back into it, and caches it. The returned bool
// is true when the record was skipped on a validation rejection.
func (c *creator) create(ctx context.Context, rec entity.Record, query url.Values) (bool, error) {
	kind := rec.Kind()

	raw, err := c.run.API.Create(ctx, kind.Resource(), rec, query)
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.IsClientError() {
			c.res.Skipped++
			c.failures.consecutive++
			if c.failures.consecutive >= maxConsecutiveFailures {
				return false, fmt.Errorf("%s: %d consecutive rejections, aborting: %w", kind, c.failures.consecutive, err)
			}
			return true, nil
		}
		return false, fmt.Errorf("failed to create %s: %w", kind, err)
	}

	if err := json.Unmarshal(raw, rec); err != nil {
		return false, fmt.Errorf("failed to decode created %s: %w", kind, err)
	}
	if rec.GetID() == "" {
		return false, fmt.Errorf("created %s response carried no id", kind)
	}

	if err := c.run.Cache.Add(rec); err != nil {
		return false, fmt.Errorf("failed to cache created %s: %w", kind, err)
	}

	c.res.Created++
	c.failures.consecutive = 0
	return false, nil
}
