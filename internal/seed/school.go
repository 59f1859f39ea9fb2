package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/example/schoolseed/internal/core/entity"
)

// SchoolGenerator creates (or reuses) the single school a run seeds
// under. Reuse by slug is what makes repeated runs against the same
// backend idempotent at the root: one school, new children each run.
type SchoolGenerator struct{}

func (SchoolGenerator) Kind() entity.Kind       { return entity.KindSchool }
func (SchoolGenerator) Requires() []entity.Kind { return nil }

func (g SchoolGenerator) Generate(ctx context.Context, run *Run) ([]Result, error) {
	profile := run.Config.School

	// A resumed run already holds the school in its imported cache.
	if _, err := run.Cache.FindByNaturalKey(entity.KindSchool, "slug", profile.Slug); err == nil {
		return []Result{{Kind: entity.KindSchool, Reused: 1}}, nil
	}

	existing, err := g.findBySlug(ctx, run, profile.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := run.Cache.Add(existing); err != nil {
			return nil, fmt.Errorf("failed to cache existing school: %w", err)
		}
		return []Result{{Kind: entity.KindSchool, Reused: 1}}, nil
	}

	failures := &tracker{}
	cr := newCreator(run, entity.KindSchool, failures)

	school := &entity.School{
		Name:    profile.Name,
		Slug:    profile.Slug,
		Address: profile.Address,
		City:    profile.City,
		State:   profile.State,
		Zip:     profile.Zip,
		Phone:   profile.Phone,
		Email:   profile.Email,
	}
	skipped, err := cr.create(ctx, school, nil)
	if err != nil {
		return nil, err
	}
	if skipped {
		// The one record of the root stage was rejected; nothing
		// downstream can be created.
		return nil, fmt.Errorf("school %q was rejected by the API", profile.Slug)
	}

	return []Result{cr.res}, nil
}

func (SchoolGenerator) findBySlug(ctx context.Context, run *Run, slug string) (*entity.School, error) {
	items, err := run.API.List(ctx, entity.KindSchool.Resource(), url.Values{"slug": {slug}})
	if err != nil {
		return nil, fmt.Errorf("failed to look up school by slug: %w", err)
	}
	for _, item := range items {
		var school entity.School
		if err := json.Unmarshal(item, &school); err != nil {
			return nil, fmt.Errorf("failed to decode school listing: %w", err)
		}
		if school.Slug == slug && school.ID != "" {
			return &school, nil
		}
	}
	return nil, nil
}
