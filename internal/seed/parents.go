package seed

import (
	"context"

	"github.com/example/schoolseed/internal/core/entity"
)

// ParentGenerator creates parent accounts, one user plus one parent
// record each. The link generator pairs them with students later, so
// the configured parent volume must cover the student volume (checked
// at config validation and again by the link generator).
type ParentGenerator struct{}

func (ParentGenerator) Kind() entity.Kind { return entity.KindParent }
func (ParentGenerator) Requires() []entity.Kind {
	return []entity.Kind{entity.KindSchool}
}

func (ParentGenerator) Generate(ctx context.Context, run *Run) ([]Result, error) {
	school, err := run.school()
	if err != nil {
		return nil, err
	}

	failures := &tracker{}
	users := newCreator(run, entity.KindUser, failures)
	parents := newCreator(run, entity.KindParent, failures)

	for i := 0; i < run.Config.Volumes.Parents; i++ {
		user, first, last := newPersonUser(run, school, entity.PersonaParent)
		skipped, err := users.create(ctx, user, nil)
		if err != nil {
			return []Result{users.res, parents.res}, err
		}
		if skipped {
			parents.res.Skipped++
			continue
		}

		parent := &entity.Parent{
			SchoolID:  school.ID,
			UserID:    user.ID,
			FirstName: first,
			LastName:  last,
			Phone:     run.Faker.Phone(),
		}
		if _, err := parents.create(ctx, parent, nil); err != nil {
			return []Result{users.res, parents.res}, err
		}
	}

	return []Result{users.res, parents.res}, nil
}
