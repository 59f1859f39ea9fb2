package seed

import (
	"context"

	"github.com/example/schoolseed/internal/core/entity"
)

// UserGenerator creates the administrator accounts. Teacher, parent
// and student accounts are created by their own generators, right
// before the role record that wraps them.
type UserGenerator struct{}

func (UserGenerator) Kind() entity.Kind { return entity.KindUser }
func (UserGenerator) Requires() []entity.Kind {
	return []entity.Kind{entity.KindSchool}
}

func (UserGenerator) Generate(ctx context.Context, run *Run) ([]Result, error) {
	school, err := run.school()
	if err != nil {
		return nil, err
	}

	failures := &tracker{}
	cr := newCreator(run, entity.KindUser, failures)

	for i := 0; i < run.Config.Volumes.Administrators; i++ {
		first := run.Faker.FirstName()
		last := run.Faker.LastName()
		user := &entity.User{
			SchoolID:  school.ID,
			Email:     run.Keys.Email(first, last, school.Slug+".edu"),
			FirstName: first,
			LastName:  last,
			Persona:   entity.PersonaAdministrator,
			Status:    "active",
		}
		if _, err := cr.create(ctx, user, nil); err != nil {
			return []Result{cr.res}, err
		}
	}

	return []Result{cr.res}, nil
}

// newPersonUser builds the user record a role generator wraps.
func newPersonUser(run *Run, school *entity.School, persona entity.Persona) (*entity.User, string, string) {
	first := run.Faker.FirstName()
	last := run.Faker.LastName()
	user := &entity.User{
		SchoolID:  school.ID,
		Email:     run.Keys.Email(first, last, school.Slug+".edu"),
		FirstName: first,
		LastName:  last,
		Persona:   persona,
		Status:    "active",
	}
	return user, first, last
}
