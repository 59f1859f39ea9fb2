package seed

import (
	"context"
	"fmt"
	"net/url"

	"github.com/example/schoolseed/internal/api"
	"github.com/example/schoolseed/internal/core/entity"
)

var defaultEventTypes = map[string]float64{
	"assembly":   0.25,
	"sports":     0.25,
	"concert":    0.15,
	"fundraiser": 0.15,
	"field_trip": 0.20,
}

// EventGenerator creates school events. The backend wants the caller
// identity for this resource as a created_by_id query parameter, not
// a body field.
type EventGenerator struct{}

func (EventGenerator) Kind() entity.Kind { return entity.KindEvent }
func (EventGenerator) Requires() []entity.Kind {
	return []entity.Kind{entity.KindSchool, entity.KindUser}
}

func (EventGenerator) Generate(ctx context.Context, run *Run) ([]Result, error) {
	school, err := run.school()
	if err != nil {
		return nil, err
	}
	admin, err := randomAdmin(run)
	if err != nil {
		return nil, err
	}

	dist, err := run.weighted(run.Config.Distributions.EventTypes, defaultEventTypes)
	if err != nil {
		return nil, err
	}

	failures := &tracker{}
	cr := newCreator(run, entity.KindEvent, failures)

	for i := 0; i < run.Config.Volumes.Events; i++ {
		eventType := dist.Sample(run.Rand)
		event := &entity.Event{
			SchoolID: school.ID,
			Name:     fmt.Sprintf("%s %s", run.Faker.AdjectiveDescriptive(), eventType),
			Type:     eventType,
			Date:     run.randomSchoolDay(),
			Location: school.Name,
		}
		if _, err := cr.create(ctx, event, callerQuery(entity.KindEvent, admin)); err != nil {
			return []Result{cr.res}, err
		}
	}

	return []Result{cr.res}, nil
}

// randomAdmin picks an administrator account to attribute creations
// to.
func randomAdmin(run *Run) (*entity.User, error) {
	var admins []*entity.User
	for _, rec := range run.Cache.All(entity.KindUser) {
		if user := rec.(*entity.User); user.Persona == entity.PersonaAdministrator {
			admins = append(admins, user)
		}
	}
	if len(admins) == 0 {
		return nil, &DependencyError{
			Kind:   entity.KindUser,
			Reason: "no administrator users in cache",
		}
	}
	return admins[run.Rand.Intn(len(admins))], nil
}

// callerQuery builds the created_by_id query parameter for the
// resources that require it.
func callerQuery(kind entity.Kind, admin *entity.User) url.Values {
	if !api.RequiresCreatedByQuery(kind.Resource()) {
		return nil
	}
	return url.Values{"created_by_id": {admin.ID}}
}
