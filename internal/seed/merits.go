package seed

import (
	"context"

	"github.com/example/schoolseed/internal/core/entity"
)

var meritTypes = []string{"gold_star", "citizenship", "honor_roll", "effort"}

// MeritGenerator awards merits to students, attributed to a teacher's
// or administrator's user account.
type MeritGenerator struct{}

func (MeritGenerator) Kind() entity.Kind { return entity.KindMerit }
func (MeritGenerator) Requires() []entity.Kind {
	return []entity.Kind{entity.KindStudent, entity.KindTeacher}
}

func (g MeritGenerator) Generate(ctx context.Context, run *Run) ([]Result, error) {
	school, err := run.school()
	if err != nil {
		return nil, err
	}

	awarders := g.awarderUserIDs(run)
	if len(awarders) == 0 {
		return nil, &DependencyError{
			Kind:   entity.KindMerit,
			Reason: "no teacher or administrator users to award merits",
		}
	}

	failures := &tracker{}
	cr := newCreator(run, entity.KindMerit, failures)

	for _, rec := range run.Cache.All(entity.KindStudent) {
		student := rec.(*entity.Student)

		for i := 0; i < run.Config.Volumes.MeritsPerStudent; i++ {
			merit := &entity.Merit{
				SchoolID:    school.ID,
				StudentID:   student.ID,
				AwardedByID: awarders[run.Rand.Intn(len(awarders))],
				Type:        meritTypes[run.Rand.Intn(len(meritTypes))],
				Points:      1 + run.Rand.Intn(10),
				Reason:      run.Faker.Sentence(6),
				Date:        run.randomSchoolDay(),
			}
			if _, err := cr.create(ctx, merit, nil); err != nil {
				return []Result{cr.res}, err
			}
		}
	}

	return []Result{cr.res}, nil
}

// awarderUserIDs collects user accounts allowed to award merits:
// teachers and administrators.
func (MeritGenerator) awarderUserIDs(run *Run) []string {
	var ids []string
	for _, rec := range run.Cache.All(entity.KindUser) {
		user := rec.(*entity.User)
		if user.Persona == entity.PersonaTeacher || user.Persona == entity.PersonaAdministrator {
			ids = append(ids, user.ID)
		}
	}
	return ids
}
