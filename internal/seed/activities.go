package seed

import (
	"context"
	"fmt"

	"github.com/example/schoolseed/internal/core/entity"
)

var activityTypes = []string{"club", "sport", "arts", "academic"}

// ActivityGenerator creates extracurricular activities.
type ActivityGenerator struct{}

func (ActivityGenerator) Kind() entity.Kind { return entity.KindActivity }
func (ActivityGenerator) Requires() []entity.Kind {
	return []entity.Kind{entity.KindSchool}
}

func (ActivityGenerator) Generate(ctx context.Context, run *Run) ([]Result, error) {
	school, err := run.school()
	if err != nil {
		return nil, err
	}

	failures := &tracker{}
	cr := newCreator(run, entity.KindActivity, failures)

	for i := 0; i < run.Config.Volumes.Activities; i++ {
		hobby := run.Faker.Hobby()
		activity := &entity.Activity{
			SchoolID:    school.ID,
			Name:        fmt.Sprintf("%s club", hobby),
			Type:        activityTypes[run.Rand.Intn(len(activityTypes))],
			Description: run.Faker.Sentence(8),
		}
		if _, err := cr.create(ctx, activity, nil); err != nil {
			return []Result{cr.res}, err
		}
	}

	return []Result{cr.res}, nil
}
