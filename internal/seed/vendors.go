package seed

import (
	"context"

	"github.com/example/schoolseed/internal/core/entity"
)

var defaultVendorTypes = map[string]float64{
	"food_service":   0.30,
	"transportation": 0.20,
	"supplies":       0.25,
	"maintenance":    0.15,
	"technology":     0.10,
}

// VendorGenerator creates school vendors. Like events, vendors carry
// the caller identity as a query parameter.
type VendorGenerator struct{}

func (VendorGenerator) Kind() entity.Kind { return entity.KindVendor }
func (VendorGenerator) Requires() []entity.Kind {
	return []entity.Kind{entity.KindSchool, entity.KindUser}
}

func (VendorGenerator) Generate(ctx context.Context, run *Run) ([]Result, error) {
	school, err := run.school()
	if err != nil {
		return nil, err
	}
	admin, err := randomAdmin(run)
	if err != nil {
		return nil, err
	}

	dist, err := run.weighted(run.Config.Distributions.VendorTypes, defaultVendorTypes)
	if err != nil {
		return nil, err
	}

	failures := &tracker{}
	cr := newCreator(run, entity.KindVendor, failures)

	for i := 0; i < run.Config.Volumes.Vendors; i++ {
		first := run.Faker.FirstName()
		last := run.Faker.LastName()
		vendor := &entity.Vendor{
			SchoolID:     school.ID,
			Name:         run.Faker.Company(),
			Type:         dist.Sample(run.Rand),
			ContactName:  first + " " + last,
			ContactEmail: run.Keys.Email(first, last, "vendor.example.com"),
			Phone:        run.Faker.Phone(),
		}
		if _, err := cr.create(ctx, vendor, callerQuery(entity.KindVendor, admin)); err != nil {
			return []Result{cr.res}, err
		}
	}

	return []Result{cr.res}, nil
}
