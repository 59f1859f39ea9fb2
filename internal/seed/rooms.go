package seed

import (
	"context"

	"github.com/example/schoolseed/internal/core/entity"
)

const RoomTypeClassroom = "classroom"

// specialRoomTypes is cycled for every fourth room so a campus gets
// some non-teaching space; everything else is a classroom, which the
// class generator requires.
var specialRoomTypes = []string{"lab", "gym", "library"}

// RoomGenerator creates the school's rooms with run-unique room
// numbers.
type RoomGenerator struct{}

func (RoomGenerator) Kind() entity.Kind { return entity.KindRoom }
func (RoomGenerator) Requires() []entity.Kind {
	return []entity.Kind{entity.KindSchool}
}

func (RoomGenerator) Generate(ctx context.Context, run *Run) ([]Result, error) {
	school, err := run.school()
	if err != nil {
		return nil, err
	}

	failures := &tracker{}
	cr := newCreator(run, entity.KindRoom, failures)

	special := 0
	for i := 0; i < run.Config.Volumes.Rooms; i++ {
		roomType := RoomTypeClassroom
		if i > 0 && i%4 == 3 {
			roomType = specialRoomTypes[special%len(specialRoomTypes)]
			special++
		}

		room := &entity.Room{
			SchoolID:   school.ID,
			RoomNumber: run.Keys.Next("RM"),
			Type:       roomType,
			Capacity:   20 + run.Rand.Intn(16),
		}
		if _, err := cr.create(ctx, room, nil); err != nil {
			return []Result{cr.res}, err
		}
	}

	return []Result{cr.res}, nil
}
