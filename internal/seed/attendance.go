package seed

import (
	"context"
	"fmt"

	"github.com/example/schoolseed/internal/core/entity"
)

var defaultAttendance = map[string]float64{
	string(entity.AttendancePresent): 0.90,
	string(entity.AttendanceAbsent):  0.03,
	string(entity.AttendanceTardy):   0.03,
	string(entity.AttendanceExcused): 0.02,
	string(entity.AttendanceSick):    0.02,
}

// AttendanceGenerator records one status per (student, school day)
// pair, sampled from the configured distribution. Check-in and
// check-out times exist only when the student was actually in the
// building.
type AttendanceGenerator struct{}

func (AttendanceGenerator) Kind() entity.Kind { return entity.KindAttendance }
func (AttendanceGenerator) Requires() []entity.Kind {
	return []entity.Kind{entity.KindStudent}
}

func (g AttendanceGenerator) Generate(ctx context.Context, run *Run) ([]Result, error) {
	school, err := run.school()
	if err != nil {
		return nil, err
	}

	dist, err := run.weighted(run.Config.Distributions.Attendance, defaultAttendance)
	if err != nil {
		return nil, err
	}

	days := run.schoolDays(run.Config.Volumes.AttendanceDays)

	failures := &tracker{}
	cr := newCreator(run, entity.KindAttendance, failures)

	for _, rec := range run.Cache.All(entity.KindStudent) {
		student := rec.(*entity.Student)

		for _, day := range days {
			status := entity.AttendanceStatus(dist.Sample(run.Rand))

			record := &entity.Attendance{
				SchoolID:  school.ID,
				StudentID: student.ID,
				Date:      day.Format(entity.DateLayout),
				Status:    status,
			}
			g.stampTimes(run, record)

			if _, err := cr.create(ctx, record, nil); err != nil {
				return []Result{cr.res}, err
			}
		}
	}

	return []Result{cr.res}, nil
}

// stampTimes fills check-in/check-out for statuses where the student
// was present; tardy arrivals land after the first bell.
func (AttendanceGenerator) stampTimes(run *Run, record *entity.Attendance) {
	switch record.Status {
	case entity.AttendancePresent:
		record.CheckIn = fmt.Sprintf("07:%02d", 45+run.Rand.Intn(15))
	case entity.AttendanceTardy:
		record.CheckIn = fmt.Sprintf("08:%02d", 15+run.Rand.Intn(40))
	default:
		return
	}
	record.CheckOut = fmt.Sprintf("15:%02d", run.Rand.Intn(30))
}
