package seed

import (
	"context"
	"fmt"
	"math"

	"github.com/example/schoolseed/internal/core/entity"
)

// gradeBands maps a letter grade to its percentage range. A band is
// sampled by configured weight first, then the percentage uniformly
// within the band, so a class's scores follow the configured curve.
var gradeBands = map[string][2]float64{
	"A": {0.90, 1.00},
	"B": {0.80, 0.90},
	"C": {0.70, 0.80},
	"D": {0.60, 0.70},
	"F": {0.30, 0.60},
}

// totalPointsByType fixes the point scale per assessment type.
var totalPointsByType = map[string]float64{
	"test":     100,
	"quiz":     25,
	"homework": 20,
	"project":  50,
}

var defaultLetterGrades = map[string]float64{
	"A": 0.25, "B": 0.35, "C": 0.25, "D": 0.10, "F": 0.05,
}

var defaultAssessmentTypes = map[string]float64{
	"test": 0.20, "quiz": 0.30, "homework": 0.35, "project": 0.15,
}

// AssessmentGenerator creates graded work for each student in one of
// their enrolled classes.
type AssessmentGenerator struct{}

func (AssessmentGenerator) Kind() entity.Kind { return entity.KindAssessment }
func (AssessmentGenerator) Requires() []entity.Kind {
	return []entity.Kind{entity.KindStudent, entity.KindClass, entity.KindStudentClassLink}
}

func (g AssessmentGenerator) Generate(ctx context.Context, run *Run) ([]Result, error) {
	school, err := run.school()
	if err != nil {
		return nil, err
	}

	letterDist, err := run.weighted(run.Config.Distributions.LetterGrades, defaultLetterGrades)
	if err != nil {
		return nil, err
	}
	typeDist, err := run.weighted(run.Config.Distributions.AssessmentTypes, defaultAssessmentTypes)
	if err != nil {
		return nil, err
	}

	failures := &tracker{}
	cr := newCreator(run, entity.KindAssessment, failures)

	for _, rec := range run.Cache.All(entity.KindStudent) {
		student := rec.(*entity.Student)
		classIDs := run.Cache.ClassesOf(student.ID)
		if len(classIDs) == 0 {
			continue
		}

		for i := 0; i < run.Config.Volumes.AssessmentsPerStudent; i++ {
			classRec, err := run.Cache.Get(entity.KindClass, classIDs[run.Rand.Intn(len(classIDs))])
			if err != nil {
				return []Result{cr.res}, err
			}
			class := classRec.(*entity.Class)

			assessmentType := typeDist.Sample(run.Rand)
			total := totalPointsByType[assessmentType]
			if total == 0 {
				total = 100
			}

			assessment := &entity.Assessment{
				SchoolID:     school.ID,
				StudentID:    student.ID,
				ClassID:      class.ID,
				SubjectID:    class.SubjectID,
				TeacherID:    class.TeacherID,
				Type:         assessmentType,
				Title:        fmt.Sprintf("%s %d", assessmentType, i+1),
				TotalPoints:  total,
				PointsEarned: g.earnedPoints(run, letterDist, total),
				Date:         run.randomSchoolDay(),
			}
			if _, err := cr.create(ctx, assessment, nil); err != nil {
				return []Result{cr.res}, err
			}
		}
	}

	return []Result{cr.res}, nil
}

// earnedPoints samples a letter band by weight, then a percentage
// uniformly within the band, scaled to the total.
func (AssessmentGenerator) earnedPoints(run *Run, letters *Weighted, total float64) float64 {
	band := gradeBands[letters.Sample(run.Rand)]
	pct := band[0] + run.Rand.Float64()*(band[1]-band[0])
	return math.Round(total*pct*10) / 10
}
