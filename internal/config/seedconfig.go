// Package config loads and validates the YAML run configuration.
// Validation is exhaustive and happens before any network call: a bad
// distribution or an undeclared grade is rejected up front with the
// offending field named.
package config

import (
	"fmt"
	"math"
	"os"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/example/schoolseed/internal/core/entity"
)

// ValidationError names the config field that failed and why.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Reason)
}

// Config is the full run configuration.
type Config struct {
	API           API           `yaml:"api"`
	School        SchoolProfile `yaml:"school" validate:"required"`
	Grades        []int         `yaml:"grades" validate:"required,min=1,dive,gte=1,lte=12"`
	Volumes       Volumes       `yaml:"volumes"`
	Subjects      []SubjectSpec `yaml:"subjects" validate:"required,min=1"`
	Distributions Distributions `yaml:"distributions"`
	Calendar      Calendar      `yaml:"calendar"`
}

// API configures the backend endpoint and retry budget.
type API struct {
	BaseURL        string `yaml:"base_url" validate:"required,url"`
	TimeoutSeconds int    `yaml:"timeout_seconds" validate:"gte=0"`
	MaxRetries     int    `yaml:"max_retries" validate:"gte=0"`
}

// Timeout returns the per-call HTTP timeout.
func (a API) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// SchoolProfile describes the single school a run seeds under.
type SchoolProfile struct {
	Name    string `yaml:"name" validate:"required"`
	Slug    string `yaml:"slug" validate:"required"`
	Address string `yaml:"address"`
	City    string `yaml:"city"`
	State   string `yaml:"state"`
	Zip     string `yaml:"zip"`
	Phone   string `yaml:"phone"`
	Email   string `yaml:"email" validate:"omitempty,email"`
}

// Volumes declares how many of each entity type to create.
type Volumes struct {
	Administrators        int `yaml:"administrators" validate:"gte=1"`
	Teachers              int `yaml:"teachers" validate:"gte=1"`
	Parents               int `yaml:"parents" validate:"gte=0"`
	Students              int `yaml:"students" validate:"gte=0"`
	Rooms                 int `yaml:"rooms" validate:"gte=1"`
	Events                int `yaml:"events" validate:"gte=0"`
	Activities            int `yaml:"activities" validate:"gte=0"`
	Vendors               int `yaml:"vendors" validate:"gte=0"`
	MeritsPerStudent      int `yaml:"merits_per_student" validate:"gte=0"`
	LessonsPerClass       int `yaml:"lessons_per_class" validate:"gte=0"`
	AssessmentsPerStudent int `yaml:"assessments_per_student" validate:"gte=0"`
	AttendanceDays        int `yaml:"attendance_days" validate:"gte=0"`
}

// SubjectSpec declares one catalog subject and the grades it covers.
type SubjectSpec struct {
	Code        string `yaml:"code" validate:"required"`
	Name        string `yaml:"name" validate:"required"`
	GradeLevels []int  `yaml:"grade_levels" validate:"required,min=1"`
}

// Distributions holds the categorical weight tables. Every table must
// sum to 1.0.
type Distributions struct {
	Attendance      map[string]float64 `yaml:"attendance"`
	LetterGrades    map[string]float64 `yaml:"letter_grades"`
	AssessmentTypes map[string]float64 `yaml:"assessment_types"`
	EventTypes      map[string]float64 `yaml:"event_types"`
	VendorTypes     map[string]float64 `yaml:"vendor_types"`
}

// Calendar bounds all generated dates.
type Calendar struct {
	AcademicYear string `yaml:"academic_year" validate:"required"`
	Quarter      string `yaml:"quarter" validate:"required"`
	StartDate    string `yaml:"start_date" validate:"required"`
	EndDate      string `yaml:"end_date" validate:"required"`
}

// Start returns the parsed academic-year start date.
func (c Calendar) Start() time.Time {
	t, _ := time.Parse(entity.DateLayout, c.StartDate)
	return t
}

// End returns the parsed academic-year end date.
func (c Calendar) End() time.Time {
	t, _ := time.Parse(entity.DateLayout, c.EndDate)
	return t
}

var subjectCodeRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

var letterGradeBands = map[string]bool{"A": true, "B": true, "C": true, "D": true, "F": true}

// Load reads, defaults and validates a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.API.TimeoutSeconds == 0 {
		c.API.TimeoutSeconds = 30
	}
	if c.API.MaxRetries == 0 {
		c.API.MaxRetries = 4
	}
	if c.Volumes.Administrators == 0 {
		c.Volumes.Administrators = 1
	}
}

// Validate runs struct-tag validation plus the domain rules that tags
// cannot express: distribution sums, subject/grade consistency, and
// the parent-per-student pairing requirement.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return &ValidationError{
				Field:  errs[0].Namespace(),
				Reason: fmt.Sprintf("failed %q validation", errs[0].Tag()),
			}
		}
		return fmt.Errorf("failed to validate config: %w", err)
	}

	declared := make(map[int]bool, len(c.Grades))
	for _, g := range c.Grades {
		declared[g] = true
	}

	for i, s := range c.Subjects {
		if !subjectCodeRe.MatchString(s.Code) {
			return &ValidationError{
				Field:  fmt.Sprintf("subjects[%d].code", i),
				Reason: fmt.Sprintf("%q may only contain letters, digits and underscores", s.Code),
			}
		}
		for _, g := range s.GradeLevels {
			if !declared[g] {
				return &ValidationError{
					Field:  fmt.Sprintf("subjects[%d].grade_levels", i),
					Reason: fmt.Sprintf("grade %d is not declared in grades", g),
				}
			}
		}
	}

	if c.Volumes.Students > 0 && c.Volumes.Parents < c.Volumes.Students {
		return &ValidationError{
			Field:  "volumes.parents",
			Reason: fmt.Sprintf("need at least one parent per student (%d parents < %d students)", c.Volumes.Parents, c.Volumes.Students),
		}
	}

	if err := checkWeights("distributions.attendance", c.Distributions.Attendance); err != nil {
		return err
	}
	for status := range c.Distributions.Attendance {
		if !entity.AttendanceStatus(status).Valid() {
			return &ValidationError{
				Field:  "distributions.attendance",
				Reason: fmt.Sprintf("unknown status %q", status),
			}
		}
	}

	if err := checkWeights("distributions.letter_grades", c.Distributions.LetterGrades); err != nil {
		return err
	}
	for band := range c.Distributions.LetterGrades {
		if !letterGradeBands[band] {
			return &ValidationError{
				Field:  "distributions.letter_grades",
				Reason: fmt.Sprintf("unknown letter grade %q", band),
			}
		}
	}

	if err := checkWeights("distributions.assessment_types", c.Distributions.AssessmentTypes); err != nil {
		return err
	}
	if err := checkWeights("distributions.event_types", c.Distributions.EventTypes); err != nil {
		return err
	}
	if err := checkWeights("distributions.vendor_types", c.Distributions.VendorTypes); err != nil {
		return err
	}

	start, err := time.Parse(entity.DateLayout, c.Calendar.StartDate)
	if err != nil {
		return &ValidationError{Field: "calendar.start_date", Reason: "must be YYYY-MM-DD"}
	}
	end, err := time.Parse(entity.DateLayout, c.Calendar.EndDate)
	if err != nil {
		return &ValidationError{Field: "calendar.end_date", Reason: "must be YYYY-MM-DD"}
	}
	if !end.After(start) {
		return &ValidationError{Field: "calendar.end_date", Reason: "must be after start_date"}
	}

	return nil
}

// checkWeights enforces the sum-to-1.0 rule on a weight table.
// Empty tables are allowed; the generator falls back to its default.
func checkWeights(field string, weights map[string]float64) error {
	if len(weights) == 0 {
		return nil
	}
	var sum float64
	for key, w := range weights {
		if w < 0 {
			return &ValidationError{Field: field, Reason: fmt.Sprintf("weight for %q is negative", key)}
		}
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-6 {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("weights sum to %.4f, expected 1.0", sum)}
	}
	return nil
}
