package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validYAML = `
api:
  base_url: http://localhost:8000
school:
  name: Hill Valley High
  slug: hill-valley
  email: office@hillvalley.edu
grades: [1, 2, 3, 4, 5, 6, 7]
volumes:
  administrators: 2
  teachers: 5
  parents: 10
  students: 10
  rooms: 4
  events: 3
  activities: 2
  vendors: 2
  merits_per_student: 1
  lessons_per_class: 2
  assessments_per_student: 3
  attendance_days: 5
subjects:
  - code: MATH
    name: Mathematics
    grade_levels: [1, 2, 3, 4, 5, 6, 7]
  - code: SCI_7
    name: Science
    grade_levels: [7]
distributions:
  attendance:
    present: 0.90
    absent: 0.03
    tardy: 0.03
    excused: 0.02
    sick: 0.02
  letter_grades:
    A: 0.25
    B: 0.35
    C: 0.25
    D: 0.10
    F: 0.05
calendar:
  academic_year: "2025-2026"
  quarter: Q1
  start_date: "2025-08-15"
  end_date: "2026-06-05"
`

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schoolseed.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadValidConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.API.TimeoutSeconds != 30 {
		t.Errorf("expected default timeout 30, got %d", cfg.API.TimeoutSeconds)
	}
	if cfg.API.MaxRetries != 4 {
		t.Errorf("expected default max_retries 4, got %d", cfg.API.MaxRetries)
	}
	if cfg.Calendar.Start().IsZero() || cfg.Calendar.End().IsZero() {
		t.Error("calendar dates did not parse")
	}
}

func TestLoadRejectsBadWeightSum(t *testing.T) {
	yaml := strings.Replace(validYAML, "present: 0.90", "present: 0.87", 1)

	_, err := Load(writeConfig(t, yaml))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "distributions.attendance" {
		t.Errorf("expected attendance field named, got %q", verr.Field)
	}
}

func TestLoadRejectsUnknownAttendanceStatus(t *testing.T) {
	yaml := strings.Replace(validYAML, "sick: 0.02", "vacationing: 0.02", 1)

	_, err := Load(writeConfig(t, yaml))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestLoadRejectsUndeclaredSubjectGrade(t *testing.T) {
	yaml := strings.Replace(validYAML, "grade_levels: [7]", "grade_levels: [9]", 1)

	_, err := Load(writeConfig(t, yaml))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !strings.Contains(verr.Field, "grade_levels") {
		t.Errorf("expected grade_levels named, got %q", verr.Field)
	}
}

func TestLoadRejectsBadSubjectCode(t *testing.T) {
	yaml := strings.Replace(validYAML, "code: SCI_7", "code: SCI-7", 1)

	_, err := Load(writeConfig(t, yaml))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestLoadRejectsFewerParentsThanStudents(t *testing.T) {
	yaml := strings.Replace(validYAML, "parents: 10", "parents: 7", 1)

	_, err := Load(writeConfig(t, yaml))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "volumes.parents" {
		t.Errorf("expected volumes.parents named, got %q", verr.Field)
	}
}

func TestLoadRejectsReversedCalendar(t *testing.T) {
	yaml := strings.Replace(validYAML, `end_date: "2026-06-05"`, `end_date: "2025-06-05"`, 1)

	_, err := Load(writeConfig(t, yaml))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestLoadRejectsMissingBaseURL(t *testing.T) {
	yaml := strings.Replace(validYAML, "base_url: http://localhost:8000", "base_url: \"\"", 1)

	_, err := Load(writeConfig(t, yaml))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
