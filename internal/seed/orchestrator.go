package seed

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/example/schoolseed/internal/core/entity"
)

// Orchestrator runs generators strictly in dependency order. A stage
// that aborts halts the run, since every later stage depends
// transitively on earlier ones.
type Orchestrator struct {
	generators []Generator
	out        io.Writer
}

// NewOrchestrator wires the full generator sequence.
func NewOrchestrator(out io.Writer) *Orchestrator {
	return &Orchestrator{
		out: out,
		generators: []Generator{
			SchoolGenerator{},
			UserGenerator{},
			TeacherGenerator{},
			ParentGenerator{},
			StudentGenerator{},
			ParentLinkGenerator{},
			SubjectGenerator{},
			RoomGenerator{},
			ClassGenerator{},
			EnrollmentGenerator{},
			LessonGenerator{},
			AssessmentGenerator{},
			AttendanceGenerator{},
			EventGenerator{},
			ActivityGenerator{},
			VendorGenerator{},
			MeritGenerator{},
		},
	}
}

// Summary aggregates per-kind outcomes of a run.
type Summary struct {
	results map[entity.Kind]Result

	// AbortedStage is set when a stage halted the run.
	AbortedStage entity.Kind
}

// Results returns the per-kind outcomes in entity dependency order.
func (s *Summary) Results() []Result {
	var out []Result
	for _, kind := range entity.All() {
		if res, ok := s.results[kind]; ok {
			out = append(out, res)
		}
	}
	return out
}

// Aborted reports whether any stage aborted.
func (s *Summary) Aborted() bool { return s.AbortedStage != "" }

func (s *Summary) merge(results []Result) {
	for _, res := range results {
		agg := s.results[res.Kind]
		agg.Kind = res.Kind
		agg.Created += res.Created
		agg.Skipped += res.Skipped
		agg.Reused += res.Reused
		s.results[res.Kind] = agg
	}
}

// Execute runs the selected stages. With no features every stage
// runs; with features only the named stages run, and each stage's
// prerequisites must already be present in the (imported) cache —
// missing prerequisites are a dependency error, never re-derived.
//
// The summary is returned even on failure, alongside the aborting
// stage's error.
func (o *Orchestrator) Execute(ctx context.Context, run *Run, features []string) (*Summary, error) {
	selected, err := o.selectGenerators(features)
	if err != nil {
		return nil, err
	}

	restricted := len(features) > 0
	summary := &Summary{results: make(map[entity.Kind]Result)}

	for _, gen := range selected {
		if restricted {
			if err := checkPrerequisites(run, gen); err != nil {
				summary.AbortedStage = gen.Kind()
				return summary, err
			}
		}

		fmt.Fprintf(o.out, "→ seeding %s\n", gen.Kind().Resource())
		results, err := gen.Generate(ctx, run)
		summary.merge(results)
		if err != nil {
			summary.AbortedStage = gen.Kind()
			return summary, fmt.Errorf("stage %s aborted: %w", gen.Kind(), err)
		}
	}

	return summary, nil
}

// selectGenerators resolves the requested feature names to generators,
// preserving dependency order.
func (o *Orchestrator) selectGenerators(features []string) ([]Generator, error) {
	if len(features) == 0 {
		return o.generators, nil
	}

	wanted := make(map[entity.Kind]bool, len(features))
	for _, f := range features {
		kind, ok := entity.ParseKind(strings.TrimSpace(f))
		if !ok {
			return nil, fmt.Errorf("unknown feature %q (known: %s)", f, knownFeatures())
		}
		wanted[kind] = true
	}

	var selected []Generator
	for _, gen := range o.generators {
		if wanted[gen.Kind()] {
			selected = append(selected, gen)
			delete(wanted, gen.Kind())
		}
	}
	for kind := range wanted {
		return nil, fmt.Errorf("no generator for feature %q", kind)
	}
	return selected, nil
}

func checkPrerequisites(run *Run, gen Generator) error {
	for _, kind := range gen.Requires() {
		if run.Cache.Count(kind) == 0 {
			return &DependencyError{
				Kind:   gen.Kind(),
				Reason: fmt.Sprintf("no %s in cache; supply a cache that already contains them", kind.Resource()),
			}
		}
	}
	return nil
}

func knownFeatures() string {
	kinds := entity.All()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
