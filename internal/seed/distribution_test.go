package seed

import (
	"math"
	"math/rand"
	"testing"
)

func TestNewWeightedRejectsBadTables(t *testing.T) {
	cases := []struct {
		name    string
		weights map[string]float64
	}{
		{"empty", nil},
		{"sum below one", map[string]float64{"a": 0.5, "b": 0.47}},
		{"sum above one", map[string]float64{"a": 0.6, "b": 0.6}},
		{"negative weight", map[string]float64{"a": 1.5, "b": -0.5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewWeighted(tc.weights); err == nil {
				t.Errorf("NewWeighted accepted %v", tc.weights)
			}
		})
	}
}

func TestWeightedToleratesFloatDrift(t *testing.T) {
	// Ten 0.1 weights do not sum to exactly 1.0 in binary.
	weights := make(map[string]float64)
	for _, k := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		weights[k] = 0.1
	}
	if _, err := NewWeighted(weights); err != nil {
		t.Fatalf("NewWeighted rejected drift within tolerance: %v", err)
	}
}

func TestWeightedSampleStaysInTable(t *testing.T) {
	w, err := NewWeighted(map[string]float64{"a": 0.7, "b": 0.2, "c": 0.1})
	if err != nil {
		t.Fatalf("NewWeighted failed: %v", err)
	}

	r := rand.New(rand.NewSource(7))
	counts := make(map[string]int)
	for i := 0; i < 20000; i++ {
		counts[w.Sample(r)]++
	}

	for k, n := range counts {
		if k != "a" && k != "b" && k != "c" {
			t.Fatalf("sampled unknown key %q", k)
		}
		if n == 0 {
			t.Errorf("key %q never drawn", k)
		}
	}
	if rate := float64(counts["a"]) / 20000; math.Abs(rate-0.7) > 0.02 {
		t.Errorf("key a drawn at %.4f, want 0.70 +/- 0.02", rate)
	}
}

func TestWeightedZeroWeightKeyNeverDrawn(t *testing.T) {
	w, err := NewWeighted(map[string]float64{"live": 1.0, "dead": 0})
	if err != nil {
		t.Fatalf("NewWeighted failed: %v", err)
	}

	r := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		if w.Sample(r) == "dead" {
			t.Fatal("zero-weight key drawn")
		}
	}
}
