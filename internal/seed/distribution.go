package seed

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// Weighted samples string keys according to a categorical
// distribution whose weights sum to 1.0. Keys are ordered
// deterministically so a seeded rand source yields reproducible
// draws.
type Weighted struct {
	keys []string
	cum  []float64
}

// NewWeighted validates the weight table and prepares it for
// sampling.
func NewWeighted(weights map[string]float64) (*Weighted, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("empty weight table")
	}

	keys := make([]string, 0, len(weights))
	for k := range weights {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sum float64
	cum := make([]float64, len(keys))
	for i, k := range keys {
		if weights[k] < 0 {
			return nil, fmt.Errorf("negative weight for %q", k)
		}
		sum += weights[k]
		cum[i] = sum
	}
	if math.Abs(sum-1.0) > 1e-6 {
		return nil, fmt.Errorf("weights sum to %.4f, expected 1.0", sum)
	}

	return &Weighted{keys: keys, cum: cum}, nil
}

// Sample draws one key.
func (w *Weighted) Sample(r *rand.Rand) string {
	x := r.Float64()
	for i, c := range w.cum {
		if x < c {
			return w.keys[i]
		}
	}
	// Guard against float accumulation at the top of the range.
	return w.keys[len(w.keys)-1]
}
