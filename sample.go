package charlm

import (
	"fmt"
	"math"

	"github.com/unixpickle/num-analysis/linalg"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// A Sampler draws vocabulary indices from a model's output
// distribution, reshaped by a temperature.
//
// Temperatures below 1 sharpen the distribution (more
// conservative draws); temperatures above 1 flatten it (more
// diverse draws). A temperature of 1 leaves the distribution
// unchanged.
type Sampler struct {
	Temperature float64

	// Source is the source of randomness for draws.
	// If it is nil, a shared global source is used.
	Source rand.Source
}

// Sample draws one index from a probability distribution over
// the vocabulary.
//
// The distribution is reweighted as exp(log(p)/Temperature) and
// renormalized before the draw. Entries with zero probability
// keep zero weight rather than poisoning the reweighted
// distribution through log(0).
func (s *Sampler) Sample(probs linalg.Vector) (int, error) {
	if s.Temperature <= 0 {
		return 0, fmt.Errorf("temperature must be positive: %f", s.Temperature)
	}
	if len(probs) == 0 {
		return 0, fmt.Errorf("cannot sample from an empty distribution")
	}
	weights := make([]float64, len(probs))
	for i, p := range probs {
		if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			return 0, fmt.Errorf("invalid probability at index %d: %f", i, p)
		}
		if p == 0 {
			continue
		}
		weights[i] = math.Exp(math.Log(p) / s.Temperature)
	}
	total := floats.Sum(weights)
	if total == 0 {
		return 0, fmt.Errorf("cannot sample from an all-zero distribution")
	}
	floats.Scale(1/total, weights)
	dist := distuv.NewCategorical(weights, s.Source)
	return int(dist.Rand()), nil
}
