package lmbtr

import (
	"fmt"
	"math"
)

// WeightFunc selects how contributions are scaled with distance.
type WeightFunc string

const (
	// WeightUnity applies no distance weighting.
	WeightUnity WeightFunc = "unity"
	// WeightExp scales a contribution by exp(-Scale*d), where d is the
	// center-neighbor distance for K2 and the triangle perimeter for K3.
	WeightExp WeightFunc = "exp"
)

// Weighting configures the distance weighting of one descriptor term.
// With WeightExp, contributions whose weight falls below Cutoff are
// skipped entirely, which bounds the effective neighborhood.
type Weighting struct {
	Function WeightFunc
	Scale    float64
	Cutoff   float64
}

func (w Weighting) check() error {
	switch w.Function {
	case "", WeightUnity:
	case WeightExp:
		if w.Scale <= 0 {
			return fmt.Errorf("exp weighting scale must be positive, got %v", w.Scale)
		}
		if w.Cutoff <= 0 || w.Cutoff >= 1 {
			return fmt.Errorf("exp weighting cutoff must be in (0, 1), got %v", w.Cutoff)
		}
	default:
		return fmt.Errorf("unknown weighting function %q", w.Function)
	}
	return nil
}

// weight returns the weight for the given distance measure and whether the
// contribution should be kept.
func (w Weighting) weight(d float64) (float64, bool) {
	if w.Function != WeightExp {
		return 1, true
	}
	v := math.Exp(-w.Scale * d)
	return v, v >= w.Cutoff
}
