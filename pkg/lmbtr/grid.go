package lmbtr

import (
	"fmt"
	"math"
)

// Grid describes the discretization axis of one descriptor term: N bins of
// equal width covering [Min, Max], with contributions broadened by a
// Gaussian of width Sigma.
type Grid struct {
	Min   float64
	Max   float64
	Sigma float64
	N     int
}

func (g Grid) check() error {
	if g.N < 2 {
		return fmt.Errorf("grid needs at least 2 bins, got %d", g.N)
	}
	if g.Min >= g.Max {
		return fmt.Errorf("grid min %v must be below max %v", g.Min, g.Max)
	}
	if g.Sigma <= 0 {
		return fmt.Errorf("grid sigma must be positive, got %v", g.Sigma)
	}
	return nil
}

// Dx returns the bin width.
func (g Grid) Dx() float64 { return (g.Max - g.Min) / float64(g.N) }

// Axis returns the bin centers, useful as the x axis when plotting a
// descriptor slice.
func (g Grid) Axis() []float64 {
	dx := g.Dx()
	out := make([]float64, g.N)
	for i := range out {
		out[i] = g.Min + (float64(i)+0.5)*dx
	}
	return out
}

// smearWindow bounds the broadening support so a contribution only touches
// bins within this many sigmas of its mean.
const smearWindow = 4.0

// Smear adds a Gaussian contribution of the given mean and total weight to
// dst, which must have length N. Each bin receives the exact integral of
// the Gaussian over the bin interval (computed from erf differences), so
// the deposited mass is independent of how Sigma compares to the bin
// width. Mass falling outside [Min, Max] is dropped.
func (g Grid) Smear(dst []float64, mean, weight float64) {
	dx := g.Dx()
	lo := int(math.Floor((mean - smearWindow*g.Sigma - g.Min) / dx))
	hi := int(math.Ceil((mean+smearWindow*g.Sigma-g.Min)/dx)) + 1
	if lo < 0 {
		lo = 0
	}
	if hi > g.N {
		hi = g.N
	}
	if lo >= hi {
		return
	}

	inv := 1 / (g.Sigma * math.Sqrt2)
	prev := math.Erf((g.Min + float64(lo)*dx - mean) * inv)
	for b := lo; b < hi; b++ {
		next := math.Erf((g.Min + float64(b+1)*dx - mean) * inv)
		dst[b] += weight * 0.5 * (next - prev)
		prev = next
	}
}
