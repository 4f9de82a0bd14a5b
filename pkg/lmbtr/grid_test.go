package lmbtr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestGridAxis(t *testing.T) {
	g := Grid{Min: 0, Max: 1, Sigma: 0.1, N: 4}
	axis := g.Axis()
	require.Len(t, axis, 4)
	assert.InDelta(t, 0.125, axis[0], 1e-12)
	assert.InDelta(t, 0.875, axis[3], 1e-12)
	assert.InDelta(t, 0.25, g.Dx(), 1e-12)
}

func TestSmearMassConservation(t *testing.T) {
	g := Grid{Min: 0, Max: 10, Sigma: 0.2, N: 500}
	dst := make([]float64, g.N)
	g.Smear(dst, 5, 2.5)
	// A contribution far from both edges deposits its whole weight.
	assert.InDelta(t, 2.5, floats.Sum(dst), 1e-3)
}

func TestSmearPeakPosition(t *testing.T) {
	g := Grid{Min: 0, Max: 10, Sigma: 0.1, N: 200}
	dst := make([]float64, g.N)
	g.Smear(dst, 3.33, 1)
	peak := floats.MaxIdx(dst)
	assert.InDelta(t, 3.33, g.Axis()[peak], g.Dx())
}

func TestSmearEdgeClipping(t *testing.T) {
	g := Grid{Min: 0, Max: 1, Sigma: 0.1, N: 100}
	dst := make([]float64, g.N)
	// Mean sits on the lower edge: roughly half the mass is in range.
	g.Smear(dst, 0, 1)
	assert.InDelta(t, 0.5, floats.Sum(dst), 1e-3)

	// Mean far outside the grid: nothing is deposited.
	out := make([]float64, g.N)
	g.Smear(out, 5, 1)
	assert.Zero(t, floats.Sum(out))
}

func TestSmearAdditive(t *testing.T) {
	g := Grid{Min: 0, Max: 4, Sigma: 0.1, N: 100}
	dst := make([]float64, g.N)
	g.Smear(dst, 1, 1)
	g.Smear(dst, 3, 1)
	assert.InDelta(t, 2, floats.Sum(dst), 1e-3)
}
