package plotting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogramsWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slice.png")
	axis := []float64{0.5, 1.5, 2.5}
	slices := []Slice{
		{Label: "O-H", Values: []float64{0, 1, 0.5}},
		{Label: "O-O", Values: []float64{0.2, 0, 0}},
	}

	require.NoError(t, Histograms(path, "K2", "Distance (Å)", axis, slices))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestHistogramsNoSlices(t *testing.T) {
	err := Histograms(filepath.Join(t.TempDir(), "x.png"), "t", "x", []float64{1}, nil)
	assert.ErrorContains(t, err, "no slices")
}

func TestHistogramsLengthMismatch(t *testing.T) {
	err := Histograms(filepath.Join(t.TempDir(), "x.png"), "t", "x",
		[]float64{1, 2}, []Slice{{Label: "a", Values: []float64{1}}})
	assert.ErrorContains(t, err, "values")
}
