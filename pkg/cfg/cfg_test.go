package cfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangzeyuan/ML-CSC-tutorial/pkg/lmbtr"
)

func writeRun(t *testing.T, dir string) string {
	t.Helper()

	positions := filepath.Join(dir, "positions.txt")
	require.NoError(t, os.WriteFile(positions, []byte("0 0 0.119262\n0 0.763239 -0.477047\n0 -0.763239 -0.477047\n"), 0o644))
	numbers := filepath.Join(dir, "numbers.txt")
	require.NoError(t, os.WriteFile(numbers, []byte("8 1 1\n"), 0o644))

	run := filepath.Join(dir, "run.yaml")
	body := `positions: ` + positions + `
numbers: ` + numbers + `
species: [H, O]
k2:
  geometry: distance
  grid: {min: 0, max: 3, sigma: 0.05, n: 200}
  weighting: {function: exp, scale: 0.75, cutoff: 1.0e-3}
k3:
  geometry: cosine
  grid: {min: -1, max: 1, sigma: 0.05, n: 200}
centers: [0]
normalization: l2
out: out.npy
`
	require.NoError(t, os.WriteFile(run, []byte(body), 0o644))
	return run
}

func TestNew(t *testing.T) {
	run := writeRun(t, t.TempDir())
	c, err := New(run)
	require.NoError(t, err)

	assert.Equal(t, []string{"H", "O"}, c.Species)
	assert.Equal(t, []int{0}, c.Centers)
	assert.Equal(t, "out.npy", c.Out)
	require.NotNil(t, c.K2)
	assert.Equal(t, "exp", c.K2.Weighting.Function)
	assert.InDelta(t, 1e-3, c.K2.Weighting.Cutoff, 1e-12)
}

func TestNewMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	base := func() *Cfg {
		return &Cfg{
			Positions: "p.txt",
			Numbers:   "z.txt",
			Species:   []string{"H"},
			K2:        &Term{Geometry: "distance"},
		}
	}

	c := base()
	assert.NoError(t, c.Check())

	c = base()
	c.Positions = ""
	assert.ErrorContains(t, c.Check(), "positions")

	c = base()
	c.Numbers = ""
	assert.ErrorContains(t, c.Check(), "numbers")

	c = base()
	c.Species = nil
	assert.ErrorContains(t, c.Check(), "species")

	c = base()
	c.K2 = nil
	assert.ErrorContains(t, c.Check(), "k2 and k3")

	c = base()
	c.Centers = []int{-2}
	assert.ErrorContains(t, c.Check(), "negative")
}

func TestDescriptorAndAtoms(t *testing.T) {
	run := writeRun(t, t.TempDir())
	c, err := New(run)
	require.NoError(t, err)

	desc, err := c.Descriptor()
	require.NoError(t, err)
	assert.Equal(t, []string{"H", "O"}, desc.Species)
	assert.Equal(t, lmbtr.NormL2, desc.Normalization)
	assert.Equal(t, 2*200+4*200, desc.NumFeatures())

	atoms, err := c.Atoms()
	require.NoError(t, err)
	assert.Equal(t, 3, atoms.Len())

	rows, err := desc.Create(atoms, c.Centers)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestDescriptorRejectsBadParams(t *testing.T) {
	c := &Cfg{
		Positions: "p", Numbers: "z", Species: []string{"H"},
		K2: &Term{Geometry: "distance", Grid: Grid{Min: 3, Max: 0, Sigma: 0.1, N: 10}},
	}
	_, err := c.Descriptor()
	assert.ErrorContains(t, err, "below max")
}
