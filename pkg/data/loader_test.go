package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sbinet/npyio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPositionsTable(t *testing.T) {
	path := writeFile(t, "pos.txt", `
# water
0.0  0.0      0.119262
0.0  0.763239 -0.477047
0.0 -0.763239 -0.477047
`)
	pos, err := LoadPositions(path)
	require.NoError(t, err)
	require.Len(t, pos, 3)
	assert.InDelta(t, -0.477047, pos[2][2], 1e-12)
}

func TestLoadPositionsBadShape(t *testing.T) {
	path := writeFile(t, "pos.txt", "1 2 3 4\n")
	_, err := LoadPositions(path)
	assert.ErrorContains(t, err, "multiple of 3")
}

func TestLoadPositionsBadValue(t *testing.T) {
	path := writeFile(t, "pos.txt", "1 2 x\n")
	_, err := LoadPositions(path)
	assert.ErrorContains(t, err, "bad value")
}

func TestLoadNumbersTable(t *testing.T) {
	path := writeFile(t, "z.txt", "8 1 1\n")
	z, err := LoadNumbers(path)
	require.NoError(t, err)
	assert.Equal(t, []int{8, 1, 1}, z)
}

func TestLoadNumbersRejectsFractions(t *testing.T) {
	path := writeFile(t, "z.txt", "8 1.5\n")
	_, err := LoadNumbers(path)
	assert.ErrorContains(t, err, "not an integer")
}

func TestLoadPositionsNPY(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pos.npy")
	f, err := os.Create(path)
	require.NoError(t, err)
	m := mat.NewDense(2, 3, []float64{0, 0, 0, 1, 0, 0})
	require.NoError(t, npyio.Write(f, m))
	require.NoError(t, f.Close())

	pos, err := LoadPositions(path)
	require.NoError(t, err)
	require.Len(t, pos, 2)
	assert.Equal(t, [3]float64{1, 0, 0}, pos[1])
}

func TestLoadNumbersNPY(t *testing.T) {
	path := filepath.Join(t.TempDir(), "z.npy")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, npyio.Write(f, []int64{8, 1, 1}))
	require.NoError(t, f.Close())

	z, err := LoadNumbers(path)
	require.NoError(t, err)
	assert.Equal(t, []int{8, 1, 1}, z)
}

func TestWriteTensorRoundTripNPY(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.npy")
	rows := [][]float64{{1, 2, 3}, {4, 5, 6}}
	require.NoError(t, WriteTensor(path, rows))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var m mat.Dense
	require.NoError(t, npyio.Read(f, &m))
	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 5.0, m.At(1, 1))
}

func TestWriteTensorText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, WriteTensor(path, [][]float64{{1.5, 2}, {3, 4}}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1.5 2\n3 4\n", string(raw))
}

func TestWriteTensorEmpty(t *testing.T) {
	err := WriteTensor(filepath.Join(t.TempDir(), "out.txt"), nil)
	assert.ErrorContains(t, err, "no rows")
}
