package lmbtr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validK2() *K2 {
	return &K2{
		Geometry: Distance,
		Grid:     Grid{Min: 0, Max: 3, Sigma: 0.05, N: 10},
	}
}

func validK3() *K3 {
	return &K3{
		Geometry: Cosine,
		Grid:     Grid{Min: -1, Max: 1, Sigma: 0.05, N: 5},
	}
}

func TestNewSortsSpeciesByAtomicNumber(t *testing.T) {
	l, err := New([]string{"O", "H"}, validK2(), nil, NormNone)
	require.NoError(t, err)
	assert.Equal(t, []string{"H", "O"}, l.Species)
	assert.Equal(t, 2, l.NumSpecies())
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		species []string
		k2      *K2
		k3      *K3
		norm    Normalization
		want    string
	}{
		{"no species", nil, validK2(), nil, NormNone, "at least one species"},
		{"unknown species", []string{"Qq"}, validK2(), nil, NormNone, "unknown element"},
		{"duplicate species", []string{"H", "H"}, validK2(), nil, NormNone, "duplicate species"},
		{"no terms", []string{"H"}, nil, nil, NormNone, "k2 and k3"},
		{"bad k2 geometry", []string{"H"}, &K2{Geometry: "angle", Grid: validK2().Grid}, nil, NormNone, "unknown geometry"},
		{"bad k3 geometry", []string{"H"}, nil, &K3{Geometry: "distance", Grid: validK3().Grid}, NormNone, "unknown geometry"},
		{"too few bins", []string{"H"}, &K2{Geometry: Distance, Grid: Grid{Min: 0, Max: 3, Sigma: 0.1, N: 1}}, nil, NormNone, "at least 2 bins"},
		{"min above max", []string{"H"}, &K2{Geometry: Distance, Grid: Grid{Min: 3, Max: 0, Sigma: 0.1, N: 10}}, nil, NormNone, "below max"},
		{"bad sigma", []string{"H"}, &K2{Geometry: Distance, Grid: Grid{Min: 0, Max: 3, Sigma: 0, N: 10}}, nil, NormNone, "sigma"},
		{"bad weighting function", []string{"H"}, &K2{Geometry: Distance, Grid: validK2().Grid, Weighting: Weighting{Function: "poly"}}, nil, NormNone, "unknown weighting"},
		{"bad exp scale", []string{"H"}, &K2{Geometry: Distance, Grid: validK2().Grid, Weighting: Weighting{Function: WeightExp, Scale: 0, Cutoff: 0.1}}, nil, NormNone, "scale"},
		{"bad exp cutoff", []string{"H"}, &K2{Geometry: Distance, Grid: validK2().Grid, Weighting: Weighting{Function: WeightExp, Scale: 1, Cutoff: 1}}, nil, NormNone, "cutoff"},
		{"bad normalization", []string{"H"}, validK2(), nil, "l1", "unknown normalization"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.species, tc.k2, tc.k3, tc.norm)
			assert.ErrorContains(t, err, tc.want)
		})
	}
}

func TestNumFeatures(t *testing.T) {
	l, err := New([]string{"H", "O"}, validK2(), validK3(), NormNone)
	require.NoError(t, err)
	// 2 species * 10 bins + 2*2 species pairs * 5 bins.
	assert.Equal(t, 40, l.NumFeatures())

	k2Only, err := New([]string{"H", "O"}, validK2(), nil, NormNone)
	require.NoError(t, err)
	assert.Equal(t, 20, k2Only.NumFeatures())

	k3Only, err := New([]string{"H", "O"}, nil, validK3(), NormNone)
	require.NoError(t, err)
	assert.Equal(t, 20, k3Only.NumFeatures())
}

func TestLocations(t *testing.T) {
	l, err := New([]string{"H", "O"}, validK2(), validK3(), NormNone)
	require.NoError(t, err)

	start, end, err := l.LocationK2("H")
	require.NoError(t, err)
	assert.Equal(t, 0, start)
	assert.Equal(t, 10, end)

	start, end, err = l.LocationK2("O")
	require.NoError(t, err)
	assert.Equal(t, 10, start)
	assert.Equal(t, 20, end)

	// K3 block starts after the K2 block; pairs are laid out apex-major.
	start, end, err = l.LocationK3("H", "H")
	require.NoError(t, err)
	assert.Equal(t, 20, start)
	assert.Equal(t, 25, end)

	start, end, err = l.LocationK3("O", "H")
	require.NoError(t, err)
	assert.Equal(t, 30, start)
	assert.Equal(t, 35, end)

	_, _, err = l.LocationK2("C")
	assert.ErrorContains(t, err, "not part of this descriptor")
}

func TestLocationsDisabledTerms(t *testing.T) {
	k3Only, err := New([]string{"H"}, nil, validK3(), NormNone)
	require.NoError(t, err)

	_, _, err = k3Only.LocationK2("H")
	assert.ErrorContains(t, err, "not enabled")

	start, _, err := k3Only.LocationK3("H", "H")
	require.NoError(t, err)
	assert.Equal(t, 0, start, "k3 block starts at 0 when k2 is disabled")

	k2Only, err := New([]string{"H"}, validK2(), nil, NormNone)
	require.NoError(t, err)
	_, _, err = k2Only.LocationK3("H", "H")
	assert.ErrorContains(t, err, "not enabled")
}
