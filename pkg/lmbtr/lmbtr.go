// Package lmbtr implements the Local Many-Body Tensor Representation, a
// rotation and translation invariant descriptor of the chemical
// environment around a single atom. For each requested center the
// descriptor collects smoothed histograms of pairwise geometry values (K2)
// and triplet geometry values (K3), stratified by the chemical species of
// the surrounding atoms.
package lmbtr

import (
	"fmt"
	"sort"

	"github.com/tangzeyuan/ML-CSC-tutorial/pkg/chem"
)

// GeometryK2 selects the scalar computed for a center-neighbor pair.
type GeometryK2 string

// GeometryK3 selects the scalar computed for a triplet of atoms.
type GeometryK3 string

const (
	Distance        GeometryK2 = "distance"
	InverseDistance GeometryK2 = "inverse_distance"

	Cosine GeometryK3 = "cosine"
	Angle  GeometryK3 = "angle"
)

// K2 configures the pairwise term of the descriptor.
type K2 struct {
	Geometry  GeometryK2
	Grid      Grid
	Weighting Weighting
}

// K3 configures the triplet term of the descriptor.
type K3 struct {
	Geometry  GeometryK3
	Grid      Grid
	Weighting Weighting
}

// Normalization selects the post-processing applied to each output row.
type Normalization string

const (
	NormNone Normalization = "none"
	NormL2   Normalization = "l2"
)

// LMBTR is a configured descriptor. Build it with New; the zero value is
// not usable.
type LMBTR struct {
	Species       []string
	K2            *K2
	K3            *K3
	Normalization Normalization

	numbers []int       // atomic numbers of Species, ascending
	index   map[int]int // atomic number -> species slot
}

// New validates the configuration and returns a ready descriptor. Species
// are stored in ascending atomic number order, which fixes the layout of
// the output tensor. At least one of k2 and k3 must be given.
func New(species []string, k2 *K2, k3 *K3, norm Normalization) (*LMBTR, error) {
	if len(species) == 0 {
		return nil, fmt.Errorf("at least one species is required")
	}
	if k2 == nil && k3 == nil {
		return nil, fmt.Errorf("at least one of the k2 and k3 terms must be enabled")
	}

	numbers := make([]int, 0, len(species))
	seen := make(map[int]bool, len(species))
	for _, s := range species {
		z, err := chem.AtomicNumber(s)
		if err != nil {
			return nil, err
		}
		if seen[z] {
			return nil, fmt.Errorf("duplicate species %q", s)
		}
		seen[z] = true
		numbers = append(numbers, z)
	}
	sort.Ints(numbers)

	index := make(map[int]int, len(numbers))
	ordered := make([]string, len(numbers))
	for i, z := range numbers {
		index[z] = i
		ordered[i], _ = chem.Symbol(z)
	}

	if k2 != nil {
		if k2.Geometry != Distance && k2.Geometry != InverseDistance {
			return nil, fmt.Errorf("k2: unknown geometry function %q", k2.Geometry)
		}
		if err := k2.Grid.check(); err != nil {
			return nil, fmt.Errorf("k2: %w", err)
		}
		if err := k2.Weighting.check(); err != nil {
			return nil, fmt.Errorf("k2: %w", err)
		}
	}
	if k3 != nil {
		if k3.Geometry != Cosine && k3.Geometry != Angle {
			return nil, fmt.Errorf("k3: unknown geometry function %q", k3.Geometry)
		}
		if err := k3.Grid.check(); err != nil {
			return nil, fmt.Errorf("k3: %w", err)
		}
		if err := k3.Weighting.check(); err != nil {
			return nil, fmt.Errorf("k3: %w", err)
		}
	}

	switch norm {
	case "", NormNone:
		norm = NormNone
	case NormL2:
	default:
		return nil, fmt.Errorf("unknown normalization %q", norm)
	}

	return &LMBTR{
		Species:       ordered,
		K2:            k2,
		K3:            k3,
		Normalization: norm,
		numbers:       numbers,
		index:         index,
	}, nil
}

// NumSpecies returns the number of configured species.
func (l *LMBTR) NumSpecies() int { return len(l.numbers) }

// NumFeatures returns the length of one flattened descriptor row: the K2
// block holds one histogram per species, the K3 block one histogram per
// (apex species, far species) pair.
func (l *LMBTR) NumFeatures() int {
	s := len(l.numbers)
	n := 0
	if l.K2 != nil {
		n += s * l.K2.Grid.N
	}
	if l.K3 != nil {
		n += s * s * l.K3.Grid.N
	}
	return n
}

// k3Offset is the row index where the K3 block starts.
func (l *LMBTR) k3Offset() int {
	if l.K2 == nil {
		return 0
	}
	return len(l.numbers) * l.K2.Grid.N
}

// LocationK2 returns the half-open row range holding the K2 histogram for
// neighbors of the given species.
func (l *LMBTR) LocationK2(species string) (start, end int, err error) {
	if l.K2 == nil {
		return 0, 0, fmt.Errorf("k2 term is not enabled")
	}
	si, err := l.speciesIndex(species)
	if err != nil {
		return 0, 0, err
	}
	n := l.K2.Grid.N
	return si * n, (si + 1) * n, nil
}

// LocationK3 returns the half-open row range holding the K3 histogram for
// triplets whose angle apex has the given apex species and whose far atom
// has the given far species.
func (l *LMBTR) LocationK3(apex, far string) (start, end int, err error) {
	if l.K3 == nil {
		return 0, 0, fmt.Errorf("k3 term is not enabled")
	}
	ai, err := l.speciesIndex(apex)
	if err != nil {
		return 0, 0, err
	}
	fi, err := l.speciesIndex(far)
	if err != nil {
		return 0, 0, err
	}
	s := len(l.numbers)
	n := l.K3.Grid.N
	start = l.k3Offset() + (ai*s+fi)*n
	return start, start + n, nil
}

func (l *LMBTR) speciesIndex(species string) (int, error) {
	z, err := chem.AtomicNumber(species)
	if err != nil {
		return 0, err
	}
	si, ok := l.index[z]
	if !ok {
		return 0, fmt.Errorf("species %q is not part of this descriptor", species)
	}
	return si, nil
}
