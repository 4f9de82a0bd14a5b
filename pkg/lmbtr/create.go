package lmbtr

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/tangzeyuan/ML-CSC-tutorial/pkg/chem"
	"github.com/tangzeyuan/ML-CSC-tutorial/pkg/geom"
	"github.com/tangzeyuan/ML-CSC-tutorial/pkg/stats"
)

// Create computes the descriptor for the requested center atoms and
// returns one flattened row per center, in the order requested. A nil
// centers slice selects every atom. The structure may only contain species
// the descriptor was configured with.
func (l *LMBTR) Create(atoms *chem.Atoms, centers []int) ([][]float64, error) {
	for i, z := range atoms.Numbers {
		if _, ok := l.index[z]; !ok {
			sym, _ := chem.Symbol(z)
			return nil, fmt.Errorf("atom %d has species %s, which is not part of this descriptor", i, sym)
		}
	}

	if centers == nil {
		centers = make([]int, atoms.Len())
		for i := range centers {
			centers[i] = i
		}
	}
	for _, c := range centers {
		if c < 0 || c >= atoms.Len() {
			return nil, fmt.Errorf("center index %d out of range [0, %d)", c, atoms.Len())
		}
	}

	// All pairwise distances are shared by every center.
	dm := geom.Distances(atoms.Positions)

	out := make([][]float64, len(centers))
	workers := runtime.GOMAXPROCS(0)
	perWorker := (len(centers) + workers - 1) / workers
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		start := w * perWorker
		end := min(start+perWorker, len(centers))
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for ci := s; ci < e; ci++ {
				row := make([]float64, l.NumFeatures())
				l.accumulateK2(row, atoms, dm, centers[ci])
				l.accumulateK3(row, atoms, dm, centers[ci])
				if l.Normalization == NormL2 {
					stats.NormalizeL2InPlace(row)
				}
				out[ci] = row
			}
		}(start, end)
	}
	wg.Wait()

	return out, nil
}

// accumulateK2 deposits one contribution per neighbor of the center into
// the histogram of the neighbor's species.
func (l *LMBTR) accumulateK2(row []float64, atoms *chem.Atoms, dm *geom.DistanceMatrix, center int) {
	t := l.K2
	if t == nil {
		return
	}
	n := t.Grid.N
	for j := 0; j < atoms.Len(); j++ {
		if j == center {
			continue
		}
		r := dm.At(center, j)
		w, keep := t.Weighting.weight(r)
		if !keep {
			continue
		}
		g := r
		if t.Geometry == InverseDistance {
			g = 1 / r
		}
		si := l.index[atoms.Numbers[j]]
		t.Grid.Smear(row[si*n:(si+1)*n], g, w)
	}
}

// accumulateK3 deposits one contribution per triangle spanned by the
// center and two other atoms. The geometry value is the angle (or its
// cosine) at the apex atom j, and the contribution lands in the histogram
// of the (species of j, species of k) pair. Exponential weights use the
// triangle perimeter.
func (l *LMBTR) accumulateK3(row []float64, atoms *chem.Atoms, dm *geom.DistanceMatrix, center int) {
	t := l.K3
	if t == nil {
		return
	}
	s := len(l.numbers)
	n := t.Grid.N
	offset := l.k3Offset()

	for j := 0; j < atoms.Len(); j++ {
		if j == center {
			continue
		}
		rij := dm.At(center, j)
		for k := 0; k < atoms.Len(); k++ {
			if k == center || k == j {
				continue
			}
			perimeter := rij + dm.At(j, k) + dm.At(center, k)
			w, keep := t.Weighting.weight(perimeter)
			if !keep {
				continue
			}
			g := geom.CosineAt(atoms.Positions[j], atoms.Positions[center], atoms.Positions[k])
			if t.Geometry == Angle {
				g = geom.AngleAt(atoms.Positions[j], atoms.Positions[center], atoms.Positions[k])
			}
			sj := l.index[atoms.Numbers[j]]
			sk := l.index[atoms.Numbers[k]]
			start := offset + (sj*s+sk)*n
			t.Grid.Smear(row[start:start+n], g, w)
		}
	}
}
