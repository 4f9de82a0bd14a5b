package geom

import (
	"math"
	"runtime"
	"sync"
)

// DistanceMatrix stores all pairwise interatomic distances in a flat
// row-major slice.
type DistanceMatrix struct {
	N    int
	Data []float64
}

// At returns the distance between atoms i and j.
func (m *DistanceMatrix) At(i, j int) float64 { return m.Data[i*m.N+j] }

// Distance returns the Euclidean distance between two points.
func Distance(a, b [3]float64) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	dz := a[2] - b[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Distances computes the full pairwise distance matrix. Rows are filled in
// parallel chunks.
func Distances(positions [][3]float64) *DistanceMatrix {
	n := len(positions)
	m := &DistanceMatrix{N: n, Data: make([]float64, n*n)}

	workers := runtime.GOMAXPROCS(0)
	rowsPerWorker := (n + workers - 1) / workers
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		start := w * rowsPerWorker
		end := min(start+rowsPerWorker, n)
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(rs, re int) {
			defer wg.Done()
			for i := rs; i < re; i++ {
				for j := 0; j < n; j++ {
					if j == i {
						continue
					}
					m.Data[i*n+j] = Distance(positions[i], positions[j])
				}
			}
		}(start, end)
	}
	wg.Wait()
	return m
}

// CosineAt returns the cosine of the angle at the apex point spanned by
// points a and b. The result is clamped to [-1, 1] so that downstream
// acos calls never see rounding spill.
func CosineAt(apex, a, b [3]float64) float64 {
	var u, v [3]float64
	for k := 0; k < 3; k++ {
		u[k] = a[k] - apex[k]
		v[k] = b[k] - apex[k]
	}
	dot := u[0]*v[0] + u[1]*v[1] + u[2]*v[2]
	nu := math.Sqrt(u[0]*u[0] + u[1]*u[1] + u[2]*u[2])
	nv := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if nu == 0 || nv == 0 {
		return 1
	}
	c := dot / (nu * nv)
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return c
}

// AngleAt returns the angle at the apex point in degrees.
func AngleAt(apex, a, b [3]float64) float64 {
	return math.Acos(CosineAt(apex, a, b)) * 180 / math.Pi
}
