// Package analysis provides unsupervised post-processing of per-center
// descriptor rows: low-dimensional projection, environment clustering, and
// nearest-environment lookup.
package analysis

import (
	"errors"
	"math"
	"math/rand"
	"runtime"
	"sync"
)

// PCA finds the top-K principal components of a set of descriptor rows via
// power iteration with deflation.
type PCA struct {
	K          int
	MaxIters   int
	Means      []float64
	Components [][]float64 // K x p, each a unit vector
	Explained  []float64   // approximate eigenvalues
}

// NewPCA returns a PCA model extracting k components.
func NewPCA(k, maxIters int) *PCA {
	return &PCA{K: k, MaxIters: maxIters}
}

// Fit computes the top K principal components of X (rows are descriptor
// vectors). Heavy row loops run in parallel chunks.
func (pca *PCA) Fit(X [][]float64) error {
	if len(X) == 0 {
		return errors.New("input data cannot be empty")
	}
	n, d := len(X), len(X[0])
	if pca.K > d {
		return errors.New("cannot extract more components than features")
	}

	workers := runtime.GOMAXPROCS(0)
	rowsPerWorker := (n + workers - 1) / workers
	var wg sync.WaitGroup

	// Center the data.
	pca.Means = make([]float64, d)
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			pca.Means[j] += X[i][j]
		}
	}
	for j := 0; j < d; j++ {
		pca.Means[j] /= float64(n)
	}
	Z := make([][]float64, n)
	for i := 0; i < n; i++ {
		z := make([]float64, d)
		for j := 0; j < d; j++ {
			z[j] = X[i][j] - pca.Means[j]
		}
		Z[i] = z
	}

	pca.Components = make([][]float64, 0, pca.K)
	pca.Explained = make([]float64, 0, pca.K)

	for comp := 0; comp < pca.K; comp++ {
		v := make([]float64, d)
		for j := range v {
			v[j] = rand.Float64()
		}
		v = normalize(v)

		for t := 0; t < pca.MaxIters; t++ {
			// w = Z^T (Z v), computed as two parallel passes.
			Zv := make([]float64, n)
			wg.Add(workers)
			for id := 0; id < workers; id++ {
				go func(id int) {
					defer wg.Done()
					start := id * rowsPerWorker
					end := min(start+rowsPerWorker, n)
					for i := start; i < end; i++ {
						s := 0.0
						for j := 0; j < d; j++ {
							s += Z[i][j] * v[j]
						}
						Zv[i] = s
					}
				}(id)
			}
			wg.Wait()

			w := make([]float64, d)
			colsPerWorker := (d + workers - 1) / workers
			wg.Add(workers)
			for id := 0; id < workers; id++ {
				go func(id int) {
					defer wg.Done()
					start := id * colsPerWorker
					end := min(start+colsPerWorker, d)
					for j := start; j < end; j++ {
						s := 0.0
						for i := 0; i < n; i++ {
							s += Z[i][j] * Zv[i]
						}
						w[j] = s
					}
				}(id)
			}
			wg.Wait()

			v = normalize(w)
		}

		// Approximate eigenvalue of the component just found.
		lam := 0.0
		for i := 0; i < n; i++ {
			s := 0.0
			for j := 0; j < d; j++ {
				s += Z[i][j] * v[j]
			}
			lam += s * s
		}
		if n > 1 {
			lam /= float64(n - 1)
		}
		pca.Explained = append(pca.Explained, lam)
		pca.Components = append(pca.Components, v)

		// Deflate: Z = Z - (Z v) v^T.
		wg.Add(workers)
		for id := 0; id < workers; id++ {
			go func(id int) {
				defer wg.Done()
				start := id * rowsPerWorker
				end := min(start+rowsPerWorker, n)
				for i := start; i < end; i++ {
					proj := 0.0
					for j := 0; j < d; j++ {
						proj += Z[i][j] * v[j]
					}
					for j := 0; j < d; j++ {
						Z[i][j] -= proj * v[j]
					}
				}
			}(id)
		}
		wg.Wait()
	}

	return nil
}

// Transform projects rows onto the fitted components.
func (pca *PCA) Transform(X [][]float64) ([][]float64, error) {
	if len(X) == 0 {
		return nil, errors.New("input data cannot be empty")
	}
	n, d := len(X), len(X[0])
	if d != len(pca.Means) {
		return nil, errors.New("feature count mismatch between input and fitted data")
	}

	out := make([][]float64, n)
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
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				t := make([]float64, pca.K)
				for k := 0; k < pca.K; k++ {
					sum := 0.0
					for j := 0; j < d; j++ {
						sum += (X[i][j] - pca.Means[j]) * pca.Components[k][j]
					}
					t[k] = sum
				}
				out[i] = t
			}
		}(start, end)
	}
	wg.Wait()

	return out, nil
}

func normalize(v []float64) []float64 {
	sumSq := 0.0
	for _, x := range v {
		sumSq += x * x
	}
	norm := math.Sqrt(sumSq)
	if norm == 0 {
		return v
	}
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x / norm
	}
	return out
}
