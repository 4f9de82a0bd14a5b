package analysis

import (
	"errors"
	"math"
	"math/rand"
	"runtime"
	"sync"
)

// KMeans partitions descriptor rows into K clusters of similar atomic
// environments.
type KMeans struct {
	K         int
	MaxIter   int
	Centroids [][]float64
	Inertia   float64 // sum of squared distances to the nearest centroid
}

// NewKMeans returns a KMeans model with the given cluster count and
// iteration cap.
func NewKMeans(k, maxIter int) *KMeans {
	return &KMeans{K: k, MaxIter: maxIter}
}

// Fit clusters the rows of X. Centroids are seeded with k-means++ and the
// assignment step runs in parallel chunks.
func (m *KMeans) Fit(X [][]float64) error {
	if len(X) == 0 {
		return errors.New("input data cannot be empty")
	}
	n, p := len(X), len(X[0])
	if n < m.K {
		return errors.New("number of rows is less than K")
	}

	m.seedCentroids(X)

	assign := make([]int, n)
	workers := runtime.GOMAXPROCS(0)
	rowsPerWorker := (n + workers - 1) / workers
	var wg sync.WaitGroup

	for it := 0; it < m.MaxIter; it++ {
		var changed atomicFlag
		m.Inertia = 0

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
					best, bestD := -1, math.MaxFloat64
					for k := 0; k < m.K; k++ {
						d := euclidSquared(X[i], m.Centroids[k])
						if d < bestD {
							bestD = d
							best = k
						}
					}
					if assign[i] != best {
						changed.set()
					}
					assign[i] = best
				}
			}(start, end)
		}
		wg.Wait()

		sums := make([][]float64, m.K)
		counts := make([]int, m.K)
		for k := range sums {
			sums[k] = make([]float64, p)
		}
		for i := 0; i < n; i++ {
			k := assign[i]
			counts[k]++
			for j := 0; j < p; j++ {
				sums[k][j] += X[i][j]
			}
			m.Inertia += euclidSquared(X[i], m.Centroids[k])
		}
		for k := 0; k < m.K; k++ {
			if counts[k] == 0 {
				continue
			}
			for j := 0; j < p; j++ {
				m.Centroids[k][j] = sums[k][j] / float64(counts[k])
			}
		}

		if !changed.get() {
			break
		}
	}
	return nil
}

// Predict assigns each row to its nearest centroid.
func (m *KMeans) Predict(X [][]float64) ([]int, error) {
	if len(X) == 0 {
		return nil, errors.New("input data for prediction cannot be empty")
	}
	if len(X[0]) != len(m.Centroids[0]) {
		return nil, errors.New("feature count mismatch between input and centroids")
	}

	n := len(X)
	out := make([]int, n)
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
				best, bestD := -1, math.MaxFloat64
				for k := 0; k < m.K; k++ {
					d := euclidSquared(X[i], m.Centroids[k])
					if d < bestD {
						bestD = d
						best = k
					}
				}
				out[i] = best
			}
		}(start, end)
	}
	wg.Wait()

	return out, nil
}

// seedCentroids picks initial centroids with k-means++: the first at
// random, the rest proportionally to squared distance from the centroids
// chosen so far.
func (m *KMeans) seedCentroids(X [][]float64) {
	n := len(X)
	m.Centroids = make([][]float64, m.K)

	idx := rand.Intn(n)
	m.Centroids[0] = append([]float64{}, X[idx]...)

	for k := 1; k < m.K; k++ {
		distSq := make([]float64, n)
		total := 0.0
		for i, x := range X {
			minD := math.MaxFloat64
			for _, c := range m.Centroids[:k] {
				if d := euclidSquared(x, c); d < minD {
					minD = d
				}
			}
			distSq[i] = minD
			total += minD
		}

		r := rand.Float64() * total
		cumulative := 0.0
		picked := n - 1
		for i, d := range distSq {
			cumulative += d
			if cumulative >= r {
				picked = i
				break
			}
		}
		m.Centroids[k] = append([]float64{}, X[picked]...)
	}
}

// atomicFlag is a set-once boolean safe for concurrent writers.
type atomicFlag struct {
	mu sync.Mutex
	v  bool
}

func (f *atomicFlag) set() {
	f.mu.Lock()
	f.v = true
	f.mu.Unlock()
}

func (f *atomicFlag) get() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.v
}
