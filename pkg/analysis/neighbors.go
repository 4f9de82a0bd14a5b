package analysis

import (
	"errors"
	"sort"
)

// Nearest returns the indices of the k rows of X closest to the query in
// Euclidean distance, nearest first. A bounded neighbor list keeps the
// scan at O(n log k) without materializing all distances.
func Nearest(X [][]float64, query []float64, k int) ([]int, error) {
	if len(X) == 0 {
		return nil, errors.New("input data cannot be empty")
	}
	if k <= 0 {
		return nil, errors.New("k must be positive")
	}
	if len(query) != len(X[0]) {
		return nil, errors.New("feature count mismatch between query and rows")
	}
	if k > len(X) {
		k = len(X)
	}

	type pair struct {
		d   float64
		idx int
	}
	nbrs := make([]pair, 0, k+1)

	for i, row := range X {
		d := euclidSquared(query, row)
		if len(nbrs) < k {
			nbrs = append(nbrs, pair{d: d, idx: i})
			sort.Slice(nbrs, func(a, b int) bool { return nbrs[a].d < nbrs[b].d })
		} else if d < nbrs[len(nbrs)-1].d {
			nbrs[len(nbrs)-1] = pair{d: d, idx: i}
			sort.Slice(nbrs, func(a, b int) bool { return nbrs[a].d < nbrs[b].d })
		}
	}

	out := make([]int, len(nbrs))
	for i, p := range nbrs {
		out[i] = p.idx
	}
	return out, nil
}

// euclidSquared computes the squared Euclidean distance between two
// vectors. Squared distance avoids the square root during comparisons.
func euclidSquared(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
