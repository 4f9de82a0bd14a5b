package analysis

import "github.com/tangzeyuan/ML-CSC-tutorial/pkg/stats"

// RowSummary holds the summary statistics of one descriptor row.
type RowSummary struct {
	Mean  float64
	Std   float64
	Min   float64
	Max   float64
	Total float64
	Norm  float64
}

// Summarize computes per-row summary statistics of descriptor rows, one
// RowSummary per center.
func Summarize(rows [][]float64) []RowSummary {
	out := make([]RowSummary, len(rows))
	for i, row := range rows {
		lo, hi := stats.MinMax(row)
		out[i] = RowSummary{
			Mean:  stats.Mean(row),
			Std:   stats.Std(row),
			Min:   lo,
			Max:   hi,
			Total: stats.Sum(row),
			Norm:  stats.Norm2(row),
		}
	}
	return out
}
