// Demo: compute the LMBTR descriptor for a water molecule and plot two
// slices of the resulting tensor. The flow is linear: load two arrays
// from disk, build the structure, configure the descriptor, call Create
// once, and plot.
package main

import (
	"fmt"
	"log"

	"github.com/tangzeyuan/ML-CSC-tutorial/pkg/chem"
	"github.com/tangzeyuan/ML-CSC-tutorial/pkg/data"
	"github.com/tangzeyuan/ML-CSC-tutorial/pkg/lmbtr"
	"github.com/tangzeyuan/ML-CSC-tutorial/pkg/plotting"
)

func main() {
	// --- Load the structure arrays ---
	fmt.Println("=== LMBTR of a water molecule ===")
	positions, err := data.LoadPositions("data/positions.txt")
	if err != nil {
		log.Fatal(err)
	}
	numbers, err := data.LoadNumbers("data/numbers.txt")
	if err != nil {
		log.Fatal(err)
	}
	atoms, err := chem.NewAtoms(positions, numbers)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Loaded %d atoms: %v\n", atoms.Len(), atoms.Symbols())

	// --- Configure the descriptor ---
	desc, err := lmbtr.New(
		[]string{"H", "O"},
		&lmbtr.K2{
			Geometry:  lmbtr.Distance,
			Grid:      lmbtr.Grid{Min: 0, Max: 3, Sigma: 0.05, N: 200},
			Weighting: lmbtr.Weighting{Function: lmbtr.WeightExp, Scale: 0.75, Cutoff: 1e-3},
		},
		&lmbtr.K3{
			Geometry:  lmbtr.Cosine,
			Grid:      lmbtr.Grid{Min: -1, Max: 1, Sigma: 0.05, N: 200},
			Weighting: lmbtr.Weighting{Function: lmbtr.WeightExp, Scale: 0.5, Cutoff: 1e-3},
		},
		lmbtr.NormNone,
	)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Descriptor has %d features per center\n", desc.NumFeatures())

	// --- Compute for the oxygen atom (index 0) ---
	rows, err := desc.Create(atoms, []int{0})
	if err != nil {
		log.Fatal(err)
	}
	row := rows[0]

	// --- Plot the O-H pair distribution ---
	start, end, err := desc.LocationK2("H")
	if err != nil {
		log.Fatal(err)
	}
	err = plotting.Histograms("lmbtr_k2_OH.png", "K2: distances from O to H neighbors",
		"Distance (Å)", desc.K2.Grid.Axis(),
		[]plotting.Slice{{Label: "O-H", Values: row[start:end]}})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Saved K2 slice to lmbtr_k2_OH.png")

	// --- Plot the H-apex H-O-H angle distribution ---
	// For the O center the only triangles are O-H-H ones, so the H apex
	// slice with a far H atom carries the H-O-H geometry seen from O.
	start, end, err = desc.LocationK3("H", "H")
	if err != nil {
		log.Fatal(err)
	}
	err = plotting.Histograms("lmbtr_k3_HH.png", "K3: cosine distribution at H apexes",
		"cos(angle)", desc.K3.Grid.Axis(),
		[]plotting.Slice{{Label: "O-H-H", Values: row[start:end]}})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Saved K3 slice to lmbtr_k3_HH.png")
}
