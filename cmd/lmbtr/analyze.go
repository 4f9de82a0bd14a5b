package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tangzeyuan/ML-CSC-tutorial/pkg/analysis"
)

func analyzeCmd() *cobra.Command {
	var config string
	var clusters int
	var components int

	c := &cobra.Command{
		Use:   "analyze",
		Short: "Cluster atomic environments and report a PCA projection",
		RunE: func(_ *cobra.Command, _ []string) error {
			if clusters <= 0 && components <= 0 {
				return fmt.Errorf("nothing to analyze: pass --clusters and/or --components")
			}

			_, desc, atoms, err := load(config)
			if err != nil {
				return err
			}

			// All atoms: the analysis compares environments across the
			// whole structure.
			rows, err := compute(desc, atoms, nil)
			if err != nil {
				return err
			}

			symbols := atoms.Symbols()

			fmt.Println("Per-environment summary:")
			for i, s := range analysis.Summarize(rows) {
				fmt.Printf("  atom %3d %-2s mean=%.4g std=%.4g max=%.4g total=%.4g norm=%.4g\n",
					i, symbols[i], s.Mean, s.Std, s.Max, s.Total, s.Norm)
			}

			if components > 0 {
				pca := analysis.NewPCA(components, 50)
				if err := pca.Fit(rows); err != nil {
					return fmt.Errorf("pca: %w", err)
				}
				projected, err := pca.Transform(rows)
				if err != nil {
					return fmt.Errorf("pca: %w", err)
				}
				fmt.Println("PCA projection (one row per atom):")
				for i, p := range projected {
					fmt.Printf("  atom %3d %-2s %v\n", i, symbols[i], p)
				}
				fmt.Printf("Explained variance: %v\n", pca.Explained)
			}

			if clusters > 0 {
				km := analysis.NewKMeans(clusters, 200)
				if err := km.Fit(rows); err != nil {
					return fmt.Errorf("kmeans: %w", err)
				}
				assign, err := km.Predict(rows)
				if err != nil {
					return fmt.Errorf("kmeans: %w", err)
				}
				fmt.Printf("Environment clusters (k=%d, inertia=%.4g):\n", clusters, km.Inertia)
				for i, a := range assign {
					fmt.Printf("  atom %3d %-2s cluster %d\n", i, symbols[i], a)
				}
			}

			return nil
		},
	}

	c.Flags().StringVarP(&config, "config", "c", "", "Run configuration file (required)")
	c.Flags().IntVar(&clusters, "clusters", 0, "Cluster environments into this many groups")
	c.Flags().IntVar(&components, "components", 0, "Project environments onto this many principal components")
	_ = c.MarkFlagRequired("config")
	return c
}
