package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tangzeyuan/ML-CSC-tutorial/pkg/cfg"
	"github.com/tangzeyuan/ML-CSC-tutorial/pkg/chem"
	"github.com/tangzeyuan/ML-CSC-tutorial/pkg/data"
	"github.com/tangzeyuan/ML-CSC-tutorial/pkg/lmbtr"
)

func computeCmd() *cobra.Command {
	var config string
	var out string

	c := &cobra.Command{
		Use:   "compute",
		Short: "Compute the descriptor tensor and write it to disk",
		RunE: func(_ *cobra.Command, _ []string) error {
			conf, desc, atoms, err := load(config)
			if err != nil {
				return err
			}

			rows, err := compute(desc, atoms, conf.Centers)
			if err != nil {
				return err
			}

			dest := out
			if dest == "" {
				dest = conf.Out
			}
			if dest == "" {
				return fmt.Errorf("no output path: set out in the config or pass --out")
			}
			if err := data.WriteTensor(dest, rows); err != nil {
				return err
			}
			logger.Info("tensor written", "path", dest, "centers", len(rows), "features", len(rows[0]))
			return nil
		},
	}

	c.Flags().StringVarP(&config, "config", "c", "", "Run configuration file (required)")
	c.Flags().StringVarP(&out, "out", "o", "", "Output path (overrides the config)")
	_ = c.MarkFlagRequired("config")
	return c
}

// load reads the run configuration and builds the descriptor and the
// structure.
func load(path string) (*cfg.Cfg, *lmbtr.LMBTR, *chem.Atoms, error) {
	conf, err := cfg.New(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("read config: %w", err)
	}
	desc, err := conf.Descriptor()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("build descriptor: %w", err)
	}
	atoms, err := conf.Atoms()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load structure: %w", err)
	}
	logger.Info("structure loaded", "atoms", atoms.Len(), "species", desc.Species)
	return conf, desc, atoms, nil
}

func compute(desc *lmbtr.LMBTR, atoms *chem.Atoms, centers []int) ([][]float64, error) {
	if len(centers) == 0 {
		centers = nil
	}
	rows, err := desc.Create(atoms, centers)
	if err != nil {
		return nil, fmt.Errorf("create descriptor: %w", err)
	}
	return rows, nil
}
