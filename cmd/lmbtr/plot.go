package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tangzeyuan/ML-CSC-tutorial/pkg/lmbtr"
	"github.com/tangzeyuan/ML-CSC-tutorial/pkg/plotting"
)

func plotCmd() *cobra.Command {
	var config string
	var center int
	var species []string
	var triplets []string

	c := &cobra.Command{
		Use:   "plot",
		Short: "Render descriptor slices for one center as line plots",
		RunE: func(_ *cobra.Command, _ []string) error {
			if len(species) == 0 && len(triplets) == 0 {
				return fmt.Errorf("nothing to plot: pass --species and/or --triplet")
			}

			conf, desc, atoms, err := load(config)
			if err != nil {
				return err
			}
			if center < 0 || center >= atoms.Len() {
				return fmt.Errorf("center %d out of range [0, %d)", center, atoms.Len())
			}

			rows, err := compute(desc, atoms, []int{center})
			if err != nil {
				return err
			}
			row := rows[0]

			dir := conf.PlotDir
			if dir == "" {
				dir = "."
			}
			symbol := atoms.Symbols()[center]

			if len(species) > 0 {
				slices := make([]plotting.Slice, 0, len(species))
				for _, sp := range species {
					start, end, err := desc.LocationK2(sp)
					if err != nil {
						return err
					}
					slices = append(slices, plotting.Slice{Label: symbol + "-" + sp, Values: row[start:end]})
				}
				name := filepath.Join(dir, fmt.Sprintf("k2_center%d.png", center))
				title := fmt.Sprintf("K2 distributions around atom %d (%s)", center, symbol)
				if err := plotting.Histograms(name, title, xlabelK2(desc), desc.K2.Grid.Axis(), slices); err != nil {
					return err
				}
				logger.Info("plot saved", "path", name)
			}

			for _, t := range triplets {
				apex, far, err := splitTriplet(t)
				if err != nil {
					return err
				}
				start, end, err := desc.LocationK3(apex, far)
				if err != nil {
					return err
				}
				name := filepath.Join(dir, fmt.Sprintf("k3_center%d_%s_%s.png", center, apex, far))
				title := fmt.Sprintf("K3 distribution %s-%s-%s around atom %d", symbol, apex, far, center)
				slices := []plotting.Slice{{Label: symbol + "-" + apex + "-" + far, Values: row[start:end]}}
				if err := plotting.Histograms(name, title, xlabelK3(desc), desc.K3.Grid.Axis(), slices); err != nil {
					return err
				}
				logger.Info("plot saved", "path", name)
			}

			return nil
		},
	}

	c.Flags().StringVarP(&config, "config", "c", "", "Run configuration file (required)")
	c.Flags().IntVar(&center, "center", 0, "Atom index to plot around")
	c.Flags().StringSliceVar(&species, "species", nil, "Neighbor species for K2 slices (e.g. O,H)")
	c.Flags().StringSliceVar(&triplets, "triplet", nil, "Apex:far species pairs for K3 slices (e.g. O:H)")
	_ = c.MarkFlagRequired("config")
	return c
}

// splitTriplet parses "Apex:Far" (also accepts "Apex-Far").
func splitTriplet(s string) (apex, far string, err error) {
	sep := ":"
	if !strings.Contains(s, sep) {
		sep = "-"
	}
	parts := strings.Split(s, sep)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("bad triplet %q: want Apex:Far, e.g. O:H", s)
	}
	return parts[0], parts[1], nil
}

func xlabelK2(desc *lmbtr.LMBTR) string {
	if desc.K2.Geometry == lmbtr.InverseDistance {
		return "Inverse distance (1/Å)"
	}
	return "Distance (Å)"
}

func xlabelK3(desc *lmbtr.LMBTR) string {
	if desc.K3.Geometry == lmbtr.Angle {
		return "Angle (deg)"
	}
	return "cos(angle)"
}
