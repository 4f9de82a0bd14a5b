// Package cfg reads the YAML run configuration that ties a structure on
// disk to a descriptor setup and output destinations.
package cfg

import (
	"bufio"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tangzeyuan/ML-CSC-tutorial/pkg/chem"
	"github.com/tangzeyuan/ML-CSC-tutorial/pkg/data"
	"github.com/tangzeyuan/ML-CSC-tutorial/pkg/lmbtr"
)

// Grid mirrors lmbtr.Grid in the configuration file.
type Grid struct {
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Sigma float64 `yaml:"sigma"`
	N     int     `yaml:"n"`
}

// Weighting mirrors lmbtr.Weighting in the configuration file.
type Weighting struct {
	Function string  `yaml:"function"`
	Scale    float64 `yaml:"scale"`
	Cutoff   float64 `yaml:"cutoff"`
}

// Term configures one descriptor term (k2 or k3).
type Term struct {
	Geometry  string    `yaml:"geometry"`
	Grid      Grid      `yaml:"grid"`
	Weighting Weighting `yaml:"weighting"`
}

// Cfg is the decoded run configuration. Instance it through New, or fill
// it by hand and call Check before use.
type Cfg struct {
	// Positions is the file holding the N x 3 coordinate array.
	Positions string `yaml:"positions"`

	// Numbers is the file holding the length-N atomic number array.
	Numbers string `yaml:"numbers"`

	// Species lists the chemical species stratifying the output.
	Species []string `yaml:"species"`

	// K2 and K3 enable and configure the pair and triplet terms. At
	// least one must be present.
	K2 *Term `yaml:"k2"`
	K3 *Term `yaml:"k3"`

	// Centers are the atom indices to compute the descriptor for. Empty
	// means every atom.
	Centers []int `yaml:"centers"`

	// Normalization is "none" (default) or "l2".
	Normalization string `yaml:"normalization"`

	// Out is where the computed tensor is written (.npy or text table).
	Out string `yaml:"out"`

	// PlotDir is where slice plots are saved.
	PlotDir string `yaml:"plotDir"`
}

// New opens and decodes the specified YAML configuration file and checks
// its integrity.
func New(path string) (*Cfg, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var c Cfg
	dec := yaml.NewDecoder(bufio.NewReader(f))
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if err := c.Check(); err != nil {
		return nil, fmt.Errorf("Check: %w", err)
	}
	return &c, nil
}

// Check checks if Cfg is correct. It returns an error if a field doesn't
// meet the requirements. Descriptor parameter validation itself happens in
// Descriptor; Check covers what the file must minimally provide.
func (c *Cfg) Check() error {
	if c.Positions == "" {
		return fmt.Errorf("a positions file must be specified")
	}
	if c.Numbers == "" {
		return fmt.Errorf("a numbers file must be specified")
	}
	if len(c.Species) == 0 {
		return fmt.Errorf("at least one species must be specified")
	}
	if c.K2 == nil && c.K3 == nil {
		return fmt.Errorf("at least one of k2 and k3 must be configured")
	}
	for _, idx := range c.Centers {
		if idx < 0 {
			return fmt.Errorf("center indices cannot be negative, got %d", idx)
		}
	}
	return nil
}

// Descriptor builds the configured descriptor.
func (c *Cfg) Descriptor() (*lmbtr.LMBTR, error) {
	var k2 *lmbtr.K2
	if c.K2 != nil {
		k2 = &lmbtr.K2{
			Geometry:  lmbtr.GeometryK2(c.K2.Geometry),
			Grid:      gridOf(c.K2.Grid),
			Weighting: weightingOf(c.K2.Weighting),
		}
	}
	var k3 *lmbtr.K3
	if c.K3 != nil {
		k3 = &lmbtr.K3{
			Geometry:  lmbtr.GeometryK3(c.K3.Geometry),
			Grid:      gridOf(c.K3.Grid),
			Weighting: weightingOf(c.K3.Weighting),
		}
	}
	return lmbtr.New(c.Species, k2, k3, lmbtr.Normalization(c.Normalization))
}

// Atoms loads the two input arrays and builds the structure.
func (c *Cfg) Atoms() (*chem.Atoms, error) {
	positions, err := data.LoadPositions(c.Positions)
	if err != nil {
		return nil, err
	}
	numbers, err := data.LoadNumbers(c.Numbers)
	if err != nil {
		return nil, err
	}
	return chem.NewAtoms(positions, numbers)
}

func gridOf(g Grid) lmbtr.Grid {
	return lmbtr.Grid{Min: g.Min, Max: g.Max, Sigma: g.Sigma, N: g.N}
}

func weightingOf(w Weighting) lmbtr.Weighting {
	return lmbtr.Weighting{
		Function: lmbtr.WeightFunc(w.Function),
		Scale:    w.Scale,
		Cutoff:   w.Cutoff,
	}
}
