package chem

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// Atoms holds a molecular structure as two parallel arrays: Cartesian
// positions in Angstrom and the atomic number of each atom.
type Atoms struct {
	Positions [][3]float64
	Numbers   []int
}

// NewAtoms builds an Atoms structure. Positions and numbers must have the
// same length and every atomic number must belong to a known element.
func NewAtoms(positions [][3]float64, numbers []int) (*Atoms, error) {
	if len(positions) != len(numbers) {
		return nil, fmt.Errorf("positions and numbers must have equal length: %d vs %d", len(positions), len(numbers))
	}
	if len(positions) == 0 {
		return nil, fmt.Errorf("structure cannot be empty")
	}
	for i, z := range numbers {
		if z < 1 || z >= len(symbols) {
			return nil, fmt.Errorf("atom %d: unknown atomic number %d", i, z)
		}
	}
	a := &Atoms{
		Positions: make([][3]float64, len(positions)),
		Numbers:   make([]int, len(numbers)),
	}
	copy(a.Positions, positions)
	copy(a.Numbers, numbers)
	return a, nil
}

// Len returns the number of atoms.
func (a *Atoms) Len() int { return len(a.Numbers) }

// CountOf returns how many atoms carry atomic number z.
func (a *Atoms) CountOf(z int) int {
	n := 0
	for _, v := range a.Numbers {
		if v == z {
			n++
		}
	}
	return n
}

// Symbols returns the element symbol of every atom, in order.
func (a *Atoms) Symbols() []string {
	out := make([]string, len(a.Numbers))
	for i, z := range a.Numbers {
		out[i] = symbols[z]
	}
	return out
}

// symbols maps atomic number to element symbol. Index 0 is unused.
var symbols = []string{
	"",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba", "La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy",
	"Ho", "Er", "Tm", "Yb", "Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt",
	"Au", "Hg", "Tl", "Pb", "Bi", "Po", "At", "Rn",
}

var numberOf = func() map[string]int {
	m := make(map[string]int, len(symbols))
	for z := 1; z < len(symbols); z++ {
		m[symbols[z]] = z
	}
	return m
}()

// AtomicNumber returns the atomic number of an element symbol.
func AtomicNumber(symbol string) (int, error) {
	z, ok := numberOf[symbol]
	if !ok {
		return 0, fmt.Errorf("unknown element symbol %q", symbol)
	}
	return z, nil
}

// Symbol returns the element symbol of an atomic number.
func Symbol(z int) (string, error) {
	if z < 1 || z >= len(symbols) {
		return "", fmt.Errorf("unknown atomic number %d", z)
	}
	return symbols[z], nil
}

// ParseXYZ reads a plain XYZ coordinate block: one "Symbol x y z" line per
// atom. Blank lines and lines starting with '#' are skipped.
func ParseXYZ(block string) (*Atoms, error) {
	var positions [][3]float64
	var numbers []int

	sc := bufio.NewScanner(strings.NewReader(block))
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 4 {
			return nil, fmt.Errorf("line %d: expected \"Symbol x y z\", got %q", line, text)
		}
		z, err := AtomicNumber(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		var p [3]float64
		for k := 0; k < 3; k++ {
			v, err := strconv.ParseFloat(fields[k+1], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad coordinate %q", line, fields[k+1])
			}
			p[k] = v
		}
		numbers = append(numbers, z)
		positions = append(positions, p)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return NewAtoms(positions, numbers)
}
