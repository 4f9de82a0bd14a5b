package data

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
)

// LoadPositions reads an N x 3 coordinate array from disk. Files ending in
// .npy are parsed as NumPy arrays, anything else as a whitespace table.
func LoadPositions(path string) ([][3]float64, error) {
	var flat []float64
	var err error
	if filepath.Ext(path) == ".npy" {
		flat, err = readNPYFloats(path)
	} else {
		flat, err = readTableFloats(path)
	}
	if err != nil {
		return nil, fmt.Errorf("load positions: %w", err)
	}
	if len(flat) == 0 || len(flat)%3 != 0 {
		return nil, fmt.Errorf("load positions: %s holds %d values, want a multiple of 3", path, len(flat))
	}
	out := make([][3]float64, len(flat)/3)
	for i := range out {
		out[i] = [3]float64{flat[3*i], flat[3*i+1], flat[3*i+2]}
	}
	return out, nil
}

// LoadNumbers reads a length-N atomic number array from disk. Integer and
// float dtypes are both accepted; float values must be whole.
func LoadNumbers(path string) ([]int, error) {
	var flat []float64
	var err error
	if filepath.Ext(path) == ".npy" {
		flat, err = readNPYFloats(path)
	} else {
		flat, err = readTableFloats(path)
	}
	if err != nil {
		return nil, fmt.Errorf("load numbers: %w", err)
	}
	out := make([]int, len(flat))
	for i, v := range flat {
		z := int(v)
		if float64(z) != v {
			return nil, fmt.Errorf("load numbers: value %v at index %d is not an integer", v, i)
		}
		out[i] = z
	}
	return out, nil
}

// readNPYFloats reads a .npy file of any supported numeric dtype into a
// flat float64 slice, row-major.
func readNPYFloats(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := npyio.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	switch dt := r.Header.Descr.Type; dt {
	case "<f8", "|f8", ">f8":
		var v []float64
		if err := r.Read(&v); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return v, nil
	case "<f4", "|f4", ">f4":
		var v []float32
		if err := r.Read(&v); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return out, nil
	case "<i8", "|i8", ">i8":
		var v []int64
		if err := r.Read(&v); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return out, nil
	case "<i4", "|i4", ">i4":
		var v []int32
		if err := r.Read(&v); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%s: unsupported dtype %q", path, dt)
	}
}

// readTableFloats reads whitespace-separated numbers. Blank lines and lines
// starting with '#' are skipped.
func readTableFloats(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []float64
	sc := bufio.NewScanner(bufio.NewReader(f))
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		for _, field := range strings.Fields(text) {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%s line %d: bad value %q", path, line, field)
			}
			out = append(out, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// WriteTensor writes descriptor rows to disk. A .npy destination gets a 2-D
// NumPy array, anything else a plain text table with one row per center.
func WriteTensor(path string, rows [][]float64) error {
	if len(rows) == 0 {
		return fmt.Errorf("write tensor: no rows")
	}
	cols := len(rows[0])

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write tensor: %w", err)
	}
	defer f.Close()

	if filepath.Ext(path) == ".npy" {
		flat := make([]float64, 0, len(rows)*cols)
		for _, row := range rows {
			flat = append(flat, row...)
		}
		m := mat.NewDense(len(rows), cols, flat)
		if err := npyio.Write(f, m); err != nil {
			return fmt.Errorf("write tensor: %w", err)
		}
		return nil
	}

	w := bufio.NewWriter(f)
	for _, row := range rows {
		for j, v := range row {
			if j > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprintf(w, "%g", v)
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}
