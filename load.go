/*
Copyright © 2026 the GridProbe authors.
This file is part of GridProbe.

GridProbe is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

GridProbe is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with GridProbe.  If not, see <http://www.gnu.org/licenses/>.
*/

package gridprobe

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"
	"github.com/sbinet/npyio"
)

// Load reads a numeric array from the file at path into memory. NumPy
// ".npy" container files are the primary input format; files ending in
// ".nc", ".ncf", or ".cdf" are read as classic-format NetCDF, in which case
// ncVar selects the variable to load (the first 3-dimensional variable in
// the file when ncVar is empty). The returned string describes the on-disk
// element type.
func Load(path, ncVar string) (*sparse.DenseArray, string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".nc", ".ncf", ".cdf":
		return loadNetCDF(path, ncVar)
	default:
		return loadNPY(path)
	}
}

func loadNPY(path string) (*sparse.DenseArray, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	r, err := npyio.NewReader(f)
	if err != nil {
		return nil, "", fmt.Errorf("gridprobe: reading npy header of %s: %v", path, err)
	}
	if r.Header.Descr.Fortran {
		return nil, "", fmt.Errorf("gridprobe: %s is in Fortran (column-major) order, which is not supported", path)
	}
	shape := r.Header.Descr.Shape
	data := sparse.ZerosDense(shape...)
	var dtype string
	switch t := r.Header.Descr.Type; {
	case strings.HasSuffix(t, "f8"):
		dtype = "float64"
		var buf []float64
		if err := r.Read(&buf); err != nil {
			return nil, "", fmt.Errorf("gridprobe: reading npy data from %s: %v", path, err)
		}
		copy(data.Elements, buf)
	case strings.HasSuffix(t, "f4"):
		dtype = "float32"
		var buf []float32
		if err := r.Read(&buf); err != nil {
			return nil, "", fmt.Errorf("gridprobe: reading npy data from %s: %v", path, err)
		}
		for i, v := range buf {
			data.Elements[i] = float64(v)
		}
	default:
		return nil, "", fmt.Errorf("gridprobe: %s has unsupported element type %s", path, t)
	}
	return data, dtype, nil
}

func loadNetCDF(path, varName string) (*sparse.DenseArray, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	ff, err := cdf.Open(f)
	if err != nil {
		return nil, "", fmt.Errorf("gridprobe: reading netcdf header of %s: %v", path, err)
	}
	if varName == "" {
		for _, v := range ff.Header.Variables() {
			if len(ff.Header.Lengths(v)) == 3 {
				varName = v
				break
			}
		}
		if varName == "" {
			return nil, "", fmt.Errorf("gridprobe: %s contains no 3-dimensional variable", path)
		}
	}
	dims := ff.Header.Lengths(varName)
	if len(dims) == 0 {
		return nil, "", fmt.Errorf("gridprobe: variable %v not in file %s", varName, path)
	}
	n := 1
	for _, d := range dims {
		n *= d
	}
	r := ff.Reader(varName, nil, nil)
	buf := r.Zero(n)
	if _, err := r.Read(buf); err != nil {
		return nil, "", fmt.Errorf("gridprobe: reading netcdf variable %s from %s: %v", varName, path, err)
	}
	data := sparse.ZerosDense(dims...)
	var dtype string
	switch b := buf.(type) {
	case []float64:
		dtype = "float64"
		copy(data.Elements, b)
	case []float32:
		dtype = "float32"
		for i, v := range b {
			data.Elements[i] = float64(v)
		}
	case []int32:
		dtype = "int32"
		for i, v := range b {
			data.Elements[i] = float64(v)
		}
	case []int16:
		dtype = "int16"
		for i, v := range b {
			data.Elements[i] = float64(v)
		}
	default:
		return nil, "", fmt.Errorf("gridprobe: netcdf variable %s has unsupported element type %T", varName, buf)
	}
	return data, dtype, nil
}
