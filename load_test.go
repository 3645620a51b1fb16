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
	"reflect"
	"strings"
	"testing"
)

func TestLoadNPYFloat64(t *testing.T) {
	data, dtype, err := Load("testdata/small_f8.npy", "")
	if err != nil {
		t.Fatal(err)
	}
	if dtype != "float64" {
		t.Errorf("dtype: want float64, have %s", dtype)
	}
	if !reflect.DeepEqual(data.Shape, []int{2, 3, 4}) {
		t.Fatalf("shape: want (2, 3, 4), have %v", data.Shape)
	}
	if v := data.Get(0, 0, 0); v != 0 {
		t.Errorf("first element: want 0, have %g", v)
	}
	if v := data.Get(1, 2, 3); v != 23 {
		t.Errorf("last element: want 23, have %g", v)
	}
	// Row-major order: stepping the last axis moves by one element.
	if v := data.Get(0, 1, 2); v != 6 {
		t.Errorf("element (0,1,2): want 6, have %g", v)
	}
}

func TestLoadNPYFloat32(t *testing.T) {
	data, dtype, err := Load("testdata/small_f4.npy", "")
	if err != nil {
		t.Fatal(err)
	}
	if dtype != "float32" {
		t.Errorf("dtype: want float32, have %s", dtype)
	}
	if v := data.Get(1, 2, 3); v != 23 {
		t.Errorf("last element: want 23, have %g", v)
	}
}

func TestLoadNPYFortranOrder(t *testing.T) {
	_, _, err := Load("testdata/fortran.npy", "")
	if err == nil {
		t.Fatal("want an error for Fortran-ordered input, have nil")
	}
	if !strings.Contains(err.Error(), "Fortran") {
		t.Errorf("error should name the unsupported order: %v", err)
	}
}

func TestLoadNetCDF(t *testing.T) {
	// No variable name given: the loader picks the first 3-dimensional
	// variable in the file.
	data, dtype, err := Load("testdata/small.nc", "")
	if err != nil {
		t.Fatal(err)
	}
	if dtype != "float64" {
		t.Errorf("dtype: want float64, have %s", dtype)
	}
	if !reflect.DeepEqual(data.Shape, []int{2, 3, 4}) {
		t.Fatalf("shape: want (2, 3, 4), have %v", data.Shape)
	}
	if v := data.Get(1, 2, 3); v != 23 {
		t.Errorf("last element: want 23, have %g", v)
	}
}

func TestLoadNetCDFNamedVariable(t *testing.T) {
	data, _, err := Load("testdata/small.nc", "precip")
	if err != nil {
		t.Fatal(err)
	}
	if v := data.Get(0, 0, 1); v != 1 {
		t.Errorf("element (0,0,1): want 1, have %g", v)
	}
	if _, _, err := Load("testdata/small.nc", "nope"); err == nil {
		t.Error("want an error for a missing variable, have nil")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, _, err := Load("testdata/does_not_exist.npy", ""); err == nil {
		t.Error("want an error for a missing file, have nil")
	}
}
