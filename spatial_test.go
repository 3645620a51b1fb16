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
	"math"
	"testing"

	"github.com/ctessum/sparse"
)

func TestSpatialMean(t *testing.T) {
	const tolerance = 1.0e-12
	data := sparse.ZerosDense(2, 2, 3)
	copy(data.Elements, []float64{
		1, 2, 3,
		4, math.NaN(), 6,
		math.NaN(), math.NaN(), math.NaN(),
		10, 11, 12,
	})
	mean := SpatialMean(data)
	if len(mean.Shape) != 2 || mean.Shape[0] != 2 || mean.Shape[1] != 2 {
		t.Fatalf("shape: want (2, 2), have %v", mean.Shape)
	}
	if math.Abs(mean.Get(0, 0)-2) > tolerance {
		t.Errorf("cell (0,0): want 2, have %g", mean.Get(0, 0))
	}
	if math.Abs(mean.Get(0, 1)-5) > tolerance {
		t.Errorf("cell (0,1): want 5, have %g", mean.Get(0, 1))
	}
	if !math.IsNaN(mean.Get(1, 0)) {
		t.Errorf("all-NaN cell: want NaN, have %g", mean.Get(1, 0))
	}
	if math.Abs(mean.Get(1, 1)-11) > tolerance {
		t.Errorf("cell (1,1): want 11, have %g", mean.Get(1, 1))
	}
}

func TestNaNReducers(t *testing.T) {
	m := sparse.ZerosDense(2, 3)
	copy(m.Elements, []float64{math.NaN(), 4, -2, 7, math.NaN(), 1})
	if v := NaNMin(m); v != -2 {
		t.Errorf("NaNMin: want -2, have %g", v)
	}
	if v := NaNMax(m); v != 7 {
		t.Errorf("NaNMax: want 7, have %g", v)
	}
	if loc := NaNArgMax(m); loc[0] != 1 || loc[1] != 0 {
		t.Errorf("NaNArgMax: want [1 0], have %v", loc)
	}
	if loc := NaNArgMin(m); loc[0] != 0 || loc[1] != 2 {
		t.Errorf("NaNArgMin: want [0 2], have %v", loc)
	}
}

func TestNaNReducersAllNaN(t *testing.T) {
	m := sparse.ZerosDense(2, 2)
	for i := range m.Elements {
		m.Elements[i] = math.NaN()
	}
	if v := NaNMin(m); !math.IsNaN(v) {
		t.Errorf("NaNMin of all-NaN map: want NaN, have %g", v)
	}
	if v := NaNMax(m); !math.IsNaN(v) {
		t.Errorf("NaNMax of all-NaN map: want NaN, have %g", v)
	}
	if loc := NaNArgMax(m); loc != nil {
		t.Errorf("NaNArgMax of all-NaN map: want nil, have %v", loc)
	}
	if loc := NaNArgMin(m); loc != nil {
		t.Errorf("NaNArgMin of all-NaN map: want nil, have %v", loc)
	}
}
