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

	"github.com/ctessum/sparse"
)

// SpatialMean collapses the time axis of a (lat, lon, time) array,
// returning the 2-D map of per-cell means over time. NaN elements are
// excluded; a cell that is NaN at every time step yields NaN.
func SpatialMean(data *sparse.DenseArray) *sparse.DenseArray {
	h, w, d := data.Shape[0], data.Shape[1], data.Shape[2]
	out := sparse.ZerosDense(h, w)
	counts := make([]float64, h*w)
	for i, v := range data.Elements {
		if math.IsNaN(v) {
			continue
		}
		cell := i / d
		out.Elements[cell] += v
		counts[cell]++
	}
	for i := range out.Elements {
		if counts[i] == 0 {
			out.Elements[i] = math.NaN()
		} else {
			out.Elements[i] /= counts[i]
		}
	}
	return out
}

// NaNMin returns the minimum element of m, ignoring NaNs. It returns NaN
// if every element is NaN.
func NaNMin(m *sparse.DenseArray) float64 {
	min := math.NaN()
	for _, v := range m.Elements {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(min) || v < min {
			min = v
		}
	}
	return min
}

// NaNMax returns the maximum element of m, ignoring NaNs. It returns NaN
// if every element is NaN.
func NaNMax(m *sparse.DenseArray) float64 {
	max := math.NaN()
	for _, v := range m.Elements {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(max) || v > max {
			max = v
		}
	}
	return max
}

// NaNArgMax returns the multidimensional index of the largest non-NaN
// element of m, or nil if every element is NaN.
func NaNArgMax(m *sparse.DenseArray) []int {
	best := -1
	max := math.Inf(-1)
	for i, v := range m.Elements {
		if math.IsNaN(v) {
			continue
		}
		if best < 0 || v > max {
			best, max = i, v
		}
	}
	if best < 0 {
		return nil
	}
	return m.IndexNd(best)
}

// NaNArgMin returns the multidimensional index of the smallest non-NaN
// element of m, or nil if every element is NaN.
func NaNArgMin(m *sparse.DenseArray) []int {
	best := -1
	min := math.Inf(1)
	for i, v := range m.Elements {
		if math.IsNaN(v) {
			continue
		}
		if best < 0 || v < min {
			best, min = i, v
		}
	}
	if best < 0 {
		return nil
	}
	return m.IndexNd(best)
}
