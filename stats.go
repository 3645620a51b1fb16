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
	"sort"

	"github.com/GaryBoone/GoStats/stats"
	"github.com/ctessum/sparse"
	mstats "github.com/montanaflynn/stats"
)

// A Summary holds the descriptive statistics of a loaded array.
//
// The scalar statistics are computed with ordinary reducers: a single NaN
// element makes Min, Max, Mean, Std, and Median NaN. That is deliberate —
// the summary is where NaN contamination should surface, while the
// temporal and spatial reductions elsewhere in this package work around
// missing values. The special-value counts are always exact.
type Summary struct {
	DType string
	Shape []int
	Size  int
	Bytes int // on-disk memory footprint, Size × element width

	Min, Max, Mean, Std, Median float64

	NaNs, Infs, Zeros, Negatives int
}

// NDims returns the number of array dimensions.
func (s *Summary) NDims() int { return len(s.Shape) }

// MemoryMB returns the array's memory footprint in megabytes (2^20 bytes).
func (s *Summary) MemoryMB() float64 { return float64(s.Bytes) / (1 << 20) }

// itemSize returns the per-element byte width for a dtype name.
func itemSize(dtype string) int {
	switch dtype {
	case "float32", "int32":
		return 4
	case "int16":
		return 2
	default:
		return 8
	}
}

// Summarize computes the descriptive statistics of data. dtype is the
// element type name reported by the loader.
func Summarize(data *sparse.DenseArray, dtype string) *Summary {
	s := &Summary{
		DType: dtype,
		Shape: data.Shape,
		Size:  len(data.Elements),
		Bytes: len(data.Elements) * itemSize(dtype),
		Min:   math.Inf(1),
		Max:   math.Inf(-1),
	}
	var acc stats.Stats
	for _, v := range data.Elements {
		acc.Update(v)
		// math.Min and math.Max propagate NaN, unlike the GoStats
		// accumulator's running extrema.
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
		switch {
		case math.IsNaN(v):
			s.NaNs++
		case math.IsInf(v, 0):
			s.Infs++
		default:
			if v == 0 {
				s.Zeros++
			}
			if v < 0 {
				s.Negatives++
			}
		}
	}
	s.Mean = acc.Mean()
	s.Std = acc.PopulationStandardDeviation()
	if s.NaNs > 0 {
		// An ordinary median is undefined once NaNs are present.
		s.Median = math.NaN()
	} else if m, err := mstats.Median(data.Elements); err == nil {
		s.Median = m
	} else {
		s.Median = math.NaN()
	}
	return s
}

// Percentile returns the p-th percentile (0 ≤ p ≤ 100) of vals using
// linear interpolation between closest ranks. The interpolation rule is
// pinned: for n samples the percentile sits at fractional rank
// p/100×(n−1), so a series of 100 distinct values has exactly 5 entries
// strictly above its 95th percentile.
func Percentile(vals []float64, p float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	s := make([]float64, len(vals))
	copy(s, vals)
	sort.Float64s(s)
	h := p / 100 * float64(len(s)-1)
	i := int(math.Floor(h))
	if i < 0 {
		return s[0]
	}
	if i >= len(s)-1 {
		return s[len(s)-1]
	}
	return s[i] + (h-float64(i))*(s[i+1]-s[i])
}
