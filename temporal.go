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
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// TemporalSeries collapses both spatial axes of a (lat, lon, time) array,
// returning the mean over all grid cells at each time index. NaN elements
// are excluded from the means; a time step whose cells are all NaN yields
// NaN. The input must have exactly three axes.
func TemporalSeries(data *sparse.DenseArray) []float64 {
	d := data.Shape[2]
	sums := make([]float64, d)
	counts := make([]float64, d)
	// Row-major layout: the time index is the fastest-varying one.
	for i, v := range data.Elements {
		if math.IsNaN(v) {
			continue
		}
		t := i % d
		sums[t] += v
		counts[t]++
	}
	for t := range sums {
		if counts[t] == 0 {
			sums[t] = math.NaN()
		} else {
			sums[t] /= counts[t]
		}
	}
	return sums
}

// SeriesStats holds summary statistics of a temporal series.
type SeriesStats struct {
	Min, Max, Mean, Std float64
}

// SummarizeSeries computes ordinary (non-NaN-aware) summary statistics of
// series.
func SummarizeSeries(series []float64) SeriesStats {
	return SeriesStats{
		Min:  floats.Min(series),
		Max:  floats.Max(series),
		Mean: stat.Mean(series, nil),
		Std:  stat.PopStdDev(series, nil),
	}
}

// A SeasonalCycle holds per-month averages of a temporal series under the
// assumption that consecutive samples are one month apart. No calendar
// validation is possible from a bare array; the caller is responsible for
// labeling the result as an assumption.
type SeasonalCycle struct {
	Mean  [12]float64
	Std   [12]float64
	Count [12]int

	// MaxMonth and MinMonth are 1-indexed months with the highest and
	// lowest average.
	MaxMonth, MinMonth int

	// Amplitude is the peak-to-trough difference of the monthly means.
	Amplitude float64
}

// Seasonal partitions series by month using stride-12 slicing (samples
// m, m+12, m+24, … belong to month m) and averages each partition. It
// returns nil if the series is shorter than 12 samples.
func Seasonal(series []float64) *SeasonalCycle {
	if len(series) < 12 {
		return nil
	}
	c := new(SeasonalCycle)
	for m := 0; m < 12; m++ {
		var part []float64
		for i := m; i < len(series); i += 12 {
			part = append(part, series[i])
		}
		c.Mean[m] = stat.Mean(part, nil)
		c.Std[m] = stat.PopStdDev(part, nil)
		c.Count[m] = len(part)
	}
	c.MaxMonth = floats.MaxIdx(c.Mean[:]) + 1
	c.MinMonth = floats.MinIdx(c.Mean[:]) + 1
	c.Amplitude = floats.Max(c.Mean[:]) - floats.Min(c.Mean[:])
	return c
}
