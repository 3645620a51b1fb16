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

// Events holds the percentile-thresholded extreme time steps of a temporal
// series.
type Events struct {
	HighThreshold, LowThreshold float64

	// High and Low are the time indices whose series value lies strictly
	// above HighThreshold or strictly below LowThreshold.
	High, Low []int
}

// FindExtremes computes the highPct-th and lowPct-th percentile of series
// and classifies each time index against them.
func FindExtremes(series []float64, highPct, lowPct float64) *Events {
	e := &Events{
		HighThreshold: Percentile(series, highPct),
		LowThreshold:  Percentile(series, lowPct),
	}
	for i, v := range series {
		if v > e.HighThreshold {
			e.High = append(e.High, i)
		}
		if v < e.LowThreshold {
			e.Low = append(e.Low, i)
		}
	}
	return e
}

// Composite averages the spatial slices of data at the given time steps,
// returning a 2-D map. The average is an ordinary mean: NaN cells
// propagate into the composite, which is why its peak is then located with
// the NaN-ignoring reducers. Returns nil when steps is empty.
func Composite(data *sparse.DenseArray, steps []int) *sparse.DenseArray {
	if len(steps) == 0 {
		return nil
	}
	h, w, d := data.Shape[0], data.Shape[1], data.Shape[2]
	out := sparse.ZerosDense(h, w)
	for cell := 0; cell < h*w; cell++ {
		var sum float64
		for _, t := range steps {
			sum += data.Elements[cell*d+t]
		}
		out.Elements[cell] = sum / float64(len(steps))
	}
	return out
}

// An EventReport aggregates the extreme-event diagnostics of one array:
// the percentile-thresholded time steps, the composite map of the extreme
// high slices, and the single globally maximal element.
type EventReport struct {
	Events          *Events
	HighPct, LowPct float64
	CompositePeak   float64
	CompositeLoc    []int
	Max             MaxElement
}

// AnalyzeEvents runs the extreme-event analysis of data and its temporal
// series using the given percentile thresholds.
func AnalyzeEvents(data *sparse.DenseArray, series []float64, highPct, lowPct float64) *EventReport {
	er := &EventReport{
		Events:  FindExtremes(series, highPct, lowPct),
		HighPct: highPct,
		LowPct:  lowPct,
		Max:     GlobalMaximum(data),
	}
	if comp := Composite(data, er.Events.High); comp != nil {
		er.CompositePeak = NaNMax(comp)
		er.CompositeLoc = NaNArgMax(comp)
	}
	return er
}

// A MaxElement locates the single largest element of a 3-dimensional
// array.
type MaxElement struct {
	Value     float64
	Row, Col  int
	TimeIndex int
}

// GlobalMaximum returns the largest element of data together with its
// (row, column, time) position. NaN sorts above every number, matching
// ordinary argmax semantics.
func GlobalMaximum(data *sparse.DenseArray) MaxElement {
	best := 0
	max := math.Inf(-1)
	for i, v := range data.Elements {
		if math.IsNaN(v) {
			best = i
			break
		}
		if v > max {
			best, max = i, v
		}
	}
	idx := data.IndexNd(best)
	return MaxElement{
		Value:     data.Elements[best],
		Row:       idx[0],
		Col:       idx[1],
		TimeIndex: idx[2],
	}
}
