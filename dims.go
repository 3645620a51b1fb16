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

import "fmt"

// A DimInfo holds heuristic guesses about what each axis of a 3-dimensional
// array represents. The guesses only inform the printed report; they never
// alter later computation.
type DimInfo struct {
	Height, Width, Depth int

	// Ratio is Height/Width. A value of 0.5 is typical of global
	// latitude-longitude grids.
	Ratio float64

	// GridMatch reports whether (Height, Width) equals the investigation
	// grid, in which case the axes are annotated with its resolution.
	GridMatch bool

	// TimeAxis is set when the third axis is long enough (>100) to
	// plausibly be a time dimension; Months and Years then hold rough
	// duration estimates assuming daily or monthly cadence.
	TimeAxis      bool
	Months, Years int

	// ShortAxis is set when the third axis is short (<50), suggesting
	// atmospheric levels or a short series. Lengths of 50–100 produce
	// neither annotation.
	ShortAxis bool
}

// AnalyzeDims interprets the shape of a 3-dimensional array against the
// given grid definition. It returns an error if the array does not have
// exactly three axes.
func AnalyzeDims(shape []int, grid GridDef) (*DimInfo, error) {
	if len(shape) != 3 {
		return nil, fmt.Errorf("gridprobe: dimensional analysis needs a 3-dimensional array; got %d dimensions", len(shape))
	}
	d := &DimInfo{
		Height: shape[0],
		Width:  shape[1],
		Depth:  shape[2],
	}
	d.Ratio = float64(d.Height) / float64(d.Width)
	d.GridMatch = grid.Matches(shape)
	if d.Depth > 100 {
		d.TimeAxis = true
		d.Months = d.Depth / 30
		d.Years = d.Depth / 12
	} else if d.Depth < 50 {
		d.ShortAxis = true
	}
	return d, nil
}
