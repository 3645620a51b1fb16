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

// Package gridprobe performs exploratory statistical analysis of a single
// 3-dimensional gridded dataset, typically global weather data on a regular
// latitude-longitude grid with a trailing time axis. It computes descriptive
// statistics, heuristic interpretations of the array dimensions, temporal
// and spatial reductions, and percentile-based extreme-event diagnostics.
package gridprobe

// A GridDef describes a regular latitude-longitude grid. It is created once
// per investigation and passed to every consumer that needs to translate
// array indices into geographic coordinates, so that grid-size literals are
// not repeated across the analysis steps.
type GridDef struct {
	// Rows and Cols are the expected number of latitude and longitude
	// cells. Coordinate conversion only activates for arrays whose first
	// two axes match these exactly.
	Rows, Cols int

	// LatRes and LonRes are the cell sizes in degrees.
	LatRes, LonRes float64

	// Lat0 and Lon0 are the coordinates of cell (0, 0): the northwest
	// corner of the grid.
	Lat0, Lon0 float64
}

// GlobalGrid returns the definition of a global grid with the given number
// of rows and columns, spanning 90°N–90°S and 180°W–180°E with the origin
// at the northwest corner. GlobalGrid(720, 1440) is the 0.25° grid used by
// common reanalysis products.
func GlobalGrid(rows, cols int) GridDef {
	return GridDef{
		Rows:   rows,
		Cols:   cols,
		LatRes: 180 / float64(rows),
		LonRes: 360 / float64(cols),
		Lat0:   90,
		Lon0:   -180,
	}
}

// Matches reports whether the first two axes of shape equal the grid
// dimensions. This is the guard for all geographic coordinate conversion.
func (g GridDef) Matches(shape []int) bool {
	return len(shape) >= 2 && shape[0] == g.Rows && shape[1] == g.Cols
}

// LatLon converts a (row, column) cell index to geographic coordinates.
// Latitude decreases southward from Lat0 and longitude increases eastward
// from Lon0.
func (g GridDef) LatLon(row, col int) (lat, lon float64) {
	return g.Lat0 - float64(row)*g.LatRes, g.Lon0 + float64(col)*g.LonRes
}

// A Region is a named latitude-longitude bounding box used to annotate
// locations of interest in the event report.
type Region struct {
	Name           string
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

// LaptevSea is the region where the historical maxima of the reanalysis
// precipitation dataset this tool was first written for are located.
var LaptevSea = Region{
	Name:   "ARCTIC REGION: Laptev Sea, Northern Siberia",
	MinLat: 70, MaxLat: 80,
	MinLon: 130, MaxLon: 140,
}

// Contains reports whether the point (lat, lon) falls within the region,
// inclusive of its edges.
func (r Region) Contains(lat, lon float64) bool {
	return lat >= r.MinLat && lat <= r.MaxLat && lon >= r.MinLon && lon <= r.MaxLon
}
