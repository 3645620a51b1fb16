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
	"io"
	"strings"

	"github.com/ctessum/sparse"
)

// A Reporter writes the human-readable investigation report. The report is
// a compatibility surface: test harnesses assert on the presence of its
// labeled lines (for example "Min value:" and "True global maximum:"), so
// the labels here must not change casually.
type Reporter struct {
	w io.Writer
}

// NewReporter returns a Reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

const sepWidth = 60

// Section prints a title between 60-character separator lines.
func (r *Reporter) Section(title string) {
	sep := strings.Repeat("=", sepWidth)
	fmt.Fprintf(r.w, "%s\n%s\n%s\n", sep, title, sep)
}

// Printf writes a formatted line of the report.
func (r *Reporter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(r.w, format, args...)
}

// shapeString formats an array shape the way the report prints it,
// e.g. "(720, 1440, 24)".
func shapeString(shape []int) string {
	parts := make([]string, len(shape))
	for i, s := range shape {
		parts[i] = fmt.Sprint(s)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Intro prints the report banner and the size of the input file.
func (r *Reporter) Intro(path string, sizeBytes int64) {
	r.Section("GRIDDED DATA INVESTIGATION")
	r.Printf("File: %s\n", path)
	r.Printf("File size: %.2f MB\n", float64(sizeBytes)/(1<<20))
}

// Summary prints the descriptive-statistics section.
func (r *Reporter) Summary(s *Summary) {
	r.Section("BASIC DATA ANALYSIS")
	r.Printf("Data type: %s\n", s.DType)
	r.Printf("Shape: %s\n", shapeString(s.Shape))
	r.Printf("Number of dimensions: %d\n", s.NDims())
	r.Printf("Total elements: %d\n", s.Size)
	r.Printf("Memory usage: %.2f MB\n", s.MemoryMB())
	r.Printf("\nStatistical Information:\n")
	r.Printf("Min value: %.2f\n", s.Min)
	r.Printf("Max value: %.2f\n", s.Max)
	r.Printf("Mean: %.2f\n", s.Mean)
	r.Printf("Std deviation: %.2f\n", s.Std)
	r.Printf("Median: %.2f\n", s.Median)
	r.Printf("\nData Quality:\n")
	r.Printf("NaN values: %d\n", s.NaNs)
	r.Printf("Infinite values: %d\n", s.Infs)
	r.Printf("Zero values: %d\n", s.Zeros)
	r.Printf("Negative values: %d\n", s.Negatives)
}

// Dims prints the dimensional-analysis section.
func (r *Reporter) Dims(d *DimInfo, grid GridDef) {
	r.Printf("\n")
	r.Section("DIMENSIONAL ANALYSIS")
	r.Printf("Dimension 0 (height): %d\n", d.Height)
	r.Printf("Dimension 1 (width): %d\n", d.Width)
	r.Printf("Dimension 2 (depth): %d\n", d.Depth)
	r.Printf("\nGeospatial Analysis:\n")
	r.Printf("Height/Width ratio: %.3f\n", d.Ratio)
	if d.GridMatch {
		r.Printf("✓ This matches a %.3g° global grid (%dx%d)!\n", grid.LatRes, grid.Rows, grid.Cols)
		r.Printf("  - Latitude: %g°S to %g°N in %.3g° steps\n", grid.Lat0, grid.Lat0, grid.LatRes)
		r.Printf("  - Longitude: %g°W to %g°E in %.3g° steps\n", -grid.Lon0, -grid.Lon0, grid.LonRes)
		r.Printf("  - Latitude resolution: %.3f°\n", 180/float64(d.Height))
		r.Printf("  - Longitude resolution: %.3f°\n", 360/float64(d.Width))
	}
	r.Printf("\nThird dimension analysis (depth=%d):\n", d.Depth)
	switch {
	case d.TimeAxis:
		r.Printf("  - Likely time dimension (many time steps)\n")
		r.Printf("  - Could be ~%d months or %d years of data\n", d.Months, d.Years)
	case d.ShortAxis:
		r.Printf("  - Could be atmospheric levels or short time series\n")
	}
}

// Temporal prints the temporal-pattern section.
func (r *Reporter) Temporal(st SeriesStats, cycle *SeasonalCycle) {
	r.Printf("\n")
	r.Section("TEMPORAL PATTERN ANALYSIS")
	r.Printf("Time series statistics:\n")
	r.Printf("Min global mean: %.2f\n", st.Min)
	r.Printf("Max global mean: %.2f\n", st.Max)
	r.Printf("Mean of means: %.2f\n", st.Mean)
	r.Printf("Std of means: %.2f\n", st.Std)
	if cycle != nil {
		r.Printf("\nSeasonal Analysis (assuming monthly data):\n")
		r.Printf("Highest values in month %d\n", cycle.MaxMonth)
		r.Printf("Lowest values in month %d\n", cycle.MinMonth)
		r.Printf("Seasonal amplitude: %.2f\n", cycle.Amplitude)
	}
}

// Spatial prints the spatial-pattern section. gridMatch determines whether
// the extrema positions are converted to geographic coordinates.
func (r *Reporter) Spatial(mean *sparse.DenseArray, grid GridDef, gridMatch bool) {
	r.Printf("\n")
	r.Section("SPATIAL PATTERN ANALYSIS")
	r.Printf("Spatial statistics:\n")
	r.Printf("Min spatial value: %.2f\n", NaNMin(mean))
	r.Printf("Max spatial value: %.2f\n", NaNMax(mean))
	if !gridMatch {
		return
	}
	maxLoc := NaNArgMax(mean)
	minLoc := NaNArgMin(mean)
	if maxLoc == nil || minLoc == nil {
		return
	}
	maxLat, maxLon := grid.LatLon(maxLoc[0], maxLoc[1])
	minLat, minLon := grid.LatLon(minLoc[0], minLoc[1])
	r.Printf("\nExtreme locations (global %.3g° grid):\n", grid.LatRes)
	r.Printf("Maximum at: %.2f°N, %.2f°E\n", maxLat, maxLon)
	r.Printf("Minimum at: %.2f°N, %.2f°E\n", minLat, minLon)
}

// Figures prints the figure-rendering section header and, on success, one
// confirmation line per written file.
func (r *Reporter) Figures(files []string, err error) {
	r.Printf("\n")
	r.Section("CREATING VISUALIZATIONS")
	for _, f := range files {
		r.Printf("✓ Saved %s\n", f)
	}
	if err != nil {
		r.Printf("Figure rendering error: %v\n", err)
	}
}

// Events prints the extreme-event section.
func (r *Reporter) Events(er *EventReport, grid GridDef, gridMatch bool, region Region) {
	r.Printf("\n")
	r.Section("WEATHER EVENT IDENTIFICATION")
	ev := er.Events
	r.Printf("Extreme Events Analysis:\n")
	r.Printf("High threshold (%gth percentile): %.2f\n", er.HighPct, ev.HighThreshold)
	r.Printf("Low threshold (%gth percentile): %.2f\n", er.LowPct, ev.LowThreshold)
	r.Printf("Number of extreme high events: %d\n", len(ev.High))
	r.Printf("Number of extreme low events: %d\n", len(ev.Low))
	if len(ev.High) > 0 {
		r.Printf("\nExtreme HIGH events at time indices: %v\n", firstN(ev.High, 10))
	}
	if len(ev.Low) > 0 {
		r.Printf("Extreme LOW events at time indices: %v\n", firstN(ev.Low, 10))
	}
	if len(ev.High) > 0 {
		r.Printf("\nDuring extreme HIGH events:\n")
		r.Printf("Peak spatial value: %.2f\n", er.CompositePeak)
		if gridMatch && er.CompositeLoc != nil {
			lat, lon := grid.LatLon(er.CompositeLoc[0], er.CompositeLoc[1])
			r.Printf("Hotspot during extreme global mean events: %.2f°N, %.2f°E\n", lat, lon)
		}
	}
	r.Printf("\nGLOBAL MAXIMUM ANALYSIS:\n")
	r.Printf("True global maximum: %.2f units\n", er.Max.Value)
	r.Printf("Time index: %d\n", er.Max.TimeIndex)
	if gridMatch {
		lat, lon := grid.LatLon(er.Max.Row, er.Max.Col)
		r.Printf("Location: %.2f°N, %.2f°E\n", lat, lon)
		if region.Contains(lat, lon) {
			r.Printf("✓ %s\n", region.Name)
			r.Printf("  This makes meteorological sense for extreme precipitation!\n")
		}
	}
}

// Complete prints the closing banner.
func (r *Reporter) Complete() {
	r.Printf("\n")
	r.Section("INVESTIGATION COMPLETE")
}

// firstN returns at most the first n entries of s.
func firstN(s []int, n int) []int {
	if len(s) > n {
		return s[:n]
	}
	return s
}
