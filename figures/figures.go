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

// Package figures renders the multi-panel summary figures of a gridded
// dataset investigation. Each panel is a pure function from already-reduced
// data to a plot; the package holds no state between figures.
package figures

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ctessum/sparse"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/spatialgrid/gridprobe"
)

// Figure file names within the output directory.
const (
	OverviewFile      = "grid_overview.png"
	DetailedFile      = "detailed_analysis.png"
	ComprehensiveFile = "comprehensive_analysis.png"
)

// Params configures figure rendering.
type Params struct {
	// Dir is the output directory; it is created if absent.
	Dir string

	// Grid supplies the geographic tick labels of the overlay panel.
	Grid gridprobe.GridDef

	// HistStride and FineHistStride control histogram down-sampling:
	// only every HistStride-th flattened element is binned, to bound
	// rendering cost on large arrays.
	HistStride, FineHistStride int

	// HighPct is the percentile drawn as a reference line on the
	// detailed time-series panel.
	HighPct float64

	// Scale divides all values in the detailed and comprehensive
	// figures, keeping axis labels readable for large-magnitude data.
	Scale float64
}

func (p *Params) setDefaults() {
	if p.HistStride == 0 {
		p.HistStride = 10000
	}
	if p.FineHistStride == 0 {
		p.FineHistStride = 5000
	}
	if p.HighPct == 0 {
		p.HighPct = 95
	}
	if p.Scale == 0 {
		p.Scale = 1000
	}
}

// Render writes the three summary figures of the investigation and returns
// the paths of the files it wrote. On error it returns the files already
// written; the caller reports the failure and continues with the rest of
// the analysis.
func Render(data *sparse.DenseArray, series []float64, mean *sparse.DenseArray, p Params) ([]string, error) {
	p.setDefaults()
	if err := os.MkdirAll(p.Dir, os.ModePerm); err != nil {
		return nil, err
	}
	var written []string
	for _, fig := range []struct {
		name  string
		build func(*sparse.DenseArray, []float64, *sparse.DenseArray, Params) ([][]*plot.Plot, vg.Length, vg.Length, error)
	}{
		{OverviewFile, overview},
		{DetailedFile, detailed},
		{ComprehensiveFile, comprehensive},
	} {
		plots, w, h, err := fig.build(data, series, mean, p)
		if err != nil {
			return written, fmt.Errorf("figures: building %s: %v", fig.name, err)
		}
		path := filepath.Join(p.Dir, fig.name)
		if err := writeFigure(path, plots, w, h); err != nil {
			return written, fmt.Errorf("figures: writing %s: %v", fig.name, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// overview is the 2×3 first-look figure: the raw temporal series, the
// spatial mean, a sampled histogram, and the first, middle, and last time
// slices.
func overview(data *sparse.DenseArray, series []float64, mean *sparse.DenseArray, p Params) ([][]*plot.Plot, vg.Length, vg.Length, error) {
	mid := data.Shape[2] / 2
	last := data.Shape[2] - 1

	line, err := seriesPanel(series, "Global Mean Time Series")
	if err != nil {
		return nil, 0, 0, err
	}
	hist, err := histPanel(sample(data.Elements, p.HistStride, false), 50)
	if err != nil {
		return nil, 0, 0, err
	}
	plots := [][]*plot.Plot{
		{line, heatPanel(mean, "Temporal Mean (Spatial Pattern)", divergent()), hist},
		{
			heatPanel(timeSlice(data, 0), "First Time Slice", divergent()),
			heatPanel(timeSlice(data, mid), fmt.Sprintf("Middle Time Slice (t=%d)", mid), divergent()),
			heatPanel(timeSlice(data, last), "Last Time Slice", divergent()),
		},
	}
	return plots, 20 * vg.Inch, 15 * vg.Inch, nil
}

// detailed is the 3×3 figure with scaled values, reference lines, the
// per-cell variability map, the seasonal cycle, and the geographic
// coordinate overlay.
func detailed(data *sparse.DenseArray, series []float64, mean *sparse.DenseArray, p Params) ([][]*plot.Plot, vg.Length, vg.Length, error) {
	scaled := data.ScaleCopy(1 / p.Scale)
	meanScaled := mean.ScaleCopy(1 / p.Scale)
	seriesScaled := scaleSeries(series, 1/p.Scale)
	mid := data.Shape[2] / 2
	last := data.Shape[2] - 1

	line, err := seriesPanel(seriesScaled, "Global Mean Time Series (Scaled)")
	if err != nil {
		return nil, 0, 0, err
	}
	if err := addReferenceLines(line, seriesScaled, p.HighPct); err != nil {
		return nil, 0, 0, err
	}
	hist, err := histPanel(sample(scaled.Elements, p.HistStride, true), 50)
	if err != nil {
		return nil, 0, 0, err
	}
	var seasonal *plot.Plot
	if cycle := gridprobe.Seasonal(seriesScaled); cycle != nil {
		seasonal, err = seasonalPanel(cycle, false)
		if err != nil {
			return nil, 0, 0, err
		}
	}
	geo := heatPanel(meanScaled, "Geographic Grid Overlay", divergent())
	geoTicks(geo, p.Grid, mean.Shape[0], mean.Shape[1])

	plots := [][]*plot.Plot{
		{line, heatPanel(meanScaled, "Temporal Mean Distribution", divergent()), heatPanel(timeSlice(scaled, 0), "First Time Slice", divergent())},
		{
			heatPanel(timeSlice(scaled, mid), fmt.Sprintf("Middle Time Slice (t=%d)", mid), divergent()),
			heatPanel(timeSlice(scaled, last), "Last Time Slice", divergent()),
			heatPanel(stdMap(scaled), "Standard Deviation", sequential()),
		},
		{hist, seasonal, geo},
	}
	return plots, 20 * vg.Inch, 15 * vg.Inch, nil
}

// comprehensive is the 3×4 figure centered on extremes: marked extreme
// time steps, their spatial slices, the anomaly and variability maps, and
// snapshots across the record.
func comprehensive(data *sparse.DenseArray, series []float64, mean *sparse.DenseArray, p Params) ([][]*plot.Plot, vg.Length, vg.Length, error) {
	scaled := data.ScaleCopy(1 / p.Scale)
	meanScaled := mean.ScaleCopy(1 / p.Scale)
	seriesScaled := scaleSeries(series, 1/p.Scale)
	maxIdx, minIdx := argMax(series), argMin(series)
	d := data.Shape[2]

	line, err := seriesPanel(seriesScaled, "Global Time Series with Extremes")
	if err != nil {
		return nil, 0, 0, err
	}
	if err := addExtremeMarkers(line, seriesScaled, maxIdx, minIdx); err != nil {
		return nil, 0, 0, err
	}
	anomaly := timeSlice(scaled, maxIdx)
	anomaly.AddDense(meanScaled.ScaleCopy(-1))
	hist, err := histPanel(sample(scaled.Elements, p.FineHistStride, true), 100)
	if err != nil {
		return nil, 0, 0, err
	}
	var seasonal *plot.Plot
	if cycle := gridprobe.Seasonal(seriesScaled); cycle != nil {
		seasonal, err = seasonalPanel(cycle, true)
		if err != nil {
			return nil, 0, 0, err
		}
	}

	snapshots := []int{0, d / 4, d / 2, d - 1}
	titles := []string{"Early Period", "Quarter Point", "Mid Period", "Late Period"}
	row3 := make([]*plot.Plot, len(snapshots))
	for i, t := range snapshots {
		row3[i] = heatPanel(timeSlice(scaled, t), fmt.Sprintf("%s (t=%d)", titles[i], t), divergent())
	}

	plots := [][]*plot.Plot{
		{
			line,
			heatPanel(meanScaled, "Temporal Mean", divergent()),
			heatPanel(timeSlice(scaled, maxIdx), fmt.Sprintf("Extreme High Event (t=%d)", maxIdx), hot()),
			heatPanel(timeSlice(scaled, minIdx), fmt.Sprintf("Extreme Low Event (t=%d)", minIdx), sequential()),
		},
		{
			heatPanel(anomaly, "Anomaly Pattern", divergent()),
			heatPanel(stdMap(scaled), "Variability (Std Dev)", sequential()),
			hist,
			seasonal,
		},
		row3,
	}
	return plots, 24 * vg.Inch, 18 * vg.Inch, nil
}

// writeFigure lays the panels out on one canvas and writes it as a PNG at
// 300 DPI.
func writeFigure(path string, plots [][]*plot.Plot, w, h vg.Length) error {
	img := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(300))
	dc := draw.New(img)
	t := draw.Tiles{
		Rows: len(plots),
		Cols: len(plots[0]),
		PadX: vg.Millimeter * 4,
		PadY: vg.Millimeter * 4,
	}
	canvases := plot.Align(plots, t, dc)
	for i := range plots {
		for j := range plots[i] {
			if plots[i][j] != nil {
				plots[i][j].Draw(canvases[i][j])
			}
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
