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

package figures

import (
	"fmt"
	"image/color"
	"math"

	"github.com/ctessum/sparse"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/spatialgrid/gridprobe"
)

func divergent() palette.Palette  { return moreland.SmoothBlueRed().Palette(255) }
func sequential() palette.Palette { return moreland.ExtendedBlackBody().Palette(255) }
func hot() palette.Palette        { return palette.Heat(255, 1) }

// seriesPanel plots a temporal series as a line over its index.
func seriesPanel(series []float64, title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Time Index"
	p.Y.Label.Text = "Value"
	pts := make(plotter.XYs, len(series))
	for i, v := range series {
		pts[i].X = float64(i)
		pts[i].Y = v
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	l.Color = color.RGBA{B: 255, A: 255}
	p.Add(plotter.NewGrid(), l)
	return p, nil
}

// addReferenceLines draws dashed horizontal lines at the series mean and
// its highPct-th percentile.
func addReferenceLines(p *plot.Plot, series []float64, highPct float64) error {
	var sum float64
	for _, v := range series {
		sum += v
	}
	mean := sum / float64(len(series))
	pct := gridprobe.Percentile(series, highPct)
	for _, ref := range []struct {
		v     float64
		name  string
		color color.RGBA
	}{
		{mean, "Mean", color.RGBA{R: 255, A: 255}},
		{pct, fmt.Sprintf("%gth percentile", highPct), color.RGBA{R: 255, G: 165, A: 255}},
	} {
		l, err := plotter.NewLine(plotter.XYs{
			{X: 0, Y: ref.v},
			{X: float64(len(series) - 1), Y: ref.v},
		})
		if err != nil {
			return err
		}
		l.Color = ref.color
		l.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(l)
		p.Legend.Add(ref.name, l)
	}
	return nil
}

// addExtremeMarkers marks the global maximum and minimum time steps of the
// series with filled glyphs.
func addExtremeMarkers(p *plot.Plot, series []float64, maxIdx, minIdx int) error {
	for _, m := range []struct {
		idx   int
		name  string
		color color.RGBA
	}{
		{maxIdx, "Max event", color.RGBA{R: 255, A: 255}},
		{minIdx, "Min event", color.RGBA{B: 255, A: 255}},
	} {
		s, err := plotter.NewScatter(plotter.XYs{{X: float64(m.idx), Y: series[m.idx]}})
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = m.color
		s.GlyphStyle.Radius = vg.Points(4)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(s)
		p.Legend.Add(m.name, s)
	}
	return nil
}

// histPanel plots a histogram of the (already down-sampled) values.
func histPanel(vals []float64, bins int) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Data Distribution (Sample)"
	p.X.Label.Text = "Value"
	p.Y.Label.Text = "Frequency"
	if len(vals) == 0 {
		return p, nil
	}
	h, err := plotter.NewHist(plotter.Values(vals), bins)
	if err != nil {
		return nil, err
	}
	h.FillColor = color.RGBA{R: 102, G: 194, B: 165, A: 255}
	p.Add(h)
	return p, nil
}

// cellGrid adapts a 2-D DenseArray to the plotter.GridXYZ interface, with
// row 0 displayed at the top as in the array's geographic convention. NaN
// cells take the value of the smallest finite cell so that color lookup
// stays defined.
type cellGrid struct {
	m    *sparse.DenseArray
	fill float64
}

func newCellGrid(m *sparse.DenseArray) cellGrid {
	return cellGrid{m: m, fill: gridprobe.NaNMin(m)}
}

func (g cellGrid) Dims() (c, r int) { return g.m.Shape[1], g.m.Shape[0] }
func (g cellGrid) X(c int) float64  { return float64(c) }
func (g cellGrid) Y(r int) float64  { return float64(r) }

func (g cellGrid) Z(c, r int) float64 {
	v := g.m.Get(g.m.Shape[0]-1-r, c)
	if math.IsNaN(v) {
		return g.fill
	}
	return v
}

// heatPanel renders a 2-D map with the given color palette.
func heatPanel(m *sparse.DenseArray, title string, pal palette.Palette) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Longitude Index"
	p.Y.Label.Text = "Latitude Index"
	p.Add(plotter.NewHeatMap(newCellGrid(m), pal))
	return p
}

// geoTicks replaces the index tick marks of a map panel with geographic
// coordinate labels derived from the grid definition. The overlay is
// informational and is drawn for any grid the definition describes.
func geoTicks(p *plot.Plot, grid gridprobe.GridDef, rows, cols int) {
	var xticks, yticks []plot.Tick
	for c := 0; c < cols; c += max(1, cols/6) {
		_, lon := grid.LatLon(0, c)
		xticks = append(xticks, plot.Tick{Value: float64(c), Label: fmt.Sprintf("%.0f°E", lon)})
	}
	for r := 0; r < rows; r += max(1, rows/6) {
		lat, _ := grid.LatLon(r, 0)
		// Row r is displayed at vertical position rows-1-r.
		yticks = append(yticks, plot.Tick{Value: float64(rows - 1 - r), Label: fmt.Sprintf("%.0f°N", lat)})
	}
	p.X.Tick.Marker = plot.ConstantTicks(xticks)
	p.Y.Tick.Marker = plot.ConstantTicks(yticks)
}

// seasonalPoints adapts a seasonal cycle for plotting, with months on the
// X axis (1-indexed) and optional standard-deviation error bars.
type seasonalPoints struct {
	cycle *gridprobe.SeasonalCycle
}

func (s seasonalPoints) Len() int { return 12 }

func (s seasonalPoints) XY(i int) (x, y float64) {
	return float64(i + 1), s.cycle.Mean[i]
}

func (s seasonalPoints) YError(i int) (low, high float64) {
	return s.cycle.Std[i], s.cycle.Std[i]
}

// seasonalPanel plots the 12 monthly averages of the series, optionally
// with error bars of the monthly standard deviation.
func seasonalPanel(cycle *gridprobe.SeasonalCycle, errBars bool) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Seasonal Cycle"
	p.X.Label.Text = "Month"
	p.Y.Label.Text = "Mean Value"
	pts := seasonalPoints{cycle: cycle}
	l, sc, err := plotter.NewLinePoints(xysFrom(pts))
	if err != nil {
		return nil, err
	}
	l.Color = color.RGBA{B: 255, A: 255}
	sc.GlyphStyle.Radius = vg.Points(3)
	p.Add(plotter.NewGrid(), l, sc)
	if errBars {
		bars, err := plotter.NewYErrorBars(pts)
		if err != nil {
			return nil, err
		}
		p.Add(bars)
		p.Title.Text = "Seasonal Pattern"
		p.Y.Label.Text = "Mean ± Std"
	}
	var mticks []plot.Tick
	for m := 1; m <= 12; m++ {
		mticks = append(mticks, plot.Tick{Value: float64(m), Label: fmt.Sprint(m)})
	}
	p.X.Tick.Marker = plot.ConstantTicks(mticks)
	return p, nil
}

func xysFrom(xyer plotter.XYer) plotter.XYs {
	pts := make(plotter.XYs, xyer.Len())
	for i := range pts {
		pts[i].X, pts[i].Y = xyer.XY(i)
	}
	return pts
}

// timeSlice extracts the 2-D spatial slice of data at time index t.
func timeSlice(data *sparse.DenseArray, t int) *sparse.DenseArray {
	h, w := data.Shape[0], data.Shape[1]
	out := sparse.ZerosDense(h, w)
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			out.Set(data.Get(i, j, t), i, j)
		}
	}
	return out
}

// stdMap returns the per-cell population standard deviation of data across
// its time axis. Like the overall summary statistics, it uses an ordinary
// reducer: a NaN at any time step makes that cell NaN (and the cell then
// renders at the low end of the color scale).
func stdMap(data *sparse.DenseArray) *sparse.DenseArray {
	h, w, d := data.Shape[0], data.Shape[1], data.Shape[2]
	out := sparse.ZerosDense(h, w)
	for cell := 0; cell < h*w; cell++ {
		var sum float64
		for t := 0; t < d; t++ {
			sum += data.Elements[cell*d+t]
		}
		mean := sum / float64(d)
		var ss float64
		for t := 0; t < d; t++ {
			dev := data.Elements[cell*d+t] - mean
			ss += dev * dev
		}
		out.Elements[cell] = math.Sqrt(ss / float64(d))
	}
	return out
}

// sample returns every stride-th element of vals, optionally keeping only
// positive values as the scaled histograms do.
func sample(vals []float64, stride int, positiveOnly bool) []float64 {
	var out []float64
	for i := 0; i < len(vals); i += stride {
		v := vals[i]
		if math.IsNaN(v) {
			continue
		}
		if positiveOnly && v <= 0 {
			continue
		}
		out = append(out, v)
	}
	return out
}

func scaleSeries(series []float64, f float64) []float64 {
	out := make([]float64, len(series))
	for i, v := range series {
		out[i] = v * f
	}
	return out
}

func argMax(series []float64) int {
	best := 0
	for i, v := range series {
		if v > series[best] {
			best = i
		}
	}
	return best
}

func argMin(series []float64) int {
	best := 0
	for i, v := range series {
		if v < series[best] {
			best = i
		}
	}
	return best
}
