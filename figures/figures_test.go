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
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ctessum/sparse"
	"gonum.org/v1/plot"

	"github.com/spatialgrid/gridprobe"
)

// testData builds a small array with enough structure for every panel:
// positive values, an annual cycle, and one NaN cell.
func testData(rows, cols, d int) *sparse.DenseArray {
	data := sparse.ZerosDense(rows, cols, d)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			for t := 0; t < d; t++ {
				v := 100 + 10*float64(rows-i) + 5*math.Cos(2*math.Pi*float64(t%12)/12)
				data.Set(v, i, j, t)
			}
		}
	}
	data.Set(math.NaN(), 0, 0, 0)
	return data
}

func TestRender(t *testing.T) {
	rows, cols, d := 6, 8, 24
	data := testData(rows, cols, d)
	series := gridprobe.TemporalSeries(data)
	mean := gridprobe.SpatialMean(data)
	dir := t.TempDir()
	files, err := Render(data, series, mean, Params{
		Dir:        dir,
		Grid:       gridprobe.GlobalGrid(rows, cols),
		HistStride: 1, FineHistStride: 1,
		Scale: 1,
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{OverviewFile, DetailedFile, ComprehensiveFile}
	if len(files) != len(want) {
		t.Fatalf("files written: want %d, have %d (%v)", len(want), len(files), files)
	}
	for i, name := range want {
		if files[i] != filepath.Join(dir, name) {
			t.Errorf("file %d: want %s, have %s", i, name, files[i])
		}
		fi, err := os.Stat(files[i])
		if err != nil {
			t.Fatal(err)
		}
		if fi.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

// A record shorter than a year still renders; the seasonal panels are
// simply absent.
func TestRenderShortSeries(t *testing.T) {
	rows, cols, d := 4, 6, 5
	data := testData(rows, cols, d)
	series := gridprobe.TemporalSeries(data)
	mean := gridprobe.SpatialMean(data)
	files, err := Render(data, series, mean, Params{
		Dir:        t.TempDir(),
		Grid:       gridprobe.GlobalGrid(rows, cols),
		HistStride: 1, FineHistStride: 1,
		Scale: 1,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 3 {
		t.Errorf("files written: want 3, have %d", len(files))
	}
}

func TestGeoTicksFollowGrid(t *testing.T) {
	rows, cols := 12, 12
	grid := gridprobe.GlobalGrid(rows, cols)
	p := plot.New()
	geoTicks(p, grid, rows, cols)
	xt, ok := p.X.Tick.Marker.(plot.ConstantTicks)
	if !ok {
		t.Fatalf("x tick marker: want plot.ConstantTicks, have %T", p.X.Tick.Marker)
	}
	// Every second column is labeled with its longitude.
	if len(xt) != 6 {
		t.Fatalf("x ticks: want 6, have %d", len(xt))
	}
	if xt[0].Value != 0 || xt[0].Label != "-180°E" {
		t.Errorf("first x tick: want 0 / -180°E, have %g / %s", xt[0].Value, xt[0].Label)
	}
	if xt[1].Value != 2 || xt[1].Label != "-120°E" {
		t.Errorf("second x tick: want 2 / -120°E, have %g / %s", xt[1].Value, xt[1].Label)
	}
	yt := p.Y.Tick.Marker.(plot.ConstantTicks)
	// Row 0 is at the top of the displayed map.
	if yt[0].Value != float64(rows-1) || yt[0].Label != "90°N" {
		t.Errorf("first y tick: want %d / 90°N, have %g / %s", rows-1, yt[0].Value, yt[0].Label)
	}
}

func TestSample(t *testing.T) {
	vals := []float64{1, math.NaN(), -2, 0, 3, 4}
	out := sample(vals, 1, true)
	if len(out) != 3 {
		t.Errorf("positive-only sample: want 3 values, have %v", out)
	}
	out = sample(vals, 2, false)
	// Strided over indices 0, 2, 4.
	if len(out) != 3 || out[0] != 1 || out[1] != -2 || out[2] != 3 {
		t.Errorf("strided sample: want [1 -2 3], have %v", out)
	}
}
