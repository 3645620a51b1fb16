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

package gridprobeutil

import (
	"bytes"
	"strings"
	"testing"
)

func TestInvestigateMissingFile(t *testing.T) {
	cfg := InitializeConfig()
	cfg.Set("InputFile", "no_such_file.npy")
	var buf bytes.Buffer
	Investigate(cfg, &buf)
	out := buf.String()
	if !strings.Contains(out, "Error: File 'no_such_file.npy' not found!") {
		t.Errorf("report missing the not-found message:\n%s", out)
	}
	if strings.Contains(out, "BASIC DATA ANALYSIS") {
		t.Errorf("nothing may run after a missing input file:\n%s", out)
	}
}

func TestInvestigateNPY(t *testing.T) {
	cfg := InitializeConfig()
	cfg.Set("InputFile", "../testdata/small_f8.npy")
	cfg.Set("OutputDir", t.TempDir())
	cfg.Set("HistogramStride", 1)
	cfg.Set("FineHistogramStride", 1)
	cfg.Set("DisplayScale", 1.0)
	var buf bytes.Buffer
	Investigate(cfg, &buf)
	out := buf.String()
	sections := []string{
		"GRIDDED DATA INVESTIGATION",
		"BASIC DATA ANALYSIS",
		"DIMENSIONAL ANALYSIS",
		"TEMPORAL PATTERN ANALYSIS",
		"SPATIAL PATTERN ANALYSIS",
		"CREATING VISUALIZATIONS",
		"WEATHER EVENT IDENTIFICATION",
		"INVESTIGATION COMPLETE",
	}
	pos := -1
	for _, s := range sections {
		p := strings.Index(out, s)
		if p < 0 {
			t.Fatalf("report missing section %q:\n%s", s, out)
		}
		if p < pos {
			t.Errorf("section %q out of order", s)
		}
		pos = p
	}
	for _, want := range []string{
		"Shape: (2, 3, 4)",
		"✓ Saved",
		"True global maximum: 23.00 units",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
	// A (2, 3) array is not the configured global grid, so nothing is
	// located geographically.
	if strings.Contains(out, "Location:") {
		t.Errorf("small grid must not be located geographically:\n%s", out)
	}
}

func TestInvestigateNetCDF(t *testing.T) {
	cfg := InitializeConfig()
	cfg.Set("InputFile", "../testdata/small.nc")
	cfg.Set("SkipFigures", true)
	var buf bytes.Buffer
	Investigate(cfg, &buf)
	out := buf.String()
	for _, want := range []string{
		"Data type: float64",
		"Shape: (2, 3, 4)",
		"WEATHER EVENT IDENTIFICATION",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "CREATING VISUALIZATIONS") {
		t.Errorf("SkipFigures must suppress figure rendering:\n%s", out)
	}
}

func TestInvestigateBadConfig(t *testing.T) {
	cfg := InitializeConfig()
	cfg.Set("InputFile", "../testdata/small_f8.npy")
	cfg.Set("GridRows", 0)
	var buf bytes.Buffer
	Investigate(cfg, &buf)
	out := buf.String()
	if !strings.Contains(out, "Error during investigation:") {
		t.Errorf("report missing the configuration error:\n%s", out)
	}
	if strings.Contains(out, "BASIC DATA ANALYSIS") {
		t.Errorf("nothing may run on an invalid configuration:\n%s", out)
	}
}

func TestInvestigateThresholdOrder(t *testing.T) {
	cfg := InitializeConfig()
	cfg.Set("InputFile", "../testdata/small_f8.npy")
	cfg.Set("HighPercentile", 5.0)
	cfg.Set("LowPercentile", 95.0)
	var buf bytes.Buffer
	Investigate(cfg, &buf)
	if !strings.Contains(buf.String(), "Error during investigation:") {
		t.Errorf("inverted percentiles must be rejected:\n%s", buf.String())
	}
}
