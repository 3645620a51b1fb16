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
	"fmt"
	"os"

	"github.com/lnashier/viper"
	"github.com/spf13/cast"

	"github.com/spatialgrid/gridprobe"
)

// An InvestigationConfig is the typed configuration of one investigation
// run, assembled from the viper configuration once and passed to every
// analysis step.
type InvestigationConfig struct {
	InputFile  string
	OutputDir  string
	NCVariable string

	// Grid is the expected geographic grid; coordinate conversion only
	// activates for arrays whose spatial axes match it.
	Grid gridprobe.GridDef

	// Hotspot is the region whose annotation is printed when the global
	// maximum falls inside it.
	Hotspot gridprobe.Region

	HighPct, LowPct float64

	HistStride, FineHistStride int
	DisplayScale               float64

	SkipFigures bool
}

// configFromViper assembles the typed investigation configuration.
// Values may arrive as strings from environment variables or as numbers
// from a configuration file, so everything goes through cast.
func configFromViper(cfg *viper.Viper) (*InvestigationConfig, error) {
	c := &InvestigationConfig{
		InputFile:   os.ExpandEnv(cfg.GetString("InputFile")),
		OutputDir:   os.ExpandEnv(cfg.GetString("OutputDir")),
		NCVariable:  cfg.GetString("NCVariable"),
		SkipFigures: cfg.GetBool("SkipFigures"),
	}
	if c.InputFile == "" {
		return nil, fmt.Errorf("gridprobe: no input file specified; set the InputFile configuration variable")
	}
	var err error
	var rows, cols int
	if rows, err = cast.ToIntE(cfg.Get("GridRows")); err != nil {
		return nil, fmt.Errorf("gridprobe: invalid GridRows: %v", err)
	}
	if cols, err = cast.ToIntE(cfg.Get("GridCols")); err != nil {
		return nil, fmt.Errorf("gridprobe: invalid GridCols: %v", err)
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("gridprobe: grid dimensions must be positive; got %d×%d", rows, cols)
	}
	c.Grid = gridprobe.GlobalGrid(rows, cols)

	c.Hotspot.Name = cfg.GetString("Hotspot.Name")
	for _, v := range []struct {
		key  string
		dest *float64
	}{
		{"Hotspot.MinLat", &c.Hotspot.MinLat},
		{"Hotspot.MaxLat", &c.Hotspot.MaxLat},
		{"Hotspot.MinLon", &c.Hotspot.MinLon},
		{"Hotspot.MaxLon", &c.Hotspot.MaxLon},
		{"HighPercentile", &c.HighPct},
		{"LowPercentile", &c.LowPct},
		{"DisplayScale", &c.DisplayScale},
	} {
		if *v.dest, err = cast.ToFloat64E(cfg.Get(v.key)); err != nil {
			return nil, fmt.Errorf("gridprobe: invalid %s: %v", v.key, err)
		}
	}
	if c.HighPct <= c.LowPct {
		return nil, fmt.Errorf("gridprobe: HighPercentile (%g) must exceed LowPercentile (%g)", c.HighPct, c.LowPct)
	}
	if c.HistStride, err = cast.ToIntE(cfg.Get("HistogramStride")); err != nil {
		return nil, fmt.Errorf("gridprobe: invalid HistogramStride: %v", err)
	}
	if c.FineHistStride, err = cast.ToIntE(cfg.Get("FineHistogramStride")); err != nil {
		return nil, fmt.Errorf("gridprobe: invalid FineHistogramStride: %v", err)
	}
	return c, nil
}
