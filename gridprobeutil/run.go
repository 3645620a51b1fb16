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
	"io"
	"os"

	"github.com/ctessum/sparse"
	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"

	"github.com/spatialgrid/gridprobe"
	"github.com/spatialgrid/gridprobe/figures"
)

var logger *logrus.Logger

func init() {
	logger = logrus.StandardLogger()
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

// Investigate runs the one-shot investigation described by cfg, writing
// the report to w. Error handling has two tiers: a missing input file is
// reported with a clear message and nothing else runs, and any other
// failure is converted into a printed message. Figure-rendering failures
// are isolated further so that the extreme-event report always follows.
func Investigate(cfg *viper.Viper, w io.Writer) {
	rep := gridprobe.NewReporter(w)
	c, err := configFromViper(cfg)
	if err != nil {
		rep.Printf("Error during investigation: %v\n", err)
		return
	}
	fi, err := os.Stat(c.InputFile)
	if os.IsNotExist(err) {
		rep.Printf("Error: File '%s' not found!\n", c.InputFile)
		return
	}
	if err == nil {
		err = investigate(c, fi.Size(), rep)
	}
	if err != nil {
		rep.Printf("Error during investigation: %v\n", err)
	}
}

// investigate is the linear analysis pipeline. A deferred recover converts
// unexpected panics (for example from malformed array shapes) into the
// returned error, mirroring the single catch-all around the whole run.
func investigate(c *InvestigationConfig, fileSize int64, rep *gridprobe.Reporter) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	rep.Intro(c.InputFile, fileSize)

	logger.Infof("Loading array from %s...", c.InputFile)
	data, dtype, err := gridprobe.Load(c.InputFile, c.NCVariable)
	if err != nil {
		return err
	}

	rep.Summary(gridprobe.Summarize(data, dtype))

	dims, err := gridprobe.AnalyzeDims(data.Shape, c.Grid)
	if err != nil {
		return err
	}
	rep.Dims(dims, c.Grid)
	gridMatch := c.Grid.Matches(data.Shape)

	series := gridprobe.TemporalSeries(data)
	rep.Temporal(gridprobe.SummarizeSeries(series), gridprobe.Seasonal(series))

	mean := gridprobe.SpatialMean(data)
	rep.Spatial(mean, c.Grid, gridMatch)

	if !c.SkipFigures {
		logger.Info("Rendering figures...")
		files, ferr := renderFigures(data, series, mean, c)
		rep.Figures(files, ferr)
		if ferr != nil {
			logger.WithError(ferr).Warn("figure rendering failed; continuing with event identification")
		}
	}

	rep.Events(gridprobe.AnalyzeEvents(data, series, c.HighPct, c.LowPct), c.Grid, gridMatch, c.Hotspot)
	rep.Complete()
	return nil
}

// renderFigures isolates figure rendering behind its own recover so that a
// rendering failure cannot prevent the event report from running.
func renderFigures(data *sparse.DenseArray, series []float64, mean *sparse.DenseArray, c *InvestigationConfig) (files []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("figures: %v", r)
		}
	}()
	return figures.Render(data, series, mean, figures.Params{
		Dir:            c.OutputDir,
		Grid:           c.Grid,
		HistStride:     c.HistStride,
		FineHistStride: c.FineHistStride,
		HighPct:        c.HighPct,
		Scale:          c.DisplayScale,
	})
}
