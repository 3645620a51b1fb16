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

// Package gridprobeutil wires the gridprobe analysis into a command-line
// tool: configuration handling, the investigation pipeline, and its
// two-tier error reporting.
package gridprobeutil

import (
	"fmt"
	"os"

	"github.com/lnashier/viper"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to GridProbe.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "InputFile",
			usage: `
              InputFile is the path of the array to investigate: a NumPy
              ".npy" file, or a classic-format NetCDF file when the name
              ends in ".nc", ".ncf", or ".cdf".`,
			shorthand:  "i",
			defaultVal: "mystery.npy",
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name: "OutputDir",
			usage: `
              OutputDir is the directory the summary figures are written
              to. It is created if it does not exist.`,
			shorthand:  "o",
			defaultVal: "analysis",
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name: "NCVariable",
			usage: `
              NCVariable selects the NetCDF variable to load. When empty,
              the first 3-dimensional variable in the file is used.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name: "GridRows",
			usage: `
              GridRows is the number of latitude rows of the grid that
              geographic coordinate conversion expects.`,
			defaultVal: 720,
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name: "GridCols",
			usage: `
              GridCols is the number of longitude columns of the grid that
              geographic coordinate conversion expects.`,
			defaultVal: 1440,
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name: "HighPercentile",
			usage: `
              HighPercentile is the temporal-series percentile above which
              a time step counts as an extreme high event.`,
			defaultVal: 95.0,
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name: "LowPercentile",
			usage: `
              LowPercentile is the temporal-series percentile below which
              a time step counts as an extreme low event.`,
			defaultVal: 5.0,
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name: "HistogramStride",
			usage: `
              HistogramStride bounds histogram rendering cost: only every
              HistogramStride-th flattened element is binned.`,
			defaultVal: 10000,
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name: "FineHistogramStride",
			usage: `
              FineHistogramStride is the sampling stride of the
              finer-binned histogram in the comprehensive figure.`,
			defaultVal: 5000,
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name: "DisplayScale",
			usage: `
              DisplayScale divides the values shown in the detailed and
              comprehensive figures, keeping axis labels readable for
              large-magnitude data.`,
			defaultVal: 1000.0,
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name: "SkipFigures",
			usage: `
              SkipFigures disables figure rendering; the printed report is
              produced as usual.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name: "Hotspot.Name",
			usage: `
              Hotspot.Name is the annotation printed when the global
              maximum falls inside the hotspot bounding box.`,
			defaultVal: "ARCTIC REGION: Laptev Sea, Northern Siberia",
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name: "Hotspot.MinLat",
			usage: `
              Hotspot.MinLat is the southern edge of the hotspot bounding
              box in degrees north.`,
			defaultVal: 70.0,
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name: "Hotspot.MaxLat",
			usage: `
              Hotspot.MaxLat is the northern edge of the hotspot bounding
              box in degrees north.`,
			defaultVal: 80.0,
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name: "Hotspot.MinLon",
			usage: `
              Hotspot.MinLon is the western edge of the hotspot bounding
              box in degrees east.`,
			defaultVal: 130.0,
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name: "Hotspot.MaxLon",
			usage: `
              Hotspot.MaxLon is the eastern edge of the hotspot bounding
              box in degrees east.`,
			defaultVal: 140.0,
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("GRIDPROBE")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	Root.AddCommand(versionCmd)
}

// InitializeConfig returns a new configuration holding the default values
// of every option, without any flag binding. It is the entry point for
// driving investigations programmatically and from tests.
func InitializeConfig() *viper.Viper {
	cfg := viper.New()
	cfg.SetEnvPrefix("GRIDPROBE")
	for _, option := range options {
		cfg.SetDefault(option.name, option.defaultVal)
	}
	return cfg
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("gridprobe: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "gridprobe [input file]",
	Short: "Exploratory analysis of a 3-D gridded weather dataset.",
	Long: `GridProbe loads a single 3-dimensional numeric array — typically global
gridded weather data with latitude, longitude, and time axes — and prints a
structured report of its descriptive statistics, likely dimension meanings,
temporal and spatial patterns, and extreme events, alongside three
multi-panel summary figures.

Configuration can be changed by using a configuration file (and providing
the path to the file using the --config flag), by using command-line
arguments, or by setting environment variables in the format
'GRIDPROBE_var' where 'var' is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
	Args:              cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 1 {
			Cfg.Set("InputFile", args[0])
		}
		Investigate(Cfg, os.Stdout)
	},
}

// versionCmd prints the version number.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("GridProbe v%s\n", Version)
	},
	DisableAutoGenTag: true,
}

// Version is the version of this program.
const Version = "0.1.0"
