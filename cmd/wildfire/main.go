/*
Copyright © 2013 the InMAP authors.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

// Command wildfire runs the fire-growth engine against a DEM and an hourly
// weather forecast, printing the newly ignited cell count each hour.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ctessum/wildfire"
	"github.com/ctessum/wildfire/internal/demio"
	"github.com/ctessum/wildfire/internal/weatherfeed"
	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// runConfig holds the settings a simulation run needs, populated from flags,
// WILDFIRE_-prefixed environment variables, or a config file — in that
// precedence order, following the teacher's viper-backed Cfg.
type runConfig struct {
	DEMFile      string  `mapstructure:"dem-file"`
	Location     string  `mapstructure:"location"`
	ForecastURL  string  `mapstructure:"forecast-url"`
	StartXPct    float64 `mapstructure:"start-x-pct"`
	StartYPct    float64 `mapstructure:"start-y-pct"`
	StartRadiusM float64 `mapstructure:"start-radius-m"`
}

func main() {
	v := viper.New()
	v.SetEnvPrefix("WILDFIRE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "wildfire",
		Short: "Simulate the hourly spread of a wildfire across a DEM.",
		DisableAutoGenTag: true,
	}

	var cfgPath string
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a TOML configuration file")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run a simulation to completion and print area burned each hour.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgPath != "" {
				v.SetConfigFile(os.ExpandEnv(cfgPath))
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("wildfire: reading config file: %w", err)
				}
			}
			var cfg runConfig
			if err := v.Unmarshal(&cfg); err != nil {
				return fmt.Errorf("wildfire: parsing configuration: %w", err)
			}
			return run(cmd.Context(), cfg)
		},
	}
	runCmd.Flags().String("dem-file", "", "path to an elevation raster dump")
	runCmd.Flags().String("location", "", "weather feed location key")
	runCmd.Flags().String("forecast-url", "", "hourly forecast HTTP endpoint")
	runCmd.Flags().Float64("start-x-pct", 0.5, "ignition center, fraction of grid width")
	runCmd.Flags().Float64("start-y-pct", 0.5, "ignition center, fraction of grid height")
	runCmd.Flags().Float64("start-radius-m", 50, "ignition radius, meters")
	v.BindPFlags(runCmd.Flags())

	root.AddCommand(runCmd)

	if err := root.Execute(); err != nil {
		wildfire.Log.Error(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg runConfig) error {
	demFile := os.ExpandEnv(cfg.DEMFile)
	f, err := os.Open(demFile)
	if err != nil {
		return fmt.Errorf("wildfire: opening DEM file %q: %w", demFile, err)
	}
	defer f.Close()

	dx, dy, elevations, err := demio.TextReader{}.ReadElevations(f)
	if err != nil {
		return fmt.Errorf("wildfire: decoding DEM: %w", err)
	}

	grid, err := wildfire.NewGrid(elevations, dx, dy, func(done, total int) {
		wildfire.Log.WithFields(logrus.Fields{"row": done, "total": total}).Debug("reading elevation grid")
	})
	if err != nil {
		return fmt.Errorf("wildfire: building grid: %w", err)
	}

	sim := wildfire.NewSimulator(grid)
	if err := sim.StartFire(cfg.StartXPct, cfg.StartYPct, cfg.StartRadiusM); err != nil {
		return fmt.Errorf("wildfire: starting fire: %w", err)
	}

	feed := &weatherfeed.Feed{BaseURL: os.ExpandEnv(cfg.ForecastURL)}
	hours, err := feed.Hours(ctx, cfg.Location)
	if err != nil {
		return fmt.Errorf("wildfire: fetching forecast: %w", err)
	}

	for hour, weather := range hours {
		fresh := sim.Step(weather)
		wildfire.Log.WithFields(logrus.Fields{
			"hour":          hour + 1,
			"newly_ignited": len(fresh),
			"area_m2":       sim.AreaM2(),
		}).Info("step complete")
	}
	return nil
}
