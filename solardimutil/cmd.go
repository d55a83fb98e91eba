/*
Copyright © 2018 the SolarDim authors.
This file is part of SolarDim.

SolarDim is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

SolarDim is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with SolarDim.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package solardimutil holds the command-line interface and configuration
// handling for the SolarDim model.
package solardimutil

import (
	"fmt"
	"time"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/solardim"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var logger *logrus.Logger

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	logger = logrus.StandardLogger()
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	// Options are the configuration options available to SolarDim.
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
			name: "DataDir",
			usage: `
              DataDir is the directory searched for the CESM PM2.5
              concentration files.`,
			defaultVal: "data",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "OutputDir",
			usage: `
              OutputDir is the directory rendered figures and the regional
              summary are written to. A positional command-line argument
              takes precedence over this option.`,
			defaultVal: "figures",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Transfer.Slope",
			usage: `
              Transfer.Slope is the fractional change in solar power potential
              per reference concentration of PM2.5.`,
			defaultVal: solardim.DefaultTransferFunction.Slope,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Transfer.ReferenceConcentration",
			usage: `
              Transfer.ReferenceConcentration is the PM2.5 concentration
              (μg/m³) at which the full slope applies.`,
			defaultVal: solardim.DefaultTransferFunction.ReferenceConcentration,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("SOLARDIM")

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

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("solardim: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "solardim [output directory]",
	Short: "Wildfire PM2.5 impacts on solar power potential.",
	Long: `SolarDim computes and visualizes the loss in solar photovoltaic power
potential caused by wildfire-derived PM2.5, from paired fire and no-fire
CESM concentration fields for historical and future emission scenarios.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'SOLARDIM_var' where 'var'
is the name of the variable to be set.
Refer to https://github.com/spf13/viper for additional configuration
information.`,
	Args:              cobra.MaximumNArgs(1),
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := PipelineConfig(Cfg)
		if len(args) == 1 {
			cfg.OutputDir = args[0]
		}
		return Run(cfg)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of SolarDim.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("SolarDim v%s\n", solardim.Version)
	},
	DisableAutoGenTag: true,
}

// Run executes the processing pipeline with the given configuration and
// renders its artifacts. Scenarios that fail to load are summarized and
// skipped; Run only returns an error when no scenario produced output or
// when rendering fails.
func Run(cfg *solardim.Config) error {
	results, err := solardim.Run(cfg)
	if err != nil {
		return err
	}
	for s, serr := range results.Skipped {
		logger.Warnf("scenario %v was skipped: %v", s, serr)
	}
	if err := solardim.WriteArtifacts(results, cfg.OutputDir); err != nil {
		return err
	}
	logger.Infof("wrote figures to %s", cfg.OutputDir)
	return nil
}
