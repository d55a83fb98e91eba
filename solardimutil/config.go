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

package solardimutil

import (
	"os"

	"github.com/lnashier/viper"
	"github.com/spatialmodel/solardim"
	"github.com/spf13/cast"
)

// PipelineConfig builds the pipeline configuration from the given
// configuration information. Directory options may contain environment
// variables.
func PipelineConfig(cfg *viper.Viper) *solardim.Config {
	c := solardim.DefaultConfig()
	if v := cfg.GetString("DataDir"); v != "" {
		c.DataDir = os.ExpandEnv(v)
	}
	if v := cfg.GetString("OutputDir"); v != "" {
		c.OutputDir = os.ExpandEnv(v)
	}
	// Viper stores values read from configuration files as interface{},
	// so coerce rather than assert.
	if v := cfg.Get("Transfer.Slope"); v != nil {
		c.Transfer.Slope = cast.ToFloat64(v)
	}
	if v := cfg.Get("Transfer.ReferenceConcentration"); v != nil {
		c.Transfer.ReferenceConcentration = cast.ToFloat64(v)
	}
	c.Logger = logger
	return c
}
