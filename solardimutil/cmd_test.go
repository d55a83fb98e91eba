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
	"math"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	cfg := PipelineConfig(Cfg)
	if cfg.DataDir != "data" {
		t.Errorf("DataDir: got %s, want data", cfg.DataDir)
	}
	if cfg.OutputDir != "figures" {
		t.Errorf("OutputDir: got %s, want figures", cfg.OutputDir)
	}
	if math.Abs(cfg.Transfer.Slope+0.48) > 1e-12 {
		t.Errorf("Transfer.Slope: got %g, want -0.48", cfg.Transfer.Slope)
	}
	if math.Abs(cfg.Transfer.ReferenceConcentration-17.71) > 1e-12 {
		t.Errorf("Transfer.ReferenceConcentration: got %g, want 17.71",
			cfg.Transfer.ReferenceConcentration)
	}
}

func TestConfigOverride(t *testing.T) {
	Cfg.Set("Transfer.Slope", -0.3)
	Cfg.Set("Transfer.ReferenceConcentration", "20.5") // from a config file
	Cfg.Set("OutputDir", "out")
	defer func() {
		Cfg.Set("Transfer.Slope", -0.48)
		Cfg.Set("Transfer.ReferenceConcentration", 17.71)
		Cfg.Set("OutputDir", "figures")
	}()

	cfg := PipelineConfig(Cfg)
	if math.Abs(cfg.Transfer.Slope+0.3) > 1e-12 {
		t.Errorf("Transfer.Slope: got %g, want -0.3", cfg.Transfer.Slope)
	}
	if math.Abs(cfg.Transfer.ReferenceConcentration-20.5) > 1e-12 {
		t.Errorf("Transfer.ReferenceConcentration: got %g, want 20.5",
			cfg.Transfer.ReferenceConcentration)
	}
	if cfg.OutputDir != "out" {
		t.Errorf("OutputDir: got %s, want out", cfg.OutputDir)
	}
}
