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

package solardim

import (
	"image/png"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/ctessum/geom/carto"
	"github.com/ctessum/sparse"
)

func TestWriteArtifacts(t *testing.T) {
	src := &fakeSource{
		fire:   make(map[Scenario]*GridField),
		noFire: make(map[Scenario]*GridField),
	}
	for i, s := range Scenarios() {
		src.fire[s] = globalField(5 + float64(i))
		src.noFire[s] = globalField(2)
	}
	cfg := DefaultConfig()
	cfg.Source = src
	cfg.Logger = quietLogger()

	r, err := Run(cfg)
	if err != nil {
		t.Fatal(err)
	}

	dir, err := ioutil.TempDir("", "solardim")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	if err := WriteArtifacts(r, dir); err != nil {
		t.Fatal(err)
	}

	want := []string{
		"wildfire_pm25_2000.png",
		"wildfire_pm25_2050_rcp45.png",
		"wildfire_pm25_2100_rcp85.png",
		"solar_potential_loss_2000.png",
		"solar_potential_loss_2100_rcp45.png",
		"wildfire_pm25_change_2000_to_2100_rcp85.png",
		"solar_potential_loss_change_2050_to_2100_rcp45.png",
		"wildfire_pm25_scenario_comparison.png",
		"solar_potential_loss_scenario_comparison.png",
		"regional_wildfire_pm25.png",
		"regional_solar_potential_loss.png",
		"regional_solar_potential_loss_changes.png",
		"regional_summary.xlsx",
	}
	for _, name := range want {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing artifact %s: %v", name, err)
		}
	}

	// The scenario maps must be decodable images.
	for _, name := range []string{"wildfire_pm25_2000.png", "wildfire_pm25_scenario_comparison.png"} {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := png.Decode(f); err != nil {
			t.Errorf("decoding %s: %v", name, err)
		}
		f.Close()
	}
}

func TestWriteMapSmallGrid(t *testing.T) {
	// A degenerate single-cell field must still render: the cell size
	// falls back to one degree and the legend strip is widened to its
	// minimum instead of collapsing to an empty image.
	f := &GridField{
		Lat:  []float64{0},
		Lon:  []float64{0},
		Data: sparse.ZerosDense(1, 1),
	}
	f.Data.Elements[0] = 5

	dir, err := ioutil.TempDir("", "solardim")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "single_cell.png")
	if err := writeMap(f, carto.Linear, "test (units)", path); err != nil {
		t.Fatal(err)
	}
	img, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer img.Close()
	m, err := png.Decode(img)
	if err != nil {
		t.Fatal(err)
	}
	if m.Bounds().Dx() < 100 || m.Bounds().Dy() < 2 {
		t.Errorf("image too small to hold a legend: %v", m.Bounds())
	}
}
