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
	"fmt"
	"strings"
)

// Pathway is a representative concentration pathway, or the historical
// baseline for the year 2000.
type Pathway string

// The pathways for which CESM concentration fields exist.
const (
	Baseline Pathway = "Baseline"
	RCP45    Pathway = "RCP45"
	RCP85    Pathway = "RCP85"
)

// Scenario identifies one CESM model run by time period and pathway.
// Baseline is only valid for the year 2000.
type Scenario struct {
	Year    int
	Pathway Pathway
}

// Scenarios returns the closed set of scenarios this model operates on.
func Scenarios() []Scenario {
	return []Scenario{
		{Year: 2000, Pathway: Baseline},
		{Year: 2050, Pathway: RCP45},
		{Year: 2050, Pathway: RCP85},
		{Year: 2100, Pathway: RCP45},
		{Year: 2100, Pathway: RCP85},
	}
}

func (s Scenario) String() string {
	if s.Pathway == Baseline {
		return fmt.Sprintf("%d Baseline", s.Year)
	}
	return fmt.Sprintf("%d RCP %c.%c", s.Year, s.Pathway[3], s.Pathway[4])
}

// Key returns an identifier suitable for use in artifact file names,
// for example "2000" or "2050_rcp45".
func (s Scenario) Key() string {
	if s.Pathway == Baseline {
		return fmt.Sprintf("%d", s.Year)
	}
	return fmt.Sprintf("%d_%s", s.Year, strings.ToLower(string(s.Pathway)))
}

// FileName returns the name of the NetCDF file holding the concentration
// field for this scenario, following the convention
// CESM_09x125_PM25_<year>_<pathway>[_NoFire].nc.
func (s Scenario) FileName(noFire bool) string {
	name := fmt.Sprintf("CESM_09x125_PM25_%d_%s", s.Year, s.Pathway)
	if noFire {
		name += "_NoFire"
	}
	return name + ".nc"
}

// Comparison identifies a delta between two scenarios, computed as
// To minus From.
type Comparison struct {
	From, To Scenario
}

// Comparisons returns the fixed set of temporal comparisons: 2000 to 2050,
// 2050 to 2100, and 2000 to 2100, for each concentration pathway.
func Comparisons() []Comparison {
	base := Scenario{Year: 2000, Pathway: Baseline}
	var out []Comparison
	for _, p := range []Pathway{RCP45, RCP85} {
		mid := Scenario{Year: 2050, Pathway: p}
		end := Scenario{Year: 2100, Pathway: p}
		out = append(out,
			Comparison{From: base, To: mid},
			Comparison{From: mid, To: end},
			Comparison{From: base, To: end},
		)
	}
	return out
}

func (c Comparison) String() string {
	return fmt.Sprintf("%v to %v", c.From, c.To)
}

// Key returns an identifier suitable for use in artifact file names,
// for example "2000_to_2050_rcp45".
func (c Comparison) Key() string {
	return fmt.Sprintf("%d_to_%s", c.From.Year, c.To.Key())
}
