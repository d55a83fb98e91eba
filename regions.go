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
	"math"

	"github.com/ctessum/sparse"
)

// Region is a latitude-longitude bounding box used for regional
// aggregation. Longitudes follow the (-180, 180] convention.
type Region struct {
	Name           string
	LatMin, LatMax float64
	LonMin, LonMax float64
}

// Regions returns the continental regions reported on by this model.
func Regions() []Region {
	return []Region{
		{Name: "North America", LatMin: 15, LatMax: 70, LonMin: -170, LonMax: -50},
		{Name: "South America", LatMin: -55, LatMax: 15, LonMin: -80, LonMax: -35},
		{Name: "Europe", LatMin: 35, LatMax: 70, LonMin: -10, LonMax: 40},
		{Name: "Africa", LatMin: -35, LatMax: 35, LonMin: -20, LonMax: 55},
		{Name: "Asia", LatMin: 0, LatMax: 55, LonMin: 60, LonMax: 150},
		{Name: "Australia", LatMin: -45, LatMax: -10, LonMin: 110, LonMax: 155},
	}
}

// Weights returns cosine-of-latitude area weights for the cells of f that
// fall inside the region, and zero elsewhere. The mask is built by only
// ever setting in-region cells; DenseArray.Set silently skips zero
// values, so it cannot be used to clear cells.
func (r Region) Weights(f *GridField) *sparse.DenseArray {
	w := sparse.ZerosDense(f.Data.Shape...)
	nlon := len(f.Lon)
	for j, lat := range f.Lat {
		if lat < r.LatMin || lat > r.LatMax {
			continue
		}
		wt := math.Cos(lat * math.Pi / 180)
		for i, lon := range f.Lon {
			if lon < r.LonMin || lon > r.LonMax {
				continue
			}
			w.Elements[j*nlon+i] = wt
		}
	}
	return w
}
