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

// Package solardim estimates the loss in solar photovoltaic power potential
// caused by wildfire-derived PM2.5, using paired fire and no-fire
// CESM climate-model concentration fields for historical and future
// emission scenarios.
package solardim

import (
	"fmt"
	"math"

	"github.com/GaryBoone/GoStats/stats"
	"github.com/ctessum/sparse"
	"github.com/gonum/floats"
)

// CoordTolerance is the maximum difference, in degrees, below which
// two coordinate values are considered equal.
const CoordTolerance = 1.0e-6

// GridField holds a 2-dimensional concentration or percent field on a
// regular latitude-longitude grid. Data is indexed [lat, lon], with both
// coordinate vectors holding cell-center values in ascending order.
// A GridField is not modified after it is created; cells with no valid
// data hold NaN.
type GridField struct {
	Lat, Lon []float64
	Data     *sparse.DenseArray
}

// NewGridField creates a GridField from the given coordinate vectors and
// data array, checking that the data shape matches the coordinates.
func NewGridField(lat, lon []float64, data *sparse.DenseArray) (*GridField, error) {
	if len(data.Shape) != 2 || data.Shape[0] != len(lat) || data.Shape[1] != len(lon) {
		return nil, fmt.Errorf("solardim: data shape %v does not match %d lat x %d lon coordinates",
			data.Shape, len(lat), len(lon))
	}
	return &GridField{Lat: lat, Lon: lon, Data: data}, nil
}

// GridMismatchError is returned when two fields that are being combined
// or compared do not lie on the same latitude-longitude grid.
type GridMismatchError struct {
	Axis   string // "lat" or "lon"
	NA, NB int    // coordinate vector lengths
}

func (e *GridMismatchError) Error() string {
	if e.NA != e.NB {
		return fmt.Sprintf("solardim: %s coordinate length mismatch: %d != %d", e.Axis, e.NA, e.NB)
	}
	return fmt.Sprintf("solardim: %s coordinate values differ by more than %g degrees", e.Axis, CoordTolerance)
}

// checkGrid returns a GridMismatchError if f and g do not share
// coordinate vectors to within CoordTolerance.
func (f *GridField) checkGrid(g *GridField) error {
	if len(f.Lat) != len(g.Lat) {
		return &GridMismatchError{Axis: "lat", NA: len(f.Lat), NB: len(g.Lat)}
	}
	if len(f.Lon) != len(g.Lon) {
		return &GridMismatchError{Axis: "lon", NA: len(f.Lon), NB: len(g.Lon)}
	}
	if !floats.EqualApprox(f.Lat, g.Lat, CoordTolerance) {
		return &GridMismatchError{Axis: "lat", NA: len(f.Lat), NB: len(g.Lat)}
	}
	if !floats.EqualApprox(f.Lon, g.Lon, CoordTolerance) {
		return &GridMismatchError{Axis: "lon", NA: len(f.Lon), NB: len(g.Lon)}
	}
	return nil
}

// Sub returns the elementwise difference f - g. Negative results are
// passed through unmodified. A GridMismatchError is returned if the two
// fields are not on the same grid.
func (f *GridField) Sub(g *GridField) (*GridField, error) {
	if err := f.checkGrid(g); err != nil {
		return nil, err
	}
	out := sparse.ZerosDense(f.Data.Shape...)
	for i, v := range f.Data.Elements {
		out.Elements[i] = v - g.Data.Elements[i]
	}
	return &GridField{Lat: f.Lat, Lon: f.Lon, Data: out}, nil
}

// ScaleCopy returns a copy of f with every element multiplied by c.
func (f *GridField) ScaleCopy(c float64) *GridField {
	return &GridField{Lat: f.Lat, Lon: f.Lon, Data: f.Data.ScaleCopy(c)}
}

// FieldStats holds summary statistics over the valid (non-NaN)
// cells of a field.
type FieldStats struct {
	Min, Max, Mean float64
	ValidCells     int
}

// Stats computes summary statistics over the valid cells of f.
// If f has no valid cells the returned statistics are all NaN.
func (f *GridField) Stats() FieldStats {
	valid := make([]float64, 0, len(f.Data.Elements))
	for _, v := range f.Data.Elements {
		if !math.IsNaN(v) {
			valid = append(valid, v)
		}
	}
	if len(valid) == 0 {
		return FieldStats{Min: math.NaN(), Max: math.NaN(), Mean: math.NaN()}
	}
	return FieldStats{
		Min:        stats.StatsMin(valid),
		Max:        stats.StatsMax(valid),
		Mean:       stats.StatsMean(valid),
		ValidCells: len(valid),
	}
}
