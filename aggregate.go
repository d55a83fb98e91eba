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

// WeightedMean computes the weight-normalized spatial mean
// sum(value*weight)/sum(weight) over the valid (non-NaN) cells of f.
// A nil weight array means uniform weighting, giving the arithmetic mean.
// Cells with NaN values or NaN or zero total weight contribute nothing;
// the weights are effectively renormalized over the valid cells.
// ok is false when no valid cell contributes, which is the explicit
// "no data" result rather than an error.
func WeightedMean(f *GridField, w *sparse.DenseArray) (mean float64, ok bool) {
	var sum, wsum float64
	n := 0
	for i, v := range f.Data.Elements {
		if math.IsNaN(v) {
			continue
		}
		wt := 1.0
		if w != nil {
			wt = w.Elements[i]
			if math.IsNaN(wt) || wt == 0 {
				continue
			}
		}
		sum += v * wt
		wsum += wt
		n++
	}
	if n == 0 || wsum == 0 {
		return math.NaN(), false
	}
	return sum / wsum, true
}

// AreaWeights returns per-cell weights proportional to grid cell area on
// a regular latitude-longitude grid, which varies as the cosine of
// latitude.
func AreaWeights(f *GridField) *sparse.DenseArray {
	w := sparse.ZerosDense(f.Data.Shape...)
	nlon := len(f.Lon)
	for j, lat := range f.Lat {
		wt := math.Cos(lat * math.Pi / 180)
		for i := range f.Lon {
			// Assign directly; DenseArray.Set skips zero values.
			w.Elements[j*nlon+i] = wt
		}
	}
	return w
}

// RegionalSummary is the area-weighted mean of a field over one region.
// A summary with zero ValidCells is the defined "no data" result for a
// region with no valid cells; Mean is NaN in that case.
type RegionalSummary struct {
	Region     string
	Mean       float64
	ValidCells int
}

// Defined reports whether the summary is backed by at least one valid cell.
func (s RegionalSummary) Defined() bool { return s.ValidCells > 0 }

// Summarize computes the area-weighted mean of f over region r.
func (r Region) Summarize(f *GridField) RegionalSummary {
	w := r.Weights(f)
	mean, ok := WeightedMean(f, w)
	s := RegionalSummary{Region: r.Name, Mean: mean}
	if !ok {
		return s
	}
	for i, v := range f.Data.Elements {
		if !math.IsNaN(v) && w.Elements[i] != 0 {
			s.ValidCells++
		}
	}
	return s
}
