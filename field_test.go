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
	"testing"

	"github.com/ctessum/sparse"
)

const testTolerance = 1e-10

// testField builds a field on a synthetic grid with 10-degree spacing,
// filling it row by row from vals.
func testField(vals [][]float64) *GridField {
	lat := make([]float64, len(vals))
	for j := range lat {
		lat[j] = -45 + 10*float64(j)
	}
	lon := make([]float64, len(vals[0]))
	for i := range lon {
		lon[i] = -90 + 10*float64(i)
	}
	data := sparse.ZerosDense(len(lat), len(lon))
	for j, row := range vals {
		for i, v := range row {
			data.Set(v, j, i)
		}
	}
	return &GridField{Lat: lat, Lon: lon, Data: data}
}

func TestSub(t *testing.T) {
	a := testField([][]float64{{1, 2, 3}, {4, 5, 6}})
	b := testField([][]float64{{0.5, 2, 4}, {0, 10, 6}})

	d, err := a.Sub(b)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0.5, 0, -1, 4, -5, 0}
	for i, v := range d.Data.Elements {
		if math.Abs(v-want[i]) > testTolerance {
			t.Errorf("element %d: got %g, want %g", i, v, want[i])
		}
	}

	// Negative results pass through unclamped, and the difference is
	// antisymmetric.
	d2, err := b.Sub(a)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range d2.Data.Elements {
		if math.Abs(v+d.Data.Elements[i]) > testTolerance {
			t.Errorf("element %d: difference is not antisymmetric: %g vs %g",
				i, v, d.Data.Elements[i])
		}
	}
}

func TestSubGridMismatch(t *testing.T) {
	a := testField([][]float64{{1, 2, 3}, {4, 5, 6}})

	// A grid shifted by half a degree must be rejected.
	shifted := testField([][]float64{{1, 2, 3}, {4, 5, 6}})
	shiftedLat := make([]float64, len(shifted.Lat))
	for i, v := range shifted.Lat {
		shiftedLat[i] = v + 0.5
	}
	shifted.Lat = shiftedLat
	if _, err := a.Sub(shifted); err == nil {
		t.Error("expected a GridMismatchError for a half-degree latitude shift")
	} else if _, ok := err.(*GridMismatchError); !ok {
		t.Errorf("expected a GridMismatchError; got %T: %v", err, err)
	}

	// A mismatch in coordinate length must also be rejected.
	smaller := testField([][]float64{{1, 2, 3}})
	if _, err := a.Sub(smaller); err == nil {
		t.Error("expected a GridMismatchError for differing grid sizes")
	}

	// Numerical noise below the tolerance is accepted.
	noisy := testField([][]float64{{1, 2, 3}, {4, 5, 6}})
	noisyLat := make([]float64, len(noisy.Lat))
	for i, v := range noisy.Lat {
		noisyLat[i] = v + 1e-8
	}
	noisy.Lat = noisyLat
	if _, err := a.Sub(noisy); err != nil {
		t.Errorf("coordinates within tolerance should be accepted: %v", err)
	}
}

func TestNewGridFieldShape(t *testing.T) {
	data := sparse.ZerosDense(2, 3)
	if _, err := NewGridField([]float64{0, 10}, []float64{0, 10, 20}, data); err != nil {
		t.Errorf("matching shape rejected: %v", err)
	}
	if _, err := NewGridField([]float64{0, 10, 20}, []float64{0, 10, 20}, data); err == nil {
		t.Error("mismatched shape accepted")
	}
}

func TestStats(t *testing.T) {
	f := testField([][]float64{{1, 2, math.NaN()}, {3, 4, math.NaN()}})
	st := f.Stats()
	if st.ValidCells != 4 {
		t.Errorf("valid cells: got %d, want 4", st.ValidCells)
	}
	if math.Abs(st.Min-1) > testTolerance || math.Abs(st.Max-4) > testTolerance {
		t.Errorf("min/max: got %g/%g, want 1/4", st.Min, st.Max)
	}
	if math.Abs(st.Mean-2.5) > testTolerance {
		t.Errorf("mean: got %g, want 2.5", st.Mean)
	}

	empty := testField([][]float64{{math.NaN()}})
	st = empty.Stats()
	if st.ValidCells != 0 || !math.IsNaN(st.Mean) {
		t.Errorf("all-NaN field should have zero valid cells and NaN mean; got %+v", st)
	}
}
