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
)

func TestTransferFunctionReference(t *testing.T) {
	// A field constant at the reference concentration loses exactly the
	// slope fraction of its solar potential.
	c := testField([][]float64{{17.71, 17.71}, {17.71, 17.71}})
	loss := DefaultTransferFunction.Apply(c)
	for i, v := range loss.Data.Elements {
		if math.Abs(v+48) > testTolerance {
			t.Errorf("element %d: got %g%%, want -48%%", i, v)
		}
	}
}

func TestTransferFunctionLinear(t *testing.T) {
	c := testField([][]float64{{0, 1.5}, {-2, 40}})
	loss := DefaultTransferFunction.Apply(c)
	double := DefaultTransferFunction.Apply(c.ScaleCopy(2))
	if loss.Data.Elements[0] != 0 {
		t.Errorf("transform(0): got %g, want 0", loss.Data.Elements[0])
	}
	for i, v := range double.Data.Elements {
		if math.Abs(v-2*loss.Data.Elements[i]) > testTolerance {
			t.Errorf("element %d: transform(2c)=%g, 2*transform(c)=%g",
				i, v, 2*loss.Data.Elements[i])
		}
	}
}

func TestTransferFunctionNoClipping(t *testing.T) {
	// The transform is a pure linear extrapolation; extreme inputs can
	// exceed a 100% loss and are not capped.
	c := testField([][]float64{{1000}})
	loss := DefaultTransferFunction.Apply(c)
	want := 100 * -0.48 * 1000 / 17.71
	if math.Abs(loss.Data.Elements[0]-want) > 1e-6 {
		t.Errorf("got %g, want %g (uncapped)", loss.Data.Elements[0], want)
	}
	if loss.Data.Elements[0] > -100 {
		t.Errorf("expected a loss beyond -100%% for an extreme input; got %g", loss.Data.Elements[0])
	}
}

func TestTransferFunctionOverride(t *testing.T) {
	tf := TransferFunction{Slope: -1, ReferenceConcentration: 50}
	c := testField([][]float64{{50}})
	loss := tf.Apply(c)
	if math.Abs(loss.Data.Elements[0]+100) > testTolerance {
		t.Errorf("got %g%%, want -100%%", loss.Data.Elements[0])
	}
}
