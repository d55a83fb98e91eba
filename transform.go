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

// TransferFunction converts a PM2.5 concentration field to a percent
// change in solar photovoltaic power potential:
//
//	loss% = 100 * Slope * concentration / ReferenceConcentration
//
// The transform is linear and is applied elementwise with no clipping,
// so the computed loss can mathematically exceed 100% for extreme
// concentrations. This linear-extrapolation limitation is accepted
// rather than corrected.
type TransferFunction struct {
	// Slope is the fractional change in solar potential per reference
	// concentration of PM2.5.
	Slope float64
	// ReferenceConcentration is the PM2.5 concentration (μg/m³) at which
	// the full Slope applies.
	ReferenceConcentration float64
}

// DefaultTransferFunction holds the empirical coefficients relating PM2.5
// loading to solar potential: a 48% loss at 17.71 μg/m³.
var DefaultTransferFunction = TransferFunction{
	Slope:                  -0.48,
	ReferenceConcentration: 17.71,
}

// Apply converts the concentration field c (μg/m³) to a percent change
// in solar power potential.
func (tf TransferFunction) Apply(c *GridField) *GridField {
	return c.ScaleCopy(100 * tf.Slope / tf.ReferenceConcentration)
}
