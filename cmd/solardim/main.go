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

// Command solardim computes and visualizes the effect of wildfire PM2.5
// on solar photovoltaic power potential.
package main

import (
	"fmt"
	"os"

	"github.com/spatialmodel/solardim/solardimutil"
)

func main() {
	if err := solardimutil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
