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

	"github.com/tealeg/xlsx"
)

// noDataMarker is written in place of a regional mean whose region has
// no valid cells.
const noDataMarker = "no data"

// writeSummaryWorkbook writes the regional summaries to a spreadsheet
// with one sheet per quantity: regions down the rows, scenarios or
// comparisons across the columns.
func writeSummaryWorkbook(r *Results, path string) error {
	scenarioKeys := make([]string, 0)
	for _, s := range presentScenarios(r.Contributions) {
		scenarioKeys = append(scenarioKeys, s.Key())
	}
	comparisonKeys := make([]string, 0)
	for _, c := range presentComparisons(r.LossChanges) {
		comparisonKeys = append(comparisonKeys, c.Key())
	}

	wb := xlsx.NewFile()
	sheets := []struct {
		name string
		data map[string]map[string]RegionalSummary
		keys []string
	}{
		{"Wildfire PM2.5", r.RegionalContributions, scenarioKeys},
		{"Solar potential loss", r.RegionalLosses, scenarioKeys},
		{"Loss changes over time", r.RegionalLossChanges, comparisonKeys},
	}
	for _, sh := range sheets {
		sheet, err := wb.AddSheet(sh.name)
		if err != nil {
			return fmt.Errorf("solardim: writing summary workbook: %v", err)
		}
		header := sheet.AddRow()
		header.AddCell().Value = "Region"
		for _, k := range sh.keys {
			header.AddCell().Value = k
		}
		for _, region := range Regions() {
			row := sheet.AddRow()
			row.AddCell().Value = region.Name
			for _, k := range sh.keys {
				cell := row.AddCell()
				if s, ok := sh.data[region.Name][k]; ok && s.Defined() {
					cell.SetFloat(s.Mean)
				} else {
					cell.Value = noDataMarker
				}
			}
		}
	}
	if err := wb.Save(path); err != nil {
		return fmt.Errorf("solardim: writing summary workbook: %v", err)
	}
	return nil
}
