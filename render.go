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
	"image"
	imagedraw "image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/ctessum/geom/carto"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// WriteArtifacts renders all maps, regional bar charts, and the regional
// summary workbook for the given results, writing them under dir. File
// names are derived deterministically from scenario and comparison keys.
// Data flows one way: nothing here feeds back into the pipeline.
func WriteArtifacts(r *Results, dir string) error {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("solardim: creating output directory: %v", err)
	}
	for _, s := range presentScenarios(r.Contributions) {
		if err := writeMap(r.Contributions[s], carto.LinCutoff, "Wildfire PM2.5 (μg/m³)",
			filepath.Join(dir, fmt.Sprintf("wildfire_pm25_%s.png", s.Key()))); err != nil {
			return err
		}
	}
	for _, s := range presentScenarios(r.Losses) {
		if err := writeMap(r.Losses[s], carto.Linear, "Solar potential change (%)",
			filepath.Join(dir, fmt.Sprintf("solar_potential_loss_%s.png", s.Key()))); err != nil {
			return err
		}
	}
	for _, c := range presentComparisons(r.ContributionChanges) {
		if err := writeMap(r.ContributionChanges[c], carto.Linear, "Wildfire PM2.5 change (μg/m³)",
			filepath.Join(dir, fmt.Sprintf("wildfire_pm25_change_%s.png", c.Key()))); err != nil {
			return err
		}
	}
	for _, c := range presentComparisons(r.LossChanges) {
		if err := writeMap(r.LossChanges[c], carto.Linear, "Solar potential change difference (%)",
			filepath.Join(dir, fmt.Sprintf("solar_potential_loss_change_%s.png", c.Key()))); err != nil {
			return err
		}
	}

	// Side-by-side scenario panels on a shared color scale.
	var contributions, losses []*GridField
	for _, s := range presentScenarios(r.Contributions) {
		contributions = append(contributions, r.Contributions[s])
		losses = append(losses, r.Losses[s])
	}
	if len(contributions) > 0 {
		if err := writeMapPanel(contributions, carto.LinCutoff, "Wildfire PM2.5 (μg/m³)",
			filepath.Join(dir, "wildfire_pm25_scenario_comparison.png")); err != nil {
			return err
		}
		if err := writeMapPanel(losses, carto.Linear, "Solar potential change (%)",
			filepath.Join(dir, "solar_potential_loss_scenario_comparison.png")); err != nil {
			return err
		}
	}

	scenarioKeys, scenarioLabels := make([]string, 0), make([]string, 0)
	for _, s := range presentScenarios(r.Contributions) {
		scenarioKeys = append(scenarioKeys, s.Key())
		scenarioLabels = append(scenarioLabels, s.String())
	}
	comparisonKeys, comparisonLabels := make([]string, 0), make([]string, 0)
	for _, c := range presentComparisons(r.LossChanges) {
		comparisonKeys = append(comparisonKeys, c.Key())
		comparisonLabels = append(comparisonLabels, c.String())
	}
	if err := writeRegionalChart(r.RegionalContributions, scenarioKeys, scenarioLabels,
		"Regional wildfire PM2.5 across scenarios", "PM2.5 (μg/m³)",
		filepath.Join(dir, "regional_wildfire_pm25.png")); err != nil {
		return err
	}
	if err := writeRegionalChart(r.RegionalLosses, scenarioKeys, scenarioLabels,
		"Regional solar potential loss due to wildfire PM2.5", "Solar potential change (%)",
		filepath.Join(dir, "regional_solar_potential_loss.png")); err != nil {
		return err
	}
	if err := writeRegionalChart(r.RegionalLossChanges, comparisonKeys, comparisonLabels,
		"Regional changes in solar potential loss over time", "Solar potential change difference (%)",
		filepath.Join(dir, "regional_solar_potential_loss_changes.png")); err != nil {
		return err
	}
	return writeSummaryWorkbook(r, filepath.Join(dir, "regional_summary.xlsx"))
}

// presentScenarios returns the scenarios with entries in m, in the
// canonical order.
func presentScenarios(m map[Scenario]*GridField) []Scenario {
	var out []Scenario
	for _, s := range Scenarios() {
		if _, ok := m[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

// presentComparisons returns the comparisons with entries in m, in the
// canonical order.
func presentComparisons(m map[Comparison]*GridField) []Comparison {
	var out []Comparison
	for _, c := range Comparisons() {
		if _, ok := m[c]; ok {
			out = append(out, c)
		}
	}
	return out
}

// cellSize returns the square cell size, in degrees, used to rasterize f.
// A single-column field gets a nominal one-degree cell.
func cellSize(f *GridField) float64 {
	nx := len(f.Lon)
	if nx < 2 {
		return 1
	}
	return (f.Lon[nx-1] - f.Lon[0]) / float64(nx-1)
}

// rasterValues splits f into the raster buffer, with NaN cells drawn as
// the zero color, and the valid values used for colormap scaling.
func rasterValues(f *GridField) (vals, valid []float64) {
	vals = make([]float64, len(f.Data.Elements))
	valid = make([]float64, 0, len(vals))
	for i, v := range f.Data.Elements {
		if math.IsNaN(v) {
			continue
		}
		vals[i] = v
		valid = append(valid, v)
	}
	return vals, valid
}

// rasterize paints f as a colormapped raster. The raster canvas paints
// one pixel per grid cell and sizes its image from the cell aspect
// ratio, so it is drawn with square cells to keep every row on the
// image. Row 0 of the data is the southernmost latitude, which belongs
// at the bottom.
func rasterize(f *GridField, vals []float64, cmap *carto.ColorMap) *image.RGBA {
	nx, ny := len(f.Lon), len(f.Lat)
	dx := cellSize(f)
	m := carto.NewCanvasFromRaster(f.Lat[0]-dx/2, f.Lon[0]-dx/2, dx, dx, ny, nx,
		vals, cmap, true, false)
	return m.I
}

// legendImage draws the colormap legend into a horizontal strip. The
// strip is widened to a legible minimum when the map above it is only a
// few cells across.
func legendImage(cmap *carto.ColorMap, label string, width int) (*image.RGBA, error) {
	if width < 100 {
		width = 100
	}
	legend := image.NewRGBA(image.Rect(0, 0, width, width*3/20))
	lc := vgimg.NewWith(vgimg.UseImage(legend))
	dc := draw.New(lc)
	if err := cmap.Legend(&dc, label); err != nil {
		return nil, err
	}
	return legend, nil
}

// composePNG stacks a row of map panels above a legend strip and writes
// the result as a PNG file to path.
func composePNG(panels []*image.RGBA, legend *image.RGBA, path string) error {
	rowW, rowH := 0, 0
	for _, p := range panels {
		rowW += p.Bounds().Dx()
		if h := p.Bounds().Dy(); h > rowH {
			rowH = h
		}
	}
	outW := rowW
	if w := legend.Bounds().Dx(); w > outW {
		outW = w
	}
	out := image.NewRGBA(image.Rect(0, 0, outW, rowH+legend.Bounds().Dy()))
	x := 0
	for _, p := range panels {
		imagedraw.Draw(out, image.Rect(x, 0, x+p.Bounds().Dx(), p.Bounds().Dy()),
			p, image.ZP, imagedraw.Src)
		x += p.Bounds().Dx()
	}
	imagedraw.Draw(out, image.Rect(0, rowH, legend.Bounds().Dx(), out.Bounds().Dy()),
		legend, image.ZP, imagedraw.Src)

	w, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("solardim: creating %s: %v", path, err)
	}
	defer w.Close()
	return png.Encode(w, out)
}

// writeMap renders f as a colormapped raster image with a legend beneath
// and writes it as a PNG file to path.
func writeMap(f *GridField, typ carto.ColorMapType, label, path string) error {
	cmap := carto.NewColorMap(typ)
	vals, valid := rasterValues(f)
	if len(valid) > 0 { // AddArray cannot take an empty slice
		cmap.AddArray(valid)
	}
	cmap.Set()

	legend, err := legendImage(cmap, label, len(f.Lon))
	if err != nil {
		return fmt.Errorf("solardim: rendering legend for %s: %v", path, err)
	}
	return composePNG([]*image.RGBA{rasterize(f, vals, cmap)}, legend, path)
}

// writeMapPanel renders the given fields side by side on one shared
// color scale with a single legend beneath, so values are directly
// comparable across panels.
func writeMapPanel(fields []*GridField, typ carto.ColorMapType, label, path string) error {
	cmap := carto.NewColorMap(typ)
	vals := make([][]float64, len(fields))
	for k, f := range fields {
		var valid []float64
		vals[k], valid = rasterValues(f)
		if len(valid) > 0 {
			cmap.AddArray(valid)
		}
	}
	cmap.Set()

	panels := make([]*image.RGBA, len(fields))
	width := 0
	for k, f := range fields {
		panels[k] = rasterize(f, vals[k], cmap)
		width += panels[k].Bounds().Dx()
	}
	legend, err := legendImage(cmap, label, width)
	if err != nil {
		return fmt.Errorf("solardim: rendering legend for %s: %v", path, err)
	}
	return composePNG(panels, legend, path)
}

// writeRegionalChart writes a grouped bar chart of regional means, one
// bar group per region and one bar per key, to path. Undefined summaries
// are drawn as zero-height bars; the summary workbook spells them out.
func writeRegionalChart(data map[string]map[string]RegionalSummary, keys, labels []string, title, ylabel, path string) error {
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = title
	p.Y.Label.Text = ylabel

	regions := Regions()
	barWidth := vg.Points(9)
	for i, key := range keys {
		vals := make(plotter.Values, len(regions))
		for j, region := range regions {
			if s, ok := data[region.Name][key]; ok && s.Defined() {
				vals[j] = s.Mean
			}
		}
		b, err := plotter.NewBarChart(vals, barWidth)
		if err != nil {
			return err
		}
		b.Color = plotutil.Color(i)
		b.Offset = vg.Length(i)*barWidth - vg.Length(len(keys))*barWidth/2
		p.Add(b)
		p.Legend.Add(labels[i], b)
	}
	p.Legend.Top = true
	names := make([]string, len(regions))
	for j, region := range regions {
		names[j] = region.Name
	}
	p.NominalX(names...)
	return p.Save(9*vg.Inch, 5*vg.Inch, path)
}
