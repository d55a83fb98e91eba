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
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"
)

// Names of the NetCDF variables holding the concentration field and its
// coordinate vectors.
const (
	concVar = "pm25"
	latVar  = "lat"
	lonVar  = "lon"
)

// DataNotFoundError is returned when an input file is missing or cannot
// be read. It is fatal for the scenario it belongs to but not for the
// rest of the run.
type DataNotFoundError struct {
	Path string
	Err  error
}

func (e *DataNotFoundError) Error() string {
	return fmt.Sprintf("solardim: reading %s: %v", e.Path, e.Err)
}

// FieldSource retrieves concentration fields by scenario, so that tests
// can substitute synthetic in-memory fields for files on disk.
type FieldSource interface {
	// Field returns the concentration field for scenario s, either from
	// the standard model run or, if noFire is true, from the counterfactual
	// run excluding wildfire emissions.
	Field(s Scenario, noFire bool) (*GridField, error)
}

// FileSource reads concentration fields from NetCDF files in Dir, named
// according to Scenario.FileName.
type FileSource struct {
	Dir string
}

// Field implements FieldSource.
func (fs *FileSource) Field(s Scenario, noFire bool) (*GridField, error) {
	path := filepath.Join(fs.Dir, s.FileName(noFire))
	f, err := ReadFile(path)
	if err != nil && noFire && s.Pathway == Baseline {
		// The published year-2000 dataset spells this file "BaseLine_NoFire".
		alt := filepath.Join(fs.Dir, strings.Replace(s.FileName(noFire), "Baseline", "BaseLine", 1))
		if g, altErr := ReadFile(alt); altErr == nil {
			return g, nil
		}
	}
	return f, err
}

// ReadFile reads a concentration field and its coordinate vectors from
// the NetCDF file at path. A leading time dimension, if present, is
// averaged away, and longitudes are normalized to the range (-180, 180]
// with columns reordered to keep them ascending.
func ReadFile(path string) (*GridField, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DataNotFoundError{Path: path, Err: err}
	}
	defer f.Close()
	ff, err := cdf.Open(f)
	if err != nil {
		return nil, &DataNotFoundError{Path: path, Err: err}
	}
	lat, err := readCoord(ff, latVar)
	if err != nil {
		return nil, &DataNotFoundError{Path: path, Err: err}
	}
	lon, err := readCoord(ff, lonVar)
	if err != nil {
		return nil, &DataNotFoundError{Path: path, Err: err}
	}
	data, err := readConcentration(ff, concVar, len(lat), len(lon))
	if err != nil {
		return nil, &DataNotFoundError{Path: path, Err: err}
	}
	field := &GridField{Lat: lat, Lon: lon, Data: data}
	return normalizeLon(field), nil
}

// readCoord reads a 1-dimensional coordinate variable from ff.
func readCoord(ff *cdf.File, name string) ([]float64, error) {
	dims := ff.Header.Lengths(name)
	if len(dims) == 0 {
		return nil, fmt.Errorf("variable %s not in file", name)
	}
	r := ff.Reader(name, nil, nil)
	buf := r.Zero(-1)
	if _, err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("reading variable %s: %v", name, err)
	}
	return toFloat64(buf)
}

// readConcentration reads the concentration variable from ff, averaging
// over a leading time dimension if one is present.
func readConcentration(ff *cdf.File, name string, nlat, nlon int) (*sparse.DenseArray, error) {
	dims := ff.Header.Lengths(name)
	if len(dims) == 0 {
		return nil, fmt.Errorf("variable %s not in file", name)
	}
	r := ff.Reader(name, nil, nil)
	buf := r.Zero(-1)
	if _, err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("reading variable %s: %v", name, err)
	}
	vals, err := toFloat64(buf)
	if err != nil {
		return nil, fmt.Errorf("reading variable %s: %v", name, err)
	}
	names := ff.Header.Dimensions(name)
	data := sparse.ZerosDense(nlat, nlon)
	switch {
	case len(dims) == 2:
		if dims[0] != nlat || dims[1] != nlon {
			return nil, fmt.Errorf("variable %s shape %v does not match %d lat x %d lon", name, dims, nlat, nlon)
		}
		copy(data.Elements, vals)
	case len(dims) == 3 && names[0] == "time":
		if dims[1] != nlat || dims[2] != nlon {
			return nil, fmt.Errorf("variable %s shape %v does not match %d lat x %d lon", name, dims, nlat, nlon)
		}
		nt := dims[0]
		if nt == 0 { // record dimension; infer the count from the data.
			nt = len(vals) / (nlat * nlon)
		}
		if nt == 0 {
			return nil, fmt.Errorf("variable %s has no time records", name)
		}
		for t := 0; t < nt; t++ {
			for i, v := range vals[t*nlat*nlon : (t+1)*nlat*nlon] {
				data.Elements[i] += v / float64(nt)
			}
		}
	default:
		return nil, fmt.Errorf("variable %s has unsupported dimensions %v", name, names)
	}
	return data, nil
}

// toFloat64 converts a buffer read from a NetCDF file to float64 values.
func toFloat64(buf interface{}) ([]float64, error) {
	switch b := buf.(type) {
	case []float64:
		return b, nil
	case []float32:
		out := make([]float64, len(b))
		for i, v := range b {
			out[i] = float64(v)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported data type %T", buf)
	}
}

// normalizeLon shifts longitudes greater than 180 degrees down by 360
// degrees and reorders the columns of f so the longitude vector is
// ascending. Fields from model runs on a 0-360 grid and a -180-180 grid
// then share one convention and can be differenced directly.
func normalizeLon(f *GridField) *GridField {
	adjusted := make([]float64, len(f.Lon))
	shifted := false
	for i, lon := range f.Lon {
		if lon > 180 {
			adjusted[i] = lon - 360
			shifted = true
		} else {
			adjusted[i] = lon
		}
	}
	if !shifted {
		return f
	}
	order := make([]int, len(adjusted))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return adjusted[order[a]] < adjusted[order[b]] })

	lon := make([]float64, len(adjusted))
	data := sparse.ZerosDense(f.Data.Shape...)
	nlon := len(adjusted)
	for inew, iold := range order {
		lon[inew] = adjusted[iold]
		for j := range f.Lat {
			// Assign directly; DenseArray.Set skips zero values.
			data.Elements[j*nlon+inew] = f.Data.Get(j, iold)
		}
	}
	return &GridField{Lat: f.Lat, Lon: lon, Data: data}
}
