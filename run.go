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
	"errors"

	"github.com/sirupsen/logrus"
)

// Version gives the version number of this version of SolarDim.
const Version = "0.1.0"

// ErrNoData is returned by Run when no scenario produced usable output.
var ErrNoData = errors.New("solardim: no scenario produced usable output")

// Config holds pipeline configuration. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	// DataDir is the directory searched for input NetCDF files.
	DataDir string
	// OutputDir is the directory rendered artifacts are written to.
	OutputDir string
	// Transfer converts PM2.5 concentration to percent solar potential
	// change.
	Transfer TransferFunction
	// Source supplies concentration fields. If nil, a FileSource reading
	// from DataDir is used.
	Source FieldSource
	// Logger receives progress and per-field summary statistics.
	// If nil, the logrus standard logger is used.
	Logger *logrus.Logger
}

// DefaultConfig returns a Config with the documented defaults.
func DefaultConfig() *Config {
	return &Config{
		DataDir:   "data",
		OutputDir: "figures",
		Transfer:  DefaultTransferFunction,
	}
}

// Results holds everything one pass of the pipeline computes. All fields
// are immutable once Run returns.
type Results struct {
	// Contributions maps each scenario to its wildfire-attributable PM2.5
	// concentration field (fire minus no-fire, μg/m³).
	Contributions map[Scenario]*GridField
	// Losses maps each scenario to its percent solar potential change field.
	Losses map[Scenario]*GridField

	// ContributionChanges and LossChanges hold temporal deltas between
	// pairs of scenarios.
	ContributionChanges map[Comparison]*GridField
	LossChanges         map[Comparison]*GridField

	// RegionalContributions and RegionalLosses map region name and then
	// scenario key to an area-weighted regional mean. RegionalLossChanges
	// is keyed by region name and then comparison key.
	RegionalContributions map[string]map[string]RegionalSummary
	RegionalLosses        map[string]map[string]RegionalSummary
	RegionalLossChanges   map[string]map[string]RegionalSummary

	// Skipped maps each failed scenario to the error that excluded it.
	Skipped map[Scenario]error
}

// Load retrieves the fire and no-fire concentration fields for scenario s
// from src and returns their elementwise difference, the
// wildfire-attributable concentration. Negative differences, which can
// arise from model noise, are passed through unmodified.
func Load(src FieldSource, s Scenario) (*GridField, error) {
	fire, err := src.Field(s, false)
	if err != nil {
		return nil, err
	}
	noFire, err := src.Field(s, true)
	if err != nil {
		return nil, err
	}
	return fire.Sub(noFire)
}

// Run executes one pass of the pipeline: for every scenario in the closed
// set, load the paired fields, difference them, apply the transfer
// function, and aggregate regionally; then compute the temporal deltas
// between scenario pairs. A failed scenario is recorded in
// Results.Skipped and does not abort the others; ErrNoData is returned
// only if every scenario failed.
func Run(cfg *Config) (*Results, error) {
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	src := cfg.Source
	if src == nil {
		src = &FileSource{Dir: cfg.DataDir}
	}

	r := &Results{
		Contributions:         make(map[Scenario]*GridField),
		Losses:                make(map[Scenario]*GridField),
		ContributionChanges:   make(map[Comparison]*GridField),
		LossChanges:           make(map[Comparison]*GridField),
		RegionalContributions: make(map[string]map[string]RegionalSummary),
		RegionalLosses:        make(map[string]map[string]RegionalSummary),
		RegionalLossChanges:   make(map[string]map[string]RegionalSummary),
		Skipped:               make(map[Scenario]error),
	}

	for _, s := range Scenarios() {
		wf, err := Load(src, s)
		if err != nil {
			log.Warnf("skipping scenario %v: %v", s, err)
			r.Skipped[s] = err
			continue
		}
		loss := cfg.Transfer.Apply(wf)
		r.Contributions[s] = wf
		r.Losses[s] = loss

		st := wf.Stats()
		log.Infof("Wildfire PM2.5 (%v) - Min: %.2f, Max: %.2f, Mean: %.2f μg/m³",
			s, st.Min, st.Max, st.Mean)
		st = loss.Stats()
		log.Infof("Solar potential change (%v) - Min: %.2f%%, Max: %.2f%%, Mean: %.2f%%",
			s, st.Min, st.Max, st.Mean)
	}
	if len(r.Contributions) == 0 {
		return nil, ErrNoData
	}

	for _, c := range Comparisons() {
		from, okFrom := r.Contributions[c.From]
		to, okTo := r.Contributions[c.To]
		if !okFrom || !okTo {
			continue
		}
		d, err := to.Sub(from)
		if err != nil {
			log.Warnf("skipping comparison %v: %v", c, err)
			continue
		}
		r.ContributionChanges[c] = d
		// The transform is linear, so the loss delta is the transformed
		// concentration delta.
		r.LossChanges[c] = cfg.Transfer.Apply(d)
	}

	for _, region := range Regions() {
		rc := make(map[string]RegionalSummary)
		rl := make(map[string]RegionalSummary)
		for s, f := range r.Contributions {
			rc[s.Key()] = region.Summarize(f)
		}
		for s, f := range r.Losses {
			rl[s.Key()] = region.Summarize(f)
		}
		rd := make(map[string]RegionalSummary)
		for c, f := range r.LossChanges {
			rd[c.Key()] = region.Summarize(f)
		}
		r.RegionalContributions[region.Name] = rc
		r.RegionalLosses[region.Name] = rl
		r.RegionalLossChanges[region.Name] = rd
	}
	return r, nil
}
