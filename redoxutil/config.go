/*
Copyright © 2026 the redoxthermo authors.
This file is part of redoxthermo.

redoxthermo is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

redoxthermo is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with redoxthermo.  If not, see <http://www.gnu.org/licenses/>.
*/

package redoxutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spatialmodel/redoxthermo"
	"github.com/spatialmodel/redoxthermo/endmember"
	"github.com/spatialmodel/redoxthermo/energy"
	"github.com/spatialmodel/redoxthermo/mpdb"
	"github.com/spatialmodel/redoxthermo/science/defect"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/floats"
)

// ModelFromConfig returns the enthalpy and entropy model specified by the
// Model.* configuration variables.
func ModelFromConfig(ctx context.Context, cfg *viper.Viper) (redoxthermo.Model, error) {
	comp := cfg.GetString("Composition")
	switch t := strings.ToLower(cfg.GetString("Model.Type")); t {
	case "fit":
		path := os.ExpandEnv(cfg.GetString("Model.Dataset"))
		if path == "" {
			return nil, fmt.Errorf("redoxthermo: Model.Dataset must be specified for fitted models")
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("redoxthermo: opening dataset: %v", err)
		}
		defer f.Close()
		d, err := redoxthermo.ReadDataset(f)
		if err != nil {
			return nil, err
		}
		return d.Fit(comp)
	case "two-endmember":
		return twoEndmember(cfg, cfg.GetFloat64("Model.DHMin"), cfg.GetFloat64("Model.DHMax"), cfg.GetFloat64("Model.Active"))
	case "endmember":
		db, err := DatabaseFromConfig(cfg)
		if err != nil {
			return nil, err
		}
		r, err := endmember.Reconcile(ctx, db, comp)
		if err != nil {
			return nil, err
		}
		return twoEndmember(cfg, r.DHMin, r.DHMax, r.Active)
	default:
		return nil, fmt.Errorf("redoxthermo: invalid Model.Type %q", t)
	}
}

func twoEndmember(cfg *viper.Viper, dhMin, dhMax, active float64) (redoxthermo.Model, error) {
	if !(dhMin > 0) || !(dhMax > 0) {
		return nil, fmt.Errorf("redoxthermo: endmember enthalpies must be positive, not (%g, %g)", dhMin, dhMax)
	}
	if active < 0 || active > 1 {
		return nil, fmt.Errorf("redoxthermo: active fraction %g is not between 0 and 1", active)
	}
	return defect.TwoEndmember{
		DHMin:               dhMin,
		DHMax:               dhMax,
		Active:              active,
		DebyePerovskite:     cfg.GetFloat64("Model.DebyePerovskite"),
		DebyeBrownmillerite: cfg.GetFloat64("Model.DebyeBrownmillerite"),
	}, nil
}

// bracketFromConfig returns the fallback interval of non-stoichiometries.
func bracketFromConfig(cfg *viper.Viper) ([2]float64, error) {
	var b [2]float64
	s, err := getFloat64Slice("Bracket", cfg)
	if err != nil {
		return b, err
	}
	if len(s) != 2 || !(s[0] < s[1]) {
		return b, fmt.Errorf("redoxthermo: Bracket must be two increasing values, not %v", s)
	}
	copy(b[:], s)
	return b, nil
}

// sweepFromConfig returns Sweep.N evenly spaced values between Sweep.Min
// and Sweep.Max.
func sweepFromConfig(cfg *viper.Viper) ([]float64, error) {
	n := cfg.GetInt("Sweep.N")
	lo, hi := cfg.GetFloat64("Sweep.Min"), cfg.GetFloat64("Sweep.Max")
	if n < 2 || !(lo < hi) {
		return nil, fmt.Errorf("redoxthermo: invalid sweep of %d points from %g to %g", n, lo, hi)
	}
	return floats.Span(make([]float64, n), lo, hi), nil
}

// DatabaseFromConfig returns the materials database specified by the
// Database.* configuration variables. Requests are cached.
func DatabaseFromConfig(cfg *viper.Viper) (mpdb.Database, error) {
	var db mpdb.Database
	if path := os.ExpandEnv(cfg.GetString("Database.File")); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("redoxthermo: opening database: %v", err)
		}
		defer f.Close()
		s, err := mpdb.ReadStatic(f)
		if err != nil {
			return nil, err
		}
		db = s
	} else if u := cfg.GetString("Database.URL"); u != "" {
		db = &mpdb.Client{BaseURL: u, APIKey: cfg.GetString("Database.APIKey")}
	} else {
		return nil, fmt.Errorf("redoxthermo: either Database.File or Database.URL must be specified")
	}
	return mpdb.NewCached(db, cfg.GetInt("Database.CacheSize"), os.ExpandEnv(cfg.GetString("Database.CacheDir"))), nil
}

// EnergyOptionsFromConfig returns the aggregation options specified by the
// Energy.* configuration variables.
func EnergyOptionsFromConfig(cfg *viper.Viper) (energy.Options, error) {
	p, err := energy.ParseProcess(cfg.GetString("Energy.Process"))
	if err != nil {
		return energy.Options{}, err
	}
	o := energy.DefaultOptions(p)
	if o.HeatingValue, err = energy.ParseHeatingValue(cfg.GetString("Energy.HeatingValue")); err != nil {
		return o, err
	}
	o.PumpEnergy = cfg.GetFloat64("Energy.PumpEnergy")
	o.WaterFeedTemp = cfg.GetFloat64("Energy.WaterFeedTemp")
	o.HeatRecovery = cfg.GetFloat64("Energy.HeatRecovery")
	o.SteamHeatRecovery = cfg.GetFloat64("Energy.SteamHeatRecovery")
	o.ProductRatio = cfg.GetFloat64("Energy.ProductRatio")
	o.ExcludeUnstable = cfg.GetBool("Energy.ExcludeUnstable")
	o.Celsius = cfg.GetBool("Energy.Celsius")
	o.ExperimentalData = cfg.GetBool("Energy.ExperimentalData")

	metrics, err := GetStringMapString("Energy.Metrics", cfg)
	if err != nil {
		return o, err
	}
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		o.Metrics = append(o.Metrics, energy.Metric{
			Name:       name,
			Expression: os.ExpandEnv(metrics[name]),
			Ascending:  true,
		})
	}
	return o, nil
}

// GetStringMapString returns a map[string]string from a viper configuration,
// accounting for the fact that it might be a json object if it was set
// from a command line argument.
func GetStringMapString(varName string, cfg *viper.Viper) (map[string]string, error) {
	i := cfg.Get(varName)
	switch v := i.(type) {
	case nil:
		return nil, nil
	case map[string]string:
		return v, nil
	case map[string]interface{}:
		return cast.ToStringMapString(v), nil
	case string:
		o := make(map[string]string)
		if strings.TrimSpace(v) == "" {
			return o, nil
		}
		d := json.NewDecoder(bytes.NewBufferString(v))
		if err := d.Decode(&o); err != nil {
			return nil, fmt.Errorf("redoxthermo: parsing %s: %v", varName, err)
		}
		return o, nil
	default:
		return nil, fmt.Errorf("redoxthermo: invalid type for %s: %#v", varName, i)
	}
}

// getFloat64Slice returns a []float64 from a viper configuration, which
// may hold it as a slice or, if it was set from a command line argument, as
// a string such as "[0.01,0.49]".
func getFloat64Slice(varName string, cfg *viper.Viper) ([]float64, error) {
	i := cfg.Get(varName)
	switch v := i.(type) {
	case []float64:
		return v, nil
	case string:
		parts := strings.Split(strings.Trim(v, "[]"), ",")
		o := make([]float64, len(parts))
		for j, p := range parts {
			f, err := cast.ToFloat64E(strings.TrimSpace(p))
			if err != nil {
				return nil, fmt.Errorf("redoxthermo: parsing %s: %v", varName, err)
			}
			o[j] = f
		}
		return o, nil
	}
	vals, err := cast.ToSliceE(i)
	if err != nil {
		return nil, fmt.Errorf("redoxthermo: parsing %s: %v", varName, err)
	}
	o := make([]float64, len(vals))
	for j, v := range vals {
		if o[j], err = cast.ToFloat64E(v); err != nil {
			return nil, fmt.Errorf("redoxthermo: parsing %s: %v", varName, err)
		}
	}
	return o, nil
}
