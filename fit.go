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

package redoxthermo

import (
	"fmt"
	"math"

	"github.com/spatialmodel/redoxthermo/science/defect"
	"github.com/spatialmodel/redoxthermo/science/shomate"
)

// EntropyFitType specifies which entropy fit a CompositionFit uses.
type EntropyFitType int

// These are the supported entropy fits.
const (
	// SolidSolution blends the SrFeO3-δ entropy with a constant shift.
	SolidSolution EntropyFitType = iota
	// Dilute is the dilute species defect model.
	Dilute
)

func (t EntropyFitType) String() string {
	switch t {
	case SolidSolution:
		return "SolidSolution"
	case Dilute:
		return "Dilute"
	default:
		return fmt.Sprintf("EntropyFitType(%d)", int(t))
	}
}

// ParseEntropyFitType returns the fit type with the given name. Both the
// Go names and the spellings used in published datasets ("Solid_Solution",
// "Dilute_Species") are accepted.
func ParseEntropyFitType(s string) (EntropyFitType, error) {
	switch s {
	case "SolidSolution", "Solid_Solution":
		return SolidSolution, nil
	case "Dilute", "Dilute_Species":
		return Dilute, nil
	}
	return 0, fmt.Errorf("redoxthermo: invalid entropy fit type %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *EntropyFitType) UnmarshalText(text []byte) error {
	v, err := ParseEntropyFitType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (t EntropyFitType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// ArctanFit holds the parameters of the arctan enthalpy fit. Enthalpies
// are in kJ/mol.
type ArctanFit struct {
	DHMax      float64 `toml:"dh_max"`
	DHMin      float64 `toml:"dh_min"`
	Transition float64 `toml:"transition"`
	Slope      float64 `toml:"slope"`
}

// SolidSolutionEntropyFit holds the parameters of the solid solution
// entropy fit.
type SolidSolutionEntropyFit struct {
	Slope  float64 `toml:"slope"`
	Shift  float64 `toml:"shift"`
	Delta0 float64 `toml:"delta_0"`

	// Fe is the SrFeO3-δ entropy baseline.
	Fe defect.FeFit `toml:"fe"`

	// ActiveFraction is the fraction of the more redox-active species, in
	// [0, 1].
	ActiveFraction float64 `toml:"active_fraction"`
}

// DiluteEntropyFit holds the parameters of the dilute species entropy fit.
type DiluteEntropyFit struct {
	// SV is the change in lattice vibrational entropy caused by vacancies
	// [J/mol/K].
	SV float64 `toml:"s_v"`

	// A is the number of degrees of freedom of the defects.
	A float64 `toml:"a"`

	Delta0 float64 `toml:"delta_0"`
}

// CompositionFit holds the empirical thermodynamic fit of a material.
// Exactly one of SolidSolution and Dilute must be set, as selected by
// EntropyFit.
type CompositionFit struct {
	// Composition is the chemical formula of the material.
	Composition string `toml:"composition"`

	// Delta0 is the reference non-stoichiometry of the enthalpy fit.
	Delta0 float64 `toml:"delta_0"`

	EntropyFit EntropyFitType `toml:"entropy_fit"`
	Enthalpy   ArctanFit      `toml:"enthalpy"`

	SolidSolution *SolidSolutionEntropyFit `toml:"solid_solution"`
	Dilute        *DiluteEntropyFit        `toml:"dilute"`
}

// Validate checks that the fit is internally consistent.
func (f CompositionFit) Validate() error {
	switch f.EntropyFit {
	case SolidSolution:
		if f.SolidSolution == nil {
			return fmt.Errorf("redoxthermo: %s: solid solution entropy fit is missing", f.Composition)
		}
		if f.Dilute != nil {
			return fmt.Errorf("redoxthermo: %s: solid solution fit also has dilute parameters", f.Composition)
		}
		if a := f.SolidSolution.ActiveFraction; a < 0 || a > 1 {
			return fmt.Errorf("redoxthermo: %s: active fraction %g is outside [0, 1]", f.Composition, a)
		}
	case Dilute:
		if f.Dilute == nil {
			return fmt.Errorf("redoxthermo: %s: dilute entropy fit is missing", f.Composition)
		}
		if f.SolidSolution != nil {
			return fmt.Errorf("redoxthermo: %s: dilute fit also has solid solution parameters", f.Composition)
		}
	default:
		return fmt.Errorf("redoxthermo: %s: invalid entropy fit type %v", f.Composition, f.EntropyFit)
	}
	return nil
}

// EnthalpyEntropy implements Model. The entropy diverges as delta
// approaches 0 or 0.5, and is NaN if the fit type is invalid.
func (f CompositionFit) EnthalpyEntropy(delta, temp float64) (dh, ds float64) {
	e := f.Enthalpy
	dh = defect.EnthalpyArctan(delta-f.Delta0, e.DHMax, e.DHMin, e.Transition, e.Slope) * 1000

	switch f.EntropyFit {
	case SolidSolution:
		s := f.SolidSolution
		ds = defect.EntropyMixed(delta-s.Delta0, s.Slope, s.Shift, s.Delta0, s.ActiveFraction, s.Fe)
	case Dilute:
		d := f.Dilute
		ds = defect.EntropyDilute(delta-d.Delta0, d.SV, d.A, d.Delta0, shomate.StandardEntropyO(temp))
	default:
		ds = math.NaN()
	}
	return dh, ds
}
