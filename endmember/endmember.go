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

// Package endmember estimates the redox enthalpy of perovskite solid
// solutions (A1 A2)(B1 B2)O3 from computed energies of the solid solution
// and of its single-cation endmembers A1B1O3, A2B1O3, A1B2O3 and A2B2O3.
package endmember

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/spatialmodel/redoxthermo/composition"
	"github.com/spatialmodel/redoxthermo/mpdb"
)

// ElectronVolt is one electronvolt per particle in J/mol.
const ElectronVolt = 96485.33212331001

// Threshold is the largest difference [J/mol] between the theoretical
// redox enthalpy of a solid solution and the mean of its endmember bounds
// for which the bounds are shifted rather than discarded.
const Threshold = 30000.0

// Set holds the endmembers of a solid solution.
type Set struct {
	// Members are A1B1, A2B1, A1B2 and A2B2. Missing species are replaced
	// by the present species on the same site.
	Members [4]string

	// AConc and BConc are the amounts of A1 and A2.
	AConc, BConc float64
}

func endmemberFormula(a, b *composition.Species) string {
	return a.Element + "1" + b.Element + "1" + "O"
}

// Find returns the endmembers of the solid solution formula.
func Find(formula string) (Set, error) {
	s, err := composition.SplitFormula(formula)
	if err != nil {
		return Set{}, fmt.Errorf("endmember: %w", err)
	}
	a1, a2, b1, b2 := s[composition.A1], s[composition.A2], s[composition.B1], s[composition.B2]
	if a1 == nil || b1 == nil {
		return Set{}, fmt.Errorf("endmember: %q is not a perovskite with A and B site species", formula)
	}
	var set Set
	set.Members[0] = endmemberFormula(a1, b1)
	set.Members[1] = set.Members[0]
	if a2 != nil {
		set.Members[1] = endmemberFormula(a2, b1)
	}
	set.Members[2] = set.Members[0]
	set.Members[3] = set.Members[0]
	if b2 != nil {
		set.Members[2] = endmemberFormula(a1, b2)
		set.Members[3] = set.Members[2]
		if a2 != nil {
			set.Members[3] = endmemberFormula(a2, b2)
		}
	}
	set.AConc = a1.Amount
	if a2 != nil {
		set.BConc = a2.Amount
	}
	return set, nil
}

// PerovskiteFormula returns the formula of the 40-atom perovskite cell of
// formula, e.g. "Sr8Fe8O24" for "Sr1Fe1Ox".
func PerovskiteFormula(formula string) (string, error) {
	s, err := composition.SplitFormula(formula)
	if err != nil {
		return "", fmt.Errorf("endmember: %w", err)
	}
	return s.Scaled(8, "24"), nil
}

// BrownmilleriteFormula returns the formula of the 144-atom brownmillerite
// cell of formula, e.g. "Sr32Fe32O80" for "Sr1Fe1Ox".
func BrownmilleriteFormula(formula string) (string, error) {
	s, err := composition.SplitFormula(formula)
	if err != nil {
		return "", fmt.Errorf("endmember: %w", err)
	}
	return s.Scaled(32, "80"), nil
}

// entryEnergy returns the composition and total energy [eV] of e.
func entryEnergy(e mpdb.Entry) (composition.Composition, float64, error) {
	c, err := composition.Parse(e.Composition)
	if err != nil {
		return nil, 0, err
	}
	return c, e.EnergyPerAtom * c.NumAtoms(), nil
}

func cations(c composition.Composition) float64 {
	return c.NumAtoms() - c["O"]
}

// TheoreticalRedoxEnthalpy returns the computed enthalpy [J/mol O] of the
// reduction of the perovskite formula to the brownmillerite,
//
//	ABO3 → ½ A2B2O5 + ¼ O2,
//
// from the lowest-energy database entries of both phases and of O2. The
// returned error wraps mpdb.ErrMissingEntry if any of them is not in db.
func TheoreticalRedoxEnthalpy(ctx context.Context, db mpdb.Database, formula string) (float64, error) {
	s, err := composition.SplitFormula(formula)
	if err != nil {
		return math.NaN(), fmt.Errorf("endmember: %w", err)
	}
	entries, err := db.EntriesInChemicalSystem(ctx, s.Elements())
	if err != nil {
		return math.NaN(), fmt.Errorf("endmember: %s: %w", formula, err)
	}
	perov, err := mpdb.MostStable(entries, s.Scaled(8, "24"))
	if err != nil {
		return math.NaN(), fmt.Errorf("endmember: %s perovskite: %w", formula, err)
	}
	brownm, err := mpdb.MostStable(entries, s.Scaled(32, "80"))
	if err != nil {
		return math.NaN(), fmt.Errorf("endmember: %s brownmillerite: %w", formula, err)
	}
	oxygen, err := mpdb.MostStableExact(entries, "O2")
	if err != nil {
		return math.NaN(), fmt.Errorf("endmember: %s oxygen: %w", formula, err)
	}

	cp, ep, err := entryEnergy(perov)
	if err != nil {
		return math.NaN(), fmt.Errorf("endmember: %w", err)
	}
	cb, eb, err := entryEnergy(brownm)
	if err != nil {
		return math.NaN(), fmt.Errorf("endmember: %w", err)
	}
	eo := oxygen.EnergyPerAtom * 2

	// Balance the cations, then the oxygen.
	nb := cations(cp) / cations(cb)
	no2 := (cp["O"] - nb*cb["O"]) / 2
	if no2 <= 0 {
		return math.NaN(), fmt.Errorf("endmember: %s: reduction releases no oxygen", formula)
	}
	reaction := nb*eb + no2*eo - ep
	return reaction * ElectronVolt / (2 * no2), nil
}

// missing reports whether err only indicates that data is unavailable.
func missing(err error) bool {
	return errors.Is(err, mpdb.ErrMissingEntry)
}

// EnthalpyBounds returns the redox enthalpies [J/mol O] of the solid
// solution formula expected from its endmembers. For each B-site species,
// the redox enthalpies of its two endmembers are averaged weighted by the
// A-site amounts; the larger average is dhMax. The error wraps
// mpdb.ErrMissingEntry if an endmember is not in db.
func EnthalpyBounds(ctx context.Context, db mpdb.Database, formula string) (dhMax, dhMin float64, err error) {
	set, err := Find(formula)
	if err != nil {
		return math.NaN(), math.NaN(), err
	}
	var dh [4]float64
	for i, m := range set.Members {
		if i > 0 && m == set.Members[i-1] {
			dh[i] = dh[i-1]
			continue
		}
		if dh[i], err = TheoreticalRedoxEnthalpy(ctx, db, m); err != nil {
			return math.NaN(), math.NaN(), err
		}
	}
	dh1 := dh[0]*set.AConc + dh[1]*set.BConc
	dh2 := dh[2]*set.AConc + dh[3]*set.BConc
	if dh1 > dh2 {
		return dh1, dh2, nil
	}
	return dh2, dh1, nil
}

// Reconciled holds the redox enthalpies [J/mol O] of a solid solution.
// Unavailable values are NaN.
type Reconciled struct {
	// Theoretical is the computed redox enthalpy of the solid solution.
	Theoretical float64

	// DHMin and DHMax are the redox enthalpies of the less and more stable
	// endmember pairs, corrected to match Theoretical.
	DHMin, DHMax float64

	// ActiveSpecies is the more redox-active B-site species and Active
	// its amount.
	ActiveSpecies string
	Active        float64
}

// Reconcile combines the theoretical redox enthalpy of the solid solution
// formula with its endmember bounds. If the theoretical value is
// available and differs from the endmember mean by more than Threshold, or
// the B site holds a single species, both bounds are set to the
// theoretical value. Otherwise both bounds are shifted by the difference so
// that their mean matches it. Missing database entries leave the
// corresponding values NaN; other errors are returned.
func Reconcile(ctx context.Context, db mpdb.Database, formula string) (Reconciled, error) {
	s, err := composition.SplitFormula(formula)
	if err != nil {
		return Reconciled{}, fmt.Errorf("endmember: %w", err)
	}
	r := Reconciled{Theoretical: math.NaN(), DHMin: math.NaN(), DHMax: math.NaN()}

	r.ActiveSpecies, r.Active, err = FindActive(s)
	if err != nil {
		return r, err
	}

	dhMax, dhMin, err := EnthalpyBounds(ctx, db, formula)
	switch {
	case err == nil && dhMax != 0 && dhMin != 0:
		r.DHMin, r.DHMax = dhMin, dhMax
	case err != nil && !missing(err):
		return r, err
	}

	theo, err := TheoreticalRedoxEnthalpy(ctx, db, formula)
	switch {
	case err == nil:
		r.Theoretical = theo
	case !missing(err):
		return r, err
	}
	if math.IsNaN(r.Theoretical) || r.Theoretical == 0 {
		return r, nil
	}

	mean := r.Active*r.DHMin + (1-r.Active)*r.DHMax
	difference := math.Inf(1)
	if !math.IsNaN(mean) && mean != 0 {
		difference = r.Theoretical - mean
	}
	if math.Abs(difference) > Threshold || s[composition.B2] == nil {
		r.DHMin, r.DHMax = r.Theoretical, r.Theoretical
	} else {
		r.DHMin += difference
		r.DHMax += difference
	}
	return r, nil
}
