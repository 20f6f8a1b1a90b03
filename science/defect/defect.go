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

// Package defect holds models of the partial molar enthalpy and entropy of
// oxygen release from perovskite solid solutions as a function of the
// non-stoichiometry δ.
//
// Two families are implemented: empirical arctan fits of measured data
// (EnthalpyArctan, EntropyMixed, EntropyDilute), and a theoretical model of
// a solid solution with two redox-active species (TwoEndmember) following
// Bulfin et al., doi:10.1039/C6CP03158G.
package defect

import (
	"math"

	"github.com/spatialmodel/redoxthermo/science/debye"
)

// R is the molar gas constant [J/mol/K].
const R = debye.R

// EnthalpyArctan is the arctan fit of the redox enthalpy of solid solutions,
//
//	ΔH(x) = (ΔH_max − ΔH_min)/π · (atan((x−t)·s) + π/2) + ΔH_min,
//
// where x is the change in non-stoichiometry from the reference point, t is
// the transition point at which ΔH is exactly the mean of dhMax and dhMin,
// and s is the slope, a measure of the preference of B-site over A-site
// reduction. The unit of the result is the unit of dhMax and dhMin.
func EnthalpyArctan(x, dhMax, dhMin, t, s float64) float64 {
	return ((dhMax-dhMin)/math.Pi)*(math.Atan((x-t)*s)+(math.Pi/2)) + dhMin
}

// FeFit holds the parameters of the dilute species entropy fit of SrFeO3-δ.
type FeFit struct {
	A, B, C, D float64
}

// EntropyFe returns the entropy of SrFeO3-δ at absolute non-stoichiometry x.
// It diverges at x = 0 and x = 0.5.
func EntropyFe(x float64, fe FeFit) float64 {
	return fe.A/2 + fe.B + (2 * fe.C * R * (math.Log(0.5-x) - math.Log(x)))
}

// EntropyMixed blends the SrFeO3-δ entropy baseline with a constant shift
// using the same arctan shape as EnthalpyArctan, where x is the
// non-stoichiometry relative to delta0, s is the slope, and act is the
// fraction of the more redox-active species.
func EntropyMixed(x, s, shift, delta0, act float64, fe FeFit) float64 {
	efe := EntropyFe(x+delta0, fe)
	return ((act*efe)/math.Pi)*(math.Atan((x-delta0)*s)+math.Pi/2) +
		(1-act)*efe + shift
}

// EntropyDilute is the dilute species entropy model of Bulfin et al.,
// doi:10.1039/C7TA00822H. sv is the change in lattice vibrational entropy
// caused by vacancies, a is the number of degrees of freedom of the defects
// (a < 1 indicates defect ordering), delta0 is the non-stoichiometry at the
// reference point, and sO is the standard entropy of oxygen per mol O.
func EntropyDilute(x, sv, a, delta0, sO float64) float64 {
	return sO + sv + (2 * a * R * (math.Log(0.5-(x+delta0)) - math.Log(x+delta0)))
}
