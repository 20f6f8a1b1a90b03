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

// Package redoxthermo calculates the equilibrium oxygen non-stoichiometry of
// perovskite-type redox materials and the thermodynamic state at
// equilibrium.
//
// A material is described by a Model that returns the partial molar redox
// enthalpy and entropy as a function of the non-stoichiometry δ and the
// temperature. Two models are provided: CompositionFit, an empirical arctan
// fit of measured data, and defect.TwoEndmember, a theoretical solid
// solution of two perovskite endmembers. SolveDelta finds the δ at which
// the Gibbs energy of oxygen release vanishes for a given oxygen partial
// pressure.
package redoxthermo

import (
	"github.com/spatialmodel/redoxthermo/science/debye"
	"github.com/spatialmodel/redoxthermo/science/defect"
)

// Version gives the version number.
const Version = "1.0.0"

// R is the molar gas constant [J/mol/K].
const R = debye.R

// Model is a thermodynamic model of a redox material.
type Model interface {
	// EnthalpyEntropy returns the partial molar enthalpy [J/mol] and
	// entropy [J/mol/K] of oxygen release at non-stoichiometry delta and
	// temperature temp [K].
	EnthalpyEntropy(delta, temp float64) (dh, ds float64)
}

var (
	_ Model = CompositionFit{}
	_ Model = defect.TwoEndmember{}
)

// EquilibriumPoint is the thermodynamic state of a material at equilibrium.
type EquilibriumPoint struct {
	// Delta is the non-stoichiometry, in the open interval (0, 0.5).
	Delta float64

	// Enthalpy is the partial molar redox enthalpy [kJ/mol].
	Enthalpy float64

	// Entropy is the partial molar redox entropy [J/mol/K].
	Entropy float64

	// Temperature [K].
	Temperature float64

	// Iso is the natural logarithm of the oxygen partial pressure [bar].
	Iso float64
}
