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
	"math"

	"github.com/spatialmodel/redoxthermo/internal/brent"
)

// DefaultBracket is the δ interval searched first by SolveDelta. It
// excludes the singularities of the entropy at δ = 0 and δ = 0.5.
var DefaultBracket = brent.Interval{A: 0.01, B: 0.49}

// Residual returns the Gibbs energy of oxygen release [J/mol] at
// non-stoichiometry delta, temperature temp [K] and oxygen partial pressure
// exp(iso) [bar]:
//
//	ΔH(δ) − T ΔS(δ) + R T iso / 2.
func Residual(m Model, delta, iso, temp float64) float64 {
	dh, ds := m.EnthalpyEntropy(delta, temp)
	return dh - temp*ds + R*iso*temp/2
}

// SolveDelta returns the equilibrium state of the material described by m
// at temperature temp [K] and oxygen partial pressure exp(iso) [bar].
// DefaultBracket is searched first, then [a, b]. ok is false if no
// equilibrium with 0 < δ < 0.5 is found.
func SolveDelta(iso, temp float64, m Model, a, b float64) (p EquilibriumPoint, ok bool) {
	f := func(delta float64) float64 {
		return Residual(m, delta, iso, temp)
	}
	delta, ok := brent.RootFallback(f, DefaultBracket, brent.Interval{A: a, B: b})
	if !ok || delta <= 0 || delta >= 0.5 {
		return EquilibriumPoint{}, false
	}
	dh, ds := m.EnthalpyEntropy(delta, temp)
	if math.IsNaN(dh) || math.IsNaN(ds) {
		return EquilibriumPoint{}, false
	}
	return EquilibriumPoint{
		Delta:       delta,
		Enthalpy:    dh / 1000,
		Entropy:     ds,
		Temperature: temp,
		Iso:         iso,
	}, true
}

// Isotherm returns the natural logarithm of the oxygen partial pressure
// [bar] at which the material reaches non-stoichiometry delta at
// temperature temp.
func Isotherm(delta, temp float64, m Model) float64 {
	dh, ds := m.EnthalpyEntropy(delta, temp)
	return -2 * (dh - temp*ds) / (R * temp)
}

// IsobarLine returns the Ellingham line −R T iso / 2 [J/mol] of oxygen at
// partial pressure exp(iso) [bar] and temperature temp.
func IsobarLine(iso, temp float64) float64 {
	return -R * iso * temp / 2
}
