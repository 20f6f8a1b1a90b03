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

package defect

import (
	"math"

	"github.com/spatialmodel/redoxthermo/internal/brent"
	"github.com/spatialmodel/redoxthermo/science/debye"
	"github.com/spatialmodel/redoxthermo/science/shomate"
)

// dT is the temperature step [K] of the numerical derivative in
// EnthalpyNumerical.
const dT = 0.01

// activeEpsilon replaces zero maximum non-stoichiometries in
// ConfigurationalEntropy.
const activeEpsilon = 1e-10

// PO2Brackets are the intervals of ln p(O2) that are searched, in order, when
// solving DeltaMix for the oxygen partial pressure.
var PO2Brackets = []brent.Interval{{A: -100, B: 100}, {A: -300, B: 300}}

// DeltaFun returns the non-stoichiometry contributed by a single redox-active
// species with reaction enthalpy dh [J/mol] and maximum non-stoichiometry
// dMax at temperature temp [K] and oxygen partial pressure exp(lnp) [bar],
// where sO is the standard entropy of oxygen per mol O.
func DeltaFun(sO, temp, lnp, dh, dMax float64) float64 {
	common := math.Exp(sO * dMax / R)
	common *= math.Pow(math.Exp(lnp), -dMax/2.0)
	common *= math.Exp(-dh * dMax / (R * temp))
	return dMax * common / (1.0 + common)
}

// DeltaMix returns the total non-stoichiometry of a solid solution with two
// redox-active species with reaction enthalpies dh1 and dh2 [J/mol], where
// act is the fraction of the first species.
func DeltaMix(temp, lnp, dh1, dh2, act float64) float64 {
	sO := shomate.StandardEntropyO(temp)
	return DeltaFun(sO, temp, lnp, dh1, act/2) + DeltaFun(sO, temp, lnp, dh2, (1-act)/2)
}

// LogPO2 returns the natural logarithm of the oxygen partial pressure [bar]
// at which a solid solution reaches the non-stoichiometry delta at
// temperature temp. ok is false if no solution is found in PO2Brackets.
func LogPO2(delta, dh1, dh2, temp, act float64) (lnp float64, ok bool) {
	f := func(lnp float64) float64 {
		return DeltaMix(temp, lnp, dh1, dh2, act) - delta
	}
	return brent.RootFallback(f, PO2Brackets...)
}

// EnthalpyNumerical returns the redox enthalpy [J/mol] of a two-species
// solid solution from the centered difference of ln p(O2) with respect to
// 1/(RT), evaluated at temp and temp + 0.01 K:
//
//	ΔH = −½ (ln p(T) − ln p(T+h)) / (1/(RT) − 1/(R(T+h))).
//
// The result is NaN if p(O2) cannot be determined.
func EnthalpyNumerical(delta, dh1, dh2, temp, act float64) float64 {
	lnp0, ok := LogPO2(delta, dh1, dh2, temp, act)
	if !ok {
		return math.NaN()
	}
	return enthalpyNumerical(lnp0, delta, dh1, dh2, temp, act)
}

func enthalpyNumerical(lnp0, delta, dh1, dh2, temp, act float64) float64 {
	lnp1, ok := LogPO2(delta, dh1, dh2, temp+dT, act)
	if !ok {
		return math.NaN()
	}
	return -((0.5 * lnp0) - (0.5 * lnp1)) / ((1 / (R * temp)) - (1 / (R * (temp + dT))))
}

// ConfigurationalEntropy returns the configurational entropy [J/mol/K] of a
// solid solution with two redox-active species at temperature temp and
// oxygen partial pressure exp(lnp), following Bulfin et al.,
// doi:10.1039/C6CP03158G. The result does not depend on the order of dh1 and
// dh2.
func ConfigurationalEntropy(temp, lnp, dh1, dh2, act float64) float64 {
	const a = 2
	sO := shomate.StandardEntropyO(temp)

	if dh1 > dh2 {
		dh1, dh2 = dh2, dh1
	}

	dMax1 := act * 0.5
	if act == 0 {
		dMax1 = activeEpsilon
	}
	dMax2 := 0.5 - (act * 0.5)
	if act == 1 {
		dMax2 = 0.5 - activeEpsilon
	}

	delta1 := DeltaFun(sO, temp, lnp, dh1, act/2)
	delta2 := DeltaFun(sO, temp, lnp, dh2, (1-act)/2)

	var s1, s2 float64
	if delta1 > 0 {
		s1 = (1 / dMax1) * (a / 2) * R *
			(math.Log(dMax1-delta1) - math.Log(delta1)) *
			(delta1 / (delta1 + delta2))
	}
	if delta2 > 0 {
		s2 = (1 / dMax2) * (a / 2) * R *
			(math.Log(dMax2-delta2) - math.Log(delta2)) *
			(delta2 / (delta1 + delta2))
	}
	return s1 + s2
}

// TwoEndmember is a solid solution of two perovskite endmembers with
// different redox enthalpies.
type TwoEndmember struct {
	// DHMin and DHMax are the redox enthalpies [J/mol] of the two endmembers.
	DHMin, DHMax float64

	// Active is the fraction of the more redox-active species.
	Active float64

	// DebyePerovskite and DebyeBrownmillerite are the Debye temperatures [K]
	// of the oxidized and reduced phases.
	DebyePerovskite, DebyeBrownmillerite float64
}

// EnthalpyEntropy returns the redox enthalpy [J/mol] and entropy [J/mol/K]
// of the solid solution at non-stoichiometry delta and temperature temp.
// The entropy is the sum of the standard entropy of oxygen, the
// configurational entropy and the vibrational entropy. Both values are NaN
// if the oxygen partial pressure at delta cannot be determined.
func (m TwoEndmember) EnthalpyEntropy(delta, temp float64) (dh, ds float64) {
	lnp, ok := LogPO2(delta, m.DHMin, m.DHMax, temp, m.Active)
	if !ok {
		return math.NaN(), math.NaN()
	}
	dh = enthalpyNumerical(lnp, delta, m.DHMin, m.DHMax, temp, m.Active)
	ds = shomate.StandardEntropyO(temp) +
		ConfigurationalEntropy(temp, lnp, m.DHMin, m.DHMax, m.Active) +
		debye.VibrationalEntropy(temp, m.DebyePerovskite, m.DebyeBrownmillerite)
	return dh, ds
}
