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

package energy

import (
	"math"

	"github.com/spatialmodel/redoxthermo/science/debye"
	"github.com/spatialmodel/redoxthermo/science/shomate"
	"gonum.org/v1/gonum/integrate/quad"
)

// R is the molar gas constant [J/mol/K].
const R = debye.R

// Boiling is the boiling point of water at ambient pressure [K].
const Boiling = 373.15

// HeatOfVaporization is the heat of vaporization of water [J/mol].
const HeatOfVaporization = 40790.0

const quadNodes = 32

// steamBreakpoint is the temperature [K] at which the steam heat capacity
// changes coefficients.
const steamBreakpoint = 1700.0

func integrateSteam(t1, t2 float64) float64 {
	f := func(a, b float64) float64 {
		return quad.Fixed(shomate.HeatCapacitySteam, a, b, quadNodes, quad.Legendre{}, 0)
	}
	if t1 < steamBreakpoint && steamBreakpoint < t2 {
		return f(t1, steamBreakpoint) + f(steamBreakpoint, t2)
	}
	return f(t1, t2)
}

// MechanicalEnvelope returns the energy [kJ/mol O] required to pump oxygen
// out of a reactor at partial pressure pRed [bar] with vacuum pumps,
// following the mechanical envelope of Brendelberger et al.,
// doi:10.1016/j.solener.2016.11.023. The pump efficiency is a fourth order
// polynomial of log10(p/p0), the pump operates at 473 K and the heat is
// converted to work with an efficiency of 0.4. The result is +Inf outside
// 1e-6 ≤ pRed ≤ 0.7, where the envelope does not apply.
func MechanicalEnvelope(pRed float64) float64 {
	if pRed < 1e-6 || pRed > 0.7 || math.IsNaN(pRed) {
		return math.Inf(1)
	}
	const (
		effSol = 0.4
		temp   = 473.0
		a0     = 0.30557
		a1     = -0.17808
		a2     = -0.15514
		a3     = -0.03173
		a4     = -0.00203
		p0     = 1e5
	)
	p := pRed * p0
	l := math.Log10(p / p0)
	eff := a0 + a1*l + a2*l*l + a3*l*l*l + a4*l*l*l*l
	qIso := R * temp * math.Log(p0/p)
	q := (qIso / eff) / effSol
	return q / 2000
}

// SteamGenerationEnergy returns the energy [kJ/mol H2] required to heat
// water at ambient pressure from t1 to steam at t2, where ratio is the
// H2/H2O ratio of the product stream and hRec is the fraction of the heat
// that is recovered. Temperatures are in °C if celsius is true and in K
// otherwise.
func SteamGenerationEnergy(t1, t2, ratio float64, celsius bool, hRec float64) float64 {
	if celsius {
		t1 += 273.15
		t2 += 273.15
	}
	var liquid, vapour float64
	if t1 < Boiling {
		liquid = quad.Fixed(shomate.HeatCapacityWaterLiquid, t1, math.Min(t2, Boiling), quadNodes, quad.Legendre{}, 0)
	}
	if t2 > Boiling {
		vapour = integrateSteam(math.Max(t1, Boiling), t2)
	}
	total := liquid + vapour
	if t1 < Boiling && Boiling < t2 {
		total += HeatOfVaporization
	}
	total /= ratio
	total *= 1 - hRec
	return total / 1000
}

// ProductEnthalpy returns the chemical energy [kJ/mol] stored per mol of
// product of the process at temperature temp [K]: the enthalpy of
// formation of water for water splitting, the reaction enthalpy of
// CO + ½O2 → CO2 for CO2 splitting and 0 for air separation.
func ProductEnthalpy(p Process, temp float64) float64 {
	switch p {
	case WaterSplitting:
		return shomate.EnthalpyFormationWater(temp)
	case CO2Splitting:
		return shomate.EnthalpyCOCO2Difference(temp)
	}
	return 0
}
