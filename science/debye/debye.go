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

// Package debye calculates vibrational entropies using the Debye model.
package debye

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// R is the molar gas constant [J/mol/K].
const R = 8.314462618

const (
	// nodes is the number of Gauss–Legendre nodes used for the Debye integral.
	nodes = 96
	// upper is the upper integration limit beyond which the integrand
	// x³/(eˣ−1) contributes less than 1e-20.
	upper = 60.0
)

func integrand(x float64) float64 {
	if x == 0 {
		return 0
	}
	return x * x * x / math.Expm1(x)
}

// Function returns the third-order Debye function
//
//	D(y) = 3/y³ ∫₀ʸ x³/(eˣ−1) dx.
//
// D(0) is 1 and D(+Inf) is 0.
func Function(y float64) float64 {
	switch {
	case math.IsInf(y, 1):
		return 0
	case y == 0:
		return 1
	}
	integral := quad.Fixed(integrand, 0, math.Min(y, upper), nodes, quad.Legendre{}, 0)
	return integral * 3 / (y * y * y)
}

// Entropy returns the molar vibrational entropy [J/mol/K] of a solid with
// Debye temperature debyeTemp [K] at temperature temp [K]:
//
//	S = R (−3 ln(1−e^−y) + 4 D(y)),  y = θ/T.
//
// At temp = 0 the entropy is 0.
func Entropy(temp, debyeTemp float64) float64 {
	if temp == 0 {
		return 0
	}
	y := debyeTemp / temp
	return R * (-3*math.Log(-math.Expm1(-y)) + 4*Function(y))
}

// VibrationalEntropy returns the change in vibrational entropy [J/mol/K]
// associated with the reduction of a perovskite with Debye temperature
// debyePerovskite to a brownmillerite with Debye temperature
// debyeBrownmillerite at temperature temp:
//
//	ΔS_vib = 2 S(T, θ_perovskite) − 2 S(T, θ_brownmillerite).
//
// The result is exactly zero when both Debye temperatures are equal.
func VibrationalEntropy(temp, debyePerovskite, debyeBrownmillerite float64) float64 {
	if debyePerovskite == debyeBrownmillerite {
		return 0
	}
	sPerov := Entropy(temp, debyePerovskite)
	sBrownm := Entropy(temp, debyeBrownmillerite)
	return 2*sPerov - (2 * sBrownm)
}
