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

// Package brent finds roots of scalar functions with Brent's method.
//
// Brent, R. P. (1973). Algorithms for Minimization without Derivatives,
// Chapter 4. Prentice-Hall.
package brent

import (
	"errors"
	"math"
)

const (
	// XTol is the absolute tolerance on the root location.
	XTol = 2e-12
	// RTol is the relative tolerance on the root location.
	RTol = 4 * 2.220446049250313e-16
	// MaxIter is the maximum number of iterations per call.
	MaxIter = 200
)

var (
	// ErrNoSignChange is returned when f(a) and f(b) have the same sign.
	ErrNoSignChange = errors.New("brent: f(a) and f(b) must have different signs")

	// ErrNotConverged is returned when the iteration cap is reached.
	ErrNotConverged = errors.New("brent: failed to converge")

	// ErrNaN is returned when the function is not finite at a bracket end.
	ErrNaN = errors.New("brent: function value is NaN")
)

// Root returns x in [a, b] such that f(x) = 0. f(a) and f(b) must bracket
// the root.
func Root(f func(float64) float64, a, b float64) (float64, error) {
	fa, fb := f(a), f(b)
	if math.IsNaN(fa) || math.IsNaN(fb) {
		return math.NaN(), ErrNaN
	}
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if math.Signbit(fa) == math.Signbit(fb) {
		return math.NaN(), ErrNoSignChange
	}

	// c is the previous iterate, so that [b, c] always brackets the root
	// and b is the best estimate.
	c, fc := a, fa
	d := b - a
	e := d
	for i := 0; i < MaxIter; i++ {
		if math.Signbit(fb) == math.Signbit(fc) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}
		tol := XTol/2 + RTol*math.Abs(b)
		m := (c - b) / 2
		if math.Abs(m) <= tol || fb == 0 {
			return b, nil
		}
		if math.Abs(e) >= tol && math.Abs(fa) > math.Abs(fb) {
			var p, q float64
			s := fb / fa
			if a == c {
				// secant
				p = 2 * m * s
				q = 1 - s
			} else {
				// inverse quadratic interpolation
				qq := fa / fc
				r := fb / fc
				p = s * (2*m*qq*(qq-r) - (b-a)*(r-1))
				q = (qq - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			} else {
				p = -p
			}
			if 2*p < math.Min(3*m*q-math.Abs(tol*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				d = m
				e = d
			}
		} else {
			d = m
			e = d
		}
		a, fa = b, fb
		if math.Abs(d) > tol {
			b += d
		} else if m > 0 {
			b += tol
		} else {
			b -= tol
		}
		fb = f(b)
		if math.IsNaN(fb) {
			return math.NaN(), ErrNaN
		}
	}
	return b, ErrNotConverged
}

// Interval is a bracket [A, B] to search for a root.
type Interval struct {
	A, B float64
}

// RootFallback tries each bracket in order and returns the first root
// found. ok is false if no bracket contains a root.
func RootFallback(f func(float64) float64, brackets ...Interval) (x float64, ok bool) {
	for _, br := range brackets {
		x, err := Root(f, br.A, br.B)
		if err == nil {
			return x, true
		}
	}
	return math.NaN(), false
}
