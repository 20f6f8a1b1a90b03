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
	"runtime"
	"sync"
)

// Solution is one point of a sweep. If Found is false, no equilibrium
// exists at the requested conditions and only Temperature and Iso are set.
type Solution struct {
	EquilibriumPoint
	Found bool
}

// IsothermCurve solves for the equilibrium at temperature temp [K] for
// each of the given log oxygen partial pressures. a and b are the fallback
// bracket passed to SolveDelta. The result is in the order of isos.
func IsothermCurve(temp float64, isos []float64, m Model, a, b float64) []Solution {
	return sweep(len(isos), func(i int) Solution {
		return solve(isos[i], temp, m, a, b)
	})
}

// IsobarCurve solves for the equilibrium at oxygen partial pressure
// exp(iso) [bar] for each of the given temperatures. The result is in the
// order of temps.
func IsobarCurve(iso float64, temps []float64, m Model, a, b float64) []Solution {
	return sweep(len(temps), func(i int) Solution {
		return solve(iso, temps[i], m, a, b)
	})
}

func solve(iso, temp float64, m Model, a, b float64) Solution {
	p, ok := SolveDelta(iso, temp, m, a, b)
	if !ok {
		p = EquilibriumPoint{Temperature: temp, Iso: iso}
	}
	return Solution{EquilibriumPoint: p, Found: ok}
}

// sweep evaluates f for 0 ≤ i < n in parallel.
func sweep(n int, f func(i int) Solution) []Solution {
	out := make([]Solution, n)
	nprocs := runtime.GOMAXPROCS(0)
	var wg sync.WaitGroup
	wg.Add(nprocs)
	for pp := 0; pp < nprocs; pp++ {
		go func(pp int) {
			for i := pp; i < n; i += nprocs {
				out[i] = f(i)
			}
			wg.Done()
		}(pp)
	}
	wg.Wait()
	return out
}
