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

package endmember

import "strings"

// unstable are the cation formulas of solid solutions that decompose
// rather than form perovskites.
var unstable = []string{
	"Na0.5K0.5Mo1O",
	"Mg1Co1O",
	"Sm1Ag1O",
	"Na0.625K0.375Mo0.75V0.25O",
	"Na0.875K0.125Mo0.125V0.875O",
	"Rb1Mo1O",
	"Na0.875K0.125V1O",
	"Na0.75K0.25Mo0.375V0.625O",
	"Eu1Ag1O",
	"Na0.875K0.125V0.875Cr0.125O",
	"Na0.5K0.5W0.25Mo0.75O",
	"Na0.5K0.5Mo0.875V0.125O",
	"Na1Mo1O",
	"Mg1Ti1O",
	"Na0.5K0.5W0.5Mo0.5O",
	"Na1V1O",
	"K1V1O",
	"Sm1Cu1O",
	"Na0.75K0.25Mo0.5V0.5O",
	"Sm1Ti1O",
	"Na0.5K0.5W0.125Mo0.875O",
	"Eu1Ti1O",
	"Na0.625K0.375Mo0.625V0.375O",
	"Rb1V1O",
	"Mg1Mn1O",
	"Na0.5K0.5W0.875Mo0.125O",
	"Na0.875K0.125V0.75Cr0.25O",
	"K1Mo1O",
	"Na0.5K0.5W0.375Mo0.625O",
	"Na0.875K0.125Mo0.25V0.75O",
	"Na0.5K0.5W0.625Mo0.375O",
	"Mg1Fe1O",
	"Na0.5K0.5W0.75Mo0.25O",
	"Mg1Cu1O",
	"Eu1Cu1O",
	"Na0.625K0.375Mo0.875V0.125O",
}

// Unstable reports whether the perovskite formula, written with explicit
// amounts such as "Mg1Fe1Ox", is known not to form a stable perovskite.
// Any formula whose cation part matches a part of a listed formula is
// reported as unstable.
func Unstable(formula string) bool {
	cations := strings.SplitN(formula, "O", 2)[0]
	if cations == "" {
		return false
	}
	for _, u := range unstable {
		if strings.Contains(u, cations) {
			return true
		}
	}
	return false
}
