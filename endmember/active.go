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

import (
	"errors"
	"fmt"
	"math"

	"github.com/spatialmodel/redoxthermo/composition"
)

// ErrUnknownReducibility indicates that the more redox-active species of a
// solid solution cannot be determined.
var ErrUnknownReducibility = errors.New("endmember: unknown reducibility")

// UnknownReducibilityError describes a solid solution whose A-site charge
// or B-site species are not covered by the reducibility tables.
type UnknownReducibilityError struct {
	// Charge is the formal charge of the B site, or NaN if the A-site charge
	// is unknown.
	Charge float64

	// Species is the species that caused the error.
	Species string
}

func (e *UnknownReducibilityError) Error() string {
	if math.IsNaN(e.Charge) {
		return fmt.Sprintf("endmember: charge of A site species %s unknown", e.Species)
	}
	return fmt.Sprintf("endmember: reducibility of B site species %s with charge %g+ unknown", e.Species, e.Charge)
}

// Is makes errors.Is(err, ErrUnknownReducibility) true.
func (e *UnknownReducibilityError) Is(target error) bool {
	return target == ErrUnknownReducibility
}

// reducibility returns the B-site species in order of increasing
// reducibility for the formal charge of the B site. The 4+ order is the
// experimentally established order of A2+B4+O3 perovskites; the 3+ and 5+
// orders follow computed reduction energies of the binary oxides, with Ni
// and Ag swapped.
func reducibility(charge int) ([]string, bool) {
	switch charge {
	case 3:
		return []string{"Sc", "Ti", "V", "Cr", "Fe", "Mn", "Cu", "Co", "Ni", "Ag"}, true
	case 4:
		return []string{"Ti", "Mn", "Fe", "Co", "Cu"}, true
	case 5:
		return []string{"Ta", "Nb", "W", "Mo", "V", "Cr"}, true
	}
	return nil, false
}

// aCharge returns the formal charge of an A-site species.
func aCharge(el string) (float64, bool) {
	switch {
	case composition.IsAlkali(el):
		return 1, true
	case composition.IsAlkalineEarth(el):
		return 2, true
	case el == "Ce":
		return 4, true
	case composition.IsLanthanoid(el) || el == "Bi":
		return 3, true
	}
	return 0, false
}

func contains(list []string, el string) bool {
	for _, l := range list {
		if l == el {
			return true
		}
	}
	return false
}

// FindActive returns the more redox-active B-site species of the solid
// solution s and its amount. The B-site charge follows from the A-site
// charges assuming an ABO3 stoichiometry. The returned error wraps
// ErrUnknownReducibility if the charge or species are not tabulated.
func FindActive(s composition.Split) (species string, amount float64, err error) {
	var aSum float64
	for _, sp := range s[composition.A1 : composition.A2+1] {
		if sp == nil {
			continue
		}
		q, ok := aCharge(sp.Element)
		if !ok {
			return "", 0, &UnknownReducibilityError{Charge: math.NaN(), Species: sp.Element}
		}
		aSum += q * sp.Amount
	}

	b1, b2 := s[composition.B1], s[composition.B2]
	charge := math.Round((6-aSum)*100) / 100
	order, ok := reducibility(int(charge))
	if !ok || charge != math.Trunc(charge) || b1 == nil {
		species := "none"
		if b1 != nil {
			species = b1.Element
		}
		return "", 0, &UnknownReducibilityError{Charge: charge, Species: species}
	}

	var active *composition.Species
	for i, el := range order {
		if b1.Element != el {
			continue
		}
		var moreReducible []string
		if i+1 < len(order)-1 {
			moreReducible = order[i+1 : len(order)-1]
		}
		if b2 != nil && contains(moreReducible, b2.Element) {
			active = b2
		} else {
			active = b1
		}
	}
	if active == nil {
		return "", 0, &UnknownReducibilityError{Charge: charge, Species: b1.Element}
	}

	// Empirical correction: the most reducible species of a table is never
	// selected above, so when the second most reducible species is active
	// and the most reducible one is present, the latter is taken instead
	// with the complementary amount.
	last := order[len(order)-1]
	if active.Element == order[len(order)-2] && s.Contains(last) {
		return last, 1 - active.Amount, nil
	}
	return active.Element, active.Amount, nil
}
