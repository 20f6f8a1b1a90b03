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
	"fmt"

	"github.com/ctessum/unit"
)

// MolarVolume is the volume of one mol of an ideal gas at 25 °C and 1 bar
// [L/mol].
const MolarVolume = 24.465

// mole is the amount of substance, which is not a dimension in package unit.
var mole = unit.NewDimension("mole")

var (
	joulePerMole     = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: 2, unit.TimeDim: -2, mole: -1}
	kilogramPerMole  = unit.Dimensions{unit.MassDim: 1, mole: -1}
	joulePerKilogram = unit.Dimensions{unit.LengthDim: 2, unit.TimeDim: -2}
	meter3PerMole    = unit.Dimensions{unit.LengthDim: 3, mole: -1}
	joulePerMeter3   = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: -1, unit.TimeDim: -2}
)

const (
	kilo        = 1000.0
	wattHour    = 3600.0 // J
	liter       = 1e-3   // m³
	unitSystems = 6
)

// unitFactors returns the factors that convert an energy in kJ per mol of
// redox material into the six unit systems of the energy tables: kJ/mol
// redox material, kJ/kg redox material, Wh/kg redox material, kJ/mol
// product, kJ/L product and Wh/L product.
func unitFactors(p Process, r Record) ([unitSystems]float64, error) {
	var f [unitSystems]float64
	energy := unit.New(kilo, joulePerMole)
	molMass := unit.New(r.MolMassOx/kilo, kilogramPerMole)
	// mol O exchanged per mol redox material
	exchanged := unit.New(r.Delta2-r.Delta1, unit.Dimless)
	volume := unit.New(MolarVolume*liter, meter3PerMole)
	if p == AirSeparation {
		// Two mol O per mol O2.
		volume = unit.Div(volume, unit.New(2, unit.Dimless))
	}

	perKg := unit.Div(energy, molMass)
	perProduct := unit.Div(energy, exchanged)
	perVolume := unit.Div(perProduct, volume)
	for _, c := range []struct {
		u *unit.Unit
		d unit.Dimensions
	}{
		{u: perKg, d: joulePerKilogram},
		{u: perProduct, d: joulePerMole},
		{u: perVolume, d: joulePerMeter3},
	} {
		if err := c.u.Check(c.d); err != nil {
			return f, fmt.Errorf("energy: %v", err)
		}
	}
	f[0] = 1
	f[1] = perKg.Value() / kilo
	f[2] = perKg.Value() / wattHour
	f[3] = perProduct.Value() / kilo
	f[4] = perVolume.Value() * liter / kilo
	f[5] = perVolume.Value() * liter / wattHour
	return f, nil
}
