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
	"io"

	"github.com/BurntSushi/toml"
)

// Record is the precomputed energy data of one redox material at fixed
// process conditions.
type Record struct {
	// Composition is the formula of the redox material, e.g. "Sr1Fe1Ox".
	Composition string `toml:"compstr" json:"compstr"`

	// ChemicalEnergy is the chemical energy required for the reduction.
	ChemicalEnergy float64 `toml:"chemical_energy" json:"chemical_energy"`

	// SensibleEnergy is the energy [kJ/mol] required to heat the material
	// from TOx to TRed.
	SensibleEnergy float64 `toml:"sensible_energy" json:"sensible_energy"`

	// TOx and TRed are the oxidation and reduction temperatures [K].
	TOx  float64 `toml:"t_ox" json:"t_ox"`
	TRed float64 `toml:"t_red" json:"t_red"`

	// Delta1 and Delta2 are the non-stoichiometries at the oxidation and
	// reduction conditions.
	Delta1 float64 `toml:"delta_1" json:"delta_1"`
	Delta2 float64 `toml:"delta_2" json:"delta_2"`

	// GProdKgRed and LProdKgRed are the mass [g] and volume [L] of product
	// per kg of redox material.
	GProdKgRed float64 `toml:"g_prod_kg_red" json:"g_prod_kg_red"`
	LProdKgRed float64 `toml:"l_prod_kg_red" json:"l_prod_kg_red"`

	// MassRedox is the mass change of the redox material between TOx and
	// TRed.
	MassRedox float64 `toml:"mass_redox" json:"mass_redox"`

	// MolMassOx is the molar mass [g/mol] of the oxidized material.
	MolMassOx float64 `toml:"mol_mass_ox" json:"mol_mass_ox"`

	// MolProdMolRed is the amount of product per mol of redox material.
	MolProdMolRed float64 `toml:"mol_prod_mol_red" json:"mol_prod_mol_red"`

	// POx and PRed are the oxygen partial pressures [bar] during oxidation
	// and reduction.
	POx  float64 `toml:"p_ox" json:"p_ox"`
	PRed float64 `toml:"p_red" json:"p_red"`

	// Unstable marks materials that are known to be unstable as
	// perovskites.
	Unstable bool `toml:"unstable" json:"unstable"`
}

// ReadRecords reads a TOML array of [[record]] tables.
func ReadRecords(r io.Reader) ([]Record, error) {
	var v struct {
		Records []Record `toml:"record"`
	}
	if _, err := toml.NewDecoder(r).Decode(&v); err != nil {
		return nil, fmt.Errorf("energy: reading records: %w", err)
	}
	return v.Records, nil
}
