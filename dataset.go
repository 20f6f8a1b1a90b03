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
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// Dataset is a collection of material fits as stored in TOML files:
//
//	[[fit]]
//	composition = "SrFeO3"
//	delta_0 = 0.0
//	entropy_fit = "Dilute"
//	[fit.enthalpy]
//	dh_max = 250.0
//	...
type Dataset struct {
	Fits []CompositionFit `toml:"fit"`
}

// ReadDataset reads and validates a TOML dataset of material fits.
func ReadDataset(r io.Reader) (*Dataset, error) {
	d := new(Dataset)
	if _, err := toml.NewDecoder(r).Decode(d); err != nil {
		return nil, fmt.Errorf("redoxthermo: reading dataset: %w", err)
	}
	for _, f := range d.Fits {
		if err := f.Validate(); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Fit returns the fit for the given composition.
func (d *Dataset) Fit(composition string) (CompositionFit, error) {
	for _, f := range d.Fits {
		if f.Composition == composition {
			return f, nil
		}
	}
	return CompositionFit{}, fmt.Errorf("redoxthermo: no fit for composition %q", composition)
}
