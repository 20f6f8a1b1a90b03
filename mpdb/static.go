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

package mpdb

import (
	"context"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/spatialmodel/redoxthermo/composition"
)

// Static is a Database held in memory, typically read from a TOML file:
//
//	[[entry]]
//	composition = "Sr8Fe8O24"
//	energy_per_atom = -6.71
//	entry_id = "mp-1"
type Static struct {
	Entries []Entry `toml:"entry"`
}

// ReadStatic reads a Static database from TOML.
func ReadStatic(r io.Reader) (*Static, error) {
	s := new(Static)
	if _, err := toml.NewDecoder(r).Decode(s); err != nil {
		return nil, fmt.Errorf("mpdb: reading static database: %w", err)
	}
	for _, e := range s.Entries {
		if _, err := composition.Parse(e.Composition); err != nil {
			return nil, fmt.Errorf("mpdb: entry %s: %w", e.EntryID, err)
		}
	}
	return s, nil
}

// EntriesInChemicalSystem implements Database.
func (s *Static) EntriesInChemicalSystem(ctx context.Context, elements []string) ([]Entry, error) {
	system := make(map[string]bool, len(elements))
	for _, el := range elements {
		system[el] = true
	}
	var out []Entry
	for _, e := range s.Entries {
		c, err := composition.Parse(e.Composition)
		if err != nil {
			return nil, fmt.Errorf("mpdb: entry %s: %w", e.EntryID, err)
		}
		if inSystem(c, system) {
			out = append(out, e)
		}
	}
	return out, ctx.Err()
}
