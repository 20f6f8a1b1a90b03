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

// Package mpdb provides access to databases of computed materials
// energies, such as the Materials Project.
package mpdb

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spatialmodel/redoxthermo/composition"
)

// ErrMissingEntry is returned when a database holds no entry for a
// requested formula.
var ErrMissingEntry = errors.New("mpdb: entry not found")

// Entry is a computed material.
type Entry struct {
	// Composition is the chemical formula of the computed cell.
	Composition string `toml:"composition" json:"composition"`

	// EnergyPerAtom is the total energy per atom [eV].
	EnergyPerAtom float64 `toml:"energy_per_atom" json:"energy_per_atom"`

	EntryID string `toml:"entry_id" json:"entry_id"`
}

// Database is a source of computed materials.
type Database interface {
	// EntriesInChemicalSystem returns all entries that contain only the
	// given elements.
	EntriesInChemicalSystem(ctx context.Context, elements []string) ([]Entry, error)
}

// ChemicalSystem returns the canonical name of the chemical system made
// up of elements, e.g. "Fe-O-Sr".
func ChemicalSystem(elements []string) string {
	e := make([]string, 0, len(elements))
	seen := make(map[string]bool)
	for _, el := range elements {
		if !seen[el] {
			e = append(e, el)
			seen[el] = true
		}
	}
	sort.Strings(e)
	return strings.Join(e, "-")
}

// inSystem reports whether all elements of c are in the system.
func inSystem(c composition.Composition, system map[string]bool) bool {
	for el := range c {
		if !system[el] {
			return false
		}
	}
	return true
}

// MostStable returns the entry with the lowest energy per atom among the
// entries with the same reduced formula as formula.
func MostStable(entries []Entry, formula string) (Entry, error) {
	return lowest(entries, formula, composition.Composition.SameReduced)
}

// MostStableExact is like MostStable but only considers entries whose
// composition is exactly formula, so that O2 does not match O8.
func MostStableExact(entries []Entry, formula string) (Entry, error) {
	return lowest(entries, formula, composition.Composition.Equal)
}

func lowest(entries []Entry, formula string, match func(a, b composition.Composition) bool) (Entry, error) {
	target, err := composition.Parse(formula)
	if err != nil {
		return Entry{}, fmt.Errorf("mpdb: %w", err)
	}
	var best *Entry
	for i, e := range entries {
		c, err := composition.Parse(e.Composition)
		if err != nil {
			return Entry{}, fmt.Errorf("mpdb: entry %s: %w", e.EntryID, err)
		}
		if !match(c, target) {
			continue
		}
		if best == nil || e.EnergyPerAtom < best.EnergyPerAtom {
			best = &entries[i]
		}
	}
	if best == nil {
		return Entry{}, fmt.Errorf("%w: %s", ErrMissingEntry, formula)
	}
	return *best, nil
}
