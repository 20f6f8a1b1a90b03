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
	"context"
	"errors"
	"math"
	"testing"

	"github.com/kr/pretty"
	"github.com/spatialmodel/redoxthermo/composition"
	"github.com/spatialmodel/redoxthermo/mpdb"
)

func different(a, b, tolerance float64) bool {
	return 2*math.Abs(a-b)/math.Abs(a+b) > tolerance
}

// testDB returns a database with SrFeO3, SrMnO3 and SrFe0.5Mn0.5O3 and
// their brownmillerites. brownmFeMn is the energy per atom of the solid
// solution brownmillerite.
func testDB(brownmFeMn float64) *mpdb.Static {
	return &mpdb.Static{Entries: []mpdb.Entry{
		{Composition: "O2", EnergyPerAtom: -4.95, EntryID: "mp-12957"},
		{Composition: "O8", EnergyPerAtom: -5.5, EntryID: "mp-1180008"},
		{Composition: "Sr8Fe8O24", EnergyPerAtom: -6.75, EntryID: "mp-1"},
		{Composition: "Sr1Fe1O3", EnergyPerAtom: -6.70, EntryID: "mp-2"},
		{Composition: "Sr32Fe32O80", EnergyPerAtom: -6.83, EntryID: "mp-3"},
		{Composition: "Sr8Mn8O24", EnergyPerAtom: -7.10, EntryID: "mp-4"},
		{Composition: "Sr32Mn32O80", EnergyPerAtom: -7.155, EntryID: "mp-5"},
		{Composition: "Sr8Fe4Mn4O24", EnergyPerAtom: -6.95, EntryID: "mp-6"},
		{Composition: "Sr32Fe16Mn16O80", EnergyPerAtom: brownmFeMn, EntryID: "mp-7"},
	}}
}

const (
	dhFe   = 104204.15869317466
	dhMn   = 159683.22466407818
	dhFeMn = 140868.5849000334
)

func TestFind(t *testing.T) {
	var tests = []struct {
		formula string
		want    Set
	}{
		{
			formula: "Sr1Fe1Ox",
			want:    Set{Members: [4]string{"Sr1Fe1O", "Sr1Fe1O", "Sr1Fe1O", "Sr1Fe1O"}, AConc: 1},
		},
		{
			formula: "La0.5Sr0.5Fe1Ox",
			want:    Set{Members: [4]string{"La1Fe1O", "Sr1Fe1O", "La1Fe1O", "La1Fe1O"}, AConc: 0.5, BConc: 0.5},
		},
		{
			formula: "Sr1Fe0.5Mn0.5Ox",
			want:    Set{Members: [4]string{"Sr1Fe1O", "Sr1Fe1O", "Sr1Mn1O", "Sr1Mn1O"}, AConc: 1},
		},
		{
			formula: "Ca0.25Sr0.75Mn0.5Fe0.5Ox",
			want:    Set{Members: [4]string{"Ca1Mn1O", "Sr1Mn1O", "Ca1Fe1O", "Sr1Fe1O"}, AConc: 0.25, BConc: 0.75},
		},
	}
	for _, test := range tests {
		t.Run(test.formula, func(t *testing.T) {
			have, err := Find(test.formula)
			if err != nil {
				t.Fatal(err)
			}
			if diff := pretty.Diff(have, test.want); len(diff) > 0 {
				t.Errorf("endmembers: %v", diff)
			}
		})
	}
	if _, err := Find("Fe1Mn1Ox"); err == nil {
		t.Error("want error for missing A site")
	}
}

func TestFormulas(t *testing.T) {
	p, err := PerovskiteFormula("Sr1Fe0.5Mn0.5Ox")
	if err != nil {
		t.Fatal(err)
	}
	if p != "Sr8Fe4Mn4O24" {
		t.Errorf("perovskite: have %s", p)
	}
	b, err := BrownmilleriteFormula("Sr1Fe0.5Mn0.5Ox")
	if err != nil {
		t.Fatal(err)
	}
	if b != "Sr32Fe16Mn16O80" {
		t.Errorf("brownmillerite: have %s", b)
	}
}

func TestTheoreticalRedoxEnthalpy(t *testing.T) {
	ctx := context.Background()
	db := testDB(-7.01)
	for formula, want := range map[string]float64{
		"Sr1Fe1O":         dhFe,
		"Sr1Mn1Ox":        dhMn,
		"Sr1Fe0.5Mn0.5Ox": dhFeMn,
	} {
		have, err := TheoreticalRedoxEnthalpy(ctx, db, formula)
		if err != nil {
			t.Fatal(err)
		}
		if different(have, want, 1e-12) {
			t.Errorf("%s: have %g, want %g", formula, have, want)
		}
	}
	_, err := TheoreticalRedoxEnthalpy(ctx, db, "Ba1Fe1Ox")
	if !errors.Is(err, mpdb.ErrMissingEntry) {
		t.Errorf("have %v, want %v", err, mpdb.ErrMissingEntry)
	}
}

func TestEnthalpyBounds(t *testing.T) {
	dhMax, dhMin, err := EnthalpyBounds(context.Background(), testDB(-7.01), "Sr1Fe0.5Mn0.5Ox")
	if err != nil {
		t.Fatal(err)
	}
	if different(dhMax, dhMn, 1e-12) || different(dhMin, dhFe, 1e-12) {
		t.Errorf("have (%g, %g), want (%g, %g)", dhMax, dhMin, dhMn, dhFe)
	}
}

func TestReconcile(t *testing.T) {
	var tests = []struct {
		name    string
		formula string
		db      mpdb.Database
		want    Reconciled
	}{
		{
			name:    "shift",
			formula: "Sr1Fe0.5Mn0.5Ox",
			db:      testDB(-7.01),
			want: Reconciled{
				Theoretical:   dhFeMn,
				DHMin:         113129.05191458165,
				DHMax:         168608.11788548518,
				ActiveSpecies: "Fe",
				Active:        0.5,
			},
		},
		{
			name:    "collapse",
			formula: "Sr1Fe0.5Mn0.5Ox",
			db:      testDB(-7.07),
			want: Reconciled{
				Theoretical:   88766.50555344537,
				DHMin:         88766.50555344537,
				DHMax:         88766.50555344537,
				ActiveSpecies: "Fe",
				Active:        0.5,
			},
		},
		{
			name:    "single B species",
			formula: "Sr1Fe1Ox",
			db:      testDB(-7.01),
			want: Reconciled{
				Theoretical:   dhFe,
				DHMin:         dhFe,
				DHMax:         dhFe,
				ActiveSpecies: "Fe",
				Active:        1,
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r, err := Reconcile(context.Background(), test.db, test.formula)
			if err != nil {
				t.Fatal(err)
			}
			if r.ActiveSpecies != test.want.ActiveSpecies || r.Active != test.want.Active {
				t.Errorf("active: have %s %g, want %s %g", r.ActiveSpecies, r.Active,
					test.want.ActiveSpecies, test.want.Active)
			}
			for _, v := range []struct {
				name       string
				have, want float64
			}{
				{"theoretical", r.Theoretical, test.want.Theoretical},
				{"min", r.DHMin, test.want.DHMin},
				{"max", r.DHMax, test.want.DHMax},
			} {
				if different(v.have, v.want, 1e-9) {
					t.Errorf("%s: have %g, want %g", v.name, v.have, v.want)
				}
			}
		})
	}
}

func TestReconcileMissing(t *testing.T) {
	db := testDB(-7.01)
	var entries []mpdb.Entry
	for _, e := range db.Entries {
		if e.EntryID != "mp-7" {
			entries = append(entries, e)
		}
	}
	db.Entries = entries
	r, err := Reconcile(context.Background(), db, "Sr1Fe0.5Mn0.5Ox")
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(r.Theoretical) {
		t.Errorf("theoretical: have %g, want NaN", r.Theoretical)
	}
	if different(r.DHMin, dhFe, 1e-12) || different(r.DHMax, dhMn, 1e-12) {
		t.Errorf("bounds: have (%g, %g), want (%g, %g)", r.DHMin, r.DHMax, dhFe, dhMn)
	}
}

func split(t *testing.T, formula string) composition.Split {
	s, err := composition.SplitFormula(formula)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestFindActive(t *testing.T) {
	var tests = []struct {
		formula string
		species string
		amount  float64
	}{
		{formula: "Sr1Fe0.5Mn0.5Ox", species: "Fe", amount: 0.5},
		{formula: "Sr1Mn0.75Fe0.25Ox", species: "Fe", amount: 0.25},
		{formula: "Sr1Ti0.5Mn0.5Ox", species: "Mn", amount: 0.5},
		{formula: "La1Fe0.5Mn0.5Ox", species: "Mn", amount: 0.5},
		{formula: "La1Mn0.5Fe0.5Ox", species: "Mn", amount: 0.5},
		{formula: "Na1W0.25Mo0.75Ox", species: "Mo", amount: 0.75},
		{formula: "Ce0.5Mg0.5Mn1Ox", species: "Mn", amount: 1},
		// Co is second most reducible for 4+ B sites and Cu is present.
		{formula: "Sr1Co0.25Cu0.75Ox", species: "Cu", amount: 0.75},
	}
	for _, test := range tests {
		t.Run(test.formula, func(t *testing.T) {
			species, amount, err := FindActive(split(t, test.formula))
			if err != nil {
				t.Fatal(err)
			}
			if species != test.species || amount != test.amount {
				t.Errorf("have %s %g, want %s %g", species, amount, test.species, test.amount)
			}
		})
	}
}

func TestReducibility(t *testing.T) {
	order, ok := reducibility(4)
	if !ok {
		t.Fatal("4+ order missing")
	}
	order[0] = "Zn"
	if have, _ := reducibility(4); have[0] != "Ti" {
		t.Errorf("order changed by caller: have %v", have)
	}
	for _, charge := range []int{1, 2, 6} {
		if _, ok := reducibility(charge); ok {
			t.Errorf("%d+: want no order", charge)
		}
	}
}

func TestFindActiveUnknown(t *testing.T) {
	for _, formula := range []string{
		"Y1Fe1Ox",         // Y has no tabulated charge.
		"Sr1Zn1Ox",        // Zn is not tabulated.
		"K1Fe1Ox",         // 5+ B site without Fe.
		"La0.3Sr0.7Fe1Ox", // 3.7+ B site.
	} {
		_, _, err := FindActive(split(t, formula))
		if !errors.Is(err, ErrUnknownReducibility) {
			t.Errorf("%s: have %v, want %v", formula, err, ErrUnknownReducibility)
		}
		if _, ok := err.(*UnknownReducibilityError); !ok {
			t.Errorf("%s: have %T, want *UnknownReducibilityError", formula, err)
		}
	}
}

func TestUnstable(t *testing.T) {
	for formula, want := range map[string]bool{
		"Mg1Fe1Ox":             true,
		"Na0.5K0.5W0.5Mo0.5Ox": true,
		"Sr1Fe1Ox":             false,
		"Ox":                   false,
		"La0.5Sr0.5Mn1Ox":      false,
	} {
		if have := Unstable(formula); have != want {
			t.Errorf("%s: have %v, want %v", formula, have, want)
		}
	}
}
