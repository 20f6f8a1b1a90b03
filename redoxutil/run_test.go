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

package redoxutil

import (
	"bytes"
	"strings"
	"testing"
)

// constant is a model whose Gibbs energy of oxygen release does not depend
// on the non-stoichiometry.
type constant struct{ dh, ds float64 }

func (c constant) EnthalpyEntropy(delta, temp float64) (dh, ds float64) {
	return c.dh, c.ds
}

func TestSolve(t *testing.T) {
	var buf bytes.Buffer
	if err := Solve(&buf, constant{dh: 1e6}, -7.5, 1100, [2]float64{0.01, 0.49}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("have %d lines, want 2:\n%s", len(lines), buf.String())
	}
	have := strings.Fields(lines[1])
	want := []string{"1100", "-7.5", "-", "-", "-"}
	if strings.Join(have, " ") != strings.Join(want, " ") {
		t.Errorf("have %q, want %q", have, want)
	}
}
