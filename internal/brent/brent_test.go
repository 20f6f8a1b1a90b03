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

package brent

import (
	"math"
	"testing"
)

func TestRoot(t *testing.T) {
	var tests = []struct {
		name string
		f    func(float64) float64
		a, b float64
		want float64
	}{
		{
			name: "linear",
			f:    func(x float64) float64 { return 2*x - 1 },
			a:    0, b: 1,
			want: 0.5,
		},
		{
			name: "cubic",
			f:    func(x float64) float64 { return x*x*x - 2*x - 5 },
			a:    2, b: 3,
			want: 2.0945514815423265,
		},
		{
			name: "cos",
			f:    math.Cos,
			a:    0, b: 3,
			want: math.Pi / 2,
		},
		{
			name: "reversed bracket",
			f:    func(x float64) float64 { return math.Exp(x) - 2 },
			a:    3, b: -1,
			want: math.Ln2,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			have, err := Root(test.f, test.a, test.b)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(have-test.want) > 1e-10 {
				t.Errorf("have %g, want %g", have, test.want)
			}
		})
	}
}

func TestRootEndpoint(t *testing.T) {
	have, err := Root(func(x float64) float64 { return x - 1 }, 1, 4)
	if err != nil {
		t.Fatal(err)
	}
	if have != 1 {
		t.Errorf("have %g, want 1", have)
	}
}

func TestRootNoSignChange(t *testing.T) {
	_, err := Root(func(x float64) float64 { return x*x + 1 }, -1, 1)
	if err != ErrNoSignChange {
		t.Errorf("have %v, want %v", err, ErrNoSignChange)
	}
}

func TestRootNaN(t *testing.T) {
	_, err := Root(func(x float64) float64 { return math.Log(x) }, -1, 2)
	if err != ErrNaN {
		t.Errorf("have %v, want %v", err, ErrNaN)
	}
}

func TestRootFallback(t *testing.T) {
	f := func(x float64) float64 { return x - 150 }
	x, ok := RootFallback(f, Interval{-100, 100}, Interval{-300, 300})
	if !ok {
		t.Fatal("no root found")
	}
	if math.Abs(x-150) > 1e-9 {
		t.Errorf("have %g, want 150", x)
	}
	if _, ok := RootFallback(f, Interval{-100, 100}); ok {
		t.Error("should not find a root")
	}
	if x, ok := RootFallback(f); ok || !math.IsNaN(x) {
		t.Errorf("have (%g, %v), want (NaN, false)", x, ok)
	}
}
