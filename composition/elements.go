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

package composition

// symbols are the element symbols in order of atomic number.
var symbols = [...]string{
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba", "La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy",
	"Ho", "Er", "Tm", "Yb", "Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt",
	"Au", "Hg", "Tl", "Pb", "Bi", "Po", "At", "Rn",
	"Fr", "Ra", "Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf",
	"Es", "Fm", "Md", "No", "Lr", "Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds",
	"Rg", "Cn", "Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

var atomicNumbers = func() map[string]int {
	m := make(map[string]int, len(symbols))
	for i, s := range symbols {
		m[s] = i + 1
	}
	return m
}()

// AtomicNumber returns the atomic number of the element with the given
// symbol, or 0 if the symbol is unknown.
func AtomicNumber(symbol string) int {
	return atomicNumbers[symbol]
}

func group1(z int) bool {
	switch z {
	case 3, 11, 19, 37, 55, 87:
		return true
	}
	return false
}

func group2(z int) bool {
	switch z {
	case 4, 12, 20, 38, 56, 88:
		return true
	}
	return false
}

// IsAlkali reports whether the element is an alkali metal.
func IsAlkali(symbol string) bool { return group1(AtomicNumber(symbol)) }

// IsAlkalineEarth reports whether the element is an alkaline earth metal.
func IsAlkalineEarth(symbol string) bool { return group2(AtomicNumber(symbol)) }

// IsLanthanoid reports whether the element is one of La through Lu.
func IsLanthanoid(symbol string) bool {
	z := AtomicNumber(symbol)
	return z >= 57 && z <= 71
}

// IsActinoid reports whether the element is one of Ac through Lr.
func IsActinoid(symbol string) bool {
	z := AtomicNumber(symbol)
	return z >= 89 && z <= 103
}

// IsRareEarth reports whether the element is Sc, Y, a lanthanoid or an
// actinoid.
func IsRareEarth(symbol string) bool {
	z := AtomicNumber(symbol)
	return z == 21 || z == 39 || IsLanthanoid(symbol) || IsActinoid(symbol)
}

// IsTransitionMetal reports whether the element is a transition metal,
// counting La and Ac but no other lanthanoids or actinoids.
func IsTransitionMetal(symbol string) bool {
	z := AtomicNumber(symbol)
	switch {
	case z >= 21 && z <= 30, z >= 39 && z <= 48, z == 57,
		z >= 72 && z <= 80, z == 89, z >= 104 && z <= 112:
		return true
	}
	return false
}

// IsASite reports whether the element occupies the A site of a perovskite.
func IsASite(symbol string) bool {
	return IsAlkali(symbol) || IsAlkalineEarth(symbol) || IsRareEarth(symbol)
}

// IsBSite reports whether the element occupies the B site of a perovskite.
func IsBSite(symbol string) bool {
	return IsTransitionMetal(symbol) && !IsRareEarth(symbol)
}
