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

// Package composition parses chemical formulas of perovskite solid
// solutions (A1 A2)(B1 B2)O3 and assigns the cations to their lattice sites.
package composition

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Species is one element of a formula with its stoichiometric amount.
type Species struct {
	Element string
	Amount  float64
}

func (s Species) String() string {
	return s.Element + formatAmount(s.Amount)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// token is an element symbol followed by an optional amount.
type token struct {
	symbol string
	amount string
}

// tokenize splits a formula such as "La0.5Sr0.5MnO3" or "Sr1Fe1Ox" into
// element tokens. Characters other than element symbols and numbers, such
// as the "x" or "δ" of a non-stoichiometric oxygen content, end the
// current token.
func tokenize(formula string) ([]token, error) {
	var toks []token
	r := []rune(formula)
	for i := 0; i < len(r); {
		if !unicode.IsUpper(r[i]) {
			if len(toks) == 0 {
				return nil, fmt.Errorf("composition: invalid formula %q", formula)
			}
			i++
			continue
		}
		j := i + 1
		if j < len(r) && unicode.IsLower(r[j]) && AtomicNumber(string(r[i:j+1])) != 0 {
			j++
		}
		sym := string(r[i:j])
		if AtomicNumber(sym) == 0 {
			return nil, fmt.Errorf("composition: unknown element %q in %q", sym, formula)
		}
		k := j
		for k < len(r) && (unicode.IsDigit(r[k]) || r[k] == '.') {
			k++
		}
		toks = append(toks, token{symbol: sym, amount: string(r[j:k])})
		i = k
	}
	if len(toks) == 0 {
		return nil, fmt.Errorf("composition: empty formula")
	}
	return toks, nil
}

// Composition holds the amount of each element in a formula.
type Composition map[string]float64

// Parse parses a formula with explicit or implicit (1) amounts. Oxygen
// written as "Ox" counts as one atom. Text after an amount that is not an
// element, such as the "-δ" of "SrFeO3-δ", is ignored, so "O3-δ" counts as
// three atoms.
func Parse(formula string) (Composition, error) {
	toks, err := tokenize(formula)
	if err != nil {
		return nil, err
	}
	c := make(Composition)
	for _, t := range toks {
		v := 1.0
		if t.amount != "" {
			v, err = strconv.ParseFloat(t.amount, 64)
			if err != nil {
				return nil, fmt.Errorf("composition: invalid amount %q for %s in %q", t.amount, t.symbol, formula)
			}
		}
		c[t.symbol] += v
	}
	return c, nil
}

// MustParse is like Parse but panics on error.
func MustParse(formula string) Composition {
	c, err := Parse(formula)
	if err != nil {
		panic(err)
	}
	return c
}

// Elements returns the elements of c in alphabetical order.
func (c Composition) Elements() []string {
	e := make([]string, 0, len(c))
	for el := range c {
		e = append(e, el)
	}
	sort.Strings(e)
	return e
}

// NumAtoms returns the total number of atoms.
func (c Composition) NumAtoms() float64 {
	var n float64
	for _, v := range c {
		n += v
	}
	return n
}

// SameReduced reports whether c and o have the same reduced formula,
// i.e. the same elements in the same proportions.
func (c Composition) SameReduced(o Composition) bool {
	if len(c) != len(o) {
		return false
	}
	nc, no := c.NumAtoms(), o.NumAtoms()
	if nc == 0 || no == 0 {
		return false
	}
	for el, v := range c {
		w, ok := o[el]
		if !ok || math.Abs(v/nc-w/no) > 1e-8 {
			return false
		}
	}
	return true
}

// Equal reports whether c and o have exactly the same amounts.
func (c Composition) Equal(o Composition) bool {
	if len(c) != len(o) {
		return false
	}
	for el, v := range c {
		if w, ok := o[el]; !ok || v != w {
			return false
		}
	}
	return true
}

// Site positions within a Split.
const (
	A1 = iota
	A2
	B1
	B2
)

// Split holds up to two A-site and two B-site species of a perovskite
// solid solution. Absent species are nil.
type Split [4]*Species

// SplitFormula assigns the cations of a perovskite formula to the A and B
// sites in order of appearance. Alkali, alkaline earth and rare earth
// metals occupy the A site and the remaining transition metals the B site.
// Other elements, including oxygen, are ignored.
func SplitFormula(formula string) (Split, error) {
	var s Split
	toks, err := tokenize(formula)
	if err != nil {
		return s, err
	}
	for _, t := range toks {
		var lo, hi int
		switch {
		case IsASite(t.symbol):
			lo, hi = A1, A2
		case IsBSite(t.symbol):
			lo, hi = B1, B2
		default:
			continue
		}
		v := 1.0
		if t.amount != "" {
			if v, err = strconv.ParseFloat(t.amount, 64); err != nil {
				return s, fmt.Errorf("composition: invalid amount %q for %s in %q", t.amount, t.symbol, formula)
			}
		}
		sp := &Species{Element: t.symbol, Amount: v}
		switch {
		case s[lo] == nil:
			s[lo] = sp
		case s[hi] == nil:
			s[hi] = sp
		default:
			return s, fmt.Errorf("composition: more than two species on one site in %q", formula)
		}
	}
	return s, nil
}

// Elements returns the chemical system of s: the symbols of all present
// species followed by "O".
func (s Split) Elements() []string {
	var e []string
	for _, sp := range s {
		if sp != nil {
			e = append(e, sp.Element)
		}
	}
	return append(e, "O")
}

// Contains reports whether any species of s is the given element.
func (s Split) Contains(element string) bool {
	for _, sp := range s {
		if sp != nil && sp.Element == element {
			return true
		}
	}
	return false
}

// Scaled returns the cation formula of s with all amounts multiplied by
// factor and truncated to integers, followed by oxygen written as
// "O"+oxygen.
func (s Split) Scaled(factor float64, oxygen string) string {
	var b strings.Builder
	for _, sp := range s {
		if sp == nil {
			continue
		}
		b.WriteString(sp.Element)
		b.WriteString(strconv.Itoa(int(sp.Amount * factor)))
	}
	b.WriteString("O")
	b.WriteString(oxygen)
	return b.String()
}

// RemoveOnes returns the formula with stoichiometric amounts of 1 omitted
// and the oxygen written as "Ox", e.g. "Sr1Fe1Ox" becomes "SrFeOx".
func RemoveOnes(formula string) (string, error) {
	s, err := SplitFormula(formula)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, sp := range s {
		if sp == nil {
			continue
		}
		b.WriteString(sp.Element)
		if sp.Amount != 1 {
			b.WriteString(formatAmount(sp.Amount))
		}
	}
	b.WriteString("Ox")
	return b.String(), nil
}

// AddOnes returns the formula with an amount of 1 added after each element
// symbol that has none, e.g. "SrFeOx" becomes "Sr1Fe1Ox".
func AddOnes(formula string) string {
	r := []rune(formula)
	var b strings.Builder
	for i := 0; i < len(r); i++ {
		b.WriteRune(r[i])
		if !unicode.IsLetter(r[i]) || r[i] == 'x' || r[i] > unicode.MaxASCII {
			continue
		}
		if i+1 < len(r) && (unicode.IsLower(r[i+1]) || unicode.IsDigit(r[i+1]) || r[i+1] == '.') {
			continue
		}
		b.WriteRune('1')
	}
	return b.String()
}
