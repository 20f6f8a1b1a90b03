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

// Package energy calculates the energy demand of solar thermochemical
// redox cycles for air separation, water splitting and CO2 splitting, and
// ranks candidate materials by it.
package energy

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidConfiguration is returned for invalid aggregation options.
var ErrInvalidConfiguration = errors.New("energy: invalid configuration")

// Process is a thermochemical redox process.
type Process int

// These are the supported processes.
const (
	AirSeparation Process = iota
	WaterSplitting
	CO2Splitting
)

var processNames = []string{"Air Separation", "Water Splitting", "CO2 Splitting"}

func (p Process) String() string {
	if p < 0 || int(p) >= len(processNames) {
		return fmt.Sprintf("Process(%d)", int(p))
	}
	return processNames[p]
}

func (p Process) valid() bool {
	return p >= AirSeparation && p <= CO2Splitting
}

// ParseProcess returns the process with the given name, e.g.
// "Water Splitting", "water_splitting" or "WS".
func ParseProcess(s string) (Process, error) {
	n := strings.ToLower(strings.NewReplacer("_", " ", "-", " ").Replace(strings.TrimSpace(s)))
	switch n {
	case "air separation", "as":
		return AirSeparation, nil
	case "water splitting", "ws":
		return WaterSplitting, nil
	case "co2 splitting", "cs":
		return CO2Splitting, nil
	}
	return 0, fmt.Errorf("%w: unknown process %q", ErrInvalidConfiguration, s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Process) UnmarshalText(text []byte) error {
	v, err := ParseProcess(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Product returns the gaseous product of the process as it is measured
// by volume and mass: O2, H2 or CO.
func (p Process) Product() string {
	switch p {
	case WaterSplitting:
		return "H2"
	case CO2Splitting:
		return "CO"
	}
	return "O2"
}

// MolarProduct returns the product of the process per mol of exchanged
// oxygen: O, H2 or CO.
func (p Process) MolarProduct() string {
	if p == AirSeparation {
		return "O"
	}
	return p.Product()
}

// abbreviation returns the short name of the process.
func (p Process) abbreviation() string {
	switch p {
	case WaterSplitting:
		return "WS"
	case CO2Splitting:
		return "CS"
	}
	return "AS"
}

// HeatingValue selects the heating value of hydrogen used for efficiencies.
type HeatingValue int

// These are the heating values of hydrogen.
const (
	HigherHeatingValue HeatingValue = iota
	LowerHeatingValue
)

// ParseHeatingValue returns the heating value named "high" or "low".
func ParseHeatingValue(s string) (HeatingValue, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high", "hhv":
		return HigherHeatingValue, nil
	case "low", "lhv":
		return LowerHeatingValue, nil
	}
	return 0, fmt.Errorf("%w: heating value must be either 'high' or 'low', not %q", ErrInvalidConfiguration, s)
}

func (h HeatingValue) String() string {
	switch h {
	case HigherHeatingValue:
		return "high"
	case LowerHeatingValue:
		return "low"
	}
	return fmt.Sprintf("HeatingValue(%d)", int(h))
}

// MJPerKg returns the heating value of hydrogen [MJ/kg].
func (h HeatingValue) MJPerKg() (float64, error) {
	switch h {
	case HigherHeatingValue:
		return 141.88, nil
	case LowerHeatingValue:
		return 119.96, nil
	}
	return 0, fmt.Errorf("%w: heating value %d", ErrInvalidConfiguration, int(h))
}

// DatasetID returns the identifier of a precomputed energy dataset for the
// given process, oxidation and reduction temperatures [°C], oxygen
// partial pressures [bar], data source and number of enthalpy steps, e.g.
// "AS_500_1000_1e-06_0.21_Theo_20.0".
func DatasetID(p Process, tOx, tRed, pOx, pRed float64, source string, steps int) string {
	g := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return strings.Join([]string{
		p.abbreviation(), g(tOx), g(tRed), g(pOx), g(pRed), source,
		strconv.FormatFloat(float64(steps), 'f', 1, 64),
	}, "_")
}
