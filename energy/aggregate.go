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
	"math"
	"runtime"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/redoxthermo/composition"
	"gonum.org/v1/gonum/floats"
)

// UseMechanicalEnvelope is the value of Options.PumpEnergy that selects
// MechanicalEnvelope for the pumping energy.
const UseMechanicalEnvelope = -1

// Options configure Aggregate.
type Options struct {
	Process Process

	// PumpEnergy is the pumping energy [kJ/kg of redox material], or
	// UseMechanicalEnvelope.
	PumpEnergy float64

	// WaterFeedTemp is the temperature of the water fed to the steam
	// generator.
	WaterFeedTemp float64

	// HeatRecovery and SteamHeatRecovery are the fractions of heat that
	// are recovered from the redox material and from the steam.
	HeatRecovery, SteamHeatRecovery float64

	HeatingValue HeatingValue

	// ProductRatio is the H2/H2O or CO/CO2 ratio of the product stream.
	ProductRatio float64

	// ExcludeUnstable ranks unstable materials last in all tables.
	ExcludeUnstable bool

	// Celsius specifies that WaterFeedTemp is in °C instead of K.
	Celsius bool

	// ExperimentalData specifies that the chemical energy of the records
	// comes from experimental data.
	ExperimentalData bool

	// Metrics are additional user-defined ranking tables.
	Metrics []Metric

	// Workers is the number of records processed in parallel. If it is
	// zero, runtime.GOMAXPROCS(0) is used.
	Workers int

	Log logrus.FieldLogger
}

// DefaultOptions returns the default options for process p.
func DefaultOptions(p Process) Options {
	return Options{
		Process:           p,
		PumpEnergy:        UseMechanicalEnvelope,
		WaterFeedTemp:     25,
		HeatRecovery:      0,
		SteamHeatRecovery: 0.8,
		HeatingValue:      HigherHeatingValue,
		ProductRatio:      1,
		ExcludeUnstable:   true,
		Celsius:           true,
	}
}

func (o *Options) validate() error {
	if !o.Process.valid() {
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, o.Process)
	}
	if _, err := o.HeatingValue.MJPerKg(); err != nil {
		return err
	}
	for _, h := range []float64{o.HeatRecovery, o.SteamHeatRecovery} {
		if h < 0 || h > 1 || math.IsNaN(h) {
			return fmt.Errorf("%w: heat recovery %g is not between 0 and 1", ErrInvalidConfiguration, h)
		}
	}
	if o.Process == WaterSplitting && !(o.ProductRatio > 0) {
		return fmt.Errorf("%w: product ratio %g must be positive", ErrInvalidConfiguration, o.ProductRatio)
	}
	if o.PumpEnergy < 0 && o.PumpEnergy != UseMechanicalEnvelope {
		return fmt.Errorf("%w: pump energy %g", ErrInvalidConfiguration, o.PumpEnergy)
	}
	return nil
}

// Terms are the contributions to the energy demand of a redox cycle, all in
// the same unit.
type Terms struct {
	Total, Chemical, Sensible, Pumping, Steam float64
}

func (t Terms) scale(f float64) Terms {
	return Terms{
		Total:    t.Total * f,
		Chemical: t.Chemical * f,
		Sensible: t.Sensible * f,
		Pumping:  t.Pumping * f,
		Steam:    t.Steam * f,
	}
}

// Breakdown is the calculated energy demand of one record.
type Breakdown struct {
	Record

	// Display is the composition without unit stoichiometries.
	Display string

	// Energy holds the energy terms in kJ/mol redox material, kJ/kg redox
	// material, Wh/kg redox material, kJ/mol product, kJ/L product and
	// Wh/L product.
	Energy [unitSystems]Terms

	// Efficiency is the heat to fuel efficiency [%] for water splitting and
	// NaN otherwise.
	Efficiency float64

	// Invalid is true if the record is excluded from the ranking.
	Invalid bool
}

// DeltaRedox is the change in non-stoichiometry between the oxidation and
// reduction conditions.
func (b *Breakdown) DeltaRedox() float64 { return b.Delta2 - b.Delta1 }

// Calculate returns the energy breakdown of record r.
func (o *Options) Calculate(r Record) (Breakdown, error) {
	b := Breakdown{
		Record:     r,
		Display:    r.Composition,
		Efficiency: math.NaN(),
		Invalid:    o.ExcludeUnstable && r.Unstable,
	}
	display, err := composition.RemoveOnes(r.Composition)
	if err != nil {
		return b, fmt.Errorf("energy: %w", err)
	}
	b.Display = display
	tMean := (r.TOx + r.TRed) / 2

	chemical := r.ChemicalEnergy * 1000
	dhProduct := ProductEnthalpy(o.Process, tMean) * r.MolProdMolRed
	chemical -= (chemical + dhProduct*1000) * o.HeatRecovery
	if o.ExperimentalData {
		chemical /= 1000
	}

	var pumping float64
	if o.PumpEnergy != UseMechanicalEnvelope {
		pumping = o.PumpEnergy * r.MolMassOx / 1000
	} else {
		pumping = MechanicalEnvelope(r.PRed) * r.MolProdMolRed
	}

	var steam float64
	if o.Process == WaterSplitting && o.SteamHeatRecovery != 1 {
		t2 := tMean
		if o.Celsius {
			t2 -= 273.15
		}
		steam = r.MolProdMolRed * SteamGenerationEnergy(o.WaterFeedTemp, t2, o.ProductRatio, o.Celsius, o.SteamHeatRecovery)
	}

	t := Terms{
		Chemical: chemical,
		Sensible: r.SensibleEnergy * (1 - o.HeatRecovery),
		Pumping:  pumping,
		Steam:    steam,
	}
	t.Total = floats.Sum([]float64{t.Chemical, t.Sensible, t.Pumping, t.Steam})

	f, err := unitFactors(o.Process, r)
	if err != nil {
		return b, err
	}
	for i := range b.Energy {
		b.Energy[i] = t.scale(f[i])
	}

	if o.Process == WaterSplitting {
		hv, err := o.HeatingValue.MJPerKg()
		if err != nil {
			return b, err
		}
		// kJ/mol H2 to MJ/kg H2
		const molarMassH2 = 2.016
		b.Efficiency = hv / (b.Energy[3].Total / molarMassH2) * 100
	}
	return b, nil
}

// Row is one material in a ranked table.
type Row struct {
	Composition string

	// Value is the ranked quantity. Unusable values are replaced with +Inf
	// in ascending tables and -Inf in descending tables.
	Value float64

	// Terms is the energy breakdown for energy tables.
	Terms *Terms
}

// Table is a ranking of all records by one quantity.
type Table struct {
	// Key is a short identifier of the table, e.g. "energy_per_kg".
	Key string

	// Name is a description of the quantity and its unit.
	Name string

	// Ascending is true if lower values rank first.
	Ascending bool

	// Sorted is false for tables that keep the input order.
	Sorted bool

	Rows []Row
}

// Result holds the breakdown of every record, in input order, and the
// ranked tables.
type Result struct {
	Process    Process
	Breakdowns []Breakdown
	Tables     []*Table
}

// Table returns the table with the given key, or nil.
func (r *Result) Table(key string) *Table {
	for _, t := range r.Tables {
		if t.Key == key {
			return t
		}
	}
	return nil
}

// Aggregate calculates the energy demand of each record and ranks the
// materials in twelve tables: total energy per mol redox material, per kg
// and per Wh/kg of redox material, per mol, kJ/L and Wh/L of product,
// heat to fuel efficiency, and the amount, volume and mass of product,
// the change in non-stoichiometry and the mass change. Additional tables
// are added for o.Metrics.
//
// Records that are excluded or whose values are unusable are not removed,
// but ranked last.
func Aggregate(records []Record, o Options) (*Result, error) {
	if o.Log == nil {
		o.Log = logrus.StandardLogger()
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	metrics, err := compileMetrics(o.Metrics)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Process:    o.Process,
		Breakdowns: make([]Breakdown, len(records)),
	}
	errs := make([]error, len(records))
	nprocs := o.Workers
	if nprocs <= 0 {
		nprocs = runtime.GOMAXPROCS(0)
	}
	var wg sync.WaitGroup
	wg.Add(nprocs)
	for pp := 0; pp < nprocs; pp++ {
		go func(pp int) {
			for i := pp; i < len(records); i += nprocs {
				res.Breakdowns[i], errs[i] = o.Calculate(records[i])
			}
			wg.Done()
		}(pp)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			o.Log.WithFields(logrus.Fields{
				"composition": records[i].Composition,
				"error":       err,
			}).Warn("energy: excluding record")
			res.Breakdowns[i].Invalid = true
		}
	}

	res.Tables = tables(o.Process, res.Breakdowns)
	for _, m := range metrics {
		res.Tables = append(res.Tables, m.table(res.Breakdowns, o.Log))
	}
	for _, t := range res.Tables {
		if t.Sorted {
			t.sort()
		}
	}
	o.Log.WithFields(logrus.Fields{
		"process": o.Process,
		"records": len(records),
		"tables":  len(res.Tables),
	}).Info("energy: aggregated records")
	return res, nil
}

func highSentinel(v float64, invalid bool) float64 {
	if invalid || v < 0 || math.IsNaN(v) {
		return math.Inf(1)
	}
	return v
}

func lowSentinel(v float64, invalid bool) float64 {
	if invalid || v < 0 || math.IsNaN(v) {
		return math.Inf(-1)
	}
	return v
}

func tables(p Process, bs []Breakdown) []*Table {
	prod, prodAlt := p.Product(), p.MolarProduct()
	energyNames := [unitSystems][2]string{
		{"energy_per_mol_redox", "kJ/mol redox material"},
		{"energy_per_kg", "kJ/kg redox material"},
		{"wh_per_kg", "Wh/kg redox material"},
		{"energy_per_mol_product", "kJ/mol of " + prodAlt},
		{"energy_per_liter", "kJ/L of " + prod},
		{"wh_per_liter", "Wh/L of " + prod},
	}
	var out []*Table
	for u, n := range energyNames {
		t := &Table{Key: n[0], Name: n[1], Ascending: true, Sorted: true, Rows: make([]Row, len(bs))}
		for i := range bs {
			terms := bs[i].Energy[u]
			t.Rows[i] = Row{
				Composition: bs[i].Display,
				Value:       highSentinel(terms.Total, bs[i].Invalid),
				Terms:       &terms,
			}
		}
		out = append(out, t)
	}

	eff := &Table{
		Key:    "efficiency",
		Name:   "Heat to fuel efficiency in % (only valid for Water Splitting)",
		Sorted: p == WaterSplitting,
		Rows:   make([]Row, len(bs)),
	}
	for i := range bs {
		v := bs[i].Efficiency
		if p == WaterSplitting {
			v = lowSentinel(v, bs[i].Invalid)
		}
		eff.Rows[i] = Row{Composition: bs[i].Display, Value: v}
	}
	out = append(out, eff)

	production := []struct {
		key, name string
		f         func(b *Breakdown) float64
	}{
		{"mol_product_per_mol", "mol " + prodAlt + " per mol redox material", func(b *Breakdown) float64 { return b.MolProdMolRed }},
		{"liter_product_per_kg", "L " + prod + " per kg redox material", func(b *Breakdown) float64 { return b.LProdKgRed }},
		{"gram_product_per_kg", "g " + prod + " per kg redox material", func(b *Breakdown) float64 { return b.GProdKgRed }},
		{"delta_redox", "Change in non-stoichiometry between T_ox and T_red", (*Breakdown).DeltaRedox},
		{"mass_change", "Mass change between T_ox and T_red", func(b *Breakdown) float64 { return b.MassRedox }},
	}
	for _, q := range production {
		t := &Table{Key: q.key, Name: q.name, Sorted: true, Rows: make([]Row, len(bs))}
		for i := range bs {
			t.Rows[i] = Row{
				Composition: bs[i].Display,
				Value:       lowSentinel(q.f(&bs[i]), bs[i].Invalid),
			}
		}
		out = append(out, t)
	}
	return out
}

// sort orders the rows by value, breaking ties by composition.
func (t *Table) sort() {
	sort.SliceStable(t.Rows, func(i, j int) bool {
		a, b := t.Rows[i], t.Rows[j]
		if a.Value == b.Value {
			return a.Composition < b.Composition
		}
		if t.Ascending {
			return a.Value < b.Value
		}
		return a.Value > b.Value
	})
}
