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
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func different(a, b, tolerance float64) bool {
	return 2*math.Abs(a-b)/math.Abs(a+b) > tolerance
}

func TestMechanicalEnvelope(t *testing.T) {
	var tests = []struct {
		p, want float64
	}{
		{p: 0.01, want: 86.2327199068585},
		{p: 1e-6, want: 5750.722089030029},
		{p: 0.7, want: 5.320564380660947},
	}
	for _, test := range tests {
		have := MechanicalEnvelope(test.p)
		if different(have, test.want, 1e-12) {
			t.Errorf("p=%g: have %g, want %g", test.p, have, test.want)
		}
	}
	for _, p := range []float64{9.9e-7, 0.71, 1, math.NaN()} {
		if have := MechanicalEnvelope(p); !math.IsInf(have, 1) {
			t.Errorf("p=%g: have %g, want +Inf", p, have)
		}
	}
}

func TestSteamGenerationEnergy(t *testing.T) {
	var tests = []struct {
		name          string
		t1, t2, ratio float64
		celsius       bool
		hRec, want    float64
	}{
		{name: "boiling", t1: 25, t2: 1000, ratio: 1, celsius: true, want: 81.65334227567907},
		{name: "recovery", t1: 25, t2: 1000, ratio: 2, celsius: true, hRec: 0.8, want: 8.165334227567906},
		{name: "steam only", t1: 400, t2: 1500, ratio: 1, want: 44.697972480333334},
		{name: "liquid only", t1: 20, t2: 90, ratio: 1, celsius: true, want: 5.278394731119169},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			have := SteamGenerationEnergy(test.t1, test.t2, test.ratio, test.celsius, test.hRec)
			if different(have, test.want, 1e-10) {
				t.Errorf("have %g, want %g", have, test.want)
			}
		})
	}
}

func TestParseProcess(t *testing.T) {
	for in, want := range map[string]Process{
		"Air Separation":  AirSeparation,
		"water_splitting": WaterSplitting,
		"CS":              CO2Splitting,
		" co2 splitting ": CO2Splitting,
	} {
		have, err := ParseProcess(in)
		if err != nil {
			t.Fatal(err)
		}
		if have != want {
			t.Errorf("%q: have %v, want %v", in, have, want)
		}
	}
	if _, err := ParseProcess("methane reforming"); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("have %v, want %v", err, ErrInvalidConfiguration)
	}
	if _, err := ParseHeatingValue("medium"); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("have %v, want %v", err, ErrInvalidConfiguration)
	}
	if hv, _ := ParseHeatingValue("low"); hv != LowerHeatingValue {
		t.Errorf("have %v, want low", hv)
	}
}

func TestDatasetID(t *testing.T) {
	have := DatasetID(AirSeparation, 500, 1000, 1e-6, 0.21, "Theo", 20)
	want := "AS_500_1000_1e-06_0.21_Theo_20.0"
	if have != want {
		t.Errorf("have %s, want %s", have, want)
	}
}

var (
	recordFe = Record{
		Composition: "Sr1Fe1Ox", ChemicalEnergy: 0.25, SensibleEnergy: 50,
		TOx: 873.15, TRed: 1673.15, Delta1: 0.05, Delta2: 0.15,
		GProdKgRed: 8.7, LProdKgRed: 6.1, MassRedox: 1.6,
		MolMassOx: 183.5, MolProdMolRed: 0.1, POx: 0.21, PRed: 0.001,
	}
	recordMn = Record{
		Composition: "Ca1Mn1Ox", ChemicalEnergy: 0.1, SensibleEnergy: 30,
		TOx: 873.15, TRed: 1673.15, Delta1: 0.01, Delta2: 0.03,
		GProdKgRed: 3.2, LProdKgRed: 2.2, MassRedox: 0.32,
		MolMassOx: 200, MolProdMolRed: 0.02, POx: 0.21, PRed: 0.001,
	}
)

func TestCalculate(t *testing.T) {
	o := DefaultOptions(WaterSplitting)
	o.HeatRecovery = 0.5
	b, err := o.Calculate(recordFe)
	if err != nil {
		t.Fatal(err)
	}
	want := [unitSystems]Terms{
		{Total: 10074.690049088125, Chemical: 10023.05660387574, Sensible: 25, Pumping: 25.00037836687134, Steam: 1.6330668455135813},
		{Total: 54902.943046801774, Chemical: 54621.56187398224, Sensible: 136.23978201634878, Pumping: 136.24184396115172, Steam: 8.899546842035866},
		{Total: 15250.817513000493, Chemical: 15172.656076106177, Sensible: 37.84438389343022, Pumping: 37.84495665587548, Steam: 2.472096345009963},
		{Total: 100746.90049088126, Chemical: 100230.56603875742, Sensible: 250, Pumping: 250.00378366871342, Steam: 16.330668455135815},
		{Total: 4118.001246306203, Chemical: 4096.896220672692, Sensible: 10.218679746576743, Pumping: 10.21883440297214, Steam: 0.6675114839622242},
		{Total: 1143.8892350850563, Chemical: 1138.0267279646366, Sensible: 2.838522151826873, Pumping: 2.8385651119367057, Steam: 0.18541985665617336},
	}
	for i, w := range want {
		h := b.Energy[i]
		for _, c := range []struct {
			name       string
			have, want float64
		}{
			{"total", h.Total, w.Total},
			{"chemical", h.Chemical, w.Chemical},
			{"sensible", h.Sensible, w.Sensible},
			{"pumping", h.Pumping, w.Pumping},
			{"steam", h.Steam, w.Steam},
		} {
			if different(c.have, c.want, 1e-9) {
				t.Errorf("unit system %d %s: have %g, want %g", i, c.name, c.have, c.want)
			}
		}
	}
	if different(b.Efficiency, 0.28390955811676705, 1e-9) {
		t.Errorf("efficiency: have %g, want 0.28390955811676705", b.Efficiency)
	}
	if b.Display != "SrFeOx" {
		t.Errorf("display: have %s, want SrFeOx", b.Display)
	}
}

func TestCalculateAirSeparation(t *testing.T) {
	o := DefaultOptions(AirSeparation)
	o.HeatRecovery = 0.5
	b, err := o.Calculate(recordFe)
	if err != nil {
		t.Fatal(err)
	}
	if b.Energy[0].Steam != 0 {
		t.Errorf("steam: have %g, want 0", b.Energy[0].Steam)
	}
	if !math.IsNaN(b.Efficiency) {
		t.Errorf("efficiency: have %g, want NaN", b.Efficiency)
	}
	// Two mol O per mol O2.
	if different(b.Energy[4].Total, 143.06182576486518, 1e-9) {
		t.Errorf("kJ/L: have %g, want 143.06182576486518", b.Energy[4].Total)
	}

	o.PumpEnergy = 2.5
	o.HeatRecovery = 0
	b, err = o.Calculate(recordFe)
	if err != nil {
		t.Fatal(err)
	}
	if different(b.Energy[0].Pumping, 0.45875, 1e-12) {
		t.Errorf("pumping: have %g, want 0.45875", b.Energy[0].Pumping)
	}
	if different(b.Energy[1].Pumping, 2.5, 1e-12) {
		t.Errorf("pumping per kg: have %g, want 2.5", b.Energy[1].Pumping)
	}
}

func TestCalculateCO2Splitting(t *testing.T) {
	o := DefaultOptions(CO2Splitting)
	o.HeatRecovery = 0.5
	b, err := o.Calculate(recordMn)
	if err != nil {
		t.Fatal(err)
	}
	if different(b.Energy[0].Total, 2770.9012275529394, 1e-9) {
		t.Errorf("have %g, want 2770.9012275529394", b.Energy[0].Total)
	}
	if b.Energy[0].Steam != 0 {
		t.Errorf("steam: have %g, want 0", b.Energy[0].Steam)
	}
}

func TestAggregateUnstable(t *testing.T) {
	unstable := recordMn
	unstable.Composition = "Ba1Mn1Ox"
	unstable.Unstable = true
	records := []Record{recordFe, unstable, recordMn}

	o := DefaultOptions(AirSeparation)
	o.HeatRecovery = 0.5
	o.Workers = 2
	logger, hook := test.NewNullLogger()
	o.Log = logger
	res, err := Aggregate(records, o)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Tables) != 12 {
		t.Fatalf("have %d tables, want 12", len(res.Tables))
	}
	if len(hook.AllEntries()) == 0 || hook.LastEntry().Level != logrus.InfoLevel {
		t.Error("missing summary log entry")
	}
	for _, tbl := range res.Tables {
		if len(tbl.Rows) != len(records) {
			t.Fatalf("%s: have %d rows, want %d", tbl.Key, len(tbl.Rows), len(records))
		}
		if tbl.Key == "efficiency" {
			if tbl.Sorted {
				t.Error("efficiency table should not be sorted for air separation")
			}
			for i, r := range tbl.Rows {
				if !math.IsNaN(r.Value) {
					t.Errorf("efficiency row %d: have %g, want NaN", i, r.Value)
				}
			}
			continue
		}
		last := tbl.Rows[len(tbl.Rows)-1]
		if last.Composition != "BaMnOx" {
			t.Errorf("%s: last row is %s, want BaMnOx", tbl.Key, last.Composition)
		}
		wantInf := -1
		if tbl.Ascending {
			wantInf = 1
		}
		if !math.IsInf(last.Value, wantInf) {
			t.Errorf("%s: last value %g, want %d Inf", tbl.Key, last.Value, wantInf)
		}
	}

	energy := res.Table("energy_per_mol_redox")
	if energy.Rows[0].Composition != "CaMnOx" || energy.Rows[1].Composition != "SrFeOx" {
		t.Errorf("energy ranking: have %s, %s", energy.Rows[0].Composition, energy.Rows[1].Composition)
	}
	if different(energy.Rows[0].Value, 70.00007567337427, 1e-9) {
		t.Errorf("energy: have %g, want 70.00007567337427", energy.Rows[0].Value)
	}
	if energy.Rows[2].Terms == nil || different(energy.Rows[2].Terms.Total, 70.00007567337427, 1e-9) {
		t.Error("terms of sentineled rows should be kept")
	}
	prod := res.Table("mol_product_per_mol")
	if prod.Rows[0].Composition != "SrFeOx" || prod.Rows[0].Value != 0.1 {
		t.Errorf("production ranking: have %s %g", prod.Rows[0].Composition, prod.Rows[0].Value)
	}
	if b := res.Breakdowns[1]; !b.Invalid || b.Composition != "Ba1Mn1Ox" {
		t.Errorf("breakdowns should be in input order: %+v", b)
	}
	if res.Table("no_such_table") != nil {
		t.Error("unknown table should be nil")
	}
}

func TestAggregateTies(t *testing.T) {
	unstable := recordMn
	unstable.Composition = "Ba1Mn1Ox"
	unstable.Unstable = true

	o := DefaultOptions(AirSeparation)
	o.HeatRecovery = 0.5
	o.ExcludeUnstable = false
	o.Log = logrus.New()
	res, err := Aggregate([]Record{recordMn, recordFe, unstable}, o)
	if err != nil {
		t.Fatal(err)
	}
	rows := res.Table("energy_per_kg").Rows
	var have []string
	for _, r := range rows {
		have = append(have, r.Composition)
	}
	want := "BaMnOx CaMnOx SrFeOx"
	if strings.Join(have, " ") != want {
		t.Errorf("have %v, want %s", have, want)
	}
}

func TestAggregateWaterSplittingEfficiency(t *testing.T) {
	o := DefaultOptions(WaterSplitting)
	o.HeatRecovery = 0.5
	o.Log = logrus.New()
	res, err := Aggregate([]Record{recordMn, recordFe}, o)
	if err != nil {
		t.Fatal(err)
	}
	eff := res.Table("efficiency")
	if !eff.Sorted || eff.Ascending {
		t.Fatal("efficiency should be sorted in descending order")
	}
	if eff.Rows[0].Composition != "SrFeOx" || different(eff.Rows[0].Value, 0.28390955811676705, 1e-9) {
		t.Errorf("have %s %g", eff.Rows[0].Composition, eff.Rows[0].Value)
	}
	if different(eff.Rows[1].Value, 0.27906217517811377, 1e-9) {
		t.Errorf("have %g, want 0.27906217517811377", eff.Rows[1].Value)
	}
	if name := res.Table("energy_per_liter").Name; name != "kJ/L of H2" {
		t.Errorf("table name: have %s", name)
	}
}

func TestAggregateBadRecord(t *testing.T) {
	bad := recordFe
	bad.Composition = "Sr1Ca1Ba1Fe1Ox"
	o := DefaultOptions(AirSeparation)
	logger, hook := test.NewNullLogger()
	o.Log = logger
	res, err := Aggregate([]Record{bad, recordMn}, o)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Breakdowns[0].Invalid {
		t.Error("record with invalid composition should be excluded")
	}
	if rows := res.Table("energy_per_mol_redox").Rows; rows[1].Composition != bad.Composition || !math.IsInf(rows[1].Value, 1) {
		t.Errorf("have %+v", rows[1])
	}
	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warned = true
		}
	}
	if !warned {
		t.Error("missing warning")
	}
}

func TestAggregateInvalidOptions(t *testing.T) {
	for name, f := range map[string]func(o *Options){
		"process":       func(o *Options) { o.Process = Process(7) },
		"heating value": func(o *Options) { o.HeatingValue = HeatingValue(3) },
		"heat recovery": func(o *Options) { o.HeatRecovery = 1.5 },
		"ratio":         func(o *Options) { o.ProductRatio = 0 },
		"pump":          func(o *Options) { o.PumpEnergy = -2 },
		"metric":        func(o *Options) { o.Metrics = []Metric{{Name: "x", Expression: "foo * 2"}} },
		"metric syntax": func(o *Options) { o.Metrics = []Metric{{Name: "x", Expression: "total +* 2"}} },
	} {
		t.Run(name, func(t *testing.T) {
			o := DefaultOptions(WaterSplitting)
			f(&o)
			if _, err := Aggregate([]Record{recordFe}, o); !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("have %v, want %v", err, ErrInvalidConfiguration)
			}
		})
	}
}

func TestAggregateMetrics(t *testing.T) {
	o := DefaultOptions(AirSeparation)
	o.HeatRecovery = 0.5
	o.Log = logrus.New()
	o.Metrics = []Metric{
		{Name: "pumping_share", Expression: "pumping / total", Ascending: true},
		{Name: "log_delta", Expression: "log10(delta_redox)"},
	}
	res, err := Aggregate([]Record{recordFe, recordMn}, o)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Tables) != 14 {
		t.Fatalf("have %d tables, want 14", len(res.Tables))
	}
	share := res.Table("pumping_share")
	if share.Rows[0].Composition != "CaMnOx" {
		t.Errorf("have %s first, want CaMnOx", share.Rows[0].Composition)
	}
	want := 5.000075673374268 / 70.00007567337427
	if different(share.Rows[0].Value, want, 1e-9) {
		t.Errorf("have %g, want %g", share.Rows[0].Value, want)
	}
	ld := res.Table("log_delta")
	if ld.Rows[0].Composition != "SrFeOx" || different(ld.Rows[0].Value, -1, 1e-9) {
		t.Errorf("have %s %g", ld.Rows[0].Composition, ld.Rows[0].Value)
	}
}

func TestReadRecords(t *testing.T) {
	const data = `
[[record]]
compstr = "Sr1Fe1Ox"
chemical_energy = 0.25
sensible_energy = 50.0
t_ox = 873.15
t_red = 1673.15
delta_1 = 0.05
delta_2 = 0.15
mol_mass_ox = 183.5
mol_prod_mol_red = 0.1
p_red = 0.001

[[record]]
compstr = "Ba1Mn1Ox"
unstable = true
`
	rs, err := ReadRecords(strings.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if len(rs) != 2 {
		t.Fatalf("have %d records, want 2", len(rs))
	}
	if rs[0].MolMassOx != 183.5 || rs[0].Delta2 != 0.15 || rs[0].PRed != 0.001 {
		t.Errorf("have %+v", rs[0])
	}
	if !rs[1].Unstable || rs[1].Composition != "Ba1Mn1Ox" {
		t.Errorf("have %+v", rs[1])
	}
	if _, err := ReadRecords(strings.NewReader("[[record]\n")); err == nil {
		t.Error("want error for invalid TOML")
	}
}
