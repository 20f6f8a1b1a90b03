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

	"github.com/Knetic/govaluate"
	"github.com/sirupsen/logrus"
)

// Metric is a user-defined ranking quantity calculated from the variables
// of each record, e.g.
//
//	Metric{Name: "steam_fraction", Expression: "steam / total", Ascending: true}
//
// Available variables are:
//
//	total, chemical, sensible, pumping, steam [kJ/mol redox material],
//	energy_per_kg, wh_per_kg, energy_per_mol_product, energy_per_liter,
//	wh_per_liter, efficiency, mol_product, liter_product, gram_product,
//	delta_redox, mass_change, mol_mass, t_ox, t_red, p_ox, p_red and
//	unstable (1 or 0).
//
// Available functions are exp, log, log10, sqrt, min and max.
type Metric struct {
	Name       string `toml:"name" json:"name"`
	Expression string `toml:"expression" json:"expression"`
	Ascending  bool   `toml:"ascending" json:"ascending"`
}

var metricFunctions = map[string]govaluate.ExpressionFunction{
	"exp":   unaryFunction("exp", math.Exp),
	"log":   unaryFunction("log", math.Log),
	"log10": unaryFunction("log10", math.Log10),
	"sqrt":  unaryFunction("sqrt", math.Sqrt),
	"min":   binaryFunction("min", math.Min),
	"max":   binaryFunction("max", math.Max),
}

func unaryFunction(name string, f func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("energy: got %d arguments for function '%s', but needs 1", len(args), name)
		}
		x, ok := args[0].(float64)
		if !ok {
			return nil, fmt.Errorf("energy: invalid argument %v for function '%s'", args[0], name)
		}
		return f(x), nil
	}
}

func binaryFunction(name string, f func(a, b float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("energy: got %d arguments for function '%s', but needs 2", len(args), name)
		}
		a, okA := args[0].(float64)
		b, okB := args[1].(float64)
		if !okA || !okB {
			return nil, fmt.Errorf("energy: invalid arguments %v for function '%s'", args, name)
		}
		return f(a, b), nil
	}
}

// metricVariables returns the variables of breakdown b.
func metricVariables(b *Breakdown) map[string]interface{} {
	var unstable float64
	if b.Unstable {
		unstable = 1
	}
	return map[string]interface{}{
		"total":                  b.Energy[0].Total,
		"chemical":               b.Energy[0].Chemical,
		"sensible":               b.Energy[0].Sensible,
		"pumping":                b.Energy[0].Pumping,
		"steam":                  b.Energy[0].Steam,
		"energy_per_kg":          b.Energy[1].Total,
		"wh_per_kg":              b.Energy[2].Total,
		"energy_per_mol_product": b.Energy[3].Total,
		"energy_per_liter":       b.Energy[4].Total,
		"wh_per_liter":           b.Energy[5].Total,
		"efficiency":             b.Efficiency,
		"mol_product":            b.MolProdMolRed,
		"liter_product":          b.LProdKgRed,
		"gram_product":           b.GProdKgRed,
		"delta_redox":            b.DeltaRedox(),
		"mass_change":            b.MassRedox,
		"mol_mass":               b.MolMassOx,
		"t_ox":                   b.TOx,
		"t_red":                  b.TRed,
		"p_ox":                   b.POx,
		"p_red":                  b.PRed,
		"unstable":               unstable,
	}
}

type compiledMetric struct {
	Metric
	expr *govaluate.EvaluableExpression
}

// compileMetrics parses the metric expressions and checks that they only
// use known variables.
func compileMetrics(ms []Metric) ([]compiledMetric, error) {
	known := metricVariables(&Breakdown{})
	out := make([]compiledMetric, len(ms))
	for i, m := range ms {
		if m.Name == "" {
			return nil, fmt.Errorf("%w: metric %d has no name", ErrInvalidConfiguration, i)
		}
		expr, err := govaluate.NewEvaluableExpressionWithFunctions(m.Expression, metricFunctions)
		if err != nil {
			return nil, fmt.Errorf("%w: metric %s: %v", ErrInvalidConfiguration, m.Name, err)
		}
		for _, v := range expr.Vars() {
			if _, ok := known[v]; !ok {
				return nil, fmt.Errorf("%w: metric %s: undefined variable name '%s'", ErrInvalidConfiguration, m.Name, v)
			}
		}
		out[i] = compiledMetric{Metric: m, expr: expr}
	}
	return out, nil
}

// table evaluates the metric for each breakdown. Records for which the
// expression cannot be evaluated rank last.
func (m compiledMetric) table(bs []Breakdown, log logrus.FieldLogger) *Table {
	t := &Table{Key: m.Name, Name: m.Expression, Ascending: m.Ascending, Sorted: true, Rows: make([]Row, len(bs))}
	last := math.Inf(-1)
	if m.Ascending {
		last = math.Inf(1)
	}
	for i := range bs {
		v := math.NaN()
		r, err := m.expr.Evaluate(metricVariables(&bs[i]))
		if err != nil {
			log.WithFields(logrus.Fields{
				"metric":      m.Name,
				"composition": bs[i].Composition,
				"error":       err,
			}).Warn("energy: evaluating metric")
		} else if f, ok := r.(float64); ok {
			v = f
		}
		if bs[i].Invalid || math.IsNaN(v) {
			v = last
		}
		t.Rows[i] = Row{Composition: bs[i].Display, Value: v}
	}
	return t
}
