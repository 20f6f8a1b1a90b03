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
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/redoxthermo"
	"github.com/spatialmodel/redoxthermo/composition"
	"github.com/spatialmodel/redoxthermo/endmember"
	"github.com/spatialmodel/redoxthermo/energy"
	"github.com/spatialmodel/redoxthermo/mpdb"
	"github.com/spatialmodel/redoxthermo/report"
	"github.com/spatialmodel/redoxthermo/store"
)

// Solve writes the equilibrium of model m at ln p(O2) = iso and temperature
// temp to w.
func Solve(w io.Writer, m redoxthermo.Model, iso, temp float64, bracket [2]float64) error {
	s := redoxthermo.IsobarCurve(iso, []float64{temp}, m, bracket[0], bracket[1])
	return writeSolutions(w, s)
}

// writeSolutions writes one line per solution. Points without a solution
// are marked with "-".
func writeSolutions(w io.Writer, s []redoxthermo.Solution) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "T [K]\tln p(O2)\tdelta\tdH [kJ/mol]\tdS [J/mol/K]")
	for _, p := range s {
		if !p.Found {
			fmt.Fprintf(tw, "%g\t%g\t-\t-\t-\n", p.Temperature, p.Iso)
			continue
		}
		fmt.Fprintf(tw, "%g\t%g\t%.6g\t%.6g\t%.6g\n", p.Temperature, p.Iso, p.Delta, p.Enthalpy, p.Entropy)
	}
	return tw.Flush()
}

// Endmembers writes the endmember analysis of formula to w.
func Endmembers(ctx context.Context, w io.Writer, db mpdb.Database, formula string) error {
	set, err := endmember.Find(formula)
	if err != nil {
		return err
	}
	r, err := endmember.Reconcile(ctx, db, formula)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "Composition\t%s\n", formula)
	for i, m := range set.Members {
		fmt.Fprintf(tw, "Endmember %d\t%s\n", i+1, m)
	}
	fmt.Fprintf(tw, "A-site fraction\t%g\n", set.AConc)
	fmt.Fprintf(tw, "B-site fraction\t%g\n", set.BConc)
	fmt.Fprintf(tw, "Active species\t%s (%g)\n", r.ActiveSpecies, r.Active)
	fmt.Fprintf(tw, "Theoretical dH [J/mol]\t%g\n", r.Theoretical)
	fmt.Fprintf(tw, "dH min [J/mol]\t%g\n", r.DHMin)
	fmt.Fprintf(tw, "dH max [J/mol]\t%g\n", r.DHMax)
	fmt.Fprintf(tw, "Unstable\t%v\n", endmember.Unstable(composition.AddOnes(formula)))
	return tw.Flush()
}

// Energy ranks the records in recordsFile, writes the tables to the xlsx
// file outputFile, and, if bucketURL is not empty, saves the rankings in the
// store at bucketURL as a map from table key to the compositions in ranked
// order. The best material of each table is written to w.
func Energy(ctx context.Context, w io.Writer, recordsFile, outputFile, bucketURL string, o energy.Options) error {
	if o.Log == nil {
		o.Log = logrus.StandardLogger()
	}
	f, err := os.Open(os.ExpandEnv(recordsFile))
	if err != nil {
		return fmt.Errorf("redoxthermo: opening records: %v", err)
	}
	records, err := energy.ReadRecords(f)
	f.Close()
	if err != nil {
		return err
	}
	res, err := energy.Aggregate(records, o)
	if err != nil {
		return err
	}

	out, err := os.Create(os.ExpandEnv(outputFile))
	if err != nil {
		return fmt.Errorf("redoxthermo: creating output file: %v", err)
	}
	if err := report.WriteXLSX(out, res); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("redoxthermo: closing output file: %v", err)
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, t := range res.Tables {
		if len(t.Rows) == 0 {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%g\n", t.Name, t.Rows[0].Composition, t.Rows[0].Value)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if bucketURL == "" {
		return nil
	}
	s, err := store.Open(ctx, bucketURL)
	if err != nil {
		return err
	}
	defer s.Close()
	rankings := make(map[string][]string, len(res.Tables))
	for _, t := range res.Tables {
		for _, r := range t.Rows {
			rankings[t.Key] = append(rankings[t.Key], r.Composition)
		}
	}
	key, err := s.Save(ctx, rankings)
	if err != nil {
		return err
	}
	o.Log.WithFields(logrus.Fields{
		"key":    key,
		"bucket": bucketURL,
	}).Info("redoxthermo: saved results")
	return nil
}
