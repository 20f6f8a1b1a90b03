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

// Package report writes energy rankings to spreadsheets.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spatialmodel/redoxthermo/energy"
	"github.com/tealeg/xlsx"
)

// maxSheetName is the maximum length of a worksheet name.
const maxSheetName = 31

var sheetNameReplacer = strings.NewReplacer(
	"[", "_", "]", "_", ":", "_", "*", "_", "?", "_", "/", "_", `\`, "_",
)

// SheetName returns a valid worksheet name for a table key.
func SheetName(key string) string {
	s := sheetNameReplacer.Replace(key)
	if len(s) > maxSheetName {
		s = s[:maxSheetName]
	}
	return s
}

// WriteXLSX writes one worksheet per table of res, plus a "records" sheet
// with the breakdown of each record in input order.
func WriteXLSX(w io.Writer, res *energy.Result) error {
	f := xlsx.NewFile()
	for _, t := range res.Tables {
		sheet, err := f.AddSheet(SheetName(t.Key))
		if err != nil {
			return fmt.Errorf("report: adding sheet for %s: %v", t.Key, err)
		}
		writeTable(sheet, t)
	}
	sheet, err := f.AddSheet("records")
	if err != nil {
		return fmt.Errorf("report: adding records sheet: %v", err)
	}
	writeBreakdowns(sheet, res.Breakdowns)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("report: writing xlsx: %v", err)
	}
	return nil
}

func writeTable(sheet *xlsx.Sheet, t *energy.Table) {
	header := []string{"Composition", t.Name}
	withTerms := len(t.Rows) > 0 && t.Rows[0].Terms != nil
	if withTerms {
		header = append(header, "Chemical", "Sensible", "Pumping", "Steam")
	}
	addStrings(sheet.AddRow(), header...)
	for _, r := range t.Rows {
		row := sheet.AddRow()
		row.AddCell().SetString(r.Composition)
		setFloat(row.AddCell(), r.Value)
		if withTerms && r.Terms != nil {
			for _, v := range []float64{r.Terms.Chemical, r.Terms.Sensible, r.Terms.Pumping, r.Terms.Steam} {
				setFloat(row.AddCell(), v)
			}
		}
	}
}

func writeBreakdowns(sheet *xlsx.Sheet, bs []energy.Breakdown) {
	addStrings(sheet.AddRow(), "Composition", "Excluded", "T_ox", "T_red",
		"delta_1", "delta_2", "p_ox", "p_red", "Total [kJ/mol]",
		"Chemical [kJ/mol]", "Sensible [kJ/mol]", "Pumping [kJ/mol]",
		"Steam [kJ/mol]", "Efficiency [%]")
	for _, b := range bs {
		row := sheet.AddRow()
		row.AddCell().SetString(b.Display)
		row.AddCell().SetString(strconv.FormatBool(b.Invalid))
		e := b.Energy[0]
		for _, v := range []float64{b.TOx, b.TRed, b.Delta1, b.Delta2, b.POx, b.PRed,
			e.Total, e.Chemical, e.Sensible, e.Pumping, e.Steam, b.Efficiency} {
			setFloat(row.AddCell(), v)
		}
	}
}

func addStrings(row *xlsx.Row, s ...string) {
	for _, v := range s {
		row.AddCell().SetString(v)
	}
}

// setFloat sets numeric cells. Infinite and NaN values, which spreadsheets
// cannot represent as numbers, are written as text.
func setFloat(c *xlsx.Cell, v float64) {
	switch {
	case math.IsInf(v, 1):
		c.SetString("inf")
	case math.IsInf(v, -1):
		c.SetString("-inf")
	case math.IsNaN(v):
		c.SetString("nan")
	default:
		c.SetFloat(v)
	}
}
