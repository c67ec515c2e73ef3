/*
 * charges.go, part of antechem.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

//Package chemplot draws figures from molecular data using gonum/plot.
package chemplot

import (
	"fmt"

	chem "github.com/rmera/antechem"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//ChargeProfile saves a bar chart of the partial charges of the atoms in mol to filename.
//The format is given by the extension of filename (png, svg, pdf, eps...).
//Each bar is labelled with the atom name and, if set, its atom type. Bars are
//colored by atom type.
func ChargeProfile(mol chem.Atomer, title, filename string) error {
	if mol == nil || mol.Len() == 0 {
		return PlotError{"no atoms to plot", []string{"ChargeProfile"}}
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Atom"
	p.Y.Label.Text = "Partial charge (e)"
	p.Add(plotter.NewGrid())
	//one color per atom type, in order of appearance
	typeindex := make(map[string]int)
	for i := 0; i < mol.Len(); i++ {
		t := mol.Atom(i).Type
		if _, ok := typeindex[t]; !ok {
			typeindex[t] = len(typeindex)
		}
	}
	width := vg.Points(12)
	labels := make([]string, mol.Len())
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		labels[i] = at.Name
		if at.Type != "" {
			labels[i] = fmt.Sprintf("%s (%s)", at.Name, at.Type)
		}
		bar, err := plotter.NewBarChart(plotter.Values{at.Charge}, width)
		if err != nil {
			return PlotError{err.Error(), []string{"plotter.NewBarChart", "ChargeProfile"}}
		}
		bar.XMin = float64(i)
		bar.LineStyle.Width = vg.Length(0)
		bar.Color = typeColor(typeindex[at.Type], len(typeindex))
		p.Add(bar)
	}
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = 1.2
	p.X.Tick.Label.XAlign = -1.0
	plotwidth := vg.Length(mol.Len()) * 0.6 * vg.Centimeter
	if plotwidth < 10*vg.Centimeter {
		plotwidth = 10 * vg.Centimeter
	}
	if err := p.Save(plotwidth, 10*vg.Centimeter, filename); err != nil {
		return PlotError{err.Error(), []string{"plot.Save", "ChargeProfile"}}
	}
	return nil
}

//PlotError is the error type for the chemplot package. It implements chem.Error.
type PlotError struct {
	message string
	deco    []string
}

func (err PlotError) Error() string { return "chemplot: " + err.message }

//Decorate adds dec to the decoration slice of the error, and returns the slice.
func (err PlotError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}
