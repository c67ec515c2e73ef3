/*
 * report.go, part of antechem.
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

//Package report summarizes the atom types and partial charges of a molecule,
//in YAML or JSON.
package report

import (
	"encoding/json"
	"io"

	chem "github.com/rmera/antechem"
	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"
)

//Atom is the per-atom entry of a Report.
type Atom struct {
	Index  int     `yaml:"index" json:"index"`
	Name   string  `yaml:"name" json:"name"`
	Symbol string  `yaml:"symbol" json:"symbol"`
	Type   string  `yaml:"type,omitempty" json:"type,omitempty"`
	Charge float64 `yaml:"charge" json:"charge"`
}

//Report holds the atom types and charges assigned to a molecule.
type Report struct {
	Scheme      string   `yaml:"scheme,omitempty" json:"scheme,omitempty"`
	Method      string   `yaml:"charge_method,omitempty" json:"charge_method,omitempty"`
	Forcefield  string   `yaml:"forcefield,omitempty" json:"forcefield,omitempty"`
	Missing     []string `yaml:"missing_types,omitempty" json:"missing_types,omitempty"`
	TotalCharge float64  `yaml:"total_charge" json:"total_charge"`
	Atoms       []Atom   `yaml:"atoms" json:"atoms"`
}

//New builds a report from the atoms in mol. scheme and method are the atom typing
//scheme and the charge method used, and can be empty.
func New(mol chem.Atomer, scheme, method string) *Report {
	r := &Report{Scheme: scheme, Method: method, Atoms: make([]Atom, mol.Len())}
	charges := make([]float64, mol.Len())
	for i := range r.Atoms {
		at := mol.Atom(i)
		r.Atoms[i] = Atom{Index: i, Name: at.Name, Symbol: at.Symbol, Type: at.Type, Charge: at.Charge}
		charges[i] = at.Charge
	}
	r.TotalCharge = floats.Sum(charges)
	return r
}

//Types returns the atom type of each atom, in order.
func (R *Report) Types() []string {
	ret := make([]string, len(R.Atoms))
	for i, a := range R.Atoms {
		ret[i] = a.Type
	}
	return ret
}

//WriteYAML writes the report to w in YAML format.
func (R *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(R); err != nil {
		return err
	}
	return enc.Close()
}

//WriteJSON writes the report to w as indented JSON.
func (R *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(R)
}
