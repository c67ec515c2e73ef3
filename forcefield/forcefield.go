/*
 * forcefield.go, part of antechem.
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

//Package forcefield holds forcefield rulesets in the Foyer XML format, and a registry
//that maps ruleset names to the functions that load them.
//The General Amber Force Field (GAFF) is bundled, and registered as "gaff".
package forcefield

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//Forcefield is a set of atom types and parameters.
//The atom type definitions (Def) are SMARTS strings, kept as they are.
type Forcefield struct {
	XMLName       xml.Name        `xml:"ForceField"`
	Name          string          `xml:"name,attr"`
	Version       string          `xml:"version,attr"`
	CombiningRule string          `xml:"combining_rule,attr"`
	AtomTypes     []AtomType      `xml:"AtomTypes>Type"`
	Bonds         []HarmonicBond  `xml:"HarmonicBondForce>Bond"`
	Angles        []HarmonicAngle `xml:"HarmonicAngleForce>Angle"`
	Nonbonded     Nonbonded       `xml:"NonbondedForce"`
	types         map[string]int
}

//AtomType is one atom type of a forcefield.
type AtomType struct {
	Name      string  `xml:"name,attr"`
	Class     string  `xml:"class,attr"`
	Element   string  `xml:"element,attr"`
	Mass      float64 `xml:"mass,attr"`
	Def       string  `xml:"def,attr"`
	Desc      string  `xml:"desc,attr"`
	DOI       string  `xml:"doi,attr"`
	Overrides string  `xml:"overrides,attr"`
}

//HarmonicBond parameters. Lengths in nm, force constants in kJ/(mol nm^2)
type HarmonicBond struct {
	Class1 string  `xml:"class1,attr"`
	Class2 string  `xml:"class2,attr"`
	Length float64 `xml:"length,attr"`
	K      float64 `xml:"k,attr"`
}

//HarmonicAngle parameters. Angles in radians, force constants in kJ/(mol rad^2)
type HarmonicAngle struct {
	Class1 string  `xml:"class1,attr"`
	Class2 string  `xml:"class2,attr"`
	Class3 string  `xml:"class3,attr"`
	Angle  float64 `xml:"angle,attr"`
	K      float64 `xml:"k,attr"`
}

//Nonbonded holds the scaling factors for 1-4 interactions and the per-type
//Lennard-Jones parameters.
type Nonbonded struct {
	Coulomb14Scale float64         `xml:"coulomb14scale,attr"`
	LJ14Scale      float64         `xml:"lj14scale,attr"`
	Atoms          []NonbondedAtom `xml:"Atom"`
}

type NonbondedAtom struct {
	Type    string  `xml:"type,attr"`
	Charge  float64 `xml:"charge,attr"`
	Sigma   float64 `xml:"sigma,attr"`
	Epsilon float64 `xml:"epsilon,attr"`
}

//Read parses a forcefield in the Foyer XML format from r.
func Read(r io.Reader) (*Forcefield, error) {
	ff := new(Forcefield)
	if err := xml.NewDecoder(r).Decode(ff); err != nil {
		return nil, Error{"can't parse forcefield: " + err.Error(), "", []string{"xml.Decoder.Decode", "Read"}}
	}
	if len(ff.AtomTypes) == 0 {
		return nil, Error{"forcefield defines no atom types", "", []string{"Read"}}
	}
	ff.types = make(map[string]int, len(ff.AtomTypes))
	for i, t := range ff.AtomTypes {
		if t.Name == "" {
			return nil, Error{fmt.Sprintf("atom type %d has no name", i), "", []string{"Read"}}
		}
		if _, ok := ff.types[t.Name]; ok {
			return nil, Error{fmt.Sprintf("atom type %s defined twice", t.Name), "", []string{"Read"}}
		}
		ff.types[t.Name] = i
	}
	return ff, nil
}

//ReadFile reads a forcefield from the file name. Files ending in .gz are
//decompressed with gzip, and files ending in .zst with zstd. Anything else is read as plain XML.
func ReadFile(name string) (*Forcefield, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{err.Error(), name, []string{"os.Open", "ReadFile"}}
	}
	defer f.Close()
	var r io.Reader = bufio.NewReader(f)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, Error{err.Error(), name, []string{"gzip.NewReader", "ReadFile"}}
		}
		defer gz.Close()
		r = gz
	case ".zst":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, Error{err.Error(), name, []string{"zstd.NewReader", "ReadFile"}}
		}
		defer zr.Close()
		r = zr
	}
	ff, err := Read(r)
	if err != nil {
		e := err.(Error)
		e.filename = name
		e.deco = append(e.deco, "ReadFile")
		return nil, e
	}
	return ff, nil
}

//AtomType returns the atom type called name, and true, or nil and false if the
//forcefield has no such type.
func (F *Forcefield) AtomType(name string) (*AtomType, bool) {
	if F.types == nil {
		for i := range F.AtomTypes {
			if F.AtomTypes[i].Name == name {
				return &F.AtomTypes[i], true
			}
		}
		return nil, false
	}
	i, ok := F.types[name]
	if !ok {
		return nil, false
	}
	return &F.AtomTypes[i], true
}

//HasType returns true if the forcefield defines the atom type name.
func (F *Forcefield) HasType(name string) bool {
	_, ok := F.AtomType(name)
	return ok
}

//Missing returns the labels in types that the forcefield doesn't define,
//sorted and without repetitions.
func (F *Forcefield) Missing(types []string) []string {
	seen := make(map[string]bool)
	var ret []string
	for _, t := range types {
		if seen[t] {
			continue
		}
		seen[t] = true
		if !F.HasType(t) {
			ret = append(ret, t)
		}
	}
	sort.Strings(ret)
	return ret
}

//Error is the error type for the forcefield package. It implements chem.Error.
type Error struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	deco     []string
}

func (err Error) Error() string {
	if err.filename == "" {
		return "forcefield: " + err.message
	}
	return fmt.Sprintf("forcefield file %s: %s", err.filename, err.message)
}

//Decorate adds dec to the decoration slice of the error, and returns the slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//FileName returns the file associated with the error, if any.
func (err Error) FileName() string { return err.filename }
