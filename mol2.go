/*
 * mol2.go, part of antechem.
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

package chem

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	v3 "github.com/rmera/antechem/v3"
)

//Tripos mol2 section headers
const (
	mol2Molecule = "@<TRIPOS>MOLECULE"
	mol2Atom     = "@<TRIPOS>ATOM"
	mol2Bond     = "@<TRIPOS>BOND"
)

//Mol2FileRead reads the mol2 file name. See Mol2Read.
func Mol2FileRead(name string) (*Molecule, error) {
	return mol2FileRead(name, false, "Mol2FileRead")
}

//Mol2FileReadCharged reads the mol2 file name. See Mol2ReadCharged.
func Mol2FileReadCharged(name string) (*Molecule, error) {
	return mol2FileRead(name, true, "Mol2FileReadCharged")
}

func mol2FileRead(name string, charged bool, caller string) (*Molecule, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, CError{err.Error(), []string{"os.Open", caller}}
	}
	defer f.Close()
	mol, err := mol2Read(f, charged)
	if err != nil {
		return nil, errDecorate(err, caller)
	}
	return mol, nil
}

//Mol2Read reads the first molecule in a Tripos mol2 stream.
//The atom type column goes to Atom.Type and the charge column to Atom.Charge.
//Element symbols are guessed from the atom names.
//It returns an error if the number of ATOM or BOND rows doesn't match the
//counts given in the MOLECULE section, or if only some ATOM rows have a charge column.
func Mol2Read(r io.Reader) (*Molecule, error) {
	return mol2Read(r, false)
}

//Mol2ReadCharged is like Mol2Read, but it also returns an error if any ATOM
//row lacks the charge column, so a charge of 0 always comes from the file.
func Mol2ReadCharged(r io.Reader) (*Molecule, error) {
	mol, err := mol2Read(r, true)
	if err != nil {
		return nil, errDecorate(err, "Mol2ReadCharged")
	}
	return mol, nil
}

func mol2Read(r io.Reader, needCharges bool) (*Molecule, error) {
	scanner := bufio.NewScanner(r)
	section := ""
	molLine := 0
	natoms, nbonds := -1, -1
	top := NewTopology(0, 1)
	coords := make([]float64, 0)
	type bondrow struct {
		i, j  int
		order float64
	}
	bonds := make([]bondrow, 0)
	contlines := 0
	charged := 0 //ATOM rows with a charge column
	for scanner.Scan() {
		contlines++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "@<TRIPOS>") {
			//we only read the first molecule in the file
			if line == mol2Molecule && natoms >= 0 {
				break
			}
			section = line
			molLine = 0
			continue
		}
		fields := strings.Fields(line)
		switch section {
		case mol2Molecule:
			molLine++
			//the second line of the section has the counts
			if molLine == 2 {
				var err error
				natoms, err = strconv.Atoi(fields[0])
				if err != nil {
					return nil, CError{fmt.Sprintf("Bad atom count in line %d", contlines), []string{"Mol2Read"}}
				}
				if len(fields) > 1 {
					nbonds, _ = strconv.Atoi(fields[1])
				}
			}
		case mol2Atom:
			if len(fields) < 6 {
				return nil, CError{fmt.Sprintf("ATOM row ill formed in line %d", contlines), []string{"Mol2Read"}}
			}
			at := new(Atom)
			var err error
			at.ID, err = strconv.Atoi(fields[0])
			if err != nil {
				return nil, CError{fmt.Sprintf("Bad atom id in line %d", contlines), []string{"Mol2Read"}}
			}
			at.Name = fields[1]
			for _, f := range fields[2:5] {
				c, err := strconv.ParseFloat(f, 64)
				if err != nil {
					return nil, CError{fmt.Sprintf("Bad coordinate in line %d", contlines), []string{"Mol2Read"}}
				}
				coords = append(coords, c)
			}
			at.Type = fields[5]
			if len(fields) > 6 {
				at.MolID, _ = strconv.Atoi(fields[6])
			}
			if len(fields) > 7 {
				at.MolName = fields[7]
			}
			if len(fields) > 8 {
				at.Charge, err = strconv.ParseFloat(fields[8], 64)
				if err != nil {
					return nil, CError{fmt.Sprintf("Bad charge in line %d", contlines), []string{"Mol2Read"}}
				}
				charged++
			} else if needCharges {
				return nil, CError{fmt.Sprintf("ATOM row without a charge in line %d", contlines), []string{"Mol2Read"}}
			}
			//Sybyl types carry the element before the dot ("C.3")
			if i := strings.Index(at.Type, "."); i > 0 {
				at.Symbol = at.Type[:i]
			} else {
				at.Symbol, _ = symbolFromName(at.Name)
			}
			at.Mass = symbolMass[at.Symbol]
			top.AddAtom(at)
		case mol2Bond:
			if len(fields) < 4 {
				return nil, CError{fmt.Sprintf("BOND row ill formed in line %d", contlines), []string{"Mol2Read"}}
			}
			i, err1 := strconv.Atoi(fields[1])
			j, err2 := strconv.Atoi(fields[2])
			if err1 != nil || err2 != nil {
				return nil, CError{fmt.Sprintf("Bad atom ids in BOND row, line %d", contlines), []string{"Mol2Read"}}
			}
			bonds = append(bonds, bondrow{i, j, mol2BondOrder(fields[3])})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, CError{err.Error(), []string{"bufio.Scanner.Scan", "Mol2Read"}}
	}
	if natoms < 0 {
		return nil, CError{"No MOLECULE section found", []string{"Mol2Read"}}
	}
	if top.Len() != natoms {
		return nil, CError{fmt.Sprintf("MOLECULE section declares %d atoms, %d ATOM rows found", natoms, top.Len()), []string{"Mol2Read"}}
	}
	if nbonds >= 0 && len(bonds) != nbonds {
		return nil, CError{fmt.Sprintf("MOLECULE section declares %d bonds, %d BOND rows found", nbonds, len(bonds)), []string{"Mol2Read"}}
	}
	if natoms == 0 {
		return nil, CError{"No atoms found", []string{"Mol2Read"}}
	}
	if charged != 0 && charged != natoms {
		return nil, CError{fmt.Sprintf("Only %d of %d ATOM rows have a charge", charged, natoms), []string{"Mol2Read"}}
	}
	ids := make(map[int]*Atom, top.Len())
	for _, at := range top.Atoms {
		ids[at.ID] = at
	}
	for _, b := range bonds {
		at1, ok1 := ids[b.i]
		at2, ok2 := ids[b.j]
		if !ok1 || !ok2 || at1 == at2 {
			return nil, CError{fmt.Sprintf("BOND row refers to unknown atoms %d-%d", b.i, b.j), []string{"Mol2Read"}}
		}
		AddBond(at1, at2, b.order)
	}
	Bonds(top)
	mcoords, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, errDecorate(err, "Mol2Read")
	}
	mol, err := NewMolecule([]*v3.Matrix{mcoords}, top, nil)
	if err != nil {
		return nil, errDecorate(err, "Mol2Read")
	}
	return mol, nil
}

//mol2BondOrder translates a Tripos bond type into a bond order.
//Unknown types give 0 (undetermined).
func mol2BondOrder(t string) float64 {
	switch t {
	case "1", "am":
		return 1
	case "2":
		return 2
	case "3":
		return 3
	case "ar":
		return 1.5
	}
	return 0
}
