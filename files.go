/*
 * files.go, part of antechem.
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

//PDB family

//Parses a valid ATOM or HETATM line of a PDB file, returns an Atom
// object with the info except for the coordinates and b-factors, which  are returned
// separately as an array of 3 float64 and a float64, respectively
func readFullPDBLine(line string, contlines int) (*Atom, []float64, float64, error) {
	if len(line) < 54 {
		return nil, nil, 0, CError{fmt.Sprintf("Line %d too short for an ATOM record", contlines), []string{"readFullPDBLine"}}
	}
	err := make([]error, 5)
	coords := make([]float64, 3)
	atom := new(Atom)
	atom.Het = strings.HasPrefix(line, "HETATM")
	atom.ID, err[0] = strconv.Atoi(strings.TrimSpace(line[6:11]))
	atom.Name = strings.TrimSpace(line[12:16])
	atom.MolName = strings.TrimSpace(line[17:20])
	atom.Chain = strings.TrimSpace(line[21:22])
	atom.MolID, err[1] = strconv.Atoi(strings.TrimSpace(line[22:26]))
	coords[0], err[2] = strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
	coords[1], err[3] = strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
	coords[2], err[4] = strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
	var bfactor float64
	//Occupancy, b-factor and element are optional. If something is missing we
	// just ommit it
	if len(line) >= 60 {
		atom.Occupancy, _ = strconv.ParseFloat(strings.TrimSpace(line[54:60]), 64)
	}
	if len(line) >= 66 {
		bfactor, _ = strconv.ParseFloat(strings.TrimSpace(line[60:66]), 64)
	}
	if len(line) >= 78 {
		atom.Symbol = strings.TrimSpace(line[76:78])
		if len(atom.Symbol) == 2 {
			atom.Symbol = atom.Symbol[:1] + strings.ToLower(atom.Symbol[1:])
		}
	}
	for i := range err {
		if err[i] != nil {
			return nil, nil, 0, CError{fmt.Sprintf("Error parsing line %d: %s", contlines, err[i].Error()), []string{"readFullPDBLine"}}
		}
	}
	//This part tries to guess the symbol from the atom name, if it has not been read
	if atom.Symbol == "" {
		atom.Symbol, _ = symbolFromName(atom.Name)
	}
	atom.Mass = symbolMass[atom.Symbol]
	return atom, coords, bfactor, nil
}

//readCryst1 parses a CRYST1 line.
func readCryst1(line string) (*Box, error) {
	f := strings.Fields(line)
	if len(f) < 7 {
		return nil, CError{"Malformed CRYST1 record", []string{"readCryst1"}}
	}
	v := make([]float64, 6)
	for i := range v {
		var err error
		v[i], err = strconv.ParseFloat(f[i+1], 64)
		if err != nil {
			return nil, CError{"Malformed CRYST1 record: " + err.Error(), []string{"readCryst1"}}
		}
	}
	return &Box{v[0], v[1], v[2], v[3], v[4], v[5]}, nil
}

//readConect parses a CONECT line into the serial numbers it contains.
//The first element is the atom the others are bonded to.
func readConect(line string) ([]int, error) {
	line = strings.TrimRight(line, "\r\n ")
	ret := make([]int, 0, 5)
	for i := 6; i < len(line); i += 5 {
		end := i + 5
		if end > len(line) {
			end = len(line)
		}
		s := strings.TrimSpace(line[i:end])
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, CError{"Malformed CONECT record: " + err.Error(), []string{"readConect"}}
		}
		ret = append(ret, n)
	}
	return ret, nil
}

//PDBFileRead reads the PDB file pdbname. See PDBRead.
func PDBFileRead(pdbname string) (*Molecule, error) {
	pdbfile, err := os.Open(pdbname)
	if err != nil {
		return nil, CError{err.Error(), []string{"os.Open", "PDBFileRead"}}
	}
	defer pdbfile.Close()
	mol, err := PDBRead(pdbfile)
	if err != nil {
		return nil, errDecorate(err, "PDBFileRead")
	}
	return mol, nil
}

//PDBRead reads the atoms, coordinates, cell and CONECT bonds from a PDB stream.
//Each MODEL becomes one frame. The atom information is taken from the first model.
func PDBRead(pdb io.Reader) (*Molecule, error) {
	molecule := make([]*Atom, 0)
	coords := [][]float64{make([]float64, 0)}
	bfactors := [][]float64{make([]float64, 0)}
	firstModel := true //are we reading the first model? if not we only save coordinates
	conects := make([][]int, 0)
	var box *Box
	scanner := bufio.NewScanner(pdb)
	contlines := 0 //count the lines read to better report errors
	for scanner.Scan() {
		line := scanner.Text()
		contlines++
		switch {
		case strings.HasPrefix(line, "ATOM") || strings.HasPrefix(line, "HETATM"):
			at, c, bfac, err := readFullPDBLine(line, contlines)
			if err != nil {
				return nil, errDecorate(err, "PDBRead")
			}
			//atom data other than coords is the same in all models so just read for the first.
			if firstModel {
				molecule = append(molecule, at)
			}
			coords[len(coords)-1] = append(coords[len(coords)-1], c...)
			bfactors[len(bfactors)-1] = append(bfactors[len(bfactors)-1], bfac)
		case strings.HasPrefix(line, "ENDMDL"):
			if len(coords[len(coords)-1]) > 0 {
				firstModel = false
				coords = append(coords, make([]float64, 0)) //new bunch of coords for a new frame
				bfactors = append(bfactors, make([]float64, 0))
			}
		case strings.HasPrefix(line, "CRYST1"):
			b, err := readCryst1(line)
			if err != nil {
				return nil, errDecorate(err, "PDBRead")
			}
			box = b
		case strings.HasPrefix(line, "CONECT"):
			c, err := readConect(line)
			if err != nil {
				return nil, errDecorate(err, "PDBRead")
			}
			if len(c) > 1 {
				conects = append(conects, c)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, CError{err.Error(), []string{"bufio.Scanner.Scan", "PDBRead"}}
	}
	if len(molecule) == 0 {
		return nil, CError{"No atoms found", []string{"PDBRead"}}
	}
	//drop the empty frame opened by the last ENDMDL
	if len(coords[len(coords)-1]) == 0 {
		coords = coords[:len(coords)-1]
		bfactors = bfactors[:len(bfactors)-1]
	}
	mcoords := make([]*v3.Matrix, 0, len(coords))
	for i, c := range coords {
		m, err := v3.NewMatrix(c)
		if err != nil {
			return nil, errDecorate(err, "PDBRead")
		}
		if m.NVecs() != len(molecule) {
			return nil, CError{fmt.Sprintf("Model %d has %d atoms, expected %d", i+1, m.NVecs(), len(molecule)), []string{"PDBRead"}}
		}
		mcoords = append(mcoords, m)
	}
	top := NewTopology(0, 1, molecule...)
	top.FillIndexes()
	serials := make(map[int]*Atom, len(molecule))
	for _, at := range molecule {
		serials[at.ID] = at
	}
	for _, c := range conects {
		at1, ok := serials[c[0]]
		if !ok {
			return nil, CError{fmt.Sprintf("CONECT record refers to unknown atom %d", c[0]), []string{"PDBRead"}}
		}
		for _, s := range c[1:] {
			at2, ok := serials[s]
			if !ok {
				return nil, CError{fmt.Sprintf("CONECT record refers to unknown atom %d", s), []string{"PDBRead"}}
			}
			if at1 != at2 {
				AddBond(at1, at2, 0)
			}
		}
	}
	Bonds(top)
	mol, err := NewMolecule(mcoords, top, bfactors)
	if err != nil {
		return nil, errDecorate(err, "PDBRead")
	}
	mol.Box = box
	return mol, nil
}

//PDBFileWrite writes coord and mol to the file pdbname. See PDBWrite.
func PDBFileWrite(pdbname string, coord *v3.Matrix, mol Atomer, box *Box) error {
	out, err := os.Create(pdbname)
	if err != nil {
		return CError{err.Error(), []string{"os.Create", "PDBFileWrite"}}
	}
	defer out.Close()
	if err := PDBWrite(out, coord, mol, box); err != nil {
		return errDecorate(err, "PDBFileWrite")
	}
	return nil
}

//PDBWrite writes a PDB with the coordinates coord and the atoms in mol to out.
//It writes a CRYST1 record (box, or DefaultBox() if box is nil) and CONECT
//records for every bond in mol. Atoms are numbered by their position, starting
//from 1, and CONECT records use that numbering.
func PDBWrite(out io.Writer, coord *v3.Matrix, mol Atomer, box *Box) error {
	if coord == nil || mol == nil {
		return CError{"Nil coordinates or atoms", []string{"PDBWrite"}}
	}
	if coord.NVecs() != mol.Len() {
		return CError{fmt.Sprintf("Coordinates (%d) don't match atoms (%d)", coord.NVecs(), mol.Len()), []string{"PDBWrite"}}
	}
	if box == nil {
		box = DefaultBox()
	}
	w := bufio.NewWriter(out)
	fmt.Fprint(w, "REMARK     WRITTEN WITH ANTECHEM :-)\n")
	fmt.Fprintf(w, "CRYST1%9.3f%9.3f%9.3f%7.2f%7.2f%7.2f %-9s%3d\n", box.A, box.B, box.C, box.Alpha, box.Beta, box.Gamma, "P 1", 1)
	pos := make(map[*Atom]int, mol.Len())
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		pos[at] = i
		first := "ATOM"
		if at.Het {
			first = "HETATM"
		}
		molname := at.MolName
		if molname == "" {
			molname = "MOL"
		}
		chain := at.Chain
		if chain == "" {
			chain = "A"
		}
		name := at.Name
		//4 chars for the atom name are used when hydrogens are included.
		if len(name) < 4 {
			name = " " + name
		} else if len(name) > 4 {
			return CError{fmt.Sprintf("Atom name %s too long for PDB", at.Name), []string{"PDBWrite"}}
		}
		c := coord.Vec(i)
		_, err := fmt.Fprintf(w, "%-6s%5d %-4s %3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s  \n", first, i+1, name, molname, chain,
			at.MolID, c[0], c[1], c[2], 1.0, 0.0, at.Symbol)
		if err != nil {
			return CError{err.Error(), []string{"fmt.Fprintf", "PDBWrite"}}
		}
	}
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		if len(at.Bonds) == 0 {
			continue
		}
		fmt.Fprintf(w, "CONECT%5d", i+1)
		for _, b := range at.Bonds {
			j, ok := pos[b.Cross(at)]
			if !ok {
				return CError{fmt.Sprintf("Atom %d is bonded to an atom outside the topology", i), []string{"PDBWrite"}}
			}
			fmt.Fprintf(w, "%5d", j+1)
		}
		fmt.Fprint(w, "\n")
	}
	fmt.Fprint(w, "END\n")
	if err := w.Flush(); err != nil {
		return CError{err.Error(), []string{"bufio.Writer.Flush", "PDBWrite"}}
	}
	return nil
}

//End PDB family

//XYZFileRead reads the xyz file xyzname. See XYZRead.
func XYZFileRead(xyzname string) (*Molecule, error) {
	xyzfile, err := os.Open(xyzname)
	if err != nil {
		return nil, CError{err.Error(), []string{"os.Open", "XYZFileRead"}}
	}
	defer xyzfile.Close()
	mol, err := XYZRead(xyzfile)
	if err != nil {
		return nil, errDecorate(err, "XYZFileRead")
	}
	return mol, nil
}

//XYZRead reads a single-frame xyz stream and returns a Molecule without bonds.
func XYZRead(xyz io.Reader) (*Molecule, error) {
	scanner := bufio.NewScanner(xyz)
	if !scanner.Scan() {
		return nil, CError{"Empty XYZ file", []string{"XYZRead"}}
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || natoms <= 0 {
		return nil, CError{"Ill formatted XYZ file: bad number of atoms", []string{"XYZRead"}}
	}
	scanner.Scan() //We dont care about the comment line
	top := NewTopology(0, 1)
	coords := make([]float64, 0, natoms*3)
	for i := 0; i < natoms; i++ {
		if !scanner.Scan() {
			return nil, CError{fmt.Sprintf("XYZ file ended after %d of %d atoms", i, natoms), []string{"XYZRead"}}
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 {
			return nil, CError{fmt.Sprintf("Line for atom %d ill formed", i), []string{"XYZRead"}}
		}
		at := &Atom{Symbol: fields[0], ID: i + 1, MolID: 1}
		at.Mass = symbolMass[at.Symbol]
		top.AddAtom(at)
		for _, f := range fields[1:4] {
			c, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, CError{fmt.Sprintf("Coordinate for atom %d ill formed: %s", i, err.Error()), []string{"XYZRead"}}
			}
			coords = append(coords, c)
		}
	}
	mcoords, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, errDecorate(err, "XYZRead")
	}
	mol, err := NewMolecule([]*v3.Matrix{mcoords}, top, nil)
	if err != nil {
		return nil, errDecorate(err, "XYZRead")
	}
	return mol, nil
}

//XYZFileWrite writes coord and mol to the file xyzname. See XYZWrite.
func XYZFileWrite(xyzname string, coord *v3.Matrix, mol Atomer) error {
	out, err := os.Create(xyzname)
	if err != nil {
		return CError{err.Error(), []string{"os.Create", "XYZFileWrite"}}
	}
	defer out.Close()
	if err := XYZWrite(out, coord, mol); err != nil {
		return errDecorate(err, "XYZFileWrite")
	}
	return nil
}

//XYZWrite writes coord and the symbols in mol in xyz format to out.
func XYZWrite(out io.Writer, coord *v3.Matrix, mol Atomer) error {
	if coord.NVecs() != mol.Len() {
		return CError{fmt.Sprintf("Coordinates (%d) don't match atoms (%d)", coord.NVecs(), mol.Len()), []string{"XYZWrite"}}
	}
	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "%-4d\n\n", mol.Len())
	for i := 0; i < mol.Len(); i++ {
		c := coord.Vec(i)
		fmt.Fprintf(w, "%-2s  %12.6f%12.6f%12.6f\n", mol.Atom(i).Symbol, c[0], c[1], c[2])
	}
	if err := w.Flush(); err != nil {
		return CError{err.Error(), []string{"bufio.Writer.Flush", "XYZWrite"}}
	}
	return nil
}
