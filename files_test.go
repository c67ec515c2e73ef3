/*
 * files_test.go, part of antechem.
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
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"
)

var propaneNames = []string{"C1", "C2", "C3", "H11", "H12", "H13", "H21", "H22", "H31", "H32", "H33"}

func TestPDBIO(Te *testing.T) {
	mol, err := PDBFileRead("test/propane.pdb")
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 11 || mol.LenFrames() != 1 {
		Te.Fatalf("Expected 11 atoms in 1 frame, got %d in %d", mol.Len(), mol.LenFrames())
	}
	for i, n := range propaneNames {
		if mol.Atom(i).Name != n {
			Te.Errorf("Atom %d: expected name %s, got %s", i, n, mol.Atom(i).Name)
		}
	}
	if mol.Atom(0).Symbol != "C" || mol.Atom(3).Symbol != "H" {
		Te.Errorf("Wrong symbols read: %s %s", mol.Atom(0).Symbol, mol.Atom(3).Symbol)
	}
	if b := Bonds(mol); len(b) != 10 {
		Te.Errorf("Expected 10 bonds from CONECT records, got %d", len(b))
	}
	if mol.Box == nil || mol.Box.A != 10 || mol.Box.Gamma != 90 {
		Te.Errorf("CRYST1 not read properly: %v", mol.Box)
	}
	var buf bytes.Buffer
	if err := PDBWrite(&buf, mol.Coords[0], mol, nil); err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(buf.String(), "CRYST1   10.000   10.000   10.000  90.00  90.00  90.00 P 1        1") {
		Te.Errorf("Default box not written:\n%s", buf.String())
	}
	mol2, err := PDBRead(&buf)
	if err != nil {
		Te.Fatal(err)
	}
	if len(Bonds(mol2)) != 10 {
		Te.Errorf("Bonds lost in the PDB round trip")
	}
	for i := 0; i < mol.Len(); i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(mol.Coords[0].At(i, j)-mol2.Coords[0].At(i, j)) > 1e-3 {
				Te.Errorf("Coordinate %d,%d changed in the round trip", i, j)
			}
		}
	}
}

func TestPDBWriteFile(Te *testing.T) {
	mol, err := PDBFileRead("test/propane.pdb")
	if err != nil {
		Te.Fatal(err)
	}
	name := filepath.Join(Te.TempDir(), "out.pdb")
	if err := PDBFileWrite(name, mol.Coords[0], mol, mol.Box); err != nil {
		Te.Fatal(err)
	}
	if _, err := PDBFileRead(name); err != nil {
		Te.Error(err)
	}
	if err := PDBWrite(&bytes.Buffer{}, mol.Coords[0], NewTopology(0, 1, mol.Atoms[:3]...), nil); err == nil {
		Te.Error("Expected an error for coordinates that don't match the atoms")
	}
}

func TestXYZAssignBonds(Te *testing.T) {
	mol, err := XYZFileRead("test/propane.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 11 {
		Te.Fatalf("Expected 11 atoms, got %d", mol.Len())
	}
	if err := AssignBonds(mol.Coords[0], mol); err != nil {
		Te.Fatal(err)
	}
	bonds := Bonds(mol)
	if len(bonds) != 10 {
		Te.Fatalf("Expected 10 bonds, got %d", len(bonds))
	}
	for i := 0; i < 3; i++ {
		if len(mol.Atom(i).Bonds) != 4 {
			Te.Errorf("Carbon %d has %d bonds", i, len(mol.Atom(i).Bonds))
		}
	}
	for i := 3; i < 11; i++ {
		if len(mol.Atom(i).Bonds) != 1 {
			Te.Errorf("Hydrogen %d has %d bonds", i, len(mol.Atom(i).Bonds))
		}
	}
	var buf bytes.Buffer
	if err := XYZWrite(&buf, mol.Coords[0], mol); err != nil {
		Te.Fatal(err)
	}
	again, err := XYZRead(&buf)
	if err != nil {
		Te.Fatal(err)
	}
	if again.Len() != mol.Len() {
		Te.Errorf("XYZ round trip changed the number of atoms")
	}
}

func TestMol2Read(Te *testing.T) {
	mol, err := Mol2FileRead("test/propane_bcc.mol2")
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 11 {
		Te.Fatalf("Expected 11 atoms, got %d", mol.Len())
	}
	sum := 0.0
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		sum += at.Charge
		if at.Name != propaneNames[i] {
			Te.Errorf("Atom %d: expected name %s, got %s", i, propaneNames[i], at.Name)
		}
		exp := "hc"
		if at.Symbol == "C" {
			exp = "c3"
		}
		if at.Type != exp {
			Te.Errorf("Atom %d: expected type %s, got %s", i, exp, at.Type)
		}
	}
	if math.Abs(sum) > 1e-6 {
		Te.Errorf("Charges should add up to zero, got %f", sum)
	}
	if len(Bonds(mol)) != 10 {
		Te.Errorf("Expected 10 bonds, got %d", len(Bonds(mol)))
	}
}

func TestMol2Malformed(Te *testing.T) {
	truncated := `@<TRIPOS>MOLECULE
PRP
    3     0     1     0     0
SMALL
bcc

@<TRIPOS>ATOM
      1 C1           0.0000    0.0000    0.0000 c3        1 PRP    -0.093800
`
	if _, err := Mol2Read(strings.NewReader(truncated)); err == nil {
		Te.Error("Expected an error for a mol2 with fewer ATOM rows than declared")
	}
	if _, err := Mol2Read(strings.NewReader("not a mol2 file\n")); err == nil {
		Te.Error("Expected an error for a file without a MOLECULE section")
	}
	badcharge := strings.Replace(truncated, "    3     0", "    1     0", 1)
	badcharge = strings.Replace(badcharge, "-0.093800", "abc", 1)
	if _, err := Mol2Read(strings.NewReader(badcharge)); err == nil {
		Te.Error("Expected an error for an unparsable charge")
	}
}

func TestCopyKeepsBonds(Te *testing.T) {
	mol, err := PDBFileRead("test/propane.pdb")
	if err != nil {
		Te.Fatal(err)
	}
	c := mol.Copy()
	c.Atom(0).Type = "c3"
	if mol.Atom(0).Type != "" {
		Te.Error("Copy shares atoms with the original")
	}
	if len(Bonds(c)) != 10 {
		Te.Errorf("Copy has %d bonds, expected 10", len(Bonds(c)))
	}
	if c.Atom(0).Bonds[0].Cross(c.Atom(0)) == mol.Atom(1) {
		Te.Error("Copied bonds point to the original atoms")
	}
}

func TestSymbolFromName(Te *testing.T) {
	cases := map[string]string{"CA": "C", "CL1": "Cl", "H11": "H", "1HB": "H", "ZN": "Zn", "O": "O", "NA": "Na"}
	for name, exp := range cases {
		s, err := symbolFromName(name)
		if err != nil || s != exp {
			Te.Errorf("%s: expected %s, got %s (%v)", name, exp, s, err)
		}
	}
	if _, err := symbolFromName("XX"); err == nil {
		Te.Error("Expected an error for an unknown name")
	}
}

func TestMol2Charged(Te *testing.T) {
	full := `@<TRIPOS>MOLECULE
MOL
    2     1     1     0     0
SMALL
bcc

@<TRIPOS>ATOM
      1 C1           0.0000    0.0000    0.0000 c3        1 MOL    -0.100000
      2 H1           1.0900    0.0000    0.0000 hc        1 MOL     0.100000
@<TRIPOS>BOND
     1     1     2 1
`
	mol, err := Mol2ReadCharged(strings.NewReader(full))
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Atom(0).Charge != -0.1 || mol.Atom(1).Charge != 0.1 {
		Te.Errorf("Charges not read: %f %f", mol.Atom(0).Charge, mol.Atom(1).Charge)
	}
	nocharges := strings.Replace(full, "-0.100000", "", 1)
	nocharges = strings.Replace(nocharges, " 0.100000", "", 1)
	if _, err := Mol2Read(strings.NewReader(nocharges)); err != nil {
		Te.Errorf("A mol2 without charges is valid for Mol2Read: %v", err)
	}
	if _, err := Mol2ReadCharged(strings.NewReader(nocharges)); err == nil {
		Te.Error("Expected an error for ATOM rows without charges")
	}
	partial := strings.Replace(full, "-0.100000", "", 1)
	if _, err := Mol2Read(strings.NewReader(partial)); err == nil {
		Te.Error("Expected an error when only some ATOM rows have charges")
	}
	if _, err := Mol2FileReadCharged("test/propane_bcc.mol2"); err != nil {
		Te.Error(err)
	}
}
