/*
 * chem.go, part of antechem.
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
	"fmt"

	v3 "github.com/rmera/antechem/v3"
)

//Atom contains the information for one atom, except for the coordinates,
//which are kept in a v3.Matrix, and the b-factors, which are kept in a slice.
type Atom struct {
	Name      string  //PDB name of the atom
	ID        int     //The PDB serial number, 1-based.
	Index     int     //The place of the atom in its topology, 0-based.
	MolName   string  //PDB name of the residue
	MolID     int     //PDB residue number
	Chain     string  //One-character PDB chain identifier
	Symbol    string  //Element symbol
	Mass      float64 //hopefully all these float64 are not too much memory
	Occupancy float64
	Charge    float64 //Partial charge
	Type      string  //Forcefield atom type
	Het       bool    //is the atom an hetatm in the pdb file? (if applicable)
	Bonds     []*Bond //The bonds connecting the atom to others.
}

//Copy returns a copy of the Atom object. The bonds are not copied,
//since they would point to atoms of the original topology.
func (N *Atom) Copy() *Atom {
	if N == nil {
		panic("Attempted to copy a nil atom")
	}
	A := *N
	A.Bonds = nil
	return &A
}

/*****Topology type***/

//Topology contains information about a molecule which is not expected to change in time (i.e. everything except for coordinates and b-factors)
type Topology struct {
	Atoms  []*Atom
	charge int
	multi  int
}

//NewTopology returns a topology with charge and multiplicity multi.
//The atoms given become the atoms of the topology, in the given order.
func NewTopology(charge, multi int, ats ...*Atom) *Topology {
	top := new(Topology)
	top.charge = charge
	top.multi = multi
	if multi == 0 {
		top.multi = 1
	}
	top.Atoms = append(top.Atoms, ats...)
	return top
}

//Charge returns the total charge of the topology
func (T *Topology) Charge() int {
	return T.charge
}

//Multi returns the multiplicity of the topology
func (T *Topology) Multi() int {
	return T.multi
}

//SetCharge sets the total charge of the topology to i
func (T *Topology) SetCharge(i int) {
	T.charge = i
}

//SetMulti sets the multiplicity of the topology to i
func (T *Topology) SetMulti(i int) {
	T.multi = i
}

//FillIndexes sets the Index field of each atom to its position in the topology.
func (T *Topology) FillIndexes() {
	for key, val := range T.Atoms {
		val.Index = key
	}
}

//Atom returns the Atom corresponding to the index i
//of the Atom slice in the Topology. Panics if
//out of range.
func (T *Topology) Atom(i int) *Atom {
	if i >= T.Len() {
		panic("Topology: Requested Atom out of bounds")
	}
	return T.Atoms[i]
}

//AddAtom appends at at the end of the topology, setting its index.
func (T *Topology) AddAtom(at *Atom) {
	at.Index = len(T.Atoms)
	T.Atoms = append(T.Atoms, at)
}

//Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.Atoms)
}

//CopyAtoms returns a copy of the topology, including the bonds
//between its atoms.
func (T *Topology) CopyAtoms() *Topology {
	r := NewTopology(T.charge, T.multi)
	r.Atoms = make([]*Atom, 0, T.Len())
	for _, v := range T.Atoms {
		r.Atoms = append(r.Atoms, v.Copy())
	}
	r.FillIndexes()
	T.FillIndexes()
	for _, b := range Bonds(T) {
		AddBond(r.Atoms[b.At1.Index], r.Atoms[b.At2.Index], b.Order)
	}
	return r
}

//Masses returns a slice with the masses of all atoms, or an error
//if any of them is not set.
func (T *Topology) Masses() ([]float64, error) {
	mass := make([]float64, T.Len())
	for i, v := range T.Atoms {
		if v.Mass == 0 {
			return nil, CError{fmt.Sprintf("Mass for atom %d (%s) not set", i, v.Symbol), []string{"Masses"}}
		}
		mass[i] = v.Mass
	}
	return mass, nil
}

/**Type Molecule**/

//Molecule contains all the info for a molecule in many states. The info that is expected to change between states,
//Coordinates and b-factors are stored separately from other atomic info.
type Molecule struct {
	*Topology
	Coords   []*v3.Matrix
	Bfactors [][]float64
	Box      *Box
}

//NewMolecule makes a molecule with ats atoms, coords coordinates and bfactors b-factors.
//charge and multiplicity are taken from ats if it implements AtomMultiCharger.
//It returns an error if the atoms and the coordinates are not consistent.
func NewMolecule(coords []*v3.Matrix, ats Atomer, bfactors [][]float64) (*Molecule, error) {
	if ats == nil {
		return nil, CError{"Supplied a nil Topology", []string{"NewMolecule"}}
	}
	mol := new(Molecule)
	if top, ok := ats.(*Topology); ok {
		mol.Topology = top
	} else {
		charge, multi := 0, 1
		if mc, ok := ats.(AtomMultiCharger); ok {
			charge = mc.Charge()
			multi = mc.Multi()
		}
		mol.Topology = NewTopology(charge, multi)
		for i := 0; i < ats.Len(); i++ {
			mol.Atoms = append(mol.Atoms, ats.Atom(i))
		}
	}
	mol.Coords = coords
	mol.Bfactors = bfactors
	if err := mol.Corrupted(); err != nil {
		return nil, errDecorate(err, "NewMolecule")
	}
	return mol, nil
}

//Corrupted checks whether the molecule is corrupted, i.e. the
//coordinates don't match the number of atoms. Missing b-factors
//are filled with zeroes.
func (M *Molecule) Corrupted() error {
	if M.Topology == nil {
		return CError{"Nil topology", []string{"Corrupted"}}
	}
	for i, c := range M.Coords {
		if c == nil || c.NVecs() != M.Len() {
			n := 0
			if c != nil {
				n = c.NVecs()
			}
			return CError{fmt.Sprintf("Inconsistent coordinates/atoms in frame %d: Atoms %d, coords: %d", i, M.Len(), n), []string{"Corrupted"}}
		}
		//Since bfactors are not as important as coordinates, we just fill with
		//zeroes anything that is lacking.
		if len(M.Bfactors) <= i {
			M.Bfactors = append(M.Bfactors, make([]float64, M.Len()))
		} else if len(M.Bfactors[i]) < M.Len() {
			M.Bfactors[i] = make([]float64, M.Len())
		}
	}
	return nil
}

//Copy returns a deep copy of the molecule, including coordinates and bonds.
func (M *Molecule) Copy() *Molecule {
	if err := M.Corrupted(); err != nil {
		panic(err.Error()) //copying a corrupted molecule means that the program is wrong.
	}
	mol := new(Molecule)
	mol.Topology = M.CopyAtoms()
	for i, c := range M.Coords {
		mol.Coords = append(mol.Coords, c.Copy())
		b := make([]float64, len(M.Bfactors[i]))
		copy(b, M.Bfactors[i])
		mol.Bfactors = append(mol.Bfactors, b)
	}
	if M.Box != nil {
		b := *M.Box
		mol.Box = &b
	}
	return mol
}

//Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return M.Topology.Len()
}

//LenFrames returns the number of frames in the molecule
func (M *Molecule) LenFrames() int {
	return len(M.Coords)
}

//Box is a crystallographic unit cell, as given by the CRYST1 PDB record.
//Lengths in A, angles in degrees.
type Box struct {
	A, B, C            float64
	Alpha, Beta, Gamma float64
}

//DefaultBox returns the cubic 10 A box written to PDB files that have none.
func DefaultBox() *Box {
	return &Box{10, 10, 10, 90, 90, 90}
}
