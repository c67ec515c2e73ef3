/*
 * bonds.go, part of antechem.
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
	"sort"

	v3 "github.com/rmera/antechem/v3"
)

//constants from DOI:10.1186/1758-2946-3-33
const (
	tooclose = 0.63
	bondtol  = 0.45
)

//Bond represents a chemical bond between two atoms.
type Bond struct {
	Index int
	At1   *Atom
	At2   *Atom
	Dist  float64
	Order float64 //Order 0 means undetermined
}

//Cross returns the atom bonded to origin through B.
func (B *Bond) Cross(origin *Atom) *Atom {
	if origin == B.At1 {
		return B.At2
	}
	if origin == B.At2 {
		return B.At1
	}
	panic("Trying to cross a bond: The origin atom given is not present in the bond!") //I think this got to be a programming error, so a panic is warranted.
}

//AddBond bonds at1 and at2 with the given order, unless they are already bonded.
//It returns the bond connecting the two atoms.
func AddBond(at1, at2 *Atom, order float64) *Bond {
	if at1 == at2 {
		panic("AddBond: Can't bond an atom to itself")
	}
	for _, b := range at1.Bonds {
		if b.Cross(at1) == at2 {
			return b
		}
	}
	b := &Bond{Index: -1, At1: at1, At2: at2, Order: order}
	at1.Bonds = append(at1.Bonds, b)
	at2.Bonds = append(at2.Bonds, b)
	return b
}

//Bonds returns every bond in mol once, sorted by the indexes of the atoms involved.
//The Index field of each bond is set to its position in the returned slice.
func Bonds(mol Atomer) []*Bond {
	seen := make(map[*Bond]bool)
	ret := make([]*Bond, 0, mol.Len())
	pos := make(map[*Atom]int, mol.Len())
	for i := 0; i < mol.Len(); i++ {
		pos[mol.Atom(i)] = i
	}
	for i := 0; i < mol.Len(); i++ {
		for _, b := range mol.Atom(i).Bonds {
			if seen[b] {
				continue
			}
			seen[b] = true
			ret = append(ret, b)
		}
	}
	key := func(b *Bond) (int, int) {
		i, j := pos[b.At1], pos[b.At2]
		if i > j {
			i, j = j, i
		}
		return i, j
	}
	sort.Slice(ret, func(i, j int) bool {
		a1, a2 := key(ret[i])
		b1, b2 := key(ret[j])
		if a1 != b1 {
			return a1 < b1
		}
		return a2 < b2
	})
	for i, b := range ret {
		b.Index = i
	}
	return ret
}

//removeBond removes b from both its atoms.
func removeBond(b *Bond) {
	b.At1.Bonds = takefromslice(b.At1.Bonds, b)
	b.At2.Bonds = takefromslice(b.At2.Bonds, b)
}

//return a new *Bond slice with the bond b removed
func takefromslice(bonds []*Bond, b *Bond) []*Bond {
	newb := make([]*Bond, 0, len(bonds))
	for _, v := range bonds {
		if v != b {
			newb = append(newb, v)
		}
	}
	return newb
}

//AssignBonds assigns bonds to a molecule based on a simple distance
//criterium, similar to that described in DOI:10.1186/1758-2946-3-33
//Bonds already present are kept.
func AssignBonds(coord *v3.Matrix, mol Atomer) error {
	// might get slow for
	//large systems. It's really not thought
	//for proteins or macromolecules.
	tot := mol.Len()
	if coord == nil || coord.NVecs() != tot {
		return CError{"Coordinates don't match the number of atoms", []string{"AssignBonds"}}
	}
	t3 := v3.Zeros(1)
	for i := 0; i < tot; i++ {
		t1 := coord.VecView(i)
		at1 := mol.Atom(i)
		cov1 := symbolCovrad[at1.Symbol]
		if cov1 == 0 {
			return CError{fmt.Sprintf("Couldn't find the covalent radii  for %s %d", at1.Symbol, i), []string{"AssignBonds"}}
		}
		for j := i + 1; j < tot; j++ {
			t2 := coord.VecView(j)
			at2 := mol.Atom(j)
			cov2 := symbolCovrad[at2.Symbol]
			if cov2 == 0 {
				return CError{fmt.Sprintf("Couldn't find the covalent radii  for %s %d", at2.Symbol, j), []string{"AssignBonds"}}
			}
			t3.Sub(t2, t1)
			d := t3.Norm()
			if d < cov1+cov2+bondtol && d > tooclose {
				b := AddBond(at1, at2, 0)
				b.Dist = d
			}
		}
	}
	//Now we check that no atom has too many bonds.
	for i := 0; i < tot; i++ {
		at := mol.Atom(i)
		max := symbolMaxBonds[at.Symbol]
		if max == 0 { //means there is not a specified number of bonds for this atom.
			continue
		}
		sort.Slice(at.Bonds, func(i, j int) bool { return at.Bonds[i].Dist < at.Bonds[j].Dist })
		for len(at.Bonds) > max {
			removeBond(at.Bonds[len(at.Bonds)-1]) //we remove the longest bond
		}
	}
	Bonds(mol)
	return nil
}
