/*
 * graph.go, part of antechem.
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

//Package chemgraph exposes the bonds of a topology as a Gonum graph, so the
//Gonum graph algorithms can be used on molecules.
package chemgraph

import (
	"sort"

	chem "github.com/rmera/antechem"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

//FromAtomer returns an undirected graph with one node per atom in mol, and
//one edge per bond. Node IDs are the positions of the atoms in mol.
//Bonds to atoms not in mol are ignored.
func FromAtomer(mol chem.Atomer) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	pos := make(map[*chem.Atom]int64, mol.Len())
	for i := 0; i < mol.Len(); i++ {
		pos[mol.Atom(i)] = int64(i)
		g.AddNode(simple.Node(i))
	}
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		for _, b := range at.Bonds {
			j, ok := pos[b.Cross(at)]
			if !ok || j == int64(i) {
				continue
			}
			g.SetEdge(g.NewEdge(simple.Node(i), simple.Node(j)))
		}
	}
	return g
}

//Components returns the connected components of mol, each as a sorted slice of
//atom positions. The components are ordered by their first atom.
func Components(mol chem.Atomer) [][]int {
	if mol.Len() == 0 {
		return nil
	}
	cc := topo.ConnectedComponents(FromAtomer(mol))
	ret := make([][]int, 0, len(cc))
	for _, c := range cc {
		comp := make([]int, 0, len(c))
		for _, n := range c {
			comp = append(comp, int(n.ID()))
		}
		sort.Ints(comp)
		ret = append(ret, comp)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret
}

//Connected returns true if all the atoms in mol are connected by bonds, i.e.
//if mol is a single molecule.
func Connected(mol chem.Atomer) bool {
	return len(Components(mol)) == 1
}
