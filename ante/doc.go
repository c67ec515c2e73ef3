/*
 * doc.go, part of antechem.
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

//Package ante assigns atom types and partial charges to molecules by running
//the antechamber program from AmberTools.
//
//Each call writes the molecule to a PDB file in its own scratch directory,
//runs antechamber there, reads back the mol2 file it produces, and checks that the
//output describes the same atoms, in the same order, as the input. Only then
//are the atoms updated. If anything goes wrong, the molecule is left as it was
//and an Error is returned, whose Kind tells what failed. The scratch directory
//is always removed.
//
//	h := ante.NewHandle()
//	if err := h.AtomTypes(mol.Coords[0], mol, "gaff"); err != nil {
//		if errors.Is(err, ante.ErrNotFound) {
//			//antechamber is not installed
//		}
//	}
package ante
