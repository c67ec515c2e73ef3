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

/*Package chem is the main package of the antechem library. It provides atom and molecule
structures, and facilities for reading and writing the files exchanged with the
AmberTools antechamber program.


	**antechem Capabilities**


    Reads/writes PDB (with CRYST1 and CONECT records) and XYZ files.

    Reads Tripos mol2 files, including atom types and partial charges.

    Assigns bonds from interatomic distances and covalent radii.

    Runs antechamber to assign GAFF/AMBER atom types or AM1-BCC charges
	(package ante). antechamber must be obtained independently, for instance
	with "conda install -c conda-forge ambertools".

    Keeps a registry of forcefield rulesets, with GAFF bundled (package forcefield).

    Checks molecular connectivity with Gonum graphs (package chemgraph).

    Plots charge profiles (package chemplot) and writes YAML/JSON typing reports
	(package report).
*/
package chem
