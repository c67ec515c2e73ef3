/*
 * atomicdata.go, part of antechem.
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

import "strings"

//A map for assigning mass to elements.
//Note that just common "bio-elements" are present
var symbolMass = map[string]float64{
	"H":  1.008,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"Se": 78.96,
	"K":  39.1,
	"Ca": 40.08,
	"Mg": 24.30,
	"Cl": 35.45,
	"Na": 22.99,
	"Cu": 63.55,
	"Zn": 65.38,
	"Co": 58.93,
	"Fe": 55.84,
	"Mn": 54.94,
	"Cr": 51.996,
	"Si": 28.08,
	"Be": 9.012,
	"F":  18.998,
	"Br": 79.904,
	"I":  126.90,
}

//A map for assigning covalent radii to elements
//Values from Cordero et al., 2008 (DOI:10.1039/B801115J)
//Note that just common "bio-elements" are present
var symbolCovrad = map[string]float64{
	"H":  0.4, // 0.31 I altered this one. Since H always has only one bond, the extra bonds get eliminated later.
	"C":  0.76, //the sp3 radius
	"O":  0.66,
	"N":  0.71,
	"P":  1.07,
	"S":  1.05,
	"Se": 1.2,
	"K":  2.03,
	"Ca": 1.76,
	"Mg": 1.41,
	"Cl": 1.02,
	"Na": 1.66,
	"Cu": 1.32,
	"Zn": 1.22,
	"Co": 1.5,  // hs
	"Fe": 1.52, //hs
	"Mn": 1.61, //hs
	"Cr": 1.39,
	"Si": 1.11,
	"Be": 0.96,
	"F":  0.57,
	"Br": 1.2,
	"I":  1.39,
}

//Maximum number of bonds for each element. Elements not
//present have no limit.
var symbolMaxBonds = map[string]int{
	"H":  1,
	"C":  4,
	"N":  4,
	"O":  2,
	"F":  1,
	"Cl": 1,
	"Br": 1,
	"I":  1,
}

//Mass returns the mass for the element symbol, or 0 if unknown.
func Mass(symbol string) float64 {
	return symbolMass[symbol]
}

//This tries to guess a chemical element symbol from a PDB atom name. Mostly based on AMBER names.
//It only deals with some common bio-elements.
func symbolFromName(name string) (string, error) {
	name = strings.ToUpper(strings.TrimLeft(name, "0123456789"))
	if name == "" {
		return "", CError{"Couldn't guess symbol from empty PDB name", []string{"symbolFromName"}}
	}
	two := map[string]string{"CL": "Cl", "CU": "Cu", "ZN": "Zn", "BR": "Br", "SE": "Se", "NA": "Na", "MG": "Mg", "FE": "Fe"}
	if len(name) >= 2 {
		//Names like "CL1" are chlorine, but "CA" is an alpha carbon.
		if s, ok := two[name[:2]]; ok && (len(name) == 2 || name[2] < 'A' || name[2] > 'Z') {
			return s, nil
		}
	}
	switch name[0] {
	case 'H', 'C', 'N', 'O', 'P', 'S', 'F', 'I', 'K':
		return string(name[0]), nil
	}
	return "", CError{"Couldn't guess symbol from PDB name " + name, []string{"symbolFromName"}}
}
