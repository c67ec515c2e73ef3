/*
 * gaff.go, part of antechem.
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

package forcefield

import (
	"bytes"
	_ "embed"
)

//go:embed gaff.xml
var gaffXML []byte

func init() {
	MustRegister("gaff", GAFF)
}

//GAFF returns the bundled General Amber Force Field ruleset.
//Each call parses the ruleset again, so the caller owns the result.
func GAFF() (*Forcefield, error) {
	ff, err := Read(bytes.NewReader(gaffXML))
	if err != nil {
		e := err.(Error)
		e.filename = "gaff.xml"
		e.deco = append(e.deco, "GAFF")
		return nil, e
	}
	return ff, nil
}
