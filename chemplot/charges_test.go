/*
 * charges_test.go, part of antechem.
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

package chemplot

import (
	"os"
	"path/filepath"
	"testing"

	chem "github.com/rmera/antechem"
)

func TestChargeProfile(Te *testing.T) {
	mol, err := chem.Mol2FileRead("../test/propane_bcc.mol2")
	if err != nil {
		Te.Fatal(err)
	}
	dir := Te.TempDir()
	for _, name := range []string{"charges.png", "charges.svg"} {
		out := filepath.Join(dir, name)
		if err := ChargeProfile(mol, "Propane AM1-BCC charges", out); err != nil {
			Te.Fatal(err)
		}
		if fi, err := os.Stat(out); err != nil || fi.Size() == 0 {
			Te.Errorf("%s not written: %v", name, err)
		}
	}
	if err := ChargeProfile(chem.NewTopology(0, 1), "empty", filepath.Join(dir, "e.png")); err == nil {
		Te.Error("Expected an error for an empty molecule")
	}
}

func TestTypeColor(Te *testing.T) {
	seen := make(map[[3]uint8]bool)
	for i := 0; i < 5; i++ {
		c := typeColor(i, 5)
		k := [3]uint8{c.R, c.G, c.B}
		if seen[k] {
			Te.Errorf("Color %v repeated", k)
		}
		seen[k] = true
	}
	if r, g, b := iHVS2RGB(0, 1, 1); r != 255 || g != 0 || b != 0 {
		Te.Errorf("Hue 0 should be red, got %d %d %d", r, g, b)
	}
}
