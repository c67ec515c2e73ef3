/*
 * main_test.go, part of antechem.
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

package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

//fakeAntechamber writes a script that copies the mol2 file fixture
//to the output file antechamber is asked for.
func fakeAntechamber(Te *testing.T, fixture string) string {
	Te.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		Te.Skip("no shell available for the fake antechamber")
	}
	abs, err := filepath.Abs(fixture)
	if err != nil {
		Te.Fatal(err)
	}
	script := fmt.Sprintf(`#!/bin/sh
out=""
while [ $# -gt 0 ]; do
	if [ "$1" = "-o" ]; then out="$2"; fi
	shift
done
cp "%s" "$out"
`, abs)
	name := filepath.Join(Te.TempDir(), "antechamber")
	if err := os.WriteFile(name, []byte(script), 0o755); err != nil {
		Te.Fatal(err)
	}
	return name
}

func TestRunTypes(Te *testing.T) {
	Te.Setenv("ANTECHAMBER", fakeAntechamber(Te, "../../test/propane_gaff.mol2"))
	var out bytes.Buffer
	if err := run(context.Background(), []string{"-types", "gaff", "-ff", "gaff", "../../test/propane.pdb"}, &out); err != nil {
		Te.Fatal(err)
	}
	s := out.String()
	if !strings.Contains(s, "type: c3") || !strings.Contains(s, "type: hc") || !strings.Contains(s, "forcefield: GAFF") {
		Te.Errorf("Unexpected report:\n%s", s)
	}
	if strings.Contains(s, "missing_types") {
		Te.Errorf("All propane types are in GAFF:\n%s", s)
	}
}

func TestRunCharges(Te *testing.T) {
	Te.Setenv("ANTECHAMBER", fakeAntechamber(Te, "../../test/propane_bcc.mol2"))
	dir := Te.TempDir()
	report := filepath.Join(dir, "report.json")
	plot := filepath.Join(dir, "charges.png")
	args := []string{"-types", "", "-charges", "bcc", "-format", "json", "-o", report, "-plot", plot, "../../test/propane.pdb"}
	if err := run(context.Background(), args, &bytes.Buffer{}); err != nil {
		Te.Fatal(err)
	}
	b, err := os.ReadFile(report)
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(string(b), `"charge_method": "bcc"`) {
		Te.Errorf("Unexpected report:\n%s", b)
	}
	if _, err := os.Stat(plot); err != nil {
		Te.Errorf("Plot not written: %v", err)
	}
}

func TestRunErrors(Te *testing.T) {
	cases := [][]string{
		{},
		{"-types", "", "../../test/propane.pdb"},
		{"-format", "toml", "../../test/propane.pdb"},
		{"../../test/propane.gro"},
		{"-types", "opls", "../../test/propane.pdb"},
	}
	Te.Setenv("ANTECHAMBER", fakeAntechamber(Te, "../../test/propane_gaff.mol2"))
	for _, c := range cases {
		if err := run(context.Background(), c, &bytes.Buffer{}); err == nil {
			Te.Errorf("Expected an error for arguments %v", c)
		}
	}
}
