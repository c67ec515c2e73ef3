/*
 * forcefield_test.go, part of antechem.
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
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

func TestGAFFRegistered(Te *testing.T) {
	found := false
	for _, n := range Names() {
		if n == "gaff" {
			found = true
		}
	}
	if !found {
		Te.Fatalf("gaff not registered: %v", Names())
	}
	ff, err := Load("gaff")
	if err != nil {
		Te.Fatal(err)
	}
	if ff.Name != "GAFF" || ff.CombiningRule != "lorentz" {
		Te.Errorf("Unexpected header %s %s", ff.Name, ff.CombiningRule)
	}
	c3, ok := ff.AtomType("c3")
	if !ok {
		Te.Fatal("c3 not defined")
	}
	if c3.Element != "C" || c3.Mass != 12.01 || c3.Def != "[C;X4]" {
		Te.Errorf("c3 not read properly: %+v", c3)
	}
	if len(ff.Bonds) == 0 || len(ff.Angles) == 0 || len(ff.Nonbonded.Atoms) != len(ff.AtomTypes) {
		Te.Errorf("Parameters not read: %d bonds, %d angles, %d nonbonded", len(ff.Bonds), len(ff.Angles), len(ff.Nonbonded.Atoms))
	}
	if ff.Nonbonded.LJ14Scale != 0.5 {
		Te.Errorf("Expected a 1-4 LJ scale of 0.5, got %f", ff.Nonbonded.LJ14Scale)
	}
	//The propane types
	if m := ff.Missing([]string{"c3", "c3", "hc", "zz", "c3", "aa", "zz"}); len(m) != 2 || m[0] != "aa" || m[1] != "zz" {
		Te.Errorf("Expected [aa zz] missing, got %v", m)
	}
	ff2, _ := Load("gaff")
	ff2.AtomTypes[0].Name = "changed"
	if ff.AtomTypes[0].Name == "changed" {
		Te.Error("Load returned a shared forcefield")
	}
}

func TestRegister(Te *testing.T) {
	if err := Register("", GAFF); err == nil {
		Te.Error("Expected an error for an empty name")
	}
	if err := Register("test-nil", nil); err == nil {
		Te.Error("Expected an error for a nil loader")
	}
	if err := Register("gaff", GAFF); err == nil {
		Te.Error("Expected an error for a duplicate name")
	}
	defer func() {
		if r := recover(); r == nil {
			Te.Error("MustRegister should panic on a duplicate name")
		}
	}()
	MustRegister("gaff", GAFF)
}

func TestLoadErrors(Te *testing.T) {
	_, err := Load("opls-nonexistent")
	if err == nil || !strings.Contains(err.Error(), "gaff") {
		Te.Errorf("Expected an error listing the registered forcefields, got %v", err)
	}
	if err := Register("test-broken", func() (*Forcefield, error) { return Read(strings.NewReader("<ForceField/>")) }); err != nil {
		Te.Fatal(err)
	}
	if _, err := Load("test-broken"); err == nil {
		Te.Error("Expected an error from a forcefield without atom types")
	}
}

func TestConcurrentRegistry(Te *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := Load("gaff"); err != nil {
				Te.Error(err)
			}
			Names()
		}()
	}
	wg.Wait()
}

func TestReadFile(Te *testing.T) {
	dir := Te.TempDir()
	plain := filepath.Join(dir, "gaff.xml")
	if err := os.WriteFile(plain, gaffXML, 0o644); err != nil {
		Te.Fatal(err)
	}
	gzname := filepath.Join(dir, "gaff.xml.gz")
	f, err := os.Create(gzname)
	if err != nil {
		Te.Fatal(err)
	}
	gw := gzip.NewWriter(f)
	gw.Write(gaffXML)
	gw.Close()
	f.Close()
	zstname := filepath.Join(dir, "gaff.xml.zst")
	f, err = os.Create(zstname)
	if err != nil {
		Te.Fatal(err)
	}
	zw, err := zstd.NewWriter(f)
	if err != nil {
		Te.Fatal(err)
	}
	zw.Write(gaffXML)
	zw.Close()
	f.Close()
	for _, name := range []string{plain, gzname, zstname} {
		ff, err := ReadFile(name)
		if err != nil {
			Te.Errorf("%s: %v", name, err)
			continue
		}
		if !ff.HasType("hc") || ff.HasType("HC") {
			Te.Errorf("%s: types not read properly", name)
		}
	}
	bad := filepath.Join(dir, "bad.xml")
	os.WriteFile(bad, []byte("<ForceField><AtomTypes>"), 0o644)
	_, err = ReadFile(bad)
	if err == nil {
		Te.Fatal("Expected an error for a truncated file")
	}
	if e, ok := err.(Error); !ok || e.FileName() != bad {
		Te.Errorf("The error should carry the file name: %v", err)
	}
	if _, err := ReadFile(filepath.Join(dir, "nothere.xml")); err == nil {
		Te.Error("Expected an error for a missing file")
	}
	dup := `<ForceField name="x"><AtomTypes><Type name="a"/><Type name="a"/></AtomTypes></ForceField>`
	if _, err := Read(strings.NewReader(dup)); err == nil {
		Te.Error("Expected an error for a duplicated type")
	}
}
