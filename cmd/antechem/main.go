/*
 * main.go, part of antechem.
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

//antechem assigns atom types and/or partial charges to a molecule with
//antechamber, and writes a report with the result.
//
//	antechem -types gaff -charges bcc -plot charges.png propane.pdb
//
//The antechamber binary and other settings can be given in the environment
//(ANTECHAMBER, ANTECHEM_TIMEOUT, ANTECHEM_SCRATCH, ANTECHEM_ERRLOG, ANTECHEM_CHARGE_TOL).
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	chem "github.com/rmera/antechem"
	"github.com/rmera/antechem/ante"
	"github.com/rmera/antechem/chemplot"
	"github.com/rmera/antechem/forcefield"
	"github.com/rmera/antechem/report"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("antechem", flag.ContinueOnError)
	types := fs.String("types", "gaff", fmt.Sprintf("atom typing scheme, one of %v. Empty to skip typing", ante.Schemes()))
	charges := fs.String("charges", "", fmt.Sprintf("charge method, one of %v. Empty to skip charges", ante.ChargeMethods()))
	net := fs.Float64("nc", 0, "net charge of the molecule")
	multi := fs.Int("m", 1, "multiplicity (2S+1)")
	ffname := fs.String("ff", "", fmt.Sprintf("check the assigned types against this forcefield, one of %v, or a file", forcefield.Names()))
	format := fs.String("format", "yaml", "report format, yaml or json")
	out := fs.String("o", "", "report file. Standard output if empty")
	plotname := fs.String("plot", "", "save a plot of the partial charges to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("antechem: exactly one input file required, got %d", fs.NArg())
	}
	if *types == "" && *charges == "" {
		return fmt.Errorf("antechem: nothing to do, give -types and/or -charges")
	}
	if *format != "yaml" && *format != "json" {
		return fmt.Errorf("antechem: unknown report format %q", *format)
	}
	mol, err := readMolecule(fs.Arg(0))
	if err != nil {
		return err
	}
	if len(chem.Bonds(mol)) == 0 && mol.Len() > 1 {
		log.Printf("antechem: no bonds in %s, assigning them from the coordinates", fs.Arg(0))
		if err := chem.AssignBonds(mol.Coords[0], mol); err != nil {
			return err
		}
	}
	h, err := ante.NewHandleFromEnv()
	if err != nil {
		return err
	}
	if *types != "" {
		log.Printf("antechem: assigning %s atom types to %d atoms", *types, mol.Len())
		if err := h.AtomTypesContext(ctx, mol.Coords[0], mol, *types); err != nil {
			return err
		}
	}
	if *charges != "" {
		log.Printf("antechem: assigning %s charges, net charge %g, multiplicity %d", *charges, *net, *multi)
		opts := &ante.ChargeOptions{NetCharge: *net, Multiplicity: *multi}
		if err := h.ChargesContext(ctx, mol.Coords[0], mol, *charges, opts); err != nil {
			return err
		}
	}
	rep := report.New(mol, *types, *charges)
	if *ffname != "" && *types != "" {
		ff, err := loadForcefield(*ffname)
		if err != nil {
			return err
		}
		rep.Forcefield = ff.Name
		rep.Missing = ff.Missing(rep.Types())
		if len(rep.Missing) > 0 {
			log.Printf("antechem: types not defined in %s: %s", ff.Name, strings.Join(rep.Missing, " "))
		}
	}
	w := stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if *format == "json" {
		err = rep.WriteJSON(w)
	} else {
		err = rep.WriteYAML(w)
	}
	if err != nil {
		return err
	}
	if *plotname != "" {
		title := strings.TrimSuffix(filepath.Base(fs.Arg(0)), filepath.Ext(fs.Arg(0)))
		if *charges != "" {
			title += " " + *charges + " charges"
		}
		if err := chemplot.ChargeProfile(mol, title, *plotname); err != nil {
			return err
		}
	}
	return nil
}

//readMolecule reads a PDB, XYZ or mol2 file, depending on its extension.
func readMolecule(name string) (*chem.Molecule, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdb", ".ent":
		return chem.PDBFileRead(name)
	case ".xyz":
		return chem.XYZFileRead(name)
	case ".mol2":
		return chem.Mol2FileRead(name)
	}
	return nil, fmt.Errorf("antechem: unknown format for %s. Use .pdb, .xyz or .mol2", name)
}

//loadForcefield returns the registered forcefield called name, or reads it from
//the file name if no such forcefield is registered.
func loadForcefield(name string) (*forcefield.Forcefield, error) {
	for _, n := range forcefield.Names() {
		if n == name {
			return forcefield.Load(name)
		}
	}
	return forcefield.ReadFile(name)
}
