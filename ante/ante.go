/*
 * ante.go, part of antechem.
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

package ante

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	chem "github.com/rmera/antechem"
	"github.com/rmera/antechem/chemgraph"
	v3 "github.com/rmera/antechem/v3"
	"gonum.org/v1/gonum/floats"
)

//The atom typing schemes and charge methods antechamber supports.
//See 'antechamber -L' for details.
var (
	atomTypeSchemes = []string{"gaff", "gaff2", "amber", "bcc", "sybyl"}
	chargeMethods   = []string{"bcc", "gas", "mul"}
)

//Schemes returns the supported atom typing schemes.
func Schemes() []string {
	return append([]string(nil), atomTypeSchemes...)
}

//ChargeMethods returns the supported charge methods.
func ChargeMethods() []string {
	return append([]string(nil), chargeMethods...)
}

const (
	defaultCommand   = "antechamber"
	defaultChargeTol = 0.005
)

//errorLogName returns the name of the error log for the run jobname.
func errorLogName(jobname string) string {
	return "ante_errorlog_" + jobname + ".txt"
}

//Handle runs antechamber. A Handle holds no state between calls, so one
//Handle can be used by several goroutines at the same time.
//Note that the defaults are NOT considered part of the API, so they can always change.
type Handle struct {
	command    string
	timeout    time.Duration
	scratchdir string
	errlogdir  string
	chargetol  float64
}

//NewHandle returns a Handle with the default settings.
func NewHandle() *Handle {
	run := new(Handle)
	run.SetDefaults()
	return run
}

//Handle methods

//SetDefaults sets the default command ("antechamber", looked up in the PATH),
//no timeout, the system's temporary directory for scratch files, no error log
//and a charge tolerance of 0.005.
func (O *Handle) SetDefaults() {
	O.command = defaultCommand
	O.timeout = 0
	O.scratchdir = ""
	O.errlogdir = ""
	O.chargetol = defaultChargeTol
}

//Command returns the antechamber command to be used.
func (O *Handle) Command() string {
	return O.command
}

//SetCommand sets the antechamber binary, either a name to look up in the
//PATH or a path.
func (O *Handle) SetCommand(name string) {
	O.command = name
}

//SetTimeout bounds each antechamber run. 0 means no timeout.
func (O *Handle) SetTimeout(t time.Duration) {
	O.timeout = t
}

//SetScratchDir sets the directory where the per-call scratch directories
//are created. The empty string means the system's temporary directory.
func (O *Handle) SetScratchDir(dir string) {
	O.scratchdir = dir
}

//SetErrorLogDir sets a directory where the antechamber output is written
//(as ante_errorlog_<job>.txt, one file per failed run) when a run fails.
//The empty string disables the log.
func (O *Handle) SetErrorLogDir(dir string) {
	O.errlogdir = dir
}

//SetChargeTolerance sets the default largest allowed difference between the
//requested net charge and the sum of the charges antechamber assigns.
func (O *Handle) SetChargeTolerance(tol float64) {
	O.chargetol = tol
}

//Available returns the full path to the antechamber binary, or an error of
//kind ErrNotFound.
func (O *Handle) Available() (string, error) {
	path, err := exec.LookPath(O.command)
	if err != nil {
		msg := fmt.Sprintf("%s: %s. Please ensure that antechamber is available. It can be installed via conda, 'conda install -c conda-forge ambertools'", O.command, err.Error())
		return "", newError(ErrNotFound, msg, "exec.LookPath", "Available")
	}
	return path, nil
}

//ChargeOptions are the settings for a charge calculation.
type ChargeOptions struct {
	NetCharge    float64
	Multiplicity int     //2S+1
	Tolerance    float64 //0 means the Handle's tolerance
}

//AtomTypes assigns atom types to all atoms in mol using antechamber with the
//given scheme. coords are the coordinates for mol. On success, the Type field
//of every atom in mol is set. On error no atom is modified.
func (O *Handle) AtomTypes(coords *v3.Matrix, mol chem.Atomer, scheme string) error {
	return O.AtomTypesContext(context.Background(), coords, mol, scheme)
}

//AtomTypesContext is like AtomTypes, but the antechamber run is killed if ctx
//is done before it finishes.
func (O *Handle) AtomTypesContext(ctx context.Context, coords *v3.Matrix, mol chem.Atomer, scheme string) error {
	path, err := O.Available()
	if err != nil {
		return errDecorate(err, "AtomTypes")
	}
	if !isInString(atomTypeSchemes, scheme) {
		return newError(ErrUnsupported, fmt.Sprintf("atom types %q. Please select from %v", scheme, atomTypeSchemes), "AtomTypes")
	}
	out, err := O.run(ctx, path, coords, mol, []string{"-at", scheme}, false)
	if err != nil {
		return errDecorate(err, "AtomTypes")
	}
	types := make([]string, out.Len())
	for i := range types {
		types[i] = out.Atom(i).Type
		if types[i] == "" {
			return newError(ErrIntegrity, fmt.Sprintf("no atom type for atom %d", i), "AtomTypes")
		}
	}
	//Nothing can fail from here on.
	for i, t := range types {
		mol.Atom(i).Type = t
	}
	return nil
}

//Charges assigns partial charges to all atoms in mol using antechamber with
//the given method. If opts is nil, the net charge and multiplicity are taken
//from mol when it implements chem.AtomMultiCharger, and are 0 and 1 otherwise.
//If the sum of the charges differs from the net charge by less than the
//tolerance, the difference is spread evenly over all atoms.
//On success, the Charge field of every atom in mol is set. On error no atom is modified.
func (O *Handle) Charges(coords *v3.Matrix, mol chem.Atomer, method string, opts *ChargeOptions) error {
	return O.ChargesContext(context.Background(), coords, mol, method, opts)
}

//ChargesContext is like Charges, but the antechamber run is killed if ctx
//is done before it finishes.
func (O *Handle) ChargesContext(ctx context.Context, coords *v3.Matrix, mol chem.Atomer, method string, opts *ChargeOptions) error {
	path, err := O.Available()
	if err != nil {
		return errDecorate(err, "Charges")
	}
	if !isInString(chargeMethods, method) {
		return newError(ErrUnsupported, fmt.Sprintf("charge method %q. Please select from %v", method, chargeMethods), "Charges")
	}
	o := O.chargeOptions(mol, opts)
	args := []string{"-c", method, "-nc", strconv.FormatFloat(o.NetCharge, 'g', -1, 64), "-m", strconv.Itoa(o.Multiplicity)}
	out, err := O.run(ctx, path, coords, mol, args, true)
	if err != nil {
		return errDecorate(err, "Charges")
	}
	charges := make([]float64, out.Len())
	for i := range charges {
		charges[i] = out.Atom(i).Charge
	}
	sum := floats.Sum(charges)
	if diff := o.NetCharge - sum; math.Abs(diff) > o.Tolerance {
		msg := fmt.Sprintf("the sum of charges defined by antechamber is %.4f, which differs from the desired net charge of %.4f by a value greater than %.4f", sum, o.NetCharge, o.Tolerance)
		return newError(ErrChargeSum, msg, "Charges")
	} else if diff != 0 {
		floats.AddConst(diff/float64(len(charges)), charges)
	}
	//Nothing can fail from here on.
	for i, c := range charges {
		mol.Atom(i).Charge = c
	}
	return nil
}

//chargeOptions fills the blanks in opts.
func (O *Handle) chargeOptions(mol chem.Atomer, opts *ChargeOptions) ChargeOptions {
	var o ChargeOptions
	if opts != nil {
		o = *opts
	} else if mc, ok := mol.(chem.AtomMultiCharger); ok {
		o.NetCharge = float64(mc.Charge())
		o.Multiplicity = mc.Multi()
	}
	if o.Multiplicity <= 0 {
		o.Multiplicity = 1
	}
	if o.Tolerance <= 0 {
		o.Tolerance = O.chargetol
	}
	return o
}

//checkInput verifies that antechamber can work with coords and mol: there must be
//one set of coordinates per atom and the atoms must form a single molecule.
func checkInput(coords *v3.Matrix, mol chem.Atomer) error {
	if mol == nil || mol.Len() == 0 {
		return newError(ErrInput, "no atoms given", "checkInput")
	}
	if coords == nil {
		return newError(ErrInput, "no coordinates given", "checkInput")
	}
	if coords.NVecs() != mol.Len() {
		return newError(ErrInput, fmt.Sprintf("%d coordinates for %d atoms", coords.NVecs(), mol.Len()), "checkInput")
	}
	if mol.Len() == 1 {
		return nil
	}
	bonded := false
	for i := 0; i < mol.Len(); i++ {
		if len(mol.Atom(i).Bonds) > 0 {
			bonded = true
			break
		}
	}
	if !bonded {
		return newError(ErrInput, "antechamber requires connectivity information, and no bonds are defined", "checkInput")
	}
	if !chemgraph.Connected(mol) {
		return newError(ErrInput, "antechamber only supports single molecules, i.e. all atoms must be connected by bonds", "checkInput")
	}
	return nil
}

//run writes the input for antechamber in a fresh scratch directory, runs it with the
//mode-specific arguments, and reads and checks the output. If charged is true, every
//atom in the output must carry a charge. The scratch directory is removed before returning.
func (O *Handle) run(ctx context.Context, path string, coords *v3.Matrix, mol chem.Atomer, modeargs []string, charged bool) (*chem.Molecule, error) {
	if err := checkInput(coords, mol); err != nil {
		return nil, errDecorate(err, "run")
	}
	dir, err := os.MkdirTemp(O.scratchdir, "antechem-")
	if err != nil {
		return nil, newError(ErrFailed, "can't create scratch directory: "+err.Error(), "os.MkdirTemp", "run")
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			log.Printf("ante: couldn't remove scratch directory %s: %v", dir, err)
		}
	}()
	jobname := "ante-" + uuid.NewString()
	inname := jobname + "_in.pdb"
	outname := jobname + "_out.mol2"
	names, err := writeInput(filepath.Join(dir, inname), coords, mol)
	if err != nil {
		return nil, errDecorate(err, "run")
	}
	args := []string{"-i", inname, "-fi", "pdb", "-o", outname, "-fo", "mol2"}
	args = append(args, modeargs...)
	args = append(args, "-s", "2")
	if O.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, O.timeout)
		defer cancel()
	}
	command := exec.CommandContext(ctx, path, args...)
	command.Dir = dir
	command.WaitDelay = time.Second
	var stdout, stderr bytes.Buffer
	command.Stdout = &stdout
	command.Stderr = &stderr
	log.Printf("ante: %s %s (in %s)", path, strings.Join(args, " "), dir)
	err = command.Run()
	if ctx.Err() != nil {
		O.errorLog(jobname, stdout.String(), stderr.String())
		e := newError(ErrFailed, "antechamber run interrupted: "+ctx.Err().Error(), "exec.Cmd.Run", "run")
		e.Diagnostic = diagnostic(stdout.String(), stderr.String())
		return nil, e
	}
	if err != nil || strings.Contains(stderr.String(), "Fatal Error") {
		O.errorLog(jobname, stdout.String(), stderr.String())
		msg := "Fatal Error reported"
		if err != nil {
			msg = err.Error()
		}
		e := newError(ErrFailed, msg, "exec.Cmd.Run", "run")
		e.Diagnostic = diagnostic(stdout.String(), stderr.String())
		return nil, e
	}
	read := chem.Mol2FileRead
	if charged {
		read = chem.Mol2FileReadCharged
	}
	out, err := read(filepath.Join(dir, outname))
	if err != nil {
		msg := "can't read output: " + err.Error()
		if _, serr := os.Stat(filepath.Join(dir, outname)); errors.Is(serr, os.ErrNotExist) {
			msg = fmt.Sprintf("antechamber reported success but %s was not written", outname)
		}
		e := newError(ErrIntegrity, msg, "chem.Mol2FileRead", "run")
		e.Diagnostic = diagnostic(stdout.String(), stderr.String())
		return nil, e
	}
	if err := matchOutput(out, names); err != nil {
		return nil, errDecorate(err, "run")
	}
	return out, nil
}

//diagnostic returns stderr, or stdout if stderr is empty. antechamber
//prints some of its errors to stdout.
func diagnostic(stdout, stderr string) string {
	if strings.TrimSpace(stderr) != "" {
		return stderr
	}
	return stdout
}

//errorLog writes the output of the failed run jobname to the error log directory,
//if one is set. Each run gets its own log file.
func (O *Handle) errorLog(jobname, stdout, stderr string) {
	if O.errlogdir == "" {
		return
	}
	name := filepath.Join(O.errlogdir, errorLogName(jobname))
	content := "STDOUT:\n\n" + stdout + "STDERR:\n\n" + stderr
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		log.Printf("ante: couldn't write error log %s: %v", name, err)
		return
	}
	log.Printf("ante: antechamber failed. See %s", name)
}

//writeInput writes the PDB file antechamber reads. mol is not modified: the file is
//written from copies of its atoms. Atoms without a usable PDB name get a unique
//one. writeInput returns the atom names written, in order.
func writeInput(name string, coords *v3.Matrix, mol chem.Atomer) ([]string, error) {
	n := mol.Len()
	ats := make([]*chem.Atom, n)
	pos := make(map[*chem.Atom]int, n)
	names := make([]string, n)
	for i := 0; i < n; i++ {
		orig := mol.Atom(i)
		pos[orig] = i
		at := orig.Copy()
		if at.Name == "" || len(at.Name) > 4 {
			at.Name = atomName(at.Symbol, i)
		}
		names[i] = at.Name
		ats[i] = at
	}
	for i := 0; i < n; i++ {
		orig := mol.Atom(i)
		for _, b := range orig.Bonds {
			j, ok := pos[b.Cross(orig)]
			if ok && j > i {
				chem.AddBond(ats[i], ats[j], b.Order)
			}
		}
	}
	top := chem.NewTopology(0, 1, ats...)
	if err := chem.PDBFileWrite(name, coords, top, nil); err != nil {
		return nil, newError(ErrInput, "can't write input: "+err.Error(), "chem.PDBFileWrite", "writeInput")
	}
	return names, nil
}

//atomName builds a PDB atom name of at most 4 characters from the element symbol
//and the position of the atom.
func atomName(symbol string, i int) string {
	if symbol == "" {
		symbol = "X"
	}
	name := fmt.Sprintf("%s%d", symbol, i+1)
	if len(name) <= 4 {
		return name
	}
	return symbol[:1] + strings.ToUpper(strconv.FormatInt(int64(i+1), 36))
}

//matchOutput checks that the atoms antechamber returned are the ones it was given,
//in the same order: same number of atoms, and the same name for each position.
func matchOutput(out *chem.Molecule, names []string) error {
	if out.Len() != len(names) {
		return newError(ErrMismatch, fmt.Sprintf("%d atoms in the output, %d in the input", out.Len(), len(names)), "matchOutput")
	}
	for i, n := range names {
		if !strings.EqualFold(out.Atom(i).Name, n) {
			return newError(ErrMismatch, fmt.Sprintf("output atom %d is named %s, expected %s", i, out.Atom(i).Name, n), "matchOutput")
		}
	}
	return nil
}

//isInString returns true if test is in container, false otherwise.
func isInString(container []string, test string) bool {
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}
