/*
 * errors.go, part of antechem.
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
	"fmt"
	"strings"
)

//Kind is the category of a bridge failure. Kinds are errors themselves, so
//errors.Is(err, ErrNotFound) works on any error returned by this package.
type Kind string

func (k Kind) Error() string { return string(k) }

const (
	ErrNotFound    Kind = "antechamber not found"
	ErrFailed      Kind = "antechamber failed"
	ErrIntegrity   Kind = "antechamber output missing or malformed"
	ErrMismatch    Kind = "antechamber output doesn't match the input atoms"
	ErrUnsupported Kind = "unsupported scheme"
	ErrInput       Kind = "invalid input structure"
	ErrChargeSum   Kind = "charges don't add up to the net charge"
)

//Error is the error type for the ante package. It implements chem.Error.
type Error struct {
	Kind       Kind
	message    string
	Diagnostic string //What antechamber wrote to stderr (or stdout, if stderr was empty)
	deco       []string
}

func (err Error) Error() string {
	s := fmt.Sprintf("ante: %s", err.Kind)
	if err.message != "" {
		s = s + ": " + err.message
	}
	if d := strings.TrimSpace(err.Diagnostic); d != "" {
		s = s + "\n" + d
	}
	return s
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//Is reports whether target is the Kind of err.
func (err Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == err.Kind
}

//Critical is always true: no bridge failure is recovered locally.
func (err Error) Critical() bool { return true }

func newError(kind Kind, msg string, deco ...string) Error {
	return Error{Kind: kind, message: msg, deco: deco}
}

//errDecorate adds caller to the decoration of err, if it is an Error.
func errDecorate(err error, caller string) error {
	if e, ok := err.(Error); ok {
		e.deco = append(e.deco, caller)
		return e
	}
	return err
}
