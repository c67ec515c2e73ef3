/*
 * registry.go, part of antechem.
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
	"fmt"
	"sort"
	"sync"
)

//Loader returns a fully loaded forcefield.
type Loader func() (*Forcefield, error)

var (
	regmu    sync.RWMutex
	registry = make(map[string]Loader)
)

//Register associates name with the loader l. It is an error to register an
//empty name, a nil loader, or the same name twice.
func Register(name string, l Loader) error {
	if name == "" {
		return Error{"can't register a forcefield without a name", "", []string{"Register"}}
	}
	if l == nil {
		return Error{fmt.Sprintf("nil loader for forcefield %s", name), "", []string{"Register"}}
	}
	regmu.Lock()
	defer regmu.Unlock()
	if _, ok := registry[name]; ok {
		return Error{fmt.Sprintf("forcefield %s registered twice", name), "", []string{"Register"}}
	}
	registry[name] = l
	return nil
}

//MustRegister is like Register, but panics on error. It is meant to be used from init functions.
func MustRegister(name string, l Loader) {
	if err := Register(name, l); err != nil {
		panic(err.Error())
	}
}

//Load returns the forcefield registered as name.
func Load(name string) (*Forcefield, error) {
	regmu.RLock()
	l, ok := registry[name]
	regmu.RUnlock()
	if !ok {
		return nil, Error{fmt.Sprintf("no forcefield %q registered. Registered forcefields: %v", name, Names()), "", []string{"Load"}}
	}
	ff, err := l()
	if err != nil {
		if e, ok := err.(Error); ok {
			e.deco = append(e.deco, "Load")
			return nil, e
		}
		return nil, Error{fmt.Sprintf("loading %s: %s", name, err.Error()), "", []string{"Load"}}
	}
	if ff == nil {
		return nil, Error{fmt.Sprintf("the loader for %s returned no forcefield", name), "", []string{"Load"}}
	}
	return ff, nil
}

//Names returns the registered forcefield names, sorted.
func Names() []string {
	regmu.RLock()
	defer regmu.RUnlock()
	ret := make([]string, 0, len(registry))
	for k := range registry {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}
