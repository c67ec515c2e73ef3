/*
 * config.go, part of antechem.
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
	"time"

	"github.com/caarlos0/env/v11"
)

//Config holds the Handle settings that can be given through the environment.
type Config struct {
	Command   string        `env:"ANTECHAMBER" envDefault:"antechamber"`
	Timeout   time.Duration `env:"ANTECHEM_TIMEOUT"`
	Scratch   string        `env:"ANTECHEM_SCRATCH"`
	ErrLogDir string        `env:"ANTECHEM_ERRLOG"`
	ChargeTol float64       `env:"ANTECHEM_CHARGE_TOL" envDefault:"0.005"`
}

//ParseEnv reads a Config from the environment.
func ParseEnv() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return c, fmt.Errorf("ante: parse env: %w", err)
	}
	if c.ChargeTol < 0 {
		return c, fmt.Errorf("ante: ANTECHEM_CHARGE_TOL must not be negative, got %g", c.ChargeTol)
	}
	return c, nil
}

//NewHandleFromConfig returns a Handle with the settings in c. Empty
//fields keep their defaults.
func NewHandleFromConfig(c Config) *Handle {
	O := NewHandle()
	if c.Command != "" {
		O.SetCommand(c.Command)
	}
	O.SetTimeout(c.Timeout)
	O.SetScratchDir(c.Scratch)
	O.SetErrorLogDir(c.ErrLogDir)
	if c.ChargeTol > 0 {
		O.SetChargeTolerance(c.ChargeTol)
	}
	return O
}

//NewHandleFromEnv returns a Handle configured from the environment.
func NewHandleFromEnv() (*Handle, error) {
	c, err := ParseEnv()
	if err != nil {
		return nil, err
	}
	return NewHandleFromConfig(c), nil
}
