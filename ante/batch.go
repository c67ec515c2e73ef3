/*
 * batch.go, part of antechem.
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
	"context"
	"fmt"
	"runtime"

	chem "github.com/rmera/antechem"
	v3 "github.com/rmera/antechem/v3"
	"golang.org/x/sync/errgroup"
)

//Job is one molecule to be processed by TypeMany.
type Job struct {
	Coords *v3.Matrix
	Mol    chem.Atomer
}

//TypeMany assigns atom types with the given scheme to every molecule in jobs, running
//at most workers antechamber processes at the same time (workers < 1 means one per CPU).
//Each molecule is committed or left untouched independently. The first error
//cancels the runs not yet started and is returned, decorated with the
//position of the failed job.
func (O *Handle) TypeMany(ctx context.Context, jobs []*Job, scheme string, workers int) error {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if j == nil {
				return newError(ErrInput, fmt.Sprintf("job %d is nil", i), "TypeMany")
			}
			if err := O.AtomTypesContext(ctx, j.Coords, j.Mol, scheme); err != nil {
				return errDecorate(err, fmt.Sprintf("TypeMany: job %d", i))
			}
			return nil
		})
	}
	return g.Wait()
}
