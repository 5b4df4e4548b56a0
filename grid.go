/*
Copyright © 2013 the InMAP authors.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package wildfire simulates the spatial progression of a wildfire across a
// terrain surface derived from a digital elevation model. It owns the grid
// data model, the per-cell Rothermel-style spread computation, the per-hour
// front advancement, and the convex-hull perimeter that bounds the active
// fire.
package wildfire

import (
	"github.com/ctessum/sparse"
	"github.com/sirupsen/logrus"
)

// Log is the package logger, following the teacher's convention of a
// package-level logrus.FieldLogger rather than a hidden global *log.Logger.
var Log logrus.FieldLogger = logrus.StandardLogger()

// Status is a cell's position in the burn state machine:
// Unburnt -> Active -> Burnt, with Burnt terminal.
type Status uint8

const (
	Unburnt Status = iota
	Active
	Burnt
)

func (s Status) String() string {
	switch s {
	case Unburnt:
		return "Unburnt"
	case Active:
		return "Active"
	case Burnt:
		return "Burnt"
	default:
		return "Unknown"
	}
}

// Cell is a single grid element: its elevation, fuel class, and burn state.
// Cells are owned by the Grid and referenced everywhere else by (X, Y)
// index, never by an aliased pointer into the grid's storage.
type Cell struct {
	X, Y          int
	Elevation     int16 // meters above sea level
	FuelClass     FuelClass
	Status        Status
	TimeRemaining uint16 // hours; meaningful only when Status == Active
}

// Index packs a cell's (X, Y) position into a single comparable key,
// replacing the source's stringified-coordinate cell keys (spec §9).
type Index struct {
	X, Y int
}

// ignite transitions c from Unburnt to Active with a fresh burn duration.
// Igniting a non-Unburnt cell is a no-op (spec §3).
func (c *Cell) ignite(fm FuelModel) {
	if c.Status != Unburnt {
		return
	}
	c.Status = Active
	c.TimeRemaining = fm.BurnDuration
}

// burn decrements an Active cell's remaining burn time by one hour,
// transitioning it to Burnt at zero. Calling burn on a non-Active cell is a
// no-op.
func (c *Cell) burn() {
	if c.Status != Active {
		return
	}
	c.TimeRemaining--
	if c.TimeRemaining == 0 {
		c.Status = Burnt
	}
}

// Grid is the fixed-size 2D array of cells allocated once from a DEM.
// Element access from the public API is bounds-checked; internal spread and
// growth computations assume validity once a caller has confirmed a cell is
// in bounds.
type Grid struct {
	W, H   int
	Dx, Dy float64 // meters per cell, along X and Y

	cells      []Cell
	elevations *sparse.DenseArrayInt // backing store handed off by the DEM boundary
}

// ProgressFunc is called during grid construction with the number of rows
// converted so far and the total row count, mirroring the progress-bar hook
// the Python original wires into its DEM-to-grid conversion.
type ProgressFunc func(rowsDone, totalRows int)

// NewGrid builds a Grid from a row-major elevation array (H rows of W
// columns each) and a pixel pitch. progress may be nil.
func NewGrid(elevations [][]int16, dx, dy float64, progress ProgressFunc) (*Grid, error) {
	h := len(elevations)
	if h == 0 || len(elevations[0]) == 0 {
		return nil, &GridConstructionError{Reason: "elevation grid is empty"}
	}
	w := len(elevations[0])
	if dx <= 0 || dy <= 0 {
		return nil, &GridConstructionError{Reason: "dx and dy must be positive"}
	}

	store := sparse.ZerosDenseInt(h, w)
	cells := make([]Cell, h*w)
	for y, row := range elevations {
		if len(row) != w {
			return nil, &GridConstructionError{Reason: "elevation rows must all have the same length"}
		}
		for x, elev := range row {
			store.Set(int(elev), y, x)
			cells[y*w+x] = Cell{
				X:         x,
				Y:         y,
				FuelClass: GrassFuel,
				Status:    Unburnt,
			}
		}
		if progress != nil {
			progress(y+1, h)
		}
	}

	return &Grid{
		W:          w,
		H:          h,
		Dx:         dx,
		Dy:         dy,
		cells:      cells,
		elevations: store,
	}, nil
}

// GridConstructionError reports an invalid DEM handed to NewGrid — a
// boundary-contract violation (spec §6), not a GridOutOfBoundsError.
type GridConstructionError struct{ Reason string }

func (e *GridConstructionError) Error() string { return "wildfire: invalid grid input: " + e.Reason }

// InBounds reports whether (x, y) addresses a cell in the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// at returns a pointer into the grid's own cell storage, with Elevation
// refreshed from the backing sparse.DenseArrayInt — the elevation grid is
// the single canonical store (populated once in NewGrid, queried on every
// access here), the same dense-array-as-source-of-truth pattern popgrid.go
// uses for gridded data.
func (g *Grid) at(x, y int) *Cell {
	c := &g.cells[y*g.W+x]
	c.Elevation = int16(g.elevations.Get(y, x))
	return c
}

// Cell returns a copy of the cell at (x, y). The second return value is
// false if (x, y) is out of bounds.
func (g *Grid) Cell(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return Cell{}, false
	}
	return *g.at(x, y), true
}

// mustCell panics with GridOutOfBoundsError if (x, y) is out of bounds. It
// is used internally once the public API has already validated an index,
// so reaching the panic means a bug in this package, not bad caller input.
func (g *Grid) mustCell(x, y int) *Cell {
	if !g.InBounds(x, y) {
		panic(GridOutOfBoundsError{X: x, Y: y, W: g.W, H: g.H})
	}
	return g.at(x, y)
}

// Ignite transitions the cell at (x, y) per the burn state machine (spec
// §3) and reports whether it actually ignited (false if it was already
// Active or Burnt, or out of bounds).
func (g *Grid) Ignite(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	c := g.at(x, y)
	if c.Status != Unburnt {
		return false
	}
	c.ignite(FuelModelFor(c.FuelClass))
	return true
}

// Burn ticks the cell at (x, y) by one hour.
func (g *Grid) Burn(x, y int) {
	if !g.InBounds(x, y) {
		return
	}
	g.at(x, y).burn()
}
