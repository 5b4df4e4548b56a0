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

package wildfire

import "fmt"

// GridOutOfBoundsError indicates that a cell index fell outside the grid's
// extent. Reaching this through the public API (Simulator.StartFire,
// Simulator.Step) is a programmer error; the simulator never produces it for
// valid inputs.
type GridOutOfBoundsError struct {
	X, Y  int
	W, H  int
}

func (e GridOutOfBoundsError) Error() string {
	return fmt.Sprintf("wildfire: cell (%d, %d) is out of bounds for a %dx%d grid", e.X, e.Y, e.W, e.H)
}

// EmptyIgnitionError is returned by Simulator.StartFire when the requested
// ignition parameters yield zero cells after clamping to the grid. State is
// left unmutated.
type EmptyIgnitionError struct {
	XPercent, YPercent, RadiusM float64
}

func (e EmptyIgnitionError) Error() string {
	return fmt.Sprintf("wildfire: ignition at (%.3f, %.3f) with radius %gm yields no cells on this grid",
		e.XPercent, e.YPercent, e.RadiusM)
}

// DegeneratePerimeterError indicates that a convex hull was requested over
// fewer than two distinct points. Simulator.Step still completes in this
// case; it treats the fire's bounds as empty so every candidate cell is
// admitted on the following step.
type DegeneratePerimeterError struct {
	NumPoints int
}

func (e DegeneratePerimeterError) Error() string {
	return fmt.Sprintf("wildfire: convex hull requires at least 2 distinct points, got %d", e.NumPoints)
}
