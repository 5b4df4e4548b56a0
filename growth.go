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

import (
	"math"

	"github.com/ctessum/geom"
	"github.com/ctessum/wildfire/geomutil"
)

// compassOffsets lists the 8 compass neighbors in the fixed order the
// emission octagon is built in: N, NE, E, SE, S, SW, W, NW (spec §4.5 step 3).
var compassOffsets = [8]struct{ DX, DY int }{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

const quarterTurn = math.Pi / 4

// emissionVertex converts the rate of spread from source toward the compass
// direction (dx, dy) into a clamped octagon vertex (spec §4.5 steps 1-3). A
// neighbor that falls off the grid contributes a rate of zero, so the vertex
// collapses onto source.
func emissionVertex(g *Grid, source Cell, wind geomutil.Vector, dx, dy int) geom.Point {
	var rate float64
	if nx, ny := source.X+dx, source.Y+dy; g.InBounds(nx, ny) {
		target, _ := g.Cell(nx, ny)
		rate = RateOfSpread(g, source, target, wind)
	}

	var cellsX, cellsY int
	switch {
	case dx != 0 && dy != 0: // diagonal: equal 45-degree split, not the true bearing when Dx != Dy
		cellsX = dx * int(math.Trunc(rate*math.Cos(quarterTurn)/g.Dx))
		cellsY = dy * int(math.Trunc(rate*math.Sin(quarterTurn)/g.Dy))
	case dx != 0: // E/W
		cellsX = dx * int(math.Trunc(rate/g.Dx))
	default: // N/S
		cellsY = dy * int(math.Trunc(rate/g.Dy))
	}

	x := clampFloat(float64(source.X+cellsX), 0, float64(g.W))
	y := clampFloat(float64(source.Y+cellsY), 0, float64(g.H))
	return geom.Point{X: x, Y: y}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// emissionFootprint computes the one-hour ignition footprint of source
// (spec §4.5 steps 1-5): it builds the 8-vertex emission octagon, ignites
// every non-Burnt cell the octagon covers, and reports both the full set of
// covered cells (touched) and the subset that actually transitioned out of
// Unburnt this call (fresh).
func emissionFootprint(g *Grid, source Cell, wind geomutil.Vector) (touched, fresh []Index) {
	ring := make([]geom.Point, len(compassOffsets))
	for i, d := range compassOffsets {
		ring[i] = emissionVertex(g, source, wind, d.DX, d.DY)
	}
	octagon := geomutil.NewBound(ring)

	minX, minY, maxX, maxY := ring[0].X, ring[0].Y, ring[0].X, ring[0].Y
	for _, p := range ring[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	x0, y0 := int(math.Floor(minX)), int(math.Floor(minY))
	x1, y1 := int(math.Ceil(maxX)), int(math.Ceil(maxY))

	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			if !g.InBounds(cx, cy) {
				continue
			}
			c, _ := g.Cell(cx, cy)
			if c.Status == Burnt {
				continue
			}
			if !octagon.Contains(geom.Point{X: float64(cx), Y: float64(cy)}) {
				continue
			}
			idx := Index{cx, cy}
			touched = append(touched, idx)
			if g.Ignite(cx, cy) {
				fresh = append(fresh, idx)
			}
		}
	}
	return touched, fresh
}

// growFireFront runs one hour of front advancement (spec §4.5 "Front
// advancement" steps 2-3): every perimeter cell emits its footprint, and
// cells already inside bounds are dropped as already-tracked (the spec's
// adopted answer to the "re-ignite interior cells" open question). It
// returns the deduplicated candidate set for the next hull, plus every cell
// that transitioned Unburnt -> Active this hour, for the view layer.
func growFireFront(g *Grid, perimeter []Index, bounds geomutil.Bound, wind geomutil.Vector) (candidates, newlyIgnited []Index) {
	seen := make(map[Index]bool)
	for _, p := range perimeter {
		source, ok := g.Cell(p.X, p.Y)
		if !ok {
			continue
		}
		touched, fresh := emissionFootprint(g, source, wind)
		newlyIgnited = append(newlyIgnited, fresh...)
		for _, c := range touched {
			if seen[c] {
				continue
			}
			if bounds.Contains(geom.Point{X: float64(c.X), Y: float64(c.Y)}) {
				continue
			}
			seen[c] = true
			candidates = append(candidates, c)
		}
	}
	return candidates, newlyIgnited
}

// tickIgnited advances the burn clock of every cell in order by one hour
// (spec §4.5 "Front advancement" step 4). order must list each ignited
// cell at most once; traversal happens in the given order so the tick is
// deterministic for a given ignited set, per spec §5.
func tickIgnited(g *Grid, order []Index) {
	for _, idx := range order {
		g.Burn(idx.X, idx.Y)
	}
}
