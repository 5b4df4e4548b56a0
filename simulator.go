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
	"github.com/sirupsen/logrus"
)

// WeatherRecord is one hour of forecast data. WindSpeedMph and
// WindDirectionDeg are the only fields the spread kernel consumes;
// WindDirectionDeg is already in standard mathematical convention (0 = +x,
// increasing counter-clockwise) — any meteorological-convention source
// applies that conversion at the weather-ingestion boundary, not here.
// The remaining fields pass through forecast data the core doesn't act on
// yet but a caller (CLI, view layer) may want to display alongside a step.
type WeatherRecord struct {
	WindSpeedMph     float64
	WindDirectionDeg float64

	TemperatureF      float64
	WindGustMph       float64
	CloudCoverPercent float64
	PrecipitationIn   float64
}

// Simulator is the facade (C6): it owns the grid, the ignited set, the
// current perimeter, and the current bounds, and exposes the only entry
// points a caller needs — StartFire and Step — so nothing outside this
// package mutates a Cell directly.
type Simulator struct {
	Grid *Grid

	ignited      map[Index]bool
	ignitedOrder []Index // deterministic tick traversal order, spec §5

	perimeter []Index // CCW, starting at the lowest-Y (tie: lowest-X) vertex
	bounds    geomutil.Bound
	wind      geomutil.Vector

	Hour int
}

// NewSimulator wraps an already-constructed Grid. The grid's own Dx/Dy
// supply the pixel pitch the spec's "new(grid, dx, dy)" constructor takes
// as separate arguments.
func NewSimulator(g *Grid) *Simulator {
	return &Simulator{
		Grid:    g,
		ignited: make(map[Index]bool),
		bounds:  geomutil.EmptyBound(),
	}
}

func indexToPoint(idx Index) geom.Point {
	return geom.Point{X: float64(idx.X), Y: float64(idx.Y)}
}

func pointToIndex(p geom.Point) Index {
	return Index{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
}

// hullOrEmpty computes the convex hull of points, falling back to treating
// bounds as empty when fewer than 2 distinct points are given (spec §7:
// DegeneratePerimeter must not abort the step, only leave every future
// candidate admitted).
func hullOrEmpty(points []geom.Point) (perimeter []geom.Point, bounds geomutil.Bound) {
	hull, err := geomutil.ConvexHull(points)
	if err != nil {
		return points, geomutil.EmptyBound()
	}
	return hull, geomutil.NewBound(hull)
}

// recordIgnited adds idx to the ignited set if it isn't already there,
// preserving insertion order for the next tick pass.
func (s *Simulator) recordIgnited(idx Index) {
	if s.ignited[idx] {
		return
	}
	s.ignited[idx] = true
	s.ignitedOrder = append(s.ignitedOrder, idx)
}

// StartFire ignites the rectangle of cells around (xPct, yPct) (fractions
// of grid width/height) out to radiusM meters in each axis, and seeds the
// initial perimeter and bounds from the convex hull of every cell in that
// rectangle (spec §4.5 "Start ignition": perimeter <- convex_hull(rectangle_
// cells)). It returns EmptyIgnitionError, without mutating state, if the
// rectangle clamps to nothing.
func (s *Simulator) StartFire(xPct, yPct, radiusM float64) error {
	g := s.Grid
	cx := int(math.Floor(xPct * float64(g.W)))
	cy := int(math.Floor(yPct * float64(g.H)))

	rxCells := int(math.Floor(radiusM / g.Dx))
	ryCells := int(math.Floor(radiusM / g.Dy))

	x0, x1 := cx-rxCells, cx+rxCells
	y0, y1 := cy-ryCells, cy+ryCells
	if x0 > x1 || y0 > y1 || x1 < 0 || x0 >= g.W || y1 < 0 || y0 >= g.H {
		return EmptyIgnitionError{XPercent: xPct, YPercent: yPct, RadiusM: radiusM}
	}

	x0 = clampInt(x0, 0, g.W-1)
	x1 = clampInt(x1, 0, g.W-1)
	y0 = clampInt(y0, 0, g.H-1)
	y1 = clampInt(y1, 0, g.H-1)

	var rectangleCells []geom.Point
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			g.Ignite(x, y)
			s.recordIgnited(Index{x, y})
			rectangleCells = append(rectangleCells, geom.Point{X: float64(x), Y: float64(y)})
		}
	}

	hull, bounds := hullOrEmpty(rectangleCells)

	s.perimeter = make([]Index, len(hull))
	for i, p := range hull {
		s.perimeter[i] = pointToIndex(p)
	}
	s.bounds = bounds
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Step advances the fire by one hour under weather (spec §4.5 "Front
// advancement"). Emission runs before the burn tick, so a cell ignited this
// hour always survives at least one full step before its clock starts
// counting down. It returns the cells that newly transitioned to Active
// this step.
func (s *Simulator) Step(weather WeatherRecord) []Index {
	s.wind = geomutil.FromPolar(weather.WindSpeedMph*5280.0/60.0, weather.WindDirectionDeg*math.Pi/180.0)

	candidates, fresh := growFireFront(s.Grid, s.perimeter, s.bounds, s.wind)
	tickIgnited(s.Grid, s.ignitedOrder)

	for _, idx := range fresh {
		s.recordIgnited(idx)
	}

	points := make([]geom.Point, len(candidates))
	for i, idx := range candidates {
		points[i] = indexToPoint(idx)
	}
	hull, bounds := hullOrEmpty(points)

	perimeter := make([]Index, len(hull))
	for i, p := range hull {
		perimeter[i] = pointToIndex(p)
	}
	s.perimeter = perimeter
	s.bounds = bounds
	s.Hour++

	Log.WithFields(logrus.Fields{
		"hour":               s.Hour,
		"ignited":            len(s.ignited),
		"perimeter_vertices": len(s.perimeter),
	}).Debug("step complete")

	return fresh
}

// AreaM2 returns the total ground area, in square meters, of every cell
// that has ever ignited.
func (s *Simulator) AreaM2() float64 {
	return float64(len(s.ignited)) * s.Grid.Dx * s.Grid.Dy
}

// Ignited reports whether (x, y) has ever been on fire.
func (s *Simulator) Ignited(x, y int) bool {
	return s.ignited[Index{x, y}]
}

// Perimeter returns the current CCW perimeter vertices.
func (s *Simulator) Perimeter() []Index {
	out := make([]Index, len(s.perimeter))
	copy(out, s.perimeter)
	return out
}
