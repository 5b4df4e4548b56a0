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

package geomutil

import "github.com/ctessum/geom"

// Bound is a closed polygon derived from a perimeter, supporting
// containment queries. It wraps geom.Polygon rather than reimplementing
// point-in-polygon: geom.Point.Within already treats boundary points as
// inside, which is exactly the semantics spec'd for "outside current
// perimeter" checks.
type Bound struct {
	poly  geom.Polygon
	empty bool
}

// EmptyBound returns a Bound that contains no points. Used after a
// DegenerateError so a step still terminates with every candidate admitted
// on the next pass.
func EmptyBound() Bound {
	return Bound{empty: true}
}

// NewBound builds a Bound from a closed ring of vertices (as returned by
// ConvexHull).
func NewBound(ring []geom.Point) Bound {
	if len(ring) < 2 {
		return EmptyBound()
	}
	return Bound{poly: geom.Polygon{append(append([]geom.Point{}, ring...), ring[0])}}
}

// Contains reports whether p lies within or on the boundary of b.
func (b Bound) Contains(p geom.Point) bool {
	if b.empty {
		return false
	}
	return p.Within(b.poly) != geom.Outside
}

// Vertices returns the ring of vertices this bound was built from (without
// the closing repeated point), or nil if the bound is empty.
func (b Bound) Vertices() []geom.Point {
	if b.empty || len(b.poly) == 0 {
		return nil
	}
	ring := b.poly[0]
	return ring[:len(ring)-1]
}

// IsConvexCCW reports whether the closed ring (as returned by ConvexHull)
// is convex and counter-clockwise: cross(a,b,c) >= 0 for every consecutive
// triple, per spec invariant §8.3.
func IsConvexCCW(ring []geom.Point) bool {
	n := len(ring)
	if n < 3 {
		return true
	}
	closed := append(append([]geom.Point{}, ring...), ring[0], ring[1])
	for i := 0; i < n; i++ {
		if Cross(closed[i], closed[i+1], closed[i+2]) < 0 {
			return false
		}
	}
	return true
}
