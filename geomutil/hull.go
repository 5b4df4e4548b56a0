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

import (
	"fmt"
	"math"
	"sort"

	"github.com/ctessum/geom"
)

// DegenerateError is returned by ConvexHull when fewer than two distinct
// points are given; a hull isn't defined in that case.
type DegenerateError struct {
	NumPoints int
}

func (e DegenerateError) Error() string {
	return fmt.Sprintf("geomutil: convex hull needs at least 2 distinct points, got %d", e.NumPoints)
}

// Cross returns the z-component of (b-a) x (c-a): positive for a
// counter-clockwise turn at b, negative for clockwise, zero for collinear.
func Cross(a, b, c geom.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// anchor returns the index of the point with the lowest Y, ties broken by
// the lowest X — the canonical hull starting vertex (spec §4.3, §8.7).
func anchor(points []geom.Point) int {
	best := 0
	for i, p := range points {
		b := points[best]
		if p.Y < b.Y || (p.Y == b.Y && p.X < b.X) {
			best = i
		}
	}
	return best
}

func distSq(p, from geom.Point) float64 {
	dx, dy := p.X-from.X, p.Y-from.Y
	return dx*dx + dy*dy
}

// polarSort sorts points by polar angle around origin ascending, breaking
// ties in angle by ascending squared distance from origin.
func polarSort(points []geom.Point, origin geom.Point) {
	sort.Slice(points, func(i, j int) bool {
		ai := math.Atan2(points[i].Y-origin.Y, points[i].X-origin.X)
		aj := math.Atan2(points[j].Y-origin.Y, points[j].X-origin.X)
		if ai != aj {
			return ai < aj
		}
		return distSq(points[i], origin) < distSq(points[j], origin)
	})
}

// ConvexHull returns the convex hull of points as a closed, counter-clockwise
// polygon starting at the point with the lowest Y (ties broken by lowest X),
// using a Graham scan over the polar-sorted input. Unlike a process-global
// comparator, the anchor here is an explicit parameter threaded through
// polarSort and Cross — ConvexHull is a pure function of its input.
//
// It returns a DegenerateError if fewer than two distinct points are given.
func ConvexHull(points []geom.Point) ([]geom.Point, error) {
	unique := dedupe(points)
	if len(unique) < 2 {
		return nil, DegenerateError{NumPoints: len(unique)}
	}

	p0idx := anchor(unique)
	p0 := unique[p0idx]

	rest := make([]geom.Point, 0, len(unique)-1)
	for i, p := range unique {
		if i != p0idx {
			rest = append(rest, p)
		}
	}
	polarSort(rest, p0)

	if len(rest) == 1 {
		return []geom.Point{p0, rest[0]}, nil
	}

	hull := []geom.Point{p0, rest[0]}
	for _, s := range rest[1:] {
		for len(hull) >= 2 && Cross(hull[len(hull)-2], hull[len(hull)-1], s) < 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, s)
	}
	return hull, nil
}

func dedupe(points []geom.Point) []geom.Point {
	seen := make(map[geom.Point]bool, len(points))
	out := make([]geom.Point, 0, len(points))
	for _, p := range points {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
