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

// Package geomutil holds the 2D vector math, polar sort, convex hull, and
// point-in-polygon routines the fire-growth engine needs. It builds on
// github.com/ctessum/geom's Point and Polygon types rather than defining
// its own.
package geomutil

import (
	"math"

	"github.com/ctessum/geom"
	"gonum.org/v1/gonum/floats"
)

// Vector is a 2D vector in arbitrary consistent units (the engine uses it
// for both feet and feet/minute quantities, depending on context).
type Vector struct {
	X, Y float64
}

// VectorTo returns the vector from p1 to p2.
func VectorTo(p1, p2 geom.Point) Vector {
	return Vector{X: p2.X - p1.X, Y: p2.Y - p1.Y}
}

// FromPolar builds a vector of the given magnitude pointing in direction
// (radians, standard mathematical convention: 0 = +X, increasing CCW).
func FromPolar(magnitude, direction float64) Vector {
	return Vector{
		X: magnitude * math.Cos(direction),
		Y: magnitude * math.Sin(direction),
	}
}

// Dot returns the dot product of v and w.
func (v Vector) Dot(w Vector) float64 {
	return floats.Dot([]float64{v.X, v.Y}, []float64{w.X, w.Y})
}

// Magnitude returns the Euclidean length of v.
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.Dot(v))
}

// Scale returns v scaled by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// ProjectOnto projects v onto w, returning the projection vector and the
// scalar λ = (v·w)/(w·w) used to form it. Callers that need to know whether
// the projection points toward or away from w (as the wind-factor
// computation in the spread kernel does) should inspect λ directly rather
// than re-deriving it from the returned vector.
func (v Vector) ProjectOnto(w Vector) (projection Vector, lambda float64) {
	denom := w.Dot(w)
	if denom == 0 {
		return Vector{}, 0
	}
	lambda = v.Dot(w) / denom
	return w.Scale(lambda), lambda
}
