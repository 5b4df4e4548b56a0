package geomutil

import (
	"testing"

	"github.com/ctessum/geom"
)

func pt(x, y float64) geom.Point { return geom.Point{X: x, Y: y} }

func TestConvexHullTriangle(t *testing.T) {
	// E4: {(0,0),(2,0),(1,2)} -> [(0,0),(2,0),(1,2)], CCW starting at
	// lowest-y, lowest-x.
	got, err := ConvexHull([]geom.Point{pt(0, 0), pt(2, 0), pt(1, 2)})
	if err != nil {
		t.Fatal(err)
	}
	want := []geom.Point{pt(0, 0), pt(2, 0), pt(1, 2)}
	if !equalPoints(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestConvexHullDiamond(t *testing.T) {
	// E5: {(0,0),(1,1),(2,0),(1,-1)} -> [(1,-1),(2,0),(1,1),(0,0)]
	got, err := ConvexHull([]geom.Point{pt(0, 0), pt(1, 1), pt(2, 0), pt(1, -1)})
	if err != nil {
		t.Fatal(err)
	}
	want := []geom.Point{pt(1, -1), pt(2, 0), pt(1, 1), pt(0, 0)}
	if !equalPoints(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestConvexHullDegenerate(t *testing.T) {
	for _, pts := range [][]geom.Point{nil, {pt(1, 1)}, {pt(1, 1), pt(1, 1)}} {
		_, err := ConvexHull(pts)
		if err == nil {
			t.Errorf("ConvexHull(%v): expected DegenerateError, got nil", pts)
			continue
		}
		if _, ok := err.(DegenerateError); !ok {
			t.Errorf("ConvexHull(%v): expected DegenerateError, got %T", pts, err)
		}
	}
}

func TestConvexHullAnchorLaw(t *testing.T) {
	// §8.7: the first vertex is always the minimum-Y point, ties broken by
	// minimum X, for any non-empty point set.
	square := []geom.Point{pt(5, 5), pt(-5, 5), pt(5, -5), pt(-5, -5), pt(0, -5)}
	got, err := ConvexHull(square)
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != (pt(-5, -5)) {
		t.Errorf("anchor = %v, want (-5,-5)", got[0])
	}
}

func TestConvexHullRoundTrip(t *testing.T) {
	// §8.6: hull(hull(S)) = hull(S) up to cyclic rotation starting at P0.
	pts := []geom.Point{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4), pt(2, 2), pt(1, 3)}
	once, err := ConvexHull(pts)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := ConvexHull(once)
	if err != nil {
		t.Fatal(err)
	}
	if !equalPoints(once, twice) {
		t.Errorf("hull(hull(S)) = %v, want %v", twice, once)
	}
}

func TestConvexHullConvexCCW(t *testing.T) {
	pts := []geom.Point{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4), pt(2, 2), pt(1, 3), pt(3, 1)}
	hull, err := ConvexHull(pts)
	if err != nil {
		t.Fatal(err)
	}
	if !IsConvexCCW(hull) {
		t.Errorf("hull %v is not convex/CCW", hull)
	}
}

func equalPoints(a, b []geom.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
