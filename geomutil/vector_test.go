package geomutil

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestFromPolar(t *testing.T) {
	v := FromPolar(10, 0)
	if !almostEqual(v.X, 10) || !almostEqual(v.Y, 0) {
		t.Errorf("FromPolar(10, 0) = %v", v)
	}
	v = FromPolar(10, math.Pi/2)
	if !almostEqual(v.X, 0) || !almostEqual(v.Y, 10) {
		t.Errorf("FromPolar(10, pi/2) = %v", v)
	}
}

func TestProjectOnto(t *testing.T) {
	wind := Vector{X: 10, Y: 0}
	dir := Vector{X: 1, Y: 0}
	_, lambda := wind.ProjectOnto(dir)
	if !almostEqual(lambda, 10) {
		t.Errorf("lambda = %v, want 10", lambda)
	}

	// Wind pushing away from the target direction gives a negative lambda.
	opposite := Vector{X: -1, Y: 0}
	_, lambda = wind.ProjectOnto(opposite)
	if lambda >= 0 {
		t.Errorf("lambda = %v, want negative", lambda)
	}
}

func TestMagnitude(t *testing.T) {
	v := Vector{X: 3, Y: 4}
	if !almostEqual(v.Magnitude(), 5) {
		t.Errorf("Magnitude() = %v, want 5", v.Magnitude())
	}
}
