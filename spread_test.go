package wildfire

import (
	"math"
	"testing"

	"github.com/ctessum/wildfire/geomutil"
)

func flatGrid(t *testing.T, w, h int) *Grid {
	t.Helper()
	elev := make([][]int16, h)
	for y := range elev {
		elev[y] = make([]int16, w)
	}
	g, err := NewGrid(elev, 10, 10, nil)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestSpreadNoWindNoSlopeIsUniform(t *testing.T) {
	// §8.5: with wind = 0 and flat elevation, Φ_w = 0 and Φ_s = 0, so R is
	// identical in all 8 directions from a source cell.
	g := flatGrid(t, 5, 5)
	source, _ := g.Cell(2, 2)

	offsets := [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	var first float64
	for i, off := range offsets {
		target, _ := g.Cell(2+off[0], 2+off[1])
		r := RateOfSpread(g, source, target, geomutil.Vector{})
		if i == 0 {
			first = r
		} else if math.Abs(r-first) > 1e-9 {
			t.Errorf("direction %d: R=%v, want %v (uniform)", i, r, first)
		}
	}
}

func TestSpreadWindBlocksUpwindDirection(t *testing.T) {
	// E3: 3x3 flat grid, wind 20mph due east (0 deg). Φ_w for (1,1)->(2,1)
	// (downwind) > 0; Φ_w for (1,1)->(0,1) (upwind) = 0.
	g := flatGrid(t, 3, 3)
	source, _ := g.Cell(1, 1)
	east, _ := g.Cell(2, 1)
	west, _ := g.Cell(0, 1)

	windMph := 20.0
	wind := geomutil.FromPolar(windMph*5280/60, 0)

	wEast := windFactor(g, source, east, wind)
	wWest := windFactor(g, source, west, wind)

	if wEast <= 0 {
		t.Errorf("downwind Φ_w = %v, want > 0", wEast)
	}
	if wWest != 0 {
		t.Errorf("upwind Φ_w = %v, want 0", wWest)
	}

	rEast := RateOfSpread(g, source, east, wind)
	rWest := RateOfSpread(g, source, west, wind)
	if rEast <= rWest {
		t.Errorf("R(east)=%v should exceed R(west)=%v under eastward wind", rEast, rWest)
	}
}

func TestSpreadMonotonicInWindMagnitude(t *testing.T) {
	// §8.8: increasing +x wind magnitude does not decrease eastward rate
	// and does not increase westward rate.
	g := flatGrid(t, 3, 3)
	source, _ := g.Cell(1, 1)
	east, _ := g.Cell(2, 1)
	west, _ := g.Cell(0, 1)

	lowWind := geomutil.Vector{X: 500, Y: 0}
	highWind := geomutil.Vector{X: 1500, Y: 0}

	if RateOfSpread(g, source, east, highWind) < RateOfSpread(g, source, east, lowWind) {
		t.Error("eastward rate decreased as +x wind increased")
	}
	if RateOfSpread(g, source, west, highWind) > RateOfSpread(g, source, west, lowWind) {
		t.Error("westward rate increased as +x wind increased")
	}
}

func TestSlopeFactorSymmetric(t *testing.T) {
	// tan²θ makes slope contribution symmetric for uphill vs. downhill
	// spread of equal magnitude (spec §4.4 numerical notes).
	g := flatGrid(t, 3, 3)
	up := Cell{X: 1, Y: 0, Elevation: 10, FuelClass: GrassFuel}
	down := Cell{X: 1, Y: 0, Elevation: -10, FuelClass: GrassFuel}
	source, _ := g.Cell(1, 1)

	su := slopeFactor(g, source, up)
	sd := slopeFactor(g, source, down)
	if math.Abs(su-sd) > 1e-9 {
		t.Errorf("slopeFactor uphill=%v downhill=%v, want equal", su, sd)
	}
}
