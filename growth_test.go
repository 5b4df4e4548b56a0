package wildfire

import (
	"testing"

	"github.com/ctessum/geom"
	"github.com/ctessum/wildfire/geomutil"
)

func pitchedGrid(t *testing.T, w, h int, pitch float64) *Grid {
	t.Helper()
	elev := make([][]int16, h)
	for y := range elev {
		elev[y] = make([]int16, w)
	}
	g, err := NewGrid(elev, pitch, pitch, nil)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestEmissionFootprintIgnitesNeighbors(t *testing.T) {
	// A 1m pitch keeps the baseline (no-wind, no-slope) rate of spread well
	// above one cell width, so every in-grid compass neighbor should ignite.
	g := pitchedGrid(t, 7, 7, 1)
	g.Ignite(3, 3)
	source, _ := g.Cell(3, 3)

	_, fresh := emissionFootprint(g, source, geomutil.Vector{})
	if len(fresh) == 0 {
		t.Fatal("expected at least one freshly ignited neighbor")
	}

	freshSet := make(map[Index]bool, len(fresh))
	for _, idx := range fresh {
		freshSet[idx] = true
	}
	for _, want := range []Index{{4, 3}, {2, 3}, {3, 4}, {3, 2}} {
		if !freshSet[want] {
			t.Errorf("expected axial neighbor %v to ignite, got %v", want, fresh)
		}
	}
}

func TestEmissionFootprintSkipsBurntCells(t *testing.T) {
	g := pitchedGrid(t, 7, 7, 1)
	g.Ignite(3, 3)
	source, _ := g.Cell(3, 3)

	// Burn the east neighbor down to Burnt before emission runs.
	g.Ignite(4, 3)
	g.Burn(4, 3)
	if c, _ := g.Cell(4, 3); c.Status != Burnt {
		t.Fatalf("setup: (4,3) = %v, want Burnt", c.Status)
	}

	touched, _ := emissionFootprint(g, source, geomutil.Vector{})
	for _, idx := range touched {
		if idx == (Index{4, 3}) {
			t.Fatal("Burnt cell must not appear in the touched set")
		}
	}
}

func TestGrowFireFrontDropsCandidatesInsideBounds(t *testing.T) {
	g := pitchedGrid(t, 7, 7, 1)
	g.Ignite(3, 3)
	perimeter := []Index{{3, 3}}

	// A bound covering the whole grid makes every touched cell "already
	// tracked" per spec §4.5, so candidates must come back empty even
	// though cells still ignite.
	whole := geomutil.NewBound([]geom.Point{
		{X: 0, Y: 0}, {X: 7, Y: 0}, {X: 7, Y: 7}, {X: 0, Y: 7},
	})

	candidates, fresh := growFireFront(g, perimeter, whole, geomutil.Vector{})
	if len(candidates) != 0 {
		t.Errorf("candidates = %v, want none (all inside bounds)", candidates)
	}
	if len(fresh) == 0 {
		t.Error("cells should still ignite even when dropped as candidates")
	}
}

func TestGrowFireFrontWithEmptyBoundsKeepsEverything(t *testing.T) {
	g := pitchedGrid(t, 7, 7, 1)
	g.Ignite(3, 3)
	perimeter := []Index{{3, 3}}

	candidates, fresh := growFireFront(g, perimeter, geomutil.EmptyBound(), geomutil.Vector{})
	if len(candidates) == 0 {
		t.Fatal("expected candidates when bounds is empty")
	}
	// The already-Active source cell lies inside its own octagon, so it is a
	// candidate too, on top of every freshly ignited cell.
	if len(candidates) != len(fresh)+1 {
		t.Errorf("with a single Active source and empty bounds, candidates (%d) should be fresh (%d) plus the source",
			len(candidates), len(fresh))
	}
}

func TestTickIgnitedOnlyAffectsListedCells(t *testing.T) {
	g := pitchedGrid(t, 3, 3, 1)
	g.Ignite(1, 1)
	g.Ignite(0, 0) // not included in the tick order

	tickIgnited(g, []Index{{1, 1}})

	c, _ := g.Cell(1, 1)
	fm := FuelModelFor(GrassFuel)
	if c.TimeRemaining != fm.BurnDuration-1 {
		t.Errorf("(1,1) TimeRemaining = %d, want %d", c.TimeRemaining, fm.BurnDuration-1)
	}
	other, _ := g.Cell(0, 0)
	if other.TimeRemaining != fm.BurnDuration {
		t.Errorf("(0,0) should not have ticked: %+v", other)
	}
}
