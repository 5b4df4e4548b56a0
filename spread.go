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

	"github.com/ctessum/wildfire/geomutil"
)

// feetPerMeter and minutesPerHour are the unit conversions spec §6 mandates.
const (
	feetPerMeter    = 3.28084
	minutesPerHour  = 60.0
	reactionIntensity = 3000.0 // constant I_R, spec §4.4 step 4
)

// groundDistance returns the physical distance in meters between two grid
// positions, accounting for possibly-unequal X/Y pitch.
func (g *Grid) groundDistance(p1, p2 Index) float64 {
	dx := float64(p2.X-p1.X) * g.Dx
	dy := float64(p2.Y-p1.Y) * g.Dy
	return math.Sqrt(dx*dx + dy*dy)
}

// directionVectorFeet returns the vector from p1 to p2 in feet, the unit
// the wind factor computation works in (spec §4.4 step 2).
func (g *Grid) directionVectorFeet(p1, p2 Index) geomutil.Vector {
	dx := float64(p2.X-p1.X) * g.Dx * feetPerMeter
	dy := float64(p2.Y-p1.Y) * g.Dy * feetPerMeter
	return geomutil.Vector{X: dx, Y: dy}
}

// slopeFactor computes Rothermel's Φ_s = 5.275 * packingRatio^-0.3 * tan²θ.
func slopeFactor(g *Grid, source, target Cell) float64 {
	fm := FuelModelFor(source.FuelClass)
	dist := g.groundDistance(Index{source.X, source.Y}, Index{target.X, target.Y})
	tanTheta := float64(target.Elevation-source.Elevation) / dist
	return 5.275 * math.Pow(fm.PackingRatio(), -0.3) * tanTheta * tanTheta
}

// windFactor computes Rothermel's Φ_w, the directional wind correction, or
// 0 if the wind pushes away from the target (spec §4.4 step 2).
func windFactor(g *Grid, source, target Cell, wind geomutil.Vector) float64 {
	fm := FuelModelFor(source.FuelClass)
	sav := fm.SAV
	c := 7.47 * math.Exp(-0.133*math.Pow(sav, 0.55))
	b := 0.02526 * math.Pow(sav, 0.54)
	e := -(0.715 * math.Exp(-3.59e-4*sav))

	dir := g.directionVectorFeet(Index{source.X, source.Y}, Index{target.X, target.Y})
	localWind, lambda := wind.ProjectOnto(dir)
	if lambda < 0 {
		return 0
	}
	localSpeed := localWind.Magnitude()
	return c * math.Pow(localSpeed, b) * math.Pow(fm.RelativePackingRatio, e)
}

// propagatingFlux computes ξ(p1), the propagating flux ratio (spec §4.4
// step 3). It is a function of the source cell's fuel only.
func propagatingFlux(source Cell) float64 {
	fm := FuelModelFor(source.FuelClass)
	sav := fm.SAV
	p := fm.PackingRatio()
	return math.Pow(192+0.2595*sav, -1) * math.Exp((0.792+0.681*math.Sqrt(sav))*(p*0.1))
}

// heatSource is Rothermel's numerator, I_R * ξ(p1) * (1 + Φ_w + Φ_s).
func heatSource(g *Grid, source, target Cell, wind geomutil.Vector) float64 {
	return reactionIntensity * propagatingFlux(source) *
		(1 + windFactor(g, source, target, wind) + slopeFactor(g, source, target))
}

// heatSink is Rothermel's denominator, a function of the target cell's fuel.
func heatSink(target Cell) float64 {
	fm := FuelModelFor(target.FuelClass)
	heatOfPreignition := 250 + 1116*fm.FuelMoisture
	return fm.BulkDensity * fm.EffectiveHeatingNumber() * heatOfPreignition
}

// RateOfSpread returns R(source -> target), the rate of fire spread from
// source to target, in meters/hour, under the given wind (feet/minute).
func RateOfSpread(g *Grid, source, target Cell, wind geomutil.Vector) float64 {
	rateFeetPerMinute := heatSource(g, source, target, wind) / heatSink(target)
	return rateFeetPerMinute * minutesPerHour / feetPerMeter
}
