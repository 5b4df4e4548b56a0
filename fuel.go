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
	"fmt"
	"math"
)

// FuelClass identifies a row in the fuel model table. Only GrassFuel is
// reachable from the grid builder in this release; the others are carried
// so the table stays ready for fuel classes the grid builder doesn't yet
// assign.
type FuelClass uint8

const (
	// GrassFuel is fuel class 1, the only class this release assigns.
	GrassFuel FuelClass = 1
	// BrushFuel is fuel class 2.
	BrushFuel FuelClass = 2
	// TimberLitterFuel is fuel class 3.
	TimberLitterFuel FuelClass = 3
)

// FuelModel holds the Rothermel-style constants for one fuel class.
type FuelModel struct {
	FuelMoisture          float64 // dimensionless fraction
	BulkDensity           float64 // lb/ft^3
	ParticleDensity       float64 // lb/ft^3
	RelativePackingRatio  float64 // dimensionless
	SAV                   float64 // surface-area-to-volume ratio, ft^-1
	BurnDuration          uint16  // hours
}

// PackingRatio is bulk density over particle density.
func (f FuelModel) PackingRatio() float64 {
	return f.BulkDensity / f.ParticleDensity
}

// EffectiveHeatingNumber is exp(-138 / SAV).
func (f FuelModel) EffectiveHeatingNumber() float64 {
	return math.Exp(-138 / f.SAV)
}

// fuelTable is the pure lookup table backing FuelModelFor. It is
// table-driven so that adding a fuel class never requires touching the
// spread kernel (spread.go) or the growth step (growth.go).
var fuelTable = map[FuelClass]FuelModel{
	GrassFuel: {
		FuelMoisture:         0.40,
		BulkDensity:          0.03,
		ParticleDensity:      30,
		RelativePackingRatio: 0.23,
		SAV:                  2000,
		BurnDuration:         1,
	},
	BrushFuel: {
		FuelMoisture:         0.40,
		BulkDensity:          0.03,
		ParticleDensity:      30,
		RelativePackingRatio: 0.33,
		SAV:                  350,
		BurnDuration:         10,
	},
	TimberLitterFuel: {
		FuelMoisture:         0.40,
		BulkDensity:          0.03,
		ParticleDensity:      30,
		RelativePackingRatio: 2.35,
		SAV:                  2000,
		BurnDuration:         100,
	},
}

// FuelModelFor returns the fuel constants for class. An unknown fuel class
// is a programmer error: the caller has violated the table-driven contract
// that every Cell.FuelClass value is a key in fuelTable.
func FuelModelFor(class FuelClass) FuelModel {
	fm, ok := fuelTable[class]
	if !ok {
		panic(fmt.Sprintf("wildfire: unknown fuel class %d", class))
	}
	return fm
}
