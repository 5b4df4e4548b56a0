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

// Package demio is the boundary adapter for "DEM file decoding" (spec §1,
// out of scope for the core): it turns a raster elevation source into the
// (dx, dy, elevations) triple wildfire.NewGrid consumes. No library in the
// retrieved example pack reads GeoTIFF or any other raster format, so this
// reader works against a simple row-major text encoding instead of
// reimplementing a raster codec from scratch.
package demio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Reader decodes an elevation raster into the shape wildfire.NewGrid wants.
type Reader interface {
	// ReadElevations returns the pixel pitch in meters (dx, dy) and a
	// row-major H x W array of elevations in meters above sea level.
	ReadElevations(r io.Reader) (dx, dy float64, elevations [][]int16, err error)
}

// TextReader decodes the pack's own dump format: a header line
// "dx dy" followed by H rows of W whitespace-separated integers. It exists
// because every raster-format library in the retrieved example pack
// (shapefile writers, WKT parsers) targets vector geometry, not gridded
// elevation rasters — see DESIGN.md for the full accounting.
type TextReader struct{}

// ReadElevations implements Reader.
func (TextReader) ReadElevations(r io.Reader) (dx, dy float64, elevations [][]int16, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		return 0, 0, nil, fmt.Errorf("demio: empty input, expected a \"dx dy\" header line")
	}
	header := strings.Fields(scanner.Text())
	if len(header) != 2 {
		return 0, 0, nil, fmt.Errorf("demio: header line must have exactly 2 fields, got %d", len(header))
	}
	dx, err = strconv.ParseFloat(header[0], 64)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("demio: parsing dx: %w", err)
	}
	dy, err = strconv.ParseFloat(header[1], 64)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("demio: parsing dy: %w", err)
	}

	var rows [][]int16
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]int16, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseInt(f, 10, 16)
			if err != nil {
				return 0, 0, nil, fmt.Errorf("demio: parsing elevation value %q: %w", f, err)
			}
			row[i] = int16(v)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, nil, fmt.Errorf("demio: reading elevation rows: %w", err)
	}

	return dx, dy, rows, nil
}
