// This file is part of PV8.
//
// PV8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// PV8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with PV8.  If not, see <https://www.gnu.org/licenses/>.

package pixels_test

import (
	"testing"

	"github.com/pixelvision8/pv8/pixels"
	"github.com/pixelvision8/pv8/test"
)

func TestTotalSprites(t *testing.T) {
	test.ExpectEquality(t, pixels.CalculateTotalSprites(16, 16, 8, 8), 4)
	test.ExpectEquality(t, pixels.CalculateTotalSprites(128, 256, 8, 8), 512)

	// partial cells are not counted
	test.ExpectEquality(t, pixels.CalculateTotalSprites(20, 12, 8, 8), 2)
	test.ExpectEquality(t, pixels.CalculateTotalSprites(4, 4, 8, 8), 0)
	test.ExpectEquality(t, pixels.CalculateTotalSprites(16, 16, 0, 8), 0)
}

func TestIndexPosition(t *testing.T) {
	expected := []struct{ x, y int }{
		{0, 0}, {8, 0}, {0, 8}, {8, 8},
	}

	for i, e := range expected {
		x, y := pixels.CalculateIndexPosition(i, 16, 16, 8, 8, false)
		test.ExpectEquality(t, x, e.x, i)
		test.ExpectEquality(t, y, e.y, i)
	}

	// indexes are clamped
	x, y := pixels.CalculateIndexPosition(-5, 16, 16, 8, 8, false)
	test.ExpectEquality(t, x, 0)
	test.ExpectEquality(t, y, 0)
	x, y = pixels.CalculateIndexPosition(100, 16, 16, 8, 8, false)
	test.ExpectEquality(t, x, 8)
	test.ExpectEquality(t, y, 8)

	// no cells
	x, y = pixels.CalculateIndexPosition(3, 4, 4, 8, 8, false)
	test.ExpectEquality(t, x, 0)
	test.ExpectEquality(t, y, 0)
}

func TestIndexPositionFlipped(t *testing.T) {
	x, y := pixels.CalculateIndexPosition(0, 16, 16, 8, 8, true)
	test.ExpectEquality(t, x, 0)
	test.ExpectEquality(t, y, 8)

	x, y = pixels.CalculateIndexPosition(3, 16, 16, 8, 8, true)
	test.ExpectEquality(t, x, 8)
	test.ExpectEquality(t, y, 0)

	// every cell must lie fully within the buffer
	for i := range pixels.CalculateTotalSprites(24, 40, 8, 8) {
		x, y := pixels.CalculateIndexPosition(i, 24, 40, 8, 8, true)
		test.ExpectSuccess(t, x >= 0 && x+8 <= 24, i)
		test.ExpectSuccess(t, y >= 0 && y+8 <= 40, i)
	}
}

func TestCellRect(t *testing.T) {
	r := pixels.CellRect(2, 16, 16, 8, 8, false)
	test.ExpectEquality(t, r, pixels.Rect{X: 0, Y: 8, W: 8, H: 8})
}
