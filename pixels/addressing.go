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

package pixels

// CalculateTotalSprites returns the number of cells of size cellWidth *
// cellHeight that fit in a buffer of size bufferWidth * bufferHeight. Partial
// cells are not counted.
func CalculateTotalSprites(bufferWidth int, bufferHeight int, cellWidth int, cellHeight int) int {
	if cellWidth <= 0 || cellHeight <= 0 {
		return 0
	}
	return (bufferWidth / cellWidth) * (bufferHeight / cellHeight)
}

// CalculateIndexPosition maps a linear cell index to the top-left pixel of the
// cell in a buffer divided into fixed sized cells. Cells are numbered left to
// right, top to bottom.
//
// The index is clamped to the range of available cells. If flipY is true the y
// coordinate is measured from the bottom of the buffer, which is required when
// the source buffer has a bottom-left origin.
//
// The function is used for both sprite lookup and tile to pixel lookup.
func CalculateIndexPosition(index int, bufferWidth int, bufferHeight int, cellWidth int, cellHeight int, flipY bool) (int, int) {
	total := CalculateTotalSprites(bufferWidth, bufferHeight, cellWidth, cellHeight)
	if total == 0 {
		return 0, 0
	}

	index = clamp(index, 0, total-1)

	columns := bufferWidth / cellWidth

	x := (index % columns) * cellWidth
	y := (index / columns) * cellHeight

	if flipY {
		y = bufferHeight - y - cellHeight
	}

	return x, y
}

// CellRect returns the sampling rectangle for the cell at index. See
// CalculateIndexPosition() for details.
func CellRect(index int, bufferWidth int, bufferHeight int, cellWidth int, cellHeight int, flipY bool) Rect {
	x, y := CalculateIndexPosition(index, bufferWidth, bufferHeight, cellWidth, cellHeight, flipY)
	return Rect{X: x, Y: y, W: cellWidth, H: cellHeight}
}
