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

// Package pixels implements the indexed-colour raster that every chip is built
// on. A Data instance is a flat slice of colour references with a width and a
// height. The value Transparent is reserved to mean "no pixel".
//
// None of the read/write functions return errors. Out of range coordinates are
// clamped, wrapped or ignored according to the rules documented on each
// function. The functions are called many thousands of times per frame.
//
// The package also contains the addressing functions that map a linear sprite
// (or tile) index to a position in a buffer divided into fixed sized cells,
// and functions to move pixel data to and from PNG images.
package pixels
