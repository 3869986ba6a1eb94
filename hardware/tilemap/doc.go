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

// Package tilemap implements the tilemap chip. The tilemap is a grid of tiles,
// each tile referring to a sprite in the sprite chip by its index. A tile also
// has a flag value, a colour offset and horizontal and vertical flip
// settings. The attributes of all tiles are stored in separate arrays owned by
// the chip.
//
// The chip keeps a cache of the tilemap as pixel data. Changing a tile
// invalidates the corresponding area of the cache, which is redrawn from the
// sprite atlas in the Draw phase. The display chip composites from the cache.
package tilemap
