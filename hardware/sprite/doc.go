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

// Package sprite implements the sprite chip. The chip owns the sprite atlas:
// a single pixels.Data instance divided into fixed size cells, one sprite per
// cell. Sprites are referred to by their index in the atlas, counting left to
// right and top to bottom.
//
// The atlas is sixteen sprites wide and each page of the atlas is eight
// sprites high. The number of pages and the size of the sprites are taken
// from the preferences when the chip is configured.
//
// The chip also keeps a count of the sprites drawn in the current frame. The
// count is reset in the Update phase so the sprite chip must be activated
// before any chip that draws sprites.
package sprite
