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

// Package display implements the display chip. The display is the pixels.Data
// that represents the visible screen.
//
// Other chips do not write to the display directly. Instead, draw requests are
// queued during the Update phase and composited in the Draw phase. Requests
// are composited in layer order and requests on the same layer are composited
// in the order they were made.
//
// The display chip must be activated after the sprite, tilemap and font chips
// so that its Draw phase sees the completed tilemap cache.
package display
