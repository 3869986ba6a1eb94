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

// Package console assembles the standard virtual console: an engine with
// every standard chip activated in dependency order.
//
// The order is color, sprite, tilemap, font, display, sound and music. The
// sprite chip resets its sprite budget in the Update phase before any other
// chip can draw. The tilemap cache is rebuilt in the Draw phase before the
// display composites from it. The sound chip expires finished channels before
// the music chip triggers new notes.
package console
