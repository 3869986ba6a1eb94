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

package chips

// Keys for the standard chips. Keys are opaque to the engine and are compared
// for equality only. Chips outside of this package can use any other string.
const (
	ColorKey   = "color"
	SpriteKey  = "sprite"
	TilemapKey = "tilemap"
	FontKey    = "font"
	DisplayKey = "display"
	SoundKey   = "sound"
	MusicKey   = "music"
)
