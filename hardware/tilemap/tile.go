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

package tilemap

import "fmt"

// values indicating the absence of a sprite or flag
const (
	NoSprite = -1
	NoFlag   = -1
)

// Tile describes a single entry in the tilemap.
type Tile struct {
	SpriteID    int
	Flag        int
	ColorOffset int
	FlipH       bool
	FlipV       bool
}

// EmptyTile is the value of every tile in a cleared tilemap.
var EmptyTile = Tile{SpriteID: NoSprite, Flag: NoFlag}

// IsEmpty returns true if the tile has no sprite.
func (t Tile) IsEmpty() bool {
	return t.SpriteID < 0
}

func (t Tile) String() string {
	s := fmt.Sprintf("sprite=%d flag=%d", t.SpriteID, t.Flag)
	if t.ColorOffset != 0 {
		s = fmt.Sprintf("%s offset=%d", s, t.ColorOffset)
	}
	if t.FlipH {
		s = fmt.Sprintf("%s fliph", s)
	}
	if t.FlipV {
		s = fmt.Sprintf("%s flipv", s)
	}
	return s
}
