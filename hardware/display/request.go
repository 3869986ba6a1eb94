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

package display

import (
	"fmt"

	"github.com/pixelvision8/pv8/pixels"
)

// Layer determines the compositing order of draw requests. Requests on lower
// layers are composited first.
type Layer int

// List of valid Layer values.
const (
	LayerBackground Layer = iota
	LayerSpriteBelow
	LayerTilemap
	LayerSpriteAbove
	LayerUI
)

func (l Layer) String() string {
	switch l {
	case LayerBackground:
		return "background"
	case LayerSpriteBelow:
		return "sprite below"
	case LayerTilemap:
		return "tilemap"
	case LayerSpriteAbove:
		return "sprite above"
	case LayerUI:
		return "ui"
	}
	return fmt.Sprintf("layer %d", l)
}

type requestKind int

const (
	requestPixels requestKind = iota
	requestSprite
	requestTilemap
	requestText
)

// request is a queued draw operation
type request struct {
	kind  requestKind
	layer Layer

	// destination position
	x int
	y int

	// size of pixel data for requestPixels. area of tilemap for requestTilemap
	w int
	h int

	// requestPixels only
	data []int

	// requestSprite only
	id int

	// requestTilemap only. the position in the tilemap of the area to draw
	scrollX int
	scrollY int

	// requestText only
	text    string
	font    string
	spacing int

	opts pixels.MergeOptions
}
