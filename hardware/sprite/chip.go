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

package sprite

import (
	"fmt"
	"image/color"
	"io"

	"github.com/pixelvision8/pv8/hardware/chips"
	"github.com/pixelvision8/pv8/hardware/preferences"
	"github.com/pixelvision8/pv8/logger"
	"github.com/pixelvision8/pv8/pixels"
)

// the layout of the sprite atlas in sprites
const (
	Columns     = 16
	RowsPerPage = 8
)

// Chip is the sprite chip.
type Chip struct {
	chips.Base

	atlas *pixels.Data

	width  int
	height int
	pages  int

	// the number of sprites that can be drawn in a single frame. a value of
	// zero or less means there is no limit
	MaxSpritesPerFrame int
	spritesThisFrame   int

	// address the atlas as though the origin is the bottom left corner
	BottomLeftOrigin bool
}

// NewChip is the preferred method of initialisation for the Chip type.
func NewChip() *Chip {
	ch := &Chip{}
	ch.Configure()
	return ch
}

// Activate implements the chips.Chip interface.
func (ch *Chip) Activate(engine chips.Engine) {
	ch.Base.Activate(engine)
	ch.Configure()
}

// Configure implements the chips.Chip interface. The atlas is recreated and
// all sprite data is lost.
func (ch *Chip) Configure() {
	p := ch.Prefs()

	ch.width = preferences.Int(&p.SpriteWidth)
	ch.height = preferences.Int(&p.SpriteHeight)
	ch.pages = preferences.Int(&p.SpritePages)
	ch.MaxSpritesPerFrame = preferences.Int(&p.MaxSpritesPerFrame)
	ch.spritesThisFrame = 0

	ch.atlas = pixels.NewData(Columns*ch.width, ch.pages*RowsPerPage*ch.height)

	logger.Logf(ch.Env(), "sprite", "atlas %dx%d (%d sprites of %dx%d)",
		ch.atlas.Width(), ch.atlas.Height(), ch.TotalSprites(), ch.width, ch.height)
}

// Capabilities implements the chips.Chip interface.
func (ch *Chip) Capabilities() chips.Capability {
	return chips.CapUpdate
}

// Update implements the chips.Updater interface. The per-frame sprite count
// is reset.
func (ch *Chip) Update(_ float64) {
	ch.spritesThisFrame = 0
}

// Reset implements the chips.Chip interface.
func (ch *Chip) Reset() {
	ch.spritesThisFrame = 0
}

// SpriteWidth returns the width of a single sprite in pixels.
func (ch *Chip) SpriteWidth() int {
	return ch.width
}

// SpriteHeight returns the height of a single sprite in pixels.
func (ch *Chip) SpriteHeight() int {
	return ch.height
}

// Pages returns the number of pages in the atlas as configured.
func (ch *Chip) Pages() int {
	return ch.pages
}

// TotalSprites returns the number of complete sprites in the atlas.
func (ch *Chip) TotalSprites() int {
	return pixels.CalculateTotalSprites(ch.atlas.Width(), ch.atlas.Height(), ch.width, ch.height)
}

// Atlas returns the pixel data of the atlas. It is used as the source when
// compositing sprites onto other pixel data and must not be resized by the
// caller.
func (ch *Chip) Atlas() *pixels.Data {
	return ch.atlas
}

// SpriteRect returns the area of the atlas occupied by the sprite. The second
// return value is false if the id is outside of the atlas.
func (ch *Chip) SpriteRect(id int) (pixels.Rect, bool) {
	if id < 0 || id >= ch.TotalSprites() {
		return pixels.Rect{}, false
	}
	return pixels.CellRect(id, ch.atlas.Width(), ch.atlas.Height(), ch.width, ch.height, ch.BottomLeftOrigin), true
}

// ReadSpriteAt returns a copy of the pixels of the sprite. If the id is
// outside of the atlas the returned sprite is entirely transparent.
func (ch *Chip) ReadSpriteAt(id int) []int {
	r, ok := ch.SpriteRect(id)
	if !ok {
		return ch.blank()
	}
	return ch.atlas.GetPixels(r.X, r.Y, r.W, r.H)
}

func (ch *Chip) blank() []int {
	p := make([]int, ch.width*ch.height)
	for i := range p {
		p[i] = pixels.Transparent
	}
	return p
}

// UpdateSpriteAt replaces the pixels of the sprite. The data is in row-major
// order. An id outside of the atlas is ignored.
func (ch *Chip) UpdateSpriteAt(id int, data []int) {
	r, ok := ch.SpriteRect(id)
	if !ok {
		return
	}
	ch.atlas.SetPixelBlock(r.X, r.Y, r.W, r.H, data)
}

// IsEmpty returns true if every pixel of the sprite is transparent. Sprites
// outside of the atlas are empty.
func (ch *Chip) IsEmpty(id int) bool {
	for _, v := range ch.ReadSpriteAt(id) {
		if v != pixels.Transparent {
			return false
		}
	}
	return true
}

// Resize changes the size of the atlas in pixels. The size is clamped by the
// pixels package and the atlas is cleared.
func (ch *Chip) Resize(width int, height int) {
	ch.atlas.Resize(width, height)
}

// Clear sets every pixel in the atlas to transparent.
func (ch *Chip) Clear() {
	ch.atlas.Clear()
}

// SpritesThisFrame returns the number of sprites reserved in the current
// frame.
func (ch *Chip) SpritesThisFrame() int {
	return ch.spritesThisFrame
}

// Reserve a sprite for drawing in the current frame. Returns false if the
// sprite budget for the frame has been exhausted.
func (ch *Chip) Reserve() bool {
	if ch.MaxSpritesPerFrame > 0 && ch.spritesThisFrame >= ch.MaxSpritesPerFrame {
		return false
	}
	ch.spritesThisFrame++
	return true
}

// LoadAtlas replaces the atlas with a PNG image. Each pixel is converted to
// the nearest colour in the palette. Pixels that match the mask colour are
// transparent.
func (ch *Chip) LoadAtlas(r io.Reader, palette color.Palette, mask color.Color) error {
	d, err := pixels.ImportPNG(r, palette, mask)
	if err != nil {
		return fmt.Errorf("sprite: %w", err)
	}

	ch.atlas = d

	logger.Logf(ch.Env(), "sprite", "loaded atlas %dx%d (%d sprites)", d.Width(), d.Height(), ch.TotalSprites())

	return nil
}
