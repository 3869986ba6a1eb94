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
	"slices"

	"github.com/pixelvision8/pv8/hardware/chips"
	"github.com/pixelvision8/pv8/hardware/font"
	"github.com/pixelvision8/pv8/hardware/preferences"
	"github.com/pixelvision8/pv8/hardware/sprite"
	"github.com/pixelvision8/pv8/hardware/tilemap"
	"github.com/pixelvision8/pv8/logger"
	"github.com/pixelvision8/pv8/pixels"
)

// Chip is the display chip.
type Chip struct {
	chips.Base

	display *pixels.Data
	queue   []request

	// the display is filled with the background colour at the start of the
	// Draw phase if AutoClear is true or if Clear() has been called
	BackgroundColor int
	AutoClear       bool
	clearPending    bool

	// chips that provide source data for compositing. any of these may be nil
	sprites *sprite.Chip
	tiles   *tilemap.Chip
	fonts   *font.Chip

	// requests dropped because the sprite budget was exhausted
	dropped int
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

// Deactivate implements the chips.Chip interface.
func (ch *Chip) Deactivate() {
	ch.Base.Deactivate()
	ch.sprites = nil
	ch.tiles = nil
	ch.fonts = nil
}

// Configure implements the chips.Chip interface. The display is recreated and
// the draw queue is emptied.
func (ch *Chip) Configure() {
	p := ch.Prefs()

	ch.display = pixels.NewData(preferences.Int(&p.DisplayWidth), preferences.Int(&p.DisplayHeight))
	ch.display.WrapMode = preferences.Bool(&p.WrapMode)
	ch.queue = ch.queue[:0]
	ch.dropped = 0
	ch.AutoClear = true
	ch.clearPending = false

	ch.sprites, _ = ch.GetChip(chips.SpriteKey, true).(*sprite.Chip)
	ch.tiles, _ = ch.GetChip(chips.TilemapKey, true).(*tilemap.Chip)
	ch.fonts, _ = ch.GetChip(chips.FontKey, true).(*font.Chip)

	logger.Logf(ch.Env(), "display", "%dx%d", ch.display.Width(), ch.display.Height())
}

// SetSources changes the chips used as the source for compositing. The
// sources are found automatically when the display chip is activated in an
// engine. Any of the arguments can be nil.
func (ch *Chip) SetSources(sprites *sprite.Chip, tiles *tilemap.Chip, fonts *font.Chip) {
	ch.sprites = sprites
	ch.tiles = tiles
	ch.fonts = fonts
}

// Capabilities implements the chips.Chip interface.
func (ch *Chip) Capabilities() chips.Capability {
	return chips.CapDraw
}

// Reset implements the chips.Chip interface.
func (ch *Chip) Reset() {
	ch.queue = ch.queue[:0]
	ch.dropped = 0
	ch.display.Clear()
}

// Width returns the width of the display in pixels.
func (ch *Chip) Width() int {
	return ch.display.Width()
}

// Height returns the height of the display in pixels.
func (ch *Chip) Height() int {
	return ch.display.Height()
}

// Resize changes the size of the display. The display is cleared and pending
// draw requests are discarded.
func (ch *Chip) Resize(width int, height int) {
	ch.display.Resize(width, height)
	ch.queue = ch.queue[:0]
}

// Frame returns the display as it was at the end of the most recent Draw
// phase.
func (ch *Chip) Frame() *pixels.Data {
	return ch.display
}

// Pending returns the number of draw requests waiting for the Draw phase.
func (ch *Chip) Pending() int {
	return len(ch.queue)
}

// Dropped returns the number of sprite draw requests that have been dropped
// because the sprite budget for the frame was exhausted.
func (ch *Chip) Dropped() int {
	return ch.dropped
}

// Clear requests that the display be filled with the background colour at
// the start of the next Draw phase. Only useful if AutoClear is false.
func (ch *Chip) Clear() {
	ch.clearPending = true
}

// DrawPixels queues a block of pixel data for compositing. The data is copied.
func (ch *Chip) DrawPixels(data []int, x int, y int, width int, height int, flipH bool, flipV bool, colorOffset int, layer Layer) {
	if width <= 0 || height <= 0 || len(data) < width*height {
		return
	}
	opts := pixels.DefaultMergeOptions
	opts.FlipH = flipH
	opts.FlipV = flipV
	opts.ColorOffset = colorOffset
	ch.queue = append(ch.queue, request{
		kind:  requestPixels,
		layer: layer,
		x:     x, y: y, w: width, h: height,
		data: slices.Clone(data[:width*height]),
		opts: opts,
	})
}

// DrawSprite queues a sprite for compositing. Each call reserves a sprite from
// the sprite chip's per-frame budget. Returns false if the request was
// dropped.
func (ch *Chip) DrawSprite(id int, x int, y int, flipH bool, flipV bool, colorOffset int, layer Layer) bool {
	if ch.sprites == nil {
		return false
	}
	if !ch.sprites.Reserve() {
		ch.dropped++
		return false
	}
	opts := pixels.DefaultMergeOptions
	opts.FlipH = flipH
	opts.FlipV = flipV
	opts.ColorOffset = colorOffset
	ch.queue = append(ch.queue, request{
		kind:  requestSprite,
		layer: layer,
		x:     x, y: y,
		id:   id,
		opts: opts,
	})
	return true
}

// DrawTilemap queues an area of the tilemap cache for compositing. The area
// is width by height pixels from scrollX, scrollY in the tilemap. A width or
// height of zero or less means the width or height of the display.
func (ch *Chip) DrawTilemap(x int, y int, width int, height int, scrollX int, scrollY int, layer Layer) {
	if width <= 0 {
		width = ch.display.Width()
	}
	if height <= 0 {
		height = ch.display.Height()
	}
	ch.queue = append(ch.queue, request{
		kind:  requestTilemap,
		layer: layer,
		x:     x, y: y, w: width, h: height,
		scrollX: scrollX,
		scrollY: scrollY,
		opts:    pixels.DefaultMergeOptions,
	})
}

// DrawText queues a line of text for compositing using the named font.
// Spacing is the number of pixels added between characters.
func (ch *Chip) DrawText(text string, x int, y int, fontName string, colorOffset int, spacing int, layer Layer) {
	opts := pixels.DefaultMergeOptions
	opts.ColorOffset = colorOffset
	ch.queue = append(ch.queue, request{
		kind:    requestText,
		layer:   layer,
		x:       x,
		y:       y,
		text:    text,
		font:    fontName,
		spacing: spacing,
		opts:    opts,
	})
}

// Draw implements the chips.Drawer interface. Queued requests are composited
// onto the display and the queue is emptied.
func (ch *Chip) Draw() {
	if ch.AutoClear || ch.clearPending {
		ch.display.Fill(ch.BackgroundColor)
		ch.clearPending = false
	}

	slices.SortStableFunc(ch.queue, func(a, b request) int {
		return int(a.layer) - int(b.layer)
	})

	for i := range ch.queue {
		ch.composite(&ch.queue[i])
	}

	clear(ch.queue)
	ch.queue = ch.queue[:0]
}

func (ch *Chip) composite(r *request) {
	switch r.kind {
	case requestPixels:
		ch.display.MergePixels(r.x, r.y, r.w, r.h, r.data,
			r.opts.Masked, r.opts.TransparentValue, r.opts.FlipH, r.opts.FlipV, r.opts.ColorOffset)

	case requestSprite:
		if ch.sprites == nil {
			return
		}
		rect, ok := ch.sprites.SpriteRect(r.id)
		if !ok {
			return
		}
		ch.display.MergeData(ch.sprites.Atlas(), rect, r.x, r.y, r.opts)

	case requestTilemap:
		if ch.tiles == nil {
			return
		}
		ch.display.MergeData(ch.tiles.Cache(), pixels.Rect{X: r.scrollX, Y: r.scrollY, W: r.w, H: r.h}, r.x, r.y, r.opts)

	case requestText:
		if ch.fonts == nil {
			return
		}
		x := r.x
		for _, c := range r.text {
			f, rect, ok := ch.fonts.GlyphRect(r.font, c)
			if ok {
				ch.display.MergeData(f, rect, x, r.y, r.opts)
			}
			x += ch.fonts.GlyphWidth() + r.spacing
		}
	}
}
