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

import (
	"github.com/pixelvision8/pv8/hardware/chips"
	"github.com/pixelvision8/pv8/hardware/preferences"
	"github.com/pixelvision8/pv8/hardware/sprite"
	"github.com/pixelvision8/pv8/logger"
	"github.com/pixelvision8/pv8/pixels"
)

// Chip is the tilemap chip.
type Chip struct {
	chips.Base

	columns int
	rows    int

	// tile attributes. one entry per tile in row-major order
	spriteIDs    []int
	flags        []int
	colorOffsets []int
	flipH        []bool
	flipV        []bool

	// tiles that must be redrawn in the cache
	invalid      []bool
	invalidCount int

	tileWidth  int
	tileHeight int
	cache      *pixels.Data

	sprites *sprite.Chip
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
}

// Configure implements the chips.Chip interface. The tilemap is recreated
// with the size given in the preferences and all tiles are empty.
func (ch *Chip) Configure() {
	p := ch.Prefs()

	ch.tileWidth = preferences.Int(&p.SpriteWidth)
	ch.tileHeight = preferences.Int(&p.SpriteHeight)

	if s, ok := ch.GetChip(chips.SpriteKey, true).(*sprite.Chip); ok {
		ch.SetSprites(s)
	}

	ch.Resize(preferences.Int(&p.TilemapColumns), preferences.Int(&p.TilemapRows))

	logger.Logf(ch.Env(), "tilemap", "%dx%d tiles", ch.columns, ch.rows)
}

// SetSprites changes the sprite chip used to draw the tiles. The tile size is
// taken from the sprite chip and the tilemap is resized to match.
//
// The sprite chip is found automatically when the tilemap chip is activated
// in an engine. SetSprites() is only required when the chip is used on its
// own.
func (ch *Chip) SetSprites(s *sprite.Chip) {
	ch.sprites = s
	if s == nil {
		return
	}

	if ch.tileWidth != s.SpriteWidth() || ch.tileHeight != s.SpriteHeight() {
		ch.tileWidth = s.SpriteWidth()
		ch.tileHeight = s.SpriteHeight()
		if ch.columns > 0 {
			ch.Resize(ch.columns, ch.rows)
		}
	}

	ch.InvalidateAll()
}

// Capabilities implements the chips.Chip interface.
func (ch *Chip) Capabilities() chips.Capability {
	return chips.CapDraw
}

// Columns returns the number of columns in the tilemap.
func (ch *Chip) Columns() int {
	return ch.columns
}

// Rows returns the number of rows in the tilemap.
func (ch *Chip) Rows() int {
	return ch.rows
}

// Total returns the number of tiles in the tilemap.
func (ch *Chip) Total() int {
	return ch.columns * ch.rows
}

// TileWidth returns the width of a tile in pixels.
func (ch *Chip) TileWidth() int {
	return ch.tileWidth
}

// TileHeight returns the height of a tile in pixels.
func (ch *Chip) TileHeight() int {
	return ch.tileHeight
}

// Resize changes the number of columns and rows in the tilemap. All tiles are
// cleared. The size of the tilemap is limited by the size of pixel data that
// can hold the cache.
func (ch *Chip) Resize(columns int, rows int) {
	ch.columns = max(1, min(columns, pixels.MaxSize/ch.tileWidth))
	ch.rows = max(1, min(rows, pixels.MaxSize/ch.tileHeight))

	n := ch.Total()
	ch.spriteIDs = make([]int, n)
	ch.flags = make([]int, n)
	ch.colorOffsets = make([]int, n)
	ch.flipH = make([]bool, n)
	ch.flipV = make([]bool, n)
	ch.invalid = make([]bool, n)

	if ch.cache == nil {
		ch.cache = pixels.NewData(ch.columns*ch.tileWidth, ch.rows*ch.tileHeight)
	} else {
		ch.cache.Resize(ch.columns*ch.tileWidth, ch.rows*ch.tileHeight)
	}

	ch.Clear()
}

// Clear sets every tile to EmptyTile.
func (ch *Chip) Clear() {
	for i := range ch.spriteIDs {
		ch.spriteIDs[i] = NoSprite
		ch.flags[i] = NoFlag
		ch.colorOffsets[i] = 0
		ch.flipH[i] = false
		ch.flipV[i] = false
	}
	ch.InvalidateAll()
}

// index returns the tile index for the coordinates or -1 if the coordinates
// are outside of the tilemap.
func (ch *Chip) index(column int, row int) int {
	if column < 0 || column >= ch.columns || row < 0 || row >= ch.rows {
		return -1
	}
	return column + row*ch.columns
}

// Tile returns the tile at the coordinates. Coordinates outside of the tilemap
// return EmptyTile.
func (ch *Chip) Tile(column int, row int) Tile {
	i := ch.index(column, row)
	if i < 0 {
		return EmptyTile
	}
	return Tile{
		SpriteID:    ch.spriteIDs[i],
		Flag:        ch.flags[i],
		ColorOffset: ch.colorOffsets[i],
		FlipH:       ch.flipH[i],
		FlipV:       ch.flipV[i],
	}
}

// UpdateTileAt changes every attribute of the tile at the coordinates.
// Coordinates outside of the tilemap are ignored.
func (ch *Chip) UpdateTileAt(column int, row int, t Tile) {
	i := ch.index(column, row)
	if i < 0 {
		return
	}
	ch.spriteIDs[i] = t.SpriteID
	ch.flags[i] = t.Flag
	ch.colorOffsets[i] = t.ColorOffset
	ch.flipH[i] = t.FlipH
	ch.flipV[i] = t.FlipV
	ch.invalidate(i)
}

// ReadSpriteAt returns the sprite index of the tile at the coordinates.
func (ch *Chip) ReadSpriteAt(column int, row int) int {
	i := ch.index(column, row)
	if i < 0 {
		return NoSprite
	}
	return ch.spriteIDs[i]
}

// UpdateSpriteAt changes the sprite index of the tile at the coordinates.
func (ch *Chip) UpdateSpriteAt(column int, row int, id int) {
	i := ch.index(column, row)
	if i < 0 {
		return
	}
	ch.spriteIDs[i] = id
	ch.invalidate(i)
}

// ReadFlagAt returns the flag value of the tile at the coordinates.
func (ch *Chip) ReadFlagAt(column int, row int) int {
	i := ch.index(column, row)
	if i < 0 {
		return NoFlag
	}
	return ch.flags[i]
}

// UpdateFlagAt changes the flag value of the tile at the coordinates. Flags
// do not affect the appearance of the tile so the cache is not invalidated.
func (ch *Chip) UpdateFlagAt(column int, row int, flag int) {
	i := ch.index(column, row)
	if i < 0 {
		return
	}
	ch.flags[i] = flag
}

// TilePosition returns the position in pixels of the tile's top left corner
// in the cache.
func (ch *Chip) TilePosition(column int, row int) (int, int) {
	return pixels.CalculateIndexPosition(column+row*ch.columns, ch.cache.Width(), ch.cache.Height(),
		ch.tileWidth, ch.tileHeight, false)
}

func (ch *Chip) invalidate(i int) {
	if !ch.invalid[i] {
		ch.invalid[i] = true
		ch.invalidCount++
	}
}

// Invalidate marks the tile at the coordinates as needing to be redrawn in
// the cache.
func (ch *Chip) Invalidate(column int, row int) {
	i := ch.index(column, row)
	if i < 0 {
		return
	}
	ch.invalidate(i)
}

// InvalidateAll marks every tile as needing to be redrawn in the cache. This
// should be called after the sprite atlas has been changed.
func (ch *Chip) InvalidateAll() {
	for i := range ch.invalid {
		ch.invalid[i] = true
	}
	ch.invalidCount = len(ch.invalid)
}

// Invalid returns the number of tiles waiting to be redrawn.
func (ch *Chip) Invalid() int {
	return ch.invalidCount
}

// Draw implements the chips.Drawer interface. Invalidated tiles are redrawn
// in the cache.
func (ch *Chip) Draw() {
	if ch.invalidCount == 0 || ch.sprites == nil {
		return
	}

	atlas := ch.sprites.Atlas()
	blank := make([]int, ch.tileWidth*ch.tileHeight)
	for i := range blank {
		blank[i] = pixels.Transparent
	}

	for i, inv := range ch.invalid {
		if !inv {
			continue
		}
		ch.invalid[i] = false

		x, y := ch.TilePosition(i%ch.columns, i/ch.columns)
		ch.cache.SetPixelBlock(x, y, ch.tileWidth, ch.tileHeight, blank)

		r, ok := ch.sprites.SpriteRect(ch.spriteIDs[i])
		if !ok {
			continue
		}

		ch.cache.MergeData(atlas, r, x, y, pixels.MergeOptions{
			Masked:           true,
			TransparentValue: pixels.Transparent,
			FlipH:            ch.flipH[i],
			FlipV:            ch.flipV[i],
			ColorOffset:      ch.colorOffsets[i],
		})
	}

	ch.invalidCount = 0
}

// Cache returns the pixel data of the tilemap as it was at the end of the most
// recent Draw phase.
func (ch *Chip) Cache() *pixels.Data {
	return ch.cache
}
