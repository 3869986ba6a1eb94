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

package display_test

import (
	"testing"

	"github.com/pixelvision8/pv8/hardware"
	"github.com/pixelvision8/pv8/hardware/chips"
	"github.com/pixelvision8/pv8/hardware/display"
	"github.com/pixelvision8/pv8/hardware/font"
	"github.com/pixelvision8/pv8/hardware/sprite"
	"github.com/pixelvision8/pv8/hardware/tilemap"
	"github.com/pixelvision8/pv8/pixels"
	"github.com/pixelvision8/pv8/test"
)

type rig struct {
	engine  *hardware.Engine
	sprites *sprite.Chip
	tiles   *tilemap.Chip
	fonts   *font.Chip
	display *display.Chip
}

func newRig(t *testing.T) rig {
	t.Helper()

	e, err := hardware.NewEngine(nil)
	test.DemandSuccess(t, err)
	e.Env().SetQuiet(true)

	r := rig{
		engine:  e,
		sprites: sprite.NewChip(),
		tiles:   tilemap.NewChip(),
		fonts:   font.NewChip(),
		display: display.NewChip(),
	}

	e.ActivateChip(chips.SpriteKey, r.sprites)
	e.ActivateChip(chips.TilemapKey, r.tiles)
	e.ActivateChip(chips.FontKey, r.fonts)
	e.ActivateChip(chips.DisplayKey, r.display)

	r.display.Resize(32, 16)
	r.display.BackgroundColor = 0

	return r
}

func solid(v int) []int {
	p := make([]int, 64)
	for i := range p {
		p[i] = v
	}
	return p
}

func TestDefaults(t *testing.T) {
	ch := display.NewChip()
	test.ExpectEquality(t, ch.Width(), 256)
	test.ExpectEquality(t, ch.Height(), 240)
	test.ExpectSuccess(t, ch.AutoClear)

	// no sources when used on its own
	test.ExpectFailure(t, ch.DrawSprite(0, 0, 0, false, false, 0, display.LayerSpriteAbove))
}

func TestDrawPixels(t *testing.T) {
	r := newRig(t)

	data := []int{1, 2, pixels.Transparent, 4}
	r.display.DrawPixels(data, 1, 1, 2, 2, false, false, 0, display.LayerUI)
	test.ExpectEquality(t, r.display.Pending(), 1)

	// the data is copied when queued
	data[0] = 99

	// nothing is drawn until the draw phase
	test.ExpectEquality(t, r.display.Frame().GetPixel(1, 1), pixels.Transparent)

	r.engine.Step(1.0 / 60.0)
	test.ExpectEquality(t, r.display.Pending(), 0)

	f := r.display.Frame()
	test.ExpectEquality(t, f.GetPixel(1, 1), 1)
	test.ExpectEquality(t, f.GetPixel(2, 1), 2)
	test.ExpectEquality(t, f.GetPixel(1, 2), 0)
	test.ExpectEquality(t, f.GetPixel(2, 2), 4)
	test.ExpectEquality(t, f.GetPixel(0, 0), 0)

	// the display is cleared in the next frame
	r.engine.Step(1.0 / 60.0)
	test.ExpectEquality(t, f.GetPixel(1, 1), 0)

	// short data is ignored
	r.display.DrawPixels([]int{1}, 0, 0, 2, 2, false, false, 0, display.LayerUI)
	test.ExpectEquality(t, r.display.Pending(), 0)
}

func TestLayerOrder(t *testing.T) {
	r := newRig(t)

	r.sprites.UpdateSpriteAt(0, solid(5))
	r.sprites.UpdateSpriteAt(1, solid(6))

	// requested in reverse layer order. the sprite above must be composited
	// last
	r.display.DrawSprite(1, 0, 0, false, false, 0, display.LayerSpriteAbove)
	r.display.DrawSprite(0, 4, 0, false, false, 0, display.LayerSpriteBelow)

	// requests on the same layer are composited in the order they were made
	r.display.DrawSprite(0, 16, 0, false, false, 0, display.LayerUI)
	r.display.DrawSprite(1, 16, 0, false, false, 0, display.LayerUI)

	r.display.Draw()

	f := r.display.Frame()
	test.ExpectEquality(t, f.GetPixel(0, 0), 6)
	test.ExpectEquality(t, f.GetPixel(4, 0), 6)
	test.ExpectEquality(t, f.GetPixel(8, 0), 5)
	test.ExpectEquality(t, f.GetPixel(11, 0), 5)
	test.ExpectEquality(t, f.GetPixel(12, 0), 0)
	test.ExpectEquality(t, f.GetPixel(16, 0), 6)
}

func TestSpriteBudget(t *testing.T) {
	r := newRig(t)
	r.sprites.MaxSpritesPerFrame = 2

	test.ExpectSuccess(t, r.display.DrawSprite(0, 0, 0, false, false, 0, display.LayerSpriteAbove))
	test.ExpectSuccess(t, r.display.DrawSprite(0, 0, 0, false, false, 0, display.LayerSpriteAbove))
	test.ExpectFailure(t, r.display.DrawSprite(0, 0, 0, false, false, 0, display.LayerSpriteAbove))
	test.ExpectEquality(t, r.display.Pending(), 2)
	test.ExpectEquality(t, r.display.Dropped(), 1)

	// the budget is restored in the next update phase
	r.engine.Step(1.0 / 60.0)
	test.ExpectSuccess(t, r.display.DrawSprite(0, 0, 0, false, false, 0, display.LayerSpriteAbove))

	// the dropped count is kept across frames until the display is reset
	test.ExpectEquality(t, r.display.Dropped(), 1)
	r.display.Reset()
	test.ExpectEquality(t, r.display.Dropped(), 0)
	test.ExpectEquality(t, r.display.Pending(), 0)
}

func TestDrawTilemap(t *testing.T) {
	r := newRig(t)

	r.sprites.UpdateSpriteAt(2, solid(7))
	r.tiles.UpdateTileAt(1, 0, tilemap.Tile{SpriteID: 2, ColorOffset: 1})

	// scroll the tilemap so that the tile at column 1 appears at the left
	// edge of the display
	r.display.DrawTilemap(0, 0, 0, 0, 8, 0, display.LayerTilemap)
	r.engine.Step(1.0 / 60.0)

	f := r.display.Frame()
	test.ExpectEquality(t, f.GetPixel(0, 0), 8)
	test.ExpectEquality(t, f.GetPixel(7, 7), 8)
	test.ExpectEquality(t, f.GetPixel(8, 0), 0)
}

func TestDrawText(t *testing.T) {
	r := newRig(t)

	atlas := pixels.NewData(128, 8)
	atlas.SetPixel(8, 0, 3)
	atlas.SetPixel(16, 0, 4)
	r.fonts.AddFont("default", atlas)

	// '!' and '"' are the second and third glyphs
	r.display.DrawText("!\"", 1, 2, "default", 10, 2, display.LayerUI)
	r.display.Draw()

	f := r.display.Frame()
	test.ExpectEquality(t, f.GetPixel(1, 2), 13)
	test.ExpectEquality(t, f.GetPixel(11, 2), 14)

	// unknown fonts draw nothing
	r.display.DrawText("!", 0, 0, "missing", 0, 0, display.LayerUI)
	r.display.Draw()
	test.ExpectEquality(t, f.GetPixel(1, 2), 0)
}

func TestManualClear(t *testing.T) {
	r := newRig(t)
	r.display.AutoClear = false
	r.display.BackgroundColor = 2

	r.display.DrawPixels([]int{9}, 0, 0, 1, 1, false, false, 0, display.LayerUI)
	r.display.Draw()
	test.ExpectEquality(t, r.display.Frame().GetPixel(0, 0), 9)
	test.ExpectEquality(t, r.display.Frame().GetPixel(1, 0), pixels.Transparent)

	r.display.Draw()
	test.ExpectEquality(t, r.display.Frame().GetPixel(0, 0), 9)

	r.display.Clear()
	r.display.Draw()
	test.ExpectEquality(t, r.display.Frame().GetPixel(0, 0), 2)
}
