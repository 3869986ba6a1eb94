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

package font

import (
	"fmt"
	"image/color"
	"io"
	"slices"

	"github.com/pixelvision8/pv8/hardware/chips"
	"github.com/pixelvision8/pv8/hardware/preferences"
	"github.com/pixelvision8/pv8/logger"
	"github.com/pixelvision8/pv8/pixels"
)

// the range of characters in a font
const (
	FirstChar = 32
	LastChar  = 127
)

// Chip is the font chip.
type Chip struct {
	chips.Base

	fonts map[string]*pixels.Data

	glyphWidth  int
	glyphHeight int
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

// Configure implements the chips.Chip interface. The glyph size is the same as
// the sprite size. All fonts are removed.
func (ch *Chip) Configure() {
	p := ch.Prefs()
	ch.glyphWidth = preferences.Int(&p.SpriteWidth)
	ch.glyphHeight = preferences.Int(&p.SpriteHeight)
	ch.fonts = make(map[string]*pixels.Data)
}

// Capabilities implements the chips.Chip interface.
func (ch *Chip) Capabilities() chips.Capability {
	return chips.CapNone
}

// GlyphWidth returns the width of a glyph in pixels.
func (ch *Chip) GlyphWidth() int {
	return ch.glyphWidth
}

// GlyphHeight returns the height of a glyph in pixels.
func (ch *Chip) GlyphHeight() int {
	return ch.glyphHeight
}

// AddFont adds a font atlas with the name. An existing font with the same name
// is replaced. The atlas is copied.
func (ch *Chip) AddFont(name string, atlas *pixels.Data) {
	if atlas == nil {
		return
	}
	ch.fonts[name] = atlas.Copy()
	logger.Logf(ch.Env(), "font", "added %s (%d glyphs)", name, ch.TotalGlyphs(name))
}

// LoadFont adds a font from a PNG image. See AddFont().
func (ch *Chip) LoadFont(name string, r io.Reader, palette color.Palette, mask color.Color) error {
	d, err := pixels.ImportPNG(r, palette, mask)
	if err != nil {
		return fmt.Errorf("font: %s: %w", name, err)
	}
	ch.AddFont(name, d)
	return nil
}

// RemoveFont removes the named font.
func (ch *Chip) RemoveFont(name string) {
	delete(ch.fonts, name)
}

// HasFont returns true if the named font exists.
func (ch *Chip) HasFont(name string) bool {
	_, ok := ch.fonts[name]
	return ok
}

// Fonts returns the names of all fonts in alphabetical order.
func (ch *Chip) Fonts() []string {
	n := make([]string, 0, len(ch.fonts))
	for k := range ch.fonts {
		n = append(n, k)
	}
	slices.Sort(n)
	return n
}

// TotalGlyphs returns the number of glyphs in the named font.
func (ch *Chip) TotalGlyphs(name string) int {
	f, ok := ch.fonts[name]
	if !ok {
		return 0
	}
	return pixels.CalculateTotalSprites(f.Width(), f.Height(), ch.glyphWidth, ch.glyphHeight)
}

// GlyphRect returns the atlas of the named font and the area of the atlas
// occupied by the glyph for the character. The last return value is false if
// the font does not exist or has no glyph for the character.
func (ch *Chip) GlyphRect(name string, r rune) (*pixels.Data, pixels.Rect, bool) {
	f, ok := ch.fonts[name]
	if !ok {
		return nil, pixels.Rect{}, false
	}

	if r < FirstChar || r > LastChar {
		return nil, pixels.Rect{}, false
	}

	index := int(r - FirstChar)
	if index >= ch.TotalGlyphs(name) {
		return nil, pixels.Rect{}, false
	}

	return f, pixels.CellRect(index, f.Width(), f.Height(), ch.glyphWidth, ch.glyphHeight, false), true
}

// ReadGlyph returns a copy of the pixels for the character in the named font.
func (ch *Chip) ReadGlyph(name string, r rune) []int {
	f, rect, ok := ch.GlyphRect(name, r)
	if !ok {
		return ch.blank()
	}
	return f.GetPixels(rect.X, rect.Y, rect.W, rect.H)
}

// ConvertTextToGlyphs returns the glyph pixels for every character in the
// text.
func (ch *Chip) ConvertTextToGlyphs(name string, text string) [][]int {
	g := make([][]int, 0, len(text))
	for _, r := range text {
		g = append(g, ch.ReadGlyph(name, r))
	}
	return g
}

func (ch *Chip) blank() []int {
	p := make([]int, ch.glyphWidth*ch.glyphHeight)
	for i := range p {
		p[i] = pixels.Transparent
	}
	return p
}
