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

package color

import (
	imgcolor "image/color"

	"github.com/pixelvision8/pv8/hardware/chips"
	"github.com/pixelvision8/pv8/logger"
)

// DefaultMaskColor is the colour that is treated as transparent when
// importing images.
const DefaultMaskColor = "#FF00FF"

// MaxColors is the largest number of colours in the palette.
const MaxColors = 256

// DefaultColors is the palette used when the chip is configured.
var DefaultColors = []string{
	"#000000", "#1D2B53", "#7E2553", "#008751",
	"#AB5236", "#5F574F", "#C2C3C7", "#FFF1E8",
	"#FF004D", "#FFA300", "#FFEC27", "#00E436",
	"#29ADFF", "#83769C", "#FF77A8", "#FFCCAA",
}

// Chip holds the colour palette.
type Chip struct {
	chips.Base

	colors []imgcolor.RGBA
	mask   imgcolor.RGBA
}

// NewChip is the preferred method of initialisation for the Chip type.
func NewChip() *Chip {
	ch := &Chip{}
	ch.setDefaults()
	return ch
}

func (ch *Chip) setDefaults() {
	ch.colors = ch.colors[:0]
	for _, h := range DefaultColors {
		c, _ := ParseHex(h)
		ch.colors = append(ch.colors, c)
	}
	ch.mask, _ = ParseHex(DefaultMaskColor)
}

// Activate implements the chips.Chip interface.
func (ch *Chip) Activate(engine chips.Engine) {
	ch.Base.Activate(engine)
	ch.Configure()
}

// Configure implements the chips.Chip interface. The palette is returned to
// the default colours.
func (ch *Chip) Configure() {
	ch.setDefaults()
}

// Capabilities implements the chips.Chip interface.
func (ch *Chip) Capabilities() chips.Capability {
	return chips.CapNone
}

// Total returns the number of colours in the palette.
func (ch *Chip) Total() int {
	return len(ch.colors)
}

// Resize changes the number of colours in the palette. New entries are set to
// the mask colour. The total is clamped to the range 1 to MaxColors.
func (ch *Chip) Resize(total int) {
	total = max(1, min(total, MaxColors))
	for len(ch.colors) < total {
		ch.colors = append(ch.colors, ch.mask)
	}
	ch.colors = ch.colors[:total]
}

// Color returns the hex representation of the colour at index. An index
// outside of the palette returns the mask colour.
func (ch *Chip) Color(index int) string {
	if index < 0 || index >= len(ch.colors) {
		return Hex(ch.mask)
	}
	return Hex(ch.colors[index])
}

// SetColor changes the colour at index. Invalid colour strings and indexes
// outside of the palette are ignored.
func (ch *Chip) SetColor(index int, hex string) {
	if index < 0 || index >= len(ch.colors) {
		return
	}

	c, err := ParseHex(hex)
	if err != nil {
		logger.Log(ch.Env(), "color", err)
		return
	}

	ch.colors[index] = c
}

// MaskColor returns the colour treated as transparent when importing images.
func (ch *Chip) MaskColor() imgcolor.Color {
	return ch.mask
}

// SetMaskColor changes the mask colour. Invalid colour strings are ignored.
func (ch *Chip) SetMaskColor(hex string) {
	c, err := ParseHex(hex)
	if err != nil {
		logger.Log(ch.Env(), "color", err)
		return
	}
	ch.mask = c
}

// Palette returns a copy of the palette suitable for use with the image
// functions in the pixels package.
func (ch *Chip) Palette() imgcolor.Palette {
	p := make(imgcolor.Palette, len(ch.colors))
	for i, c := range ch.colors {
		p[i] = c
	}
	return p
}
