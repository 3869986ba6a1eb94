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

package pixels

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// ImportPNG decodes a PNG image into a new Data instance. Each pixel is mapped
// to the nearest colour in the palette. Pixels with an alpha of less than 50%
// or that exactly match the mask colour are Transparent. The mask colour can
// be nil.
func ImportPNG(r io.Reader, palette color.Palette, mask color.Color) (*Data, error) {
	if len(palette) == 0 {
		return nil, fmt.Errorf("pixels: import png: empty palette")
	}

	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("pixels: import png: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > MaxSize || bounds.Dy() > MaxSize {
		return nil, fmt.Errorf("pixels: import png: image too large (%dx%d)", bounds.Dx(), bounds.Dy())
	}

	var mr, mg, mb uint32
	if mask != nil {
		mr, mg, mb, _ = mask.RGBA()
	}

	d := NewData(bounds.Dx(), bounds.Dy())
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			cr, cg, cb, ca := c.RGBA()
			if ca < 0x8000 || (mask != nil && cr == mr && cg == mg && cb == mb) {
				continue
			}
			d.pixels[x+y*d.width] = palette.Index(c)
		}
	}

	return d, nil
}

// Image converts the Data to an RGBA image using the palette. Transparent
// pixels, and pixels that refer to colours outside of the palette, are given
// the background colour. A background of nil leaves those pixels fully
// transparent.
func (d *Data) Image(palette color.Palette, background color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, d.width, d.height))
	for i, v := range d.pixels {
		var c color.Color
		if v >= 0 && v < len(palette) {
			c = palette[v]
		} else if background != nil {
			c = background
		} else {
			continue
		}
		img.Set(i%d.width, i/d.width, c)
	}
	return img
}

// ExportPNG encodes the Data as a PNG image, scaled by the integer scale
// value using nearest neighbour sampling.
func ExportPNG(w io.Writer, d *Data, palette color.Palette, background color.Color, scale int) error {
	var img image.Image = d.Image(palette, background)

	if scale > 1 {
		dst := image.NewRGBA(image.Rect(0, 0, d.width*scale, d.height*scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
		img = dst
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("pixels: export png: %w", err)
	}

	return nil
}
