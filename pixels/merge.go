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

// MergeOptions collects the compositing options for MergeData().
type MergeOptions struct {
	// source pixels equal to the TransparentValue are skipped when Masked is
	// true. the destination keeps its existing value
	Masked           bool
	TransparentValue int

	FlipH bool
	FlipV bool

	// added to every copied value that isn't the TransparentValue. allows a
	// recoloured copy of the same sprite
	ColorOffset int
}

// DefaultMergeOptions are the options most often required when compositing a
// sprite: masked with the Transparent value, no flipping and no colour offset.
var DefaultMergeOptions = MergeOptions{
	Masked:           true,
	TransparentValue: Transparent,
}

// MergePixels composites a block of source pixels onto the raster with the top
// left corner of the block at x, y. The block is width * height pixels in
// row-major order.
//
// Flipping is applied to the sample coordinates. In other words, the pixel
// written to destination column c is read from source column (width - 1 - c)
// when flipH is true.
//
// Destination pixels outside of the raster are clipped. The WrapMode of the
// raster does not affect merging.
func (d *Data) MergePixels(x int, y int, width int, height int, src []int, masked bool, transparent int, flipH bool, flipV bool, colorOffset int) {
	if width <= 0 || height <= 0 || len(src) < width*height {
		return
	}

	clip := Rect{X: x, Y: y, W: width, H: height}.Intersect(d.Bounds())
	if clip.Empty() {
		return
	}

	for row := clip.Y - y; row < clip.Y-y+clip.H; row++ {
		sy := row
		if flipV {
			sy = height - 1 - row
		}

		di := (y+row)*d.width + x

		for col := clip.X - x; col < clip.X-x+clip.W; col++ {
			sx := col
			if flipH {
				sx = width - 1 - col
			}

			v := src[sx+sy*width]
			if v == transparent {
				if masked {
					continue
				}
			} else {
				v += colorOffset
			}

			d.pixels[di+col] = v
		}
	}
}

// MergeData composites the region of the source Data described by the sample
// rectangle onto the raster at x, y. The source is only read; the receiver is
// the only instance that is changed.
func (d *Data) MergeData(src *Data, sample Rect, x int, y int, opts MergeOptions) {
	if sample.Empty() {
		return
	}
	p := src.GetPixels(sample.X, sample.Y, sample.W, sample.H)
	d.MergePixels(x, y, sample.W, sample.H, p, opts.Masked, opts.TransparentValue, opts.FlipH, opts.FlipV, opts.ColorOffset)
}
