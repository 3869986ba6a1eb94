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

// Transparent is the colour reference that indicates "no pixel set".
const Transparent = -1

// The minimum and maximum size of either dimension of a Data instance.
const (
	MinSize = 1
	MaxSize = 2048
)

// Data is a flat indexed-colour raster. Pixel i is at (i % width, i / width).
//
// The length of the pixels slice always equals width * height.
type Data struct {
	width  int
	height int
	pixels []int

	// WrapMode changes how coordinates outside of the raster are treated by
	// GetPixel() and SetPixel()
	WrapMode bool
}

// NewData is the preferred method of initialisation for the Data type. The
// dimensions are clamped and all pixels are Transparent.
func NewData(width int, height int) *Data {
	d := &Data{}
	d.Resize(width, height)
	return d
}

// clamp value to the range min to max inclusive.
func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Width of raster.
func (d *Data) Width() int {
	return d.width
}

// Height of raster.
func (d *Data) Height() int {
	return d.height
}

// Len returns the total number of pixels.
func (d *Data) Len() int {
	return len(d.pixels)
}

// Resize reallocates the raster. Width and height are clamped to the range
// MinSize to MaxSize. Pixel data is not preserved. Callers that need the
// existing data must copy it before calling Resize().
func (d *Data) Resize(width int, height int) {
	d.width = clamp(width, MinSize, MaxSize)
	d.height = clamp(height, MinSize, MaxSize)
	d.pixels = make([]int, d.width*d.height)
	d.Clear()
}

// Clear sets every pixel to Transparent.
func (d *Data) Clear() {
	d.Fill(Transparent)
}

// Fill sets every pixel to the specified value.
func (d *Data) Fill(value int) {
	for i := range d.pixels {
		d.pixels[i] = value
	}
}

// wrap coordinate using a modulus of one less than the dimension. this means
// that the last row/column is never reached by a wrapped coordinate. this is
// the established behaviour and sprite/tile data depends on it. a modulus of
// zero (a dimension of one) maps the coordinate to zero.
func wrap(v int, dimension int) int {
	m := dimension - 1
	if m <= 0 {
		return 0
	}
	return v % m
}

// GetPixel returns the value at x, y. If WrapMode is enabled the coordinates
// are wrapped (see note about the modulus above). Coordinates that are still
// outside of the raster return Transparent.
func (d *Data) GetPixel(x int, y int) int {
	if d.WrapMode {
		x = wrap(x, d.width)
		y = wrap(y, d.height)
	}

	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return Transparent
	}

	return d.pixels[x+y*d.width]
}

// SetPixel sets the value at x, y. The y coordinate is wrapped if WrapMode is
// enabled but the x coordinate never wraps. An out of range x coordinate, or
// any coordinate resulting in an index outside of the raster, is silently
// ignored.
func (d *Data) SetPixel(x int, y int, value int) {
	if d.WrapMode {
		y = wrap(y, d.height)
	}

	if x < 0 || x >= d.width {
		return
	}

	i := x + y*d.width
	if i < 0 || i >= len(d.pixels) {
		return
	}

	d.pixels[i] = value
}

// Pixels returns a copy of all pixels in the raster.
func (d *Data) Pixels() []int {
	p := make([]int, len(d.pixels))
	copy(p, d.pixels)
	return p
}

// SetPixels replaces the entire raster. If the length of the source differs
// from the raster only min(len(src), Len()) pixels are copied.
func (d *Data) SetPixels(src []int) {
	copy(d.pixels, src)
}

// GetPixels copies a rectangular window of the raster. The returned slice is
// always of length width * height, in row-major order.
//
// When WrapMode is disabled the window is intersected with the bounds of the
// raster and only the intersection is copied. Cells of the window outside of
// the raster are Transparent. When WrapMode is enabled each cell is read
// through GetPixel().
func (d *Data) GetPixels(x int, y int, width int, height int) []int {
	if width <= 0 || height <= 0 {
		return []int{}
	}

	p := make([]int, width*height)

	if d.WrapMode {
		for row := 0; row < height; row++ {
			for col := 0; col < width; col++ {
				p[col+row*width] = d.GetPixel(x+col, y+row)
			}
		}
		return p
	}

	for i := range p {
		p[i] = Transparent
	}

	clip := Rect{X: x, Y: y, W: width, H: height}.Intersect(d.Bounds())
	if clip.Empty() {
		return p
	}

	for row := clip.Y; row < clip.Y+clip.H; row++ {
		src := d.pixels[clip.X+row*d.width : clip.X+clip.W+row*d.width]
		dst := (clip.X - x) + (row-y)*width
		copy(p[dst:dst+clip.W], src)
	}

	return p
}

// SetPixelBlock writes a rectangular block of pixels in row-major order. Each
// pixel is written with SetPixel() so the edge and wrap rules of that function
// apply to every pixel. If src is shorter than width * height the remaining
// pixels are not written.
func (d *Data) SetPixelBlock(x int, y int, width int, height int, src []int) {
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			i := col + row*width
			if i >= len(src) {
				return
			}
			d.SetPixel(x+col, y+row, src[i])
		}
	}
}

// Bounds returns the rectangle covering the entire raster.
func (d *Data) Bounds() Rect {
	return Rect{W: d.width, H: d.height}
}

// Copy returns a new instance of Data with the same dimensions, wrap mode and
// pixels.
func (d *Data) Copy() *Data {
	return &Data{
		width:    d.width,
		height:   d.height,
		pixels:   d.Pixels(),
		WrapMode: d.WrapMode,
	}
}
