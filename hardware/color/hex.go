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
	"fmt"
	imgcolor "image/color"
	"strconv"
	"strings"
)

// ParseHex converts a colour string of the form #RRGGBB to an RGBA value. The
// leading hash is optional.
func ParseHex(s string) (imgcolor.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return imgcolor.RGBA{}, fmt.Errorf("color: not a hex colour: %q", s)
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return imgcolor.RGBA{}, fmt.Errorf("color: not a hex colour: %q", s)
	}

	return imgcolor.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}

// Hex returns the #RRGGBB representation of the colour. The alpha channel is
// ignored.
func Hex(c imgcolor.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02X%02X%02X", r>>8, g>>8, b>>8)
}
