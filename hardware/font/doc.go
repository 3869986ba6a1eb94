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

// Package font implements the font chip. A font is a pixels.Data atlas of
// glyphs in the same cell layout as the sprite atlas. The first glyph in the
// atlas is the space character and glyphs follow in ASCII order up to and
// including character 127.
//
// Fonts are referred to by name. Text is converted to glyph pixels with the
// ConvertTextToGlyphs() function. Unknown fonts and characters outside of the
// range of the font produce blank glyphs.
package font
