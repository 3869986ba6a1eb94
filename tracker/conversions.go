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

package tracker

import (
	"fmt"
	"math"
)

// MusicalNote is the name and octave of a musical note. For example, "C#4".
type MusicalNote string

// NoMusicalNote is used when a frequency can't be converted to a note.
const NoMusicalNote = MusicalNote("-")

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// LookupMusicalNote converts a frequency in Hz to the nearest musical note in
// twelve tone equal temperament, with A4 at 440Hz.
func LookupMusicalNote(hz float64) MusicalNote {
	if hz <= 0 || math.IsNaN(hz) || math.IsInf(hz, 0) {
		return NoMusicalNote
	}

	// midi numbering. 69 is A4 and 60 is C4
	n := int(math.Round(69 + 12*math.Log2(hz/440.0)))
	if n < 0 {
		return NoMusicalNote
	}

	return MusicalNote(fmt.Sprintf("%s%d", noteNames[n%12], n/12-1))
}
