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

package music

import "fmt"

// DefaultSwing is the ratio of the short beat to the base tick.
const DefaultSwing = 0.7

// Timing is the duration of the beats for a tempo. The sum of Short and Long
// is always twice the Base value.
type Timing struct {
	Base  float64
	Short float64
	Long  float64
}

// NewTiming is the preferred method of initialisation for the Timing type.
// The tempo is clamped to the range MinBPM to MaxBPM and the swing is clamped
// to the range 0.0 to 1.0.
func NewTiming(bpm int, swing float64) Timing {
	bpm = max(MinBPM, min(bpm, MaxBPM))
	swing = max(0.0, min(swing, 1.0))

	base := 30.0 / float64(bpm)
	short := base * swing

	return Timing{
		Base:  base,
		Short: short,
		Long:  base*2 - short,
	}
}

// Duration returns the time until the next beat. The argument is the number
// of the beat that comes next. Odd numbered beats are short and even numbered
// beats are long.
func (t Timing) Duration(beat int) float64 {
	if beat%2 == 1 {
		return t.Short
	}
	return t.Long
}

func (t Timing) String() string {
	return fmt.Sprintf("short %.4fs long %.4fs", t.Short, t.Long)
}
