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

package music_test

import (
	"math"
	"testing"

	"github.com/pixelvision8/pv8/hardware/music"
	"github.com/pixelvision8/pv8/test"
)

func TestSwingInvariant(t *testing.T) {
	for bpm := music.MinBPM; bpm <= music.MaxBPM; bpm += 7 {
		for _, swing := range []float64{0.01, 0.25, 0.5, 0.7, 0.9, 0.99} {
			tm := music.NewTiming(bpm, swing)
			sum := tm.Short + tm.Long
			test.ExpectSuccess(t, math.Abs(sum-tm.Base*2) < 1e-12, bpm, swing)
			test.ExpectSuccess(t, tm.Short <= tm.Long, bpm, swing)
		}
	}
}

func TestTiming(t *testing.T) {
	tm := music.NewTiming(120, 0.7)
	test.ExpectApproximate(t, tm.Base, 0.25, 1e-9)
	test.ExpectApproximate(t, tm.Short, 0.175, 1e-9)
	test.ExpectApproximate(t, tm.Long, 0.325, 1e-9)

	// odd beats are short
	test.ExpectEquality(t, tm.Duration(1), tm.Short)
	test.ExpectEquality(t, tm.Duration(2), tm.Long)
	test.ExpectEquality(t, tm.Duration(0), tm.Long)

	// clamped tempo and swing
	test.ExpectEquality(t, music.NewTiming(1000, 0.7), music.NewTiming(music.MaxBPM, 0.7))
	test.ExpectEquality(t, music.NewTiming(0, 0.7), music.NewTiming(music.MinBPM, 0.7))
	test.ExpectEquality(t, music.NewTiming(120, 2.0), music.NewTiming(120, 1.0))

	// no swing
	tm = music.NewTiming(120, 1.0)
	test.ExpectEquality(t, tm.Short, tm.Long)
}
