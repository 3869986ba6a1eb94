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

package tracker_test

import (
	"strings"
	"testing"

	"github.com/pixelvision8/pv8/hardware/music"
	"github.com/pixelvision8/pv8/hardware/sound"
	"github.com/pixelvision8/pv8/test"
	"github.com/pixelvision8/pv8/tracker"
)

func TestMusicalNote(t *testing.T) {
	test.ExpectEquality(t, tracker.LookupMusicalNote(440.0), "A4")
	test.ExpectEquality(t, tracker.LookupMusicalNote(261.63), "C4")
	test.ExpectEquality(t, tracker.LookupMusicalNote(277.18), "C#4")
	test.ExpectEquality(t, tracker.LookupMusicalNote(27.5), "A0")
	test.ExpectEquality(t, tracker.LookupMusicalNote(0), tracker.NoMusicalNote)
	test.ExpectEquality(t, tracker.LookupMusicalNote(-10), tracker.NoMusicalNote)
}

func TestTracker(t *testing.T) {
	nt := music.NewNoteTable()
	tr := tracker.NewTracker()

	ch := sound.NewChip()
	ch.UpdateSound(0, sound.SoundData{Param: "synth"})
	ch.SetListener(tr)

	// the start frequency for a note is calculated from the previous note
	ch.Update(0.5)
	ch.PlaySound(0, 1, nt.StartFrequency(70))

	test.DemandEquality(t, tr.Len(), 1)
	e := tr.Copy()[0]
	test.ExpectEquality(t, e.Time, 0.5)
	test.ExpectEquality(t, e.Channel, 1)
	test.ExpectApproximate(t, e.Hz, 440.0, 1e-6)
	test.ExpectEquality(t, e.MusicalNote, "A4")

	var s strings.Builder
	tr.Write(&s)
	test.ExpectSuccess(t, strings.Contains(s.String(), "A4"))

	tr.Clear()
	test.ExpectEquality(t, tr.Len(), 0)
}

func TestTrackerLimit(t *testing.T) {
	tr := tracker.NewTracker()
	for i := range tracker.MaxEntries + 10 {
		tr.SoundTriggered(sound.Trigger{Time: float64(i)})
	}
	test.ExpectEquality(t, tr.Len(), tracker.MaxEntries)
	test.ExpectEquality(t, tr.Copy()[0].Time, 10.0)

	// the total is not limited by the number of entries
	test.ExpectEquality(t, tr.Total(), tracker.MaxEntries+10)

	tr.Clear()
	test.ExpectEquality(t, tr.Len(), 0)
	test.ExpectEquality(t, tr.Total(), 0)
}

func TestListeners(t *testing.T) {
	a := tracker.NewTracker()
	b := tracker.NewTracker()

	ch := sound.NewChip()
	ch.UpdateSound(0, sound.SoundData{Param: "synth"})
	ch.SetListener(sound.Listeners{a, nil, b})
	ch.PlaySound(0, 0, 0.1)

	test.ExpectEquality(t, a.Len(), 1)
	test.ExpectEquality(t, b.Len(), 1)
}
