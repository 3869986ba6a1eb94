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
	"io"

	"github.com/pixelvision8/pv8/hardware/music"
	"github.com/pixelvision8/pv8/hardware/sound"
)

// MaxEntries is the number of entries kept by the Tracker. Older entries are
// discarded.
const MaxEntries = 1024

// Entry is a single triggered sound.
type Entry struct {
	Time    float64
	Channel int
	SfxID   int

	// frequency in Hz, converted from the synth start frequency
	Hz          float64
	MusicalNote MusicalNote
}

func (e Entry) String() string {
	return fmt.Sprintf("%8.3fs  ch%-2d  sfx%-3d  %-4s  %8.2fHz", e.Time, e.Channel, e.SfxID, e.MusicalNote, e.Hz)
}

// Tracker implements the sound.Listener interface and keeps a history of the
// triggered sounds.
type Tracker struct {
	entries []Entry

	// the number of sounds triggered since the last Clear(). unlike the
	// number of entries this is not limited by MaxEntries
	total int
}

// NewTracker is the preferred method of initialisation for the Tracker type.
func NewTracker() *Tracker {
	return &Tracker{
		entries: make([]Entry, 0, MaxEntries),
	}
}

// SoundTriggered implements the sound.Listener interface.
func (tr *Tracker) SoundTriggered(t sound.Trigger) {
	hz := music.HzFromStartFrequency(t.Frequency)
	tr.total++
	tr.entries = append(tr.entries, Entry{
		Time:        t.Time,
		Channel:     t.Channel,
		SfxID:       t.SfxID,
		Hz:          hz,
		MusicalNote: LookupMusicalNote(hz),
	})
	if len(tr.entries) > MaxEntries {
		tr.entries = tr.entries[1:]
	}
}

// Copy makes a copy of the Tracker entries.
func (tr *Tracker) Copy() []Entry {
	return append([]Entry(nil), tr.entries...)
}

// Total returns the number of sounds triggered since the Tracker was created
// or cleared, including those whose entries have been discarded.
func (tr *Tracker) Total() int {
	return tr.total
}

// Len returns the number of entries. The value is never more than MaxEntries.
func (tr *Tracker) Len() int {
	return len(tr.entries)
}

// Clear removes all entries.
func (tr *Tracker) Clear() {
	tr.entries = tr.entries[:0]
	tr.total = 0
}

// Write all entries to the io.Writer, one per line.
func (tr *Tracker) Write(output io.Writer) {
	for _, e := range tr.entries {
		fmt.Fprintln(output, e.String())
	}
}
