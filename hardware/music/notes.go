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

import "math"

// MaxNote is the number of entries in the NoteTable. Valid notes are in the
// range 1 to MaxNote-1. Note zero is silence.
const MaxNote = 127

// NoteTable maps note values to frequencies. A NoteTable is never changed
// after it has been created and can be shared.
type NoteTable struct {
	hz    [MaxNote]float64
	start [MaxNote]float64
}

// NewNoteTable is the preferred method of initialisation for the NoteTable
// type.
//
// The frequency of note n is 440/32 * 2^((n-9)/12) Hz. Note 69 is therefore
// A4 at 440Hz.
//
// The table of synth start frequencies is built from the Hz table but each
// value is stored one entry ahead of its source. The start frequency for
// note n is calculated from the Hz value of note n-1. The start frequency of
// note zero is zero.
func NewNoteTable() *NoteTable {
	nt := &NoteTable{}

	for n := range MaxNote {
		nt.hz[n] = 440.0 / 32.0 * math.Pow(2, float64(n-9)/12.0)
	}

	for n := range MaxNote - 1 {
		nt.start[n+1] = math.Sqrt(nt.hz[n]/44100.0*100.0/8.0-0.001) - 0.0018
	}

	return nt
}

// Hz returns the frequency of the note in Hz. Returns zero for notes outside
// of the table.
func (nt *NoteTable) Hz(note int) float64 {
	if note < 0 || note >= MaxNote {
		return 0
	}
	return nt.hz[note]
}

// StartFrequency returns the synth start frequency parameter for the note.
// Returns zero for notes outside of the table.
func (nt *NoteTable) StartFrequency(note int) float64 {
	if note < 0 || note >= MaxNote {
		return 0
	}
	return nt.start[note]
}

// HzFromStartFrequency is the inverse of the start frequency calculation. It
// returns the frequency in Hz that produces the start frequency parameter.
func HzFromStartFrequency(f float64) float64 {
	if f <= 0 {
		return 0
	}
	v := f + 0.0018
	return (v*v + 0.001) * 8.0 / 100.0 * 44100.0
}
