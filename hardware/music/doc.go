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

// Package music implements the music chip, a pattern based sequencer.
//
// A pattern (the TrackerData type) holds a number of tracks. Each track plays
// one sound effect and has a list of notes, one note per beat. All tracks in
// a pattern have the same number of notes. A note value of zero is silence.
//
// A song (the SongData type) is a list of pattern indexes. Playing a song, or
// any list of pattern indexes, plays each pattern in turn. When the list is
// exhausted playback either stops or starts again from the beginning.
//
// Beats are swung. Odd numbered beats are shorter than even numbered beats but
// each pair of beats always lasts the same amount of time for a given tempo.
// See the Timing type.
//
// Notes are played by calling the PlaySound() function of a Player, which is
// normally the sound chip. The track number is used as the channel number and
// the frequency is taken from the NoteTable.
package music
