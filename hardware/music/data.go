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

// tempo limits in beats per minute
const (
	MinBPM     = 60
	MaxBPM     = 480
	DefaultBPM = 120
)

// default size of a new pattern
const (
	DefaultTotalTracks   = 4
	DefaultNotesPerTrack = 32
	MaxTracks            = 16
	MaxNotesPerTrack     = 256
)

// TrackData is a single track in a pattern.
type TrackData struct {
	SfxID int   `yaml:"sfxID"`
	Notes []int `yaml:"notes,flow"`
}

// TrackerData is a single pattern.
type TrackerData struct {
	Name       string      `yaml:"name"`
	SpeedInBPM int         `yaml:"speedInBPM"`
	Tracks     []TrackData `yaml:"tracks"`
}

// NewTrackerData is the preferred method of initialisation for the
// TrackerData type. The sound effect for each track is the same as the track
// number.
func NewTrackerData(name string, totalTracks int, notesPerTrack int) *TrackerData {
	t := &TrackerData{
		Name:       name,
		SpeedInBPM: DefaultBPM,
	}
	t.SetTotalTracks(totalTracks)
	t.SetNotesPerTrack(notesPerTrack)
	return t
}

// TotalTracks returns the number of tracks in the pattern.
func (t *TrackerData) TotalTracks() int {
	return len(t.Tracks)
}

// SetTotalTracks changes the number of tracks in the pattern. The value is
// clamped to the range 1 to MaxTracks. New tracks have the same number of
// notes as existing tracks and all notes are silent.
func (t *TrackerData) SetTotalTracks(total int) {
	total = max(1, min(total, MaxTracks))
	n := t.NotesPerTrack()
	for len(t.Tracks) < total {
		t.Tracks = append(t.Tracks, TrackData{
			SfxID: len(t.Tracks),
			Notes: make([]int, n),
		})
	}
	t.Tracks = t.Tracks[:total]
}

// NotesPerTrack returns the number of notes in each track. A pattern with no
// tracks has no notes.
func (t *TrackerData) NotesPerTrack() int {
	if len(t.Tracks) == 0 {
		return 0
	}
	return len(t.Tracks[0].Notes)
}

// SetNotesPerTrack changes the number of notes in every track. The value is
// clamped to the range 1 to MaxNotesPerTrack. Existing notes are kept if they
// fit and new notes are silent.
func (t *TrackerData) SetNotesPerTrack(notes int) {
	notes = max(1, min(notes, MaxNotesPerTrack))
	for i := range t.Tracks {
		tr := &t.Tracks[i]
		if len(tr.Notes) >= notes {
			tr.Notes = tr.Notes[:notes]
			continue
		}
		tr.Notes = append(tr.Notes, make([]int, notes-len(tr.Notes))...)
	}
}

// SetSpeed changes the tempo of the pattern. The value is clamped to the range
// MinBPM to MaxBPM.
func (t *TrackerData) SetSpeed(bpm int) {
	t.SpeedInBPM = max(MinBPM, min(bpm, MaxBPM))
}

// Note returns the note value at the track and beat. Returns zero if the track
// or beat is out of range.
func (t *TrackerData) Note(track int, beat int) int {
	if track < 0 || track >= len(t.Tracks) {
		return 0
	}
	notes := t.Tracks[track].Notes
	if beat < 0 || beat >= len(notes) {
		return 0
	}
	return notes[beat]
}

// Clear silences every note in the pattern.
func (t *TrackerData) Clear() {
	for i := range t.Tracks {
		clear(t.Tracks[i].Notes)
	}
}

// normalise makes sure the pattern is usable after it has been loaded from a
// file. a missing tempo is given the default value and every track is given
// the same number of notes as the longest track.
func (t *TrackerData) normalise() {
	if t.SpeedInBPM == 0 {
		t.SpeedInBPM = DefaultBPM
	}
	t.SetSpeed(t.SpeedInBPM)

	if len(t.Tracks) == 0 {
		t.SetTotalTracks(1)
	}
	if len(t.Tracks) > MaxTracks {
		t.Tracks = t.Tracks[:MaxTracks]
	}

	var longest int
	for _, tr := range t.Tracks {
		longest = max(longest, len(tr.Notes))
	}
	t.SetNotesPerTrack(longest)
}

// Copy returns a deep copy of the pattern.
func (t *TrackerData) Copy() *TrackerData {
	c := &TrackerData{
		Name:       t.Name,
		SpeedInBPM: t.SpeedInBPM,
		Tracks:     make([]TrackData, len(t.Tracks)),
	}
	for i, tr := range t.Tracks {
		c.Tracks[i] = TrackData{
			SfxID: tr.SfxID,
			Notes: append([]int(nil), tr.Notes...),
		}
	}
	return c
}

// SongData is a playlist of pattern indexes.
type SongData struct {
	Name     string `yaml:"name"`
	Patterns []int  `yaml:"patterns,flow"`
}
