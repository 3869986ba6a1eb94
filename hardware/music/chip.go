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

import (
	"fmt"
	"math"
	"slices"

	"github.com/pixelvision8/pv8/hardware/chips"
	"github.com/pixelvision8/pv8/hardware/preferences"
	"github.com/pixelvision8/pv8/logger"
)

// DefaultTotalPatterns is the number of patterns after configuration.
const DefaultTotalPatterns = 16

// DefaultTotalSongs is the number of songs after configuration.
const DefaultTotalSongs = 1

// Player is the interface used to play notes. It is implemented by the sound
// chip. PlaySound() must not fail for any combination of arguments.
type Player interface {
	PlaySound(sfxID int, channel int, frequency float64)
}

// Chip is the music chip.
type Chip struct {
	chips.Base

	notes *NoteTable
	swing float64

	patterns []*TrackerData
	songs    []SongData

	// the list of pattern indexes being played and the position in the list
	playlist   []int
	loopCursor int

	// the pattern currently being played
	currentPattern int
	active         *TrackerData
	timing         Timing

	beatNumber int
	playing    bool

	// time in seconds since configuration and the time of the next beat
	elapsed float64
	next    float64

	// whether the playlist starts again after the last pattern
	LoopSong bool

	player Player
}

// NewChip is the preferred method of initialisation for the Chip type. The
// notes argument can be nil, in which case a new NoteTable is created.
func NewChip(notes *NoteTable) *Chip {
	if notes == nil {
		notes = NewNoteTable()
	}
	ch := &Chip{notes: notes}
	ch.Configure()
	return ch
}

// Activate implements the chips.Chip interface.
func (ch *Chip) Activate(engine chips.Engine) {
	ch.Base.Activate(engine)
	ch.Configure()
}

// Deactivate implements the chips.Chip interface.
func (ch *Chip) Deactivate() {
	ch.StopSong()
	ch.Base.Deactivate()
	ch.player = nil
}

// Configure implements the chips.Chip interface. All patterns and songs are
// reset and playback is stopped.
func (ch *Chip) Configure() {
	p := ch.Prefs()
	ch.swing = preferences.Float(&p.Swing)
	ch.LoopSong = preferences.Bool(&p.LoopSong)

	ch.patterns = ch.patterns[:0]
	ch.SetTotalPatterns(DefaultTotalPatterns)
	ch.songs = make([]SongData, DefaultTotalSongs)
	ch.songs[0] = SongData{Name: "Untitled", Patterns: []int{0}}

	ch.playlist = nil
	ch.loopCursor = 0
	ch.playing = false
	ch.elapsed = 0
	ch.next = 0
	ch.loadPattern(0)

	if pl, ok := ch.GetChip(chips.SoundKey, true).(Player); ok {
		ch.player = pl
	}

	logger.Logf(ch.Env(), "music", "swing %.3f (%s at %d BPM)", ch.swing, ch.timing, ch.active.SpeedInBPM)
}

// SetPlayer changes the Player used to play notes. The sound chip is found
// automatically when the music chip is activated in an engine.
func (ch *Chip) SetPlayer(pl Player) {
	ch.player = pl
}

// Capabilities implements the chips.Chip interface.
func (ch *Chip) Capabilities() chips.Capability {
	return chips.CapUpdate
}

// Reset implements the chips.Chip interface.
func (ch *Chip) Reset() {
	ch.RewindSong()
}

// Shutdown implements the chips.Chip interface.
func (ch *Chip) Shutdown() {
	ch.StopSong()
}

// NoteTable returns the note table used by the chip.
func (ch *Chip) NoteTable() *NoteTable {
	return ch.notes
}

// Swing returns the swing value in use.
func (ch *Chip) Swing() float64 {
	return ch.swing
}

// SetSwing changes the swing value. The value is clamped to the range 0.0 to
// 1.0 and takes effect immediately.
func (ch *Chip) SetSwing(swing float64) {
	ch.swing = max(0.0, min(swing, 1.0))
	if ch.active != nil {
		ch.timing = NewTiming(ch.active.SpeedInBPM, ch.swing)
	}
}

// Timing returns the beat durations of the current pattern.
func (ch *Chip) Timing() Timing {
	return ch.timing
}

// loadPattern makes the pattern the active pattern. the beat number is reset
// and the timing is recalculated for the tempo of the pattern.
func (ch *Chip) loadPattern(id int) {
	id = max(0, min(id, len(ch.patterns)-1))
	ch.currentPattern = id
	ch.active = ch.patterns[id]
	ch.beatNumber = 0
	ch.timing = NewTiming(ch.active.SpeedInBPM, ch.swing)
}

// Update implements the chips.Updater interface. Every beat boundary that has
// passed since the previous update is processed, in order. No beat is
// skipped even if deltaTime covers more than one beat. A deltaTime that is
// infinite or NaN is ignored.
func (ch *Chip) Update(deltaTime float64) {
	if math.IsInf(deltaTime, 0) || math.IsNaN(deltaTime) {
		return
	}

	ch.elapsed += deltaTime

	for ch.playing && ch.elapsed >= ch.next {
		ch.OnBeat()
		ch.next += ch.timing.Duration(ch.beatNumber)
	}
}

// OnBeat processes a single beat. If the active pattern has been exhausted
// the next pattern in the playlist is loaded. If there is no next pattern then
// playback either stops or starts again from the first pattern in the
// playlist, depending on the LoopSong field.
//
// The notes for the beat are then played and the beat number advanced.
func (ch *Chip) OnBeat() {
	if ch.active == nil {
		return
	}

	if ch.beatNumber >= ch.active.NotesPerTrack() {
		ch.loopCursor++
		if ch.loopCursor >= len(ch.playlist) {
			if !ch.LoopSong || len(ch.playlist) == 0 {
				ch.StopSong()
				logger.Log(ch.Env(), "music", "end of playlist")
				return
			}
			ch.loopCursor = 0
		}
		ch.loadPattern(ch.playlist[ch.loopCursor])
	}

	n := ch.active.NotesPerTrack()
	if n > 0 && ch.player != nil {
		for i, tr := range ch.active.Tracks {
			b := ch.beatNumber % n
			if b >= len(tr.Notes) {
				continue
			}
			note := tr.Notes[b]
			if note > 0 && note < MaxNote {
				ch.player.PlaySound(tr.SfxID, i, ch.notes.StartFrequency(note))
			}
		}
	}

	ch.beatNumber++
}

// LoadPatterns sets the playlist and loads the pattern at the start index.
// The play state is not changed. The start index is clamped to the playlist.
func (ch *Chip) LoadPatterns(ids []int, loop bool, start int) {
	ch.playlist = slices.Clone(ids)
	ch.LoopSong = loop

	if len(ch.playlist) == 0 {
		ch.loopCursor = 0
		ch.StopSong()
		return
	}

	ch.loopCursor = max(0, min(start, len(ch.playlist)-1))
	ch.loadPattern(ch.playlist[ch.loopCursor])
	ch.next = ch.elapsed
}

// Play starts playback from the current position. The first beat is played
// in the next Update phase. If the end of the playlist has been reached,
// playback starts from the beginning.
func (ch *Chip) Play() {
	if len(ch.playlist) == 0 {
		return
	}
	if ch.loopCursor >= len(ch.playlist) {
		ch.RewindSong()
	}
	ch.playing = true
	ch.next = ch.elapsed
	logger.Logf(ch.Env(), "music", "playing pattern %d (position %d of %d)", ch.currentPattern, ch.loopCursor, len(ch.playlist))
}

// TogglePlayback stops playback if the chip is playing and starts playback if
// it is not.
func (ch *Chip) TogglePlayback() {
	if ch.playing {
		ch.StopSong()
		return
	}
	ch.Play()
}

// PlayPatterns is LoadPatterns() followed by TogglePlayback(). Calling it
// while the chip is already playing will stop playback.
func (ch *Chip) PlayPatterns(ids []int, loop bool, start int) {
	ch.LoadPatterns(ids, loop, start)
	ch.TogglePlayback()
}

// PlaySong plays the patterns of the song from the start index. Unlike
// PlayPatterns() the chip is always playing afterwards. An invalid song id is
// ignored.
func (ch *Chip) PlaySong(id int, loop bool, start int) {
	if id < 0 || id >= len(ch.songs) {
		return
	}
	ch.LoadPatterns(ch.songs[id].Patterns, loop, start)
	ch.Play()
}

// RewindSong stops playback and returns to the first beat of the first
// pattern in the playlist. Pattern data is not changed.
func (ch *Chip) RewindSong() {
	ch.playing = false
	ch.loopCursor = 0
	if len(ch.playlist) > 0 {
		ch.loadPattern(ch.playlist[0])
	} else {
		ch.beatNumber = 0
	}
}

// StopSong stops playback. The position in the playlist is not changed.
func (ch *Chip) StopSong() {
	ch.playing = false
}

// IsPlaying returns true if the chip is playing.
func (ch *Chip) IsPlaying() bool {
	return ch.playing
}

// BeatNumber returns the number of beats played in the current pattern.
func (ch *Chip) BeatNumber() int {
	return ch.beatNumber
}

// CurrentPattern returns the index of the pattern being played.
func (ch *Chip) CurrentPattern() int {
	return ch.currentPattern
}

// LoopCursor returns the position in the playlist.
func (ch *Chip) LoopCursor() int {
	return ch.loopCursor
}

// Playlist returns a copy of the current playlist.
func (ch *Chip) Playlist() []int {
	return slices.Clone(ch.playlist)
}

// Elapsed returns the time in seconds since the chip was configured.
func (ch *Chip) Elapsed() float64 {
	return ch.elapsed
}

// TotalPatterns returns the number of patterns.
func (ch *Chip) TotalPatterns() int {
	return len(ch.patterns)
}

// Pattern returns the pattern with the id. Returns nil if there is no such
// pattern. The pattern can be edited but the chip should not be playing.
func (ch *Chip) Pattern(id int) *TrackerData {
	if id < 0 || id >= len(ch.patterns) {
		return nil
	}
	return ch.patterns[id]
}

// SetTotalPatterns changes the number of patterns. The value is clamped to a
// minimum of one. New patterns have the default size.
func (ch *Chip) SetTotalPatterns(total int) {
	total = max(1, total)
	for len(ch.patterns) < total {
		ch.patterns = append(ch.patterns, NewTrackerData(
			fmt.Sprintf("Pattern %d", len(ch.patterns)),
			DefaultTotalTracks, DefaultNotesPerTrack))
	}
	ch.patterns = ch.patterns[:total]

	if ch.currentPattern >= total {
		ch.loadPattern(total - 1)
	}
}

// SetNotesPerTrack changes the number of notes in every track of every
// pattern.
func (ch *Chip) SetNotesPerTrack(notes int) {
	for _, p := range ch.patterns {
		p.SetNotesPerTrack(notes)
	}
}

// UpdateNote changes a single note. Invalid pattern, track or beat values, and
// notes outside of the range 0 to MaxNote-1, are ignored.
func (ch *Chip) UpdateNote(pattern int, track int, beat int, note int) {
	p := ch.Pattern(pattern)
	if p == nil || track < 0 || track >= len(p.Tracks) {
		return
	}
	notes := p.Tracks[track].Notes
	if beat < 0 || beat >= len(notes) || note < 0 || note >= MaxNote {
		return
	}
	notes[beat] = note
}

// TotalSongs returns the number of songs.
func (ch *Chip) TotalSongs() int {
	return len(ch.songs)
}

// Song returns the song with the id. Returns an empty song if there is no such
// song.
func (ch *Chip) Song(id int) SongData {
	if id < 0 || id >= len(ch.songs) {
		return SongData{}
	}
	s := ch.songs[id]
	s.Patterns = slices.Clone(s.Patterns)
	return s
}

// UpdateSong replaces the song with the id. An invalid id is ignored.
func (ch *Chip) UpdateSong(id int, song SongData) {
	if id < 0 || id >= len(ch.songs) {
		return
	}
	song.Patterns = slices.Clone(song.Patterns)
	ch.songs[id] = song
}

// SetTotalSongs changes the number of songs. The value is clamped to a
// minimum of one.
func (ch *Chip) SetTotalSongs(total int) {
	total = max(1, total)
	for len(ch.songs) < total {
		ch.songs = append(ch.songs, SongData{Name: fmt.Sprintf("Song %d", len(ch.songs))})
	}
	ch.songs = ch.songs[:total]
}
