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
	"bytes"
	"fmt"
	"io"

	"github.com/pixelvision8/pv8/logger"
	"gopkg.in/yaml.v3"
)

// SongFile is the on-disk representation of the patterns and songs of the
// music chip.
type SongFile struct {
	Patterns []*TrackerData `yaml:"patterns"`
	Songs    []SongData     `yaml:"songs"`
}

// ReadSongFile decodes a YAML song file. Patterns are normalised so that they
// can be played: tempos are clamped and all tracks in a pattern are given the
// same number of notes.
func ReadSongFile(r io.Reader) (*SongFile, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("music: %w", err)
	}

	var sf SongFile
	if err := yaml.Unmarshal(b, &sf); err != nil {
		return nil, fmt.Errorf("music: %w", err)
	}

	if len(sf.Patterns) == 0 {
		return nil, fmt.Errorf("music: song file has no patterns")
	}

	for i, p := range sf.Patterns {
		if p == nil {
			sf.Patterns[i] = NewTrackerData(fmt.Sprintf("Pattern %d", i), DefaultTotalTracks, DefaultNotesPerTrack)
			continue
		}
		p.normalise()
	}

	return &sf, nil
}

// Write encodes the song file as YAML.
func (sf *SongFile) Write(w io.Writer) error {
	var b bytes.Buffer
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(sf); err != nil {
		return fmt.Errorf("music: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("music: %w", err)
	}
	if _, err := w.Write(b.Bytes()); err != nil {
		return fmt.Errorf("music: %w", err)
	}
	return nil
}

// LoadSongs replaces all patterns and songs with those in the YAML song file.
// Playback is stopped and the playlist is emptied.
func (ch *Chip) LoadSongs(r io.Reader) error {
	sf, err := ReadSongFile(r)
	if err != nil {
		return err
	}

	ch.StopSong()
	ch.playlist = nil
	ch.loopCursor = 0
	ch.patterns = sf.Patterns
	ch.loadPattern(0)

	ch.songs = sf.Songs
	if len(ch.songs) == 0 {
		ch.songs = []SongData{{Name: "Untitled", Patterns: []int{0}}}
	}

	logger.Logf(ch.Env(), "music", "loaded %d patterns and %d songs", len(ch.patterns), len(ch.songs))

	return nil
}

// SaveSongs writes all patterns and songs as a YAML song file.
func (ch *Chip) SaveSongs(w io.Writer) error {
	sf := SongFile{
		Patterns: ch.patterns,
		Songs:    ch.songs,
	}
	return sf.Write(w)
}
