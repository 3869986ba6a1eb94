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

package sound

// SoundData is the definition of a single sound effect.
type SoundData struct {
	Name string

	// synth parameters. the format of the string is not interpreted by the
	// sound chip
	Param string

	// PCM sample data, mono and normalised to the range -1.0 to 1.0. if there
	// are no samples the sound is a synth sound
	Samples    []float32
	SampleRate int
}

// IsSample returns true if the sound is a PCM sample.
func (s SoundData) IsSample() bool {
	return len(s.Samples) > 0 && s.SampleRate > 0
}

// IsEmpty returns true if the sound has no definition of any kind.
func (s SoundData) IsEmpty() bool {
	return s.Param == "" && !s.IsSample()
}

// Duration returns the length of the sound in seconds. Synth sounds have a
// duration of DefaultNoteLength.
func (s SoundData) Duration() float64 {
	if s.IsSample() {
		return float64(len(s.Samples)) / float64(s.SampleRate)
	}
	return DefaultNoteLength
}
