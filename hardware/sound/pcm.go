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

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/pixelvision8/pv8/logger"
)

// ErrUnsupportedSample is returned by DecodeSample() when the file extension
// is not recognised.
var ErrUnsupportedSample = errors.New("unsupported sample format")

// DecodeSample reads a WAV or MP3 file and returns a SoundData with the sample
// data. The format is decided by the extension of the filename. Only the first
// channel of a multi-channel file is used.
func DecodeSample(filename string, r io.Reader) (SoundData, error) {
	s := SoundData{
		Name: strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)),
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		// the wav decoder requires a ReadSeeker
		b, err := io.ReadAll(r)
		if err != nil {
			return s, fmt.Errorf("wav: %w", err)
		}

		dec := wav.NewDecoder(bytes.NewReader(b))
		if dec == nil || !dec.IsValidFile() {
			return s, fmt.Errorf("wav: not a valid wav file")
		}

		buf, err := dec.FullPCMBuffer()
		if err != nil {
			return s, fmt.Errorf("wav: %w", err)
		}

		chans := max(1, int(dec.NumChans))
		scale := float32(int(1) << (max(1, int(dec.BitDepth)) - 1))

		// copy first channel only of data stream
		s.Samples = make([]float32, 0, len(buf.Data)/chans)
		for i := 0; i < len(buf.Data); i += chans {
			s.Samples = append(s.Samples, float32(buf.Data[i])/scale)
		}
		s.SampleRate = int(dec.SampleRate)

	case ".mp3":
		dec, err := mp3.NewDecoder(r)
		if err != nil {
			return s, fmt.Errorf("mp3: %w", err)
		}

		// "The stream is always formatted as 16bit (little endian) 2
		// channels even if the source is single channel MP3"
		b, err := io.ReadAll(dec)
		if err != nil {
			return s, fmt.Errorf("mp3: %w", err)
		}

		// four bytes per sample. we only want the left channel
		s.Samples = make([]float32, 0, len(b)/4)
		for i := 0; i+3 < len(b); i += 4 {
			v := int16(uint16(b[i]) | uint16(b[i+1])<<8)
			s.Samples = append(s.Samples, float32(v)/32768.0)
		}
		s.SampleRate = dec.SampleRate()

	default:
		return s, fmt.Errorf("%w: %s", ErrUnsupportedSample, filepath.Ext(filename))
	}

	return s, nil
}

// LoadSample decodes a WAV or MP3 file into the sound slot. See
// DecodeSample() for details. An id outside of the range of slots is ignored
// but the file is still decoded and any error returned.
func (ch *Chip) LoadSample(id int, filename string, r io.Reader) error {
	s, err := DecodeSample(filename, r)
	if err != nil {
		return fmt.Errorf("sound: %w", err)
	}

	ch.UpdateSound(id, s)

	logger.Logf(ch.Env(), "sound", "loaded %s into slot %d (%d samples at %dHz, %.2fs)",
		s.Name, id, len(s.Samples), s.SampleRate, s.Duration())

	return nil
}
