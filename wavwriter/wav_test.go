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

package wavwriter_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/pixelvision8/pv8/hardware/sound"
	"github.com/pixelvision8/pv8/test"
	"github.com/pixelvision8/pv8/wavwriter"
)

func TestEndMixing(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "out.wav")

	aw, err := wavwriter.New(filename)
	test.DemandSuccess(t, err)

	ch := sound.NewChip()
	ch.UpdateSound(0, sound.SoundData{Param: "synth"})
	ch.UpdateSound(1, sound.SoundData{
		Samples:    []float32{1.0, 1.0, -1.0, -1.0},
		SampleRate: 4,
	})
	ch.SetListener(aw)

	ch.PlaySound(0, 0, 0.1)
	ch.Update(0.5)
	ch.PlaySound(1, 1, 0)

	test.DemandSuccess(t, aw.EndMixing())

	f, err := os.Open(filename)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, int(dec.SampleRate), wavwriter.SampleRate)
	test.ExpectEquality(t, int(dec.NumChans), 1)
	test.ExpectEquality(t, int(dec.BitDepth), wavwriter.BitDepth)

	// the sample starts at 0.5s and lasts for one second
	test.ExpectEquality(t, len(buf.Data), int(1.5*wavwriter.SampleRate))

	// the synth note lasts for a quarter of a second and is silent after that
	test.ExpectInequality(t, buf.Data[0], 0)
	test.ExpectEquality(t, buf.Data[int(0.4*wavwriter.SampleRate)], 0)

	// first half of the sample is positive and the second half negative
	test.ExpectSuccess(t, buf.Data[int(0.6*wavwriter.SampleRate)] > 0)
	test.ExpectSuccess(t, buf.Data[int(1.4*wavwriter.SampleRate)] < 0)
}

func TestChannelCutOff(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "cut.wav")

	aw, err := wavwriter.New(filename)
	test.DemandSuccess(t, err)

	// the first sound is cut off by the second sound on the same channel
	long := sound.SoundData{
		Samples:    make([]float32, 100),
		SampleRate: 50,
	}
	for i := range long.Samples {
		long.Samples[i] = 0.5
	}
	aw.SoundTriggered(sound.Trigger{Time: 0, Channel: 0, Sound: long})
	aw.SoundTriggered(sound.Trigger{Time: 0.5, Channel: 0, Sound: sound.SoundData{
		Samples:    []float32{0.0},
		SampleRate: 4,
	}})

	test.DemandSuccess(t, aw.EndMixing())

	f, err := os.Open(filename)
	test.DemandSuccess(t, err)
	defer f.Close()

	buf, err := wav.NewDecoder(f).FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(buf.Data), int(0.75*wavwriter.SampleRate))
	test.ExpectInequality(t, buf.Data[int(0.25*wavwriter.SampleRate)], 0)
	test.ExpectEquality(t, buf.Data[int(0.6*wavwriter.SampleRate)], 0)
}

func TestNoAudio(t *testing.T) {
	_, err := wavwriter.New("")
	test.ExpectFailure(t, err)

	aw, err := wavwriter.New(filepath.Join(t.TempDir(), "empty.wav"))
	test.DemandSuccess(t, err)
	err = aw.EndMixing()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, wavwriter.ErrNoAudio))
}
