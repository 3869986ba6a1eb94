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

package wavwriter

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/pixelvision8/pv8/hardware/music"
	"github.com/pixelvision8/pv8/hardware/sound"
	"github.com/pixelvision8/pv8/logger"
)

// SampleRate of the rendered audio.
const SampleRate = 44100

// BitDepth of the rendered audio.
const BitDepth = 16

// the volume of each voice. the mix is clipped if too many voices are sounding
// at once
const voiceVolume = 0.25

// the frequency used for synth sounds that were triggered without one
const defaultHz = 440.0

// ErrNoAudio is returned by EndMixing() if no sounds were triggered.
var ErrNoAudio = errors.New("no audio")

// WavWriter implements the sound.Listener interface.
type WavWriter struct {
	filename string
	triggers []sound.Trigger
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	if filename == "" {
		return nil, fmt.Errorf("wavwriter: no filename")
	}

	aw := &WavWriter{
		filename: filename,
		triggers: make([]sound.Trigger, 0),
	}

	return aw, nil
}

// SoundTriggered implements the sound.Listener interface.
func (aw *WavWriter) SoundTriggered(t sound.Trigger) {
	aw.triggers = append(aw.triggers, t)
}

// Reset removes all buffered triggers.
func (aw *WavWriter) Reset() {
	aw.triggers = aw.triggers[:0]
}

// EndMixing renders the buffered triggers and writes the result to disk.
func (aw *WavWriter) EndMixing() (rerr error) {
	if len(aw.triggers) == 0 {
		return fmt.Errorf("wavwriter: %w", ErrNoAudio)
	}

	data := aw.render()

	f, err := os.Create(aw.filename)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("wavwriter: %w", err)
		}
	}()

	// 1 is the PCM audio format
	enc := wav.NewEncoder(f, SampleRate, BitDepth, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  SampleRate,
		},
		Data:           data,
		SourceBitDepth: BitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	err = enc.Close()
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	return nil
}

// the time at which the voice started by trigger idx stops sounding. a voice
// is cut short by the next trigger on the same channel
func (aw *WavWriter) voiceEnd(idx int) float64 {
	t := aw.triggers[idx]
	end := t.Time + t.Sound.Duration()
	for _, n := range aw.triggers[idx+1:] {
		if n.Channel == t.Channel && n.Time >= t.Time {
			end = min(end, n.Time)
			break
		}
	}
	return end
}

func (aw *WavWriter) render() []int {
	var length float64
	for i := range aw.triggers {
		length = max(length, aw.voiceEnd(i))
	}

	mix := make([]float64, int(math.Ceil(length*SampleRate)))

	for i, t := range aw.triggers {
		start := int(t.Time * SampleRate)
		end := min(int(aw.voiceEnd(i)*SampleRate), len(mix))
		if start >= end {
			continue
		}

		if t.Sound.IsSample() {
			step := float64(t.Sound.SampleRate) / SampleRate
			for s := start; s < end; s++ {
				idx := int(float64(s-start) * step)
				if idx >= len(t.Sound.Samples) {
					break
				}
				mix[s] += float64(t.Sound.Samples[idx]) * voiceVolume
			}
			continue
		}

		hz := music.HzFromStartFrequency(t.Frequency)
		if hz <= 0 {
			hz = defaultHz
		}
		period := SampleRate / hz
		n := end - start
		for s := start; s < end; s++ {
			v := voiceVolume * (1.0 - float64(s-start)/float64(n))
			if math.Mod(float64(s-start), period) >= period/2 {
				v = -v
			}
			mix[s] += v
		}
	}

	const peak = 1<<(BitDepth-1) - 1

	data := make([]int, len(mix))
	for i, v := range mix {
		v = max(-1.0, min(1.0, v))
		data[i] = int(v * peak)
	}

	return data
}
