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

package main

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/pixelvision8/pv8/hardware/color"
	"github.com/pixelvision8/pv8/test"
)

const songFile = `patterns:
  - name: intro
    speedInBPM: 240
    tracks:
      - sfxID: 0
        notes: [60, 0, 62, 0]
`

func TestHelpAndVersion(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"--help"}, tw), 0)
	test.ExpectSuccess(t, tw.Contains("RENDER"))

	tw.Clear()
	test.ExpectEquality(t, launch([]string{"version"}, tw), 0)
	test.ExpectSuccess(t, tw.HasPrefix("PV8"))

	tw.Clear()
	test.ExpectEquality(t, launch([]string{"--unknown"}, tw), 10)
}

func TestPrefsFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	tw := &test.CompareWriter{}
	test.DemandEquality(t, launch([]string{"--prefsfile", fn, "version"}, tw), 0, tw.String())

	// the preferences file is created on first use
	_, err := os.Stat(fn)
	test.ExpectSuccess(t, err)
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	songs := filepath.Join(dir, "song.yaml")
	test.DemandSuccess(t, os.WriteFile(songs, []byte(songFile), 0644))
	out := filepath.Join(dir, "song.wav")

	tw := &test.CompareWriter{}
	test.DemandEquality(t, launch([]string{"render", "-o", out, "--track", "--digest", songs}, tw), 0, tw.String())
	test.ExpectSuccess(t, tw.HasPrefix("2 notes written"))

	// the synth start frequency of a note is taken from the note below it
	test.ExpectSuccess(t, tw.Contains("B3"))
	test.ExpectSuccess(t, tw.Contains("digest: "))

	f, err := os.Open(out)
	test.DemandSuccess(t, err)
	defer f.Close()
	test.ExpectSuccess(t, wav.NewDecoder(f).IsValidFile())
}

// writes a mono WAV file of constant value at the render sample rate
func writeSample(t *testing.T, filename string, value int) {
	t.Helper()

	f, err := os.Create(filename)
	test.DemandSuccess(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, 44100, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: 44100},
		SourceBitDepth: 16,
		Data:           make([]int, 4410),
	}
	for i := range buf.Data {
		buf.Data[i] = value
	}

	test.DemandSuccess(t, enc.Write(buf))
	test.DemandSuccess(t, enc.Close())
}

func TestRenderSample(t *testing.T) {
	dir := t.TempDir()
	songs := filepath.Join(dir, "song.yaml")
	test.DemandSuccess(t, os.WriteFile(songs, []byte(songFile), 0644))
	kick := filepath.Join(dir, "kick.wav")
	writeSample(t, kick, 16384)
	out := filepath.Join(dir, "song.wav")

	tw := &test.CompareWriter{}
	args := []string{"render", "--sample", "0:" + kick, "-o", out, "--track", songs}
	test.DemandEquality(t, launch(args, tw), 0, tw.String())
	test.ExpectSuccess(t, tw.HasPrefix("2 notes written"))

	f, err := os.Open(out)
	test.DemandSuccess(t, err)
	defer f.Close()
	buf, err := wav.NewDecoder(f).FullPCMBuffer()
	test.DemandSuccess(t, err)

	// the sample is half of full scale and is mixed at a quarter of full
	// volume. a synth voice would start at a quarter of full scale
	var first int
	for _, v := range buf.Data {
		if v != 0 {
			first = v
			break
		}
	}
	test.ExpectEquality(t, first, int(0.125*32767))

	// bad sample arguments
	test.ExpectEquality(t, launch([]string{"render", "--sample", kick, songs}, tw), 20)
	test.ExpectEquality(t, launch([]string{"render", "--sample", "99:" + kick, songs}, tw), 20)
	test.ExpectEquality(t, launch([]string{"render", "--sample", "0:missing.wav", songs}, tw), 20)
}

func TestRenderErrors(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"render"}, tw), 20)
	test.ExpectEquality(t, launch([]string{"render", "missing.yaml"}, tw), 20)

	dir := t.TempDir()
	songs := filepath.Join(dir, "song.yaml")
	test.DemandSuccess(t, os.WriteFile(songs, []byte(songFile), 0644))
	test.ExpectEquality(t, launch([]string{"render", "--song", "3", songs}, tw), 20)
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	songs := filepath.Join(dir, "song.yaml")
	test.DemandSuccess(t, os.WriteFile(songs, []byte(songFile), 0644))

	tw := &test.CompareWriter{}
	test.DemandEquality(t, launch([]string{"inspect", songs}, tw), 0)
	test.ExpectSuccess(t, tw.Contains("intro"))

	tw.Clear()
	test.DemandEquality(t, launch([]string{"inspect", "--yaml", songs}, tw), 0)
	test.ExpectSuccess(t, tw.Contains("speedInBPM: 240"))
}

func TestFrame(t *testing.T) {
	dir := t.TempDir()

	ink, err := color.ParseHex(color.DefaultColors[1])
	test.DemandSuccess(t, err)
	mask, err := color.ParseHex(color.DefaultMaskColor)
	test.DemandSuccess(t, err)

	// two sprites. the first is solid and the second is empty
	atlas := image.NewRGBA(image.Rect(0, 0, 16, 8))
	for y := range 8 {
		for x := range 16 {
			if x < 8 {
				atlas.Set(x, y, ink)
			} else {
				atlas.Set(x, y, mask)
			}
		}
	}

	atlasFile := filepath.Join(dir, "atlas.png")
	f, err := os.Create(atlasFile)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, png.Encode(f, atlas))
	test.DemandSuccess(t, f.Close())

	out := filepath.Join(dir, "frame.png")
	tw := &test.CompareWriter{}
	test.DemandEquality(t, launch([]string{"frame", "-o", out, "--scale", "1", atlasFile}, tw), 0, tw.String())

	f, err = os.Open(out)
	test.DemandSuccess(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 256)
	test.ExpectEquality(t, img.Bounds().Dy(), 240)

	r, g, b, _ := img.At(0, 0).RGBA()
	er, eg, eb, _ := ink.RGBA()
	test.ExpectEquality(t, r, er)
	test.ExpectEquality(t, g, eg)
	test.ExpectEquality(t, b, eb)

	// the empty sprite is skipped so the second tile is the background
	r, g, b, _ = img.At(8, 0).RGBA()
	test.ExpectInequality(t, [3]uint32{r, g, b}, [3]uint32{er, eg, eb})

	// text without a font is an error
	test.ExpectEquality(t, launch([]string{"frame", "--text", "hello", atlasFile}, tw), 20)

	// preferences for the session can be set on the command line
	small := filepath.Join(dir, "small.png")
	args := []string{"--prefs", "display.width::64; display.height::32", "frame", "-o", small, "--scale", "1", atlasFile}
	test.DemandEquality(t, launch(args, tw), 0, tw.String())

	sf, err := os.Open(small)
	test.DemandSuccess(t, err)
	defer sf.Close()
	cfg, err := png.DecodeConfig(sf)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cfg.Width, 64)
	test.ExpectEquality(t, cfg.Height, 32)

	// preferences that were never read are reported
	tw.Clear()
	args = []string{"--prefs", "display.colour::1", "frame", "-o", small, "--scale", "1", atlasFile}
	test.DemandEquality(t, launch(args, tw), 0, tw.String())
	test.ExpectSuccess(t, tw.Contains("* unused preferences: display.colour::1"))
}
