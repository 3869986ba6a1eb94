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
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/davecgh/go-spew/spew"
	"github.com/pixelvision8/pv8/digest"
	"github.com/pixelvision8/pv8/environment"
	"github.com/pixelvision8/pv8/hardware/console"
	"github.com/pixelvision8/pv8/hardware/display"
	"github.com/pixelvision8/pv8/hardware/govern"
	"github.com/pixelvision8/pv8/hardware/music"
	"github.com/pixelvision8/pv8/hardware/preferences"
	"github.com/pixelvision8/pv8/hardware/sound"
	"github.com/pixelvision8/pv8/hardware/tilemap"
	"github.com/pixelvision8/pv8/logger"
	"github.com/pixelvision8/pv8/modalflag"
	"github.com/pixelvision8/pv8/paths"
	"github.com/pixelvision8/pv8/pixels"
	"github.com/pixelvision8/pv8/prefs"
	"github.com/pixelvision8/pv8/statsview"
	"github.com/pixelvision8/pv8/tracker"
	"github.com/pixelvision8/pv8/version"
	"github.com/pixelvision8/pv8/wavwriter"
)

// the synth parameter given to sound slots that have no definition
const defaultSynth = "square"

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch the program with the arguments. the return value is suitable for
// passing to os.Exit()
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RENDER", "FRAME", "INSPECT", "VERSION")

	echo := md.AddBool("log", "l", false, "echo log entries to stderr")
	stats := md.AddBool("statsview", "", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	overrides := md.AddString("prefs", "", "", "override preferences for this session (eg. 'tilemap.rows::16; music.swing::0.5')")
	prefsFile := md.AddString("prefsfile", "", "", "preferences file. 'auto' for the file in the resource directory")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *echo {
		logger.SetEcho(os.Stderr)
		defer logger.SetEcho(nil)
	}

	if *overrides != "" {
		prefs.PushCommandLineStack(*overrides)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				fmt.Fprintf(output, "* unused preferences: %s\n", unused)
			}
		}()
	}

	if *stats {
		if !statsview.Available() {
			fmt.Fprintln(output, "* statsview not available in this build")
		} else {
			statsview.Launch(output)
		}
	}

	env, err := newEnvironment(*prefsFile)
	if err != nil {
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RENDER":
		err = render(md, env)

	case "FRAME":
		err = frame(md, env)

	case "INSPECT":
		err = inspect(md)

	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// create the environment for the console. the preferences are backed by a file
// if one is specified
func newEnvironment(prefsFile string) (*environment.Environment, error) {
	if prefsFile == "" {
		return environment.NewEnvironment(environment.MainEngine, nil)
	}

	if prefsFile == "auto" {
		var err error
		prefsFile, err = paths.ResourcePath("", "preferences")
		if err != nil {
			return nil, err
		}
	}

	p, err := preferences.NewPreferences(prefsFile)
	if err != nil {
		return nil, err
	}

	return environment.NewEnvironment(environment.MainEngine, p)
}

func render(md *modalflag.Modes, env *environment.Environment) error {
	md.NewMode()

	outputFile := md.AddString("output", "o", "", "output WAV file (default is a unique filename)")
	songID := md.AddInt("song", "s", 0, "song to play")
	loop := md.AddBool("loop", "", false, "loop the song (rendering stops after --seconds)")
	seconds := md.AddFloat64("seconds", "d", 60.0, "maximum length of the render")
	fps := md.AddInt("fps", "", 60, "number of frames per second")
	swing := md.AddFloat64("swing", "", music.DefaultSwing, "swing ratio of the note timing")
	track := md.AddBool("track", "t", false, "print the triggered notes")
	viz := md.AddString("memviz", "", "", "write a graphviz dot file of the music chip after rendering")
	showDigest := md.AddBool("digest", "", false, "print a digest of the triggered sounds")
	samples := md.AddStringArray("sample", "", "load a WAV or MP3 file into a sound slot (eg. 3:kick.wav). can be repeated")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("song file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *fps <= 0 {
		return fmt.Errorf("fps must be greater than zero")
	}

	con, err := console.NewConsole(env)
	if err != nil {
		return err
	}
	defer con.Shutdown()

	f, err := os.Open(md.GetArg(0))
	if err != nil {
		return err
	}
	err = con.Music.LoadSongs(f)
	f.Close()
	if err != nil {
		return err
	}

	if *songID < 0 || *songID >= con.Music.TotalSongs() {
		return fmt.Errorf("no song %d in %s", *songID, md.GetArg(0))
	}

	// samples are loaded before the empty slots are filled
	for _, smp := range *samples {
		err = loadSample(con.Sound, smp)
		if err != nil {
			return err
		}
	}

	for i := range con.Sound.TotalSounds() {
		if con.Sound.ReadSound(i).IsEmpty() {
			con.Sound.UpdateSound(i, sound.SoundData{
				Name:  fmt.Sprintf("sfx%d", i),
				Param: defaultSynth,
			})
		}
	}

	if *outputFile == "" {
		name := strings.TrimSuffix(filepath.Base(md.GetArg(0)), filepath.Ext(md.GetArg(0)))
		*outputFile = paths.UniqueFilename("render", name, "wav")
	}

	aw, err := wavwriter.New(*outputFile)
	if err != nil {
		return err
	}
	tr := tracker.NewTracker()
	dig := digest.NewAudio()
	con.Sound.SetListener(sound.Listeners{aw, tr, dig})

	con.Music.SetSwing(*swing)
	con.Music.PlaySong(*songID, *loop, 0)

	// stop rendering on ctrl-c. the audio rendered so far is still written
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	numFrames := int(*seconds * float64(*fps))
	err = con.RunForFrameCount(numFrames, 1.0/float64(*fps), func(_ int) (govern.State, error) {
		select {
		case <-intChan:
			return govern.Ending, nil
		default:
		}
		if !con.Music.IsPlaying() {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	if err != nil {
		return err
	}

	err = aw.EndMixing()
	if err != nil {
		return err
	}
	fmt.Fprintf(md.Output, "%d notes written to %s\n", tr.Total(), *outputFile)

	if *track {
		tr.Write(md.Output)
	}

	if *showDigest {
		fmt.Fprintf(md.Output, "digest: %s\n", dig.Hash())
	}

	if *viz != "" {
		f, err := os.Create(*viz)
		if err != nil {
			return err
		}
		defer f.Close()
		memviz.Map(f, con.Music)
	}

	return nil
}

// loadSample parses a sample argument of the form slot:filename and loads the
// file into the sound chip.
func loadSample(snd *sound.Chip, arg string) error {
	slot, filename, ok := strings.Cut(arg, ":")
	if !ok || filename == "" {
		return fmt.Errorf("sample %q should be in the form slot:filename", arg)
	}

	id, err := strconv.Atoi(slot)
	if err != nil || id < 0 || id >= snd.TotalSounds() {
		return fmt.Errorf("sample slot %q should be between 0 and %d", slot, snd.TotalSounds()-1)
	}

	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	return snd.LoadSample(id, filename, f)
}

func frame(md *modalflag.Modes, env *environment.Environment) error {
	md.NewMode()

	outputFile := md.AddString("output", "o", "", "output PNG file (default is a unique filename)")
	scale := md.AddInt("scale", "", 2, "scaling of the exported image")
	fontFile := md.AddString("font", "f", "", "PNG font atlas for the --text flag")
	text := md.AddString("text", "", "", "text to draw over the tilemap")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("sprite atlas required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	con, err := console.NewConsole(env)
	if err != nil {
		return err
	}
	defer con.Shutdown()

	f, err := os.Open(md.GetArg(0))
	if err != nil {
		return err
	}
	err = con.Sprites.LoadAtlas(f, con.Color.Palette(), con.Color.MaskColor())
	f.Close()
	if err != nil {
		return err
	}

	// fill the tilemap with the sprites in the atlas, skipping empty sprites
	var id int
	for i := range con.Tilemap.Total() {
		for id < con.Sprites.TotalSprites() && con.Sprites.IsEmpty(id) {
			id++
		}
		if id >= con.Sprites.TotalSprites() {
			break // for loop
		}
		con.Tilemap.UpdateTileAt(i%con.Tilemap.Columns(), i/con.Tilemap.Columns(), tilemap.Tile{
			SpriteID: id,
			Flag:     tilemap.NoFlag,
		})
		id++
	}

	con.Display.DrawTilemap(0, 0, 0, 0, 0, 0, display.LayerTilemap)

	if *text != "" {
		if *fontFile == "" {
			return errors.New("--text requires a --font")
		}
		f, err := os.Open(*fontFile)
		if err != nil {
			return err
		}
		err = con.Font.LoadFont("default", f, con.Color.Palette(), con.Color.MaskColor())
		f.Close()
		if err != nil {
			return err
		}
		con.Display.DrawText(*text, 0, 0, "default", 0, 0, display.LayerUI)
	}

	con.Step(0)

	if *outputFile == "" {
		name := strings.TrimSuffix(filepath.Base(md.GetArg(0)), filepath.Ext(md.GetArg(0)))
		*outputFile = paths.UniqueFilename("frame", name, "png")
	}

	o, err := os.Create(*outputFile)
	if err != nil {
		return err
	}
	defer o.Close()

	err = pixels.ExportPNG(o, con.Display.Frame(), con.Color.Palette(), nil, *scale)
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "frame written to %s\n", *outputFile)

	return nil
}

func inspect(md *modalflag.Modes) error {
	md.NewMode()

	normalised := md.AddBool("yaml", "y", false, "print the normalised song file as YAML rather than a dump")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one song file required for %s mode", md)
	}

	f, err := os.Open(md.GetArg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	sf, err := music.ReadSongFile(f)
	if err != nil {
		return err
	}

	if *normalised {
		return sf.Write(md.Output)
	}

	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true}
	cfg.Fdump(md.Output, sf)

	return nil
}
