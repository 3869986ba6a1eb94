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

package preferences

import (
	"errors"
	"fmt"

	"github.com/pixelvision8/pv8/pixels"
	"github.com/pixelvision8/pv8/prefs"
)

// default values for all hardware preferences.
const (
	DefaultDisplayWidth       = 256
	DefaultDisplayHeight      = 240
	DefaultSpriteWidth        = 8
	DefaultSpriteHeight       = 8
	DefaultSpritePages        = 4
	DefaultMaxSpritesPerFrame = 64
	DefaultTilemapColumns     = 32
	DefaultTilemapRows        = 30
	DefaultSoundChannels      = 5
	DefaultSwing              = 0.7
	DefaultLoopSong           = false
	DefaultWrapMode           = false
)

// upper limits of the preferences that are not pixel sizes. pixel sizes are
// limited to the range of pixels.MinSize to pixels.MaxSize
const (
	MaxSpritePages     = 32
	MaxSpritesPerFrame = 1024
	MaxSoundChannels   = 16
)

// Preferences defines and collates all the preference values used by the
// hardware chips. Chips read the values when they are configured so changes
// take effect on the next activation.
type Preferences struct {
	dsk *prefs.Disk

	DisplayWidth  prefs.Int
	DisplayHeight prefs.Int

	SpriteWidth        prefs.Int
	SpriteHeight       prefs.Int
	SpritePages        prefs.Int
	MaxSpritesPerFrame prefs.Int

	TilemapColumns prefs.Int
	TilemapRows    prefs.Int

	SoundChannels prefs.Int

	// the ratio of the short beat to the base tick of the music sequencer
	Swing prefs.Float

	// whether the music sequencer wraps to the start of the playlist
	LoopSong prefs.Bool

	// read wrapping of pixel coordinates in newly created pixel data
	WrapMode prefs.Bool
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// the subset of prefs functions required to add a value to the disk
type diskValue interface {
	Set(prefs.Value) error
	Get() prefs.Value
	Reset() error
	String() string
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. If the path argument is empty the preferences are not
// backed by a file and the Load() and Save() functions will fail.
func NewPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}

	p.Swing.SetHookPre(func(v prefs.Value) error {
		if f := v.(float64); f < 0.0 || f > 1.0 {
			return fmt.Errorf("preferences: swing must be between 0.0 and 1.0 (%.3f)", f)
		}
		return nil
	})

	for _, v := range []*prefs.Int{
		&p.DisplayWidth, &p.DisplayHeight,
		&p.SpriteWidth, &p.SpriteHeight,
		&p.TilemapColumns, &p.TilemapRows,
	} {
		v.SetRange(pixels.MinSize, pixels.MaxSize)
	}
	p.SpritePages.SetRange(1, MaxSpritePages)

	// zero means no limit
	p.MaxSpritesPerFrame.SetRange(0, MaxSpritesPerFrame)

	p.SoundChannels.SetRange(1, MaxSoundChannels)

	p.SetDefaults()

	entries := []struct {
		key string
		v   diskValue
	}{
		{"display.width", &p.DisplayWidth},
		{"display.height", &p.DisplayHeight},
		{"sprites.width", &p.SpriteWidth},
		{"sprites.height", &p.SpriteHeight},
		{"sprites.pages", &p.SpritePages},
		{"sprites.maxperframe", &p.MaxSpritesPerFrame},
		{"tilemap.columns", &p.TilemapColumns},
		{"tilemap.rows", &p.TilemapRows},
		{"sound.channels", &p.SoundChannels},
		{"music.swing", &p.Swing},
		{"music.loop", &p.LoopSong},
		{"pixels.wrap", &p.WrapMode},
	}

	// without a file, values on the command line stack are applied directly.
	// otherwise they are applied by the disk Load() function
	if pth == "" {
		for _, e := range entries {
			if ok, v := prefs.GetCommandLinePref(e.key); ok {
				if err := e.v.Set(v); err != nil {
					return nil, fmt.Errorf("preferences: %s: %w", e.key, err)
				}
			}
		}
		return p, nil
	}

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	for _, e := range entries {
		if err := p.dsk.Add(e.key, e.v); err != nil {
			return nil, fmt.Errorf("preferences: %w", err)
		}
	}

	err = p.dsk.Load(true)
	if err != nil && !errors.Is(err, prefs.ErrNoPrefsFile) {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	return p, nil
}

// SetDefaults reverts all hardware preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.DisplayWidth.Set(DefaultDisplayWidth)
	_ = p.DisplayHeight.Set(DefaultDisplayHeight)
	_ = p.SpriteWidth.Set(DefaultSpriteWidth)
	_ = p.SpriteHeight.Set(DefaultSpriteHeight)
	_ = p.SpritePages.Set(DefaultSpritePages)
	_ = p.MaxSpritesPerFrame.Set(DefaultMaxSpritesPerFrame)
	_ = p.TilemapColumns.Set(DefaultTilemapColumns)
	_ = p.TilemapRows.Set(DefaultTilemapRows)
	_ = p.SoundChannels.Set(DefaultSoundChannels)
	_ = p.Swing.Set(DefaultSwing)
	_ = p.LoopSong.Set(DefaultLoopSong)
	_ = p.WrapMode.Set(DefaultWrapMode)
}

// ErrNoDisk is returned by Load() and Save() when the preferences are not
// backed by a file.
var ErrNoDisk = errors.New("preferences: not backed by a file")

// Load hardware preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return ErrNoDisk
	}
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return ErrNoDisk
	}
	return p.dsk.Save()
}

// Int returns the value of an Int preference as a Go int.
func Int(v *prefs.Int) int {
	return v.Get().(int)
}

// Float returns the value of a Float preference as a Go float64.
func Float(v *prefs.Float) float64 {
	return v.Get().(float64)
}

// Bool returns the value of a Bool preference as a Go bool.
func Bool(v *prefs.Bool) bool {
	return v.Get().(bool)
}
