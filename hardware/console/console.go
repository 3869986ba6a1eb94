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

package console

import (
	"github.com/pixelvision8/pv8/environment"
	"github.com/pixelvision8/pv8/hardware"
	"github.com/pixelvision8/pv8/hardware/chips"
	"github.com/pixelvision8/pv8/hardware/color"
	"github.com/pixelvision8/pv8/hardware/display"
	"github.com/pixelvision8/pv8/hardware/font"
	"github.com/pixelvision8/pv8/hardware/music"
	"github.com/pixelvision8/pv8/hardware/sound"
	"github.com/pixelvision8/pv8/hardware/sprite"
	"github.com/pixelvision8/pv8/hardware/tilemap"
)

// Console is an engine with the standard chips. The chip fields are
// convenience references to the chips active in the engine.
type Console struct {
	*hardware.Engine

	Color   *color.Chip
	Sprites *sprite.Chip
	Tilemap *tilemap.Chip
	Font    *font.Chip
	Display *display.Chip
	Sound   *sound.Chip
	Music   *music.Chip
}

// the standard chips in the order they are activated
var standard = []struct {
	key     string
	factory hardware.Factory
}{
	{chips.ColorKey, func() chips.Chip { return color.NewChip() }},
	{chips.SpriteKey, func() chips.Chip { return sprite.NewChip() }},
	{chips.TilemapKey, func() chips.Chip { return tilemap.NewChip() }},
	{chips.FontKey, func() chips.Chip { return font.NewChip() }},
	{chips.DisplayKey, func() chips.Chip { return display.NewChip() }},
	{chips.SoundKey, func() chips.Chip { return sound.NewChip() }},
	{chips.MusicKey, func() chips.Chip { return music.NewChip(nil) }},
}

// RegisterFactories registers the factories for every standard chip with the
// engine.
func RegisterFactories(e *hardware.Engine) {
	for _, s := range standard {
		e.RegisterFactory(s.key, s.factory)
	}
}

// NewConsole is the preferred method of initialisation for the Console type.
// The env argument can be nil.
func NewConsole(env *environment.Environment) (*Console, error) {
	e, err := hardware.NewEngine(env)
	if err != nil {
		return nil, err
	}

	RegisterFactories(e)

	for _, s := range standard {
		e.GetChip(s.key, true)
	}

	con := &Console{Engine: e}
	con.Color, _ = e.GetChip(chips.ColorKey, false).(*color.Chip)
	con.Sprites, _ = e.GetChip(chips.SpriteKey, false).(*sprite.Chip)
	con.Tilemap, _ = e.GetChip(chips.TilemapKey, false).(*tilemap.Chip)
	con.Font, _ = e.GetChip(chips.FontKey, false).(*font.Chip)
	con.Display, _ = e.GetChip(chips.DisplayKey, false).(*display.Chip)
	con.Sound, _ = e.GetChip(chips.SoundKey, false).(*sound.Chip)
	con.Music, _ = e.GetChip(chips.MusicKey, false).(*music.Chip)

	con.Init()

	return con, nil
}
