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
	"github.com/pixelvision8/pv8/hardware/chips"
	"github.com/pixelvision8/pv8/hardware/preferences"
	"github.com/pixelvision8/pv8/logger"
)

// DefaultTotalSounds is the number of sound effect slots after configuration.
const DefaultTotalSounds = 16

// MaxChannels is the largest number of channels the chip can have.
const MaxChannels = preferences.MaxSoundChannels

// DefaultNoteLength is the time in seconds that a synth sound occupies a
// channel.
const DefaultNoteLength = 0.25

// Trigger describes a sound that has been assigned to a channel.
type Trigger struct {
	// chip time in seconds
	Time float64

	SfxID     int
	Channel   int
	Frequency float64

	Sound SoundData
}

// Listener is implemented by types that want to know when a sound is
// triggered.
type Listener interface {
	SoundTriggered(Trigger)
}

// Listeners combines several Listener instances into one. Triggers are passed
// to each Listener in order.
type Listeners []Listener

// SoundTriggered implements the Listener interface.
func (ls Listeners) SoundTriggered(t Trigger) {
	for _, l := range ls {
		if l != nil {
			l.SoundTriggered(t)
		}
	}
}

type channel struct {
	playing   bool
	sfxID     int
	frequency float64
	remaining float64
}

// Chip is the sound chip.
type Chip struct {
	chips.Base

	sounds   []SoundData
	channels []channel

	// time in seconds since configuration. advanced in the Update phase
	time float64

	listener Listener
}

// NewChip is the preferred method of initialisation for the Chip type.
func NewChip() *Chip {
	ch := &Chip{}
	ch.Configure()
	return ch
}

// Activate implements the chips.Chip interface.
func (ch *Chip) Activate(engine chips.Engine) {
	ch.Base.Activate(engine)
	ch.Configure()
}

// Configure implements the chips.Chip interface. All sound slots are emptied
// and the number of channels is taken from the preferences.
func (ch *Chip) Configure() {
	p := ch.Prefs()
	ch.sounds = make([]SoundData, DefaultTotalSounds)
	ch.channels = make([]channel, preferences.Int(&p.SoundChannels))
	ch.time = 0
	logger.Logf(ch.Env(), "sound", "%d channels, %d sounds", len(ch.channels), len(ch.sounds))
}

// Capabilities implements the chips.Chip interface.
func (ch *Chip) Capabilities() chips.Capability {
	return chips.CapUpdate
}

// Reset implements the chips.Chip interface. All channels are stopped.
func (ch *Chip) Reset() {
	ch.StopAll()
}

// Shutdown implements the chips.Chip interface. All channels are stopped.
func (ch *Chip) Shutdown() {
	ch.StopAll()
}

// Update implements the chips.Updater interface. Channels that have finished
// playing are made idle.
func (ch *Chip) Update(deltaTime float64) {
	ch.time += deltaTime
	for i := range ch.channels {
		c := &ch.channels[i]
		if !c.playing {
			continue
		}
		c.remaining -= deltaTime
		if c.remaining <= 0 {
			c.playing = false
		}
	}
}

// Time returns the chip time in seconds.
func (ch *Chip) Time() float64 {
	return ch.time
}

// SetListener sets the Listener that is told about every accepted trigger. A
// nil value removes the current listener.
func (ch *Chip) SetListener(l Listener) {
	ch.listener = l
}

// TotalSounds returns the number of sound effect slots.
func (ch *Chip) TotalSounds() int {
	return len(ch.sounds)
}

// ResizeSounds changes the number of sound effect slots. Existing sounds are
// kept if they fit.
func (ch *Chip) ResizeSounds(total int) {
	total = max(1, total)
	if total <= len(ch.sounds) {
		ch.sounds = ch.sounds[:total]
		return
	}
	ch.sounds = append(ch.sounds, make([]SoundData, total-len(ch.sounds))...)
}

// TotalChannels returns the number of channels.
func (ch *Chip) TotalChannels() int {
	return len(ch.channels)
}

// ReadSound returns the sound in the slot. An id outside of the range of slots
// returns an empty sound.
func (ch *Chip) ReadSound(id int) SoundData {
	if id < 0 || id >= len(ch.sounds) {
		return SoundData{}
	}
	return ch.sounds[id]
}

// UpdateSound changes the sound in the slot. An id outside of the range of
// slots is ignored.
func (ch *Chip) UpdateSound(id int, data SoundData) {
	if id < 0 || id >= len(ch.sounds) {
		return
	}
	ch.sounds[id] = data
}

// PlaySound plays the sound effect on the channel. The frequency value is
// passed to the listener unchanged.
//
// A negative channel value selects the first idle channel, or channel zero if
// no channel is idle. Sound ids and channels outside of the available range
// are ignored. Empty sound slots are ignored.
func (ch *Chip) PlaySound(sfxID int, channel int, frequency float64) {
	if sfxID < 0 || sfxID >= len(ch.sounds) {
		return
	}

	sfx := ch.sounds[sfxID]
	if sfx.IsEmpty() {
		return
	}

	if channel < 0 {
		channel = 0
		for i := range ch.channels {
			if !ch.channels[i].playing {
				channel = i
				break
			}
		}
	} else if channel >= len(ch.channels) {
		return
	}

	ch.channels[channel] = channelState(sfxID, frequency, sfx.Duration())

	if ch.listener != nil {
		ch.listener.SoundTriggered(Trigger{
			Time:      ch.time,
			SfxID:     sfxID,
			Channel:   channel,
			Frequency: frequency,
			Sound:     sfx,
		})
	}
}

func channelState(sfxID int, frequency float64, duration float64) channel {
	return channel{
		playing:   true,
		sfxID:     sfxID,
		frequency: frequency,
		remaining: duration,
	}
}

// StopSound stops the channel.
func (ch *Chip) StopSound(channel int) {
	if channel < 0 || channel >= len(ch.channels) {
		return
	}
	ch.channels[channel].playing = false
}

// StopAll stops every channel.
func (ch *Chip) StopAll() {
	for i := range ch.channels {
		ch.channels[i].playing = false
	}
}

// IsChannelPlaying returns true if the channel is playing a sound.
func (ch *Chip) IsChannelPlaying(channel int) bool {
	if channel < 0 || channel >= len(ch.channels) {
		return false
	}
	return ch.channels[channel].playing
}

// ChannelSound returns the id of the sound playing on the channel. Returns -1
// if the channel is idle.
func (ch *Chip) ChannelSound(channel int) int {
	if !ch.IsChannelPlaying(channel) {
		return -1
	}
	return ch.channels[channel].sfxID
}
