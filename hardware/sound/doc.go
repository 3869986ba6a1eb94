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

// Package sound implements the sound chip. The chip holds a fixed number of
// sound effect slots and a fixed number of playback channels.
//
// A sound effect is either a synth definition, stored as an opaque parameter
// string, or a PCM sample loaded from a WAV or MP3 file. Playing a sound
// assigns it to a channel, interrupting whatever the channel was playing. The
// channel becomes idle again when the sound has finished.
//
// The chip does not produce audio itself. Every accepted trigger is reported
// to the Listener, if one has been set, along with the chip time at which the
// trigger happened. The wavwriter package provides a Listener that renders
// the triggers to a WAV file.
package sound
