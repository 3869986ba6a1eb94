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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"

	"github.com/pixelvision8/pv8/hardware/chips"
	"github.com/pixelvision8/pv8/hardware/display"
)

// VideoKey is the key the Video chip should be activated with.
const VideoKey = "digest"

// Video is a chip that produces a digest of every frame composited by the
// display chip. It must be activated after the display chip so that it is
// drawn after the display.
type Video struct {
	chips.Base

	display *display.Chip

	digest [sha1.Size]byte
	buffer []byte
	frames int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Activate implements the chips.Chip interface.
func (dig *Video) Activate(engine chips.Engine) {
	dig.Base.Activate(engine)
	dig.Configure()
}

// Configure implements the chips.Chip interface.
func (dig *Video) Configure() {
	dig.display, _ = dig.GetChip(chips.DisplayKey, true).(*display.Chip)
}

// Capabilities implements the chips.Chip interface.
func (dig *Video) Capabilities() chips.Capability {
	return chips.CapDraw
}

// Draw implements the chips.Drawer interface.
func (dig *Video) Draw() {
	if dig.display == nil {
		return
	}

	frame := dig.display.Frame()
	p := frame.Pixels()

	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the buffer
	l := len(dig.digest) + 8 + len(p)*4
	if cap(dig.buffer) < l {
		dig.buffer = make([]byte, l)
	}
	dig.buffer = dig.buffer[:l]

	n := copy(dig.buffer, dig.digest[:])
	binary.LittleEndian.PutUint32(dig.buffer[n:], uint32(frame.Width()))
	binary.LittleEndian.PutUint32(dig.buffer[n+4:], uint32(frame.Height()))
	n += 8

	// four bytes per pixel. color indexes plus offsets are not limited to
	// 16 bits
	for i, v := range p {
		binary.LittleEndian.PutUint32(dig.buffer[n+i*4:], uint32(int32(v)))
	}

	dig.digest = sha1.Sum(dig.buffer)
	dig.frames++
}

// Frames returns the number of frames included in the digest.
func (dig *Video) Frames() int {
	return dig.frames
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.frames = 0
}
