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
	"math"

	"github.com/pixelvision8/pv8/hardware/sound"
)

// the trigger fields are written after the previous digest value
const triggerLength = sha1.Size + 8 + 4 + 4 + 8

// Audio implements the sound.Listener interface.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   [triggerLength]byte
	triggers int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{}
}

// SoundTriggered implements the sound.Listener interface.
func (dig *Audio) SoundTriggered(t sound.Trigger) {
	b := dig.buffer[:]
	n := copy(b, dig.digest[:])
	binary.LittleEndian.PutUint64(b[n:], math.Float64bits(t.Time))
	binary.LittleEndian.PutUint32(b[n+8:], uint32(t.Channel))
	binary.LittleEndian.PutUint32(b[n+12:], uint32(t.SfxID))
	binary.LittleEndian.PutUint64(b[n+16:], math.Float64bits(t.Frequency))
	dig.digest = sha1.Sum(b)
	dig.triggers++
}

// Triggers returns the number of triggers included in the digest.
func (dig *Audio) Triggers() int {
	return dig.triggers
}

// Hash implements the Digest interface.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	clear(dig.digest[:])
	dig.triggers = 0
}
