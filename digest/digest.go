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

// Package digest contains implementations of chip and listener interfaces
// such that a cryptographic hash of the console output is produced. The hash
// can then be used to compare output from subsequent executions. If a new
// hash differs from a previously recorded value then something has changed.
//
// The Video type is a chip that hashes the display frame after it has been
// composited. The Audio type implements the sound.Listener interface and
// hashes every triggered sound.
//
// Each new digest value is chained to the previous value, so the final hash
// depends on every frame or trigger and the order in which they occurred.
package digest

// Digest implementations should return a cryptographic hash in response to a
// Hash() request.
type Digest interface {
	Hash() string
	ResetDigest()
}
