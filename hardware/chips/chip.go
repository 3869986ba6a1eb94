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

package chips

import (
	"strings"

	"github.com/pixelvision8/pv8/environment"
)

// Capability flags indicate which per-frame phases a chip takes part in.
type Capability int

// List of valid Capability flags. Flags can be combined.
const (
	CapUpdate Capability = 1 << iota
	CapDraw

	CapNone Capability = 0
)

// Has returns true if all flags in f are set.
func (c Capability) Has(f Capability) bool {
	return c&f == f
}

func (c Capability) String() string {
	var s strings.Builder
	if c.Has(CapUpdate) {
		s.WriteString("update ")
	}
	if c.Has(CapDraw) {
		s.WriteString("draw ")
	}
	if s.Len() == 0 {
		return "none"
	}
	return strings.TrimSpace(s.String())
}

// Engine is the view of the engine available to an active chip.
type Engine interface {
	// GetChip returns the chip registered with the key. If there is no chip
	// registered with that key and activate is true, the engine will try to
	// create and activate one. The function returns nil if the chip is not
	// available.
	GetChip(key string, activate bool) Chip

	// Env returns the environment of the engine.
	Env() *environment.Environment
}

// Chip is implemented by every chip in the virtual console.
type Chip interface {
	// Activate is called by the engine when the chip is registered. The chip
	// must keep a reference to the engine and then call Configure().
	Activate(engine Engine)

	// Deactivate is called by the engine when the chip is removed.
	Deactivate()

	// Configure (re)creates the internal state of the chip from the
	// environment's preferences.
	Configure()

	// Init, Reset and Shutdown are broadcast by the engine to all chips in
	// registration order.
	Init()
	Reset()
	Shutdown()

	// Capabilities returns the per-frame phases the chip wants to take part
	// in. The value is read once by the engine when the chip is activated.
	Capabilities() Capability
}

// Updater is implemented by chips that declare the CapUpdate capability.
type Updater interface {
	Update(deltaTime float64)
}

// Drawer is implemented by chips that declare the CapDraw capability.
type Drawer interface {
	Draw()
}
