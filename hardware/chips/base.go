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
	"github.com/pixelvision8/pv8/environment"
	"github.com/pixelvision8/pv8/hardware/preferences"
)

// Base is embedded by chip implementations. It stores the engine reference
// and provides empty implementations of the optional lifecycle functions.
//
// Go has no virtual dispatch so Base cannot call the Configure() function of
// the chip that embeds it. Implementations should define their own Activate()
// function that calls Base.Activate() and then Configure():
//
//	func (ch *MyChip) Activate(engine chips.Engine) {
//		ch.Base.Activate(engine)
//		ch.Configure()
//	}
type Base struct {
	engine Engine
}

// Activate stores the engine reference.
func (b *Base) Activate(engine Engine) {
	b.engine = engine
}

// Deactivate forgets the engine reference.
func (b *Base) Deactivate() {
	b.engine = nil
}

// Active returns true if the chip has been activated and not deactivated.
func (b *Base) Active() bool {
	return b.engine != nil
}

// Engine returns the engine the chip is active in. Returns nil if the chip is
// not active.
func (b *Base) Engine() Engine {
	return b.engine
}

// Env returns the environment of the engine the chip is active in. Returns nil
// if the chip is not active.
func (b *Base) Env() *environment.Environment {
	if b.engine == nil {
		return nil
	}
	return b.engine.Env()
}

// Prefs returns the preferences of the environment. If the chip is not active
// a new instance of the default preferences is returned.
func (b *Base) Prefs() *preferences.Preferences {
	if env := b.Env(); env != nil && env.Prefs != nil {
		return env.Prefs
	}
	p, _ := preferences.NewPreferences("")
	return p
}

// GetChip is a convenience function for Engine.GetChip(). Returns nil if the
// chip is not active.
func (b *Base) GetChip(key string, activate bool) Chip {
	if b.engine == nil {
		return nil
	}
	return b.engine.GetChip(key, activate)
}

// Init implements the Chip interface.
func (b *Base) Init() {}

// Reset implements the Chip interface.
func (b *Base) Reset() {}

// Shutdown implements the Chip interface.
func (b *Base) Shutdown() {}
