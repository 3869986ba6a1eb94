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

// Package chips defines the contract between the engine and the chips that
// make up the virtual console.
//
// A chip is a self-contained subsystem, such as the display, the sprite store
// or the music sequencer. Every chip implements the Chip interface. The
// lifecycle of a chip is simple: it is inactive until it is activated by the
// engine, at which point it receives a reference to the engine and configures
// itself. It remains active until it is deactivated. A deactivated chip can be
// activated again.
//
// Chips that need to do something every frame declare it through the
// Capabilities() function and implement the Updater or Drawer interfaces, or
// both. The engine reads the capabilities once, when the chip is activated.
//
// Chips find each other through the engine with the Engine.GetChip()
// function, using the keys listed in this package.
package chips
