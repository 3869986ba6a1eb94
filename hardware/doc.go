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

// Package hardware is the base package for the virtual console. The Engine
// type in this package is the chip manager: it holds the registry of active
// chips and drives the per-frame Update and Draw phases.
//
// The chips themselves are defined in sub-packages and implement the
// chips.Chip interface. The console sub-package creates an Engine with all
// the standard chips activated.
//
// The engine is single threaded. A frame consists of the Update phase, in
// which every chip declaring the CapUpdate capability is updated, followed by
// the Draw phase, in which every chip declaring the CapDraw capability is
// drawn. In both phases chips are visited in registration order. The engine
// does not reorder chips so chips that produce state for other chips in the
// same frame must be activated first.
//
// The Run() and RunForFrameCount() functions provide a simple loop for
// driving the engine. The host application can instead call Step() (or
// Update() and Draw()) directly from its own loop.
package hardware
