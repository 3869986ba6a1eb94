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
package govern

// State indicates the condition of the engine's run loop. The state is
// returned by the continueCheck() function given to the Run() and
// RunForFrameCount() functions of the engine.
type State int

// List of possible engine states.
//
// Initialising is used when the engine is being reconfigured, for example
// after a change of preferences. The run loop returns without error, the same
// as it does for Ending.
//
// Paused causes the run loop to idle without stepping the engine. It is up to
// the continueCheck() function to sleep or otherwise wait for a change of
// state.
const (
	Initialising State = iota
	Paused
	Running
	Ending
)

var stateNames = [...]string{
	Initialising: "Initialising",
	Paused:       "Paused",
	Running:      "Running",
	Ending:       "Ending",
}

func (s State) String() string {
	if !s.Valid() {
		return ""
	}
	return stateNames[s]
}

// Valid returns true if the State is one of the listed states.
func (s State) Valid() bool {
	return s >= 0 && int(s) < len(stateNames)
}

// Steps returns true if the engine should be stepped while in this state.
func (s State) Steps() bool {
	return s == Running
}

// Ends returns true if the run loop should return while in this state.
func (s State) Ends() bool {
	return s == Ending || s == Initialising
}
