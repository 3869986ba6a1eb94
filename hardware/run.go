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

package hardware

import (
	"fmt"

	"github.com/pixelvision8/pv8/hardware/govern"
)

// Run sets the engine running as quickly as possible, stepping one frame at a
// time with a fixed deltaTime. The continueCheck() function is called after
// every frame and controls whether the loop continues.
//
// A continueCheck() returning govern.Paused causes the loop to idle without
// stepping the engine. A nil continueCheck() runs the engine forever.
func (e *Engine) Run(deltaTime float64, continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for !state.Ends() {
		if !state.Valid() {
			return fmt.Errorf("engine: unsupported state (%d) in Run() function", state)
		}
		if state.Steps() {
			e.Step(deltaTime)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount sets the engine running for the specified number of
// frames. Useful for offline rendering and for tests. The continueCheck()
// function can be nil.
func (e *Engine) RunForFrameCount(numFrames int, deltaTime float64, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	targetFrame := e.frame + numFrames

	var err error

	state := govern.Running
	for e.frame < targetFrame && !state.Ends() {
		if !state.Valid() {
			return fmt.Errorf("engine: unsupported state (%d) in RunForFrameCount() function", state)
		}
		if state.Steps() {
			e.Step(deltaTime)
		}

		state, err = continueCheck(e.frame)
		if err != nil {
			return err
		}
	}

	return nil
}
