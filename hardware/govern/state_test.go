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
package govern_test

import (
	"testing"

	"github.com/pixelvision8/pv8/hardware/govern"
	"github.com/pixelvision8/pv8/test"
)

func TestState(t *testing.T) {
	test.ExpectEquality(t, govern.Initialising.String(), "Initialising")
	test.ExpectEquality(t, govern.Paused.String(), "Paused")
	test.ExpectEquality(t, govern.Running.String(), "Running")
	test.ExpectEquality(t, govern.Ending.String(), "Ending")

	test.ExpectSuccess(t, govern.Running.Steps())
	test.ExpectFailure(t, govern.Paused.Steps())
	test.ExpectFailure(t, govern.Ending.Steps())

	test.ExpectSuccess(t, govern.Ending.Ends())
	test.ExpectSuccess(t, govern.Initialising.Ends())
	test.ExpectFailure(t, govern.Running.Ends())
	test.ExpectFailure(t, govern.Paused.Ends())
}

func TestInvalidState(t *testing.T) {
	for _, s := range []govern.State{-1, govern.Ending + 1, 100} {
		test.ExpectFailure(t, s.Valid(), int(s))
		test.ExpectEquality(t, s.String(), "", int(s))
		test.ExpectFailure(t, s.Steps(), int(s))
		test.ExpectFailure(t, s.Ends(), int(s))
	}
}
