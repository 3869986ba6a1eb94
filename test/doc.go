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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect functions report a test failure but allow the test to continue.
// The Demand functions are fatal to the test if the condition isn't met. This
// is useful when the result is used in further tests and must be correct. For
// example, testing that the lengths of two slices are equal before iterating
// over them in unison.
//
// Success and failure are tested according to the type of the value:
//
//	bool -> true is success
//	error -> nil is success
//
// It is worth describing how the nil type is handled because it is not
// obvious. The nil type is considered a success and consequently will cause
// ExpectFailure to fail and ExpectSuccess to succeed. Because of how errors
// usually works (nil to indicate no error) we need to interpret nil in this
// way.
//
// The CompareWriter type implements the io.Writer interface and should be used
// to capture output. The CompareWriter.Compare() function can then be used to
// test for equality, and the Contains() and HasPrefix() functions for partial
// matches.
package test
