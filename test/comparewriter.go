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
package test

import (
	"bytes"
	"strings"
)

// CompareWriter captures everything written to it so that the output of a
// function can be compared with expected text. The zero value is ready to
// use.
type CompareWriter struct {
	buffer bytes.Buffer
}

// Write implements the io.Writer interface.
func (tw *CompareWriter) Write(p []byte) (int, error) {
	return tw.buffer.Write(p)
}

// Clear empties the buffer.
func (tw *CompareWriter) Clear() {
	tw.buffer.Reset()
}

// Compare returns true if the buffered output is exactly the string.
func (tw *CompareWriter) Compare(s string) bool {
	return tw.buffer.String() == s
}

// Contains returns true if the string appears anywhere in the buffered output.
func (tw *CompareWriter) Contains(s string) bool {
	return bytes.Contains(tw.buffer.Bytes(), []byte(s))
}

// HasPrefix returns true if the buffered output starts with the string.
func (tw *CompareWriter) HasPrefix(s string) bool {
	return bytes.HasPrefix(tw.buffer.Bytes(), []byte(s))
}

// Lines returns the buffered output split into lines. A trailing newline does
// not produce an empty final line.
func (tw *CompareWriter) Lines() []string {
	s := strings.TrimSuffix(tw.buffer.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (tw *CompareWriter) String() string {
	return tw.buffer.String()
}
