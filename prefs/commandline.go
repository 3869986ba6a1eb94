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
package prefs

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// overrides is a group of preference values given on the command line. the
// string form of the group is:
//
//	key::value; key::value
type overrides map[string]string

// parseOverrides ignores any entry that is not a key/value pair or that has
// an empty key.
func parseOverrides(s string) overrides {
	o := make(overrides)
	for _, entry := range strings.Split(s, ";") {
		k, v, ok := strings.Cut(entry, "::")
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		if k == "" || strings.Contains(v, "::") {
			continue
		}
		o[k] = strings.TrimSpace(v)
	}
	return o
}

// String returns the group in the command line form, sorted by key.
func (o overrides) String() string {
	s := make([]string, 0, len(o))
	for _, k := range slices.Sorted(maps.Keys(o)) {
		s = append(s, fmt.Sprintf("%s::%s", k, o[k]))
	}
	return strings.Join(s, "; ")
}

// the command line stack allows preferences to be overridden for the
// lifetime of a single session. only the group at the top of the stack is
// consulted
var commandLineStack []overrides

// SizeCommandLineStack returns the number of groups on the stack.
func SizeCommandLineStack() int {
	return len(commandLineStack)
}

// PushCommandLineStack parses a string of key/value pairs and adds it to the
// stack as a new group.
func PushCommandLineStack(prefs string) {
	commandLineStack = append(commandLineStack, parseOverrides(prefs))
}

// PopCommandLineStack removes the most recent group from the stack. Returns
// the values in the group that were never used, in the command line form.
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}
	top := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]
	return top.String()
}

// GetCommandLinePref returns the value for the key in the top group of the
// stack. A value is only ever returned once.
func GetCommandLinePref(key string) (bool, Value) {
	if len(commandLineStack) == 0 {
		return false, nil
	}

	top := commandLineStack[len(commandLineStack)-1]
	v, ok := top[key]
	if !ok {
		return false, nil
	}
	delete(top, key)

	return true, v
}
