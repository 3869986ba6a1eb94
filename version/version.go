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
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "PV8"

// number is set by the linker when building a release. for example:
//
//	go build -ldflags "-X github.com/pixelvision8/pv8/version.number=v0.1.0"
var number string

// Info describes the build of the running program.
type Info struct {
	// the release number, or "unreleased" if the program was built from a
	// vcs checkout without a release number, or "local" if there is no vcs
	// information at all (eg. "go run .")
	Version string

	// the vcs revision. suffixed with "+dirty" if the checkout had
	// uncommitted modifications
	Revision string

	// version of the Go toolchain used to build the program
	GoVersion string

	// true if Version is a release number
	Release bool
}

func (nf Info) String() string {
	if nf.Release {
		return fmt.Sprintf("%s %s", ApplicationName, nf.Version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, nf.Version, nf.Revision)
}

// fromBuildInfo creates an Info from the release number and the build
// information of the binary. the build information can be nil
func fromBuildInfo(number string, bi *debug.BuildInfo) Info {
	var nf Info
	var vcs bool
	var modified bool

	if bi != nil {
		nf.GoVersion = bi.GoVersion
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				nf.Revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if nf.Revision == "" {
		nf.Revision = "no revision information"
	} else if modified {
		nf.Revision = fmt.Sprintf("%s+dirty", nf.Revision)
	}

	switch {
	case number != "":
		nf.Version = number
		nf.Release = true
	case vcs:
		nf.Version = "unreleased"
	default:
		nf.Version = "local"
	}

	return nf
}

var current Info

func init() {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		bi = nil
	}
	current = fromBuildInfo(number, bi)
}

// Current returns information about the build of the running program.
func Current() Info {
	return current
}

// String returns the application name and version in a form suitable for
// display to the user.
func String() string {
	return current.String()
}
