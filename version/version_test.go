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
	"runtime/debug"
	"testing"

	"github.com/pixelvision8/pv8/test"
)

func TestRelease(t *testing.T) {
	nf := fromBuildInfo("v0.1.0", &debug.BuildInfo{
		GoVersion: "go1.23.0",
		Settings: []debug.BuildSetting{
			{Key: "vcs", Value: "git"},
			{Key: "vcs.revision", Value: "abc123"},
		},
	})
	test.ExpectSuccess(t, nf.Release)
	test.ExpectEquality(t, nf.Version, "v0.1.0")
	test.ExpectEquality(t, nf.Revision, "abc123")
	test.ExpectEquality(t, nf.GoVersion, "go1.23.0")
	test.ExpectEquality(t, nf.String(), "PV8 v0.1.0")
}

func TestUnreleased(t *testing.T) {
	nf := fromBuildInfo("", &debug.BuildInfo{
		Settings: []debug.BuildSetting{
			{Key: "vcs", Value: "git"},
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.modified", Value: "true"},
		},
	})
	test.ExpectFailure(t, nf.Release)
	test.ExpectEquality(t, nf.Version, "unreleased")
	test.ExpectEquality(t, nf.String(), "PV8 unreleased (abc123+dirty)")
}

func TestLocal(t *testing.T) {
	nf := fromBuildInfo("", nil)
	test.ExpectFailure(t, nf.Release)
	test.ExpectEquality(t, nf.Version, "local")
	test.ExpectEquality(t, nf.Revision, "no revision information")

	// the running test binary always has a version
	test.ExpectInequality(t, Current().Version, "")
	test.ExpectEquality(t, String(), Current().String())
}
