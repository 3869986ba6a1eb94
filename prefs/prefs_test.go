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

package prefs_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/pixelvision8/pv8/prefs"
	"github.com/pixelvision8/pv8/test"
)

func tmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)
}

func cmpPrefFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("pixels.wrap", &v))
	test.ExpectSuccess(t, dsk.Add("music.loop", &w))
	test.ExpectSuccess(t, dsk.Add("sprites.bottomleft", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "music.loop :: false\npixels.wrap :: true\nsprites.bottomleft :: true\n")
}

func TestIntAndFloat(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Float
	test.ExpectSuccess(t, dsk.Add("display.width", &v))
	test.ExpectSuccess(t, dsk.Add("music.swing", &w))

	test.ExpectSuccess(t, v.Set("256"))
	test.ExpectSuccess(t, w.Set(0.7))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "display.width :: 256\nmusic.swing :: 0.700\n")

	// failure conditions
	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectFailure(t, w.Set("abc"))
}

func TestLoad(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("tilemap.columns", &v))

	// no file yet. the error can be ignored by the caller but it should be
	// the correct sentinel error
	err = dsk.Load(true)
	test.ExpectSuccess(t, errors.Is(err, prefs.ErrNoPrefsFile))

	// the saveOnFirstUse argument means that the file now exists
	_, err = os.Stat(fn)
	test.ExpectSuccess(t, err)

	test.ExpectSuccess(t, v.Set(64))
	test.DemandSuccess(t, dsk.Save())

	test.ExpectSuccess(t, v.Set(0))
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(int), 64)
}

func TestCommandLineOverride(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Float
	test.ExpectSuccess(t, dsk.Add("music.swing", &v))
	test.ExpectSuccess(t, v.Set(0.7))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("music.swing::0.5")
	defer prefs.PopCommandLineStack()

	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(float64), 0.5)
}

// write a bool and then an int from a different prefs.Disk instance. tests
// that the second writing doesn't clobber the results of the first write.
func TestSeparateDisks(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("foo", &w))
	test.ExpectSuccess(t, w.Set(7))
	test.DemandSuccess(t, dsk.Save())

	cmpPrefFile(t, fn, "foo :: 7\ntest :: true\n")
}

func TestIllegalKeys(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectFailure(t, dsk.Add("", &v))
	test.ExpectFailure(t, dsk.Add("a :: b", &v))
	test.ExpectSuccess(t, dsk.Add("a", &v))
	test.ExpectFailure(t, dsk.Add("a", &v))
}

func TestIntRange(t *testing.T) {
	var v prefs.Int
	test.ExpectSuccess(t, v.Set(500))

	_, _, ok := v.Range()
	test.ExpectFailure(t, ok)

	// setting a range clamps the existing value
	v.SetRange(1, 256)
	test.ExpectEquality(t, v.Get().(int), 256)

	lo, hi, ok := v.Range()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, lo, 1)
	test.ExpectEquality(t, hi, 256)

	test.ExpectSuccess(t, v.Set("-10"))
	test.ExpectEquality(t, v.Get().(int), 1)
	test.ExpectSuccess(t, v.Set(64))
	test.ExpectEquality(t, v.Get().(int), 64)

	// reset goes to the nearest value in range
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get().(int), 1)

	// hooks see the clamped value
	var seen int
	v.SetHookPost(func(nv prefs.Value) error {
		seen = nv.(int)
		return nil
	})
	test.ExpectSuccess(t, v.Set(1000))
	test.ExpectEquality(t, seen, 256)

	// inverted bounds are swapped
	var w prefs.Int
	w.SetRange(8, 2)
	lo, hi, _ = w.Range()
	test.ExpectEquality(t, lo, 2)
	test.ExpectEquality(t, hi, 8)
	test.ExpectEquality(t, w.String(), "2")
}
