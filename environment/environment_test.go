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

package environment_test

import (
	"strings"
	"testing"

	"github.com/pixelvision8/pv8/environment"
	"github.com/pixelvision8/pv8/hardware/preferences"
	"github.com/pixelvision8/pv8/logger"
	"github.com/pixelvision8/pv8/test"
)

func TestLoggingPermission(t *testing.T) {
	main, err := environment.NewEnvironment(environment.MainEngine, nil)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, main.IsMainEngine())

	render, err := environment.NewEnvironment("render", main.Prefs)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, render.IsMainEngine())
	test.ExpectSuccess(t, render.IsEngine("render"))

	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Log(main, "env", "main")
	log.Log(render, "env", "render")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "env: main\n")

	render.SetQuiet(false)
	log.Log(render, "env", "render")
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "env: render\n")
}

func TestNormalise(t *testing.T) {
	env, err := environment.NewEnvironment(environment.MainEngine, nil)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, env.Prefs.SoundChannels.Set(2))
	env.Normalise()
	test.ExpectEquality(t, preferences.Int(&env.Prefs.SoundChannels), preferences.DefaultSoundChannels)
}
