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

package environment

import (
	"github.com/pixelvision8/pv8/hardware/preferences"
)

// Label is used to name the environment
type Label string

// MainEngine is the label used for the main instance of the engine.
const MainEngine = Label("")

// Environment is used to provide context for an engine instance. Particularly
// useful when using more than one engine, for example when rendering audio
// offline alongside the main engine.
type Environment struct {
	Label Label

	// the hardware preferences
	Prefs *preferences.Preferences

	// whether logging is allowed for the environment. only the main
	// environment logs by default
	quiet bool
}

// NewEnvironment is the preferred method of initialisation for the Environment
// type.
//
// The prefs argument can be nil and a new Preferences instance, not backed by
// a file, will be created. Providing a non-nil value allows the preferences of
// more than one engine to be synchronised.
func NewEnvironment(label Label, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label: label,
		quiet: label != MainEngine,
	}

	if prefs == nil {
		var err error
		prefs, err = preferences.NewPreferences("")
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs

	return env, nil
}

// Normalise ensures the environment is in an known default state. Useful for
// testing where the initial state must be the same for every run.
func (env *Environment) Normalise() {
	env.Prefs.SetDefaults()
}

// IsMainEngine returns true if the environment is intended for the main
// engine in the system
func (env *Environment) IsMainEngine() bool {
	return env.Label == MainEngine
}

// IsEngine checks the environment label and returns true if it matches
func (env *Environment) IsEngine(label Label) bool {
	return env.Label == label
}

// SetQuiet prevents or allows log entries being made on behalf of the
// environment.
func (env *Environment) SetQuiet(quiet bool) {
	env.quiet = quiet
}

// AllowLogging implements the logger.Permission interface.
func (env *Environment) AllowLogging() bool {
	return env != nil && !env.quiet
}
