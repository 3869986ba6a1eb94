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
	"slices"

	"github.com/pixelvision8/pv8/environment"
	"github.com/pixelvision8/pv8/hardware/chips"
	"github.com/pixelvision8/pv8/logger"
)

// Factory functions create an inactive chip.
type Factory func() chips.Chip

type updateEntry struct {
	key  string
	chip chips.Updater
}

type drawEntry struct {
	key  string
	chip chips.Drawer
}

// Engine is the chip manager of the virtual console. It implements the
// chips.Engine interface.
type Engine struct {
	env *environment.Environment

	factories map[string]Factory

	// active chips. the order slice records the registration order
	registry map[string]chips.Chip
	order    []string

	// the capability of a chip is read once at activation and the chip is
	// placed in one or both of these lists
	updaters []updateEntry
	drawers  []drawEntry

	// number of completed frames
	frame int
}

// NewEngine is the preferred method of initialisation for the Engine type.
//
// The env argument can be nil, in which case a new main environment is
// created with default preferences.
func NewEngine(env *environment.Environment) (*Engine, error) {
	if env == nil {
		var err error
		env, err = environment.NewEnvironment(environment.MainEngine, nil)
		if err != nil {
			return nil, err
		}
	}

	return &Engine{
		env:       env,
		factories: make(map[string]Factory),
		registry:  make(map[string]chips.Chip),
	}, nil
}

// Env implements the chips.Engine interface.
func (e *Engine) Env() *environment.Environment {
	return e.env
}

// RegisterFactory associates a Factory with a key. The factory is used by
// GetChip() when there is no active chip for the key. A nil factory removes
// an existing association.
func (e *Engine) RegisterFactory(key string, f Factory) {
	if f == nil {
		delete(e.factories, key)
		return
	}
	e.factories[key] = f
}

// ActivateChip registers the chip under the key and activates it. If a chip is
// already registered under the key it is deactivated and replaced, in which
// case the new chip takes its place at the end of the registration order.
func (e *Engine) ActivateChip(key string, chip chips.Chip) {
	if chip == nil {
		return
	}

	if _, ok := e.registry[key]; ok {
		e.DeactivateChip(key)
	}

	e.registry[key] = chip
	e.order = append(e.order, key)

	capability := chip.Capabilities()

	if capability.Has(chips.CapUpdate) {
		if u, ok := chip.(chips.Updater); ok {
			e.updaters = append(e.updaters, updateEntry{key: key, chip: u})
		} else {
			logger.Logf(e.env, "engine", "%s declares update capability but has no Update() function", key)
		}
	}

	if capability.Has(chips.CapDraw) {
		if d, ok := chip.(chips.Drawer); ok {
			e.drawers = append(e.drawers, drawEntry{key: key, chip: d})
		} else {
			logger.Logf(e.env, "engine", "%s declares draw capability but has no Draw() function", key)
		}
	}

	chip.Activate(e)

	logger.Logf(e.env, "engine", "activated %s (%s)", key, capability)
}

// DeactivateChip removes the chip registered under the key from the engine
// and deactivates it. Does nothing if there is no chip with that key.
func (e *Engine) DeactivateChip(key string) {
	chip, ok := e.registry[key]
	if !ok {
		return
	}

	delete(e.registry, key)
	e.order = slices.DeleteFunc(e.order, func(k string) bool { return k == key })
	e.updaters = slices.DeleteFunc(e.updaters, func(u updateEntry) bool { return u.key == key })
	e.drawers = slices.DeleteFunc(e.drawers, func(d drawEntry) bool { return d.key == key })

	chip.Deactivate()

	logger.Logf(e.env, "engine", "deactivated %s", key)
}

// GetChip implements the chips.Engine interface.
//
// If there is no active chip for the key and activate is true, a chip is
// created with the factory registered for that key and activated. The
// function returns nil if no chip can be found or created.
func (e *Engine) GetChip(key string, activate bool) chips.Chip {
	if chip, ok := e.registry[key]; ok {
		return chip
	}

	if !activate {
		return nil
	}

	f, ok := e.factories[key]
	if !ok {
		logger.Logf(e.env, "engine", "no chip available for %s", key)
		return nil
	}

	chip := f()
	if chip == nil {
		logger.Logf(e.env, "engine", "factory for %s did not create a chip", key)
		return nil
	}

	e.ActivateChip(key, chip)

	return chip
}

// HasChip returns true if a chip is registered for the key.
func (e *Engine) HasChip(key string) bool {
	_, ok := e.registry[key]
	return ok
}

// Chips returns the keys of all active chips in registration order.
func (e *Engine) Chips() []string {
	return slices.Clone(e.order)
}

// Init is broadcast to all chips in registration order.
func (e *Engine) Init() {
	for _, key := range e.order {
		e.registry[key].Init()
	}
}

// Reset is broadcast to all chips in registration order. The frame counter is
// also reset.
func (e *Engine) Reset() {
	for _, key := range e.order {
		e.registry[key].Reset()
	}
	e.frame = 0
}

// Shutdown is broadcast to all chips in registration order.
func (e *Engine) Shutdown() {
	for _, key := range e.order {
		e.registry[key].Shutdown()
	}
}

// Update calls the Update() function of every chip with the update
// capability, in registration order.
func (e *Engine) Update(deltaTime float64) {
	for _, u := range e.updaters {
		u.chip.Update(deltaTime)
	}
}

// Draw calls the Draw() function of every chip with the draw capability, in
// registration order.
func (e *Engine) Draw() {
	for _, d := range e.drawers {
		d.chip.Draw()
	}
}

// Step runs a single frame. The Update phase always completes before the Draw
// phase begins.
func (e *Engine) Step(deltaTime float64) {
	e.Update(deltaTime)
	e.Draw()
	e.frame++
}

// Frame returns the number of frames completed with Step() since the engine
// was created or last reset.
func (e *Engine) Frame() int {
	return e.frame
}
