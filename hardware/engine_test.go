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

package hardware_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/pixelvision8/pv8/hardware"
	"github.com/pixelvision8/pv8/hardware/chips"
	"github.com/pixelvision8/pv8/hardware/govern"
	"github.com/pixelvision8/pv8/test"
)

// recorder collects the calls made to the test chips
type recorder struct {
	calls []string
}

func (r *recorder) add(s string) {
	r.calls = append(r.calls, s)
}

func (r *recorder) String() string {
	return strings.Join(r.calls, " ")
}

func (r *recorder) reset() {
	r.calls = r.calls[:0]
}

type testChip struct {
	chips.Base
	name       string
	capability chips.Capability
	rec        *recorder
}

func newTestChip(name string, capability chips.Capability, rec *recorder) *testChip {
	return &testChip{name: name, capability: capability, rec: rec}
}

func (ch *testChip) Activate(engine chips.Engine) {
	ch.Base.Activate(engine)
	ch.Configure()
}

func (ch *testChip) Configure() {
	ch.rec.add(ch.name + ":configure")
}

func (ch *testChip) Capabilities() chips.Capability {
	return ch.capability
}

func (ch *testChip) Init() {
	ch.rec.add(ch.name + ":init")
}

func (ch *testChip) Reset() {
	ch.rec.add(ch.name + ":reset")
}

func (ch *testChip) Shutdown() {
	ch.rec.add(ch.name + ":shutdown")
}

func (ch *testChip) Update(_ float64) {
	ch.rec.add(ch.name + ":update")
}

func (ch *testChip) Draw() {
	ch.rec.add(ch.name + ":draw")
}

// a chip that claims capabilities it doesn't implement
type inertChip struct {
	chips.Base
}

func (ch *inertChip) Configure() {}

func (ch *inertChip) Capabilities() chips.Capability {
	return chips.CapUpdate | chips.CapDraw
}

func newEngine(t *testing.T) *hardware.Engine {
	t.Helper()
	e, err := hardware.NewEngine(nil)
	test.DemandSuccess(t, err)
	e.Env().SetQuiet(true)
	return e
}

func TestCapability(t *testing.T) {
	c := chips.CapUpdate | chips.CapDraw
	test.ExpectSuccess(t, c.Has(chips.CapUpdate))
	test.ExpectSuccess(t, c.Has(chips.CapDraw))
	test.ExpectFailure(t, chips.CapDraw.Has(chips.CapUpdate))
	test.ExpectEquality(t, c.String(), "update draw")
	test.ExpectEquality(t, chips.CapNone.String(), "none")
}

func TestRegistrationOrder(t *testing.T) {
	e := newEngine(t)
	rec := &recorder{}

	a := newTestChip("a", chips.CapUpdate, rec)
	e.ActivateChip("a", a)
	e.ActivateChip("b", newTestChip("b", chips.CapDraw, rec))
	e.ActivateChip("c", newTestChip("c", chips.CapUpdate|chips.CapDraw, rec))
	e.ActivateChip("d", newTestChip("d", chips.CapNone, rec))

	// activation configures the chip
	test.ExpectEquality(t, rec.String(), "a:configure b:configure c:configure d:configure")
	test.ExpectSuccess(t, a.Active())
	test.ExpectEquality(t, a.Engine(), chips.Engine(e))

	// the update phase completes before the draw phase
	rec.reset()
	e.Step(1.0 / 60.0)
	test.ExpectEquality(t, rec.String(), "a:update c:update b:draw c:draw")
	test.ExpectEquality(t, e.Frame(), 1)

	// broadcasts go to every chip regardless of capability
	rec.reset()
	e.Init()
	e.Reset()
	e.Shutdown()
	test.ExpectEquality(t, rec.String(), "a:init b:init c:init d:init "+
		"a:reset b:reset c:reset d:reset "+
		"a:shutdown b:shutdown c:shutdown d:shutdown")
	test.ExpectEquality(t, e.Frame(), 0)

	test.ExpectEquality(t, fmt.Sprint(e.Chips()), "[a b c d]")
}

func TestDeactivate(t *testing.T) {
	e := newEngine(t)
	rec := &recorder{}

	a := newTestChip("a", chips.CapUpdate, rec)
	e.ActivateChip("a", a)
	e.ActivateChip("b", newTestChip("b", chips.CapUpdate, rec))

	e.DeactivateChip("a")
	test.ExpectFailure(t, a.Active())
	test.ExpectFailure(t, e.HasChip("a"))
	test.ExpectEquality(t, e.GetChip("a", false), nil)

	rec.reset()
	e.Update(0.1)
	test.ExpectEquality(t, rec.String(), "b:update")

	// reactivation places the chip at the end of the registration order
	e.ActivateChip("a", a)
	rec.reset()
	e.Update(0.1)
	test.ExpectEquality(t, rec.String(), "b:update a:update")
	test.ExpectEquality(t, fmt.Sprint(e.Chips()), "[b a]")

	// deactivating an unknown key does nothing
	e.DeactivateChip("z")
	test.ExpectEquality(t, len(e.Chips()), 2)
}

func TestReplaceChip(t *testing.T) {
	e := newEngine(t)
	rec := &recorder{}

	first := newTestChip("first", chips.CapUpdate, rec)
	e.ActivateChip("a", first)
	e.ActivateChip("b", newTestChip("b", chips.CapUpdate, rec))
	e.ActivateChip("a", newTestChip("second", chips.CapUpdate, rec))

	test.ExpectFailure(t, first.Active())

	rec.reset()
	e.Update(0.1)
	test.ExpectEquality(t, rec.String(), "b:update second:update")
}

func TestFactory(t *testing.T) {
	e := newEngine(t)
	rec := &recorder{}

	var created int
	e.RegisterFactory("lazy", func() chips.Chip {
		created++
		return newTestChip("lazy", chips.CapDraw, rec)
	})

	// no activation requested
	test.ExpectEquality(t, e.GetChip("lazy", false), nil)
	test.ExpectEquality(t, created, 0)

	ch := e.GetChip("lazy", true)
	test.DemandInequality(t, ch, nil)
	test.ExpectEquality(t, created, 1)
	test.ExpectEquality(t, rec.String(), "lazy:configure")

	// the same instance is returned on subsequent calls
	test.ExpectEquality(t, e.GetChip("lazy", true), ch)
	test.ExpectEquality(t, created, 1)

	rec.reset()
	e.Draw()
	test.ExpectEquality(t, rec.String(), "lazy:draw")

	// unknown keys and factories that fail are not fatal
	test.ExpectEquality(t, e.GetChip("unknown", true), nil)
	e.RegisterFactory("broken", func() chips.Chip { return nil })
	test.ExpectEquality(t, e.GetChip("broken", true), nil)
	test.ExpectFailure(t, e.HasChip("broken"))

	// removing the factory
	e.RegisterFactory("broken", nil)
	test.ExpectEquality(t, e.GetChip("broken", true), nil)
}

func TestMissingCapabilityFunctions(t *testing.T) {
	e := newEngine(t)
	e.ActivateChip("inert", &inertChip{})
	test.ExpectSuccess(t, e.HasChip("inert"))

	// must not panic
	e.Step(0.1)
	test.ExpectEquality(t, e.Frame(), 1)
}

func TestRun(t *testing.T) {
	e := newEngine(t)
	rec := &recorder{}
	e.ActivateChip("a", newTestChip("a", chips.CapUpdate, rec))

	var checks int
	err := e.Run(0.1, func() (govern.State, error) {
		checks++
		switch {
		case checks < 5:
			return govern.Running, nil
		case checks < 8:
			return govern.Paused, nil
		}
		return govern.Ending, nil
	})
	test.ExpectSuccess(t, err)

	// five running frames (the loop starts in the running state) and three
	// paused iterations
	test.ExpectEquality(t, e.Frame(), 5)
	test.ExpectEquality(t, checks, 8)

	// errors from the continue check are returned
	errCheck := errors.New("check failed")
	err = e.Run(0.1, func() (govern.State, error) {
		return govern.Running, errCheck
	})
	test.ExpectSuccess(t, errors.Is(err, errCheck))
	test.ExpectEquality(t, e.Frame(), 6)
}

func TestRunForFrameCount(t *testing.T) {
	e := newEngine(t)
	rec := &recorder{}
	e.ActivateChip("a", newTestChip("a", chips.CapUpdate, rec))

	test.DemandSuccess(t, e.RunForFrameCount(10, 0.1, nil))
	test.ExpectEquality(t, e.Frame(), 10)
	test.ExpectEquality(t, len(rec.calls), 11)

	var last int
	err := e.RunForFrameCount(10, 0.1, func(frame int) (govern.State, error) {
		last = frame
		if frame == 13 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, last, 13)
	test.ExpectEquality(t, e.Frame(), 13)
}

func TestRunStates(t *testing.T) {
	e := newEngine(t)

	// initialising ends the loop in the same way as ending
	err := e.RunForFrameCount(10, 0.1, func(_ int) (govern.State, error) {
		return govern.Initialising, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, e.Frame(), 1)

	// a state that isn't listed is an error
	err = e.RunForFrameCount(10, 0.1, func(_ int) (govern.State, error) {
		return govern.State(99), nil
	})
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, e.Frame(), 2)

	err = e.Run(0.1, func() (govern.State, error) {
		return govern.State(-1), nil
	})
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, e.Frame(), 3)
}
