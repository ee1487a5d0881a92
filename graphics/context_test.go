// This file is part of Hesper.
//
// Hesper is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Hesper is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Hesper.  If not, see <https://www.gnu.org/licenses/>.

package graphics

import (
	"testing"

	"github.com/hesper-engine/hesper/test"
)

func TestFSAARequestBounds(t *testing.T) {
	mgr := &Manager{fsaa: 2, fsaaMax: 8}

	// asking for the current level succeeds without touching anything
	test.ExpectEquality(t, mgr.setFSAA(2), true)
	test.ExpectEquality(t, mgr.fsaa, 2)

	// a level above the probed maximum fails without touching anything
	test.ExpectEquality(t, mgr.setFSAA(16), false)
	test.ExpectEquality(t, mgr.fsaa, 2)

	test.ExpectEquality(t, mgr.setFSAA(-1), false)
	test.ExpectEquality(t, mgr.fsaa, 2)
}

func TestWindowSizeNoop(t *testing.T) {
	mgr := &Manager{}
	mgr.setSurfaceSize(800, 600)

	gui := &mockGUIRenderable{}
	mgr.AddRenderable(GUIFrontQueue, gui)

	// asking for the current size is a no-op. no teardown, no
	// notification
	w, h := mgr.setWindowSize(800, 600)
	test.ExpectEquality(t, w, 800)
	test.ExpectEquality(t, h, 600)
	test.ExpectEquality(t, gui.resolutionChanges, 0)
}

func TestNotifyResolutionChange(t *testing.T) {
	mgr := &Manager{}

	gui := &mockGUIRenderable{}
	plain := &mockRenderable{}
	world := &mockGUIRenderable{}

	mgr.AddRenderable(GUIFrontQueue, gui)
	mgr.AddRenderable(GUIFrontQueue, plain)

	// world objects are not notified, even when they could receive it
	mgr.AddRenderable(ObjectQueue, world)

	mgr.notifyResolutionChange(800, 600, 1024, 768)

	test.DemandEquality(t, gui.resolutionChanges, 1)
	test.ExpectEquality(t, gui.oldW, 800)
	test.ExpectEquality(t, gui.oldH, 600)
	test.ExpectEquality(t, gui.newW, 1024)
	test.ExpectEquality(t, gui.newH, 768)

	test.ExpectEquality(t, world.resolutionChanges, 0)
}
