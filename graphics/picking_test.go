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

func TestPickTopmost(t *testing.T) {
	mgr := &Manager{}
	mgr.setSurfaceSize(800, 600)

	// both objects cover the centre of the screen. the nearer one draws
	// later so it is on top and wins the pick
	behind := &mockRenderable{
		tag: "behind", distance: 10,
		left: -100, right: 100, bottom: -100, top: 100,
	}
	front := &mockRenderable{
		tag: "front", distance: 1,
		left: -50, right: 50, bottom: -50, top: 50,
	}

	mgr.AddRenderable(GUIFrontQueue, behind)
	mgr.AddRenderable(GUIFrontQueue, front)

	test.ExpectEquality(t, mgr.ObjectAt(400, 300), "front")

	// outside the front object but inside the one behind it
	test.ExpectEquality(t, mgr.ObjectAt(475, 300), "behind")

	// outside both
	test.ExpectEquality(t, mgr.ObjectAt(700, 50), "")
}

func TestPickEmptyTagSkipped(t *testing.T) {
	mgr := &Manager{}
	mgr.setSurfaceSize(800, 600)

	tagged := &mockRenderable{
		tag: "tagged", distance: 10,
		left: -100, right: 100, bottom: -100, top: 100,
	}
	untagged := &mockRenderable{
		distance: 1,
		left:     -100, right: 100, bottom: -100, top: 100,
	}

	mgr.AddRenderable(GUIFrontQueue, tagged)
	mgr.AddRenderable(GUIFrontQueue, untagged)

	// the untagged object is on top but cannot be picked
	test.ExpectEquality(t, mgr.ObjectAt(400, 300), "tagged")
}

func TestPickCoordinateMapping(t *testing.T) {
	mgr := &Manager{}
	mgr.setSurfaceSize(800, 600)

	r := &mockRenderable{tag: "r", left: -1, right: 1, bottom: -1, top: 1}
	mgr.AddRenderable(GUIFrontQueue, r)

	// centre of the window maps to the GL origin
	test.ExpectEquality(t, mgr.ObjectAt(400, 300), "r")
	test.ExpectEquality(t, r.lastX, 0.0)
	test.ExpectEquality(t, r.lastY, 0.0)

	// top left of the window
	_ = mgr.ObjectAt(0, 0)
	test.ExpectEquality(t, r.lastX, -400.0)
	test.ExpectEquality(t, r.lastY, 300.0)

	// bottom right of the window
	_ = mgr.ObjectAt(800, 600)
	test.ExpectEquality(t, r.lastX, 400.0)
	test.ExpectEquality(t, r.lastY, -300.0)
}

// picking may run from any goroutine while the rendering thread is
// changing the surface dimensions. exercised for the race detector.
func TestPickDuringResize(t *testing.T) {
	mgr := &Manager{}
	mgr.setSurfaceSize(800, 600)

	r := &mockRenderable{
		tag:  "r",
		left: -10000, right: 10000, bottom: -10000, top: 10000,
	}
	mgr.AddRenderable(GUIFrontQueue, r)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			_ = mgr.ObjectAt(10, 10)
		}
		close(done)
	}()

	for i := 0; i < 1000; i++ {
		mgr.setSurfaceSize(800+(i%2), 600)
	}
	<-done

	test.ExpectEquality(t, mgr.ObjectAt(10, 10), "r")
}
