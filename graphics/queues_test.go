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

func TestClearTextureQueue(t *testing.T) {
	mgr := &Manager{}

	a := &mockResource{}
	b := &mockResource{}
	mgr.AddTexture(a)
	mgr.AddTexture(b)

	mgr.ClearTextureQueue()

	test.ExpectEquality(t, mgr.textures.Len(), 0)
	test.ExpectEquality(t, a.destroyed, 1)
	test.ExpectEquality(t, a.kickedOut, true)
	test.ExpectEquality(t, b.destroyed, 1)
	test.ExpectEquality(t, b.kickedOut, true)
}

func TestClearRenderQueue(t *testing.T) {
	mgr := &Manager{}

	obj := &mockRenderable{tag: "obj"}
	gui := &mockRenderable{tag: "gui"}
	mgr.AddRenderable(ObjectQueue, obj)
	mgr.AddRenderable(GUIFrontQueue, gui)

	mgr.ClearRenderQueue()

	test.ExpectEquality(t, mgr.objects.Len(), 0)
	test.ExpectEquality(t, mgr.guiFront.Len(), 0)
	test.ExpectEquality(t, obj.kickedOut, true)
	test.ExpectEquality(t, gui.kickedOut, true)
}

func TestClearVideoQueue(t *testing.T) {
	mgr := &Manager{}

	v := &mockVideo{playing: true}
	mgr.AddVideo(v)
	test.ExpectEquality(t, mgr.videos.Len(), 1)

	mgr.ClearVideoQueue()

	test.ExpectEquality(t, mgr.videos.Len(), 0)
	test.ExpectEquality(t, v.destroyed, 1)
	test.ExpectEquality(t, v.kickedOut, true)

	// clearing the queue destroys GPU state directly. it must not go
	// through the video's render path
	test.ExpectEquality(t, v.renderCount, 0)
}

func TestRenderQueueSelector(t *testing.T) {
	mgr := &Manager{}

	r := &mockRenderable{}
	tok := mgr.AddRenderable(GUIFrontQueue, r)
	test.ExpectEquality(t, mgr.guiFront.Len(), 1)
	test.ExpectEquality(t, mgr.objects.Len(), 0)

	mgr.RemoveRenderable(GUIFrontQueue, tok)
	test.ExpectEquality(t, mgr.guiFront.Len(), 0)

	defer func() {
		test.ExpectSuccess(t, recover() != nil)
	}()
	mgr.renderQueue(RenderQueue(99))
}
