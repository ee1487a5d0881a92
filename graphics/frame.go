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
	"github.com/go-gl/gl/v2.1/gl"
)

// RenderFrame attempts one frame. Abandoned GPU handles are always
// deleted, even when the frame itself is skipped. If the frame lock is
// held by an outside goroutine the frame is dropped rather than waited
// for; dropped frames are the backpressure policy, there is no queueing
// of render work.
//
// MUST ONLY be called from the rendering thread.
func (mgr *Manager) RenderFrame() {
	mgr.abandoned.drain()

	if !mgr.frame.TryLock() {
		return
	}
	defer mgr.frame.Unlock()

	mgr.handleCursorSwitch()

	if mgr.fsaa > 0 {
		gl.Enable(gl.MULTISAMPLE)
	}

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	// queued videos have absolute priority. nothing else renders while a
	// video is playing
	if mgr.renderVideos() {
		mgr.finishFrame()
		return
	}

	mgr.objects.crit.Lock()
	objects := mgr.objects.snapshotLocked()
	mgr.objects.crit.Unlock()

	mgr.guiFront.crit.Lock()
	gui := mgr.guiFront.snapshotLocked()
	mgr.guiFront.crit.Unlock()

	// every object gets its frame tick before anything draws
	for _, o := range objects {
		o.NewFrame()
	}
	for _, g := range gui {
		g.NewFrame()
	}

	sortRenderables(objects)
	sortRenderables(gui)

	mgr.renderWorld(objects)
	mgr.renderGUIFront(gui)

	mgr.finishFrame()
}

// renderVideos renders the queued videos, evicting the ones that have
// finished playing. Returns false immediately if no videos are queued.
func (mgr *Manager) renderVideos() bool {
	mgr.videos.crit.Lock()
	defer mgr.videos.crit.Unlock()

	if mgr.videos.count == 0 {
		return false
	}

	mgr.videoProjection(mgr.width, mgr.height)

	for _, tok := range mgr.videos.snapshotTokensLocked() {
		v := mgr.videos.slots[tok].item
		v.NewFrame()
		v.Render()

		if !v.IsPlaying() {
			v.Destroy()
			v.KickedOut()
			mgr.videos.removeLocked(tok)
		}
	}

	return true
}

// glVideoProjection is the pixel-to-clip projection for video frames.
// videos render in screen coordinates.
func glVideoProjection(width, height int) {
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	gl.Scalef(2.0/float32(width), 2.0/float32(height), 0.0)

	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()
}

// renderWorld renders the world objects back to front with the scene
// projection.
func (mgr *Manager) renderWorld(objects []Renderable) {
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	gl.Viewport(0, 0, int32(mgr.width), int32(mgr.height))
	perspective(60.0, float32(mgr.width)/float32(mgr.height), 1.0, 1000.0)

	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()

	for _, o := range objects {
		gl.PushMatrix()
		o.Render()
		gl.PopMatrix()
	}
}

// renderGUIFront renders the GUI-front objects and the cursor in screen
// space, in front of the world. depth testing is off so GUI layering is
// purely draw order.
func (mgr *Manager) renderGUIFront(gui []Renderable) {
	gl.Disable(gl.DEPTH_TEST)

	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	gl.Scalef(2.0/float32(mgr.width), 2.0/float32(mgr.height), 0.0)

	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()

	for _, g := range gui {
		gl.PushMatrix()
		g.Render()
		gl.PopMatrix()
	}

	// the cursor renders last, in a coordinate system with the origin at
	// the top left of the surface
	if mgr.cursor != nil {
		gl.LoadIdentity()
		gl.Translatef(-float32(mgr.width)/2.0, float32(mgr.height)/2.0, 0.0)
		mgr.cursor.Render()
	}

	gl.Enable(gl.DEPTH_TEST)
}

// finishFrame swaps the buffers, captures a screenshot if one was asked
// for and ticks the FPS counter.
func (mgr *Manager) finishFrame() {
	mgr.window.GLSwap()

	if mgr.takeScreenshot {
		mgr.captureScreenshot()
		mgr.takeScreenshot = false
	}

	// leave multisampling as the frame found it
	if mgr.fsaa > 0 {
		gl.Disable(gl.MULTISAMPLE)
	}

	mgr.fps.FinishedFrame()
}
