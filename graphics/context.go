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
	"github.com/hesper-engine/hesper/curated"
	"github.com/hesper-engine/hesper/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// destroyQueuedResources releases the GPU state of everything in the
// resource queues, in reverse dependency order. The queue entries stay
// queued so the resources can be rebuilt after the context change.
//
// MUST ONLY be called from the rendering thread.
func (mgr *Manager) destroyQueuedResources() {
	mgr.videos.crit.Lock()
	mgr.videos.eachLocked(func(v Video) {
		v.Destroy()
	})
	mgr.videos.crit.Unlock()

	mgr.listContainers.crit.Lock()
	mgr.listContainers.eachLocked(func(l Resource) {
		l.Destroy()
	})
	mgr.listContainers.crit.Unlock()

	mgr.textures.crit.Lock()
	mgr.textures.eachLocked(func(t Resource) {
		t.Destroy()
	})
	mgr.textures.crit.Unlock()
}

// rebuildContext restores the scene state and the GPU state of every
// queued resource after a context change. Textures first because the
// display lists reference them, videos last.
//
// MUST ONLY be called from the rendering thread.
func (mgr *Manager) rebuildContext() {
	if err := mgr.setupScene(); err != nil {
		mgr.fatal(err)
		return
	}

	mgr.textures.crit.Lock()
	mgr.textures.eachLocked(func(t Resource) {
		t.Rebuild()
	})
	mgr.textures.crit.Unlock()

	// display list recording must not pick up a stale modelview matrix
	gl.MatrixMode(gl.MODELVIEW)
	gl.PushMatrix()
	gl.LoadIdentity()

	mgr.listContainers.crit.Lock()
	mgr.listContainers.eachLocked(func(l Resource) {
		l.Rebuild()
	})
	mgr.listContainers.crit.Unlock()

	gl.PopMatrix()

	mgr.videos.crit.Lock()
	mgr.videos.eachLocked(func(v Video) {
		v.Rebuild()
	})
	mgr.videos.crit.Unlock()
}

// notifyResolutionChange tells every GUI-front object that cares that the
// surface dimensions have changed, so it can re-anchor itself.
func (mgr *Manager) notifyResolutionChange(oldWidth, oldHeight, newWidth, newHeight int) {
	mgr.guiFront.crit.Lock()
	defer mgr.guiFront.crit.Unlock()

	mgr.guiFront.eachLocked(func(r Renderable) {
		if g, ok := r.(GUIRenderable); ok {
			g.ChangedResolution(oldWidth, oldHeight, newWidth, newHeight)
		}
	})
}

// setFSAA is the direct implementation of SetFSAA. It recreates the
// window and the GL context because the multisample attributes of a
// surface are fixed at creation time.
//
// MUST ONLY be called from the rendering thread.
func (mgr *Manager) setFSAA(level int) bool {
	if mgr.fsaa == level {
		// nothing to do
		return true
	}

	if level < 0 || level > mgr.fsaaMax {
		return false
	}

	mgr.frame.Lock()
	defer mgr.frame.Unlock()

	oldFSAA := mgr.fsaa

	mgr.destroyQueuedResources()
	mgr.destroySurface()

	err := mgr.createSurface(mgr.width, mgr.height, mgr.fullScreen, level)
	if err != nil {
		logger.Logf(logger.Allow, "graphics", "FSAA x%d: %v", level, err)

		// revert to the previous level
		err = mgr.createSurface(mgr.width, mgr.height, mgr.fullScreen, oldFSAA)
		if err != nil {
			mgr.fatal(curated.Errorf(FailedModeRevert, err))
			return false
		}
	}

	mgr.rebuildContext()

	return mgr.fsaa == level
}

// setFullScreen is the direct implementation of SetFullScreen.
//
// MUST ONLY be called from the rendering thread.
func (mgr *Manager) setFullScreen(fullscreen bool) bool {
	if mgr.fullScreen == fullscreen {
		return true
	}

	mgr.frame.Lock()
	defer mgr.frame.Unlock()

	fsFlags := map[bool]uint32{false: 0, true: sdl.WINDOW_FULLSCREEN_DESKTOP}

	mgr.destroyQueuedResources()

	err := mgr.window.SetFullscreen(fsFlags[fullscreen])
	if err != nil {
		logger.Logf(logger.Allow, "graphics", "fullscreen: %v", err)

		err = mgr.window.SetFullscreen(fsFlags[mgr.fullScreen])
		if err != nil {
			mgr.fatal(curated.Errorf(FailedModeRevert, err))
			return false
		}

		mgr.rebuildContext()
		return false
	}

	mgr.fullScreen = fullscreen

	w, h := mgr.window.GLGetDrawableSize()
	mgr.setSurfaceSize(int(w), int(h))

	mgr.rebuildContext()

	return true
}

// setWindowSize is the direct implementation of SetWindowSize. The window
// and the context are recreated at the new dimensions; a failure falls
// back to the previous dimensions.
//
// MUST ONLY be called from the rendering thread.
func (mgr *Manager) setWindowSize(width, height int) (int, int) {
	if width == mgr.width && height == mgr.height {
		return mgr.width, mgr.height
	}

	mgr.frame.Lock()
	defer mgr.frame.Unlock()

	oldWidth := mgr.width
	oldHeight := mgr.height

	mgr.destroyQueuedResources()
	mgr.destroySurface()

	err := mgr.createSurface(width, height, mgr.fullScreen, mgr.fsaa)
	if err != nil {
		logger.Logf(logger.Allow, "graphics", "resize %dx%d: %v", width, height, err)

		err = mgr.createSurface(oldWidth, oldHeight, mgr.fullScreen, mgr.fsaa)
		if err != nil {
			mgr.fatal(curated.Errorf(FailedModeRevert, err))
			return 0, 0
		}
	}

	mgr.rebuildContext()

	if mgr.width != oldWidth || mgr.height != oldHeight {
		mgr.notifyResolutionChange(oldWidth, oldHeight, mgr.width, mgr.height)
	}

	return mgr.width, mgr.height
}
