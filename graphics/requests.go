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

// The exported mode-change functions. Mode changes destroy and recreate
// GPU state so they must run on the rendering thread; these functions
// post the request and block until it has been serviced, which happens
// between frames.
//
// MUST NOT be called from the rendering thread. Rendering-thread code
// calls the unexported direct implementations instead.

// SetFSAA changes the antialiasing level of the surface. Returns true if
// the surface now has the requested level. Requesting a level above
// MaxFSAA() fails without touching the surface.
func (mgr *Manager) SetFSAA(level int) bool {
	var ok bool
	mgr.polling.post(func() {
		ok = mgr.setFSAA(level)
	})
	return ok
}

// SetFullScreen switches the surface between fullscreen and windowed
// mode. Returns true if the surface is now in the requested mode.
func (mgr *Manager) SetFullScreen(fullscreen bool) bool {
	var ok bool
	mgr.polling.post(func() {
		ok = mgr.setFullScreen(fullscreen)
	})
	return ok
}

// ToggleFullScreen switches the surface to the opposite of its current
// fullscreen state. Returns true if the switch succeeded.
func (mgr *Manager) ToggleFullScreen() bool {
	var ok bool
	mgr.polling.post(func() {
		ok = mgr.setFullScreen(!mgr.fullScreen)
	})
	return ok
}

// SetWindowSize changes the dimensions of the surface. Returns the
// dimensions the surface actually ended up with, which are the previous
// ones if the change failed.
func (mgr *Manager) SetWindowSize(width, height int) (int, int) {
	var w, h int
	mgr.polling.post(func() {
		w, h = mgr.setWindowSize(width, height)
	})
	return w, h
}
