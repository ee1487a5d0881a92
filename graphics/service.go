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
	"github.com/veandco/go-sdl2/sdl"
)

// Service runs one pass of the rendering thread: posted requests first,
// then the SDL event queue, then a frame. Returns false once the manager
// should stop, either because quit was requested or because a fatal error
// has occurred.
//
// MUST ONLY be called from the rendering thread, in a loop:
//
//	for mgr.Service() {
//	}
func (mgr *Manager) Service() bool {
	if !mgr.ready {
		return false
	}

	mgr.polling.serviceRequests()

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev.(type) {
		case *sdl.QuitEvent:
			mgr.quit.Store(true)
		}
	}

	mgr.RenderFrame()

	return mgr.ready && !mgr.quit.Load()
}

// Quit asks the service loop to end after its current pass.
//
// Callable from any goroutine.
func (mgr *Manager) Quit() {
	mgr.quit.Store(true)
}
