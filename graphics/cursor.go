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

import "github.com/veandco/go-sdl2/sdl"

// CursorState is a pending change to the visibility of the system cursor.
type CursorState int

// List of valid CursorState values.
const (
	// no change pending
	CursorStay CursorState = iota

	CursorSwitchOn
	CursorSwitchOff
)

// SetCursor replaces the software cursor. The cursor is drawn by the
// frame renderer on top of everything else; a nil cursor means no
// software cursor. Blocks until the frame in flight, if any, has
// completed.
//
// MUST NOT be called from the rendering thread.
func (mgr *Manager) SetCursor(cursor Cursor) {
	mgr.frame.Lock()
	defer mgr.frame.Unlock()
	mgr.cursor = cursor
}

// ShowCursor queues a visibility change of the system cursor. The change
// is applied by the frame renderer at the start of the next frame.
//
// Callable from any goroutine.
func (mgr *Manager) ShowCursor(state CursorState) {
	mgr.cursorCrit.Lock()
	defer mgr.cursorCrit.Unlock()
	mgr.cursorState = state
}

// handleCursorSwitch consumes a pending cursor visibility change. a
// consumed change resets the state to CursorStay so it is applied exactly
// once.
func (mgr *Manager) handleCursorSwitch() {
	mgr.cursorCrit.Lock()
	defer mgr.cursorCrit.Unlock()

	switch mgr.cursorState {
	case CursorSwitchOn:
		mgr.showCursor(true)
	case CursorSwitchOff:
		mgr.showCursor(false)
	}

	mgr.cursorState = CursorStay
}

func sdlShowCursor(show bool) {
	if show {
		_, _ = sdl.ShowCursor(sdl.ENABLE)
	} else {
		_, _ = sdl.ShowCursor(sdl.DISABLE)
	}
}
