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

// ObjectAt returns the tag of the topmost object at the given window
// coordinates, or the empty string if there is nothing there. Window
// coordinates have their origin at the top left, y growing downwards.
//
// Only GUI-front objects are considered for now. Picking world objects
// needs an unproject through the scene transform and a hit test against
// world geometry; until a caller needs that, the world queue is not
// scanned.
//
// Callable from any goroutine.
func (mgr *Manager) ObjectAt(x, y float32) string {
	width, height := mgr.surfaceSize()

	// window coordinates to GL screen coordinates: origin at the centre
	// of the surface, y growing upwards
	glX := x - float32(width)/2.0
	glY := (float32(height) - y) - float32(height)/2.0

	mgr.guiFront.crit.Lock()
	gui := mgr.guiFront.snapshotLocked()
	mgr.guiFront.crit.Unlock()

	sortRenderables(gui)

	return pickFront(gui, glX, glY)
}

// pickFront scans draw-ordered objects from topmost down and returns the
// tag of the first hit. Untagged objects are not pickable.
func pickFront(sorted []Renderable, x, y float32) string {
	for i := len(sorted) - 1; i >= 0; i-- {
		o := sorted[i]
		if o.Tag() == "" {
			continue
		}
		if o.IsIn(x, y) {
			return o.Tag()
		}
	}
	return ""
}
