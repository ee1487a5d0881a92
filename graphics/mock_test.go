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

// mockRenderable satisfies the Renderable interface and records what
// happens to it.
type mockRenderable struct {
	tag      string
	distance float32

	// hit area, axis aligned, in GL screen coordinates
	left, right, bottom, top float32

	renderCount   int
	newFrameCount int
	kickedOut     bool

	lastX, lastY float32
}

func (m *mockRenderable) Render()           { m.renderCount++ }
func (m *mockRenderable) NewFrame()         { m.newFrameCount++ }
func (m *mockRenderable) KickedOut()        { m.kickedOut = true }
func (m *mockRenderable) Tag() string       { return m.tag }
func (m *mockRenderable) Distance() float32 { return m.distance }

func (m *mockRenderable) IsIn(x, y float32) bool {
	m.lastX = x
	m.lastY = y
	return x >= m.left && x <= m.right && y >= m.bottom && y <= m.top
}

// mockGUIRenderable additionally records resolution changes.
type mockGUIRenderable struct {
	mockRenderable

	resolutionChanges int

	oldW, oldH int
	newW, newH int
}

func (m *mockGUIRenderable) ChangedResolution(oldWidth, oldHeight, newWidth, newHeight int) {
	m.resolutionChanges++
	m.oldW = oldWidth
	m.oldH = oldHeight
	m.newW = newWidth
	m.newH = newHeight
}

// mockResource satisfies the Resource interface.
type mockResource struct {
	rebuilt   int
	destroyed int
	kickedOut bool
}

func (m *mockResource) Rebuild()   { m.rebuilt++ }
func (m *mockResource) Destroy()   { m.destroyed++ }
func (m *mockResource) KickedOut() { m.kickedOut = true }

// mockVideo satisfies the Video interface.
type mockVideo struct {
	mockResource

	playing       bool
	renderCount   int
	newFrameCount int
}

func (m *mockVideo) Render()         { m.renderCount++ }
func (m *mockVideo) NewFrame()       { m.newFrameCount++ }
func (m *mockVideo) IsPlaying() bool { return m.playing }
