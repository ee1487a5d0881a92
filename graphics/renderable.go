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

// Renderable is an object that can be queued for drawing by the Manager.
// The Manager holds only a reference; removal from a queue never destroys
// the object.
//
// The frame renderer works from a snapshot of the queue, so Render() and
// NewFrame() run without the queue's critical section held; a renderable
// may remove itself from its queue during either call. All methods except
// KickedOut() are called only from the rendering thread.
type Renderable interface {
	// Render draws the object. GL state save/restore around the call is
	// the Manager's responsibility
	Render()

	// NewFrame notifies the object that a new frame is about to be drawn
	NewFrame()

	// KickedOut notifies the object that it has been removed from its
	// queue without its own consent
	KickedOut()

	// Distance of the object from the viewer. draw order is by descending
	// distance
	Distance() float32

	// Tag identifies the object during picking. an empty tag makes the
	// object invisible to picking
	Tag() string

	// IsIn returns true if the GL coordinates are inside the object
	IsIn(x, y float32) bool
}

// GUIRenderable is a Renderable in the GUI-front queue that wants to know
// about resolution changes. Implementing this interface is optional for
// GUI-front objects.
type GUIRenderable interface {
	Renderable

	// ChangedResolution is called exactly once after a genuine resolution
	// change, with the old and new surface sizes
	ChangedResolution(oldWidth, oldHeight, newWidth, newHeight int)
}

// Resource is a GPU-resident object (a texture or a display-list
// container) whose GPU state must be destroyed and rebuilt when the
// rendering context is recreated.
type Resource interface {
	// Rebuild recreates GPU state after the context has been recreated
	Rebuild()

	// Destroy releases GPU state. the logical object stays alive and can
	// be rebuilt later
	Destroy()

	// KickedOut notifies the resource that it has been removed from its
	// queue
	KickedOut()
}

// Video is a playing video overlay. While any video is queued the Manager
// renders only videos, suppressing normal scene drawing. A video that has
// finished playing is destroyed, notified and evicted during the frame
// pass.
type Video interface {
	Resource

	// Render draws the current video frame and advances playback
	Render()

	// NewFrame notifies the video that a new frame is about to be drawn
	NewFrame()

	// IsPlaying returns false once playback has finished
	IsPlaying() bool
}

// Cursor is drawn last in every scene frame, in screen-space with the
// origin at the top-left of the surface.
type Cursor interface {
	Render()
}
