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

// Package graphics manages the rendering surface, the GL context and the
// lifecycle of every GPU-resident resource.
//
// The package is built around a single rendering thread. The goroutine
// that creates the Manager must be locked to its OS thread
// (runtime.LockOSThread) and must then drive the Manager by looping over
// Service(). All GL calls happen on that goroutine and nowhere else.
//
// Other goroutines interact with the Manager in three ways. They add and
// remove resources in the queues (textures, display list containers,
// videos, and the two renderable queues), which are guarded by their own
// locks. They hand finished GPU handles to the abandon list, from where
// the rendering thread deletes them at the start of the next frame. And
// they request mode changes (FSAA, fullscreen, window size) through
// functions that block until the rendering thread has serviced the
// request between frames.
//
// Queued resources survive mode changes: the Manager destroys their GPU
// state, changes the mode (falling back to the previous mode if the
// change fails) and then asks every queued resource to rebuild itself
// against the new context.
//
// While videos are queued, frames render the videos and nothing else.
// This is how full-motion cutscenes take over the screen.
package graphics
